package diff

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"checkatron/core/describe"
	"checkatron/core/diffsql"
	"checkatron/core/schema"
	"checkatron/core/storage"

	libinjection "github.com/corazawaf/libinjection-go"
	"go.uber.org/zap"
)

// Service generates diff statements and moves listings and statements in and out
// of files, stdin/stdout and object storage.
type Service struct {
	client storage.Client
	source *describe.Source
	cfg    Config
	logger *zap.Logger
	stdout io.Writer
}

// NewService creates a new diff service. client may be nil when object storage
// is not configured.
func NewService(client storage.Client, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		source: describe.NewSource(client),
		cfg:    cfg,
		logger: logger,
		stdout: os.Stdout,
	}
}

// WithStdio overrides the readers and writers used for "-" locations.
func (s *Service) WithStdio(stdin io.Reader, stdout io.Writer) *Service {
	s.source.WithStdin(stdin)
	s.stdout = stdout
	return s
}

// Generate reconciles the listings and renders the statement.
func (s *Service) Generate(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dialectName := in.Dialect
	if dialectName == "" {
		dialectName = s.cfg.Dialect
	}
	dialect, err := diffsql.GetDialect(dialectName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rec, err := schema.Reconcile(describe.Columns(in.Before), describe.Columns(in.After), in.Keys)
	if err != nil {
		return nil, err
	}

	resultTable := in.ResultTable
	if resultTable == "" {
		resultTable = s.cfg.ResultTable
	}
	includeKeys := s.cfg.IncludeKeys
	if in.IncludeKeys != nil {
		includeKeys = *in.IncludeKeys
	}

	req, err := diffsql.NewRequest(rec, in.BeforeTable, in.AfterTable,
		diffsql.WithBeforeFilter(diffsql.Filter{Raw: in.BeforeWhere, Conditions: in.BeforeFilters}),
		diffsql.WithAfterFilter(diffsql.Filter{Raw: in.AfterWhere, Conditions: in.AfterFilters}),
		diffsql.WithResultTable(resultTable),
		diffsql.WithKeyColumns(includeKeys),
	)
	if err != nil {
		return nil, err
	}

	sql, err := diffsql.Synthesize(req, dialect)
	if err != nil {
		return nil, err
	}

	res := &Result{
		SQL:          sql,
		Dialect:      dialect.Name(),
		ResultTable:  req.ResultTable(),
		Columns:      req.OutputColumns(),
		OneSidedKeys: rec.OneSidedKeys,
		Conflicts:    make([]Conflict, 0, len(rec.Conflicts)),
		Warnings:     []Warning{},
	}
	for _, c := range rec.Conflicts {
		res.Conflicts = append(res.Conflicts, Conflict{
			Column:   c.Column,
			Before:   c.Before.String(),
			After:    c.After.String(),
			Resolved: c.Resolved.String(),
		})
		s.logger.Warn("Column kind differs between listings",
			zap.String("column", c.Column),
			zap.Stringer("before", c.Before),
			zap.Stringer("after", c.After),
			zap.Stringer("resolved", c.Resolved),
		)
	}
	for _, k := range rec.OneSidedKeys {
		s.logger.Warn("Key column exists on one side only; its rows never match", zap.String("key", k))
	}
	for _, w := range inspectRawFilters(in.BeforeWhere, in.AfterWhere) {
		res.Warnings = append(res.Warnings, w)
		s.logger.Warn("Raw filter looks like SQL injection",
			zap.String("side", w.Side),
			zap.String("fingerprint", w.Fingerprint),
		)
	}

	s.logger.Debug("Diff statement generated",
		zap.String("dialect", res.Dialect),
		zap.Int("columns", len(res.Columns)),
		zap.Int("bytes", len(sql)),
	)
	return res, nil
}

// inspectRawFilters scans the trusted raw fragments. Findings are advisory only.
func inspectRawFilters(before, after string) []Warning {
	var out []Warning
	for _, f := range []struct{ side, raw string }{{"before", before}, {"after", after}} {
		if f.raw == "" {
			continue
		}
		if isSQLi, fingerprint := libinjection.IsSQLi(f.raw); isSQLi {
			out = append(out, Warning{Side: f.side, Fragment: f.raw, Fingerprint: string(fingerprint)})
		}
	}
	return out
}

// LoadInput reads the listings named by loc into an Input. Table identifiers are
// derived from the listing names.
func (s *Service) LoadInput(ctx context.Context, loc Locations) (Input, error) {
	if loc.Before == describe.StdinLocation && loc.After == describe.StdinLocation {
		return Input{}, fmt.Errorf("%w: only one listing can be read from stdin", ErrInvalidInput)
	}
	if loc.Keys == describe.StdinLocation && (loc.Before == describe.StdinLocation || loc.After == describe.StdinLocation) {
		return Input{}, fmt.Errorf("%w: only one listing can be read from stdin", ErrInvalidInput)
	}

	before, err := s.source.Load(ctx, loc.Before)
	if err != nil {
		return Input{}, fmt.Errorf("before listing: %w", err)
	}
	after, err := s.source.Load(ctx, loc.After)
	if err != nil {
		return Input{}, fmt.Errorf("after listing: %w", err)
	}
	keys, err := s.source.Load(ctx, loc.Keys)
	if err != nil {
		return Input{}, fmt.Errorf("keys listing: %w", err)
	}

	return Input{
		Before:      before,
		After:       after,
		Keys:        describe.Names(keys),
		BeforeTable: describe.TableName(loc.Before),
		AfterTable:  describe.TableName(loc.After),
	}, nil
}

// Publish writes the statement to dest: "-" for stdout, s3://bucket/object, or a
// file path. An empty dest uses the configured output.
func (s *Service) Publish(ctx context.Context, dest, sql string) (string, error) {
	if dest == "" {
		dest = s.cfg.Output
	}

	switch bucket, object, ok := storage.ParseURL(dest); {
	case dest == "" || dest == describe.StdinLocation:
		if _, err := io.WriteString(s.stdout, sql); err != nil {
			return "", fmt.Errorf("failed to write to stdout: %w", err)
		}
		return "stdout", nil
	case ok:
		if s.client == nil {
			return "", fmt.Errorf("cannot write %s: object storage is not configured", dest)
		}
		if err := storage.Upload(ctx, s.client, bucket, object, []byte(sql), "application/sql"); err != nil {
			return "", err
		}
		return dest, nil
	default:
		if dir := filepath.Dir(dest); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(dest, []byte(sql), 0o644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", dest, err)
		}
		return dest, nil
	}
}
