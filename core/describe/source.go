package describe

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"checkatron/core/storage"

	"github.com/minio/minio-go/v7"
)

// StdinLocation reads a listing from standard input.
const StdinLocation = "-"

// Source resolves listing locations to records.
type Source struct {
	client storage.Client
	stdin  io.Reader
}

// NewSource creates a Source. client may be nil when object storage is not
// configured; s3:// locations then fail with an error.
func NewSource(client storage.Client) *Source {
	return &Source{client: client, stdin: os.Stdin}
}

// WithStdin overrides the reader used for StdinLocation.
func (s *Source) WithStdin(r io.Reader) *Source {
	s.stdin = r
	return s
}

// Load reads and parses the listing at location.
func (s *Source) Load(ctx context.Context, location string) ([]Record, error) {
	rc, err := s.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return records, nil
}

func (s *Source) open(ctx context.Context, location string) (io.ReadCloser, error) {
	if location == StdinLocation {
		return io.NopCloser(s.stdin), nil
	}

	if bucket, object, ok := storage.ParseURL(location); ok {
		if s.client == nil {
			return nil, fmt.Errorf("cannot read %s: object storage is not configured", location)
		}
		obj, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", location, err)
		}
		return obj, nil
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing: %w", err)
	}
	return f, nil
}

// TableName derives a table identifier from a listing location: the extension is
// dropped and underscores become dots, so "prod_schema_my.csv" names prod.schema.my.
func TableName(location string) string {
	if _, object, ok := storage.ParseURL(location); ok {
		location = object
	}
	base := filepath.Base(location)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(stem, "_", ".")
}
