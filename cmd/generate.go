package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"checkatron/core/config"
	"checkatron/core/diffsql"
	"checkatron/core/logger"
	"checkatron/core/storage"
	"checkatron/feature/diff"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateOpts struct {
	keys         string
	beforeWhere  string
	afterWhere   string
	beforeFilter []string
	afterFilter  []string
	beforeTable  string
	afterTable   string
	dialect      string
	resultTable  string
	withKeys     bool
	out          string
	timeout      time.Duration
}

// generateCmd renders the comparison statement for two schema listings.
var generateCmd = &cobra.Command{
	Use:   "generate BEFORE AFTER",
	Short: "Generate the comparison SQL for two schema listings",
	Long: `Reads the before and after schema listings (CSV with "name" and "type" columns,
e.g. the output of DESCRIBE TABLE) and a key listing, and writes one
CREATE TABLE ... AS statement comparing both tables.

Listings can be local files, "-" for stdin, or s3://bucket/object. Table names
default to the listing file name with "_" replaced by ".".`,
	Example: `  checkatron generate prod_sales_orders.csv dev_sales_orders.csv --keys keys.csv
  checkatron generate before.csv after.csv --keys keys.csv \
    --before-table prod.sales.orders --after-table prod.sales.orders \
    --before-filter LOAD_DATE=2024-06-01 --after-filter LOAD_DATE=2024-06-02 --out diff.sql`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	var store storage.Client
	if cfg.Storage.Enabled() {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), generateOpts.timeout)
	defer cancel()

	svc := diff.NewService(store, cfg.Generate, logg).WithStdio(cmd.InOrStdin(), cmd.OutOrStdout())

	in, err := svc.LoadInput(ctx, diff.Locations{Before: args[0], After: args[1], Keys: generateOpts.keys})
	if err != nil {
		return err
	}
	if err := applyGenerateFlags(cmd, &in); err != nil {
		return err
	}

	res, err := svc.Generate(ctx, in)
	if err != nil {
		return err
	}

	dest, err := svc.Publish(ctx, generateOpts.out, res.SQL)
	if err != nil {
		return err
	}

	logg.Info("SQL written",
		zap.String("destination", dest),
		zap.String("dialect", res.Dialect),
		zap.String("result_table", res.ResultTable),
		zap.Strings("one_sided_keys", res.OneSidedKeys),
	)
	return nil
}

// applyGenerateFlags overrides the loaded input with explicitly set flags.
func applyGenerateFlags(cmd *cobra.Command, in *diff.Input) error {
	flags := cmd.Flags()
	if flags.Changed("before-table") {
		in.BeforeTable = generateOpts.beforeTable
	}
	if flags.Changed("after-table") {
		in.AfterTable = generateOpts.afterTable
	}
	if flags.Changed("dialect") {
		in.Dialect = generateOpts.dialect
	}
	if flags.Changed("result-table") {
		in.ResultTable = generateOpts.resultTable
	}
	if flags.Changed("with-keys") {
		withKeys := generateOpts.withKeys
		in.IncludeKeys = &withKeys
	}
	in.BeforeWhere = generateOpts.beforeWhere
	in.AfterWhere = generateOpts.afterWhere

	var err error
	if in.BeforeFilters, err = parseConditions(generateOpts.beforeFilter); err != nil {
		return fmt.Errorf("--before-filter: %w", err)
	}
	if in.AfterFilters, err = parseConditions(generateOpts.afterFilter); err != nil {
		return fmt.Errorf("--after-filter: %w", err)
	}
	return nil
}

func parseConditions(raw []string) ([]diffsql.Condition, error) {
	out := make([]diffsql.Condition, 0, len(raw))
	for _, r := range raw {
		c, err := diffsql.ParseCondition(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// dialectUsage lists the dialects and warns which ones cannot replace an existing
// result table.
func dialectUsage() string {
	var plain []string
	for _, name := range diffsql.Dialects() {
		d, err := diffsql.GetDialect(name)
		if err != nil {
			continue
		}
		if !strings.Contains(d.CreateTableAs("t"), "OR REPLACE") {
			plain = append(plain, name)
		}
	}
	return "SQL dialect: " + strings.Join(diffsql.Dialects(), ", ") + " (default from config); " +
		strings.Join(plain, ", ") + " emit CREATE TABLE without a replace form, " +
		"so drop the result table before re-running"
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateOpts.keys, "keys", "", "key listing (CSV with a name column)")
	f.StringVar(&generateOpts.beforeWhere, "before-where", "", "raw SQL predicate for the before table (trusted, inserted verbatim)")
	f.StringVar(&generateOpts.afterWhere, "after-where", "", "raw SQL predicate for the after table (trusted, inserted verbatim)")
	f.StringArrayVar(&generateOpts.beforeFilter, "before-filter", nil, "structured condition on the before table, e.g. LOAD_DATE=2024-06-01 (repeatable)")
	f.StringArrayVar(&generateOpts.afterFilter, "after-filter", nil, "structured condition on the after table (repeatable)")
	f.StringVar(&generateOpts.beforeTable, "before-table", "", "before table identifier (default: derived from the listing name)")
	f.StringVar(&generateOpts.afterTable, "after-table", "", "after table identifier (default: derived from the listing name)")
	f.StringVar(&generateOpts.dialect, "dialect", "", dialectUsage())
	f.StringVar(&generateOpts.resultTable, "result-table", "", "name of the created result table (default from config)")
	f.BoolVar(&generateOpts.withKeys, "with-keys", false, "include the key columns in the result")
	f.StringVarP(&generateOpts.out, "out", "o", "", `destination: file path, "-" for stdout, or s3://bucket/object (default from config)`)
	f.DurationVar(&generateOpts.timeout, "timeout", 30*time.Second, "timeout for reading listings and writing the result")
	_ = generateCmd.MarkFlagRequired("keys")

	RootCmd.AddCommand(generateCmd)
}
