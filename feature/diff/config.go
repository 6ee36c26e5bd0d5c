package diff

// Config holds the defaults applied when a request leaves a setting empty.
type Config struct {
	// Dialect is the target SQL dialect.
	Dialect string `mapstructure:"dialect" default:"snowflake"`
	// ResultTable is the relation the statement creates.
	ResultTable string `mapstructure:"result_table" default:"diff_result"`
	// Output is where the generate command writes the statement: "-", a path or s3://bucket/object.
	Output string `mapstructure:"output" default:"-"`
	// IncludeKeys prepends the key values to the result.
	IncludeKeys bool `mapstructure:"include_keys" default:"false"`
}
