package diffsql

import "checkatron/core/schema"

// SnowflakeDialect targets Snowflake, the reference engine.
type SnowflakeDialect struct{}

// Snowflake returns the Snowflake dialect.
func Snowflake() *SnowflakeDialect { return &SnowflakeDialect{} }

func (d *SnowflakeDialect) Name() string { return "snowflake" }

func (d *SnowflakeDialect) CreateTableAs(table string) string {
	return "CREATE OR REPLACE TABLE " + table + " AS"
}

func (d *SnowflakeDialect) NullSafeEqual(left, right string, kind schema.Kind) (string, error) {
	if err := checkKind(d.Name(), kind); err != nil {
		return "", err
	}
	return distinctFrom(left, right), nil
}

func (d *SnowflakeDialect) QuoteIdent(name string) string {
	return quoteIdent(name, `"`, `"`, snowflakeReserved)
}

// snowflakeReserved are Snowflake's reserved keywords beyond the common set.
var snowflakeReserved = keywords(
	"ALTER", "ANY", "CAST", "CONNECT", "CONNECTION", "CONSTRAINT", "CURRENT",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "DATABASE",
	"FOLLOWING", "GRANT", "GSCRIPT", "ILIKE", "INCREMENT", "INTERSECT", "ISSUE",
	"LATERAL", "LOCALTIME", "LOCALTIMESTAMP", "MINUS", "NATURAL", "OF", "ORGANIZATION",
	"QUALIFY", "REGEXP", "REVOKE", "RLIKE", "ROW", "ROWS", "SAMPLE", "SCHEMA", "SOME",
	"START", "TABLESAMPLE", "TRIGGER", "TRY_CAST", "VIEW", "WHENEVER",
)
