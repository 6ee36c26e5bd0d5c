package diffsql

import "checkatron/core/schema"

// ANSIDialect is the portable SQL:1999 rendering. Postgres and DuckDB reuse it and
// only differ in how the result table is created.
type ANSIDialect struct {
	name            string
	createOrReplace bool
}

// ANSI returns the generic dialect.
func ANSI() *ANSIDialect { return &ANSIDialect{name: "ansi"} }

// Postgres returns the PostgreSQL dialect.
func Postgres() *ANSIDialect { return &ANSIDialect{name: "postgres"} }

// DuckDB returns the DuckDB dialect.
func DuckDB() *ANSIDialect { return &ANSIDialect{name: "duckdb", createOrReplace: true} }

func (d *ANSIDialect) Name() string { return d.name }

func (d *ANSIDialect) CreateTableAs(table string) string {
	if d.createOrReplace {
		return "CREATE OR REPLACE TABLE " + table + " AS"
	}
	return "CREATE TABLE " + table + " AS"
}

func (d *ANSIDialect) NullSafeEqual(left, right string, kind schema.Kind) (string, error) {
	if err := checkKind(d.Name(), kind); err != nil {
		return "", err
	}
	return distinctFrom(left, right), nil
}

func (d *ANSIDialect) QuoteIdent(name string) string {
	return quoteIdent(name, `"`, `"`, ansiReserved)
}

// ansiReserved are the SQL:2016 / PostgreSQL / DuckDB reserved keywords beyond the
// common set.
var ansiReserved = keywords(
	"ANALYSE", "ANALYZE", "ANY", "ARRAY", "ASC", "ASYMMETRIC", "BOTH", "CAST",
	"COLLATE", "CONSTRAINT", "CURRENT_CATALOG", "CURRENT_DATE", "CURRENT_ROLE",
	"CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "DEFERRABLE", "DESC", "DO",
	"EXCEPT", "FETCH", "FOREIGN", "GRANT", "INITIALLY", "INTERSECT", "LATERAL",
	"LEADING", "LIMIT", "LOCALTIME", "LOCALTIMESTAMP", "OFFSET", "ONLY", "PLACING",
	"PRIMARY", "QUALIFY", "REFERENCES", "RETURNING", "SOME", "SYMMETRIC", "TRAILING",
	"USER", "VARIADIC", "WINDOW",
)
