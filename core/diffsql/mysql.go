package diffsql

import "checkatron/core/schema"

// MySQLDialect targets MySQL 8 and MariaDB.
type MySQLDialect struct{}

// MySQL returns the MySQL dialect.
func MySQL() *MySQLDialect { return &MySQLDialect{} }

func (d *MySQLDialect) Name() string { return "mysql" }

func (d *MySQLDialect) CreateTableAs(table string) string {
	return "CREATE TABLE " + table + " AS"
}

func (d *MySQLDialect) NullSafeEqual(left, right string, kind schema.Kind) (string, error) {
	if err := checkKind(d.Name(), kind); err != nil {
		return "", err
	}
	return left + " <=> " + right, nil
}

func (d *MySQLDialect) QuoteIdent(name string) string {
	return quoteIdent(name, "`", "`", mysqlReserved)
}

// mysqlReserved are MySQL 8 reserved words beyond the common set.
var mysqlReserved = keywords(
	"ALTER", "ANALYZE", "ASC", "CHANGE", "COLLATE", "CONSTRAINT", "DATABASE", "DESC",
	"DIV", "FOREIGN", "GRANT", "GROUPS", "INDEX", "INTERVAL", "KEY", "KEYS", "LIMIT",
	"LATERAL", "MOD", "OF", "PRIMARY", "RANGE", "RANK", "REFERENCES", "REGEXP",
	"RLIKE", "ROW", "ROWS", "SCHEMA", "SCHEMAS", "WINDOW",
)
