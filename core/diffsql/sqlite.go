package diffsql

import "checkatron/core/schema"

// SQLiteDialect targets SQLite, whose IS operator is already null-safe.
type SQLiteDialect struct{}

// SQLite returns the SQLite dialect.
func SQLite() *SQLiteDialect { return &SQLiteDialect{} }

func (d *SQLiteDialect) Name() string { return "sqlite" }

// CreateTableAs has no replace form in SQLite; the target must not exist yet.
func (d *SQLiteDialect) CreateTableAs(table string) string {
	return "CREATE TABLE " + table + " AS"
}

func (d *SQLiteDialect) NullSafeEqual(left, right string, kind schema.Kind) (string, error) {
	if err := checkKind(d.Name(), kind); err != nil {
		return "", err
	}
	return left + " IS " + right, nil
}

func (d *SQLiteDialect) QuoteIdent(name string) string {
	return quoteIdent(name, `"`, `"`, sqliteReserved)
}

// sqliteReserved are SQLite keywords that cannot be used as bare column names.
var sqliteReserved = keywords(
	"ADD", "ALTER", "AUTOINCREMENT", "COLLATE", "COMMIT", "CONSTRAINT", "DEFERRABLE",
	"ESCAPE", "EXCEPT", "FOREIGN", "GLOB", "INDEX", "INTERSECT", "ISNULL", "LIMIT",
	"NOTNULL", "OFFSET", "PRIMARY", "REFERENCES", "TRANSACTION",
)
