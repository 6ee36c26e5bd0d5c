package diffsql

import (
	"fmt"
	"sort"
	"strings"

	"checkatron/core/schema"
)

// Dialect abstracts the few engine-specific pieces of the generated statement.
type Dialect interface {
	// Name is the identifier used by GetDialect.
	Name() string

	// CreateTableAs returns the statement prefix that (re)creates table from a query.
	CreateTableAs(table string) string

	// NullSafeEqual renders an equality test under which two NULLs are equal.
	// It fails with a RenderError when the kind cannot be compared.
	NullSafeEqual(left, right string, kind schema.Kind) (string, error)

	// QuoteIdent renders a column identifier, quoting it only when needed.
	QuoteIdent(name string) string
}

// DefaultDialect is used when no dialect is configured.
const DefaultDialect = "snowflake"

var dialects = map[string]func() Dialect{
	"snowflake": func() Dialect { return Snowflake() },
	"ansi":      func() Dialect { return ANSI() },
	"postgres":  func() Dialect { return Postgres() },
	"duckdb":    func() Dialect { return DuckDB() },
	"sqlite":    func() Dialect { return SQLite() },
	"mysql":     func() Dialect { return MySQL() },
}

// GetDialect returns the dialect registered under name (case-insensitive).
// An empty name selects DefaultDialect.
func GetDialect(name string) (Dialect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultDialect
	}
	ctor, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q (supported: %s)", name, strings.Join(Dialects(), ", "))
	}
	return ctor(), nil
}

// Dialects lists the supported dialect names in sorted order.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	_ Dialect = (*SnowflakeDialect)(nil)
	_ Dialect = (*ANSIDialect)(nil)
	_ Dialect = (*SQLiteDialect)(nil)
	_ Dialect = (*MySQLDialect)(nil)
)
