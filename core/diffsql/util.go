package diffsql

import (
	"regexp"
	"strings"

	"checkatron/core/schema"
)

var plainIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// keywordSet holds upper-cased reserved words.
type keywordSet map[string]struct{}

func keywords(words ...string) keywordSet {
	set := make(keywordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// reservedWords are keywords that break the generated statement when used bare in
// any dialect. Dialects add their own on top.
var reservedWords = keywords(
	"ALL", "AND", "AS", "BETWEEN", "BY", "CASE", "CHECK", "COLUMN", "CREATE", "CROSS",
	"DEFAULT", "DELETE", "DISTINCT", "DROP", "ELSE", "END", "EXISTS", "FALSE", "FOR",
	"FROM", "FULL", "GROUP", "HAVING", "IN", "INNER", "INSERT", "INTO", "IS", "JOIN",
	"LEFT", "LIKE", "NOT", "NULL", "ON", "OR", "ORDER", "OUTER", "RIGHT", "SELECT",
	"SET", "TABLE", "THEN", "TO", "TRUE", "UNION", "UNIQUE", "UPDATE", "USING",
	"VALUES", "WHEN", "WHERE", "WITH",
)

// quoteIdent leaves plain, non-reserved identifiers bare so engines that fold case
// keep resolving them, and quotes everything else, doubling embedded quote characters.
func quoteIdent(name, openQuote, closeQuote string, extra keywordSet) string {
	if plainIdent.MatchString(name) {
		upper := strings.ToUpper(name)
		_, reserved := reservedWords[upper]
		_, dialectReserved := extra[upper]
		if !reserved && !dialectReserved {
			return name
		}
	}
	return openQuote + strings.ReplaceAll(name, closeQuote, closeQuote+closeQuote) + closeQuote
}

// checkKind rejects kinds a null-safe comparison cannot be built for.
func checkKind(dialect string, kind schema.Kind) error {
	switch kind {
	case schema.KindText, schema.KindNumber:
		return nil
	default:
		return &RenderError{Dialect: dialect, Reason: "no null-safe equality for kind " + kind.String()}
	}
}

// distinctFrom is the SQL:1999 null-safe comparison.
func distinctFrom(left, right string) string {
	return left + " IS NOT DISTINCT FROM " + right
}
