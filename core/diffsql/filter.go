package diffsql

import (
	"fmt"
	"regexp"
	"strings"

	"checkatron/core/schema"
)

// Operator is a comparison operator usable in a structured Condition.
type Operator string

const (
	OpEq      Operator = "="
	OpNotEq   Operator = "<>"
	OpLt      Operator = "<"
	OpLte     Operator = "<="
	OpGt      Operator = ">"
	OpGte     Operator = ">="
	OpIsNull  Operator = "IS NULL"
	OpNotNull Operator = "IS NOT NULL"
)

// unary operators take no value.
func (o Operator) unary() bool {
	return o == OpIsNull || o == OpNotNull
}

func (o Operator) valid() bool {
	switch o {
	case OpEq, OpNotEq, OpLt, OpLte, OpGt, OpGte, OpIsNull, OpNotNull:
		return true
	}
	return false
}

// Condition is one structured predicate: Column Op Value.
// Value is quoted as a string literal for TEXT columns and must parse as a number
// for NUMBER columns.
type Condition struct {
	Column string   `json:"column"`
	Op     Operator `json:"op"`
	Value  string   `json:"value"`
}

// Filter restricts one side of the comparison.
type Filter struct {
	// Raw is a caller-supplied trusted SQL fragment inserted verbatim.
	Raw string `json:"raw"`
	// Conditions are AND-ed after Raw.
	Conditions []Condition `json:"conditions"`
}

// IsZero reports whether the filter selects every row.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Raw) == "" && len(f.Conditions) == 0
}

// binaryOperators lists two-character tokens first so "<=" is not read as "<".
var binaryOperators = []struct {
	token string
	op    Operator
}{
	{">=", OpGte}, {"<=", OpLte}, {"<>", OpNotEq}, {"!=", OpNotEq},
	{"=", OpEq}, {"<", OpLt}, {">", OpGt},
}

// ParseCondition parses the command-line form of a condition:
// "COL=VALUE", "COL>=VALUE", "COL!=VALUE", "COL IS NULL", "COL IS NOT NULL".
// Surrounding single or double quotes around VALUE are removed.
func ParseCondition(s string) (Condition, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	for _, op := range []Operator{OpNotNull, OpIsNull} {
		suffix := " " + string(op)
		if strings.HasSuffix(upper, suffix) {
			col := strings.TrimSpace(trimmed[:len(trimmed)-len(suffix)])
			if col == "" {
				return Condition{}, fmt.Errorf("invalid condition %q: missing column", s)
			}
			return Condition{Column: col, Op: op}, nil
		}
	}

	// The leftmost operator wins so values may contain operator characters.
	for idx := 0; idx < len(trimmed); idx++ {
		for _, candidate := range binaryOperators {
			if !strings.HasPrefix(trimmed[idx:], candidate.token) {
				continue
			}
			col := strings.TrimSpace(trimmed[:idx])
			val := strings.TrimSpace(trimmed[idx+len(candidate.token):])
			if col == "" {
				return Condition{}, fmt.Errorf("invalid condition %q: missing column", s)
			}
			return Condition{Column: col, Op: candidate.op, Value: unquote(val)}, nil
		}
	}

	return Condition{}, fmt.Errorf("invalid condition %q: expected COLUMN<op>VALUE", s)
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// numericLiteral is the ANSI unsigned numeric literal with an optional sign.
var numericLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Literal renders value as a SQL literal for a column of the given kind.
func Literal(value string, kind schema.Kind) (string, error) {
	switch kind {
	case schema.KindNumber:
		v := strings.TrimSpace(value)
		if !numericLiteral.MatchString(v) {
			return "", &RenderError{Reason: fmt.Sprintf("%q is not a numeric literal", value)}
		}
		return v, nil
	case schema.KindText:
		return "'" + strings.ReplaceAll(value, "'", "''") + "'", nil
	default:
		return "", &RenderError{Reason: "cannot quote a literal of kind " + kind.String()}
	}
}

// whereClause renders the filter for one side. lookup resolves a condition column
// to the request's column and reports whether it exists on that side.
func (f Filter) whereClause(d Dialect, side string, lookup func(string) (schema.ResolvedColumn, bool)) (string, error) {
	var parts []string
	if raw := strings.TrimSpace(f.Raw); raw != "" {
		parts = append(parts, "("+raw+")")
	}

	for _, c := range f.Conditions {
		if !c.Op.valid() {
			return "", &RenderError{Dialect: d.Name(), Column: c.Column, Reason: fmt.Sprintf("unsupported operator %q in %s filter", c.Op, side)}
		}
		col, ok := lookup(c.Column)
		if !ok {
			return "", &RenderError{Dialect: d.Name(), Column: c.Column, Reason: "filter column does not exist in " + side}
		}

		ident := d.QuoteIdent(col.Name)
		if c.Op.unary() {
			parts = append(parts, ident+" "+string(c.Op))
			continue
		}

		lit, err := Literal(c.Value, col.Kind)
		if err != nil {
			if re, ok := err.(*RenderError); ok {
				re.Dialect = d.Name()
				re.Column = col.Name
			}
			return "", err
		}
		parts = append(parts, ident+" "+string(c.Op)+" "+lit)
	}

	return strings.Join(parts, " AND "), nil
}
