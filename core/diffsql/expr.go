package diffsql

import (
	"errors"
	"strconv"
	"strings"

	"checkatron/core/schema"
)

// Expr is a composable SQL expression. Rendering is deferred so the same
// expression tree can be emitted for any Dialect.
type Expr interface {
	Render(d Dialect) (string, error)
}

// Table aliases used by the generated SELECT.
const (
	UniverseAlias = "u"
	BeforeAlias   = "b"
	AfterAlias    = "a"
)

type columnRef struct {
	alias   string
	name    string
	present bool
}

// Col references alias.name. When present is false the side has no such column
// and the reference renders as NULL.
func Col(alias, name string, present bool) Expr {
	return columnRef{alias: alias, name: name, present: present}
}

func (c columnRef) Render(d Dialect) (string, error) {
	if !c.present {
		return "NULL", nil
	}
	if c.name == "" {
		return "", &RenderError{Dialect: d.Name(), Reason: "empty column identifier"}
	}
	if c.alias == "" {
		return d.QuoteIdent(c.name), nil
	}
	return c.alias + "." + d.QuoteIdent(c.name), nil
}

type rawSQL string

// Raw embeds trusted SQL text as is.
func Raw(sql string) Expr { return rawSQL(sql) }

func (r rawSQL) Render(Dialect) (string, error) { return string(r), nil }

// Int renders an integer literal.
func Int(v int) Expr { return rawSQL(strconv.Itoa(v)) }

// Code renders a status code literal.
func Code(s Status) Expr { return Int(int(s)) }

// Null renders the NULL literal.
func Null() Expr { return rawSQL("NULL") }

type isNull struct{ e Expr }

// IsNull renders "e IS NULL".
func IsNull(e Expr) Expr { return isNull{e} }

func (n isNull) Render(d Dialect) (string, error) {
	s, err := n.e.Render(d)
	if err != nil {
		return "", err
	}
	return s + " IS NULL", nil
}

type binary struct {
	op          string
	left, right Expr
}

// Eq renders ordinary "left = right".
func Eq(left, right Expr) Expr { return binary{op: "=", left: left, right: right} }

func (b binary) Render(d Dialect) (string, error) {
	l, err := b.left.Render(d)
	if err != nil {
		return "", err
	}
	r, err := b.right.Render(d)
	if err != nil {
		return "", err
	}
	return l + " " + b.op + " " + r, nil
}

type nullSafeEq struct {
	left, right Expr
	kind        schema.Kind
	column      string
}

// NullSafeEq renders the dialect's NULL-equals-NULL comparison for a key column.
func NullSafeEq(left, right Expr, column string, kind schema.Kind) Expr {
	return nullSafeEq{left: left, right: right, kind: kind, column: column}
}

func (n nullSafeEq) Render(d Dialect) (string, error) {
	l, err := n.left.Render(d)
	if err != nil {
		return "", err
	}
	r, err := n.right.Render(d)
	if err != nil {
		return "", err
	}
	s, err := d.NullSafeEqual(l, r, n.kind)
	if err != nil {
		var re *RenderError
		if errors.As(err, &re) && re.Column == "" {
			re.Column = n.column
		}
		return "", err
	}
	return s, nil
}

type conjunction []Expr

// And joins the expressions with AND. A single expression renders unchanged.
func And(parts ...Expr) Expr { return conjunction(parts) }

func (c conjunction) Render(d Dialect) (string, error) {
	out := make([]string, 0, len(c))
	for _, p := range c {
		s, err := p.Render(d)
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}
	return strings.Join(out, " AND "), nil
}

type paren struct{ e Expr }

// Paren wraps e in parentheses.
func Paren(e Expr) Expr { return paren{e} }

func (p paren) Render(d Dialect) (string, error) {
	s, err := p.e.Render(d)
	if err != nil {
		return "", err
	}
	return "(" + s + ")", nil
}

type when struct {
	cond, then Expr
}

// CaseExpr is a searched CASE expression built arm by arm.
type CaseExpr struct {
	whens []when
	els   Expr
}

// Case starts an empty CASE expression.
func Case() *CaseExpr { return &CaseExpr{} }

// When appends an arm. Arms are evaluated in insertion order.
func (c *CaseExpr) When(cond, then Expr) *CaseExpr {
	c.whens = append(c.whens, when{cond: cond, then: then})
	return c
}

// Else sets the fallback result.
func (c *CaseExpr) Else(e Expr) *CaseExpr {
	c.els = e
	return c
}

func (c *CaseExpr) Render(d Dialect) (string, error) {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, w := range c.whens {
		cond, err := w.cond.Render(d)
		if err != nil {
			return "", err
		}
		then, err := w.then.Render(d)
		if err != nil {
			return "", err
		}
		sb.WriteString(" WHEN " + cond + " THEN " + then)
	}
	if c.els != nil {
		els, err := c.els.Render(d)
		if err != nil {
			return "", err
		}
		sb.WriteString(" ELSE " + els)
	}
	sb.WriteString(" END")
	return sb.String(), nil
}

// Projection is one entry of a SELECT list.
type Projection struct {
	Expr  Expr
	Alias string
}

// As names e in a SELECT list.
func As(e Expr, alias string) Projection {
	return Projection{Expr: e, Alias: alias}
}

// Render renders "expr AS alias".
func (p Projection) Render(d Dialect) (string, error) {
	s, err := p.Expr.Render(d)
	if err != nil {
		return "", err
	}
	if p.Alias == "" {
		return s, nil
	}
	return s + " AS " + d.QuoteIdent(p.Alias), nil
}

// StatusExpr builds the per-column status CASE:
//
//	both NULL -> 0, before NULL -> 2, after NULL -> 3, equal -> 0, otherwise 1
//
// A side that lacks the column reads as NULL, which collapses the CASE to the
// arms that can still fire.
func StatusExpr(col schema.ResolvedColumn) Expr {
	before := Col(BeforeAlias, col.Name, col.InBefore)
	after := Col(AfterAlias, col.Name, col.InAfter)

	switch {
	case !col.InBefore:
		return Case().When(IsNull(after), Code(StatusMatch)).Else(Code(StatusNullBefore))
	case !col.InAfter:
		return Case().When(IsNull(before), Code(StatusMatch)).Else(Code(StatusNullAfter))
	}

	return Case().
		When(And(IsNull(before), IsNull(after)), Code(StatusMatch)).
		When(IsNull(before), Code(StatusNullBefore)).
		When(IsNull(after), Code(StatusNullAfter)).
		When(Eq(before, after), Code(StatusMatch)).
		Else(Code(StatusDiffer))
}

// RowStatusExpr builds the row-level CASE from the presence markers of both sides.
func RowStatusExpr() Expr {
	return Case().
		When(IsNull(Col(BeforeAlias, PresenceColumn, true)), Code(RowMissingBefore)).
		When(IsNull(Col(AfterAlias, PresenceColumn, true)), Code(RowMissingAfter)).
		Else(Code(StatusMatch))
}

// JoinPredicate builds the null-safe key match between the key universe and one side.
func JoinPredicate(alias string, keys []schema.ResolvedColumn, inSide func(schema.ResolvedColumn) bool) Expr {
	parts := make([]Expr, len(keys))
	for i, k := range keys {
		parts[i] = NullSafeEq(Col(alias, k.Name, inSide(k)), Col(UniverseAlias, k.Name, true), k.Name, k.Kind)
	}
	return And(parts...)
}
