package diffsql_test

import (
	"testing"

	"checkatron/core/diffsql"
	"checkatron/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, e diffsql.Expr) string {
	t.Helper()
	s, err := e.Render(diffsql.Snowflake())
	require.NoError(t, err)
	return s
}

func TestStatusExpr(t *testing.T) {
	tests := []struct {
		name string
		col  schema.ResolvedColumn
		want string
	}{
		{
			name: "both sides",
			col:  schema.ResolvedColumn{Name: "AMOUNT", Kind: schema.KindNumber, InBefore: true, InAfter: true},
			want: "CASE WHEN b.AMOUNT IS NULL AND a.AMOUNT IS NULL THEN 0 WHEN b.AMOUNT IS NULL THEN 2 WHEN a.AMOUNT IS NULL THEN 3 WHEN b.AMOUNT = a.AMOUNT THEN 0 ELSE 1 END",
		},
		{
			name: "after only",
			col:  schema.ResolvedColumn{Name: "NEW_COL", Kind: schema.KindText, InAfter: true},
			want: "CASE WHEN a.NEW_COL IS NULL THEN 0 ELSE 2 END",
		},
		{
			name: "before only",
			col:  schema.ResolvedColumn{Name: "OLD_COL", Kind: schema.KindText, InBefore: true},
			want: "CASE WHEN b.OLD_COL IS NULL THEN 0 ELSE 3 END",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, diffsql.StatusExpr(tt.col)))
		})
	}
}

func TestRowStatusExpr(t *testing.T) {
	assert.Equal(t,
		"CASE WHEN b._CHECKATRON_PRESENT IS NULL THEN 4 WHEN a._CHECKATRON_PRESENT IS NULL THEN 5 ELSE 0 END",
		render(t, diffsql.RowStatusExpr()))
}

func TestJoinPredicate(t *testing.T) {
	keys := []schema.ResolvedColumn{
		{Name: "ID", Kind: schema.KindNumber, InBefore: true, InAfter: true},
		{Name: "REGION", Kind: schema.KindText, InAfter: true},
	}
	inBefore := func(c schema.ResolvedColumn) bool { return c.InBefore }

	got, err := diffsql.JoinPredicate(diffsql.BeforeAlias, keys, inBefore).Render(diffsql.SQLite())
	require.NoError(t, err)
	assert.Equal(t, "b.ID IS u.ID AND NULL IS u.REGION", got)
}

func TestCol(t *testing.T) {
	assert.Equal(t, "NULL", render(t, diffsql.Col("b", "", false)))
	assert.Equal(t, "AMOUNT", render(t, diffsql.Col("", "AMOUNT", true)))
	assert.Equal(t, `a."GROUP"`, render(t, diffsql.Col("a", "GROUP", true)))

	_, err := diffsql.Col("a", "", true).Render(diffsql.Snowflake())
	assert.ErrorIs(t, err, diffsql.ErrRender)
}

func TestCaseAndProjection(t *testing.T) {
	e := diffsql.Case().
		When(diffsql.Eq(diffsql.Int(1), diffsql.Int(1)), diffsql.Code(diffsql.StatusMatch)).
		Else(diffsql.Null())
	assert.Equal(t, "CASE WHEN 1 = 1 THEN 0 ELSE NULL END", render(t, e))

	p, err := diffsql.As(diffsql.Paren(diffsql.Raw("x + 1")), "order").Render(diffsql.MySQL())
	require.NoError(t, err)
	assert.Equal(t, "(x + 1) AS `order`", p)

	p, err = diffsql.As(diffsql.Raw("x"), "").Render(diffsql.MySQL())
	require.NoError(t, err)
	assert.Equal(t, "x", p)
}

func TestNullSafeEq_FillsColumnOnError(t *testing.T) {
	_, err := diffsql.NullSafeEq(diffsql.Raw("b.K"), diffsql.Raw("u.K"), "K", schema.KindUnknown).Render(diffsql.Postgres())
	var re *diffsql.RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "K", re.Column)
	assert.Equal(t, "postgres", re.Dialect)
}
