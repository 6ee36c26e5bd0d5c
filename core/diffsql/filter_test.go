package diffsql_test

import (
	"testing"

	"checkatron/core/diffsql"
	"checkatron/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in   string
		want diffsql.Condition
	}{
		{"HEADER_VALUATION_DATE=2024-06-01", diffsql.Condition{Column: "HEADER_VALUATION_DATE", Op: diffsql.OpEq, Value: "2024-06-01"}},
		{"qty >= 10", diffsql.Condition{Column: "qty", Op: diffsql.OpGte, Value: "10"}},
		{"qty<=10", diffsql.Condition{Column: "qty", Op: diffsql.OpLte, Value: "10"}},
		{"qty<10", diffsql.Condition{Column: "qty", Op: diffsql.OpLt, Value: "10"}},
		{"qty>10", diffsql.Condition{Column: "qty", Op: diffsql.OpGt, Value: "10"}},
		{"status!=open", diffsql.Condition{Column: "status", Op: diffsql.OpNotEq, Value: "open"}},
		{"status<>open", diffsql.Condition{Column: "status", Op: diffsql.OpNotEq, Value: "open"}},
		{"name='a=b'", diffsql.Condition{Column: "name", Op: diffsql.OpEq, Value: "a=b"}},
		{`name="quoted"`, diffsql.Condition{Column: "name", Op: diffsql.OpEq, Value: "quoted"}},
		{"name=", diffsql.Condition{Column: "name", Op: diffsql.OpEq, Value: ""}},
		{"deleted_at is null", diffsql.Condition{Column: "deleted_at", Op: diffsql.OpIsNull}},
		{"deleted_at IS NOT NULL", diffsql.Condition{Column: "deleted_at", Op: diffsql.OpNotNull}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := diffsql.ParseCondition(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCondition_Invalid(t *testing.T) {
	for _, in := range []string{"", "no_operator", "=value", " IS NULL", ">= 3"} {
		t.Run(in, func(t *testing.T) {
			_, err := diffsql.ParseCondition(in)
			assert.Error(t, err)
		})
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		kind    schema.Kind
		want    string
		wantErr bool
	}{
		{"integer", "42", schema.KindNumber, "42", false},
		{"decimal with spaces", " -3.5 ", schema.KindNumber, "-3.5", false},
		{"exponent", "1e3", schema.KindNumber, "1e3", false},
		{"large exponent", "1e400", schema.KindNumber, "1e400", false},
		{"leading point", ".5", schema.KindNumber, ".5", false},
		{"explicit plus", "+7", schema.KindNumber, "+7", false},
		{"not a number", "42; DROP TABLE x", schema.KindNumber, "", true},
		{"infinity", "Inf", schema.KindNumber, "", true},
		{"negative infinity", "-infinity", schema.KindNumber, "", true},
		{"nan", "NaN", schema.KindNumber, "", true},
		{"hex float", "0x1p4", schema.KindNumber, "", true},
		{"bare exponent", "e5", schema.KindNumber, "", true},
		{"text", "2024-06-01", schema.KindText, "'2024-06-01'", false},
		{"text with quote", "it's", schema.KindText, "'it''s'", false},
		{"empty text", "", schema.KindText, "''", false},
		{"unknown kind", "x", schema.KindUnknown, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := diffsql.Literal(tt.value, tt.kind)
			if tt.wantErr {
				assert.ErrorIs(t, err, diffsql.ErrRender)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, diffsql.Filter{}.IsZero())
	assert.True(t, diffsql.Filter{Raw: "   "}.IsZero())
	assert.False(t, diffsql.Filter{Raw: "X = 1"}.IsZero())
	assert.False(t, diffsql.Filter{Conditions: []diffsql.Condition{{Column: "X", Op: diffsql.OpIsNull}}}.IsZero())
}
