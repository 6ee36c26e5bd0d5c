package schema_test

import (
	"testing"

	"checkatron/core/schema"

	"github.com/stretchr/testify/assert"
)

func TestInferKind(t *testing.T) {
	tests := []struct {
		raw  string
		want schema.Kind
	}{
		{"VARCHAR(16777216)", schema.KindText},
		{"varchar", schema.KindText},
		{"STRING", schema.KindText},
		{"TEXT", schema.KindText},
		{"NUMBER(38,0)", schema.KindNumber},
		{"int", schema.KindNumber},
		{"BIGINT", schema.KindNumber},
		{"FLOAT", schema.KindNumber},
		{"DECIMAL(10,2)", schema.KindNumber},
		{"DATE", schema.KindText},
		{"TIMESTAMP_NTZ(9)", schema.KindText},
		{"", schema.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.InferKind(tt.raw))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TEXT", schema.KindText.String())
	assert.Equal(t, "NUMBER", schema.KindNumber.String())
	assert.Equal(t, "UNKNOWN", schema.KindUnknown.String())
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &schema.SchemaError{Side: "keys", Column: "ID", Reason: "key column is absent from both schemas"}
	assert.Equal(t, `schema error (keys): key column is absent from both schemas: "ID"`, err.Error())
}
