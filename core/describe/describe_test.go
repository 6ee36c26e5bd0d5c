package describe_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"checkatron/core/describe"
	"checkatron/core/schema"
	"checkatron/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const snowflakeListing = `name,type,kind,null?,default,primary key,unique key,check,expression,comment,policy name,privacy domain
k1,"NUMBER(38,0)",COLUMN,Y,,N,N,,,,,
val,VARCHAR(16777216),COLUMN,Y,,N,N,,,,,
`

func TestParse_SnowflakeDescribe(t *testing.T) {
	records, err := describe.Parse(strings.NewReader(snowflakeListing))
	require.NoError(t, err)
	assert.Equal(t, []describe.Record{
		{Name: "k1", Type: "NUMBER(38,0)"},
		{Name: "val", Type: "VARCHAR(16777216)"},
	}, records)

	cols := describe.Columns(records)
	assert.Equal(t, schema.KindNumber, cols[0].Kind)
	assert.Equal(t, schema.KindText, cols[1].Kind)
}

func TestParse_KeysWithoutType(t *testing.T) {
	records, err := describe.Parse(strings.NewReader("NAME\nk1\n\nk2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, describe.Names(records))
	assert.Empty(t, records[0].Type)
}

func TestParse_ShortRowsAndBOM(t *testing.T) {
	records, err := describe.Parse(strings.NewReader("\ufeffname,type,kind,null?\nk1,NUMBER,,\nshort\n ,TEXT\n"))
	require.NoError(t, err)
	assert.Equal(t, []describe.Record{{Name: "k1", Type: "NUMBER"}, {Name: "short"}}, records)
}

func TestParse_Errors(t *testing.T) {
	_, err := describe.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, describe.ErrMissingHeader)

	_, err = describe.Parse(strings.NewReader("column,type\nk1,INT\n"))
	assert.ErrorIs(t, err, describe.ErrMissingHeader)

	_, err = describe.Parse(strings.NewReader("name,type\n\"unterminated,INT\n"))
	assert.Error(t, err)
}

func TestSource_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "before.csv")
	require.NoError(t, os.WriteFile(path, []byte(snowflakeListing), 0o644))

	records, err := describe.NewSource(nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = describe.NewSource(nil).Load(context.Background(), filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestSource_LoadStdin(t *testing.T) {
	src := describe.NewSource(nil).WithStdin(strings.NewReader("name\nk1\n"))
	records, err := src.Load(context.Background(), describe.StdinLocation)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1"}, describe.Names(records))
}

func TestSource_LoadObject(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("GetObject", ctx, "schemas", "prod/before.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(snowflakeListing))), nil)

	records, err := describe.NewSource(client).Load(ctx, "s3://schemas/prod/before.csv")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	client.AssertExpectations(t)
}

func TestSource_LoadObjectErrors(t *testing.T) {
	ctx := context.Background()

	_, err := describe.NewSource(nil).Load(ctx, "s3://schemas/before.csv")
	assert.ErrorContains(t, err, "object storage is not configured")

	client := new(mocks.Client)
	client.On("GetObject", ctx, "schemas", "before.csv", mock.Anything).Return(nil, assert.AnError)
	_, err = describe.NewSource(client).Load(ctx, "s3://schemas/before.csv")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "prod.schema.my.table", describe.TableName("prod_schema.my_table.csv"))
	assert.Equal(t, "before", describe.TableName("/tmp/listings/before.csv"))
	assert.Equal(t, "analytics.orders", describe.TableName("s3://schemas/daily/analytics_orders.csv"))
}
