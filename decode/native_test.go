package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-bridge/primitive"
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

func TestNative(t *testing.T) {
	status, err := schema.NewEnum("Status", "root", "A", "B")
	require.NoError(t, err)

	rec := mustRecord(t,
		schema.Field{Name: "email", Schema: schema.NewOptional(schema.NewLeaf(primitive.KindString))},
		schema.Field{Name: "missing", Schema: schema.NewOptional(schema.NewLeaf(primitive.KindLong))},
		schema.Field{Name: "status", Schema: status},
		schema.Field{Name: "maybe", Schema: schema.NewOptional(status)},
	)

	out, err := Decode(rec, map[string]any{"email": "a@b", "status": "A", "maybe": "B"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"email":   map[string]any{"string": "a@b"},
		"missing": nil,
		"status":  "A",
		"maybe":   map[string]any{"root.Status": "B"},
	}, Native(out))
}

func TestNative_EncodesWithGoavro(t *testing.T) {
	rec := mustConvert(t,
		tabular.Field{Name: "email", Type: "STRING", Mode: tabular.ModeNullable},
		tabular.Field{Name: "age", Type: "INTEGER", Mode: tabular.ModeRequired},
		tabular.Field{Name: "ratio", Type: "FLOAT", Mode: tabular.ModeNullable},
		tabular.Field{Name: "raw", Type: "BYTES", Mode: tabular.ModeNullable},
		tabular.Field{Name: "dimension", Type: "RECORD", Mode: tabular.ModeRepeated, Fields: []tabular.Field{
			{Name: "value1", Type: "INTEGER", Mode: tabular.ModeNullable},
			{Name: "value2", Type: "STRING", Mode: tabular.ModeRequired},
		}},
		tabular.Field{Name: "owner", Type: "RECORD", Mode: tabular.ModeNullable, Fields: []tabular.Field{
			{Name: "name", Type: "STRING"},
		}},
	)

	codec, err := schema.Codec(rec)
	require.NoError(t, err)

	out, err := DecodeText(rec, []byte(`{
		age: "42",
		ratio: 0.5,
		raw: "bytes",
		dimension: [{value2: "x"}, {value1: 3, value2: "y"}],
		owner: {name: "ann", ignored: 1}
	}`))
	require.NoError(t, err)

	binary, err := codec.BinaryFromNative(nil, Native(out))
	require.NoError(t, err)

	decoded, _, err := codec.NativeFromBinary(binary)
	require.NoError(t, err)

	m, ok := decoded.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(42), m["age"])
	assert.Nil(t, m["email"])
	assert.Equal(t, map[string]any{"root.owner.Owner": map[string]any{"name": "ann"}}, m["owner"])

	dims, ok := m["dimension"].([]any)
	require.True(t, ok)
	require.Len(t, dims, 2)
	assert.Equal(t, map[string]any{"value1": map[string]any{"long": int64(3)}, "value2": "y"}, dims[1])
}
