package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	require.NoError(t, Verify(sampleRecord(t)))
}

func TestVerify_RejectsDuplicateUnionMembers(t *testing.T) {
	rec, err := NewRecord(RootName, RootNamespace, "",
		Field{Name: "x", Schema: &Union{Members: []Schema{Null(), Null()}}},
	)
	require.NoError(t, err)

	assert.ErrorContains(t, Verify(rec), "rejected by avro")
}

func TestCodec(t *testing.T) {
	codec, err := Codec(sampleRecord(t))
	require.NoError(t, err)

	native := map[string]any{
		"email":     nil,
		"age":       int64(3),
		"dimension": []any{map[string]any{"value1": nil, "value2": "x"}},
		"user":      map[string]any{"root.user.User": map[string]any{"id": int64(1)}},
	}

	binary, err := codec.BinaryFromNative(nil, native)
	require.NoError(t, err)

	back, _, err := codec.NativeFromBinary(binary)
	require.NoError(t, err)
	assert.Equal(t, int64(3), back.(map[string]any)["age"])
}
