package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-bridge/primitive"
)

func TestNewRecord(t *testing.T) {
	long := NewLeaf(primitive.KindLong)

	rec, err := NewRecord("User", "root.user", "a user",
		Field{Name: "id", Schema: long},
		Field{Name: "name", Schema: NewOptional(NewLeaf(primitive.KindString))},
	)
	require.NoError(t, err)
	assert.Equal(t, "root.user.User", rec.FullName())

	f, i, ok := rec.Field("name")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, IsNullable(f.Schema))

	_, i, ok = rec.Field("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, i)

	_, err = NewRecord("R", "", "", Field{Name: "a", Schema: long}, Field{Name: "a", Schema: long})
	assert.ErrorContains(t, err, "duplicate field")

	_, err = NewRecord("R", "", "", Field{Name: "", Schema: long})
	assert.ErrorContains(t, err, "empty name")

	_, err = NewRecord("R", "", "", Field{Name: "a"})
	assert.ErrorContains(t, err, "no schema")
}

func TestNewEnum(t *testing.T) {
	e, err := NewEnum("Status", "root", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "root.Status", e.FullName())
	assert.Equal(t, "enum", e.TypeName())
	assert.True(t, e.HasSymbol("A"))
	assert.False(t, e.HasSymbol("a"))

	empty, err := NewEnum("Empty", "")
	require.NoError(t, err)
	assert.NotNil(t, empty.Symbols)

	_, err = NewEnum("Dup", "", "A", "A")
	assert.Error(t, err)

	_, err = NewEnum("", "", "A")
	assert.Error(t, err)

	_, err = NewEnum("Blank", "", "")
	assert.Error(t, err)
}

func TestUnionHelpers(t *testing.T) {
	long := NewLeaf(primitive.KindLong)

	nullSecond := NewOptional(long)
	nullFirst := &Union{Members: []Schema{Null(), long}}
	noNull := &Union{Members: []Schema{long, NewLeaf(primitive.KindString)}}
	onlyNull := &Union{Members: []Schema{Null()}}

	for _, u := range []*Union{nullSecond, nullFirst} {
		assert.True(t, u.IsOptional())
		assert.True(t, IsNullable(u))

		inner, ok := u.NonNull()
		require.True(t, ok)
		assert.Equal(t, long, inner)
		assert.Equal(t, long, Unwrap(u))
	}

	assert.Equal(t, 1, nullSecond.NullIndex())
	assert.Equal(t, 0, nullFirst.NullIndex())

	assert.Equal(t, -1, noNull.NullIndex())
	assert.False(t, noNull.IsOptional())
	assert.False(t, IsNullable(noNull))
	assert.Equal(t, Schema(noNull), Unwrap(noNull))
	assert.Equal(t, []string{"long", "string"}, noNull.MemberNames())

	_, ok := onlyNull.NonNull()
	assert.False(t, ok)
	assert.False(t, onlyNull.IsOptional())

	assert.False(t, IsNullable(long))
	assert.True(t, IsNull(Null()))
	assert.False(t, IsNull(long))
}

func TestTypes(t *testing.T) {
	rec := &Record{Name: "R"}

	tests := []struct {
		s    Schema
		typ  Type
		name string
	}{
		{rec, TypeRecord, "record"},
		{&Array{Items: rec}, TypeArray, "array"},
		{&Map{Values: rec}, TypeMap, "map"},
		{NewOptional(rec), TypeUnion, "union"},
		{NewLeaf(primitive.KindDouble), TypeLeaf, "double"},
		{Null(), TypeLeaf, "null"},
		{NewLeaf(primitive.KindRecord), TypeLeaf, "record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.s.Type())
			assert.Equal(t, tt.name, tt.s.TypeName())
		})
	}
}
