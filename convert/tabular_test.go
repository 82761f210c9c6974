package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-bridge/primitive"
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

func mustRecord(t *testing.T, name, namespace string, fields ...schema.Field) *schema.Record {
	t.Helper()

	rec, err := schema.NewRecord(name, namespace, "", fields...)
	require.NoError(t, err)

	return rec
}

func leaf(k primitive.KindEnum) *schema.Leaf {
	return schema.NewLeaf(k)
}

func TestToTabular_Leaves(t *testing.T) {
	status, err := schema.NewEnum("Status", "root", "A", "B")
	require.NoError(t, err)

	rec := mustRecord(t, "Root", "root",
		schema.Field{Name: "b", Schema: leaf(primitive.KindBoolean)},
		schema.Field{Name: "raw", Schema: leaf(primitive.KindBytes)},
		schema.Field{Name: "n", Schema: leaf(primitive.KindLong)},
		schema.Field{Name: "f", Schema: leaf(primitive.KindFloat)},
		schema.Field{Name: "d", Schema: leaf(primitive.KindDouble)},
		schema.Field{Name: "s", Schema: leaf(primitive.KindString), Doc: "text"},
		schema.Field{Name: "status", Schema: status},
		schema.Field{Name: "nothing", Schema: schema.Null()},
	)

	assert.Equal(t, []tabular.Field{
		{Name: "b", Type: "BOOLEAN", Mode: tabular.ModeRequired},
		{Name: "raw", Type: "BYTES", Mode: tabular.ModeRequired},
		{Name: "n", Type: "INTEGER", Mode: tabular.ModeRequired},
		{Name: "f", Type: "FLOAT", Mode: tabular.ModeRequired},
		{Name: "d", Type: "FLOAT", Mode: tabular.ModeRequired},
		{Name: "s", Type: "STRING", Mode: tabular.ModeRequired, Description: "text"},
		{Name: "status", Type: "STRING", Mode: tabular.ModeRequired},
		{Name: "nothing", Type: "NULL", Mode: tabular.ModeNullable},
	}, ToTabular(rec))
}

func TestToTabular_Composites(t *testing.T) {
	dim := mustRecord(t, "Dimension", "root.dimension",
		schema.Field{Name: "value", Schema: schema.NewOptional(leaf(primitive.KindLong))},
	)
	owner := mustRecord(t, "Owner", "root.owner",
		schema.Field{Name: "id", Schema: leaf(primitive.KindLong)},
	)
	nullFirst := &schema.Union{Members: []schema.Schema{schema.Null(), leaf(primitive.KindDouble)}}

	rec := mustRecord(t, "Root", "root",
		schema.Field{Name: "dimension", Schema: &schema.Array{Items: dim}},
		schema.Field{Name: "tags", Schema: &schema.Array{Items: leaf(primitive.KindString)}},
		schema.Field{Name: "owner", Schema: owner},
		schema.Field{Name: "maybeOwner", Schema: schema.NewOptional(owner)},
		schema.Field{Name: "score", Schema: nullFirst},
		schema.Field{Name: "labels", Schema: &schema.Map{Values: leaf(primitive.KindString)}},
		schema.Field{Name: "history", Schema: schema.NewOptional(&schema.Array{Items: dim})},
		schema.Field{Name: "counts", Schema: schema.NewOptional(&schema.Array{Items: leaf(primitive.KindLong)})},
	)

	dimFields := []tabular.Field{{Name: "value", Type: "INTEGER", Mode: tabular.ModeNullable}}
	ownerFields := []tabular.Field{{Name: "id", Type: "INTEGER", Mode: tabular.ModeRequired}}

	assert.Equal(t, []tabular.Field{
		{Name: "dimension", Type: "RECORD", Mode: tabular.ModeRepeated, Fields: dimFields},
		{Name: "tags", Type: "STRING", Mode: tabular.ModeRepeated},
		{Name: "owner", Type: "RECORD", Mode: tabular.ModeRequired, Fields: ownerFields},
		{Name: "maybeOwner", Type: "RECORD", Mode: tabular.ModeNullable, Fields: ownerFields},
		{Name: "score", Type: "FLOAT", Mode: tabular.ModeNullable},
		{Name: "labels", Type: "RECORD", Mode: tabular.ModeRequired},
		{Name: "history", Type: "RECORD", Mode: tabular.ModeNullable, Fields: dimFields},
		{Name: "counts", Type: "INTEGER", Mode: tabular.ModeNullable},
	}, ToTabular(rec))
}

func TestToTabular_BareNullUnion(t *testing.T) {
	rec := mustRecord(t, "Root", "root",
		schema.Field{Name: "x", Schema: &schema.Union{Members: []schema.Schema{schema.Null()}}},
	)

	assert.Equal(t, []tabular.Field{
		{Name: "x", Type: "NULL", Mode: tabular.ModeNullable},
	}, ToTabular(rec))
}

func TestToTabular_Exclude(t *testing.T) {
	inner := mustRecord(t, "User", "root.user",
		schema.Field{Name: "id", Schema: leaf(primitive.KindLong)},
		schema.Field{Name: "secret", Schema: leaf(primitive.KindString)},
	)
	only := mustRecord(t, "Only", "root.only",
		schema.Field{Name: "secret", Schema: leaf(primitive.KindString)},
	)

	rec := mustRecord(t, "Root", "root",
		schema.Field{Name: "secret", Schema: leaf(primitive.KindString)},
		schema.Field{Name: "user", Schema: inner},
		schema.Field{Name: "only", Schema: only},
	)

	got := ToTabular(rec, "secret")
	require.Len(t, got, 2)
	assert.Equal(t, "user", got[0].Name)
	assert.Equal(t, []tabular.Field{{Name: "id", Type: "INTEGER", Mode: tabular.ModeRequired}}, got[0].Fields)
	assert.Equal(t, "only", got[1].Name)
	assert.Nil(t, got[1].Fields, "an emptied list is absent")

	assert.Len(t, ToTabular(rec), 3, "no exclusion")
	assert.Nil(t, ToTabular(rec, "secret", "user", "only"))
	assert.Nil(t, ToTabular(nil))
}

func TestRoundTrip(t *testing.T) {
	fields := []tabular.Field{
		{Name: "email", Type: "STRING", Mode: tabular.ModeNullable, Description: "contact"},
		{Name: "age", Type: "INTEGER", Mode: tabular.ModeRequired},
		{Name: "active", Type: "BOOLEAN", Mode: tabular.ModeRequired},
		{Name: "dimension", Type: "RECORD", Mode: tabular.ModeRepeated, Fields: []tabular.Field{
			{Name: "value1", Type: "INTEGER", Mode: tabular.ModeNullable},
			{Name: "value2", Type: "STRING", Mode: tabular.ModeRequired},
		}},
		{Name: "owner", Type: "RECORD", Mode: tabular.ModeNullable, Fields: []tabular.Field{
			{Name: "name", Type: "STRING", Mode: tabular.ModeRequired},
			{Name: "raw", Type: "BYTES", Mode: tabular.ModeNullable},
		}},
		{Name: "ratio", Type: "FLOAT", Mode: tabular.ModeNullable},
		{Name: "gap", Type: "NULL", Mode: tabular.ModeNullable},
	}

	rec, err := ToCanonical(fields)
	require.NoError(t, err)

	back := ToTabular(rec)
	assert.Equal(t, fields, back)

	again, err := ToCanonical(back)
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}
