package primitive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-bridge/diagnostic"
	"schema-bridge/primitive"
)

func Example() {
	for _, name := range []string{"INTEGER", "LONG", "TIMESTAMP", "RECORD", "NULL"} {
		k, _ := primitive.FromTabular(name)
		fmt.Println(name, k, k.AvroName(), primitive.CategoryOf(k))
	}
	// Output:
	// INTEGER KindLong long INTEGER
	// LONG KindLong long INTEGER
	// TIMESTAMP KindString string STRING
	// RECORD KindRecord record RECORD
	// NULL KindNull null STRING
}

func TestFromTabular_AllTypes(t *testing.T) {
	for _, name := range primitive.TabularTypes() {
		t.Run(name, func(t *testing.T) {
			k, err := primitive.FromTabular(name)
			require.NoError(t, err)
			assert.True(t, k.IsLeaf() || k == primitive.KindRecord)
			assert.True(t, primitive.IsTabularType(name))
		})
	}
}

func TestFromTabular_Unknown(t *testing.T) {
	for _, name := range []string{"GEOGRAPHY", "integer", "", "Record"} {
		t.Run(name, func(t *testing.T) {
			k, err := primitive.FromTabular(name)
			assert.Equal(t, primitive.KindEnum(0), k)
			assert.ErrorIs(t, err, diagnostic.ErrSchemaType)
			assert.Contains(t, err.Error(), "'"+name+"'")
			assert.False(t, primitive.IsTabularType(name))
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := map[primitive.KindEnum]primitive.Category{
		primitive.KindBoolean:    primitive.CategoryBoolean,
		primitive.KindBytes:      primitive.CategoryBytes,
		primitive.KindLong:       primitive.CategoryInteger,
		primitive.KindFloat:      primitive.CategoryFloat,
		primitive.KindDouble:     primitive.CategoryFloat,
		primitive.KindString:     primitive.CategoryString,
		primitive.KindEnumSymbol: primitive.CategoryString,
		primitive.KindNull:       primitive.CategoryString,
		primitive.KindRecord:     primitive.CategoryRecord,
	}

	for k, want := range tests {
		assert.Equal(t, want, primitive.CategoryOf(k), k.String())
	}
}

func TestAvroNames(t *testing.T) {
	for k := primitive.KindBoolean; int(k) < primitive.KindTotal; k++ {
		name := k.AvroName()
		require.NotEmpty(t, name, k.String())

		if k == primitive.KindEnumSymbol || k == primitive.KindRecord {
			assert.Equal(t, primitive.KindEnum(0), primitive.FromAvroName(name), "named types have no primitive name")
			continue
		}

		assert.Equal(t, k, primitive.FromAvroName(name))
	}

	assert.Equal(t, primitive.KindLong, primitive.FromAvroName("int"))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromAvroName("fixed"))
}

func TestNumbers(t *testing.T) {
	assert.True(t, primitive.KindLong.IsNumber())
	assert.True(t, primitive.KindFloat.IsNumber())
	assert.False(t, primitive.KindString.IsNumber())

	assert.Equal(t, 64, primitive.KindLong.Bits())
	assert.Equal(t, 32, primitive.KindFloat.Bits())
	assert.Equal(t, 64, primitive.KindDouble.Bits())
	assert.Panics(t, func() { primitive.KindBoolean.Bits() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KindEnumSymbol", primitive.KindEnumSymbol.String())
	assert.Equal(t, "KindEnum(0)", primitive.KindEnum(0).String())
	assert.Equal(t, "KindEnum(42)", primitive.KindEnum(42).String())
}
