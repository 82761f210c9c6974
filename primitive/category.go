package primitive

import (
	"schema-bridge/diagnostic"
)

// Category is a tabular type bucket used when a canonical schema is written back as a
// tabular one. Several tabular type names collapse into each category.
type Category string

const (
	CategoryBoolean Category = "BOOLEAN"
	CategoryBytes   Category = "BYTES"
	CategoryFloat   Category = "FLOAT"
	CategoryInteger Category = "INTEGER"
	CategoryString  Category = "STRING"
	CategoryRecord  Category = "RECORD"

	// CategoryNull is produced for a null-typed field and for a bare union in a
	// leaf position.
	CategoryNull Category = "NULL"
)

// tabularKinds is the forward table: tabular type name -> canonical kind.
var tabularKinds = map[string]KindEnum{
	"BOOLEAN":   KindBoolean,
	"BYTES":     KindBytes,
	"INTEGER":   KindLong,
	"LONG":      KindLong,
	"FLOAT":     KindFloat,
	"DOUBLE":    KindDouble,
	"STRING":    KindString,
	"RECORD":    KindRecord,
	"DATE":      KindString,
	"DATETIME":  KindString,
	"TIME":      KindString,
	"TIMESTAMP": KindString,
	"NULL":      KindNull,
}

// FromTabular resolves a tabular type name. The match is exact (case-sensitive).
// Unknown names fail with a diagnostic.KindSchemaType error naming the input.
func FromTabular(typeName string) (KindEnum, error) {
	kind, ok := tabularKinds[typeName]
	if !ok {
		return 0, diagnostic.SchemaType(nil, typeName)
	}

	return kind, nil
}

// IsTabularType reports whether typeName has an entry in the forward table.
func IsTabularType(typeName string) bool {
	_, ok := tabularKinds[typeName]
	return ok
}

// TabularTypes returns every tabular type name of the forward table.
func TabularTypes() []string {
	return []string{
		"BOOLEAN", "BYTES", "INTEGER", "LONG", "FLOAT", "DOUBLE", "STRING", "RECORD",
		"DATE", "DATETIME", "TIME", "TIMESTAMP", "NULL",
	}
}

// CategoryOf is the reverse table for leaf kinds. KindRecord maps to CategoryRecord.
// Null has no dedicated bucket and falls into CategoryString.
func CategoryOf(k KindEnum) Category {
	switch k {
	case KindBoolean:
		return CategoryBoolean
	case KindBytes:
		return CategoryBytes
	case KindLong:
		return CategoryInteger
	case KindFloat, KindDouble:
		return CategoryFloat
	case KindRecord:
		return CategoryRecord
	default:
		return CategoryString
	}
}
