package row

import (
	"encoding/base64"
	"fmt"
	"slices"

	"schema-bridge/decode"
	"schema-bridge/diagnostic"
	"schema-bridge/primitive"
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

// Row is one table row keyed by column name. Null columns are left out, as in
// the JSON files exported by the table store.
type Row map[string]any

// schemaKinds lists the canonical leaf kinds each tabular type accepts.
var schemaKinds = map[string][]primitive.KindEnum{
	"BOOLEAN":   {primitive.KindBoolean},
	"BYTES":     {primitive.KindBytes},
	"DATE":      {primitive.KindString},
	"DATETIME":  {primitive.KindString},
	"TIME":      {primitive.KindString},
	"TIMESTAMP": {primitive.KindString, primitive.KindLong},
	"FLOAT":     {primitive.KindDouble, primitive.KindFloat},
	"INTEGER":   {primitive.KindLong},
	"LONG":      {primitive.KindLong},
	"STRING":    {primitive.KindEnumSymbol, primitive.KindString},
	"RECORD":    {primitive.KindRecord},
}

// FromRecord maps a decoded record to a table row described by fields.
// Columns are looked up by name in rec.
func FromRecord(rec *decode.Record, fields []tabular.Field) (Row, error) {
	if rec == nil {
		return nil, fmt.Errorf("row: nil record")
	}

	return fromRecord(rec, fields, nil)
}

func fromRecord(rec *decode.Record, fields []tabular.Field, parent []string) (Row, error) {
	out := make(Row, len(fields))

	for _, tf := range fields {
		path := append(parent[:len(parent):len(parent)], tf.Name)

		f, i, ok := rec.Schema.Field(tf.Name)
		if !ok {
			return nil, diagnostic.MissingField(path, tf.Name, tf.Type)
		}

		v, err := cell(f.Schema, tf, rec.Values[i], path)
		if err != nil {
			return nil, err
		}

		if v != nil {
			out[tf.Name] = v
		}
	}

	return out, nil
}

func cell(s schema.Schema, tf tabular.Field, value any, path []string) (any, error) {
	switch modeOf(tf, s) {
	case tabular.ModeRequired:
		return required(s, tf, value, path)

	case tabular.ModeRepeated:
		arr, ok := s.(*schema.Array)
		if !ok {
			return nil, schemaMismatch(path, "array", s)
		}

		if value == nil {
			return []any{}, nil
		}

		items, ok := value.([]any)
		if !ok {
			return nil, diagnostic.TypeMismatch(path, "array", value)
		}

		out := make([]any, len(items))
		for i, item := range items {
			v, err := required(arr.Items, tf, item, path)
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil

	case tabular.ModeNullable:
		if schema.IsNull(s) {
			return nil, nil
		}

		u, ok := s.(*schema.Union)
		if !ok || !u.IsOptional() {
			return nil, schemaMismatch(path, "union of null and "+tf.Type, s)
		}

		if un, ok := value.(decode.Union); ok {
			value = un.Value
		}

		if value == nil {
			return nil, nil
		}

		inner, _ := u.NonNull()

		return required(inner, tf, value, path)

	default:
		return nil, diagnostic.UnsupportedType(path, "mode "+string(tf.Mode))
	}
}

// modeOf reads an absent mode as NULLABLE, unless the column's schema is not a
// union. Schema conversion leaves such columns bare.
func modeOf(tf tabular.Field, s schema.Schema) tabular.Mode {
	mode := tf.Mode.Normalize()
	if mode != "" {
		return mode
	}

	if _, ok := s.(*schema.Union); !ok {
		return tabular.ModeRequired
	}

	return mode.OrNullable()
}

// required converts a non-null value of s to its cell representation for tf.Type.
func required(s schema.Schema, tf tabular.Field, value any, path []string) (any, error) {
	if value == nil {
		return nil, diagnostic.TypeMismatch(path, tf.Type, nil)
	}

	kinds, ok := schemaKinds[tf.Type]
	if !ok {
		return nil, diagnostic.UnsupportedType(path, tf.Type)
	}

	kind := kindOf(s)
	if !slices.Contains(kinds, kind) {
		return nil, schemaMismatch(path, tf.Type, s)
	}

	switch tf.Type {
	case "BOOLEAN":
		if b, ok := value.(bool); ok {
			return b, nil
		}

	case "BYTES":
		if b, ok := value.([]byte); ok {
			return base64.StdEncoding.EncodeToString(b), nil
		}

	case "DATE", "DATETIME", "TIME", "STRING":
		switch v := value.(type) {
		case string:
			return v, nil
		case decode.EnumSymbol:
			return string(v), nil
		}

	case "TIMESTAMP":
		switch v := value.(type) {
		case string:
			return v, nil
		case int64:
			return FormatTimestamp(v), nil
		}

	case "FLOAT":
		switch value.(type) {
		case float32, float64:
			return value, nil
		}

	case "INTEGER", "LONG":
		switch value.(type) {
		case int64, int32, int:
			return value, nil
		}

	case "RECORD":
		if r, ok := value.(*decode.Record); ok {
			return fromRecord(r, tf.Fields, path)
		}
	}

	return nil, diagnostic.TypeMismatch(path, tf.Type, value)
}

func kindOf(s schema.Schema) primitive.KindEnum {
	switch n := s.(type) {
	case *schema.Leaf:
		return n.Kind
	case *schema.Record:
		return primitive.KindRecord
	default:
		return 0
	}
}

func schemaMismatch(path []string, expected string, s schema.Schema) *diagnostic.Error {
	err := diagnostic.TypeMismatch(path, expected, nil)
	err.Detail = "schema is " + s.TypeName()

	return err
}
