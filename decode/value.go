package decode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"schema-bridge/schema"
)

// Record is a decoded record: one value per declared field, in declaration order.
type Record struct {
	Schema *schema.Record
	Values []any
}

// Get returns the value of the field called name.
func (r *Record) Get(name string) (any, bool) {
	_, i, ok := r.Schema.Field(name)
	if !ok {
		return nil, false
	}

	return r.Values[i], true
}

// MarshalJSON writes the record as an object with keys in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range r.Schema.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Union is a value together with the union member that accepted it.
type Union struct {
	// Index is the position of Member in the union.
	Index  int
	Member schema.Schema
	Value  any
}

// IsNull reports whether the null member was chosen.
func (u Union) IsNull() bool {
	return schema.IsNull(u.Member)
}

// MarshalJSON writes the plain value, without the member tag.
func (u Union) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Value)
}

// EnumSymbol is a decoded enum value. It is always one of the declared symbols.
type EnumSymbol string
