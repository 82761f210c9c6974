package tabular

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode is the cardinality annotation of a tabular field.
type Mode string

const (
	ModeRequired Mode = "REQUIRED"
	ModeNullable Mode = "NULLABLE"
	ModeRepeated Mode = "REPEATED"
)

// IsValid returns true if the mode is one of the three recognized values.
func (m Mode) IsValid() bool {
	return m == ModeRequired || m == ModeNullable || m == ModeRepeated
}

// Normalize upper-cases the mode; an empty mode stays empty.
func (m Mode) Normalize() Mode {
	return Mode(strings.ToUpper(strings.TrimSpace(string(m))))
}

// OrNullable returns the mode, or NULLABLE when it is absent. Value mapping reads
// an absent mode this way; schema conversion does not.
func (m Mode) OrNullable() Mode {
	if m == "" {
		return ModeNullable
	}

	return m
}

// RecordType is the tabular type name of a composite field.
const RecordType = "RECORD"

// Field is one column of a tabular schema. Nested is only meaningful for RECORD
// fields. Keys follow the BigQuery table schema JSON.
type Field struct {
	Name        string  `yaml:"name" json:"name"`
	Type        string  `yaml:"type" json:"type"`
	Mode        Mode    `yaml:"mode,omitempty" json:"mode,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// IsRecord reports whether the field is composite.
func (f Field) IsRecord() bool {
	return f.Type == RecordType
}

// Find returns the field called name at the top level of fields.
func Find(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Schema is a tabular schema document. It unmarshals from any of:
//
//	fields: [...]             # TableSchema
//	schema: {fields: [...]}   # Table resource
//	[...]                     # bare field list
type Schema struct {
	Fields []Field `yaml:"fields" json:"fields"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Schema.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var fields []Field

		err := node.Decode(&fields)
		if err != nil {
			return err
		}

		s.Fields = fields

		return nil

	case yaml.MappingNode:
		var doc struct {
			Fields []Field `yaml:"fields"`
			Schema *struct {
				Fields []Field `yaml:"fields"`
			} `yaml:"schema"`
		}

		err := node.Decode(&doc)
		if err != nil {
			return err
		}

		s.Fields = doc.Fields
		if doc.Schema != nil && len(doc.Fields) == 0 {
			s.Fields = doc.Schema.Fields
		}

		return nil

	default:
		return fmt.Errorf("expected field list or schema object, got %v", node.Kind)
	}
}
