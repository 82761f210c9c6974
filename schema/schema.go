package schema

import (
	"fmt"
	"strings"

	"schema-bridge/primitive"
)

// Type tags the variants of a canonical schema node.
type Type int

const (
	TypeUnknown Type = iota
	TypeLeaf
	TypeRecord
	TypeArray
	TypeMap
	TypeUnion
)

// Schema is a node of the canonical schema tree. Nodes are immutable once built
// and may be shared between goroutines.
type Schema interface {
	Type() Type
	// TypeName is the name used in error reports and in union member listings,
	// e.g. "long", "null", "record".
	TypeName() string
}

// Field is a named slot of a Record.
type Field struct {
	Name   string
	Schema Schema
	Doc    string
}

// Record is an ordered set of uniquely named fields.
type Record struct {
	Name      string
	Namespace string
	Doc       string
	Fields    []Field
}

// Array holds zero or more values of Items.
type Array struct {
	Items Schema
}

// Map is a string-keyed dictionary of Values.
type Map struct {
	Values Schema
}

// Union is an ordered list of alternatives. Member order drives decoding.
type Union struct {
	Members []Schema
}

// Leaf is a scalar. Name, Namespace and Symbols are only meaningful for enums.
type Leaf struct {
	Kind      primitive.KindEnum
	Name      string
	Namespace string
	Symbols   []string
}

func (*Record) Type() Type { return TypeRecord }
func (*Array) Type() Type  { return TypeArray }
func (*Map) Type() Type    { return TypeMap }
func (*Union) Type() Type  { return TypeUnion }
func (*Leaf) Type() Type   { return TypeLeaf }

func (*Record) TypeName() string { return "record" }
func (*Array) TypeName() string  { return "array" }
func (*Map) TypeName() string    { return "map" }
func (*Union) TypeName() string  { return "union" }

func (l *Leaf) TypeName() string {
	if name := l.Kind.AvroName(); name != "" {
		return name
	}

	return l.Kind.String()
}

// NewRecord builds a record, rejecting duplicate or empty field names.
func NewRecord(name, namespace, doc string, fields ...Field) (*Record, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("record %s: field with empty name", name)
		}

		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("record %s: duplicate field %q", name, f.Name)
		}

		if f.Schema == nil {
			return nil, fmt.Errorf("record %s: field %q has no schema", name, f.Name)
		}

		seen[f.Name] = struct{}{}
	}

	return &Record{
		Name:      name,
		Namespace: namespace,
		Doc:       doc,
		Fields:    fields,
	}, nil
}

// FullName is the dotted namespace-qualified record name.
func (r *Record) FullName() string {
	return qualify(r.Namespace, r.Name)
}

// Field returns the field called name and its position.
func (r *Record) Field(name string) (Field, int, bool) {
	for i, f := range r.Fields {
		if f.Name == name {
			return f, i, true
		}
	}

	return Field{}, -1, false
}

// NewLeaf returns a scalar node of kind k. Use NewEnum for enums.
func NewLeaf(k primitive.KindEnum) *Leaf {
	return &Leaf{Kind: k}
}

// Null returns the null-type leaf.
func Null() *Leaf {
	return &Leaf{Kind: primitive.KindNull}
}

// NewEnum builds an enum leaf. Symbols must be unique and non-empty.
func NewEnum(name, namespace string, symbols ...string) (*Leaf, error) {
	if name == "" {
		return nil, fmt.Errorf("enum without name")
	}

	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("enum %s: empty symbol", name)
		}

		if _, ok := seen[s]; ok {
			return nil, fmt.Errorf("enum %s: duplicate symbol %q", name, s)
		}

		seen[s] = struct{}{}
	}

	return &Leaf{
		Kind:      primitive.KindEnumSymbol,
		Name:      name,
		Namespace: namespace,
		Symbols:   append(make([]string, 0, len(symbols)), symbols...),
	}, nil
}

// FullName is the qualified enum name, or the kind name for other leaves.
func (l *Leaf) FullName() string {
	if l.Kind != primitive.KindEnumSymbol {
		return l.TypeName()
	}

	return qualify(l.Namespace, l.Name)
}

// HasSymbol reports whether s is a declared enum symbol (exact match).
func (l *Leaf) HasSymbol(s string) bool {
	for _, sym := range l.Symbols {
		if sym == s {
			return true
		}
	}

	return false
}

// NewOptional wraps s in a two-member union with null in second position.
func NewOptional(s Schema) *Union {
	return &Union{Members: []Schema{s, Null()}}
}

// NullIndex returns the position of the null-type member or -1.
func (u *Union) NullIndex() int {
	for i, m := range u.Members {
		if IsNull(m) {
			return i
		}
	}

	return -1
}

// IsOptional reports whether u is the two-member null union used for optionality.
func (u *Union) IsOptional() bool {
	return len(u.Members) == 2 && u.NullIndex() >= 0
}

// NonNull returns the first member that is not the null-type, regardless of
// whether null comes first or second.
func (u *Union) NonNull() (Schema, bool) {
	for _, m := range u.Members {
		if !IsNull(m) {
			return m, true
		}
	}

	return nil, false
}

// MemberNames lists TypeName of every member in declared order.
func (u *Union) MemberNames() []string {
	names := make([]string, len(u.Members))
	for i, m := range u.Members {
		names[i] = m.TypeName()
	}

	return names
}

// IsNull reports whether s is the null-type leaf.
func IsNull(s Schema) bool {
	l, ok := s.(*Leaf)
	return ok && l.Kind == primitive.KindNull
}

// IsNullable reports whether s is a union that admits null.
func IsNullable(s Schema) bool {
	u, ok := s.(*Union)
	return ok && u.NullIndex() >= 0
}

// Unwrap strips an optional union down to its non-null member.
// Any other schema is returned as is.
func Unwrap(s Schema) Schema {
	if u, ok := s.(*Union); ok && u.IsOptional() {
		if inner, ok := u.NonNull(); ok {
			return inner
		}
	}

	return s
}

func qualify(namespace, name string) string {
	if namespace == "" || strings.Contains(name, ".") {
		return name
	}

	return namespace + "." + name
}
