package schema

import (
	"encoding/json"
	"fmt"

	"schema-bridge/primitive"
)

const (
	// RootName is the name of the record that wraps every converted tabular schema.
	RootName = "Root"
	// RootNamespace is the namespace of the root record and the prefix of every
	// nested record namespace.
	RootNamespace = "root"
)

// The json tags fix key order; encoding/json writes struct fields in declaration order.

type topRecordJSON struct {
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Namespace string      `json:"namespace,omitempty"`
	Doc       string      `json:"doc,omitempty"`
	Fields    []fieldJSON `json:"fields"`
}

type recordJSON struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Doc       string      `json:"doc,omitempty"`
	Fields    []fieldJSON `json:"fields"`
}

type fieldJSON struct {
	Name string `json:"name"`
	Type any    `json:"type"`
	Doc  string `json:"doc,omitempty"`
}

type arrayJSON struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

type mapJSON struct {
	Type   string `json:"type"`
	Values any    `json:"values"`
}

type enumJSON struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Namespace string   `json:"namespace,omitempty"`
	Symbols   []string `json:"symbols"`
}

// Render produces the normative textual form of a top-level record:
//
//	{"name": "Root", "type": "record", "fields": [...]}
//
// The root namespace is implied and not written out.
func Render(rec *Record) ([]byte, error) {
	doc, err := newRenderer().top(rec)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// RenderIndent is Render with indentation, for human consumption.
func RenderIndent(rec *Record, prefix, indent string) ([]byte, error) {
	doc, err := newRenderer().top(rec)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, prefix, indent)
}

// Marshal renders any schema node, e.g. a single field type.
func Marshal(s Schema) ([]byte, error) {
	doc, err := newRenderer().node(s)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// renderer remembers named types already written so that a node shared in
// several positions is defined once and referenced by name afterwards.
type renderer struct {
	defined map[string]struct{}
}

func newRenderer() *renderer {
	return &renderer{defined: make(map[string]struct{})}
}

func (r *renderer) top(rec *Record) (any, error) {
	if rec == nil {
		return nil, fmt.Errorf("render: nil record")
	}

	r.defined[rec.FullName()] = struct{}{}

	fields, err := r.fields(rec.Fields)
	if err != nil {
		return nil, err
	}

	ns := rec.Namespace
	if ns == RootNamespace {
		ns = ""
	}

	return topRecordJSON{
		Name:      rec.Name,
		Type:      "record",
		Namespace: ns,
		Doc:       rec.Doc,
		Fields:    fields,
	}, nil
}

func (r *renderer) fields(fields []Field) ([]fieldJSON, error) {
	out := make([]fieldJSON, 0, len(fields))
	for _, f := range fields {
		t, err := r.node(f.Schema)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		out = append(out, fieldJSON{Name: f.Name, Type: t, Doc: f.Doc})
	}

	return out, nil
}

func (r *renderer) node(s Schema) (any, error) {
	switch n := s.(type) {
	case *Record:
		full := n.FullName()
		if _, ok := r.defined[full]; ok {
			return full, nil
		}

		r.defined[full] = struct{}{}

		fields, err := r.fields(n.Fields)
		if err != nil {
			return nil, err
		}

		return recordJSON{
			Type:      "record",
			Name:      n.Name,
			Namespace: n.Namespace,
			Doc:       n.Doc,
			Fields:    fields,
		}, nil

	case *Array:
		items, err := r.node(n.Items)
		if err != nil {
			return nil, err
		}

		return arrayJSON{Type: "array", Items: items}, nil

	case *Map:
		values, err := r.node(n.Values)
		if err != nil {
			return nil, err
		}

		return mapJSON{Type: "map", Values: values}, nil

	case *Union:
		members := make([]any, 0, len(n.Members))
		for _, m := range n.Members {
			v, err := r.node(m)
			if err != nil {
				return nil, err
			}

			members = append(members, v)
		}

		return members, nil

	case *Leaf:
		if n.Kind != primitive.KindEnumSymbol {
			if !n.Kind.IsLeaf() {
				return nil, fmt.Errorf("render: leaf with non-scalar kind %s", n.Kind)
			}

			return n.Kind.AvroName(), nil
		}

		full := n.FullName()
		if _, ok := r.defined[full]; ok {
			return full, nil
		}

		r.defined[full] = struct{}{}

		return enumJSON{
			Type:      "enum",
			Name:      n.Name,
			Namespace: n.Namespace,
			Symbols:   n.Symbols,
		}, nil

	default:
		return nil, fmt.Errorf("render: unsupported schema node %T", s)
	}
}
