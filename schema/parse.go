package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"schema-bridge/primitive"
)

// LoadFile reads and parses a canonical schema document whose top node is a record.
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return ParseRecord(data)
}

// ParseRecord parses the textual rendering and requires a record at the top.
// A top record without namespace is placed in RootNamespace.
func ParseRecord(data []byte) (*Record, error) {
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}

	rec, ok := s.(*Record)
	if !ok {
		return nil, fmt.Errorf("schema top node is %s, expected record", s.TypeName())
	}

	return rec, nil
}

// Parse reads any schema node in the textual rendering. Named records and enums
// may be referenced by name after their definition.
func Parse(data []byte) (Schema, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	p := &parser{named: make(map[string]Schema)}

	return p.parse(doc, RootNamespace)
}

type parser struct {
	named map[string]Schema
}

func (p *parser) parse(doc any, enclosing string) (Schema, error) {
	switch v := doc.(type) {
	case string:
		return p.reference(v, enclosing)

	case []any:
		members := make([]Schema, 0, len(v))
		for i, m := range v {
			s, err := p.parse(m, enclosing)
			if err != nil {
				return nil, fmt.Errorf("union member %d: %w", i, err)
			}

			members = append(members, s)
		}

		return &Union{Members: members}, nil

	case map[string]any:
		return p.object(v, enclosing)

	default:
		return nil, fmt.Errorf("unexpected schema element %T", doc)
	}
}

func (p *parser) reference(name, enclosing string) (Schema, error) {
	if k := primitive.FromAvroName(name); k != 0 {
		return NewLeaf(k), nil
	}

	if s, ok := p.named[name]; ok {
		return s, nil
	}

	if s, ok := p.named[qualify(enclosing, name)]; ok {
		return s, nil
	}

	return nil, fmt.Errorf("unknown type reference %q", name)
}

func (p *parser) object(obj map[string]any, enclosing string) (Schema, error) {
	switch t := obj["type"].(type) {
	case string:
		switch t {
		case "record", "error":
			return p.record(obj, enclosing)
		case "enum":
			return p.enum(obj, enclosing)
		case "array":
			items, err := p.parse(obj["items"], enclosing)
			if err != nil {
				return nil, fmt.Errorf("array items: %w", err)
			}

			return &Array{Items: items}, nil
		case "map":
			values, err := p.parse(obj["values"], enclosing)
			if err != nil {
				return nil, fmt.Errorf("map values: %w", err)
			}

			return &Map{Values: values}, nil
		default:
			// {"type": "long", "logicalType": ...} and friends
			return p.reference(t, enclosing)
		}

	case nil:
		return nil, fmt.Errorf("schema object without type")

	default:
		return p.parse(t, enclosing)
	}
}

func (p *parser) record(obj map[string]any, enclosing string) (Schema, error) {
	name, namespace, err := names(obj, enclosing)
	if err != nil {
		return nil, err
	}

	doc, _ := obj["doc"].(string)
	rec := &Record{Name: name, Namespace: namespace, Doc: doc}

	full := rec.FullName()
	if _, dup := p.named[full]; dup {
		return nil, fmt.Errorf("type %s defined twice", full)
	}

	// registered before its fields so that they can refer back to it
	p.named[full] = rec

	rawFields, ok := obj["fields"].([]any)
	if !ok && obj["fields"] != nil {
		return nil, fmt.Errorf("record %s: fields must be a list", full)
	}

	fields := make([]Field, 0, len(rawFields))
	for i, raw := range rawFields {
		fobj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %s: field %d is not an object", full, i)
		}

		fname, _ := fobj["name"].(string)
		fdoc, _ := fobj["doc"].(string)

		ftype, err := p.parse(fobj["type"], namespace)
		if err != nil {
			return nil, fmt.Errorf("record %s: field %s: %w", full, fname, err)
		}

		fields = append(fields, Field{Name: fname, Schema: ftype, Doc: fdoc})
	}

	checked, err := NewRecord(name, namespace, doc, fields...)
	if err != nil {
		return nil, err
	}

	rec.Fields = checked.Fields

	return rec, nil
}

func (p *parser) enum(obj map[string]any, enclosing string) (Schema, error) {
	name, namespace, err := names(obj, enclosing)
	if err != nil {
		return nil, err
	}

	raw, _ := obj["symbols"].([]any)
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		sym, ok := s.(string)
		if !ok {
			return nil, fmt.Errorf("enum %s: symbol %v is not a string", name, s)
		}

		symbols = append(symbols, sym)
	}

	leaf, err := NewEnum(name, namespace, symbols...)
	if err != nil {
		return nil, err
	}

	full := leaf.FullName()
	if _, dup := p.named[full]; dup {
		return nil, fmt.Errorf("type %s defined twice", full)
	}

	p.named[full] = leaf

	return leaf, nil
}

// names splits a possibly dotted name and falls back to the enclosing namespace.
func names(obj map[string]any, enclosing string) (name, namespace string, err error) {
	name, _ = obj["name"].(string)
	if name == "" {
		return "", "", fmt.Errorf("named type without name")
	}

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:], name[:i], nil
	}

	namespace, _ = obj["namespace"].(string)
	if namespace == "" {
		namespace = enclosing
	}

	return name, namespace, nil
}
