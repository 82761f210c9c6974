package decode

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"schema-bridge/diagnostic"
	"schema-bridge/primitive"
	"schema-bridge/schema"
)

// errIncompatible marks a value rejected by a union member during probing.
// It never leaves the package.
var errIncompatible = errors.New("incompatible value")

// Decode builds a value tree conforming to rec from loosely typed data.
//
// Keys not declared by the schema are ignored at every depth. Declared fields that
// are absent from data are set to null when their schema is null or a union with
// null; any other absent field fails with diagnostic.KindMissingField.
func Decode(rec *schema.Record, data map[string]any) (*Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("decode: nil schema")
	}

	d := &decoder{}

	return d.record(rec, data)
}

// decoder carries the field path of one Decode call.
type decoder struct {
	path []string
}

// enter pushes name unless it is already on top, so that array elements, map
// values and union members share their field's path entry.
func (d *decoder) enter(name string) func() {
	if len(d.path) > 0 && d.path[len(d.path)-1] == name {
		return func() {}
	}

	d.path = append(d.path, name)

	return func() { d.path = d.path[:len(d.path)-1] }
}

// mismatch rejects value. While probing a union member the rejection is silent.
func (d *decoder) mismatch(expected string, value any, probing bool) error {
	if probing {
		return errIncompatible
	}

	return diagnostic.TypeMismatch(d.path, expected, value)
}

func (d *decoder) record(rec *schema.Record, data map[string]any) (*Record, error) {
	out := &Record{Schema: rec, Values: make([]any, len(rec.Fields))}
	set := make([]bool, len(rec.Fields))

	for i, f := range rec.Fields {
		raw, ok := data[f.Name]
		if !ok {
			continue
		}

		v, err := d.read(f.Name, f.Schema, raw, false)
		if err != nil {
			return nil, err
		}

		out.Values[i] = v
		set[i] = true
	}

	if Logger().Core().Enabled(zap.DebugLevel) {
		for key := range data {
			if _, _, ok := rec.Field(key); !ok {
				Logger().Debug("unknown key dropped",
					zap.String("record", rec.FullName()),
					zap.String("key", key),
					zap.String("path", diagnostic.FormatPath(d.path)))
			}
		}
	}

	// Unset fields that tolerate null get null, then the record is checked once.
	for i, f := range rec.Fields {
		if set[i] {
			continue
		}

		switch s := f.Schema.(type) {
		case *schema.Union:
			idx := s.NullIndex()
			if idx < 0 {
				continue
			}

			out.Values[i] = Union{Index: idx, Member: s.Members[idx]}
		case *schema.Leaf:
			if s.Kind != primitive.KindNull {
				continue
			}

			out.Values[i] = nil
		default:
			continue
		}

		set[i] = true

		Logger().Debug("absent field set to null",
			zap.String("record", rec.FullName()),
			zap.String("field", f.Name))
	}

	for i, f := range rec.Fields {
		if !set[i] {
			return nil, diagnostic.MissingField(append(d.path, f.Name), f.Name, f.Schema.TypeName())
		}
	}

	return out, nil
}

// read decodes value against s for the field called name.
func (d *decoder) read(name string, s schema.Schema, value any, probing bool) (any, error) {
	leave := d.enter(name)
	defer leave()

	switch n := s.(type) {
	case *schema.Record:
		m, ok := asMap(value)
		if !ok {
			return nil, d.mismatch("record", value, probing)
		}

		return d.record(n, m)

	case *schema.Array:
		if value == nil {
			return []any{}, nil
		}

		items, ok := value.([]any)
		if !ok {
			return nil, d.mismatch("array", value, probing)
		}

		out := make([]any, len(items))
		for i, item := range items {
			v, err := d.read(name, n.Items, item, false)
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil

	case *schema.Map:
		m, ok := asMap(value)
		if !ok {
			return nil, d.mismatch("map", value, probing)
		}

		out := make(map[string]any, len(m))
		for k, raw := range m {
			v, err := d.read(name, n.Values, raw, false)
			if err != nil {
				return nil, err
			}

			out[k] = v
		}

		return out, nil

	case *schema.Union:
		return d.union(name, n, value)

	case *schema.Leaf:
		return d.leaf(n, value, probing)

	default:
		return nil, diagnostic.UnsupportedType(d.path, fmt.Sprintf("%T", s))
	}
}

// union returns the first member, in declared order, that accepts value.
// Any failure inside a member, including nested ones, moves on to the next.
func (d *decoder) union(name string, u *schema.Union, value any) (any, error) {
	for i, m := range u.Members {
		v, err := d.read(name, m, value, true)
		if err != nil {
			Logger().Debug("union member rejected",
				zap.String("path", diagnostic.FormatPath(d.path)),
				zap.String("member", m.TypeName()),
				zap.Error(err))

			continue
		}

		return Union{Index: i, Member: m, Value: v}, nil
	}

	return nil, diagnostic.UnionResolution(d.path, u.MemberNames())
}

// asMap accepts the map shapes produced by JSON and YAML decoders.
func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}

			out[key] = v
		}

		return out, true
	default:
		return nil, false
	}
}
