package convert

import (
	"slices"

	"go.uber.org/zap"

	"schema-bridge/primitive"
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

// ToTabular writes rec back as a tabular field list. Fields whose name is in
// exclude are dropped at every depth, before their children are visited.
// A list that ends up empty is returned as nil.
func (c *Converter) ToTabular(rec *schema.Record, exclude ...string) []tabular.Field {
	if rec == nil {
		return nil
	}

	return toTabularFields(rec.Fields, exclude)
}

func toTabularFields(fields []schema.Field, exclude []string) []tabular.Field {
	var out []tabular.Field

	for _, f := range fields {
		if slices.Contains(exclude, f.Name) {
			Logger().Debug("field excluded", zap.String("field", f.Name))
			continue
		}

		out = append(out, toTabularField(f, exclude))
	}

	return out
}

func toTabularField(f schema.Field, exclude []string) tabular.Field {
	tf := tabular.Field{
		Name:        f.Name,
		Type:        string(bucket(f.Schema)),
		Mode:        tabular.ModeRequired,
		Description: f.Doc,
	}

	switch s := f.Schema.(type) {
	case *schema.Leaf:
		if s.Kind == primitive.KindNull {
			tf.Type = string(primitive.CategoryNull)
			tf.Mode = tabular.ModeNullable
		}

	case *schema.Array:
		tf.Mode = tabular.ModeRepeated
		tf.Type = string(bucket(s.Items))
		if rec, ok := s.Items.(*schema.Record); ok {
			tf.Fields = toTabularFields(rec.Fields, exclude)
		}

	case *schema.Record:
		tf.Fields = toTabularFields(s.Fields, exclude)

	case *schema.Union:
		for _, m := range s.Members {
			switch ms := m.(type) {
			case *schema.Record:
				tf.Type = tabular.RecordType
				tf.Fields = toTabularFields(ms.Fields, exclude)
			case *schema.Array:
				if rec, ok := ms.Items.(*schema.Record); ok {
					tf.Type = tabular.RecordType
					tf.Fields = toTabularFields(rec.Fields, exclude)
				} else {
					tf.Type = string(bucket(ms.Items))
				}
			default:
				if schema.IsNull(m) {
					tf.Mode = tabular.ModeNullable
				} else {
					tf.Type = string(bucket(m))
				}
			}
		}
	}

	return tf
}

// bucket is the reverse leaf table extended to composite nodes.
func bucket(s schema.Schema) primitive.Category {
	switch n := s.(type) {
	case *schema.Leaf:
		return primitive.CategoryOf(n.Kind)
	case *schema.Union:
		return primitive.CategoryNull
	case *schema.Record, *schema.Map, *schema.Array:
		return primitive.CategoryRecord
	default:
		return primitive.CategoryString
	}
}
