package decode

import (
	"schema-bridge/schema"
)

// Native converts a decoded value to the native form of the goavro library:
// records become maps, a non-null union value becomes a single-entry map keyed by
// the member's full type name, and enum symbols become strings.
func Native(value any) any {
	switch v := value.(type) {
	case *Record:
		out := make(map[string]any, len(v.Values))
		for i, f := range v.Schema.Fields {
			out[f.Name] = Native(v.Values[i])
		}

		return out

	case Union:
		if v.IsNull() {
			return nil
		}

		return map[string]any{memberName(v.Member): Native(v.Value)}

	case EnumSymbol:
		return string(v)

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Native(item)
		}

		return out

	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Native(item)
		}

		return out

	default:
		return value
	}
}

func memberName(s schema.Schema) string {
	switch n := s.(type) {
	case *schema.Record:
		return n.FullName()
	case *schema.Leaf:
		return n.FullName()
	default:
		return s.TypeName()
	}
}
