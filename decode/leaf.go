package decode

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"schema-bridge/diagnostic"
	"schema-bridge/primitive"
	"schema-bridge/schema"
)

func (d *decoder) leaf(l *schema.Leaf, value any, probing bool) (any, error) {
	switch l.Kind {
	case primitive.KindNull:
		if value != nil {
			return nil, d.mismatch("null", value, probing)
		}

		return nil, nil

	case primitive.KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, d.mismatch("boolean", value, probing)
		}

		return b, nil

	case primitive.KindString:
		s, ok := text(value)
		if !ok {
			return nil, d.mismatch("string", value, probing)
		}

		return s, nil

	case primitive.KindBytes:
		switch v := value.(type) {
		case []byte:
			return v, nil
		case string:
			return []byte(v), nil
		default:
			return nil, d.mismatch("bytes", value, probing)
		}

	case primitive.KindEnumSymbol:
		s, ok := text(value)
		if !ok {
			return nil, d.mismatch(l.FullName(), value, probing)
		}

		if !l.HasSymbol(s) {
			return nil, diagnostic.EnumMembership(d.path, s, l.Symbols)
		}

		return EnumSymbol(s), nil

	case primitive.KindLong:
		n, ok := toLong(value)
		if !ok {
			return nil, d.mismatch("long", value, probing)
		}

		return n, nil

	case primitive.KindFloat, primitive.KindDouble:
		f, ok := toFloat(value, l.Kind.Bits())
		if !ok {
			return nil, d.mismatch(l.TypeName(), value, probing)
		}

		if l.Kind == primitive.KindFloat {
			return float32(f), nil
		}

		return f, nil

	default:
		return nil, diagnostic.UnsupportedType(d.path, l.Kind.String())
	}
}

func text(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case EnumSymbol:
		return string(v), true
	default:
		return "", false
	}
}

// toLong accepts integers, non-integral numbers (truncated toward zero) and
// base-10 integer text.
func toLong(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return fromUint(v)
	case float32:
		return truncate(float64(v)), true
	case float64:
		return truncate(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}

		f, err := v.Float64()
		if err != nil {
			return 0, false
		}

		return truncate(f), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

func fromUint(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

// truncate drops the fraction and saturates at the int64 range. NaN becomes 0.
func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}

// parseFloat accepts out of range text as the signed infinity, the same value a
// native number of that size converts to.
func parseFloat(s string, bitSize int) (float64, bool) {
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return f, true
}

// toFloat accepts any number and decimal text parsed at the given bit size.
func toFloat(value any, bitSize int) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		return parseFloat(v.String(), bitSize)
	case string:
		return parseFloat(v, bitSize)
	default:
		return 0, false
	}
}
