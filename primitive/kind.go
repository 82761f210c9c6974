package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the tag of a canonical leaf type.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean
	KindBytes
	KindLong   // int64
	KindFloat  // float32
	KindDouble // float64
	KindString
	KindEnumSymbol // string restricted to a declared symbol set
	KindNull

	// KindRecord is not a leaf. The tabular table returns it for RECORD so that callers
	// switch to structural handling.
	KindRecord

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLeaf reports whether k denotes a scalar leaf type.
func (k KindEnum) IsLeaf() bool {
	return k > 0 && k < KindRecord
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindLong, KindFloat, KindDouble:
		return true
	}
}

// Bits returns the width of a numeric kind.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have meaningful bits amount, but requested for: " + k.String())
	case KindLong, KindDouble:
		return 64
	case KindFloat:
		return 32
	}
}

// AvroName returns the name used for the kind in the canonical textual rendering.
func (k KindEnum) AvroName() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindBytes:
		return "bytes"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindEnumSymbol:
		return "enum"
	case KindNull:
		return "null"
	case KindRecord:
		return "record"
	default:
		return ""
	}
}

// FromAvroName is the inverse of AvroName for the primitive (unnamed) kinds.
// It returns the zero KindEnum for anything else.
func FromAvroName(name string) KindEnum {
	switch name {
	case "boolean":
		return KindBoolean
	case "bytes":
		return KindBytes
	case "long", "int":
		return KindLong
	case "float":
		return KindFloat
	case "double":
		return KindDouble
	case "string":
		return KindString
	case "null":
		return KindNull
	default:
		return 0
	}
}
