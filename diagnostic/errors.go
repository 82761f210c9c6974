package diagnostic

import (
	"fmt"
	"strings"
)

// Kind categorizes a schema or decode failure.
type Kind string

const (
	KindSchemaType      Kind = "schema_type"      // tabular type name without a leaf mapping
	KindUnionResolution Kind = "union_resolution" // no union member accepted the value
	KindTypeMismatch    Kind = "type_mismatch"    // value does not fit the expected shape
	KindEnumMembership  Kind = "enum_membership"  // text is not a declared symbol
	KindMalformedInput  Kind = "malformed_input"  // payload text could not be parsed
	KindUnsupportedType Kind = "unsupported_type" // schema node the decoder cannot handle
	KindMissingField    Kind = "missing_field"    // required field left unset after repair
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrSchemaType      = &Error{Kind: KindSchemaType}
	ErrUnionResolution = &Error{Kind: KindUnionResolution}
	ErrTypeMismatch    = &Error{Kind: KindTypeMismatch}
	ErrEnumMembership  = &Error{Kind: KindEnumMembership}
	ErrMalformedInput  = &Error{Kind: KindMalformedInput}
	ErrUnsupportedType = &Error{Kind: KindUnsupportedType}
	ErrMissingField    = &Error{Kind: KindMissingField}
)

// Error is the structured error returned by converters and the decoder.
type Error struct {
	Kind Kind
	// Path is the chain of field names from the root record to the failure.
	Path []string
	// TypeName is the offending tabular type name or unsupported schema tag.
	TypeName string
	// Expected names the type a value had to satisfy.
	Expected string
	// Attempted lists union member type names in the order they were tried.
	Attempted []string
	// Symbols lists the allowed enum symbols.
	Symbols []string
	Detail  string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(FormatPath(e.Path))
	}

	switch e.Kind {
	case KindSchemaType:
		fmt.Fprintf(&b, ": unsupported tabular type '%s'", e.TypeName)
	case KindUnsupportedType:
		fmt.Fprintf(&b, ": unsupported type %s", e.TypeName)
	case KindUnionResolution:
		fmt.Fprintf(&b, ": value matches none of [%s]", strings.Join(e.Attempted, ", "))
	case KindEnumMembership:
		fmt.Fprintf(&b, ": expected one of [%s]", strings.Join(e.Symbols, ", "))
	case KindTypeMismatch, KindMissingField:
		if e.Expected != "" {
			b.WriteString(": expected ")
			b.WriteString(e.Expected)
		}
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}

	return false
}

// WithPath returns a copy of e located at path.
func (e *Error) WithPath(path []string) *Error {
	cp := *e
	cp.Path = clonePath(path)

	return &cp
}

// FormatPath joins field names with dots; an empty path renders as "<root>".
func FormatPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}

	return strings.Join(path, ".")
}

// SchemaType reports a tabular type name missing from the leaf type table.
func SchemaType(path []string, typeName string) *Error {
	return &Error{
		Kind:     KindSchemaType,
		Path:     clonePath(path),
		TypeName: typeName,
	}
}

// UnionResolution reports that no member of a union accepted the value.
func UnionResolution(path []string, attempted []string) *Error {
	return &Error{
		Kind:      KindUnionResolution,
		Path:      clonePath(path),
		Attempted: append([]string(nil), attempted...),
	}
}

// TypeMismatch reports a value that could not be coerced to expected.
func TypeMismatch(path []string, expected string, value any) *Error {
	return &Error{
		Kind:     KindTypeMismatch,
		Path:     clonePath(path),
		Expected: expected,
		Detail:   fmt.Sprintf("got %s", describe(value)),
	}
}

// EnumMembership reports a symbol outside the declared set.
func EnumMembership(path []string, value string, symbols []string) *Error {
	return &Error{
		Kind:    KindEnumMembership,
		Path:    clonePath(path),
		Symbols: append([]string(nil), symbols...),
		Detail:  fmt.Sprintf("got %q", value),
	}
}

// MalformedInput wraps a payload parse failure.
func MalformedInput(cause error) *Error {
	return &Error{
		Kind:  KindMalformedInput,
		Cause: cause,
	}
}

// UnsupportedType reports a schema tag the caller cannot process.
func UnsupportedType(path []string, tag string) *Error {
	return &Error{
		Kind:     KindUnsupportedType,
		Path:     clonePath(path),
		TypeName: tag,
	}
}

// MissingField reports a declared field that has no value and no null fallback.
func MissingField(path []string, field, expected string) *Error {
	return &Error{
		Kind:     KindMissingField,
		Path:     clonePath(path),
		Expected: expected,
		Detail:   fmt.Sprintf("field %q not set and not nullable", field),
	}
}

func clonePath(path []string) []string {
	if len(path) == 0 {
		return nil
	}

	return append([]string(nil), path...)
}

func describe(value any) string {
	if value == nil {
		return "null"
	}

	return fmt.Sprintf("%T", value)
}
