package convert

import (
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

var defaultConverter = NewConverter(DefaultConfig())

// ToCanonical converts fields with the default configuration.
func ToCanonical(fields []tabular.Field) (*schema.Record, error) {
	return defaultConverter.ToCanonical(fields)
}

// ToTabular converts rec with the default configuration.
func ToTabular(rec *schema.Record, exclude ...string) []tabular.Field {
	return defaultConverter.ToTabular(rec, exclude...)
}
