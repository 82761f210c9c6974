// Package tabular models the column-oriented schema of a tabular store: a list of
// named fields, each with a type name, an optional mode (REQUIRED, NULLABLE or
// REPEATED), an optional description and, for RECORD fields, nested fields.
//
// Documents are read from YAML or from the JSON produced by the table schema API:
//
//	s, err := tabular.LoadFile("table.json")
//	if err != nil {
//		return err
//	}
//
//	if diags := tabular.Validate(s.Fields); diags.HasErrors() {
//		return diags.Error()
//	}
package tabular
