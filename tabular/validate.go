package tabular

import (
	"fmt"

	"schema-bridge/diagnostic"
	"schema-bridge/internal/common"
	"schema-bridge/internal/match"
	"schema-bridge/primitive"
)

// Diagnostic codes reported by Validate.
const (
	CodeUnknownType    = "unknown_type"
	CodeEmptyName      = "empty_name"
	CodeDuplicateField = "duplicate_field"
	CodeUnknownMode    = "unknown_mode"
	CodeRepeatedLeaf   = "repeated_leaf"
	CodeNestedOnLeaf   = "nested_on_leaf"
	CodeEmptyRecord    = "empty_record"
)

// Validate reports every problem of a field list in one pass. Only unknown type
// names, empty and duplicate field names are errors, since they make conversion
// fail. Everything else is a warning about information conversion drops.
func Validate(fields []Field) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	validateFields(diags, fields, "")

	return diags
}

func validateFields(diags *diagnostic.Diagnostics, fields []Field, prefix string) {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		if f.Name == "" {
			diags.AddError(CodeEmptyName, "field without a name", prefix)
		} else if _, dup := seen[f.Name]; dup {
			diags.AddError(CodeDuplicateField, fmt.Sprintf("duplicate field %q", f.Name), path)
		}

		seen[f.Name] = struct{}{}

		if !primitive.IsTabularType(f.Type) {
			diags.AddError(CodeUnknownType,
				fmt.Sprintf("unsupported tabular type '%s'", f.Type), path,
				match.Suggest(f.Type, primitive.TabularTypes(), 2)...)

			continue
		}

		mode := f.Mode.Normalize()
		if mode != "" && !mode.IsValid() {
			diags.AddWarning(CodeUnknownMode,
				fmt.Sprintf("unknown mode %q is read as a plain value", f.Mode), path)
		}

		if f.IsRecord() {
			if common.IsEmpty(f.Fields) {
				diags.AddWarning(CodeEmptyRecord, "record without nested fields", path)
			}

			validateFields(diags, f.Fields, path)

			continue
		}

		if mode == ModeRepeated {
			diags.AddWarning(CodeRepeatedLeaf,
				fmt.Sprintf("repeated %s converts to a single value unless repeated leaf arrays are enabled", f.Type),
				path)
		}

		if !common.IsEmpty(f.Fields) {
			diags.AddWarning(CodeNestedOnLeaf,
				fmt.Sprintf("nested fields of %s field are ignored", f.Type), path)
		}
	}
}
