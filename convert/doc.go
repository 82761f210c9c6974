// Package convert translates tabular schemas into canonical record schemas and back.
//
// Tabular to canonical:
//
//	name: STRING NULLABLE           -> {"name": "name", "type": ["string", "null"]}
//	user: RECORD REPEATED {id LONG} -> {"name": "user", "type": {"type": "array",
//	                                     "items": {"type": "record", "name": "User",
//	                                     "namespace": "root.user", ...}}}
//
// Nested records are named after their field with the first letter upper-cased and
// live in the parent namespace extended by the lower-cased field name.
//
// Canonical to tabular maps arrays to REPEATED, unions with null to NULLABLE and
// everything else to REQUIRED. Leaf types collapse into the BOOLEAN, BYTES, FLOAT,
// INTEGER, STRING and RECORD categories.
package convert
