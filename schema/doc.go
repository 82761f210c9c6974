// Package schema is the canonical record schema model: records, arrays, maps,
// unions and scalar leaves, plus their normative JSON rendering.
//
// # Model
//
// A schema is a tree of immutable nodes:
//
//   - *Record: named, namespaced, ordered fields with unique names
//   - *Array: repeated items
//   - *Map: string keyed values
//   - *Union: ordered alternatives; optional values are a two member union with null
//   - *Leaf: boolean, bytes, long, float, double, string, enum or null
//
// Null may appear first or second in an optional union; helpers such as
// Union.NonNull and Unwrap do not depend on the order.
//
// # Rendering
//
// Render writes the top record as
//
//	{"name": "Root", "type": "record", "fields": [...]}
//
// with nested records written inline at first use and by full name afterwards.
// Parse reads the same grammar back. Verify compiles the rendering with goavro.
package schema
