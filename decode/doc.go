// Package decode turns loosely typed data, such as a map parsed from JSON, into a
// value tree that conforms exactly to a canonical record schema.
//
// Value representation:
//
//	record   *Record (values in field order)
//	array    []any
//	map      map[string]any
//	union    Union (chosen member index and value)
//	enum     EnumSymbol
//	long     int64
//	float    float32
//	double   float64
//	boolean  bool
//	string   string
//	bytes    []byte
//	null     nil
//
// Numbers are also accepted as text ("42" for a long). Union members are tried in
// declared order and the first one that accepts the value wins. Errors are
// *diagnostic.Error values carrying the path of field names to the failure.
package decode
