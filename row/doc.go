// Package row maps decoded records to table rows.
//
// The tabular schema drives the mapping: each column is read from the decoded
// record by name, its mode decides between a single value, a list or an
// omitted null, and its type decides the cell representation (bytes as base64
// text, enum symbols as text, nested records as nested rows).
package row
