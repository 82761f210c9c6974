package common

import "strings"

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// Capitalize upper-cases the first byte of an ASCII name, leaving the rest as given.
// Returns empty string if name is empty.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
