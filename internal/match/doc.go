// Package match provides name normalization, Levenshtein distance calculation,
// and candidate ranking used to suggest corrections for misspelled names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
