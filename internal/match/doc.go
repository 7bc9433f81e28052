// Package match provides identifier normalization and edit-distance ranking,
// used to suggest the intended name when a configuration refers to a record
// that does not exist.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
