// Package diagnostic provides structured errors, warnings and notes about a
// setters generation run.
//
// Key capabilities:
//   - Per-record errors (unsupported record shape, malformed directive)
//   - Configuration warnings (records named in the config file but not found)
//   - Notes about records whose setters are disabled
package diagnostic
