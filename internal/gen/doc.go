// Package gen synthesizes and renders setter methods for records.
//
// Synthesize turns a record and its resolved options into a Unit: one Setter
// per named field, in declaration order, carrying the field annotations kept
// by the annotation filter. Render writes a Unit as gofmt-ed Go source using
// text/template, with one template per pattern:
//   - owned: func (r T) SetF(value F) T
//   - mutable: func (r *T) SetF(value F) *T
//   - immutable: func (r *T) SetF(value F) T, updating a copy
//
// Setters whose field carries //go:build lines are written to a separate
// file guarded by the combined constraint. Generator ties resolution,
// synthesis and rendering together and runs batches in parallel.
package gen
