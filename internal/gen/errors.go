package gen

import (
	"errors"
	"strings"
)

// Sentinel errors for records that cannot be generated.
var (
	// ErrNoNamedFields indicates a record without any assignable named field.
	ErrNoNamedFields = errors.New("record has no named fields")
	// ErrInvalidOptions indicates options that were not produced by the resolver.
	ErrInvalidOptions = errors.New("invalid setters options")
	// ErrUnexportedName indicates a public setter whose name cannot be exported,
	// e.g. an empty prefix with a field named "_x".
	ErrUnexportedName = errors.New("public setter name is not exported")
	// ErrPathCollision indicates two records generating the same file.
	ErrPathCollision = errors.New("generated file collides with another record")
)

// RecordError ties a generation failure to the record it happened for.
type RecordError struct {
	Record string // Package-qualified record name
	Field  string // Field name (if applicable)
	Cause  error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	var b strings.Builder
	b.WriteString("setters: record ")
	b.WriteString(e.Record)
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Cause
}
