package options

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Pattern,Visibility -linecomment -output=options_string.go

// Pattern is the method shape of every setter generated for a record.
type Pattern int

const (
	_ Pattern = iota // zero value is an unresolved pattern

	PatternOwned     // owned
	PatternMutable   // mutable
	PatternImmutable // immutable
)

// Visibility of the generated setters.
type Visibility int

const (
	_ Visibility = iota // zero value is an unresolved visibility

	VisibilityPublic  // public
	VisibilityPrivate // private
)

// DefaultPrefix is prepended to the field name to form the setter name.
const DefaultPrefix = "Set"

// Options is the resolved configuration of one record.
type Options struct {
	// Enabled is false when the record carries a skip directive.
	Enabled bool
	// Pattern selects the receiver and result shape of every setter.
	Pattern Pattern
	// Visibility applies uniformly to every setter of the record.
	Visibility Visibility
	// Prefix is joined with the field name to form the setter name.
	Prefix string
}

// Default returns the options of a record without any directive:
// enabled, mutable, public, "Set" prefix.
func Default() Options {
	return Options{
		Enabled:    true,
		Pattern:    PatternMutable,
		Visibility: VisibilityPublic,
		Prefix:     DefaultPrefix,
	}
}

// String renders the options the way they would be written in a directive.
func (o Options) String() string {
	if !o.Enabled {
		return "skip"
	}

	return fmt.Sprintf("pattern=%s visibility=%s prefix=%s", o.Pattern, o.Visibility, o.Prefix)
}

// ParsePattern maps a directive value to a Pattern.
func ParsePattern(s string) (Pattern, bool) {
	for _, p := range []Pattern{PatternOwned, PatternMutable, PatternImmutable} {
		if p.String() == s {
			return p, true
		}
	}

	return 0, false
}

// ParseVisibility maps a directive value to a Visibility.
func ParseVisibility(s string) (Visibility, bool) {
	for _, v := range []Visibility{VisibilityPublic, VisibilityPrivate} {
		if v.String() == s {
			return v, true
		}
	}

	return 0, false
}

func choices[E fmt.Stringer](values ...E) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.String())
	}

	return strings.Join(names, "|")
}
