package gen

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"setter-generator/internal/analyze"
	"setter-generator/internal/annotation"
	"setter-generator/internal/options"
)

// Unit is the method collection generated for one record.
type Unit struct {
	Record     string              // Record type name
	ID         string              // Package-qualified record name
	PkgName    string              // Package the methods are declared in
	Dir        string              // Directory of the record's source file
	Constraint string              // Build constraint of the record's source file
	TypeParams []analyze.TypeParam // Copied verbatim from the record
	Receiver   string              // Receiver variable name
	Clone      bool                // Immutable setters copy through Clone()
	Setters    []Setter            // One per named field, in declaration order
}

// Setter is one generated method.
type Setter struct {
	Name        string                  // Method name
	Field       string                  // Field assigned by the method
	Type        string                  // Parameter type, the field's declared type
	Imports     []analyze.Import        // Packages referenced by Type
	Pattern     options.Pattern         // Receiver and result shape
	Visibility  options.Visibility      // Matches the case of Name
	Annotations []annotation.Annotation // Kept field annotations, original order
}

// Empty reports whether the unit has no setters.
func (u *Unit) Empty() bool {
	return len(u.Setters) == 0
}

// RecvType returns the receiver type without pointer, e.g. "Pair[K, V]".
func (u *Unit) RecvType() string {
	if len(u.TypeParams) == 0 {
		return u.Record
	}

	names := make([]string, 0, len(u.TypeParams))
	for _, tp := range u.TypeParams {
		names = append(names, tp.Name)
	}

	return u.Record + "[" + strings.Join(names, ", ") + "]"
}

// Synthesize builds the setters of rec according to opts.
//
// A disabled record yields an empty unit and no error. A record without any
// named field is rejected with ErrNoNamedFields. Blank fields are skipped.
// A public setter whose name does not start with an upper-case letter is
// rejected with ErrUnexportedName.
func Synthesize(rec *analyze.Record, opts options.Options) (*Unit, error) {
	unit := &Unit{
		Record:     rec.Name,
		ID:         rec.ID(),
		PkgName:    rec.PkgName,
		Dir:        rec.Dir,
		Constraint: rec.Constraint,
		TypeParams: slices.Clone(rec.TypeParams),
		Receiver:   receiverName(rec.Name),
		Clone:      rec.HasClone,
	}

	if !opts.Enabled {
		return unit, nil
	}

	if err := validOptions(opts); err != nil {
		return nil, &RecordError{Record: rec.ID(), Cause: err}
	}

	if !slices.ContainsFunc(rec.Fields, analyze.Field.Named) {
		return nil, &RecordError{Record: rec.ID(), Cause: ErrNoNamedFields}
	}

	for _, f := range rec.Fields {
		if !f.Named() {
			continue
		}

		name := setterName(opts.Prefix, f.Name, opts.Visibility)
		if opts.Visibility == options.VisibilityPublic && !token.IsExported(name) {
			return nil, &RecordError{
				Record: rec.ID(),
				Field:  f.Name,
				Cause:  fmt.Errorf("%w: %q, use a prefix", ErrUnexportedName, name),
			}
		}

		unit.Setters = append(unit.Setters, Setter{
			Name:        name,
			Field:       f.Name,
			Type:        f.Type,
			Imports:     f.Imports,
			Pattern:     opts.Pattern,
			Visibility:  opts.Visibility,
			Annotations: annotation.Filter(f.Annotations),
		})
	}

	return unit, nil
}

func validOptions(opts options.Options) error {
	switch opts.Pattern {
	case options.PatternOwned, options.PatternMutable, options.PatternImmutable:
	default:
		return fmt.Errorf("%w: pattern %s", ErrInvalidOptions, opts.Pattern)
	}

	switch opts.Visibility {
	case options.VisibilityPublic, options.VisibilityPrivate:
	default:
		return fmt.Errorf("%w: visibility %s", ErrInvalidOptions, opts.Visibility)
	}

	return nil
}

// setterName joins prefix and field name and sets the case of the first
// letter from the visibility: SetName for public, setName for private.
func setterName(prefix, field string, vis options.Visibility) string {
	name := prefix + upperFirst(field)
	if vis == options.VisibilityPrivate {
		return lowerFirst(name)
	}

	return upperFirst(name)
}

// receiverName returns the conventional one-letter receiver for a type name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if !unicode.IsLetter(r) {
		return "r"
	}

	return string(unicode.ToLower(r))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
