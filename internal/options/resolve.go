package options

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"setter-generator/internal/annotation"
)

// Directive verbs understood by the resolver.
const (
	VerbGen  = "gen"
	VerbSkip = "skip"
)

// Directive keys understood in a gen payload.
const (
	KeyPattern    = "pattern"
	KeyVisibility = "visibility"
	KeyPrefix     = "prefix"
)

// ErrMalformedDirective is wrapped by every configuration error.
var ErrMalformedDirective = errors.New("malformed setters directive")

// DirectiveError describes an invalid directive.
type DirectiveError struct {
	Directive string // verbatim directive text
	Key       string // offending key, empty for verb errors
	Value     string // offending value or token
	Reason    string
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedDirective, e.Directive, e.Reason)
}

func (e *DirectiveError) Unwrap() error {
	return ErrMalformedDirective
}

// Resolve derives the options of a record from its annotations.
// Annotations other than setters directives are ignored.
func Resolve(annotations []annotation.Annotation) (Options, error) {
	return Apply(Default(), annotations)
}

// Apply applies the setters directives found in annotations on top of base,
// in order. It never modifies base.
func Apply(base Options, annotations []annotation.Annotation) (Options, error) {
	opts := base

	for _, a := range annotations {
		if a.Kind != annotation.KindDirective {
			continue
		}

		d, ok := a.Directive()
		if !ok || d.Tool != annotation.DirectiveTool {
			continue
		}

		switch d.Verb {
		case VerbGen:
			if err := applyPayload(&opts, d); err != nil {
				return Options{}, err
			}
		case VerbSkip:
			if d.Args != "" {
				return Options{}, &DirectiveError{
					Directive: d.String(),
					Value:     d.Args,
					Reason:    "skip takes no arguments",
				}
			}

			opts.Enabled = false
		default:
			return Options{}, &DirectiveError{
				Directive: d.String(),
				Value:     d.Verb,
				Reason:    fmt.Sprintf("unknown verb %q, expected %s or %s", d.Verb, VerbGen, VerbSkip),
			}
		}
	}

	return opts, nil
}

// applyPayload applies the tokens of a gen directive to opts.
func applyPayload(opts *Options, d annotation.Directive) error {
	tokens := strings.FieldsFunc(d.Args, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	for _, tok := range tokens {
		key, value, hasValue := strings.Cut(tok, "=")
		if !hasValue {
			if err := applyShorthand(opts, tok); err != nil {
				return &DirectiveError{Directive: d.String(), Value: tok, Reason: err.Error()}
			}

			continue
		}

		if err := applyKey(opts, key, value); err != nil {
			return &DirectiveError{Directive: d.String(), Key: key, Value: value, Reason: err.Error()}
		}
	}

	return nil
}

func applyShorthand(opts *Options, tok string) error {
	if p, ok := ParsePattern(tok); ok {
		opts.Pattern = p
		return nil
	}

	if v, ok := ParseVisibility(tok); ok {
		opts.Visibility = v
		return nil
	}

	return fmt.Errorf("unknown key %q", tok)
}

func applyKey(opts *Options, key, value string) error {
	switch key {
	case KeyPattern:
		p, ok := ParsePattern(value)
		if !ok {
			return fmt.Errorf("invalid pattern %q, expected %s",
				value, choices(PatternOwned, PatternMutable, PatternImmutable))
		}

		opts.Pattern = p
	case KeyVisibility:
		v, ok := ParseVisibility(value)
		if !ok {
			return fmt.Errorf("invalid visibility %q, expected %s",
				value, choices(VisibilityPublic, VisibilityPrivate))
		}

		opts.Visibility = v
	case KeyPrefix:
		if !validPrefix(value) {
			return fmt.Errorf("invalid prefix %q, expected an identifier fragment starting with a letter", value)
		}

		opts.Prefix = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	return nil
}

// validPrefix accepts the empty prefix or letters, digits and underscores
// starting with a letter.
func validPrefix(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}

	return true
}
