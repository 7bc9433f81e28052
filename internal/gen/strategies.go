package gen

import (
	"bytes"
	"fmt"

	"setter-generator/internal/annotation"
	"setter-generator/internal/options"
)

// renderSetter executes the template of the setter's pattern.
func renderSetter(u *Unit, s *Setter) (string, error) {
	var name string

	switch s.Pattern {
	case options.PatternOwned, options.PatternMutable, options.PatternImmutable:
		name = s.Pattern.String()
	default:
		return "", fmt.Errorf("%w: pattern %s", ErrInvalidOptions, s.Pattern)
	}

	data := setterData{
		Comments: setterComments(s.Annotations),
		Recv:     u.Receiver,
		RecvType: u.RecvType(),
		Name:     s.Name,
		Field:    s.Field,
		Type:     s.Type,
		Clone:    u.Clone,
	}

	var buf bytes.Buffer
	if err := setterTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", name, err)
	}

	return buf.String(), nil
}

// setterComments returns the annotations written above the method. Build
// constraint lines are excluded: Go only honors them at the top of a file,
// where the record's own constraint is written instead.
func setterComments(as []annotation.Annotation) []string {
	var out []string

	for _, a := range as {
		if a.Kind == annotation.KindBuild {
			continue
		}

		out = append(out, a.Text)
	}

	return out
}
