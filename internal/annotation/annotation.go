package annotation

import (
	"go/build/constraint"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies an annotation.
type Kind int

const (
	_ Kind = iota // zero value is an unclassified annotation

	KindDoc       // doc
	KindBuild     // build
	KindLint      // lint
	KindDirective // directive
	KindPragma    // pragma
	KindTag       // tag
)

// DirectiveTool is the tool name of the directives this generator owns.
const DirectiveTool = "setters"

// Annotation is one piece of metadata attached to a record or a field.
type Annotation struct {
	Kind Kind   // Classification, see Parse
	Text string // Verbatim source text, e.g. "// Name is the user name." or `json:"name"`
}

// Doc returns a documentation annotation for a raw comment line.
func Doc(text string) Annotation {
	return Annotation{Kind: KindDoc, Text: text}
}

// Tag returns a struct tag annotation. The raw tag is kept without backquotes.
func Tag(raw string) Annotation {
	return Annotation{Kind: KindTag, Text: raw}
}

// Parse classifies a single comment line as written in the source,
// including its leading "//" or "/*".
func Parse(text string) Annotation {
	line := strings.TrimSpace(text)

	switch {
	case constraint.IsGoBuild(line) || constraint.IsPlusBuild(line):
		return Annotation{Kind: KindBuild, Text: text}
	case isLint(line):
		return Annotation{Kind: KindLint, Text: text}
	}

	if d, ok := SplitDirective(line); ok {
		if d.Tool == DirectiveTool {
			return Annotation{Kind: KindDirective, Text: text}
		}

		return Annotation{Kind: KindPragma, Text: text}
	}

	return Annotation{Kind: KindDoc, Text: text}
}

// isLint reports whether line suppresses a linter.
func isLint(line string) bool {
	rest, ok := strings.CutPrefix(line, "//")
	if !ok {
		return false
	}

	if rest == "nolint" || strings.HasPrefix(rest, "nolint:") || strings.HasPrefix(rest, "nolint ") {
		return true
	}

	return strings.HasPrefix(rest, "lint:ignore ") || strings.HasPrefix(rest, "lint:file-ignore ")
}

// Directive is a parsed "//tool:verb args" comment.
type Directive struct {
	Tool string // e.g. "setters"
	Verb string // e.g. "gen"
	Args string // everything after the first blank, trimmed
}

// String renders the directive back to its comment form.
func (d Directive) String() string {
	s := "//" + d.Tool + ":" + d.Verb
	if d.Args != "" {
		s += " " + d.Args
	}

	return s
}

// SplitDirective parses a line of the form "//tool:verb args". Following the
// go/ast convention there must be no space between "//" and the tool name,
// and tool and verb start with a lowercase letter or digit.
func SplitDirective(line string) (Directive, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "//")
	if !ok {
		return Directive{}, false
	}

	head, args := rest, ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		head, args = rest[:i], rest[i+1:]
	}

	tool, verb, ok := strings.Cut(head, ":")
	if !ok || !isDirectiveWord(tool) || verb == "" || !isDirectiveStart(verb[0]) {
		return Directive{}, false
	}

	return Directive{Tool: tool, Verb: verb, Args: strings.TrimSpace(args)}, true
}

// Directive returns the parsed directive carried by a, if any.
func (a Annotation) Directive() (Directive, bool) {
	if a.Kind != KindDirective && a.Kind != KindPragma {
		return Directive{}, false
	}

	return SplitDirective(a.Text)
}

func isDirectiveWord(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if !isDirectiveStart(s[i]) {
			return false
		}
	}

	return true
}

func isDirectiveStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}
