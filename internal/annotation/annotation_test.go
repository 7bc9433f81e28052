package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Kind
	}{
		{"// Name is the user name.", KindDoc},
		{"/* block comment */", KindDoc},
		{"//", KindDoc},
		{"// go:build is mentioned here", KindDoc},
		{"//go:build linux && amd64", KindBuild},
		{"// +build linux", KindBuild},
		{"//nolint", KindLint},
		{"//nolint:revive,errcheck", KindLint},
		{"//nolint // legacy name", KindLint},
		{"//lint:ignore U1000 kept for reflection", KindLint},
		{"//lint:file-ignore SA1019 deprecated", KindLint},
		{"//setters:gen pattern=owned", KindDirective},
		{"//setters:skip", KindDirective},
		{"//go:embed data.txt", KindPragma},
		{"//foo:bar", KindPragma},
		{"// setters:gen", KindDoc},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			a := Parse(tt.text)
			assert.Equal(t, tt.want, a.Kind)
			assert.Equal(t, tt.text, a.Text, "text must be kept verbatim")
		})
	}
}

func TestSplitDirective(t *testing.T) {
	t.Parallel()

	d, ok := SplitDirective("//setters:gen  pattern=owned, private ")
	assert.True(t, ok)
	assert.Equal(t, Directive{Tool: "setters", Verb: "gen", Args: "pattern=owned, private"}, d)
	assert.Equal(t, "//setters:gen pattern=owned, private", d.String())

	d, ok = SplitDirective("//setters:skip")
	assert.True(t, ok)
	assert.Equal(t, "skip", d.Verb)
	assert.Empty(t, d.Args)

	for _, line := range []string{"// setters:gen", "//Setters:gen", "//setters:", "//setters", "setters:gen", "//:gen"} {
		_, ok := SplitDirective(line)
		assert.False(t, ok, line)
	}
}

func TestAnnotation_Directive(t *testing.T) {
	t.Parallel()

	d, ok := Parse("//setters:gen owned").Directive()
	assert.True(t, ok)
	assert.Equal(t, "owned", d.Args)

	_, ok = Doc("// setters:gen owned").Directive()
	assert.False(t, ok)

	_, ok = Tag(`json:"name"`).Directive()
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "doc", KindDoc.String())
	assert.Equal(t, "tag", KindTag.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
