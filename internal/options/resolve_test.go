package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setter-generator/internal/annotation"
)

func parseAll(lines ...string) []annotation.Annotation {
	out := make([]annotation.Annotation, 0, len(lines))
	for _, l := range lines {
		out = append(out, annotation.Parse(l))
	}

	return out
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	opts, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
	assert.True(t, opts.Enabled)
	assert.Equal(t, PatternMutable, opts.Pattern)
	assert.Equal(t, VisibilityPublic, opts.Visibility)
	assert.Equal(t, DefaultPrefix, opts.Prefix)

	opts, err = Resolve(parseAll("// Lorem is a record.", "//nolint:revive", "//go:embed x"))
	require.NoError(t, err)
	assert.Equal(t, Default(), opts, "non-directive annotations do not change options")
}

func TestResolve_Directives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  Options
	}{
		{
			name:  "bare gen keeps defaults",
			lines: []string{"//setters:gen"},
			want:  Default(),
		},
		{
			name:  "owned shorthand",
			lines: []string{"//setters:gen owned"},
			want:  Options{Enabled: true, Pattern: PatternOwned, Visibility: VisibilityPublic, Prefix: "Set"},
		},
		{
			name:  "keys with commas",
			lines: []string{"//setters:gen pattern=immutable,visibility=private"},
			want:  Options{Enabled: true, Pattern: PatternImmutable, Visibility: VisibilityPrivate, Prefix: "Set"},
		},
		{
			name:  "mixed separators",
			lines: []string{"//setters:gen private , pattern=owned prefix=With"},
			want:  Options{Enabled: true, Pattern: PatternOwned, Visibility: VisibilityPrivate, Prefix: "With"},
		},
		{
			name:  "empty prefix",
			lines: []string{"//setters:gen prefix="},
			want:  Options{Enabled: true, Pattern: PatternMutable, Visibility: VisibilityPublic, Prefix: ""},
		},
		{
			name:  "duplicate key in one payload, last wins",
			lines: []string{"//setters:gen pattern=owned pattern=immutable"},
			want:  Options{Enabled: true, Pattern: PatternImmutable, Visibility: VisibilityPublic, Prefix: "Set"},
		},
		{
			name:  "duplicate key across directives, last wins",
			lines: []string{"//setters:gen pattern=owned", "// text in between", "//setters:gen immutable public"},
			want:  Options{Enabled: true, Pattern: PatternImmutable, Visibility: VisibilityPublic, Prefix: "Set"},
		},
		{
			name:  "skip disables",
			lines: []string{"//setters:skip"},
			want:  Options{Enabled: false, Pattern: PatternMutable, Visibility: VisibilityPublic, Prefix: "Set"},
		},
		{
			name:  "gen after skip does not re-enable",
			lines: []string{"//setters:skip", "//setters:gen owned"},
			want:  Options{Enabled: false, Pattern: PatternOwned, Visibility: VisibilityPublic, Prefix: "Set"},
		},
		{
			name:  "other tools ignored",
			lines: []string{"//setter:gen owned", "//getters:gen"},
			want:  Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(parseAll(tt.lines...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		wantKey string
		wantVal string
	}{
		{"unknown key", "//setters:gen color=red", "color", "red"},
		{"unknown shorthand", "//setters:gen borrowed", "", "borrowed"},
		{"bad pattern", "//setters:gen pattern=shared", "pattern", "shared"},
		{"bad visibility", "//setters:gen visibility=internal", "visibility", "internal"},
		{"uppercase value", "//setters:gen pattern=Owned", "pattern", "Owned"},
		{"empty value", "//setters:gen pattern=", "pattern", ""},
		{"bad prefix", "//setters:gen prefix=9lives", "prefix", "9lives"},
		{"underscore prefix", "//setters:gen prefix=_x", "prefix", "_x"},
		{"unknown verb", "//setters:generate", "", "generate"},
		{"skip with args", "//setters:skip please", "", "please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts, err := Resolve(parseAll("//setters:gen owned", tt.line))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMalformedDirective)
			assert.Equal(t, Options{}, opts)

			var de *DirectiveError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantKey, de.Key)
			assert.Equal(t, tt.wantVal, de.Value)
			assert.Contains(t, err.Error(), "//setters:")
		})
	}
}

func TestApply_DoesNotTouchBase(t *testing.T) {
	t.Parallel()

	base := Options{Enabled: true, Pattern: PatternOwned, Visibility: VisibilityPrivate, Prefix: "With"}

	got, err := Apply(base, parseAll("//setters:gen mutable"))
	require.NoError(t, err)
	assert.Equal(t, PatternMutable, got.Pattern)
	assert.Equal(t, VisibilityPrivate, got.Visibility)
	assert.Equal(t, "With", got.Prefix)
	assert.Equal(t, PatternOwned, base.Pattern)
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	p, ok := ParsePattern("immutable")
	assert.True(t, ok)
	assert.Equal(t, PatternImmutable, p)

	_, ok = ParsePattern("")
	assert.False(t, ok)

	v, ok := ParseVisibility("private")
	assert.True(t, ok)
	assert.Equal(t, VisibilityPrivate, v)

	_, ok = ParseVisibility("protected")
	assert.False(t, ok)

	assert.Equal(t, "Pattern(0)", Pattern(0).String())
	assert.Equal(t, "Visibility(3)", Visibility(3).String())
}

func TestOptions_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pattern=mutable visibility=public prefix=Set", Default().String())
	assert.Equal(t, "skip", Options{}.String())
}
