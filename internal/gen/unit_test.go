package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setter-generator/internal/analyze"
	"setter-generator/internal/options"
)

func TestSetterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		field  string
		vis    options.Visibility
		want   string
	}{
		{"Set", "name", options.VisibilityPublic, "SetName"},
		{"Set", "Name", options.VisibilityPrivate, "setName"},
		{"With", "ID", options.VisibilityPublic, "WithID"},
		{"", "name", options.VisibilityPublic, "Name"},
		{"", "Name", options.VisibilityPrivate, "name"},
		{"set", "état", options.VisibilityPublic, "SetÉtat"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, setterName(tt.prefix, tt.field, tt.vis))
		})
	}
}

func TestReceiverName(t *testing.T) {
	assert.Equal(t, "l", receiverName("Lorem"))
	assert.Equal(t, "é", receiverName("État"))
	assert.Equal(t, "r", receiverName(""))
}

func TestUnit_RecvType(t *testing.T) {
	u := &Unit{Record: "Lorem"}
	assert.Equal(t, "Lorem", u.RecvType())

	u.TypeParams = []analyze.TypeParam{{Name: "K", Constraint: "comparable"}, {Name: "V", Constraint: "~int | ~string"}}
	assert.Equal(t, "Lorem[K, V]", u.RecvType())
}

func TestSynthesize(t *testing.T) {
	rec := newRecord("Lorem", "", field("b", "int"), field("_", "int"), field("a", "string"))
	rec.TypeParams = []analyze.TypeParam{{Name: "T", Constraint: "any"}}

	opts := options.Default()
	opts.Pattern = options.PatternImmutable

	u, err := Synthesize(rec, opts)
	require.NoError(t, err)

	assert.Equal(t, "Lorem", u.Record)
	assert.Equal(t, "example.com/lorem.Lorem", u.ID)
	assert.Equal(t, "lorem", u.PkgName)
	assert.Equal(t, "l", u.Receiver)
	assert.Equal(t, rec.TypeParams, u.TypeParams)
	assert.Empty(t, u.Constraint)

	require.Len(t, u.Setters, 2)
	assert.Equal(t, "SetB", u.Setters[0].Name)
	assert.Equal(t, "b", u.Setters[0].Field)
	assert.Equal(t, "int", u.Setters[0].Type)
	assert.Equal(t, options.PatternImmutable, u.Setters[0].Pattern)
	assert.Equal(t, "SetA", u.Setters[1].Name)

	rec.TypeParams[0].Name = "U"
	assert.Equal(t, "T", u.TypeParams[0].Name, "type params must be copied")
}

func TestSynthesize_Disabled(t *testing.T) {
	u, err := Synthesize(newRecord("Lorem", ""), options.Options{})
	require.NoError(t, err)
	assert.True(t, u.Empty())
}

func TestSynthesize_InvalidOptions(t *testing.T) {
	rec := newRecord("Lorem", "", field("name", "string"))

	_, err := Synthesize(rec, options.Options{Enabled: true, Visibility: options.VisibilityPublic})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Synthesize(rec, options.Options{Enabled: true, Pattern: options.PatternOwned})
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSynthesize_NoNamedFields(t *testing.T) {
	for _, fields := range [][]analyze.Field{nil, {field("_", "int"), field("_", "string")}} {
		_, err := Synthesize(newRecord("Lorem", "", fields...), options.Default())
		require.ErrorIs(t, err, ErrNoNamedFields)
	}
}

func TestSynthesize_UnexportedName(t *testing.T) {
	t.Parallel()

	opts := options.Default()
	opts.Prefix = ""

	for _, name := range []string{"_x", "名字"} {
		_, err := Synthesize(newRecord("Lorem", "", field("ok", "int"), field(name, "int")), opts)
		require.ErrorIs(t, err, ErrUnexportedName, name)

		var re *RecordError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, name, re.Field)
		assert.Contains(t, err.Error(), "field "+name)
	}

	opts.Visibility = options.VisibilityPrivate
	u, err := Synthesize(newRecord("Lorem", "", field("_x", "int")), opts)
	require.NoError(t, err)
	assert.Equal(t, "_x", u.Setters[0].Name)

	opts = options.Default()
	u, err = Synthesize(newRecord("Lorem", "", field("_x", "int")), opts)
	require.NoError(t, err)
	assert.Equal(t, "Set_x", u.Setters[0].Name)
}
