package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeDisabled, "setters disabled", "b.Quiet", "")
	d.AddWarning(CodeUnknownRecord, "config entry \"Lorme\" matches no loaded record", "Lorme", "", "Lorem")
	d.AddError(CodeUnsupportedRecord, "record has no named fields", "b.Empty", "")
	d.AddError(CodeMalformedDirective, "unknown key", "a.Broken", "")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, "a.Broken", all[0].Record)
	assert.Equal(t, "b.Empty", all[1].Record)
	assert.Equal(t, DiagnosticWarning, all[2].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[b.Empty]: [unsupported_record] record has no named fields; [a.Broken]: [malformed_directive] unknown key",
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{"message only", Diagnostic{Message: "oops"}, "oops"},
		{"with code", Diagnostic{Code: CodeRenderFailed, Message: "oops"}, "[render_failed] oops"},
		{
			"record and field",
			Diagnostic{Code: CodeUnsupportedRecord, Message: "oops", Record: "p.Lorem", Field: "_x"},
			"[p.Lorem] _x: [unsupported_record] oops",
		},
		{
			"suggestions",
			Diagnostic{Message: "unknown", Record: "Lorme", Suggestions: []string{"Lorem", "GenLorem"}},
			"[Lorme]: unknown (did you mean Lorem, GenLorem?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo(CodeDisabled, "x", "r1", "")
	b.AddError(CodeRenderFailed, "y", "r2", "")
	b.AddWarning(CodeUnknownRecord, "z", "r3", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
