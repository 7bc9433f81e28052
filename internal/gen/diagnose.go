package gen

import (
	"errors"

	"setter-generator/internal/diagnostic"
	"setter-generator/internal/options"
)

// Diagnose summarizes results: failures become errors with a code derived
// from the cause, disabled records become infos.
func Diagnose(results []Result) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, r := range results {
		if r.Record == nil {
			continue
		}

		id := r.Record.ID()

		var field string

		var re *RecordError
		if errors.As(r.Err, &re) {
			field = re.Field
		}

		switch {
		case r.Err == nil && !r.Options.Enabled:
			d.AddInfo(diagnostic.CodeDisabled, "setters disabled", id, "")
		case r.Err == nil:
		case errors.Is(r.Err, options.ErrMalformedDirective):
			d.AddError(diagnostic.CodeMalformedDirective, r.Err.Error(), id, field)
		case errors.Is(r.Err, ErrNoNamedFields), errors.Is(r.Err, ErrInvalidOptions), errors.Is(r.Err, ErrUnexportedName):
			d.AddError(diagnostic.CodeUnsupportedRecord, r.Err.Error(), id, field)
		case errors.Is(r.Err, ErrPathCollision):
			d.AddError(diagnostic.CodePathCollision, r.Err.Error(), id, field)
		default:
			d.AddError(diagnostic.CodeRenderFailed, r.Err.Error(), id, field)
		}
	}

	return d
}
