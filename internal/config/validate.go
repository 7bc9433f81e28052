package config

import (
	"fmt"

	"setter-generator/internal/analyze"
	"setter-generator/internal/diagnostic"
	"setter-generator/internal/match"
)

// maxSuggestions bounds the "did you mean" list of a warning.
const maxSuggestions = 3

// Validate checks the file against the loaded records. Entries naming no
// loaded record are reported as warnings with the closest record names.
func Validate(f *File, records []*analyze.Record) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		return res
	}

	known := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if !seen[rec.Name] {
			seen[rec.Name] = true
			known = append(known, rec.Name)
		}
	}

	for _, name := range f.RecordNames() {
		if seen[name] {
			continue
		}

		res.AddWarning(diagnostic.CodeUnknownRecord,
			fmt.Sprintf("config entry %q matches no loaded record", name),
			name, "", match.Suggest(name, known, maxSuggestions)...)
	}

	return res
}
