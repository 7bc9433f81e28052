package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"setter-generator/internal/analyze"
	"setter-generator/internal/annotation"
)

// CurrentVersion is the only supported schema version.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version %q, expected %q", f.Version, CurrentVersion)
	}

	if f.Defaults != nil {
		if err := f.Defaults.validate(); err != nil {
			return nil, fmt.Errorf("defaults: %w", err)
		}
	}

	for _, name := range f.RecordNames() {
		if err := f.Records[name].validate(); err != nil {
			return nil, fmt.Errorf("record %s: %w", name, err)
		}
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// RecordNames returns the configured record names, sorted.
func (f *File) RecordNames() []string {
	names := make([]string, 0, len(f.Records))
	for name := range f.Records {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Selects reports whether the file names the record.
func (f *File) Selects(name string) bool {
	_, ok := f.Records[name]
	return ok
}

// Apply returns rec with the file's directives merged into its annotations:
// defaults first, then the record's own annotations, then its entry.
// rec is not modified; it is returned as is when nothing applies.
func (f *File) Apply(rec *analyze.Record) *analyze.Record {
	var before, after []annotation.Annotation

	if f.Defaults != nil {
		before = f.Defaults.Directives()
	}

	if rc, ok := f.Records[rec.Name]; ok {
		after = rc.Directives()
	}

	if len(before) == 0 && len(after) == 0 {
		return rec
	}

	out := *rec
	out.Annotations = slices.Concat(before, rec.Annotations, after)

	return &out
}

// ApplyAll applies the file to every record.
func (f *File) ApplyAll(records []*analyze.Record) []*analyze.Record {
	out := make([]*analyze.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, f.Apply(rec))
	}

	return out
}
