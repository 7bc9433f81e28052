package config

import (
	"fmt"
	"strings"

	"setter-generator/internal/annotation"
	"setter-generator/internal/options"
)

// File represents the root of a setters.yaml file.
type File struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// Defaults apply to every record.
	Defaults *RecordConfig `yaml:"defaults,omitempty"`

	// Records configures individual records by type name.
	Records map[string]RecordConfig `yaml:"records,omitempty"`

	// Output overrides generator settings.
	Output Output `yaml:"output,omitempty"`
}

// RecordConfig mirrors the keys of a setters directive.
type RecordConfig struct {
	Pattern    string  `yaml:"pattern,omitempty"`
	Visibility string  `yaml:"visibility,omitempty"`
	Prefix     *string `yaml:"prefix,omitempty"`
	Skip       bool    `yaml:"skip,omitempty"`
}

// Output holds generator settings.
type Output struct {
	// Suffix is appended to the lower-cased record name to form file names.
	Suffix string `yaml:"suffix,omitempty"`
	// Dir receives every generated file instead of the record's directory.
	Dir string `yaml:"dir,omitempty"`
	// Header is the first comment line of every generated file.
	Header string `yaml:"header,omitempty"`
}

// validate checks values against the directive vocabulary, so that the
// generated directives are always well formed.
func (rc RecordConfig) validate() error {
	if rc.Pattern != "" {
		if _, ok := options.ParsePattern(rc.Pattern); !ok {
			return fmt.Errorf("invalid pattern %q", rc.Pattern)
		}
	}

	if rc.Visibility != "" {
		if _, ok := options.ParseVisibility(rc.Visibility); !ok {
			return fmt.Errorf("invalid visibility %q", rc.Visibility)
		}
	}

	if rc.Prefix != nil && strings.ContainsAny(*rc.Prefix, " \t,=") {
		return fmt.Errorf("invalid prefix %q", *rc.Prefix)
	}

	return nil
}

// Directives renders the entry as setters directive annotations.
func (rc RecordConfig) Directives() []annotation.Annotation {
	var out []annotation.Annotation

	var args []string
	if rc.Pattern != "" {
		args = append(args, options.KeyPattern+"="+rc.Pattern)
	}

	if rc.Visibility != "" {
		args = append(args, options.KeyVisibility+"="+rc.Visibility)
	}

	if rc.Prefix != nil {
		args = append(args, options.KeyPrefix+"="+*rc.Prefix)
	}

	if len(args) > 0 {
		d := annotation.Directive{Tool: annotation.DirectiveTool, Verb: options.VerbGen, Args: strings.Join(args, " ")}
		out = append(out, annotation.Parse(d.String()))
	}

	if rc.Skip {
		d := annotation.Directive{Tool: annotation.DirectiveTool, Verb: options.VerbSkip}
		out = append(out, annotation.Parse(d.String()))
	}

	return out
}
