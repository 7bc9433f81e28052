package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"setter-generator/internal/analyze"
	"setter-generator/internal/annotation"
	"setter-generator/internal/options"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Header is the first comment line of every generated file.
	Header string
	// Suffix is appended to the lower-cased record name to form the file name.
	Suffix string
	// OutputDir, when set, receives every file instead of the record's directory.
	OutputDir string
	// Workers bounds parallel generation in GenerateAll. Zero means GOMAXPROCS.
	Workers int
	// KeepUnformatted writes a .unformatted.go.txt sidecar when formatting fails.
	KeepUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Header: "Code generated by setters-gen. DO NOT EDIT.",
		Suffix: "_setters.go",
	}
}

// Generator turns records into setter source files.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used for debug output.
func (g *Generator) WithLogger(logger *zap.Logger) *Generator {
	if logger != nil {
		g.logger = logger
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "lorem_setters.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Result is the outcome of generating one record.
type Result struct {
	Record  *analyze.Record
	Options options.Options
	Unit    *Unit
	Files   []GeneratedFile
	Err     error
}

// Generate resolves, synthesizes and renders a single record. Failures are
// reported in Result.Err as a *RecordError; no files are produced then.
func (g *Generator) Generate(rec *analyze.Record) Result {
	res := Result{Record: rec}
	log := g.logger.With(zap.String("record", rec.ID()))

	log.Debug("deriving setters")

	opts, err := options.Resolve(rec.Annotations)
	if err != nil {
		res.Err = &RecordError{Record: rec.ID(), Cause: err}
		return res
	}

	res.Options = opts
	if !opts.Enabled {
		log.Debug("setters disabled")
		return res
	}

	log.Debug("resolved options",
		zap.Stringer("pattern", opts.Pattern),
		zap.Stringer("visibility", opts.Visibility),
		zap.String("prefix", opts.Prefix))

	g.logAnnotations(log, rec)

	unit, err := Synthesize(rec, opts)
	if err != nil {
		res.Err = err
		return res
	}

	res.Unit = unit

	files, err := g.Render(unit)
	if err != nil {
		res.Err = &RecordError{Record: rec.ID(), Cause: err}
		return res
	}

	res.Files = files
	log.Debug("generated setters", zap.Int("setters", len(unit.Setters)), zap.Int("files", len(files)))

	return res
}

// GenerateAll generates every record in parallel. A failing record never
// affects its siblings; the returned error is only set when ctx is done.
// Results are in the order of records. When two records would write the same
// file, the later one fails with ErrPathCollision.
func (g *Generator) GenerateAll(ctx context.Context, records []*analyze.Record) ([]Result, error) {
	results := make([]Result, len(records))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())

	for i, rec := range records {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = g.Generate(rec)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	markCollisions(results)

	return results, nil
}

func (g *Generator) workers() int {
	if g.config.Workers > 0 {
		return g.config.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// logAnnotations reports which field annotations follow the field onto its setter.
func (g *Generator) logAnnotations(log *zap.Logger, rec *analyze.Record) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}

	for _, f := range rec.Fields {
		for _, a := range f.Annotations {
			msg := "ignoring field annotation"
			if annotation.Keep(a) {
				msg = "keeping field annotation"
			}

			log.Debug(msg,
				zap.String("field", f.Name),
				zap.Stringer("kind", a.Kind),
				zap.String("text", a.Text))
		}
	}
}

// Render writes the setters of a unit into one file. The file carries the
// build constraint of the file declaring the record, so the setters build
// exactly where the record does. An empty unit renders no files.
func (g *Generator) Render(u *Unit) ([]GeneratedFile, error) {
	if u.Empty() {
		return nil, nil
	}

	dir := u.Dir
	if g.config.OutputDir != "" {
		dir = g.config.OutputDir
	}

	filename := strings.ToLower(u.Record) + g.config.Suffix

	content, err := g.renderFile(u, dir, filename)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{{Dir: dir, Filename: filename, Content: content}}, nil
}

// renderFile executes the file template for a unit and formats the result.
func (g *Generator) renderFile(u *Unit, dir, filename string) ([]byte, error) {
	data := fileData{
		Header:      g.config.Header,
		Constraint:  u.Constraint,
		PackageName: u.PkgName,
	}

	imports := make(map[string]importSpec)
	for i := range u.Setters {
		s := &u.Setters[i]

		body, err := renderSetter(u, s)
		if err != nil {
			return nil, fmt.Errorf("setter %s: %w", s.Name, err)
		}

		data.Setters = append(data.Setters, body)

		for _, imp := range s.Imports {
			imports[imp.Path] = importSpec{Alias: imp.Alias(), Path: imp.Path}
		}
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.KeepUnformatted {
			_ = writeSidecar(dir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return formatted, nil
}

// markCollisions fails every result whose files would overwrite a file of an
// earlier result, e.g. records Foo and FOO, or same-named records of
// different packages written to one output directory.
func markCollisions(results []Result) {
	owners := make(map[string]string)

	for i := range results {
		res := &results[i]
		if res.Err != nil {
			continue
		}

		for _, f := range res.Files {
			path := filepath.Clean(f.Path())

			if owner, ok := owners[path]; ok {
				res.Err = &RecordError{
					Record: res.Record.ID(),
					Cause:  fmt.Errorf("%w: %s is also written for %s", ErrPathCollision, path, owner),
				}
				res.Files = nil

				break
			}
		}

		for _, f := range res.Files {
			owners[filepath.Clean(f.Path())] = res.Record.ID()
		}
	}
}
