package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"setter-generator/internal/annotation"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Config controls which packages are loaded and which types become records.
type Config struct {
	// Dir is the working directory for package patterns. Empty means the current directory.
	Dir string
	// All selects every struct type, not only the ones carrying a setters directive.
	All bool
	// Select, when set, additionally selects types by name (e.g. names listed in a config file).
	Select func(name string) bool
	// GeneratedHeader is the first comment line, without "// ", of the files this
	// generator writes. Errors located in such files are ignored, so stale
	// setters never block their own regeneration.
	GeneratedHeader string
}

// Analyzer loads Go packages and extracts records.
type Analyzer struct {
	config Config
	logger *zap.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{config: config, logger: zap.NewNop()}
}

// WithLogger sets the logger used for debug output.
func (a *Analyzer) WithLogger(logger *zap.Logger) *Analyzer {
	if logger != nil {
		a.logger = logger
	}

	return a
}

// LoadPackages loads the specified packages and returns their records in
// package and declaration order.
// Patterns are standard Go package patterns (e.g., "./examples/lorem", "setter-generator/examples/...").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Record, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.config.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors, except the ones in our own output
	var errs []error
	for _, pkg := range pkgs {
		generated := a.generatedFiles(pkg)

		for _, e := range pkg.Errors {
			if file := errorFile(e.Pos); generated[file] {
				a.logger.Debug("ignoring error in generated file",
					zap.String("file", file), zap.String("error", e.Msg))

				continue
			}

			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].PkgPath < pkgs[j].PkgPath
	})

	var records []*Record
	for _, pkg := range pkgs {
		recs, err := a.processPackage(pkg)
		if err != nil {
			return nil, err
		}

		records = append(records, recs...)
	}

	return records, nil
}

// generatedFiles returns the paths of the files of pkg that start with the
// generated header.
func (a *Analyzer) generatedFiles(pkg *packages.Package) map[string]bool {
	out := make(map[string]bool)
	if a.config.GeneratedHeader == "" {
		return out
	}

	header := "// " + a.config.GeneratedHeader

	for _, file := range pkg.Syntax {
		if len(file.Comments) == 0 || len(file.Comments[0].List) == 0 {
			continue
		}

		first := file.Comments[0].List[0]
		if first.Pos() < file.Package && strings.TrimSpace(first.Text) == header {
			out[pkg.Fset.Position(file.Package).Filename] = true
		}
	}

	return out
}

// errorFile extracts the file name from a "file:line:col" error position.
func errorFile(pos string) string {
	for range 2 {
		i := strings.LastIndexByte(pos, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(pos[i+1:]); err != nil {
			break
		}

		pos = pos[:i]
	}

	return pos
}

// processPackage extracts the selected records of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) ([]*Record, error) {
	var records []*Record

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Package).Filename

		expr, err := fileConstraint(filename, file)
		if err != nil {
			return nil, fmt.Errorf("build constraint: %w", err)
		}

		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Assign.IsValid() {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				if rec := a.processTypeSpec(pkg, ts, doc); rec != nil {
					rec.Constraint = expr
					records = append(records, rec)
				}
			}
		}
	}

	return records, nil
}

// processTypeSpec builds a Record for a type declaration, or returns nil if
// the type is not selected.
func (a *Analyzer) processTypeSpec(pkg *packages.Package, ts *ast.TypeSpec, doc *ast.CommentGroup) *Record {
	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil
	}

	rec := &Record{
		Name:        ts.Name.Name,
		PkgPath:     pkg.PkgPath,
		PkgName:     pkg.Name,
		Dir:         filepath.Dir(pkg.Fset.Position(ts.Pos()).Filename),
		Annotations: commentAnnotations(doc),
	}

	st, isStruct := named.Underlying().(*types.Struct)
	if !a.selected(rec, isStruct) {
		return nil
	}

	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			constraint := types.ExprString(field.Type)
			for _, name := range field.Names {
				rec.TypeParams = append(rec.TypeParams, TypeParam{Name: name.Name, Constraint: constraint})
			}
		}
	}

	if isStruct {
		q := newQualifier(pkg.Types)
		astFields := flattenFields(ts.Type)

		for i := range st.NumFields() {
			v := st.Field(i)

			q.reset()

			field := Field{
				Name:     v.Name(),
				Type:     types.TypeString(v.Type(), q.qualify),
				Embedded: v.Embedded(),
			}
			field.Imports = q.imports(q.used)
			if i < len(astFields) {
				field.Annotations = fieldAnnotations(astFields[i])
			}

			rec.Fields = append(rec.Fields, field)
		}

		rec.Imports = q.imports(q.names)
	}

	rec.HasClone = hasClone(named)

	return rec
}

// selected reports whether a type becomes a record. Types carrying a
// directive are always selected, even non-structs, so that the generator can
// report them.
func (a *Analyzer) selected(rec *Record, isStruct bool) bool {
	if rec.HasDirective() {
		return true
	}

	if a.config.Select != nil && a.config.Select(rec.Name) {
		return true
	}

	return a.config.All && isStruct
}

// flattenFields returns one *ast.Field per declared field name, in order, so
// that the result lines up with types.Struct fields. Only struct literals have
// per-field syntax; for other type expressions it returns nil.
func flattenFields(expr ast.Expr) []*ast.Field {
	st, ok := expr.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil
	}

	var out []*ast.Field
	for _, f := range st.Fields.List {
		n := len(f.Names)
		if n == 0 {
			n = 1 // embedded
		}

		for range n {
			out = append(out, f)
		}
	}

	return out
}

// commentAnnotations classifies every line of a comment group.
func commentAnnotations(groups ...*ast.CommentGroup) []annotation.Annotation {
	var out []annotation.Annotation

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			out = append(out, annotation.Parse(c.Text))
		}
	}

	return out
}

// fieldAnnotations returns the doc comment, trailing comment and tag of a field.
func fieldAnnotations(f *ast.Field) []annotation.Annotation {
	out := commentAnnotations(f.Doc, f.Comment)

	if f.Tag != nil {
		raw, err := strconv.Unquote(f.Tag.Value)
		if err != nil {
			raw = f.Tag.Value
		}

		out = append(out, annotation.Tag(raw))
	}

	return out
}

// hasClone reports whether named declares Clone() returning named itself.
func hasClone(named *types.Named) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), false, named.Obj().Pkg(), "Clone")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	res, ok := sig.Results().At(0).Type().(*types.Named)

	return ok && res.Origin() == named.Origin()
}

// qualifier renders package-qualified names the way they must be written in
// the record's package and remembers which imports that requires.
type qualifier struct {
	self  *types.Package
	names map[string]string // path -> name, for the whole record
	taken map[string]string // name -> path
	used  map[string]string // path -> name, since the last reset
}

func newQualifier(self *types.Package) *qualifier {
	return &qualifier{
		self:  self,
		names: make(map[string]string),
		taken: make(map[string]string),
		used:  make(map[string]string),
	}
}

func (q *qualifier) reset() {
	q.used = make(map[string]string)
}

func (q *qualifier) qualify(p *types.Package) string {
	if p == q.self {
		return ""
	}

	if name, ok := q.names[p.Path()]; ok {
		q.used[p.Path()] = name
		return name
	}

	name := p.Name()
	for i := 2; ; i++ {
		if _, clash := q.taken[name]; !clash {
			break
		}

		name = p.Name() + strconv.Itoa(i)
	}

	q.names[p.Path()] = name
	q.taken[name] = p.Path()
	q.used[p.Path()] = name

	return name
}

func (q *qualifier) imports(set map[string]string) []Import {
	out := make([]Import, 0, len(set))
	for path, name := range set {
		out = append(out, Import{Name: name, Path: path})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
