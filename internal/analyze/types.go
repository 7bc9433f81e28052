package analyze

import (
	"setter-generator/internal/annotation"
	"setter-generator/internal/common"
)

// TypeParam is one type parameter of a generic record.
type TypeParam struct {
	Name       string // e.g. "T"
	Constraint string // constraint as written, e.g. "comparable" or "~int | ~string"
}

// Field describes a struct field.
type Field struct {
	Name        string                  // Go field name, "_" for blank fields
	Type        string                  // Type expression valid inside the record's package
	Embedded    bool                    // Whether the field is embedded (anonymous)
	Imports     []Import                // Packages referenced by Type
	Annotations []annotation.Annotation // Doc comment lines, trailing comment lines, then the tag
}

// Named reports whether the field can be addressed by name.
func (f Field) Named() bool {
	return f.Name != "" && f.Name != "_"
}

// Import is a package referenced by a field type.
type Import struct {
	Name string // Name used in field type expressions
	Path string // Import path
}

// Alias returns the import name if it differs from the last path element.
func (i Import) Alias() string {
	if i.Name == common.PkgAlias(i.Path) {
		return ""
	}

	return i.Name
}

// Record describes a struct type setters are generated for.
type Record struct {
	Name        string                  // Type name
	PkgPath     string                  // e.g. "setter-generator/examples/lorem"
	PkgName     string                  // e.g. "lorem"
	Dir         string                  // Directory of the file declaring the type
	Constraint  string                  // Build constraint of that file, "" if none
	TypeParams  []TypeParam             // Type parameters in declaration order
	Fields      []Field                 // Fields in declaration order
	Annotations []annotation.Annotation // Doc comment lines of the type declaration
	Imports     []Import                // Packages referenced by field types, sorted by path
	HasClone    bool                    // The type declares Clone() returning its own type
}

// ID returns the package-qualified record name.
func (r *Record) ID() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}

// HasDirective reports whether the record's doc comment carries a setters directive.
func (r *Record) HasDirective() bool {
	for _, a := range r.Annotations {
		if a.Kind == annotation.KindDirective {
			return true
		}
	}

	return false
}
