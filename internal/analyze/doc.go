// Package analyze provides package loading and record extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build the
// description of every struct that asks for setters:
//   - Record: name, package, type parameters, fields and doc annotations
//   - Field: name, type expression as written inside the record's package,
//     doc/trailing comments and struct tag as annotations
//   - Import: packages referenced by field types
package analyze
