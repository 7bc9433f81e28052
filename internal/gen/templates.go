package gen

import "text/template"

// setterTemplates holds one template per pattern, named after the pattern.
//
//   - owned: value receiver in, updated value out
//   - mutable: pointer receiver in, the same pointer out
//   - immutable: pointer receiver read only, a copy is updated and returned
var setterTemplates = template.Must(template.New("setters").Parse(`
{{- define "comments"}}{{range .Comments}}{{.}}
{{end}}{{end -}}

{{- define "owned"}}
{{template "comments" .}}func ({{.Recv}} {{.RecvType}}) {{.Name}}(value {{.Type}}) {{.RecvType}} {
	{{.Recv}}.{{.Field}} = value
	return {{.Recv}}
}
{{end -}}

{{- define "mutable"}}
{{template "comments" .}}func ({{.Recv}} *{{.RecvType}}) {{.Name}}(value {{.Type}}) *{{.RecvType}} {
	{{.Recv}}.{{.Field}} = value
	return {{.Recv}}
}
{{end -}}

{{- define "immutable"}}
{{template "comments" .}}func ({{.Recv}} *{{.RecvType}}) {{.Name}}(value {{.Type}}) {{.RecvType}} {
	next := {{if .Clone}}{{.Recv}}.Clone(){{else}}*{{.Recv}}{{end}}
	next.{{.Field}} = value
	return next
}
{{end -}}
`))

// fileTemplate lays out one generated file.
var fileTemplate = template.Must(template.New("file").Parse(`// {{.Header}}
{{if .Constraint}}
//go:build {{.Constraint}}
{{end}}
package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Setters}}{{.}}{{end}}`))

// setterData is the template input for one setter.
type setterData struct {
	Comments []string
	Recv     string
	RecvType string
	Name     string
	Field    string
	Type     string
	Clone    bool
}

// fileData is the template input for one generated file.
type fileData struct {
	Header      string
	Constraint  string
	PackageName string
	Imports     []importSpec
	Setters     []string
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}
