// Package annotation models the comment lines and struct tags attached to a
// record or a field, and decides which of them follow a field onto its
// generated setter.
//
// An Annotation is the verbatim source text plus a Kind assigned by Parse:
//   - KindDoc: ordinary documentation text
//   - KindBuild: a build constraint line (//go:build expr)
//   - KindLint: a lint suppression (//nolint, //lint:ignore)
//   - KindDirective: a setters directive (//setters:gen, //setters:skip)
//   - KindPragma: any other tool directive (//go:embed, //foo:bar)
//   - KindTag: a raw struct tag
//
// Only documentation, build constraints and lint suppressions are kept by
// Filter; everything else is dropped.
package annotation
