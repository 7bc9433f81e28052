// Package config loads the optional setters.yaml file that configures
// records without touching their source.
//
// # Schema
//
//	version: "1"
//	defaults:              # applied to every record, before its own directives
//	  pattern: mutable
//	  visibility: public
//	  prefix: Set
//	records:               # keyed by type name, applied after the record's directives
//	  Lorem:
//	    pattern: owned
//	  Hidden:
//	    skip: true
//	output:
//	  suffix: _setters.go
//	  dir: ""
//	  header: Code generated by setters-gen. DO NOT EDIT.
//
// # Precedence
//
// Every entry is turned into a setters directive and merged with the
// record's own annotations: defaults first, then the source directives, then
// the record entry. Since the last write of a key wins, a record entry
// overrides the source, and the source overrides the defaults. Naming a
// record under records selects it for generation even if its source carries
// no directive.
package config
