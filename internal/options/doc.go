// Package options resolves the record-level setters configuration.
//
// Configuration is carried by directives in the record's doc comment:
//
//	//setters:gen pattern=owned,visibility=private
//	//setters:gen immutable prefix=With
//	//setters:skip
//
// A gen payload is a list of tokens separated by commas or blanks. A token is
// either key=value (keys: pattern, visibility, prefix) or one of the bare
// shorthands owned, mutable, immutable, public, private. Directives are
// applied in order and the last write of a key wins. Unknown keys, unknown
// values and unknown verbs are errors; absent keys keep their defaults.
package options
