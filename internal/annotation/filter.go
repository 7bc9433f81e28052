package annotation

// kept is the closed set of annotation kinds copied onto a generated setter.
var kept = map[Kind]bool{
	KindDoc:   true,
	KindBuild: true,
	KindLint:  true,
}

// Keep reports whether a field annotation is copied onto the field's setter.
func Keep(a Annotation) bool {
	return kept[a.Kind]
}

// Filter returns the annotations of as that Keep accepts, in their original order.
// The result is a fresh slice; as is not modified.
func Filter(as []Annotation) []Annotation {
	var out []Annotation

	for _, a := range as {
		if Keep(a) {
			out = append(out, a)
		}
	}

	return out
}
