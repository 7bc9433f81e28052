package match

import "sort"

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.5

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64 // Similarity of the normalized names (0-1)
}

// Rank scores every known name against name, best first. Ties keep the
// order of known.
func Rank(name string, known []string) []Candidate {
	norm := NormalizeIdent(name)

	out := make([]Candidate, 0, len(known))
	for _, k := range known {
		out = append(out, Candidate{Name: k, Score: Similarity(norm, NormalizeIdent(k))})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Suggest returns up to limit known names whose similarity to name reaches
// DefaultThreshold, best first.
func Suggest(name string, known []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, known) {
		if len(out) == limit || c.Score < DefaultThreshold {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
