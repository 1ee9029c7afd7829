package fuzzy

import (
	"github.com/hbollon/go-edlib"
)

// Distance returns the Levenshtein distance between a and b counted in runes:
// the minimum number of single-rune insertions, deletions and substitutions
// needed to turn one into the other.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}
