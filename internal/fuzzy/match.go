// Package fuzzy judges a player's guess against a canonical article title.
//
// Both strings are normalised (the title additionally loses its disambiguation
// suffixes), compared by Levenshtein distance and turned into a similarity in [0,1].
// Everything in this package is pure and safe for concurrent use.
package fuzzy

import (
	"unicode/utf8"
)

// DefaultThreshold is the minimum similarity for Result.IsMatch when no
// threshold is given.
const DefaultThreshold = 0.85

// Result is the verdict for a single guess.
type Result struct {
	Similarity float64
	IsMatch    bool
}

type options struct {
	threshold float64
}

// Option customises a Match call.
type Option func(*options)

// WithThreshold overrides DefaultThreshold. Values outside [0,1] are used as is:
// above 1 nothing matches, below 0 everything does.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// Match compares guess with canonicalTitle.
//
// The comparison is deliberately asymmetric: only canonicalTitle is stripped of
// "(...)" and "[...]" groups, so Match("mercury", "Mercury (planet)") is a perfect
// match while Match("Mercury (planet)", "mercury") is not.
func Match(guess, canonicalTitle string, opts ...Option) Result {
	o := options{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	similarity := Similarity(NormalizeGuess(guess), NormalizeTitle(canonicalTitle))

	return Result{
		Similarity: similarity,
		IsMatch:    similarity >= o.threshold,
	}
}

// Similarity scores two already normalised strings as
// 1 - distance / max(len(a), len(b)), with lengths counted in runes.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)

	if lenA == 0 || lenB == 0 {
		return 0
	}

	return 1 - float64(Distance(a, b))/float64(max(lenA, lenB))
}
