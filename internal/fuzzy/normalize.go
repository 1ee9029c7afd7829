package fuzzy

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	parenGroup   = regexp.MustCompile(`\(.*?\)`)
	bracketGroup = regexp.MustCompile(`\[.*?\]`)
)

// NormalizeGuess prepares free-form player input for comparison.
// Only case folding and trimming are applied.
func NormalizeGuess(s string) string {
	return strings.TrimSpace(lower(s))
}

// NormalizeTitle prepares a canonical article title for comparison.
// Parenthesised and bracketed disambiguation text is removed before case folding.
func NormalizeTitle(s string) string {
	return strings.TrimSpace(lower(stripGroups(s)))
}

// StripDisambiguation removes "(...)" and "[...]" groups from a title but keeps its case.
//
// Each group ends at the first closing delimiter, so nested or unbalanced input is only
// partially stripped: "A (b (c) d)" becomes "A  d)".
func StripDisambiguation(s string) string {
	return strings.TrimSpace(stripGroups(s))
}

func stripGroups(s string) string {
	s = parenGroup.ReplaceAllString(s, "")
	return bracketGroup.ReplaceAllString(s, "")
}

// lower builds a fresh Caser per call; cases.Caser keeps internal state and is not
// safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
