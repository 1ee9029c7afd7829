package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/fuzzy"
)

// HintKind identifies one of the clues shown to a player.
type HintKind string

const (
	HintLinks    HintKind = "links"
	HintImage    HintKind = "image"
	HintInfobox  HintKind = "infobox"
	HintInitials HintKind = "initials"
	HintSummary  HintKind = "summary"
)

// HintOrder is the order in which hints are revealed, vaguest first.
var HintOrder = []HintKind{HintLinks, HintImage, HintInfobox, HintInitials, HintSummary}

const redacted = "_____"

// Hint carries the data for a single revealed clue. Only the field matching
// Kind is set.
type Hint struct {
	Kind     HintKind
	Links    []string
	ImageURL string
	Infobox  []article.InfoboxField
	Text     string
}

// Hints returns the first revealed hints for a, clamped to len(HintOrder).
func Hints(a *article.Article, revealed int) []Hint {
	revealed = min(max(revealed, 0), len(HintOrder))

	hints := make([]Hint, 0, revealed)
	for _, kind := range HintOrder[:revealed] {
		hints = append(hints, buildHint(kind, a))
	}

	return hints
}

func buildHint(kind HintKind, a *article.Article) Hint {
	h := Hint{Kind: kind}

	switch kind {
	case HintLinks:
		h.Links = a.Links
	case HintImage:
		h.ImageURL = a.ImageURL
	case HintInfobox:
		h.Infobox = a.Infobox
	case HintInitials:
		h.Text = Initials(a.Title)
	case HintSummary:
		h.Text = Redact(a.Summary, a.Title)
	}

	return h
}

// Initials masks a title down to the first letter of every word:
// "Albert Einstein" becomes "A_____ E_______". Disambiguation text is dropped
// and anything that is not a letter or digit is kept as is.
func Initials(title string) string {
	var sb strings.Builder

	inWord := false

	for _, r := range fuzzy.StripDisambiguation(title) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			inWord = false

			sb.WriteRune(r)

			continue
		}

		if inWord {
			sb.WriteRune('_')
			continue
		}

		inWord = true

		sb.WriteRune(r)
	}

	return sb.String()
}

// Redact hides every case-insensitive occurrence of the title (without its
// disambiguation suffix) inside text.
func Redact(text, title string) string {
	name := fuzzy.StripDisambiguation(title)
	if name == "" {
		return text
	}

	var sb strings.Builder

	for i := 0; i < len(text); {
		if n := foldedPrefixLen(text[i:], name); n > 0 {
			sb.WriteString(redacted)
			i += n

			continue
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		sb.WriteString(text[i : i+size])
		i += size
	}

	return sb.String()
}

// foldedPrefixLen returns the byte length of the prefix of s that equals name
// under Unicode case folding, or 0 if s does not start with name.
func foldedPrefixLen(s, name string) int {
	n := 0

	for _, want := range name {
		if n >= len(s) {
			return 0
		}

		got, size := utf8.DecodeRuneInString(s[n:])
		if got != want && !strings.EqualFold(string(got), string(want)) {
			return 0
		}

		n += size
	}

	return n
}
