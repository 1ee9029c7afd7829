package game

import (
	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
)

const (
	BaseScore         = 100
	HintPenalty       = 15
	WrongGuessPenalty = 5
	PerfectBonus      = 10
	MinScore          = 10
)

// Badge is an achievement earned by winning a round in a particular way.
type Badge string

const (
	BadgeFirstTry      Badge = "first_try"
	BadgePerfectionist Badge = "perfectionist"
	BadgeCloseCall     Badge = "close_call"
	BadgePhotoFinish   Badge = "photo_finish"
)

// Score returns the points for r given the outcome of its last guess.
// Rounds that are not won score nothing.
func Score(r *Round, outcome guess.Outcome) int {
	if !outcome.Win {
		return 0
	}

	score := BaseScore -
		HintPenalty*max(r.HintsRevealed-1, 0) -
		WrongGuessPenalty*r.WrongGuesses()

	if outcome.Tier == guess.TierPerfect {
		score += PerfectBonus
	}

	return max(score, MinScore)
}

// Badges lists the badges earned by the winning guess that just ended r.
func Badges(r *Round, outcome guess.Outcome, maxGuesses int) []Badge {
	if !outcome.Win {
		return nil
	}

	var badges []Badge

	if len(r.Guesses) == 1 {
		badges = append(badges, BadgeFirstTry)
	}

	switch outcome.Tier {
	case guess.TierPerfect:
		badges = append(badges, BadgePerfectionist)
	case guess.TierCloseEnough:
		badges = append(badges, BadgeCloseCall)
	}

	if len(r.Guesses) == maxGuesses && maxGuesses > 1 {
		badges = append(badges, BadgePhotoFinish)
	}

	return badges
}
