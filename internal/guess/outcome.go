// Package guess turns a similarity score into the feedback a player sees.
//
// The tiers here are independent of fuzzy.DefaultThreshold: a similarity in
// [0.8, 0.85) wins the round even though fuzzy.Match reports IsMatch=false.
package guess

// Tier is a bucket of similarity scores.
type Tier string

const (
	TierPerfect     Tier = "perfect"
	TierMatch       Tier = "match"
	TierCloseEnough Tier = "close_enough"
	TierSoClose     Tier = "so_close"
	TierTryAgain    Tier = "try_again"
)

// Outcome is the player-facing verdict for a guess.
type Outcome struct {
	Tier    Tier
	Message string
	Win     bool
}

type band struct {
	min     float64
	outcome Outcome
}

// bands are checked top-down; the first one whose minimum is reached wins.
// TierPerfect is handled separately because it requires exact equality.
var bands = []band{
	{min: 0.95, outcome: Outcome{Tier: TierMatch, Message: "Match!", Win: true}},
	{min: 0.8, outcome: Outcome{Tier: TierCloseEnough, Message: "Close enough!", Win: true}},
	{min: 0.2, outcome: Outcome{Tier: TierSoClose, Message: "So close! Keep trying.", Win: false}},
}

var (
	perfect  = Outcome{Tier: TierPerfect, Message: "Perfect match!", Win: true}
	tryAgain = Outcome{Tier: TierTryAgain, Message: "Try again.", Win: false}
)

// Classify maps a similarity in [0,1] to its Outcome.
func Classify(similarity float64) Outcome {
	if similarity == 1 {
		return perfect
	}

	for _, b := range bands {
		if similarity >= b.min {
			return b.outcome
		}
	}

	return tryAgain
}

// Outcome returns the outcome for a known tier, e.g. when replaying stored guesses.
func (t Tier) Outcome() Outcome {
	switch t {
	case TierPerfect:
		return perfect
	case TierTryAgain:
		return tryAgain
	}

	for _, b := range bands {
		if b.outcome.Tier == t {
			return b.outcome
		}
	}

	return tryAgain
}
