package game

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
)

var (
	ErrNotFound      = errors.New("round not found")
	ErrForbidden     = errors.New("round belongs to another player")
	ErrRoundFinished = errors.New("round is already finished")
	ErrConflict      = errors.New("round was changed by another request")
	ErrEmptyGuess    = errors.New("guess is empty")
	ErrNoArticles    = errors.New("no articles available")
	ErrNoPlayer      = errors.New("player is required")
)

// Status represents the lifecycle state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusAbandoned  Status = "abandoned"
)

// Round is one attempt at guessing a single article.
type Round struct {
	ID            uuid.UUID
	ArticleID     uuid.UUID
	PlayerID      string // empty for anonymous rounds
	Status        Status
	HintsRevealed int
	Guesses       []Guess
	Score         int
	StartedAt     time.Time
	FinishedAt    *time.Time
	// Version increases with every stored update; UpdateRound only writes over the version it read.
	Version int
}

// Guess is a submitted answer and how it was judged.
type Guess struct {
	Text       string     `json:"text"`
	Similarity float64    `json:"similarity"`
	Tier       guess.Tier `json:"tier"`
	At         time.Time  `json:"at"`
}

func (r *Round) Finished() bool {
	return r.Status != StatusInProgress
}

// WrongGuesses counts guesses that did not win the round.
func (r *Round) WrongGuesses() int {
	n := 0

	for _, g := range r.Guesses {
		if !g.Tier.Outcome().Win {
			n++
		}
	}

	return n
}
