package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/fuzzy"
	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=game
type RoundRepository interface {
	CreateRound(ctx context.Context, r *Round) error
	GetRound(ctx context.Context, id uuid.UUID) (*Round, error)
	UpdateRound(ctx context.Context, r *Round) error
	ListRounds(ctx context.Context, playerID string, limit int) ([]*Round, error)
	FinishedArticleIDs(ctx context.Context, playerID string) ([]uuid.UUID, error)
	// AwardBadges stores badges for the player and returns the ones not held before.
	AwardBadges(ctx context.Context, playerID string, roundID uuid.UUID, badges []Badge) ([]Badge, error)
}

// ArticleSource is the part of article.Service a round needs.
type ArticleSource interface {
	Get(ctx context.Context, id uuid.UUID) (*article.Article, error)
	// Lookup also returns soft-deleted articles so rounds played on them stay readable.
	Lookup(ctx context.Context, id uuid.UUID) (*article.Article, error)
	Random(ctx context.Context, exclude []uuid.UUID) (*article.Article, error)
}

type Config struct {
	// Threshold only drives GuessResult.Match.IsMatch; wins follow guess.Classify.
	Threshold  float64
	MaxGuesses int
}

type Service struct {
	rounds   RoundRepository
	articles ArticleSource
	clock    clockwork.Clock
	cfg      Config
}

func NewService(rounds RoundRepository, articles ArticleSource, clock clockwork.Clock, cfg Config) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		rounds:   rounds,
		articles: articles,
		clock:    clock,
		cfg:      cfg,
	}
}

type StartParams struct {
	PlayerID  string
	ArticleID *uuid.UUID
}

// Start opens a round with the first hint revealed. Without an explicit article
// a random one is picked, preferring articles the player has not finished yet.
func (s *Service) Start(ctx context.Context, params StartParams) (*Round, *article.Article, error) {
	a, err := s.pickArticle(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	r := &Round{
		ArticleID:     a.ID,
		PlayerID:      params.PlayerID,
		Status:        StatusInProgress,
		HintsRevealed: 1,
		StartedAt:     s.clock.Now(),
	}

	if err := s.rounds.CreateRound(ctx, r); err != nil {
		return nil, nil, fmt.Errorf("create round: %w", err)
	}

	return r, a, nil
}

func (s *Service) pickArticle(ctx context.Context, params StartParams) (*article.Article, error) {
	if params.ArticleID != nil {
		return s.articles.Get(ctx, *params.ArticleID)
	}

	var exclude []uuid.UUID

	if params.PlayerID != "" {
		ids, err := s.rounds.FinishedArticleIDs(ctx, params.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("finished articles: %w", err)
		}

		exclude = ids
	}

	a, err := s.articles.Random(ctx, exclude)
	if errors.Is(err, article.ErrNotFound) && len(exclude) > 0 {
		// Everything was played already; allow repeats.
		a, err = s.articles.Random(ctx, nil)
	}

	if errors.Is(err, article.ErrNotFound) {
		return nil, ErrNoArticles
	}

	if err != nil {
		return nil, fmt.Errorf("random article: %w", err)
	}

	return a, nil
}

type GuessParams struct {
	RoundID  uuid.UUID
	PlayerID string
	Text     string
}

type GuessResult struct {
	Round   *Round
	Article *article.Article
	Match   fuzzy.Result
	Outcome guess.Outcome
	// Badges holds badges earned for the first time by this guess.
	Badges []Badge
}

// Guess judges a guess for an open round. A winning guess closes the round with
// a score; a losing one reveals the next hint or, once MaxGuesses is reached,
// closes the round as lost.
func (s *Service) Guess(ctx context.Context, params GuessParams) (*GuessResult, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, ErrEmptyGuess
	}

	r, err := s.openRound(ctx, params.RoundID, params.PlayerID)
	if err != nil {
		return nil, err
	}

	a, err := s.articles.Lookup(ctx, r.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	now := s.clock.Now()
	match := fuzzy.Match(text, a.Title, fuzzy.WithThreshold(s.cfg.Threshold))
	outcome := guess.Classify(match.Similarity)

	r.Guesses = append(r.Guesses, Guess{
		Text:       text,
		Similarity: match.Similarity,
		Tier:       outcome.Tier,
		At:         now,
	})

	var earned []Badge

	switch {
	case outcome.Win:
		r.Status = StatusWon
		r.Score = Score(r, outcome)
		r.FinishedAt = &now
		earned = Badges(r, outcome, s.cfg.MaxGuesses)
	case len(r.Guesses) >= s.cfg.MaxGuesses:
		r.Status = StatusLost
		r.FinishedAt = &now
	case r.HintsRevealed < len(HintOrder):
		r.HintsRevealed++
	}

	if err := s.rounds.UpdateRound(ctx, r); err != nil {
		return nil, fmt.Errorf("update round: %w", err)
	}

	result := &GuessResult{Round: r, Article: a, Match: match, Outcome: outcome}

	if len(earned) > 0 && r.PlayerID != "" {
		awarded, err := s.rounds.AwardBadges(ctx, r.PlayerID, r.ID, earned)
		if err != nil {
			slog.Warn("failed to award badges", "round_id", r.ID, "player_id", r.PlayerID, "error", err)
		}

		result.Badges = awarded
	}

	return result, nil
}

// GiveUp closes an open round without a score.
func (s *Service) GiveUp(ctx context.Context, roundID uuid.UUID, playerID string) (*Round, *article.Article, error) {
	r, err := s.openRound(ctx, roundID, playerID)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Now()
	r.Status = StatusAbandoned
	r.Score = 0
	r.FinishedAt = &now

	if err := s.rounds.UpdateRound(ctx, r); err != nil {
		return nil, nil, fmt.Errorf("update round: %w", err)
	}

	a, err := s.articles.Lookup(ctx, r.ArticleID)
	if err != nil {
		return nil, nil, fmt.Errorf("get article: %w", err)
	}

	return r, a, nil
}

func (s *Service) openRound(ctx context.Context, roundID uuid.UUID, playerID string) (*Round, error) {
	r, err := s.rounds.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	if r.PlayerID != "" && r.PlayerID != playerID {
		return nil, ErrForbidden
	}

	if r.Finished() {
		return nil, ErrRoundFinished
	}

	return r, nil
}

// Get loads a round together with its article.
func (s *Service) Get(ctx context.Context, roundID uuid.UUID) (*Round, *article.Article, error) {
	r, err := s.rounds.GetRound(ctx, roundID)
	if err != nil {
		return nil, nil, err
	}

	a, err := s.articles.Lookup(ctx, r.ArticleID)
	if err != nil {
		return nil, nil, fmt.Errorf("get article: %w", err)
	}

	return r, a, nil
}

// History lists the most recent rounds of a player, newest first.
func (s *Service) History(ctx context.Context, playerID string, limit int) ([]*Round, error) {
	if playerID == "" {
		return nil, ErrNoPlayer
	}

	return s.rounds.ListRounds(ctx, playerID, limit)
}

// RoundView is what a player may see of a round. The answer stays hidden
// until the round is finished.
type RoundView struct {
	ID          uuid.UUID
	Status      Status
	Hints       []Hint
	Guesses     []Guess
	GuessesLeft int
	Score       int
	Answer      string
	StartedAt   time.Time
	FinishedAt  *time.Time
}

func (s *Service) View(r *Round, a *article.Article) RoundView {
	v := RoundView{
		ID:          r.ID,
		Status:      r.Status,
		Hints:       Hints(a, r.HintsRevealed),
		Guesses:     r.Guesses,
		GuessesLeft: max(s.cfg.MaxGuesses-len(r.Guesses), 0),
		Score:       r.Score,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}

	if r.Finished() {
		v.Hints = Hints(a, len(HintOrder))
		v.Answer = a.Title
		v.GuessesLeft = 0
	}

	return v
}
