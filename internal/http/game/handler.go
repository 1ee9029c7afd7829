package game

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/request"
)

const defaultHistoryLimit = 20

type Handler struct {
	svc        *game.Service
	guessLimit func(http.Handler) http.Handler
}

// NewHandler returns a round handler. guessLimit wraps guess submission and
// may be nil.
func NewHandler(svc *game.Service, guessLimit func(http.Handler) http.Handler) *Handler {
	if guessLimit == nil {
		guessLimit = func(next http.Handler) http.Handler { return next }
	}

	return &Handler{svc: svc, guessLimit: guessLimit}
}

// Routes mounts the round endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.start)
	r.Get("/{id}", h.get)
	r.With(h.guessLimit).Post("/{id}/guesses", h.guess)
	r.Post("/{id}/give-up", h.giveUp)
}

// PlayerRoutes mounts the endpoints scoped to the authenticated player.
func (h *Handler) PlayerRoutes(r chi.Router) {
	r.Use(auth.RequirePlayer)
	r.Get("/me/rounds", h.history)
}

type hintResponse struct {
	Kind     game.HintKind          `json:"kind"`
	Links    []string               `json:"links,omitempty"`
	ImageURL string                 `json:"image_url,omitempty"`
	Infobox  []article.InfoboxField `json:"infobox,omitempty"`
	Text     string                 `json:"text,omitempty"`
}

type guessEntry struct {
	Text       string     `json:"text"`
	Similarity float64    `json:"similarity"`
	Tier       guess.Tier `json:"tier"`
	At         time.Time  `json:"at"`
}

type roundResponse struct {
	ID          uuid.UUID      `json:"id"`
	Status      game.Status    `json:"status"`
	Hints       []hintResponse `json:"hints"`
	Guesses     []guessEntry   `json:"guesses"`
	GuessesLeft int            `json:"guesses_left"`
	Score       int            `json:"score"`
	Answer      string         `json:"answer,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  *time.Time     `json:"finished_at,omitempty"`
}

func toRoundResponse(v game.RoundView) roundResponse {
	resp := roundResponse{
		ID:          v.ID,
		Status:      v.Status,
		Hints:       make([]hintResponse, len(v.Hints)),
		Guesses:     make([]guessEntry, len(v.Guesses)),
		GuessesLeft: v.GuessesLeft,
		Score:       v.Score,
		Answer:      v.Answer,
		StartedAt:   v.StartedAt,
		FinishedAt:  v.FinishedAt,
	}

	for i, h := range v.Hints {
		resp.Hints[i] = hintResponse(h)
	}

	for i, g := range v.Guesses {
		resp.Guesses[i] = guessEntry(g)
	}

	return resp
}

type startRoundRequest struct {
	ArticleID *uuid.UUID `json:"article_id,omitempty"`
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	var req startRoundRequest

	// An empty body starts a round on a random article.
	if r.ContentLength != 0 {
		if err := request.Decode(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	round, a, err := h.svc.Start(r.Context(), game.StartParams{
		PlayerID:  auth.Player(r.Context()),
		ArticleID: req.ArticleID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusCreated, toRoundResponse(h.svc.View(round, a)))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	round, a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusOK, toRoundResponse(h.svc.View(round, a)))
}

type guessRequest struct {
	Guess string `json:"guess" validate:"required"`
}

type guessResponse struct {
	Round      roundResponse `json:"round"`
	Similarity float64       `json:"similarity"`
	IsMatch    bool          `json:"is_match"`
	Tier       guess.Tier    `json:"tier"`
	Message    string        `json:"message"`
	Win        bool          `json:"win"`
	Badges     []game.Badge  `json:"badges"`
}

func (h *Handler) guess(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req guessRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Guess(r.Context(), game.GuessParams{
		RoundID:  id,
		PlayerID: auth.Player(r.Context()),
		Text:     req.Guess,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	badges := res.Badges
	if badges == nil {
		badges = []game.Badge{}
	}

	request.WriteJSON(w, http.StatusOK, guessResponse{
		Round:      toRoundResponse(h.svc.View(res.Round, res.Article)),
		Similarity: res.Match.Similarity,
		IsMatch:    res.Match.IsMatch,
		Tier:       res.Outcome.Tier,
		Message:    res.Outcome.Message,
		Win:        res.Outcome.Win,
		Badges:     badges,
	})
}

func (h *Handler) giveUp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	round, a, err := h.svc.GiveUp(r.Context(), id, auth.Player(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusOK, toRoundResponse(h.svc.View(round, a)))
}

type historyEntry struct {
	ID            uuid.UUID   `json:"id"`
	ArticleID     uuid.UUID   `json:"article_id"`
	Status        game.Status `json:"status"`
	Score         int         `json:"score"`
	Guesses       int         `json:"guesses"`
	HintsRevealed int         `json:"hints_revealed"`
	StartedAt     time.Time   `json:"started_at"`
	FinishedAt    *time.Time  `json:"finished_at,omitempty"`
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}

		limit = n
	}

	rounds, err := h.svc.History(r.Context(), auth.Player(r.Context()), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]historyEntry, len(rounds))
	for i, rd := range rounds {
		resp[i] = historyEntry{
			ID:            rd.ID,
			ArticleID:     rd.ArticleID,
			Status:        rd.Status,
			Score:         rd.Score,
			Guesses:       len(rd.Guesses),
			HintsRevealed: rd.HintsRevealed,
			StartedAt:     rd.StartedAt,
			FinishedAt:    rd.FinishedAt,
		}
	}

	request.WriteJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound), errors.Is(err, article.ErrNotFound), errors.Is(err, game.ErrNoArticles):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, game.ErrRoundFinished), errors.Is(err, game.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, game.ErrEmptyGuess):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, game.ErrNoPlayer):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		slog.Error("round request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
