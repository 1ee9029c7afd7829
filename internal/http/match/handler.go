package match

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wikiguessr/internal/fuzzy"
	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/request"
)

// Handler exposes the matcher on its own, without any round state.
type Handler struct {
	threshold float64
}

func NewHandler(threshold float64) *Handler {
	return &Handler{threshold: threshold}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.match)
}

type matchRequest struct {
	Guess     string   `json:"guess"`
	Title     string   `json:"title"`
	Threshold *float64 `json:"threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type matchResponse struct {
	Similarity float64    `json:"similarity"`
	IsMatch    bool       `json:"is_match"`
	Tier       guess.Tier `json:"tier"`
	Message    string     `json:"message"`
	Win        bool       `json:"win"`
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	threshold := h.threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	res := fuzzy.Match(req.Guess, req.Title, fuzzy.WithThreshold(threshold))
	outcome := guess.Classify(res.Similarity)

	request.WriteJSON(w, http.StatusOK, matchResponse{
		Similarity: res.Similarity,
		IsMatch:    res.IsMatch,
		Tier:       outcome.Tier,
		Message:    outcome.Message,
		Win:        outcome.Win,
	})
}
