package article

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/request"
	"github.com/MrJamesThe3rd/wikiguessr/internal/importer"
	"github.com/MrJamesThe3rd/wikiguessr/internal/wikipedia"
)

const maxUploadBytes = 10 << 20

// Fetcher builds article params from an external source such as Wikipedia.
type Fetcher interface {
	Fetch(ctx context.Context, title string) (*article.CreateParams, error)
}

type Handler struct {
	svc       *article.Service
	importSvc *importer.Service
	fetcher   Fetcher
}

func NewHandler(svc *article.Service, importSvc *importer.Service, fetcher Fetcher) *Handler {
	return &Handler{
		svc:       svc,
		importSvc: importSvc,
		fetcher:   fetcher,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/fetch", h.fetch)
	r.Post("/import", h.importFile)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type articleResponse struct {
	ID        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Summary   string                 `json:"summary,omitempty"`
	ImageURL  string                 `json:"image_url,omitempty"`
	Links     []string               `json:"links"`
	Infobox   []article.InfoboxField `json:"infobox"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at,omitempty"`
}

func toResponse(a *article.Article) articleResponse {
	resp := articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Summary:   a.Summary,
		ImageURL:  a.ImageURL,
		Links:     a.Links,
		Infobox:   a.Infobox,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if resp.Links == nil {
		resp.Links = []string{}
	}

	if resp.Infobox == nil {
		resp.Infobox = []article.InfoboxField{}
	}

	return resp
}

func toResponseList(as []*article.Article) []articleResponse {
	resp := make([]articleResponse, len(as))
	for i, a := range as {
		resp[i] = toResponse(a)
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}

		limit = n
	}

	articles, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusOK, toResponseList(articles))
}

type createArticleRequest struct {
	Title    string                 `json:"title" validate:"required"`
	Summary  string                 `json:"summary"`
	ImageURL string                 `json:"image_url" validate:"omitempty,url"`
	Links    []string               `json:"links"`
	Infobox  []article.InfoboxField `json:"infobox"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), article.CreateParams{
		Title:    req.Title,
		Summary:  req.Summary,
		ImageURL: req.ImageURL,
		Links:    req.Links,
		Infobox:  req.Infobox,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusCreated, toResponse(a))
}

type fetchArticleRequest struct {
	Title string `json:"title" validate:"required"`
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	var req fetchArticleRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := h.fetcher.Fetch(r.Context(), req.Title)
	if err != nil {
		if errors.Is(err, wikipedia.ErrNotFound) {
			http.Error(w, "wikipedia page not found", http.StatusNotFound)
			return
		}

		writeError(w, err)

		return
	}

	a, err := h.svc.Create(r.Context(), *params)
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusCreated, toResponse(a))
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		http.Error(w, "format field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.svc.ImportBatch(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusCreated, importResponse{
		Imported: imported,
		Skipped:  len(params) - imported,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	request.WriteJSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, article.ErrNotFound):
		http.Error(w, "article not found", http.StatusNotFound)
	case errors.Is(err, article.ErrDuplicateTitle):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, article.ErrEmptyTitle):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("article request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
