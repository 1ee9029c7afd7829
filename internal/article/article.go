package article

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("article not found")
	ErrDuplicateTitle = errors.New("article title already exists")
	ErrEmptyTitle     = errors.New("article title is required")
)

// Article is the subject of a round: its Title is what players try to guess,
// the remaining fields feed the hints.
type Article struct {
	ID        uuid.UUID
	Title     string
	Summary   string
	ImageURL  string
	Links     []string
	Infobox   []InfoboxField
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// InfoboxField is a single row of a Wikipedia infobox, kept in display order.
type InfoboxField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
