package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
)

const dbTimeout = 5 * time.Second

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

var tierColors = map[guess.Tier]lipgloss.Color{
	guess.TierPerfect:     "46",
	guess.TierMatch:       "82",
	guess.TierCloseEnough: "226",
	guess.TierSoClose:     "214",
	guess.TierTryAgain:    "196",
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatSimilarity renders a similarity in [0,1] as a percentage.
func FormatSimilarity(s float64) string {
	return fmt.Sprintf("%.0f%%", s*100)
}

// RenderOutcome colours an outcome message by its tier.
func RenderOutcome(o guess.Outcome) string {
	return lipgloss.NewStyle().Bold(true).Foreground(tierColors[o.Tier]).Render(o.Message)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
