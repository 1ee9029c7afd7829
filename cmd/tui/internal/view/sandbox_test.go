package view_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wikiguessr/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
)

func typeText(t *testing.T, m view.SandboxModel, s string) view.SandboxModel {
	t.Helper()

	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})

		var ok bool
		m, ok = next.(view.SandboxModel)
		require.True(t, ok)
	}

	return m
}

func TestSandbox_ScoresAsYouType(t *testing.T) {
	m := view.NewSandboxModel(0.85)

	m = typeText(t, m, "pariz")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(view.SandboxModel)
	m = typeText(t, m, "Paris")

	res, outcome := m.Result()
	assert.InDelta(t, 0.8, res.Similarity, 1e-9)
	assert.False(t, res.IsMatch)
	assert.Equal(t, guess.TierCloseEnough, outcome.Tier)
	assert.Contains(t, m.View(), "Close enough!")
}

func TestSandbox_EmptyInputs(t *testing.T) {
	res, outcome := view.NewSandboxModel(0.85).Result()

	assert.Equal(t, 1.0, res.Similarity)
	assert.True(t, res.IsMatch)
	assert.Equal(t, guess.TierPerfect, outcome.Tier)
}

func TestSandbox_EscGoesBack(t *testing.T) {
	_, cmd := view.NewSandboxModel(0.85).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, view.BackMsg{}, cmd())
}
