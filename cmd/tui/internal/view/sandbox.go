package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wikiguessr/internal/fuzzy"
	"github.com/MrJamesThe3rd/wikiguessr/internal/guess"
)

// SandboxModel scores a guess against a title live, without touching any round.
type SandboxModel struct {
	CommonModel
	threshold float64

	guessInput textinput.Model
	titleInput textinput.Model
	focusIndex int // 0: guess, 1: title
}

func NewSandboxModel(threshold float64) SandboxModel {
	g := textinput.New()
	g.Prompt = "Guess: "
	g.Placeholder = "mercury"
	g.Width = 40
	g.Focus()

	t := textinput.New()
	t.Prompt = "Title: "
	t.Placeholder = "Mercury (planet)"
	t.Width = 40

	return SandboxModel{
		threshold:  threshold,
		guessInput: g,
		titleInput: t,
	}
}

func (m SandboxModel) Title() string     { return "Matcher Sandbox" }
func (m SandboxModel) ShortHelp() string { return "Tab: switch field | Esc: back" }

func (m SandboxModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SandboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter:
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.guessInput.Focus()
				m.titleInput.Blur()
			} else {
				m.guessInput.Blur()
				m.titleInput.Focus()
			}

			return m, textinput.Blink
		}
	}

	var cmd1, cmd2 tea.Cmd
	m.guessInput, cmd1 = m.guessInput.Update(msg)
	m.titleInput, cmd2 = m.titleInput.Update(msg)

	return m, tea.Batch(cmd1, cmd2)
}

// Result scores the current inputs.
func (m SandboxModel) Result() (fuzzy.Result, guess.Outcome) {
	res := fuzzy.Match(m.guessInput.Value(), m.titleInput.Value(), fuzzy.WithThreshold(m.threshold))
	return res, guess.Classify(res.Similarity)
}

func (m SandboxModel) View() string {
	res, outcome := m.Result()

	verdict := errorStyle.Render("no match")
	if res.IsMatch {
		verdict = successStyle.Render("match")
	}

	details := fmt.Sprintf(
		"Normalized guess: %q\nNormalized title: %q\nDistance:         %d\nSimilarity:       %.4f (%s)\nThreshold %.2f:   %s\nTier:             %s",
		fuzzy.NormalizeGuess(m.guessInput.Value()),
		fuzzy.NormalizeTitle(m.titleInput.Value()),
		fuzzy.Distance(fuzzy.NormalizeGuess(m.guessInput.Value()), fuzzy.NormalizeTitle(m.titleInput.Value())),
		res.Similarity, FormatSimilarity(res.Similarity),
		m.threshold, verdict,
		RenderOutcome(outcome),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Matcher sandbox"),
		"",
		m.guessInput.View(),
		m.titleInput.View(),
		"",
		details,
		"",
		faintStyle.Render(m.ShortHelp()),
	))
}
