package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
)

type playState int

const (
	playStateLoading playState = iota
	playStateGuessing
	playStateFinished
)

type PlayModel struct {
	CommonModel
	gameService *game.Service
	playerID    string

	state   playState
	round   *game.Round
	article *article.Article
	input   textinput.Model

	last   *game.GuessResult
	status string
	err    error
}

func NewPlayModel(svc *game.Service, playerID string) PlayModel {
	ti := textinput.New()
	ti.Placeholder = "Your guess"
	ti.Width = 50
	ti.CharLimit = 200

	return PlayModel{
		gameService: svc,
		playerID:    playerID,
		input:       ti,
	}
}

func (m PlayModel) Title() string { return "Play" }

func (m PlayModel) ShortHelp() string {
	if m.state == playStateFinished {
		return "Enter: new round | Esc: back"
	}

	return "Enter: guess | Ctrl+G: give up | Esc: back"
}

func (m PlayModel) Init() tea.Cmd {
	return m.startCmd()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg)
		return m, nil

	case tea.KeyMsg:
		if m.state == playStateLoading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyCtrlG:
			if m.state == playStateGuessing {
				return m, m.giveUpCmd()
			}
		case tea.KeyEnter:
			if m.state == playStateFinished {
				m.state = playStateLoading
				m.last = nil

				return m, m.startCmd()
			}

			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.status = "Type a guess first."
				return m, nil
			}

			m.input.SetValue("")

			return m, m.guessCmd(text)
		}

	case roundStartedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = playStateFinished

			if errors.Is(msg.err, game.ErrNoArticles) {
				m.err = errors.New("no articles yet, add some from the Articles screen")
			}

			return m, nil
		}

		m.err = nil
		m.round = msg.round
		m.article = msg.article
		m.state = playStateGuessing
		m.status = ""
		m.input.Focus()

		return m, textinput.Blink

	case guessResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.last = msg.result
		m.round = msg.result.Round
		m.status = ""

		if m.round.Finished() {
			m.state = playStateFinished
			m.input.Blur()
		}

		return m, nil

	case giveUpMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.round = msg.round
		m.state = playStateFinished
		m.input.Blur()

		return m, nil
	}

	if m.state != playStateGuessing {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m PlayModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)")
	}

	if m.state == playStateLoading || m.round == nil {
		return style.Render("Picking an article...")
	}

	v := m.gameService.View(m.round, m.article)

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Hint %d/%d  |  guesses left: %d", len(v.Hints), len(game.HintOrder), v.GuessesLeft)))
	b.WriteString("\n\n")

	for _, h := range v.Hints {
		b.WriteString(renderHint(h, m.hintWidth()))
		b.WriteString("\n")
	}

	if m.last != nil {
		fmt.Fprintf(&b, "\n%s  (%s)\n", RenderOutcome(m.last.Outcome), FormatSimilarity(m.last.Match.Similarity))

		for _, badge := range m.last.Badges {
			b.WriteString(successStyle.Render("Badge earned: "+string(badge)) + "\n")
		}
	}

	if len(v.Guesses) > 0 {
		b.WriteString(faintStyle.Render("\nGuesses:") + "\n")

		for _, g := range v.Guesses {
			fmt.Fprintf(&b, "  %-30s %s\n", g.Text, FormatSimilarity(g.Similarity))
		}
	}

	if m.state == playStateFinished {
		fmt.Fprintf(&b, "\n%s It was %s. Score: %d\n",
			statusLabel(v.Status), lipgloss.NewStyle().Bold(true).Render(v.Answer), v.Score)
	} else {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + faintStyle.Render(m.status))
	}

	return style.Render(b.String())
}

func statusLabel(s game.Status) string {
	switch s {
	case game.StatusWon:
		return successStyle.Render("You won!")
	case game.StatusLost:
		return errorStyle.Render("Out of guesses.")
	case game.StatusAbandoned:
		return faintStyle.Render("Given up.")
	}

	return ""
}

const maxHintWidth = 70

var hintBox = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

// hintWidth fits the hint boxes into the terminal, leaving room for padding.
func (m PlayModel) hintWidth() int {
	if m.Width > 0 && m.Width-8 < maxHintWidth {
		return max(m.Width-8, 20)
	}

	return maxHintWidth
}

func renderHint(h game.Hint, width int) string {
	var body string

	switch h.Kind {
	case game.HintLinks:
		body = "Related: " + strings.Join(h.Links, ", ")
	case game.HintImage:
		body = "Image: " + h.ImageURL
		if h.ImageURL == "" {
			body = "Image: (none)"
		}
	case game.HintInfobox:
		rows := make([]string, 0, len(h.Infobox))
		for _, f := range h.Infobox {
			rows = append(rows, fmt.Sprintf("%s: %s", f.Key, f.Value))
		}

		body = "Infobox:\n" + strings.Join(rows, "\n")
		if len(rows) == 0 {
			body = "Infobox: (none)"
		}
	case game.HintInitials:
		body = "Initials: " + h.Text
	case game.HintSummary:
		body = "Summary: " + h.Text
	}

	return hintBox.Width(width).Render(body)
}

// Messages

type roundStartedMsg struct {
	round   *game.Round
	article *article.Article
	err     error
}

type guessResultMsg struct {
	result *game.GuessResult
	err    error
}

type giveUpMsg struct {
	round *game.Round
	err   error
}

func (m PlayModel) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		r, a, err := m.gameService.Start(ctx, game.StartParams{PlayerID: m.playerID})

		return roundStartedMsg{round: r, article: a, err: err}
	}
}

func (m PlayModel) guessCmd(text string) tea.Cmd {
	roundID := m.round.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.gameService.Guess(ctx, game.GuessParams{
			RoundID:  roundID,
			PlayerID: m.playerID,
			Text:     text,
		})

		return guessResultMsg{result: res, err: err}
	}
}

func (m PlayModel) giveUpCmd() tea.Cmd {
	roundID := m.round.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		r, _, err := m.gameService.GiveUp(ctx, roundID, m.playerID)

		return giveUpMsg{round: r, err: err}
	}
}
