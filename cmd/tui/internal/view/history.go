package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
)

const historyLimit = 50

type HistoryModel struct {
	CommonModel
	gameService    *game.Service
	articleService *article.Service
	playerID       string

	loading bool
	spinner spinner.Model
	table   table.Model
	total   int
	err     error
}

func NewHistoryModel(gameSvc *game.Service, articleSvc *article.Service, playerID string) HistoryModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Article", Width: 36},
			{Title: "Status", Width: 12},
			{Title: "Guesses", Width: 8},
			{Title: "Hints", Width: 6},
			{Title: "Score", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return HistoryModel{
		gameService:    gameSvc,
		articleService: articleSvc,
		playerID:       playerID,
		loading:        true,
		spinner:        s,
		table:          t,
	}
}

func (m HistoryModel) Title() string     { return "History" }
func (m HistoryModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m HistoryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.total = 0

		for _, row := range msg.rows {
			if score, ok := row.score(); ok {
				m.total += score
			}
		}

		m.table.SetRows(toTableRows(msg.rows))

		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg)
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, m.loadCmd())
			}
		}
	}

	var cmd tea.Cmd

	if m.loading {
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render(fmt.Sprintf("%s Loading rounds for %s...", m.spinner.View(), m.playerID))
	}

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("Rounds of %s  |  total score: %d", m.playerID, m.total)),
		m.table.View(),
		faintStyle.Render(m.ShortHelp()),
	))
}

type historyRow struct {
	round *game.Round
	title string
}

func (r historyRow) score() (int, bool) {
	return r.round.Score, r.round.Status == game.StatusWon
}

func toTableRows(rows []historyRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{
			FormatDate(r.round.StartedAt),
			r.title,
			string(r.round.Status),
			fmt.Sprintf("%d", len(r.round.Guesses)),
			fmt.Sprintf("%d", r.round.HintsRevealed),
			fmt.Sprintf("%d", r.round.Score),
		}
	}

	return out
}

type historyLoadedMsg struct {
	rows []historyRow
	err  error
}

func (m HistoryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rounds, err := m.gameService.History(ctx, m.playerID, historyLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}

		rows := make([]historyRow, len(rounds))

		for i, r := range rounds {
			rows[i] = historyRow{round: r, title: "?"}

			// The answer stays hidden until the round is over.
			if !r.Finished() {
				continue
			}

			a, err := m.articleService.Lookup(ctx, r.ArticleID)

			switch {
			case errors.Is(err, article.ErrNotFound):
				rows[i].title = "(missing)"
			case err != nil:
				return historyLoadedMsg{err: err}
			case a.DeletedAt != nil:
				rows[i].title = a.Title + " (deleted)"
			default:
				rows[i].title = a.Title
			}
		}

		return historyLoadedMsg{rows: rows}
	}
}
