package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/wikipedia"
)

const fetchTimeout = 30 * time.Second

type articlesState int

const (
	articlesStateBrowse articlesState = iota
	articlesStateFetch
	articlesStateConfirmDelete
)

type ArticlesModel struct {
	CommonModel
	articleService *article.Service
	wikiClient     *wikipedia.Client

	state    articlesState
	table    table.Model
	articles []*article.Article
	form     *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings; pointers so the values survive the model being copied.
	formTitle *string
	confirm   *bool
}

func NewArticlesModel(svc *article.Service, wiki *wikipedia.Client) ArticlesModel {
	columns := []table.Column{
		{Title: "Title", Width: 40},
		{Title: "Links", Width: 6},
		{Title: "Image", Width: 6},
		{Title: "Infobox", Width: 8},
		{Title: "Added", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ArticlesModel{
		articleService: svc,
		wikiClient:     wiki,
		table:          t,
		loading:        true,
		formTitle:      new(string),
		confirm:        new(bool),
	}
}

func (m ArticlesModel) Title() string { return "Articles" }

func (m ArticlesModel) ShortHelp() string {
	switch m.state {
	case articlesStateFetch, articlesStateConfirmDelete:
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | f: fetch from Wikipedia | d: delete | r: refresh"
}

func (m ArticlesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ArticlesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadArticlesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.articles = msg.articles
		m.refreshTable()

		return m, nil

	case articleChangedMsg:
		m.state = articlesStateBrowse
		m.form = nil
		m.table.Focus()
		m.status = msg.status

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.SetSize(msg)
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil
	}

	if m.state == articlesStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m ArticlesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			return m.enterFetch()
		case "d":
			return m.enterDelete()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ArticlesModel) enterFetch() (tea.Model, tea.Cmd) {
	*m.formTitle = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Wikipedia title").
				Placeholder("Mercury (planet)").
				Value(m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = articlesStateFetch
	m.table.Blur()

	return m, m.form.Init()
}

func (m ArticlesModel) enterDelete() (tea.Model, tea.Cmd) {
	a := m.selected()
	if a == nil {
		return m, nil
	}

	*m.confirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", a.Title)).
				Affirmative("Delete").
				Negative("Keep").
				Value(m.confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = articlesStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m ArticlesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = articlesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == articlesStateFetch {
		m.status = fmt.Sprintf("Fetching %q from Wikipedia...", *m.formTitle)
		return m, m.fetchCmd(*m.formTitle)
	}

	if !*m.confirm {
		m.state = articlesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.deleteCmd(m.selected())
}

func (m ArticlesModel) selected() *article.Article {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.articles) {
		return nil
	}

	return m.articles[idx]
}

func (m ArticlesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading articles...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("%d articles", len(m.articles))),
		tableView,
		faintStyle.Render(m.ShortHelp()),
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ArticlesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.articles))
	for _, a := range m.articles {
		image := "no"
		if a.ImageURL != "" {
			image = "yes"
		}

		rows = append(rows, table.Row{
			a.Title,
			fmt.Sprintf("%d", len(a.Links)),
			image,
			fmt.Sprintf("%d", len(a.Infobox)),
			FormatDate(a.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadArticlesMsg struct {
	articles []*article.Article
	err      error
}

type articleChangedMsg struct {
	status string
	err    error
}

func (m ArticlesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		as, err := m.articleService.List(ctx)

		return loadArticlesMsg{articles: as, err: err}
	}
}

func (m ArticlesModel) fetchCmd(title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		params, err := m.wikiClient.Fetch(ctx, title)
		if err != nil {
			return articleChangedMsg{err: err}
		}

		a, err := m.articleService.Create(ctx, *params)
		if err != nil {
			return articleChangedMsg{err: err}
		}

		return articleChangedMsg{status: fmt.Sprintf("Added %q.", a.Title)}
	}
}

func (m ArticlesModel) deleteCmd(a *article.Article) tea.Cmd {
	if a == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.articleService.Delete(ctx, a.ID); err != nil {
			return articleChangedMsg{err: err}
		}

		return articleChangedMsg{status: fmt.Sprintf("Deleted %q.", a.Title)}
	}
}
