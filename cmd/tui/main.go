package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/wikiguessr/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	articleStore "github.com/MrJamesThe3rd/wikiguessr/internal/article/store"
	"github.com/MrJamesThe3rd/wikiguessr/internal/config"
	"github.com/MrJamesThe3rd/wikiguessr/internal/database"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
	gameStore "github.com/MrJamesThe3rd/wikiguessr/internal/game/store"
	"github.com/MrJamesThe3rd/wikiguessr/internal/importer"
	"github.com/MrJamesThe3rd/wikiguessr/internal/logging"
	"github.com/MrJamesThe3rd/wikiguessr/internal/wikipedia"
)

const defaultLogFile = "wikiguessr-tui.log"

type model struct {
	articleService *article.Service
	gameService    *game.Service
	importService  *importer.Service
	wikiClient     *wikipedia.Client
	playerID       string
	threshold      float64

	currentView View
	width       int
	height      int

	playView     view.PlayModel
	sandboxView  view.SandboxModel
	articlesView view.ArticlesModel
	importView   view.ImportModel
	historyView  view.HistoryModel
}

type View int

const (
	ViewMenu     View = 0
	ViewPlay     View = 1
	ViewSandbox  View = 2
	ViewArticles View = 3
	ViewImport   View = 4
	ViewHistory  View = 5
)

func initialModel() (model, io.Closer) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = defaultLogFile
	}

	_, logCloser, err := logging.Setup(logging.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		File:     logFile,
		FileOnly: true,
	})
	if err != nil {
		slog.Error("failed to setup logging", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	articleSvc := article.NewService(articleStore.New(db))
	gameSvc := game.NewService(gameStore.New(db), articleSvc, clockwork.NewRealClock(), game.Config{
		Threshold:  cfg.Game.Threshold,
		MaxGuesses: cfg.Game.MaxGuesses,
	})
	impSvc := importer.NewService()
	wiki := wikipedia.NewClient(cfg.Wikipedia.BaseURL, cfg.Wikipedia.UserAgent, cfg.Wikipedia.Timeout)

	return model{
		articleService: articleSvc,
		gameService:    gameSvc,
		importService:  impSvc,
		wikiClient:     wiki,
		playerID:       cfg.TUI.PlayerID,
		threshold:      cfg.Game.Threshold,
		currentView:    ViewMenu,
	}, logCloser
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPlay
				m.playView = view.NewPlayModel(m.gameService, m.playerID)

				return m, tea.Batch(m.playView.Init(), m.resizeCmd())
			case "2":
				m.currentView = ViewSandbox
				m.sandboxView = view.NewSandboxModel(m.threshold)

				return m, tea.Batch(m.sandboxView.Init(), m.resizeCmd())
			case "3":
				m.currentView = ViewArticles
				m.articlesView = view.NewArticlesModel(m.articleService, m.wikiClient)

				return m, tea.Batch(m.articlesView.Init(), m.resizeCmd())
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.articleService, m.importService)

				return m, tea.Batch(m.importView.Init(), m.resizeCmd())
			case "5":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.gameService, m.articleService, m.playerID)

				return m, tea.Batch(m.historyView.Init(), m.resizeCmd())
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewPlay:
		var newModel tea.Model
		newModel, cmd = m.playView.Update(msg)
		m.playView = newModel.(view.PlayModel)
	case ViewSandbox:
		var newModel tea.Model
		newModel, cmd = m.sandboxView.Update(msg)
		m.sandboxView = newModel.(view.SandboxModel)
	case ViewArticles:
		var newModel tea.Model
		newModel, cmd = m.articlesView.Update(msg)
		m.articlesView = newModel.(view.ArticlesModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	}

	return m, cmd
}

// resizeCmd replays the last window size so a freshly opened view can lay itself out.
func (m model) resizeCmd() tea.Cmd {
	if m.width == 0 {
		return nil
	}

	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: m.width, Height: m.height}
	}
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("WikiGuessr (playing as %s)\n\n", m.playerID) +
				"1. Play\n" +
				"2. Matcher Sandbox\n" +
				"3. Articles\n" +
				"4. Import Articles\n" +
				"5. History\n\n" +
				"q. Quit",
		)
	case ViewPlay:
		return m.playView.View()
	case ViewSandbox:
		return m.sandboxView.View()
	case ViewArticles:
		return m.articlesView.View()
	case ViewImport:
		return m.importView.View()
	case ViewHistory:
		return m.historyView.View()
	}

	return "Unknown View"
}

func main() {
	m, logCloser := initialModel()
	defer logCloser.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
