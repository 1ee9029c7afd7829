package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) SetSize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
