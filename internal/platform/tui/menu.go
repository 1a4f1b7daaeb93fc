package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/giladgray/cartographist/internal/core"
	"github.com/giladgray/cartographist/internal/registry"
	"github.com/giladgray/cartographist/internal/storage"
)

// MenuItem is one line of the start menu. An empty GameID opens the scoreboard.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

// MenuKeyMap holds the menu bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the standard menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// MenuModel picks a game mode or the scoreboard.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	keys           MenuKeyMap
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered game with its best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			item.Best, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	items = append(items, MenuItem{Title: "High Scores"})

	return MenuModel{
		items:  items,
		keys:   DefaultMenuKeyMap(),
		config: cfg,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.items)
		case key.Matches(msg, m.keys.Scores):
			m.openScoreboard = true
		case key.Matches(msg, m.keys.Select):
			item := m.items[m.cursor]
			if item.GameID == "" {
				m.openScoreboard = true
			} else {
				m.selected = &item
			}
		}
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// View renders the menu centered on screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(title.Render("C A R T O G R A P H I S T"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		line := item.Title
		if item.Best > 0 {
			line = fmt.Sprintf("%-24s best %d", item.Title, item.Best)
		}
		if i == m.cursor {
			b.WriteString(active.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("↑/↓ navigate • enter select • tab scores • q quit"))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the scoreboard was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
