package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/giladgray/cartographist/internal/core"
	"github.com/giladgray/cartographist/internal/registry"
	"github.com/giladgray/cartographist/internal/storage"
)

// placementCounter is implemented by games that report tiles placed in a run.
type placementCounter interface {
	Placements() int
}

// resizer is implemented by games that can follow a terminal resize
// without losing the run.
type resizer interface {
	Resize(w, h int)
}

// Option configures a Model.
type Option func(*Model)

// WithPainter sets the painter, typically one bound to an SSH session renderer.
func WithPainter(p *Painter) Option {
	return func(m *Model) { m.painter = p }
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithMenu lets Back return to a surrounding menu instead of doing nothing.
func WithMenu() Option {
	return func(m *Model) { m.inMenu = true }
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	painter *Painter
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string

	showHelp   bool
	inMenu     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	cfg = cfg.Resolved(time.Now())

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runID:      storage.NewRunID(),
	}
	m.help.ShowAll = true
	for _, opt := range opts {
		opt(&m)
	}
	if m.painter == nil {
		m.painter = defaultPainter
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	return m
}

// Init resets the game and starts ticking.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if x, y, click, ok := pointerFrom(msg); ok && !m.showHelp {
			m.inputFrame.SetPointer(x, y, click)
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case m.showHelp:
		// Any other key closes the help screen
		m.showHelp = false
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionBack {
		if m.inMenu {
			m.saveScore()
			m.backToMenu = true
		}
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the run going when the game supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runID = storage.NewRunID()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	// Undo can reopen a finished run; its next save updates the same row
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the current run. Saving the same run again only
// replaces the row when the score improved.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	}
	if pc, ok := m.game.(placementCounter); ok {
		entry.Tiles = pc.Placements()
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "game", entry.GameID, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".carto", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the game, or the key reference when help is open.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.showHelp {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render("KEYS\n\n" + m.help.View(m.keys))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.painter.Paint(m.screen)
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
