package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/giladgray/cartographist/internal/core"
)

// KeyMap holds the in-game bindings. It implements help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Next       key.Binding
	Prev       key.Binding
	Rotate     key.Binding
	RotateBack key.Binding
	Place      key.Binding
	Draw       key.Binding
	Undo       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "north-east"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "south-west"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "east"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next free cell"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous free cell"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("e", "x"),
			key.WithHelp("e", "rotate clockwise"),
		),
		RotateBack: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate back"),
		),
		Place: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "place tile"),
		),
		Draw: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "draw tiles (endless)"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Place, k.Undo, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Next, k.Prev},
		{k.Rotate, k.RotateBack, k.Place, k.Draw, k.Undo},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Help, k.Quit},
	}
}

// Action translates a key press to a game action.
// Keys handled by the platform itself (quit, help, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Next):
		return core.ActionNext
	case key.Matches(msg, k.Prev):
		return core.ActionPrev
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.RotateBack):
		return core.ActionRotateBack
	case key.Matches(msg, k.Place):
		return core.ActionConfirm
	case key.Matches(msg, k.Draw):
		return core.ActionDraw
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// pointerFrom converts a mouse event to a pointer. ok is false for events
// the game ignores (wheel, release, other buttons).
func pointerFrom(msg tea.MouseMsg) (x, y int, click, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return 0, 0, false, false
		}
		return msg.X, msg.Y, true, true
	case tea.MouseActionMotion:
		return msg.X, msg.Y, false, true
	}
	return 0, 0, false, false
}
