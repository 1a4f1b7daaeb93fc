// Package tui runs games inside Bubble Tea, locally or over SSH.
// It owns the tick loop, key and mouse mapping, and the score save on game over.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
