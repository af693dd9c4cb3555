// Package tui runs dodge under Bubble Tea, locally or over SSH via Wish.
// It handles the tick loop, key bindings and lipgloss rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after interval. The interval plays the
// role of the input poll timeout: it bounds how long a step can be delayed.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
