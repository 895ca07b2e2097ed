// Package tui hosts games in the terminal with Bubble Tea. It runs the frame
// loop, maps keys to actions, renders the screen buffer with lipgloss and
// serves the same session over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host frame.
type TickMsg time.Time

// tickCmd schedules the next frame.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
