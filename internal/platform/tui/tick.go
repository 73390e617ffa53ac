// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping, the menu flow and
// SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one tick after ms milliseconds.
func tickCmd(ms int) tea.Cmd {
	if ms <= 0 {
		ms = 1
	}
	return tea.Tick(time.Duration(ms)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
