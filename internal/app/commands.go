package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick.
	TickMsg time.Time

	// toastExpiredMsg clears the toast with the same sequence number.
	toastExpiredMsg struct {
		seq int
	}
)

// tickCmd returns a command that ticks on the next whole second.
func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// expireToast returns a command that retires toast seq after d.
func expireToast(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
