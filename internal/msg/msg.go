// Package msg holds tea messages shared between plugins and the app shell.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultToastDuration is how long a toast stays up when no duration is given.
const DefaultToastDuration = 2 * time.Second

// ToastMsg asks the app to show a transient footer message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

// ShowToast returns a command that emits a success toast.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration}
	}
}

// ShowError returns a command that emits an error toast for err.
func ShowError(prefix string, err error) tea.Cmd {
	text := prefix
	if err != nil {
		text = prefix + ": " + err.Error()
	}
	return func() tea.Msg {
		return ToastMsg{Message: text, Duration: 2 * DefaultToastDuration, IsError: true}
	}
}
