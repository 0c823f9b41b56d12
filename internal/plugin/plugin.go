// Package plugin defines the contract between the app shell and the views it
// hosts.
package plugin

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
)

// Plugin is a view hosted by the app shell.
type Plugin interface {
	ID() string
	Name() string
	Icon() string
	Init(ctx *Context) error
	Start() tea.Cmd
	Stop()
	Update(msg tea.Msg) (Plugin, tea.Cmd)
	View(width, height int) string
	IsFocused() bool
	SetFocused(bool)
	Commands() []Command
	FocusContext() string
	// ConsumesTextInput reports whether printable keys belong to the plugin
	// (a text field has focus), so global shortcuts like q must not fire.
	ConsumesTextInput() bool
}

// DiagnosticProvider is implemented by plugins that report health details.
type DiagnosticProvider interface {
	Diagnostics() []Diagnostic
}

// Context is what a plugin receives at Init.
type Context struct {
	Config *config.Config
	Logger *slog.Logger
}

// Category groups commands in the footer and help.
type Category string

const (
	CategoryNavigation Category = "Navigation"
	CategoryActions    Category = "Actions"
	CategoryView       Category = "View"
	CategorySearch     Category = "Search"
	CategorySystem     Category = "System"
)

// Command is a key binding advertised in the footer and help overlay.
type Command struct {
	ID          string
	Name        string
	Key         string
	Description string
	Context     string // FocusContext value the command applies to
	Priority    int    // lower sorts first; footer shows the lowest
	Category    Category
}

// Diagnostic is one health line for the help overlay.
type Diagnostic struct {
	ID     string
	Status string
	Detail string
}

// PluginFocusedMsg is sent to a plugin when it gains focus.
type PluginFocusedMsg struct{}
