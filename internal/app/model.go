// Package app is the root Bubble Tea model: it owns the header, footer,
// toasts and help overlay, and hands the content area to the active plugin.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/msg"
	"github.com/marcus/folio/internal/plugin"
)

// toast is the transient footer message.
type toast struct {
	message string
	isError bool
	seq     int
}

// Model is the application state.
type Model struct {
	cfg      *config.Config
	registry *plugin.Registry

	activePlugin int
	width        int
	height       int
	ready        bool
	quitting     bool

	showHelp bool
	help     string // rendered help body, rebuilt on open and resize

	toast toast
	clock time.Time
	now   func() time.Time
}

// New creates the root model. The first registered plugin gets focus.
func New(registry *plugin.Registry, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		cfg:      cfg,
		registry: registry,
		now:      time.Now,
	}
	m.clock = m.now()
	if p := m.ActivePlugin(); p != nil {
		p.SetFocused(true)
	}
	return m
}

// Init starts the plugins and the header clock.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.registry.Start()}
	if p := m.ActivePlugin(); p != nil {
		cmds = append(cmds, func() tea.Msg { return plugin.PluginFocusedMsg{} })
	}
	if m.cfg.UI.ShowClock {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

// ActivePlugin returns the plugin that owns the content area, or nil.
func (m Model) ActivePlugin() plugin.Plugin {
	plugins := m.registry.Plugins()
	if m.activePlugin < 0 || m.activePlugin >= len(plugins) {
		return nil
	}
	return plugins[m.activePlugin]
}

// Toast returns the visible toast text.
func (m Model) Toast() string {
	return m.toast.message
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Update handles messages.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		if m.showHelp {
			m.help = m.renderHelp()
		}
		return m, m.forward(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})

	case TickMsg:
		m.clock = time.Time(message)
		return m, tickCmd()

	case msg.ToastMsg:
		return m, m.showToast(message)

	case toastExpiredMsg:
		if message.seq == m.toast.seq {
			m.toast.message = ""
			m.toast.isError = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.MouseMsg:
		return m, m.handleMouse(message)
	}

	return m, m.forward(message)
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		return *m, m.quit()
	}

	if m.showHelp {
		switch key.String() {
		case "esc", "?":
			m.showHelp = false
		case "q":
			return *m, m.quit()
		}
		return *m, nil
	}

	p := m.ActivePlugin()
	if p == nil || !p.ConsumesTextInput() {
		switch key.String() {
		case "q":
			return *m, m.quit()
		case "?":
			m.showHelp = true
			m.help = m.renderHelp()
			return *m, nil
		}
	}

	return *m, m.forward(key)
}

// handleMouse moves the event into content coordinates before forwarding.
// Events over the header or footer are dropped.
func (m *Model) handleMouse(mouseMsg tea.MouseMsg) tea.Cmd {
	if m.showHelp || !m.cfg.UI.Mouse {
		return nil
	}
	mouseMsg.Y -= headerHeight
	if mouseMsg.Y < 0 || mouseMsg.Y >= m.contentHeight() {
		return nil
	}
	return m.forward(mouseMsg)
}

func (m *Model) showToast(t msg.ToastMsg) tea.Cmd {
	d := t.Duration
	if d <= 0 {
		d = msg.DefaultToastDuration
	}
	m.toast.seq++
	m.toast.message = t.Message
	m.toast.isError = t.IsError
	return expireToast(m.toast.seq, d)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.registry.Stop()
	m.registry.Context().Logger.Debug("quit")
	return tea.Quit
}

// forward sends message to the active plugin.
func (m *Model) forward(message tea.Msg) tea.Cmd {
	p := m.ActivePlugin()
	if p == nil {
		return nil
	}
	updated, cmd := p.Update(message)
	if plugins := m.registry.Plugins(); updated != nil {
		plugins[m.activePlugin] = updated
	}
	return cmd
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight
	if m.cfg.UI.ShowFooter {
		h -= footerHeight
	}
	return max(h, 1)
}
