package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/plugin"
	"github.com/marcus/folio/internal/styles"
)

const (
	headerHeight = 2
	footerHeight = 1

	globalHints = "? help  q quit"
)

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderContent(m.width, m.contentHeight()))

	if m.cfg.UI.ShowFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	if m.showHelp {
		box := styles.ModalBox.Render(m.help)
		return modal.Overlay(b.String(), box, m.width, m.height)
	}
	return b.String()
}

// renderHeader renders the title and clock line and the subtitle line.
func (m Model) renderHeader() string {
	title := " " + styles.GradientText(m.cfg.Portfolio.Title, styles.GetActiveGradient())

	var clock string
	if m.cfg.UI.ShowClock {
		clock = styles.Muted.Render(m.clock.Format("15:04")) + " "
	}

	spacing := max(m.width-lipgloss.Width(title)-lipgloss.Width(clock), 0)
	top := ansi.Truncate(title+strings.Repeat(" ", spacing)+clock, m.width, "")

	subtitle := ansi.Truncate(" "+styles.Subtitle.Render(m.cfg.Portfolio.Subtitle), m.width, "…")

	return styles.Header.Width(m.width).Render(top) + "\n" +
		styles.Header.Width(m.width).Render(subtitle)
}

// renderContent renders the main content area at exactly height lines.
func (m Model) renderContent(width, height int) string {
	fill := lipgloss.NewStyle().Height(height).MaxHeight(height)

	p := m.ActivePlugin()
	if p == nil {
		text := "No views loaded"
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.Muted.Render(text))
	}
	return fill.Render(p.View(width, height))
}

// renderFooter renders key hints on the left and the toast on the right.
func (m Model) renderFooter() string {
	hints := styles.KeyHint.Render(m.contextHints())

	var status string
	if m.toast.message != "" {
		if m.toast.isError {
			status = styles.StatusBlocked.Render(m.toast.message)
		} else {
			status = styles.StatusModified.Render(m.toast.message)
		}
	}

	// The toast wins over hints when the line is too narrow for both.
	statusWidth := lipgloss.Width(status)
	hints = ansi.Truncate(hints, max(m.width-statusWidth-1, 0), "…")
	spacing := max(m.width-lipgloss.Width(hints)-statusWidth, 0)

	footer := ansi.Truncate(hints+strings.Repeat(" ", spacing)+status, m.width, "")
	return styles.Footer.Width(m.width).Render(footer)
}

// contextHints lists the active plugin's commands for its current focus
// context, lowest priority first, followed by the global keys.
func (m Model) contextHints() string {
	p := m.ActivePlugin()
	if p == nil {
		return globalHints
	}

	cmds := commandsFor(p.Commands(), p.FocusContext())
	parts := make([]string, 0, len(cmds)+1)
	for _, c := range cmds {
		parts = append(parts, c.Key+" "+strings.ToLower(c.Name))
	}
	if !p.ConsumesTextInput() {
		parts = append(parts, globalHints)
	}
	return strings.Join(parts, "  ")
}

// commandsFor filters cmds to context and sorts them by priority.
func commandsFor(cmds []plugin.Command, context string) []plugin.Command {
	var out []plugin.Command
	for _, c := range cmds {
		if c.Context == context {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}
