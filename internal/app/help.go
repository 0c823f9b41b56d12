package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/marcus/folio/internal/plugin"
)

const helpMaxWidth = 72

// categoryOrder is the order help sections appear in.
var categoryOrder = []plugin.Category{
	plugin.CategoryNavigation,
	plugin.CategoryActions,
	plugin.CategorySearch,
	plugin.CategoryView,
	plugin.CategorySystem,
}

// helpMarkdown builds the help text from the registered plugins.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n\n")

	for _, p := range m.registry.Plugins() {
		byCategory := make(map[plugin.Category][]plugin.Command)
		for _, c := range p.Commands() {
			byCategory[c.Category] = append(byCategory[c.Category], c)
		}
		for _, cat := range categoryOrder {
			cmds := byCategory[cat]
			if len(cmds) == 0 {
				continue
			}
			sort.SliceStable(cmds, func(i, j int) bool {
				if cmds[i].Context != cmds[j].Context {
					return cmds[i].Context < cmds[j].Context
				}
				return cmds[i].Priority < cmds[j].Priority
			})
			fmt.Fprintf(&b, "## %s\n\n", cat)
			for _, c := range cmds {
				fmt.Fprintf(&b, "- `%s` %s\n", c.Key, c.Description)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Global\n\n")
	b.WriteString("- `?` toggle this help\n")
	b.WriteString("- `q` quit (ignored while typing)\n")
	b.WriteString("- `ctrl+c` quit\n\n")

	b.WriteString(m.diagnosticsMarkdown())
	b.WriteString("_Press esc to close_\n")
	return b.String()
}

func (m Model) diagnosticsMarkdown() string {
	var lines []string
	for _, p := range m.registry.Plugins() {
		dp, ok := p.(plugin.DiagnosticProvider)
		if !ok {
			continue
		}
		for _, d := range dp.Diagnostics() {
			lines = append(lines, fmt.Sprintf("- **%s** %s: %s", d.ID, d.Status, d.Detail))
		}
	}

	unavailable := m.registry.Unavailable()
	ids := make([]string, 0, len(unavailable))
	for id := range unavailable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("- **%s** unavailable: %s", id, unavailable[id]))
	}

	if len(lines) == 0 {
		return ""
	}
	return "## Status\n\n" + strings.Join(lines, "\n") + "\n\n"
}

// renderHelp renders the help markdown for the current width. Rendering
// falls back to the raw markdown if glamour fails.
func (m Model) renderHelp() string {
	md := m.helpMarkdown()
	wrap := max(min(m.width-8, helpMaxWidth), 20)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.registry.Context().Logger.Warn("help renderer", "err", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.registry.Context().Logger.Warn("help render", "err", err)
		return md
	}
	return strings.Trim(out, "\n")
}
