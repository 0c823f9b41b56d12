package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/styles"
)

// FocusableInfo locates a focusable element relative to its section.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// RenderedSection is the output of one section render.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Section is one block of modal content.
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

type customSection struct {
	render func(contentWidth int, focusID, hoverID string) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Custom builds a section from a render func and an optional update func.
func Custom(render func(contentWidth int, focusID, hoverID string) RenderedSection, update func(msg tea.Msg, focusID string) (string, tea.Cmd)) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

type textSection struct {
	text string
}

// Text is a static, word-wrapped paragraph.
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: lipgloss.NewStyle().Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type spacerSection struct{}

// Spacer is a single blank line.
func Spacer() Section { return spacerSection{} }

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// Swatch is one selectable cell of a Swatches grid. Paint draws the color
// sample at the given width.
type Swatch struct {
	ID    string
	Label string
	Paint func(width int) string
}

type swatchSection struct {
	items   []Swatch
	columns int
}

// Swatches lays items out in a grid, each cell two lines tall.
func Swatches(items []Swatch, columns int) Section {
	return &swatchSection{items: items, columns: max(columns, 1)}
}

// SwatchCellHeight is the number of lines each swatch cell occupies.
const SwatchCellHeight = 2

func (s *swatchSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{Content: styles.Muted.Render("No options")}
	}
	cellW := max(contentWidth/s.columns, 4)

	var rows []string
	focusables := make([]FocusableInfo, 0, len(s.items))
	for start := 0; start < len(s.items); start += s.columns {
		end := min(start+s.columns, len(s.items))
		var top, bottom []string
		for i := start; i < end; i++ {
			item := s.items[i]
			active := item.ID == focusID || item.ID == hoverID

			left, right := " ", " "
			labelStyle := styles.Muted
			if item.ID == focusID {
				left, right = "›", "‹"
				labelStyle = styles.ListItemSelected
			} else if active {
				labelStyle = styles.Title
			}
			paint := ""
			if item.Paint != nil {
				paint = item.Paint(cellW - 2)
			}
			top = append(top, left+paint+right)

			label := ansi.Truncate(item.Label, cellW-1, "…")
			bottom = append(bottom, lipgloss.PlaceHorizontal(cellW, lipgloss.Center, labelStyle.Render(label)))

			col := i - start
			focusables = append(focusables, FocusableInfo{
				ID:      item.ID,
				OffsetX: col * cellW,
				OffsetY: (start / s.columns) * SwatchCellHeight,
				Width:   cellW,
				Height:  SwatchCellHeight,
			})
		}
		rows = append(rows, strings.Join(top, ""), strings.Join(bottom, ""))
	}
	return RenderedSection{Content: strings.Join(rows, "\n"), Focusables: focusables}
}

func (s *swatchSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }
