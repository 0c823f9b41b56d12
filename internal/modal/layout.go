package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/mouse"
	"github.com/marcus/folio/internal/styles"
)

// Hit region IDs registered around the modal box.
const (
	RegionBackdrop = "modal-backdrop"
	RegionBody     = "modal-body"
)

// buildLayout renders the box and registers backdrop, body and focusable
// regions in screen coordinates. The box is positioned the way Overlay
// places it.
func (m *Modal) buildLayout(screenW, screenH int, handler *mouse.Handler) string {
	width := min(m.width, max(screenW-2, 10))
	contentWidth := max(width-4, 1)

	header := []string{styles.ModalTitle.Render(ansi.Truncate(m.title, contentWidth, "…")), ""}

	var body []string
	var focusables []FocusableInfo
	m.focusIDs = m.focusIDs[:0]
	focusID, hoverID := m.currentFocusID(), m.hoverID
	for _, s := range m.sections {
		r := s.Render(contentWidth, focusID, hoverID)
		base := len(body)
		for _, f := range r.Focusables {
			f.OffsetY += base
			focusables = append(focusables, f)
			m.focusIDs = append(m.focusIDs, f.ID)
		}
		body = append(body, strings.Split(r.Content, "\n")...)
	}
	if m.focusIdx >= len(m.focusIDs) {
		m.focusIdx = 0
	}

	var footer []string
	if m.showHints {
		footer = []string{"", m.hintLine()}
	}

	maxBody := max(screenH-2-len(header)-len(footer), 1)
	maxScroll := max(len(body)-maxBody, 0)
	m.scrollOffset = max(0, min(m.scrollOffset, maxScroll))
	visible := body[m.scrollOffset:min(len(body), m.scrollOffset+maxBody)]

	lines := make([]string, 0, len(header)+len(visible)+len(footer))
	lines = append(lines, header...)
	lines = append(lines, visible...)
	lines = append(lines, footer...)

	box := styles.ModalBox.Width(width - 2)
	if m.variant == VariantDanger {
		box = box.BorderForeground(styles.Error)
	}
	rendered := box.Render(strings.Join(lines, "\n"))

	if handler != nil {
		boxW, boxH := lipgloss.Width(rendered), lipgloss.Height(rendered)
		x, y := centerOffset(screenW, boxW), centerOffset(screenH, boxH)

		handler.HitMap.Clear()
		handler.HitMap.AddRect(RegionBackdrop, 0, 0, screenW, screenH, nil)
		handler.HitMap.AddRect(RegionBody, x, y, boxW, boxH, nil)

		originX, originY := x+2, y+1+len(header)
		for _, f := range focusables {
			row := f.OffsetY - m.scrollOffset
			if row < 0 || row+f.Height > len(visible) {
				continue
			}
			handler.HitMap.AddRect(f.ID, originX+f.OffsetX, originY+row, f.Width, f.Height, nil)
		}
	}
	return rendered
}

func (m *Modal) hintLine() string {
	pairs := [][2]string{{"tab", "next"}, {"enter", "select"}, {"esc", "cancel"}}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, styles.KeyHint.Render(p[0])+styles.Muted.Render(" "+p[1]))
	}
	return strings.Join(parts, "  ")
}

// centerOffset matches lipgloss.Place centering: leftover space split with
// the extra cell on the far side.
func centerOffset(outer, inner int) int {
	return max((outer-inner)/2, 0)
}

// Overlay draws modal centered over background, dimming the background.
func Overlay(background, modal string, width, height int) string {
	bg := strings.Split(background, "\n")
	for len(bg) < height {
		bg = append(bg, "")
	}
	bg = bg[:height]

	fg := strings.Split(modal, "\n")
	fgW := lipgloss.Width(modal)
	x, y := centerOffset(width, fgW), centerOffset(height, len(fg))

	out := make([]string, len(bg))
	for i, line := range bg {
		plain := ansi.Strip(line)
		if pad := width - ansi.StringWidth(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		row := i - y
		if row < 0 || row >= len(fg) {
			out[i] = styles.Subtle.Render(plain)
			continue
		}
		left := ansi.Truncate(plain, x, "")
		right := ansi.TruncateLeft(plain, x+fgW, "")
		mid := fg[row]
		if w := lipgloss.Width(mid); w < fgW {
			mid += strings.Repeat(" ", fgW-w)
		}
		out[i] = styles.Subtle.Render(left) + mid + styles.Subtle.Render(right)
	}
	return strings.Join(out, "\n")
}
