package portfolio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/portfolio"
	"github.com/marcus/folio/internal/styles"
	"github.com/mattn/go-runewidth"
)

const (
	glyphRename   = "✎"
	glyphPicker   = "◐"
	glyphPicking  = "◑" // picker open for this tile
	glyphConfirm  = "✓"
	glyphCancel   = "✗"
	glyphPresence = "●"
	glyphBar      = "▌"
	glyphCursor   = "▸"
	glyphCursorNo = "▹" // selected, but activation would not navigate

	editorControlsWidth = 4 // " ✓ ✗"
)

// hotspot is a clickable control inside a tile, relative to its top-left.
type hotspot struct {
	id   string
	x, y int
	w    int
}

// View renders the plugin and registers its mouse regions.
func (p *Plugin) View(width, height int) string {
	p.width, p.height = width, height
	p.mouseHandler.HitMap.Clear()
	if p.session == nil {
		return ""
	}

	visible := p.session.Visible()
	if p.selected >= len(visible) {
		p.selected = max(len(visible)-1, 0)
	}

	var sb strings.Builder
	sb.WriteString(p.renderSearchLine(width))
	sb.WriteString("\n\n")
	sb.WriteString(p.renderTileArea(visible, width, tileAreaHeight(height)))
	sb.WriteString("\n")
	sb.WriteString(p.renderStatus(len(visible), width))
	out := sb.String()

	if p.session.Picker().IsOpen() && p.picker != nil {
		out = modal.Overlay(out, p.picker.Render(width, height, p.pickerMouse), width, height)
	}
	return out
}

type toggleSegment struct {
	mode portfolio.ViewMode
	w    int
}

func (p *Plugin) renderViewToggle() (string, []toggleSegment) {
	var sb strings.Builder
	segments := make([]toggleSegment, 0, len(portfolio.ViewModes))
	for _, mode := range portfolio.ViewModes {
		style := styles.ToggleInactive
		if mode == p.session.ViewMode() {
			style = styles.ToggleActive
		}
		seg := style.Render(mode.Label())
		sb.WriteString(seg)
		segments = append(segments, toggleSegment{mode: mode, w: lipgloss.Width(seg)})
	}
	return sb.String(), segments
}

func (p *Plugin) renderSearchLine(width int) string {
	toggle, segments := p.renderViewToggle()
	toggleW := lipgloss.Width(toggle)

	searchW := max(min(36, width-toggleW-2), 12)
	p.searchInput.Width = max(searchW-lipgloss.Width(p.searchInput.Prompt)-1, 1)
	search := padRight(ansi.Truncate(p.searchInput.View(), searchW, ""), searchW)
	p.mouseHandler.HitMap.AddRect(regionSearch, 0, 0, searchW, 1, nil)

	gap := max(width-searchW-toggleW, 1)
	x := searchW + gap
	for _, seg := range segments {
		p.mouseHandler.HitMap.AddRect(regionViewToggle, x, 0, seg.w, 1, seg.mode)
		x += seg.w
	}
	return search + strings.Repeat(" ", gap) + toggle
}

func (p *Plugin) renderTileArea(visible []portfolio.Project, width, areaH int) string {
	p.mouseHandler.HitMap.AddRect(regionTiles, 0, headerLines, width, areaH, nil)

	lines := make([]string, areaH)
	if len(visible) == 0 {
		text := "No projects found"
		if q := p.session.Query(); q != "" {
			text = fmt.Sprintf("No projects match %q", q)
		}
		lines[min(1, areaH-1)] = center(styles.Muted.Render(text), width)
		return strings.Join(lines, "\n")
	}

	layout := layoutTiles(p.session.ViewMode(), len(visible), width)
	p.scroll = max(0, min(p.scroll, layout.height-areaH))

	canvas := make([]string, layout.height)
	cursorX := make([]int, layout.height)
	for i, proj := range visible {
		b := layout.boxes[i]
		tile := p.session.Tile(proj)
		rendered, spots := p.renderTile(tile, i == p.selected, b.w)

		tileLines := strings.Split(rendered, "\n")
		for r := 0; r < b.h; r++ {
			y := b.y + r
			var line string
			if r < len(tileLines) {
				line = tileLines[r]
			}
			canvas[y] += strings.Repeat(" ", max(b.x-cursorX[y], 0)) + padRight(line, b.w)
			cursorX[y] = b.x + b.w
		}

		p.addTileRect(regionTile, b.x, b.y, b.w, b.h, proj.ID, areaH)
		for _, s := range spots {
			p.addTileRect(s.id, b.x+s.x, b.y+s.y, s.w, 1, proj.ID, areaH)
		}
	}

	copy(lines, canvas[p.scroll:])
	return strings.Join(lines, "\n")
}

// addTileRect registers a region given in tile-area coordinates, clipped to
// the scrolled viewport and the view width.
func (p *Plugin) addTileRect(id string, x, y, w, h int, data any, areaH int) {
	top := max(y, p.scroll)
	bottom := min(y+h, p.scroll+areaH)
	w = min(x+w, p.width) - x
	if bottom <= top || w <= 0 {
		return
	}
	p.mouseHandler.HitMap.AddRect(id, x, headerLines+top-p.scroll, w, bottom-top, data)
}

func (p *Plugin) renderTile(t portfolio.Tile, selected bool, width int) (string, []hotspot) {
	switch t.Shape {
	case portfolio.ShapeRow:
		return p.renderRow(t, selected, width)
	case portfolio.ShapeBubble:
		return p.renderBubble(t, selected)
	}
	return p.renderCard(t, selected)
}

func (p *Plugin) renderStatus(shown, width int) string {
	active, total := p.session.Counts()
	text := fmt.Sprintf("%d of %d projects currently active", active, total)
	if p.session.Query() != "" {
		text += fmt.Sprintf(" · %d shown", shown)
	}
	return center(styles.Muted.Render(text), width)
}

func tileGradient(t portfolio.Tile) styles.Gradient {
	var g styles.Gradient
	if t.Project.Background.Kind == portfolio.BackgroundImage {
		g = styles.ImageGradient(t.Project.Background.Value)
	} else {
		g = styles.TileGradient(t.Project.Background.Value)
	}
	if t.Muted {
		g = g.Dim(1)
	}
	return g
}

func labelStyle(t portfolio.Tile, selected bool) lipgloss.Style {
	s := styles.Title
	if t.Muted {
		s = styles.Muted
	}
	if selected {
		s = s.Underline(true)
	}
	return s
}

func truncateLabel(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// renderControls returns the ✎ ◐ pair and the offset of ◐ within it.
func renderControls(t portfolio.Tile) (string, int) {
	style := styles.Subtle
	if !t.Muted {
		style = styles.KeyHint
	}
	picker := style.Render(glyphPicker)
	if t.PickerOpen {
		picker = styles.ModalTitle.Render(glyphPicking)
	}
	sep := " "
	return style.Render(glyphRename) + sep + picker, lipgloss.Width(glyphRename + sep)
}

// selectionMarker is the cursor glyph for a selected tile, hollow when
// activating it would do nothing.
func selectionMarker(t portfolio.Tile, selected bool) string {
	switch {
	case !selected:
		return " "
	case t.Interactive:
		return styles.Title.Render(glyphCursor)
	}
	return styles.Muted.Render(glyphCursorNo)
}

// renderEditor draws the rename field followed by ✓ and ✗ and returns the
// offsets of the two controls.
func (p *Plugin) renderEditor(width int) (string, int, int) {
	limit := max(width-editorControlsWidth, 1)
	p.renameInput.Width = max(limit-1, 1) // the cursor takes a cell past the text
	input := p.renameInput.View()
	if lipgloss.Width(input) > limit {
		input = ansi.Truncate(input, limit, "")
	}
	inputW := lipgloss.Width(input)
	confirmX := inputW + 1
	cancelX := confirmX + 2
	return input + " " + styles.StatusCompleted.Render(glyphConfirm) + " " + styles.StatusBlocked.Render(glyphCancel), confirmX, cancelX
}

func (p *Plugin) renderCard(t portfolio.Tile, selected bool) (string, []hotspot) {
	const innerW = cardWidth - 4
	const originX, originY = 2, 1 // border plus padding

	controls, pickerOffset := renderControls(t)
	controlsW := lipgloss.Width(controls)
	marker := selectionMarker(t, selected)
	top := marker + strings.Repeat(" ", innerW-1-controlsW) + controls
	controlsX := originX + innerW - controlsW
	spots := []hotspot{
		{id: regionRename, x: controlsX, y: originY, w: 1},
		{id: regionPicker, x: controlsX + pickerOffset, y: originY, w: 1},
	}

	var label string
	if t.Editing {
		editor, confirmX, cancelX := p.renderEditor(innerW)
		left := centerIn(innerW, lipgloss.Width(editor))
		label = strings.Repeat(" ", left) + editor
		spots = append(spots,
			hotspot{id: regionRenameConfirm, x: originX + left + confirmX, y: originY + 2, w: 1},
			hotspot{id: regionRenameCancel, x: originX + left + cancelX, y: originY + 2, w: 1})
	} else {
		label = center(labelStyle(t, selected).Render(truncateLabel(t.Label(), innerW)), innerW)
	}

	var presence string
	if t.ShowPresence {
		presence = styles.StatusCompleted.Render(glyphPresence)
	}

	content := strings.Join([]string{top, "", label, presence}, "\n")
	return styles.RenderGradientBorder(content, cardWidth, cardHeight, tileGradient(t), 1), spots
}

func (p *Plugin) renderRow(t portfolio.Tile, selected bool, width int) (string, []hotspot) {
	const prefixW = 3 // bar, marker, space

	g := tileGradient(t)
	bar := lipgloss.NewStyle().Foreground(g.Start().Color()).Render(glyphBar)
	marker := selectionMarker(t, selected)

	controls, pickerOffset := renderControls(t)
	right := rowTrailer(t, controls, true)
	if width-prefixW-lipgloss.Width(right) < 4 {
		right = rowTrailer(t, controls, false)
	}
	rightW := lipgloss.Width(right)

	nameW := max(width-prefixW-rightW, 4)
	controlsX := prefixW + nameW + rightW - 1 - lipgloss.Width(controls)
	spots := []hotspot{
		{id: regionRename, x: controlsX, y: 0, w: 1},
		{id: regionPicker, x: controlsX + pickerOffset, y: 0, w: 1},
	}

	var middle string
	if t.Editing {
		editor, confirmX, cancelX := p.renderEditor(nameW)
		middle = padRight(editor, nameW)
		spots = append(spots,
			hotspot{id: regionRenameConfirm, x: prefixW + confirmX, y: 0, w: 1},
			hotspot{id: regionRenameCancel, x: prefixW + cancelX, y: 0, w: 1})
	} else {
		middle = padRight(labelStyle(t, selected).Render(truncateLabel(t.Label(), nameW)), nameW)
	}

	return bar + marker + " " + middle + right, spots
}

// rowTrailer is the right-hand part of a list row: badge, presence dot and
// controls. The badge is left out on narrow rows.
func rowTrailer(t portfolio.Tile, controls string, withBadge bool) string {
	var b strings.Builder
	if withBadge && t.ShowBadge {
		b.WriteString(styles.Badge.Render("Active"))
		b.WriteString(" ")
	}
	if t.ShowPresence {
		b.WriteString(styles.StatusCompleted.Render(glyphPresence))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")
	b.WriteString(controls)
	b.WriteString(" ")
	return b.String()
}

func (p *Plugin) renderBubble(t portfolio.Tile, selected bool) (string, []hotspot) {
	const innerW = bubbleWidth - 2
	const originX, originY = 1, 1

	g := tileGradient(t)
	border := lipgloss.RoundedBorder()
	switch {
	case t.PickerOpen:
		border = lipgloss.DoubleBorder()
	case selected && t.Interactive:
		border = lipgloss.ThickBorder()
	case selected:
		border = lipgloss.NormalBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderTopForeground(g.Start().Color()).
		BorderLeftForeground(g.Start().Color()).
		BorderRightForeground(g.End().Color()).
		BorderBottomForeground(g.End().Color()).
		Width(innerW).
		Height(bubbleHeight - 2)

	controls, pickerOffset := renderControls(t)
	controlsLeft := centerIn(innerW, lipgloss.Width(controls))
	spots := []hotspot{
		{id: regionRename, x: originX + controlsLeft, y: originY, w: 1},
		{id: regionPicker, x: originX + controlsLeft + pickerOffset, y: originY, w: 1},
	}

	var label string
	if t.Editing {
		editor, confirmX, cancelX := p.renderEditor(innerW)
		left := centerIn(innerW, lipgloss.Width(editor))
		label = padRight(strings.Repeat(" ", left)+editor, innerW)
		spots = append(spots,
			hotspot{id: regionRenameConfirm, x: originX + left + confirmX, y: originY + 2, w: 1},
			hotspot{id: regionRenameCancel, x: originX + left + cancelX, y: originY + 2, w: 1})
	} else {
		label = center(labelStyle(t, selected).Render(truncateLabel(t.Label(), innerW-2)), innerW)
	}

	var presence string
	if t.ShowPresence {
		presence = center(styles.StatusCompleted.Render(glyphPresence), innerW)
	}

	content := strings.Join([]string{center(controls, innerW), "", label, "", presence}, "\n")
	return style.Render(content), spots
}
