package portfolio

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/folio/internal/portfolio"
)

const (
	cardWidth    = 26
	cardHeight   = 6
	bubbleWidth  = 18
	bubbleHeight = 7
	tileGapX     = 2
	tileGapY     = 1

	headerLines = 2 // search line and a blank line
	footerLines = 1 // status line
)

// box is a rectangle in tile-area coordinates (line 0 is the first tile row).
type box struct {
	x, y, w, h int
}

type tileLayout struct {
	boxes   []box
	columns int
	height  int // total lines
}

func tileAreaHeight(viewHeight int) int {
	return max(viewHeight-headerLines-footerLines, 1)
}

// layoutTiles places n tiles for mode in an area width cells wide.
func layoutTiles(mode portfolio.ViewMode, n, width int) tileLayout {
	switch mode {
	case portfolio.ViewList:
		l := tileLayout{boxes: make([]box, n), columns: 1, height: n}
		w := max(width, 1)
		for i := range l.boxes {
			l.boxes[i] = box{x: 0, y: i, w: w, h: 1}
		}
		return l

	case portfolio.ViewBubble:
		l := flowLayout(n, width, bubbleWidth, bubbleHeight)
		// Bubbles are centered per row.
		for start := 0; start < n; start += l.columns {
			end := min(start+l.columns, n)
			k := end - start
			rowW := k*bubbleWidth + (k-1)*tileGapX
			offset := max((width-rowW)/2, 0)
			for i := start; i < end; i++ {
				l.boxes[i].x += offset
			}
		}
		return l
	}
	return flowLayout(n, width, cardWidth, cardHeight)
}

func flowLayout(n, width, w, h int) tileLayout {
	columns := max((width+tileGapX)/(w+tileGapX), 1)
	l := tileLayout{boxes: make([]box, n), columns: columns}
	for i := range l.boxes {
		col, row := i%columns, i/columns
		l.boxes[i] = box{x: col * (w + tileGapX), y: row * (h + tileGapY), w: w, h: h}
	}
	if n > 0 {
		rows := (n + columns - 1) / columns
		l.height = rows*(h+tileGapY) - tileGapY
	}
	return l
}

// centerIn returns the left padding that centers a span of width w in outer.
// The odd cell goes to the right.
func centerIn(outer, w int) int {
	return max((outer-w)/2, 0)
}

// center pads s to width, centered.
func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := centerIn(width, w)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// padRight pads s with spaces to width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
