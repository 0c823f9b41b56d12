package portfolio

import "fmt"

// ViewMode is the active tile layout.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
	ViewBubble
)

// ViewModes lists the modes in selector order.
var ViewModes = []ViewMode{ViewGrid, ViewList, ViewBubble}

func (m ViewMode) String() string {
	switch m {
	case ViewGrid:
		return "grid"
	case ViewList:
		return "list"
	case ViewBubble:
		return "bubble"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// Label is the selector caption.
func (m ViewMode) Label() string {
	switch m {
	case ViewList:
		return "List"
	case ViewBubble:
		return "Bubble"
	}
	return "Grid"
}

// Next returns the following mode, wrapping around.
func (m ViewMode) Next() ViewMode {
	return ViewModes[(int(m)+1)%len(ViewModes)]
}

// ParseViewMode parses "grid", "list" or "bubble".
func ParseViewMode(s string) (ViewMode, error) {
	for _, m := range ViewModes {
		if m.String() == s {
			return m, nil
		}
	}
	return ViewGrid, fmt.Errorf("unknown view mode %q", s)
}
