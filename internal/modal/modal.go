// Package modal renders declarative dialogs and tracks their focus, hover and
// scroll state. Hit regions are registered on every Render, so mouse handling
// always matches what is on screen.
package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/mouse"
)

// ActionCancel is returned when the dialog should close without a choice.
const ActionCancel = "cancel"

// Modal is a dialog built from sections.
type Modal struct {
	title           string
	variant         Variant
	width           int
	sections        []Section
	showHints       bool
	primaryAction   string
	closeOnBackdrop bool

	focusIdx     int
	hoverID      string
	focusIDs     []string // rebuilt by Render, in render order
	scrollOffset int
}

// New creates a Modal with the given title.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:           title,
		variant:         VariantDefault,
		width:           DefaultWidth,
		showHints:       true,
		closeOnBackdrop: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// Render draws the modal for a screenW×screenH screen and registers its hit
// regions on handler.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	return m.buildLayout(screenW, screenH, handler)
}

// HandleKey processes a key. It returns ActionCancel for esc, the focused ID
// (or the primary action) for enter, and whatever the focused section
// reports for anything else.
func (m *Modal) HandleKey(msg tea.KeyMsg) (action string, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionCancel, nil
	case "tab", "right", "down":
		m.cycleFocus(1)
		return "", nil
	case "shift+tab", "left", "up":
		m.cycleFocus(-1)
		return "", nil
	case "enter":
		focusID := m.currentFocusID()
		if focusID == "" {
			return "", nil
		}
		if action, cmd = m.routeToFocusedSection(msg); action != "" {
			return action, cmd
		}
		if m.primaryAction != "" {
			return m.primaryAction, cmd
		}
		return focusID, cmd
	}
	return m.routeToFocusedSection(msg)
}

// HandleMouse processes a mouse event against the regions of the last
// Render. It returns the ID of a clicked focusable, ActionCancel for a
// backdrop click, or "".
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) string {
	action := handler.HandleMouse(msg)
	var id string
	if action.Region != nil {
		id = action.Region.ID
	}

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		switch id {
		case "", RegionBody:
			return ""
		case RegionBackdrop:
			if m.closeOnBackdrop {
				return ActionCancel
			}
			return ""
		}
		if m.SetFocus(id) {
			return id
		}
	case mouse.ActionHover:
		if id == RegionBackdrop || id == RegionBody {
			id = ""
		}
		m.hoverID = id
	case mouse.ActionScrollUp:
		if id == RegionBody {
			m.scrollOffset = max(0, m.scrollOffset-3)
		}
	case mouse.ActionScrollDown:
		if id == RegionBody {
			m.scrollOffset += 3 // clamped on the next Render
		}
	}
	return ""
}

// SetFocus focuses the element with the given ID. It reports false when no
// such element was rendered.
func (m *Modal) SetFocus(id string) bool {
	for i, fid := range m.focusIDs {
		if fid == id {
			m.focusIdx = i
			return true
		}
	}
	return false
}

// FocusedID returns the focused element ID, or "" before the first Render.
func (m *Modal) FocusedID() string {
	return m.currentFocusID()
}

// HoveredID returns the element under the pointer.
func (m *Modal) HoveredID() string {
	return m.hoverID
}

// Reset clears focus, hover and scroll.
func (m *Modal) Reset() {
	m.focusIdx = 0
	m.hoverID = ""
	m.scrollOffset = 0
}

func (m *Modal) currentFocusID() string {
	if len(m.focusIDs) == 0 {
		return ""
	}
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusIDs) {
		return m.focusIDs[0]
	}
	return m.focusIDs[m.focusIdx]
}

func (m *Modal) cycleFocus(delta int) {
	if n := len(m.focusIDs); n > 0 {
		m.focusIdx = (m.focusIdx + delta + n) % n
	}
}

func (m *Modal) routeToFocusedSection(msg tea.KeyMsg) (string, tea.Cmd) {
	focusID := m.currentFocusID()
	if focusID == "" {
		return "", nil
	}
	for _, section := range m.sections {
		if action, cmd := section.Update(msg, focusID); action != "" || cmd != nil {
			return action, cmd
		}
	}
	return "", nil
}
