// Package mouse maps terminal mouse events onto named screen regions.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickThreshold is the longest gap between two clicks on the same
// region that still counts as a double click.
const DoubleClickThreshold = 400 * time.Millisecond

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x,y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit target. Data carries caller payload (an index, an ID).
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered during the last render.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Clear drops every region. Call at the start of each render.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// AddRect registers a region. Regions added later sit on top.
func (h *HitMap) AddRect(id string, x, y, w, hgt int, data any) {
	if w <= 0 || hgt <= 0 {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: hgt}, Data: data})
}

// Test returns the topmost region containing (x,y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Regions returns the registered regions, bottom to top.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// MouseAction is a resolved mouse event.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler resolves tea.MouseMsg values against a HitMap.
type Handler struct {
	HitMap *HitMap

	now         func() time.Time
	lastClickID string
	lastClickAt time.Time
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// Clear drops the registered regions and any pending double click.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.lastClickID = ""
}

// HandleMouse converts msg into a MouseAction.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	region := h.HitMap.Test(msg.X, msg.Y)
	action := MouseAction{Region: region, X: msg.X, Y: msg.Y}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		action.Type = ActionScrollUp
	case msg.Button == tea.MouseButtonWheelDown:
		action.Type = ActionScrollDown
	case msg.Action == tea.MouseActionMotion:
		action.Type = ActionHover
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		action.Type = h.click(region)
	}
	return action
}

func (h *Handler) click(region *Region) ActionType {
	now := h.now()
	id := ""
	if region != nil {
		id = region.ID
	}
	if id != "" && id == h.lastClickID && now.Sub(h.lastClickAt) <= DoubleClickThreshold {
		h.lastClickID = ""
		return ActionDoubleClick
	}
	h.lastClickID = id
	h.lastClickAt = now
	return ActionClick
}
