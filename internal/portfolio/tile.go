package portfolio

// Shape is the layout class of a tile.
type Shape int

const (
	ShapeCard Shape = iota
	ShapeRow
	ShapeBubble
)

func (s Shape) String() string {
	switch s {
	case ShapeRow:
		return "row"
	case ShapeBubble:
		return "bubble"
	}
	return "card"
}

// Tile is everything the renderer needs to draw one project.
type Tile struct {
	Project Project
	Shape   Shape

	// Interactive is true when activating the tile navigates: the project is
	// active and neither a rename nor the picker is open.
	Interactive bool
	// Muted tiles are drawn greyed out (inactive projects).
	Muted bool

	// Editing replaces the name label with the rename control.
	Editing bool
	Draft   string

	// ShowPresence draws the small "live" dot.
	ShowPresence bool
	// ShowBadge draws the "Active" badge of list rows.
	ShowBadge bool

	PickerOpen bool
}

// Label is the text drawn for the tile: the draft while editing, the name otherwise.
func (t Tile) Label() string {
	if t.Editing {
		return t.Draft
	}
	return t.Project.Name
}

// Describe maps a project and the session state to a Tile. It has no side effects.
func Describe(p Project, mode ViewMode, edit EditSession, picker BackgroundPicker) Tile {
	editingThis := edit.IsEditing(p.ID)

	t := Tile{
		Project:      p,
		Shape:        shapeFor(mode),
		Interactive:  p.Active && !edit.Editing() && !picker.IsOpen(),
		Muted:        !p.Active,
		Editing:      editingThis,
		ShowPresence: p.Active && !edit.Editing(),
		ShowBadge:    mode == ViewList && p.Active,
		PickerOpen:   picker.IsOpenFor(p.ID),
	}
	if editingThis {
		t.Draft = edit.Draft()
	}
	return t
}

func shapeFor(mode ViewMode) Shape {
	switch mode {
	case ViewList:
		return ShapeRow
	case ViewBubble:
		return ShapeBubble
	}
	return ShapeCard
}
