package portfolio

// BackgroundPicker is the picker state machine: Closed or Open(projectID).
// The zero value is Closed.
type BackgroundPicker struct {
	open      bool
	projectID int
}

// Open targets project id, replacing any open target.
func (b *BackgroundPicker) Open(id int) {
	b.open = true
	b.projectID = id
}

// Close closes the picker and returns the target it had.
func (b *BackgroundPicker) Close() (int, bool) {
	if !b.open {
		return 0, false
	}
	id := b.projectID
	*b = BackgroundPicker{}
	return id, true
}

// Target returns the project the picker is open for.
func (b BackgroundPicker) Target() (int, bool) {
	return b.projectID, b.open
}

// IsOpen reports whether the picker is open.
func (b BackgroundPicker) IsOpen() bool { return b.open }

// IsOpenFor reports whether the picker is open for project id.
func (b BackgroundPicker) IsOpenFor(id int) bool {
	return b.open && b.projectID == id
}
