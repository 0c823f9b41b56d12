package portfolio

// Navigation is the effect of activating an interactive tile.
type Navigation struct {
	ProjectID int
	Name      string
}

// Session is the complete view state of one portfolio screen. All mutation
// goes through its transition methods; it is not safe for concurrent use and
// does not need to be, since a single event loop owns it.
type Session struct {
	store   ProjectStore
	catalog Catalog

	mode   ViewMode
	query  string
	edit   EditSession
	picker BackgroundPicker
}

// NewSession creates a session over store, starting in the given mode.
func NewSession(store ProjectStore, catalog Catalog, mode ViewMode) *Session {
	return &Session{
		store:   store,
		catalog: catalog,
		mode:    mode,
	}
}

// Projects returns every project in store order.
func (s *Session) Projects() []Project { return s.store.Projects() }

// Visible returns the projects matching the current query.
func (s *Session) Visible() []Project {
	return Filter(s.store.Projects(), s.query)
}

// Catalog returns the picker options.
func (s *Session) Catalog() Catalog { return s.catalog }

// Query returns the search text.
func (s *Session) Query() string { return s.query }

// SetQuery replaces the search text.
func (s *Session) SetQuery(q string) { s.query = q }

// ViewMode returns the active layout.
func (s *Session) ViewMode() ViewMode { return s.mode }

// SetViewMode switches layout. Nothing else changes.
func (s *Session) SetViewMode(m ViewMode) { s.mode = m }

// Edit returns the rename state.
func (s *Session) Edit() EditSession { return s.edit }

// Picker returns the background picker state.
func (s *Session) Picker() BackgroundPicker { return s.picker }

// Tile describes how project p renders right now.
func (s *Session) Tile(p Project) Tile {
	return Describe(p, s.mode, s.edit, s.picker)
}

// StartEdit starts renaming project id, silently dropping any rename in
// progress. Unknown ids are ignored.
func (s *Session) StartEdit(id int) bool {
	p, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.edit.Start(p)
	return true
}

// TypeDraft replaces the draft name.
func (s *Session) TypeDraft(text string) { s.edit.Type(text) }

// ConfirmEdit commits the draft verbatim, empty or not, and ends the rename.
func (s *Session) ConfirmEdit() (id int, name string, ok bool) {
	id, name, ok = s.edit.Finish()
	if !ok {
		return 0, "", false
	}
	s.store.UpdateProject(id, RenamePatch(name))
	return id, name, true
}

// CancelEdit ends the rename without touching the store.
func (s *Session) CancelEdit() bool {
	_, _, ok := s.edit.Finish()
	return ok
}

// OpenPicker opens the background picker for project id, replacing any open
// target. Unknown ids are ignored.
func (s *Session) OpenPicker(id int) bool {
	if _, ok := s.store.Get(id); !ok {
		return false
	}
	s.picker.Open(id)
	return true
}

// SelectBackground applies bg to the picker's project and closes the picker.
func (s *Session) SelectBackground(bg Background) (int, bool) {
	id, ok := s.picker.Close()
	if !ok {
		return 0, false
	}
	s.store.UpdateProject(id, BackgroundPatch(bg))
	return id, true
}

// SelectOption applies the catalog entry at index of the given kind.
func (s *Session) SelectOption(kind BackgroundKind, index int) (int, bool) {
	bg, ok := s.catalog.Option(kind, index)
	if !ok {
		return 0, false
	}
	return s.SelectBackground(bg)
}

// DismissPicker closes the picker without changing anything (outside click).
func (s *Session) DismissPicker() bool {
	_, ok := s.picker.Close()
	return ok
}

// Activate is the primary action of a tile. While the picker is open the
// activation counts as an outside click and only closes it. Otherwise it
// navigates only when the tile is interactive.
func (s *Session) Activate(id int) (Navigation, bool) {
	if s.picker.IsOpen() {
		s.DismissPicker()
		return Navigation{}, false
	}
	p, ok := s.store.Get(id)
	if !ok || !s.Tile(p).Interactive {
		return Navigation{}, false
	}
	return Navigation{ProjectID: p.ID, Name: p.Name}, true
}

// Counts returns active and total project counts.
func (s *Session) Counts() (active, total int) {
	for _, p := range s.store.Projects() {
		if p.Active {
			active++
		}
		total++
	}
	return active, total
}
