package portfolio

// EditSession is the rename state machine: Idle or Editing(projectID, draft).
// The zero value is Idle.
type EditSession struct {
	editing   bool
	projectID int
	draft     string
}

// Start begins editing p with its current name as the draft. A session that
// is already running is replaced without being committed.
func (e *EditSession) Start(p Project) {
	e.editing = true
	e.projectID = p.ID
	e.draft = p.Name
}

// Type replaces the draft. Ignored while idle.
func (e *EditSession) Type(text string) {
	if !e.editing {
		return
	}
	e.draft = text
}

// Finish ends the session and returns what was being edited.
// ok is false if the session was idle.
func (e *EditSession) Finish() (projectID int, draft string, ok bool) {
	if !e.editing {
		return 0, "", false
	}
	projectID, draft = e.projectID, e.draft
	*e = EditSession{}
	return projectID, draft, true
}

// Target returns the project being edited.
func (e EditSession) Target() (int, bool) {
	return e.projectID, e.editing
}

// Editing reports whether a rename is in progress.
func (e EditSession) Editing() bool { return e.editing }

// IsEditing reports whether project id is being renamed.
func (e EditSession) IsEditing(id int) bool {
	return e.editing && e.projectID == id
}

// Draft returns the in-progress name; empty while idle.
func (e EditSession) Draft() string { return e.draft }
