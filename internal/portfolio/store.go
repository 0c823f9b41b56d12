package portfolio

// ProjectStore is the ordered project collection a Session mutates.
type ProjectStore interface {
	Projects() []Project
	Get(id int) (Project, bool)
	UpdateProject(id int, patch Patch)
}

// Store is the in-memory ProjectStore. It is seeded once and never grows or
// shrinks; only name and background of existing records change.
type Store struct {
	projects []Project
}

// NewStore creates a store seeded with a copy of projects.
func NewStore(projects []Project) *Store {
	seeded := make([]Project, len(projects))
	copy(seeded, projects)
	return &Store{projects: seeded}
}

// Projects returns a copy of all projects in their original order.
func (s *Store) Projects() []Project {
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Get returns the project with the given id.
func (s *Store) Get(id int) (Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// UpdateProject replaces the project matching id with a merged copy.
// Unknown ids are ignored.
func (s *Store) UpdateProject(id int, patch Patch) {
	for i, p := range s.projects {
		if p.ID == id {
			s.projects[i] = patch.apply(p)
			return
		}
	}
}
