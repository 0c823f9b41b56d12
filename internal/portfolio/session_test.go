package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts UpdateProject calls on top of a real Store.
type recordingStore struct {
	*Store
	updates []recordedUpdate
}

type recordedUpdate struct {
	id    int
	patch Patch
}

func (r *recordingStore) UpdateProject(id int, patch Patch) {
	r.updates = append(r.updates, recordedUpdate{id: id, patch: patch})
	r.Store.UpdateProject(id, patch)
}

func sampleProjects() []Project {
	return []Project{
		{ID: 1, Name: "Project Alpha", Active: true, Background: Gradient("from-blue-500 to-purple-600")},
		{ID: 2, Name: "Beta Dashboard", Background: Gradient("from-green-500 to-teal-600")},
		{ID: 3, Name: "Gamma Analytics", Background: Gradient("from-orange-500 to-red-600")},
		{ID: 4, Name: "Delta Commerce", Background: Gradient("from-pink-500 to-rose-600")},
		{ID: 5, Name: "Epsilon Tools", Background: Gradient("from-indigo-500 to-blue-600")},
	}
}

func sampleCatalog() Catalog {
	return Catalog{
		Gradients: []string{
			"from-blue-500 to-purple-600",
			"from-green-500 to-teal-600",
			"from-orange-500 to-red-600",
			"from-pink-500 to-rose-600",
			"from-indigo-500 to-blue-600",
		},
		Images: []string{
			"https://images.example.com/a.jpg",
			"https://images.example.com/b.jpg",
		},
	}
}

func newTestSession() (*Session, *recordingStore) {
	rs := &recordingStore{Store: NewStore(sampleProjects())}
	return NewSession(rs, sampleCatalog(), ViewGrid), rs
}

func TestRenameConfirm_UpdatesOnce(t *testing.T) {
	s, rs := newTestSession()

	require.True(t, s.StartEdit(1))
	assert.Equal(t, "Project Alpha", s.Edit().Draft())

	s.TypeDraft("X")
	id, name, ok := s.ConfirmEdit()
	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, "X", name)

	require.Len(t, rs.updates, 1)
	assert.Equal(t, 1, rs.updates[0].id)
	require.NotNil(t, rs.updates[0].patch.Name)
	assert.Equal(t, "X", *rs.updates[0].patch.Name)
	assert.Nil(t, rs.updates[0].patch.Background)

	p, _ := rs.Get(1)
	assert.Equal(t, "X", p.Name)
	assert.False(t, s.Edit().Editing())
}

func TestRenameCancel_LeavesStoreUnchanged(t *testing.T) {
	s, rs := newTestSession()
	before := rs.Projects()

	s.StartEdit(1)
	s.TypeDraft("Something else")
	assert.True(t, s.CancelEdit())

	assert.Empty(t, rs.updates)
	assert.Equal(t, before, rs.Projects())
	assert.False(t, s.Edit().Editing())
}

func TestRenameConfirm_EmptyDraftCommitted(t *testing.T) {
	s, rs := newTestSession()

	s.StartEdit(2)
	s.TypeDraft("")
	_, _, ok := s.ConfirmEdit()
	require.True(t, ok)

	p, _ := rs.Get(2)
	assert.Equal(t, "", p.Name)
}

func TestStartEdit_ReplacesCurrentSession(t *testing.T) {
	s, rs := newTestSession()

	s.StartEdit(1)
	s.TypeDraft("draft for one")
	s.StartEdit(3)

	id, ok := s.Edit().Target()
	require.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, "Gamma Analytics", s.Edit().Draft())
	assert.Empty(t, rs.updates, "replacing a session must not commit it")

	p, _ := rs.Get(1)
	assert.Equal(t, "Project Alpha", p.Name)
}

func TestStartEdit_UnknownID(t *testing.T) {
	s, _ := newTestSession()
	assert.False(t, s.StartEdit(42))
	assert.False(t, s.Edit().Editing())
}

func TestConfirmEdit_WhileIdle(t *testing.T) {
	s, rs := newTestSession()
	_, _, ok := s.ConfirmEdit()
	assert.False(t, ok)
	assert.False(t, s.CancelEdit())
	assert.Empty(t, rs.updates)
}

func TestPickerSelectGradient(t *testing.T) {
	s, rs := newTestSession()
	before := rs.Projects()

	require.True(t, s.OpenPicker(2))
	id, ok := s.SelectOption(BackgroundGradient, 3)
	require.True(t, ok)
	assert.Equal(t, 2, id)

	after := rs.Projects()
	for i := range after {
		if after[i].ID == 2 {
			assert.Equal(t, BackgroundGradient, after[i].Background.Kind)
			assert.Equal(t, sampleCatalog().Gradients[3], after[i].Background.Value)
			continue
		}
		assert.Equal(t, before[i], after[i], "project %d should be untouched", after[i].ID)
	}
	assert.False(t, s.Picker().IsOpen())
}

func TestPickerSelectImage(t *testing.T) {
	s, rs := newTestSession()

	s.OpenPicker(4)
	_, ok := s.SelectOption(BackgroundImage, 1)
	require.True(t, ok)

	p, _ := rs.Get(4)
	assert.Equal(t, Image("https://images.example.com/b.jpg"), p.Background)
}

func TestPickerDismiss_NoMutation(t *testing.T) {
	s, rs := newTestSession()

	s.OpenPicker(2)
	assert.True(t, s.DismissPicker())
	assert.False(t, s.Picker().IsOpen())
	assert.Empty(t, rs.updates)
	assert.False(t, s.DismissPicker(), "second dismiss is a no-op")
}

func TestPickerOpen_ReplacesTarget(t *testing.T) {
	s, _ := newTestSession()

	s.OpenPicker(2)
	s.OpenPicker(5)
	id, ok := s.Picker().Target()
	require.True(t, ok)
	assert.Equal(t, 5, id)
}

func TestSelect_WhileClosed(t *testing.T) {
	s, rs := newTestSession()
	_, ok := s.SelectBackground(Gradient("from-red-500 to-yellow-600"))
	assert.False(t, ok)
	assert.Empty(t, rs.updates)
}

func TestSelectOption_OutOfRange(t *testing.T) {
	s, rs := newTestSession()
	s.OpenPicker(1)

	_, ok := s.SelectOption(BackgroundGradient, 99)
	assert.False(t, ok)
	assert.True(t, s.Picker().IsOpen(), "invalid option keeps the picker open")
	assert.Empty(t, rs.updates)
}

func TestEditAndPickerIndependent(t *testing.T) {
	s, _ := newTestSession()

	s.StartEdit(1)
	s.OpenPicker(2)

	editID, editing := s.Edit().Target()
	pickID, open := s.Picker().Target()
	assert.True(t, editing)
	assert.True(t, open)
	assert.Equal(t, 1, editID)
	assert.Equal(t, 2, pickID)
}

func TestSetViewMode_DoesNotTouchState(t *testing.T) {
	s, rs := newTestSession()
	s.StartEdit(1)
	s.TypeDraft("pending")
	s.OpenPicker(3)

	projects := rs.Projects()
	edit := s.Edit()
	picker := s.Picker()

	for _, m := range []ViewMode{ViewList, ViewBubble, ViewGrid, ViewBubble} {
		s.SetViewMode(m)
		assert.Equal(t, m, s.ViewMode())
		assert.Equal(t, projects, rs.Projects())
		assert.Equal(t, edit, s.Edit())
		assert.Equal(t, picker, s.Picker())
	}
	assert.Empty(t, rs.updates)
}

func TestActivate_InactiveProjectIsInert(t *testing.T) {
	s, rs := newTestSession()
	before := rs.Projects()

	nav, ok := s.Activate(3)
	assert.False(t, ok)
	assert.Zero(t, nav)
	assert.Equal(t, before, rs.Projects())
	assert.False(t, s.Edit().Editing())
	assert.False(t, s.Picker().IsOpen())
	assert.Equal(t, ViewGrid, s.ViewMode())
}

func TestActivate_ActiveProjectNavigates(t *testing.T) {
	s, _ := newTestSession()

	nav, ok := s.Activate(1)
	require.True(t, ok)
	assert.Equal(t, Navigation{ProjectID: 1, Name: "Project Alpha"}, nav)
}

func TestActivate_BlockedWhileEditing(t *testing.T) {
	s, _ := newTestSession()
	s.StartEdit(2)

	_, ok := s.Activate(1)
	assert.False(t, ok)
	assert.True(t, s.Edit().Editing(), "activation does not end the rename")
}

func TestActivate_WithPickerOpenActsAsOutsideClick(t *testing.T) {
	s, rs := newTestSession()
	s.OpenPicker(2)

	_, ok := s.Activate(1)
	assert.False(t, ok)
	assert.False(t, s.Picker().IsOpen())
	assert.Empty(t, rs.updates)
}

func TestActivate_AgreesWithTile(t *testing.T) {
	setups := map[string]func(*Session){
		"idle":           func(*Session) {},
		"other renaming": func(s *Session) { s.StartEdit(2) },
		"self renaming":  func(s *Session) { s.StartEdit(1) },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestSession()
			setup(s)
			for _, p := range s.Projects() {
				interactive := s.Tile(p).Interactive
				_, navigated := s.Activate(p.ID)
				assert.Equal(t, interactive, navigated, "project %d", p.ID)
			}
		})
	}

	s, _ := newTestSession()
	s.OpenPicker(2)
	p, _ := s.store.Get(1)
	assert.False(t, s.Tile(p).Interactive, "no tile navigates while the picker is open")
}

func TestActivate_UnknownID(t *testing.T) {
	s, _ := newTestSession()
	_, ok := s.Activate(99)
	assert.False(t, ok)
}

func TestVisible_UsesQuery(t *testing.T) {
	s, _ := newTestSession()
	s.SetQuery("TA")

	names := make([]string, 0)
	for _, p := range s.Visible() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Beta Dashboard", "Delta Commerce"}, names)
	assert.Equal(t, "TA", s.Query())
}

func TestCounts(t *testing.T) {
	s, _ := newTestSession()
	active, total := s.Counts()
	assert.Equal(t, 1, active)
	assert.Equal(t, 5, total)
}
