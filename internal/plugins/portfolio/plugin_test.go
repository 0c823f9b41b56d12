package portfolio

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/msg"
	"github.com/marcus/folio/internal/plugin"
	"github.com/marcus/folio/internal/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlugin(t *testing.T) *Plugin {
	t.Helper()
	p := New()
	p.writeClipboard = func(string) error { return nil }
	require.NoError(t, p.Init(&plugin.Context{
		Config: config.Default(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}))
	p.View(100, 30)
	return p
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(p *Plugin, s string) {
	for _, r := range s {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func toastOf(t *testing.T, cmd tea.Cmd) msg.ToastMsg {
	t.Helper()
	require.NotNil(t, cmd, "expected a toast command")
	toast, ok := cmd().(msg.ToastMsg)
	require.True(t, ok, "command should return msg.ToastMsg")
	return toast
}

func project(t *testing.T, p *Plugin, id int) portfolio.Project {
	t.Helper()
	proj, ok := p.store.Get(id)
	require.True(t, ok)
	return proj
}

func TestInitSeedsFromConfig(t *testing.T) {
	p := newTestPlugin(t)

	assert.Len(t, p.session.Projects(), 5)
	assert.Equal(t, portfolio.ViewGrid, p.session.ViewMode())
	active, total := p.session.Counts()
	assert.Equal(t, 1, active)
	assert.Equal(t, 5, total)
}

func TestInitLogsCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, New().Init(&plugin.Context{Config: config.Default(), Logger: logger}))
	assert.Contains(t, buf.String(), "projects=5 active=1")
}

func TestInitUsesConfiguredView(t *testing.T) {
	cfg := config.Default()
	cfg.UI.DefaultView = "bubble"

	p := New()
	require.NoError(t, p.Init(&plugin.Context{Config: cfg}))
	assert.Equal(t, portfolio.ViewBubble, p.session.ViewMode())
}

func TestInitRejectsNilContext(t *testing.T) {
	assert.Error(t, New().Init(nil))
}

func TestHandleKey_Activate(t *testing.T) {
	p := newTestPlugin(t)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Opening Project Alpha", toastOf(t, cmd).Message)
	require.NotNil(t, p.lastNavigation)
	assert.Equal(t, 1, p.lastNavigation.ProjectID)

	p.lastNavigation = nil
	p.Update(keyMsg("l"))
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "inactive projects do not navigate")
	assert.Nil(t, p.lastNavigation)
}

func TestHandleKey_GridMovement(t *testing.T) {
	p := newTestPlugin(t) // 100 columns: three cards per row

	tests := []struct {
		key  string
		want int
	}{
		{"j", 3},
		{"l", 4},
		{"l", 4}, // end of list
		{"k", 1},
		{"h", 0},
		{"h", 0}, // start of list
	}
	for _, tt := range tests {
		p.Update(keyMsg(tt.key))
		assert.Equal(t, tt.want, p.selected, "after %q", tt.key)
	}

	p.selected = 2
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 4, p.selected, "down from a full row lands on the partial last row")
}

func TestHandleKey_ListMovement(t *testing.T) {
	p := newTestPlugin(t)
	p.Update(keyMsg("2"))

	p.Update(keyMsg("j"))
	p.Update(keyMsg("j"))
	assert.Equal(t, 2, p.selected)
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, p.selected)
	p.Update(keyMsg("G"))
	assert.Equal(t, 4, p.selected)
	p.Update(keyMsg("g"))
	assert.Equal(t, 0, p.selected)
}

func TestHandleKey_ViewModes(t *testing.T) {
	p := newTestPlugin(t)

	tests := []struct {
		key  string
		want portfolio.ViewMode
	}{
		{"2", portfolio.ViewList},
		{"3", portfolio.ViewBubble},
		{"1", portfolio.ViewGrid},
		{"v", portfolio.ViewList},
		{"v", portfolio.ViewBubble},
		{"v", portfolio.ViewGrid},
	}
	for _, tt := range tests {
		p.Update(keyMsg(tt.key))
		assert.Equal(t, tt.want, p.session.ViewMode(), "after %q", tt.key)
	}
}

func TestHandleKey_Search(t *testing.T) {
	p := newTestPlugin(t)

	p.Update(keyMsg("/"))
	assert.True(t, p.searching)
	assert.True(t, p.ConsumesTextInput())
	assert.Equal(t, contextSearch, p.FocusContext())

	typeText(p, "GAM")
	assert.Equal(t, "GAM", p.session.Query())
	visible := p.session.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Gamma Analytics", visible[0].Name)

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.searching)
	assert.Equal(t, "GAM", p.session.Query(), "enter keeps the filter")

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", p.session.Query(), "esc on the tiles clears the filter")
	assert.Len(t, p.session.Visible(), 5)
}

func TestHandleKey_SearchEscClears(t *testing.T) {
	p := newTestPlugin(t)
	p.Update(keyMsg("/"))
	typeText(p, "zzz")
	assert.Empty(t, p.session.Visible())

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.searching)
	assert.Equal(t, "", p.session.Query())
	assert.Equal(t, "", p.searchInput.Value())
}

func TestHandleKey_RenameConfirm(t *testing.T) {
	p := newTestPlugin(t)

	p.Update(keyMsg("e"))
	require.True(t, p.session.Edit().IsEditing(1))
	assert.Equal(t, "Project Alpha", p.renameInput.Value())
	assert.True(t, p.ConsumesTextInput())
	assert.Equal(t, contextRename, p.FocusContext())

	p.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(p, "Zeta")
	assert.Equal(t, "Zeta", p.session.Edit().Draft())
	assert.Equal(t, "Project Alpha", project(t, p, 1).Name, "store untouched while typing")

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Renamed to Zeta", toastOf(t, cmd).Message)
	assert.Equal(t, "Zeta", project(t, p, 1).Name)
	assert.False(t, p.session.Edit().Editing())
	assert.False(t, p.ConsumesTextInput())
}

func TestHandleKey_RenameAcceptsEmptyName(t *testing.T) {
	p := newTestPlugin(t)

	p.Update(keyMsg("e"))
	p.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "", project(t, p, 1).Name)
}

func TestHandleKey_RenameCancel(t *testing.T) {
	p := newTestPlugin(t)

	p.Update(keyMsg("e"))
	typeText(p, " v2")
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, p.session.Edit().Editing())
	assert.Equal(t, "Project Alpha", project(t, p, 1).Name)
}

func TestHandleKey_RenameSwallowsShortcuts(t *testing.T) {
	p := newTestPlugin(t)

	p.Update(keyMsg("e"))
	p.Update(keyMsg("2"))
	p.Update(keyMsg("c"))
	assert.Equal(t, portfolio.ViewGrid, p.session.ViewMode())
	assert.False(t, p.session.Picker().IsOpen())
	assert.Equal(t, "Project Alpha2c", p.session.Edit().Draft())
}

func TestHandleKey_PickerSelect(t *testing.T) {
	p := newTestPlugin(t)

	p.Update(keyMsg("c"))
	require.True(t, p.session.Picker().IsOpenFor(1))
	assert.Equal(t, contextPicker, p.FocusContext())
	assert.False(t, p.ConsumesTextInput())
	assert.Equal(t, "gradient-0", p.picker.FocusedID(), "focus starts on the current background")

	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Background updated for Project Alpha", toastOf(t, cmd).Message)
	assert.Equal(t, portfolio.Gradient(config.DefaultGradients[1]), project(t, p, 1).Background)
	assert.False(t, p.session.Picker().IsOpen())
	assert.Nil(t, p.picker)
}

func TestHandleKey_PickerDismiss(t *testing.T) {
	p := newTestPlugin(t)
	p.Update(keyMsg("l"))
	p.Update(keyMsg("c"))
	require.True(t, p.session.Picker().IsOpenFor(2))

	p.Update(keyMsg("e")) // captured by the picker
	assert.False(t, p.session.Edit().Editing())

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.session.Picker().IsOpen())
	assert.Equal(t, portfolio.Gradient("from-green-500 to-teal-600"), project(t, p, 2).Background)
}

func TestHandleKey_Copy(t *testing.T) {
	p := newTestPlugin(t)
	var copied string
	p.writeClipboard = func(s string) error { copied = s; return nil }

	_, cmd := p.Update(keyMsg("y"))
	assert.Equal(t, "from-blue-500 to-purple-600", copied)
	assert.False(t, toastOf(t, cmd).IsError)

	p.writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	_, cmd = p.Update(keyMsg("y"))
	toast := toastOf(t, cmd)
	assert.True(t, toast.IsError)
	assert.Contains(t, toast.Message, "no clipboard utility")
}

func TestDiagnostics(t *testing.T) {
	p := newTestPlugin(t)
	d := p.Diagnostics()
	require.Len(t, d, 1)
	assert.Equal(t, "ok", d[0].Status)
	assert.Contains(t, d[0].Detail, "5 projects, 1 active")

	assert.Equal(t, "error", New().Diagnostics()[0].Status)
}

func TestCommandsCoverEveryContext(t *testing.T) {
	p := newTestPlugin(t)
	contexts := map[string]bool{}
	for _, c := range p.Commands() {
		contexts[c.Context] = true
	}
	for _, want := range []string{contextTiles, contextSearch, contextRename, contextPicker} {
		assert.True(t, contexts[want], "no commands for %s", want)
	}
}

func TestParseSwatchID(t *testing.T) {
	kind, index, ok := parseSwatchID(swatchID(portfolio.BackgroundImage, 3))
	assert.True(t, ok)
	assert.Equal(t, portfolio.BackgroundImage, kind)
	assert.Equal(t, 3, index)

	for _, bad := range []string{"", "cancel", "video-1", "gradient-x", "gradient--1"} {
		_, _, ok := parseSwatchID(bad)
		assert.False(t, ok, bad)
	}
}

func TestGradientLabel(t *testing.T) {
	assert.Equal(t, "blue/purple", gradientLabel("from-blue-500 to-purple-600"))
	assert.Equal(t, "red/white/blue", gradientLabel("from-red-500 via-white to-blue-500"))
	assert.Equal(t, "#123456", gradientLabel("#123456"))
}
