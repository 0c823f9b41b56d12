package plugin

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlugin struct {
	id       string
	initErr  error
	panicMsg string
	started  bool
	stopped  bool
	gotCtx   *Context
}

func (s *stubPlugin) ID() string   { return s.id }
func (s *stubPlugin) Name() string { return s.id }
func (s *stubPlugin) Icon() string { return "S" }
func (s *stubPlugin) Init(ctx *Context) error {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	s.gotCtx = ctx
	return s.initErr
}
func (s *stubPlugin) Start() tea.Cmd                   { s.started = true; return nil }
func (s *stubPlugin) Stop()                            { s.stopped = true }
func (s *stubPlugin) Update(tea.Msg) (Plugin, tea.Cmd) { return s, nil }
func (s *stubPlugin) View(int, int) string             { return s.id }
func (s *stubPlugin) IsFocused() bool                  { return false }
func (s *stubPlugin) SetFocused(bool)                  {}
func (s *stubPlugin) Commands() []Command              { return nil }
func (s *stubPlugin) FocusContext() string             { return s.id }
func (s *stubPlugin) ConsumesTextInput() bool          { return false }

func newTestRegistry() *Registry {
	return NewRegistry(&Context{
		Config: config.Default(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestRegister(t *testing.T) {
	r := newTestRegistry()
	ok := &stubPlugin{id: "ok"}
	broken := &stubPlugin{id: "broken", initErr: errors.New("no data")}

	require.NoError(t, r.Register(ok))
	err := r.Register(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")

	require.Len(t, r.Plugins(), 1)
	assert.Equal(t, "ok", r.Plugins()[0].ID())
	assert.Same(t, r.Context(), ok.gotCtx)
	assert.Contains(t, r.Unavailable()["broken"], "no data")
}

func TestRegisterRecoversPanic(t *testing.T) {
	r := newTestRegistry()
	err := r.Register(&stubPlugin{id: "boom", panicMsg: "nil map"})
	require.Error(t, err)
	assert.Contains(t, r.Unavailable(), "boom")
	assert.Empty(t, r.Plugins())
}

func TestStartStop(t *testing.T) {
	r := newTestRegistry()
	a, b := &stubPlugin{id: "a"}, &stubPlugin{id: "b"}
	require.NoError(t, r.Register(a))
	require.NoError(t, r.Register(b))

	r.Start()
	assert.True(t, a.started)
	assert.True(t, b.started)

	r.Stop()
	assert.True(t, a.stopped)
	assert.True(t, b.stopped)
}

func TestNewRegistryDefaultsLogger(t *testing.T) {
	r := NewRegistry(&Context{})
	assert.NotNil(t, r.Context().Logger)
}
