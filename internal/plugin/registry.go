package plugin

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Registry holds the plugins that initialized successfully and records the
// ones that did not.
type Registry struct {
	ctx         *Context
	plugins     []Plugin
	unavailable map[string]string
}

// NewRegistry creates a registry that initializes plugins with ctx.
func NewRegistry(ctx *Context) *Registry {
	if ctx.Logger == nil {
		ctx.Logger = slog.Default()
	}
	return &Registry{ctx: ctx, unavailable: make(map[string]string)}
}

// Register initializes p. A failing Init keeps the plugin out of the
// registry; the failure is logged and returned.
func (r *Registry) Register(p Plugin) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("plugin %s panicked during init: %v", p.ID(), rec)
		}
		if err != nil {
			r.unavailable[p.ID()] = err.Error()
			r.ctx.Logger.Warn("plugin unavailable", "plugin", p.ID(), "err", err)
		}
	}()

	if err := p.Init(r.ctx); err != nil {
		return fmt.Errorf("init plugin %s: %w", p.ID(), err)
	}
	r.plugins = append(r.plugins, p)
	r.ctx.Logger.Debug("plugin registered", "plugin", p.ID())
	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// Unavailable maps plugin IDs to the reason their Init failed.
func (r *Registry) Unavailable() map[string]string {
	return r.unavailable
}

// Start starts every registered plugin and batches their commands.
func (r *Registry) Start() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.plugins))
	for _, p := range r.plugins {
		cmds = append(cmds, p.Start())
	}
	return tea.Batch(cmds...)
}

// Stop stops every registered plugin.
func (r *Registry) Stop() {
	for _, p := range r.plugins {
		p.Stop()
	}
}

// Context returns the shared plugin context.
func (r *Registry) Context() *Context {
	return r.ctx
}
