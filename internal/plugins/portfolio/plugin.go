// Package portfolio is the terminal view of the project portfolio: a
// searchable set of tiles in grid, list or bubble layout, with inline rename
// and a background picker.
package portfolio

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/mouse"
	"github.com/marcus/folio/internal/plugin"
	"github.com/marcus/folio/internal/portfolio"
)

const (
	pluginID   = "portfolio"
	pluginName = "portfolio"
	pluginIcon = "◆"

	searchPlaceholder = "Search projects..."
)

// Focus contexts reported to the footer.
const (
	contextTiles  = "portfolio"
	contextSearch = "portfolio-search"
	contextRename = "portfolio-rename"
	contextPicker = "portfolio-picker"
)

// Plugin renders and drives one portfolio session.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	width  int
	height int

	store   *portfolio.Store
	session *portfolio.Session

	selected int // index into session.Visible()
	scroll   int // first tile-area line on screen

	searching   bool
	searchInput textinput.Model
	renameInput textinput.Model

	mouseHandler *mouse.Handler
	picker       *modal.Modal
	pickerMouse  *mouse.Handler

	lastNavigation *portfolio.Navigation
	writeClipboard func(string) error
}

// New creates the portfolio plugin.
func New() *Plugin {
	search := textinput.New()
	search.Placeholder = searchPlaceholder
	search.Prompt = "/ "
	search.CharLimit = 80

	rename := textinput.New()
	rename.Prompt = ""
	rename.CharLimit = 60

	return &Plugin{
		searchInput:    search,
		renameInput:    rename,
		mouseHandler:   mouse.NewHandler(),
		pickerMouse:    mouse.NewHandler(),
		writeClipboard: clipboard.WriteAll,
	}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Icon returns the plugin icon character.
func (p *Plugin) Icon() string { return pluginIcon }

// Init seeds the session from the configured projects and catalog.
func (p *Plugin) Init(ctx *plugin.Context) error {
	if ctx == nil {
		return fmt.Errorf("portfolio: nil plugin context")
	}
	if ctx.Config == nil {
		ctx.Config = config.Default()
	}
	if ctx.Logger == nil {
		ctx.Logger = slog.Default()
	}
	p.ctx = ctx

	p.store = portfolio.NewStore(ctx.Config.Projects())
	p.session = portfolio.NewSession(p.store, ctx.Config.Catalog(), ctx.Config.ViewMode())
	p.selected = 0
	p.scroll = 0
	p.searching = false
	p.searchInput.SetValue("")
	p.picker = nil
	p.lastNavigation = nil

	active, total := p.session.Counts()
	ctx.Logger.Debug("portfolio loaded",
		"projects", total,
		"active", active,
		"view", p.session.ViewMode().String())
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd { return nil }

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

// Session exposes the underlying view state.
func (p *Plugin) Session() *portfolio.Session { return p.session }

// Update handles messages.
func (p *Plugin) Update(msg tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case plugin.PluginFocusedMsg:
		return p, nil

	case tea.KeyMsg:
		return p, p.handleKey(msg)

	case tea.MouseMsg:
		return p, p.handleMouse(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	switch {
	case p.session.Edit().Editing():
		p.renameInput, cmd = p.renameInput.Update(msg)
	case p.searching:
		p.searchInput, cmd = p.searchInput.Update(msg)
	}
	return p, cmd
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// Commands returns the key bindings for the footer and help overlay.
func (p *Plugin) Commands() []plugin.Command {
	return []plugin.Command{
		{ID: "open", Name: "Open", Key: "enter", Description: "Open the selected active project", Context: contextTiles, Priority: 1, Category: plugin.CategoryActions},
		{ID: "rename", Name: "Rename", Key: "e", Description: "Rename the selected project", Context: contextTiles, Priority: 2, Category: plugin.CategoryActions},
		{ID: "background", Name: "Background", Key: "c", Description: "Change the selected project's background", Context: contextTiles, Priority: 3, Category: plugin.CategoryActions},
		{ID: "search", Name: "Search", Key: "/", Description: "Filter projects by name", Context: contextTiles, Priority: 4, Category: plugin.CategorySearch},
		{ID: "cycle-view", Name: "View", Key: "v", Description: "Cycle grid, list and bubble layouts", Context: contextTiles, Priority: 5, Category: plugin.CategoryView},
		{ID: "set-view", Name: "Layout", Key: "1/2/3", Description: "Grid, list or bubble layout", Context: contextTiles, Priority: 6, Category: plugin.CategoryView},
		{ID: "copy", Name: "Copy", Key: "y", Description: "Copy the selected background token", Context: contextTiles, Priority: 7, Category: plugin.CategoryActions},
		{ID: "move", Name: "Move", Key: "←↓↑→", Description: "Move the selection (hjkl works too)", Context: contextTiles, Priority: 8, Category: plugin.CategoryNavigation},

		{ID: "search-done", Name: "Done", Key: "enter", Description: "Keep the filter and return to the tiles", Context: contextSearch, Priority: 1, Category: plugin.CategorySearch},
		{ID: "search-clear", Name: "Clear", Key: "esc", Description: "Clear the filter", Context: contextSearch, Priority: 2, Category: plugin.CategorySearch},

		{ID: "rename-save", Name: "Save", Key: "enter", Description: "Save the new name", Context: contextRename, Priority: 1, Category: plugin.CategoryActions},
		{ID: "rename-cancel", Name: "Cancel", Key: "esc", Description: "Discard the new name", Context: contextRename, Priority: 2, Category: plugin.CategoryActions},

		{ID: "picker-select", Name: "Apply", Key: "enter", Description: "Apply the focused background", Context: contextPicker, Priority: 1, Category: plugin.CategoryActions},
		{ID: "picker-next", Name: "Next", Key: "tab", Description: "Focus the next swatch", Context: contextPicker, Priority: 2, Category: plugin.CategoryNavigation},
		{ID: "picker-close", Name: "Close", Key: "esc", Description: "Close the picker", Context: contextPicker, Priority: 3, Category: plugin.CategoryActions},
	}
}

// FocusContext returns the current keyboard context.
func (p *Plugin) FocusContext() string {
	switch {
	case p.session != nil && p.session.Picker().IsOpen():
		return contextPicker
	case p.session != nil && p.session.Edit().Editing():
		return contextRename
	case p.searching:
		return contextSearch
	}
	return contextTiles
}

// ConsumesTextInput reports whether a text field has focus.
func (p *Plugin) ConsumesTextInput() bool {
	if p.session != nil && p.session.Picker().IsOpen() {
		return false
	}
	return p.searching || (p.session != nil && p.session.Edit().Editing())
}

// Diagnostics returns plugin health info.
func (p *Plugin) Diagnostics() []plugin.Diagnostic {
	if p.session == nil {
		return []plugin.Diagnostic{{ID: pluginID, Status: "error", Detail: "not initialized"}}
	}
	active, total := p.session.Counts()
	return []plugin.Diagnostic{
		{ID: pluginID, Status: "ok", Detail: fmt.Sprintf("%d projects, %d active, %s view", total, active, p.session.ViewMode())},
	}
}

func (p *Plugin) logger() *slog.Logger {
	if p.ctx == nil || p.ctx.Logger == nil {
		return slog.Default()
	}
	return p.ctx.Logger
}
