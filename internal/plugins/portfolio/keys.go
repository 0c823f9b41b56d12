package portfolio

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/msg"
	"github.com/marcus/folio/internal/portfolio"
)

func (p *Plugin) handleKey(key tea.KeyMsg) tea.Cmd {
	switch {
	case p.session.Picker().IsOpen():
		return p.handlePickerKey(key)
	case p.session.Edit().Editing():
		return p.handleRenameKey(key)
	case p.searching:
		return p.handleSearchKey(key)
	}

	switch key.String() {
	case "/":
		p.searching = true
		return p.searchInput.Focus()
	case "esc":
		if p.session.Query() != "" {
			p.setQuery("")
		}
	case "left", "h":
		p.moveSelection(-1, 0)
	case "right", "l":
		p.moveSelection(1, 0)
	case "up", "k":
		p.moveSelection(0, -1)
	case "down", "j":
		p.moveSelection(0, 1)
	case "home", "g":
		p.selected = 0
		p.ensureSelectionVisible()
	case "end", "G":
		p.selected = max(len(p.session.Visible())-1, 0)
		p.ensureSelectionVisible()
	case "enter":
		if proj, ok := p.selectedProject(); ok {
			return p.activate(proj.ID)
		}
	case "e":
		if proj, ok := p.selectedProject(); ok {
			return p.startRename(proj.ID)
		}
	case "c":
		if proj, ok := p.selectedProject(); ok {
			return p.openPicker(proj.ID)
		}
	case "1", "2", "3":
		p.setViewMode(portfolio.ViewModes[key.String()[0]-'1'])
	case "v":
		p.setViewMode(p.session.ViewMode().Next())
	case "y":
		if proj, ok := p.selectedProject(); ok {
			return p.copyBackground(proj)
		}
	}
	return nil
}

func (p *Plugin) handleSearchKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		p.searching = false
		p.searchInput.Blur()
		return nil
	case "esc":
		p.searching = false
		p.searchInput.Blur()
		p.setQuery("")
		return nil
	}

	var cmd tea.Cmd
	p.searchInput, cmd = p.searchInput.Update(key)
	if v := p.searchInput.Value(); v != p.session.Query() {
		p.setQuery(v)
	}
	return cmd
}

func (p *Plugin) handleRenameKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return p.confirmRename()
	case "esc":
		p.cancelRename()
		return nil
	}

	var cmd tea.Cmd
	p.renameInput, cmd = p.renameInput.Update(key)
	p.session.TypeDraft(p.renameInput.Value())
	return cmd
}

func (p *Plugin) handlePickerKey(key tea.KeyMsg) tea.Cmd {
	if p.picker == nil {
		p.session.DismissPicker()
		return nil
	}
	action, cmd := p.picker.HandleKey(key)
	if action == "" {
		return cmd
	}
	return tea.Batch(cmd, p.pickerAction(action))
}

// pickerAction applies a picker result: a swatch ID or modal.ActionCancel.
func (p *Plugin) pickerAction(action string) tea.Cmd {
	if action == modal.ActionCancel {
		p.dismissPicker()
		return nil
	}
	kind, index, ok := parseSwatchID(action)
	if !ok {
		return nil
	}
	id, ok := p.session.SelectOption(kind, index)
	p.picker = nil
	if !ok {
		return nil
	}
	proj, _ := p.store.Get(id)
	p.logger().Debug("background changed", "project", id, "kind", string(proj.Background.Kind), "value", proj.Background.Value)
	return msg.ShowToast("Background updated for "+proj.Name, msg.DefaultToastDuration)
}

func (p *Plugin) setQuery(q string) {
	p.session.SetQuery(q)
	if p.searchInput.Value() != q {
		p.searchInput.SetValue(q)
	}
	p.selected = 0
	p.scroll = 0
}

func (p *Plugin) setViewMode(m portfolio.ViewMode) {
	if p.session.ViewMode() == m {
		return
	}
	p.session.SetViewMode(m)
	p.scroll = 0
	p.ensureSelectionVisible()
	p.logger().Debug("view mode changed", "view", m.String())
}

func (p *Plugin) selectedProject() (portfolio.Project, bool) {
	visible := p.session.Visible()
	if p.selected < 0 || p.selected >= len(visible) {
		return portfolio.Project{}, false
	}
	return visible[p.selected], true
}

func (p *Plugin) selectProject(id int) {
	for i, proj := range p.session.Visible() {
		if proj.ID == id {
			p.selected = i
			return
		}
	}
}

// moveSelection moves by dx tiles and dy rows of the current layout.
func (p *Plugin) moveSelection(dx, dy int) {
	n := len(p.session.Visible())
	if n == 0 {
		return
	}
	columns := layoutTiles(p.session.ViewMode(), n, p.width).columns
	next := p.selected + dx + dy*columns
	if dy > 0 && next >= n && p.selected/columns < (n-1)/columns {
		next = n - 1 // partial last row
	}
	if next < 0 || next >= n {
		return
	}
	p.selected = next
	p.ensureSelectionVisible()
}

func (p *Plugin) activate(id int) tea.Cmd {
	p.selectProject(id)
	nav, ok := p.session.Activate(id)
	if !ok {
		return nil
	}
	p.lastNavigation = &nav
	p.logger().Info("navigating to project", "project", nav.ProjectID, "name", nav.Name)
	return msg.ShowToast("Opening "+nav.Name, msg.DefaultToastDuration)
}

func (p *Plugin) startRename(id int) tea.Cmd {
	if !p.session.StartEdit(id) {
		return nil
	}
	p.selectProject(id)
	p.searching = false
	p.searchInput.Blur()
	p.renameInput.SetValue(p.session.Edit().Draft())
	p.renameInput.CursorEnd()
	p.logger().Debug("rename started", "project", id)
	return p.renameInput.Focus()
}

func (p *Plugin) confirmRename() tea.Cmd {
	id, name, ok := p.session.ConfirmEdit()
	p.renameInput.Blur()
	if !ok {
		return nil
	}
	p.selectProject(id)
	p.clampSelection()
	p.logger().Debug("project renamed", "project", id, "name", name)
	return msg.ShowToast("Renamed to "+name, msg.DefaultToastDuration)
}

func (p *Plugin) cancelRename() {
	if p.session.CancelEdit() {
		p.logger().Debug("rename cancelled")
	}
	p.renameInput.Blur()
}

func (p *Plugin) openPicker(id int) tea.Cmd {
	if !p.session.OpenPicker(id) {
		return nil
	}
	proj, _ := p.store.Get(id)
	p.selectProject(id)
	p.picker = p.buildPicker(proj)
	p.picker.Render(p.width, p.height, p.pickerMouse)
	if current := currentSwatchID(proj, p.session.Catalog()); current != "" {
		p.picker.SetFocus(current)
	}
	p.logger().Debug("background picker opened", "project", id)
	return nil
}

func (p *Plugin) dismissPicker() {
	if p.session.DismissPicker() {
		p.logger().Debug("background picker dismissed")
	}
	p.picker = nil
}

func (p *Plugin) copyBackground(proj portfolio.Project) tea.Cmd {
	if err := p.writeClipboard(proj.Background.Value); err != nil {
		p.logger().Warn("clipboard write failed", "err", err)
		return msg.ShowError("Copy failed", err)
	}
	return msg.ShowToast("Copied background of "+proj.Name, msg.DefaultToastDuration)
}

func (p *Plugin) clampSelection() {
	n := len(p.session.Visible())
	if p.selected >= n {
		p.selected = max(n-1, 0)
	}
	p.ensureSelectionVisible()
}

// ensureSelectionVisible scrolls the tile area so the selected tile is on
// screen.
func (p *Plugin) ensureSelectionVisible() {
	n := len(p.session.Visible())
	if n == 0 || p.selected >= n {
		p.scroll = 0
		return
	}
	areaH := tileAreaHeight(p.height)
	box := layoutTiles(p.session.ViewMode(), n, p.width).boxes[p.selected]
	if box.y < p.scroll {
		p.scroll = box.y
	}
	if box.y+box.h > p.scroll+areaH {
		p.scroll = box.y + box.h - areaH
	}
	p.scroll = max(p.scroll, 0)
}
