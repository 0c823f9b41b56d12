package portfolio

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/mouse"
	"github.com/marcus/folio/internal/portfolio"
)

// Mouse region identifiers
const (
	regionSearch        = "search"         // search box
	regionViewToggle    = "view-toggle"    // layout selector (Data: portfolio.ViewMode)
	regionTiles         = "tiles"          // page background behind the tiles
	regionTile          = "tile"           // tile body (Data: project ID)
	regionRename        = "tile-rename"    // ✎ control (Data: project ID)
	regionPicker        = "tile-picker"    // ◐ control (Data: project ID)
	regionRenameConfirm = "rename-confirm" // ✓ next to the rename field
	regionRenameCancel  = "rename-cancel"  // ✗ next to the rename field
)

const scrollStep = 3

func (p *Plugin) handleMouse(m tea.MouseMsg) tea.Cmd {
	// The picker overlay captures everything, including clicks outside it.
	if p.session.Picker().IsOpen() && p.picker != nil {
		if action := p.picker.HandleMouse(m, p.pickerMouse); action != "" {
			return p.pickerAction(action)
		}
		return nil
	}

	action := p.mouseHandler.HandleMouse(m)
	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		return p.handleClick(action)
	case mouse.ActionScrollUp:
		p.scroll = max(p.scroll-scrollStep, 0)
	case mouse.ActionScrollDown:
		p.scroll += scrollStep // clamped when the tile area renders
	}
	return nil
}

func (p *Plugin) handleClick(action mouse.MouseAction) tea.Cmd {
	if action.Region == nil {
		return nil
	}
	if action.Region.ID == regionSearch {
		if p.session.Edit().Editing() {
			return nil
		}
		p.searching = true
		return p.searchInput.Focus()
	}

	if p.searching {
		p.searching = false
		p.searchInput.Blur()
	}

	id, _ := action.Region.Data.(int)
	switch action.Region.ID {
	case regionViewToggle:
		if mode, ok := action.Region.Data.(portfolio.ViewMode); ok {
			p.setViewMode(mode)
		}
	case regionTile:
		return p.activate(id)
	case regionRename:
		return p.startRename(id)
	case regionPicker:
		return p.openPicker(id)
	case regionRenameConfirm:
		return p.confirmRename()
	case regionRenameCancel:
		p.cancelRename()
	case regionTiles:
		p.dismissPicker()
	}
	return nil
}
