package tui

import (
	"peruse/internal/log"
	"peruse/internal/tui/common"
)

// FocusCoordinator is the single source of truth for which pane owns
// keyboard input. Sidebar visibility lives here too because it constrains
// focus: a hidden pane cannot hold it.
type FocusCoordinator struct {
	state   common.FocusState
	sidebar bool
	obs     log.Observer
}

// NewFocusCoordinator starts with the tree focused and the sidebar shown.
func NewFocusCoordinator(obs log.Observer) *FocusCoordinator {
	return &FocusCoordinator{
		state:   common.TreeFocused,
		sidebar: true,
		obs:     obs,
	}
}

// Current returns the pane holding input.
func (f *FocusCoordinator) Current() common.FocusState {
	return f.state
}

// SidebarVisible reports whether the tree pane is shown.
func (f *FocusCoordinator) SidebarVisible() bool {
	return f.sidebar
}

// FocusTree hands input to the tree. Ignored while the sidebar is hidden.
func (f *FocusCoordinator) FocusTree() {
	if !f.sidebar {
		f.obs.Debugf("focus: tree requested while sidebar hidden, ignored")
		return
	}
	f.setState(common.TreeFocused)
}

// FocusContent hands input to the content pane.
func (f *FocusCoordinator) FocusContent() {
	f.setState(common.ContentFocused)
}

// SwitchPane flips focus to the other pane, subject to the hidden-sidebar
// rule.
func (f *FocusCoordinator) SwitchPane() {
	if f.state == common.TreeFocused {
		f.FocusContent()
	} else {
		f.FocusTree()
	}
}

// ToggleSidebar flips visibility. Hiding forces focus to the content pane;
// revealing hands it back to the tree.
func (f *FocusCoordinator) ToggleSidebar() {
	f.sidebar = !f.sidebar
	f.obs.Debugf("focus: sidebar visible=%t", f.sidebar)

	if f.sidebar {
		f.setState(common.TreeFocused)
	} else {
		f.setState(common.ContentFocused)
	}
}

func (f *FocusCoordinator) setState(state common.FocusState) {
	if f.state == state {
		return
	}
	f.obs.Debugf("focus: %s -> %s", f.state, state)
	f.state = state
}
