package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings surfaced in the help footer. Dispatch is
// table-driven in the input package; these bindings exist for display.
type KeyMap struct {
	// Tree pane
	Navigate key.Binding
	Activate key.Binding
	Expand   key.Binding
	Collapse key.Binding

	// Content pane
	Scroll     key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	// Global
	SwitchPane    key.Binding
	ToggleSidebar key.Binding
	FocusContent  key.Binding
	FocusTree     key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Navigate: key.NewBinding(
			key.WithKeys("j", "k", "down", "up"),
			key.WithHelp("j/k", "navigate"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Expand: key.NewBinding(
			key.WithKeys("z", "o"),
			key.WithHelp("zo", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("z", "c"),
			key.WithHelp("zc", "collapse"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("j", "k", "down", "up"),
			key.WithHelp("j/k", "scroll"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "page down"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("~"),
			key.WithHelp("~", "sidebar"),
		),
		FocusContent: key.NewBinding(
			key.WithKeys("f", "k"),
			key.WithHelp("fk", "focus viewer"),
		),
		FocusTree: key.NewBinding(
			key.WithKeys("f", "h"),
			key.WithHelp("fh", "focus tree"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Activate, k.SwitchPane, k.ToggleSidebar, k.Quit}
}

// FullHelp groups bindings by pane.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Activate, k.Expand, k.Collapse},
		{k.Scroll, k.GotoTop, k.GotoBottom, k.PageUp, k.PageDown},
		{k.SwitchPane, k.ToggleSidebar, k.FocusContent, k.FocusTree, k.Quit},
	}
}
