package input

import (
	"peruse/internal/tui/common"
)

// KeyTable declares the key bindings the Machine resolves against. Keys are
// bubbletea key strings (tea.KeyMsg.String()). Pane and PaneSeq are consulted
// under the matching focus before the Global tables, so a pane can shadow a
// global binding. A key that opens a sequence must not also carry a direct
// action under the same focus.
type KeyTable struct {
	Pane      map[common.FocusState]map[string]Action
	Global    map[string]Action
	PaneSeq   map[common.FocusState]map[string]Action
	GlobalSeq map[string]Action
}

// DefaultKeyTable returns the standard vim-style bindings.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Pane: map[common.FocusState]map[string]Action{
			common.TreeFocused: {
				"j":     ActionCursorDown,
				"down":  ActionCursorDown,
				"k":     ActionCursorUp,
				"up":    ActionCursorUp,
				"enter": ActionActivate,
			},
			common.ContentFocused: {
				"j":      ActionScrollDown,
				"down":   ActionScrollDown,
				"k":      ActionScrollUp,
				"up":     ActionScrollUp,
				"G":      ActionScrollBottom,
				"ctrl+d": ActionPageDown,
				"ctrl+u": ActionPageUp,
				"enter":  ActionReturnToTree,
			},
		},
		Global: map[string]Action{
			"tab":    ActionSwitchPane,
			"~":      ActionToggleSidebar,
			"q":      ActionQuit,
			"ctrl+c": ActionQuit,
		},
		PaneSeq: map[common.FocusState]map[string]Action{
			common.TreeFocused: {
				"zo": ActionExpand,
				"zc": ActionCollapse,
			},
			common.ContentFocused: {
				"gg": ActionScrollTop,
			},
		},
		GlobalSeq: map[string]Action{
			"fk": ActionFocusContent,
			"fh": ActionFocusTree,
		},
	}
}

// isPrefix reports whether key opens a two-key sequence under focus.
func (t *KeyTable) isPrefix(focus common.FocusState, key string) bool {
	if len(key) != 1 {
		return false
	}
	for seq := range t.PaneSeq[focus] {
		if seq[:1] == key {
			return true
		}
	}
	for seq := range t.GlobalSeq {
		if seq[:1] == key {
			return true
		}
	}
	return false
}

// lookup resolves a single key under focus.
func (t *KeyTable) lookup(focus common.FocusState, key string) (Action, bool) {
	if action, ok := t.Pane[focus][key]; ok {
		return action, true
	}
	action, ok := t.Global[key]
	return action, ok
}

// lookupSeq resolves a completed two-key sequence under focus.
func (t *KeyTable) lookupSeq(focus common.FocusState, seq string) (Action, bool) {
	if action, ok := t.PaneSeq[focus][seq]; ok {
		return action, true
	}
	action, ok := t.GlobalSeq[seq]
	return action, ok
}
