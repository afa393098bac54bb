// Package input translates raw key events into application actions. Key
// handling is table-driven: a KeyTable declares the bindings per focused
// pane and a Machine resolves each event against it, buffering two-key
// sequences such as gg and zo explicitly so pending state is visible to
// the UI.
package input

// Action identifies the operation a key event requests. The Machine
// produces exactly one Action per event; ActionNone means the event was
// unmapped or consumed by sequence handling.
type Action uint8

const (
	ActionNone Action = iota

	// Tree pane
	ActionCursorUp
	ActionCursorDown
	ActionActivate
	ActionExpand
	ActionCollapse

	// Content pane
	ActionScrollUp
	ActionScrollDown
	ActionScrollTop
	ActionScrollBottom
	ActionPageUp
	ActionPageDown
	ActionReturnToTree

	// Either pane
	ActionSwitchPane
	ActionToggleSidebar
	ActionFocusContent
	ActionFocusTree
	ActionQuit
)

// String returns a short name for logging.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionCursorUp:
		return "cursor-up"
	case ActionCursorDown:
		return "cursor-down"
	case ActionActivate:
		return "activate"
	case ActionExpand:
		return "expand"
	case ActionCollapse:
		return "collapse"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollTop:
		return "scroll-top"
	case ActionScrollBottom:
		return "scroll-bottom"
	case ActionPageUp:
		return "page-up"
	case ActionPageDown:
		return "page-down"
	case ActionReturnToTree:
		return "return-to-tree"
	case ActionSwitchPane:
		return "switch-pane"
	case ActionToggleSidebar:
		return "toggle-sidebar"
	case ActionFocusContent:
		return "focus-content"
	case ActionFocusTree:
		return "focus-tree"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
