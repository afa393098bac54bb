package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"peruse/internal/log"
	"peruse/internal/tui/common"
)

// State tracks the sequence parser.
type State uint8

const (
	// StateIdle means no sequence is in progress.
	StateIdle State = iota
	// StatePending means a prefix key was pressed and the machine is
	// waiting for the key that completes or cancels the sequence.
	StatePending
)

// Machine resolves key events to Actions, contextual on the focused pane.
// A prefix key moves the machine to StatePending; the next key either
// completes a sequence or cancels it. A cancelling key is consumed and
// never dispatched on its own.
type Machine struct {
	table  *KeyTable
	state  State
	prefix string
	obs    log.Observer
}

// NewMachine creates an input machine over the given table.
func NewMachine(table *KeyTable, obs log.Observer) *Machine {
	return &Machine{
		table: table,
		state: StateIdle,
		obs:   obs,
	}
}

// State returns the parser state.
func (m *Machine) State() State {
	return m.state
}

// Pending returns the buffered prefix key, or "" when idle. The footer
// displays it while a sequence is in progress.
func (m *Machine) Pending() string {
	return m.prefix
}

// Reset clears any pending sequence.
func (m *Machine) Reset() {
	m.state = StateIdle
	m.prefix = ""
}

// Dispatch maps one key event to an Action under the given focus.
func (m *Machine) Dispatch(focus common.FocusState, msg tea.KeyMsg) Action {
	key := msg.String()

	if m.state == StatePending {
		seq := m.prefix + key
		m.Reset()
		if action, ok := m.table.lookupSeq(focus, seq); ok {
			m.obs.Debugf("input: sequence %q -> %s", seq, action)
			return action
		}
		m.obs.Debugf("input: sequence %q cancelled", seq)
		return ActionNone
	}

	if m.table.isPrefix(focus, key) {
		m.state = StatePending
		m.prefix = key
		return ActionNone
	}

	if action, ok := m.table.lookup(focus, key); ok {
		return action
	}
	return ActionNone
}
