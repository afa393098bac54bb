package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peruse/internal/log"
	"peruse/internal/tui/common"
)

func TestFocusInitialState(t *testing.T) {
	f := NewFocusCoordinator(log.Nop())

	assert.Equal(t, common.TreeFocused, f.Current())
	assert.True(t, f.SidebarVisible())
}

func TestFocusHandoff(t *testing.T) {
	f := NewFocusCoordinator(log.Nop())

	f.FocusContent()
	assert.Equal(t, common.ContentFocused, f.Current())

	f.FocusTree()
	assert.Equal(t, common.TreeFocused, f.Current())

	// focusing the pane that already holds input changes nothing
	f.FocusTree()
	assert.Equal(t, common.TreeFocused, f.Current())
}

func TestSwitchPane(t *testing.T) {
	f := NewFocusCoordinator(log.Nop())

	f.SwitchPane()
	assert.Equal(t, common.ContentFocused, f.Current())

	f.SwitchPane()
	assert.Equal(t, common.TreeFocused, f.Current())
}

func TestToggleSidebar(t *testing.T) {
	t.Run("hiding forces content focus", func(t *testing.T) {
		f := NewFocusCoordinator(log.Nop())

		f.ToggleSidebar()
		assert.False(t, f.SidebarVisible())
		assert.Equal(t, common.ContentFocused, f.Current())
	})

	t.Run("revealing hands focus back to the tree", func(t *testing.T) {
		f := NewFocusCoordinator(log.Nop())

		f.ToggleSidebar()
		f.ToggleSidebar()
		assert.True(t, f.SidebarVisible())
		assert.Equal(t, common.TreeFocused, f.Current())
	})

	t.Run("round trip from the tree restores the original state", func(t *testing.T) {
		f := NewFocusCoordinator(log.Nop())
		before := f.Current()

		f.ToggleSidebar()
		f.ToggleSidebar()
		assert.Equal(t, before, f.Current())
	})

	t.Run("reveal prefers the tree even from content focus", func(t *testing.T) {
		f := NewFocusCoordinator(log.Nop())
		f.FocusContent()

		f.ToggleSidebar()
		f.ToggleSidebar()
		assert.Equal(t, common.TreeFocused, f.Current())
	})
}

func TestHiddenSidebarCannotHoldFocus(t *testing.T) {
	f := NewFocusCoordinator(log.Nop())
	f.ToggleSidebar()
	assert.Equal(t, common.ContentFocused, f.Current())

	f.FocusTree()
	assert.Equal(t, common.ContentFocused, f.Current(), "a hidden pane cannot take input")

	f.SwitchPane()
	assert.Equal(t, common.ContentFocused, f.Current())

	f.FocusContent()
	assert.Equal(t, common.ContentFocused, f.Current())
}
