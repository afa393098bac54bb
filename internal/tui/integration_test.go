package tui

import (
	"testing"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"peruse/internal/config"
	"peruse/internal/log"
	"peruse/internal/tui/common"
	"peruse/internal/tui/components"
	"peruse/pkg/testutils"
)

// TestBrowserSession walks one continuous session through the full model:
// startup, browsing with live preview, a viewer excursion, sidebar work,
// and quit.
func TestBrowserSession(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateSubmissionTree(t, dir)

	cfg := config.NewTestConfig()
	cfg.Browse.Root = dir

	m, err := New(cfg, log.Nop())
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	t.Run("startup", func(t *testing.T) {
		alsrt.Equal(t, common.TreeFocused, m.focus.Current(), "Input should start at the tree")
		alsrt.Contains(t, testutils.StripANSI(m.View()), "Welcome to Peruse Test!", "Viewer should open on the welcome text")
		alsrt.Contains(t, testutils.StripANSI(m.View()), "Peruse Test", "Header should carry the configured title")
	})

	t.Run("browse with live preview", func(t *testing.T) {
		press(m, "j", "j")
		require.Equal(t, "src", m.tree.Current().Name)
		alsrt.Equal(t, components.DirSummary, m.content.Buffer().Hint, "Highlighting a directory should show its summary")
		alsrt.Contains(t, m.content.Buffer().Text, "- 2 files", "Summary should count src's children")

		press(m, "enter", "j")
		require.Equal(t, "main.c", m.tree.Current().Name)
		alsrt.Equal(t, components.CSource, m.content.Buffer().Hint, "Highlighting main.c should preview it as C")
		alsrt.Contains(t, testutils.StripANSI(m.View()), "#include <stdio.h>", "Preview should be visible in the viewer pane")
		alsrt.Contains(t, testutils.StripANSI(m.View()), "[c]", "Viewer header should tag the preview format")
	})

	t.Run("viewer excursion", func(t *testing.T) {
		press(m, "enter")
		alsrt.Equal(t, common.ContentFocused, m.focus.Current(), "Opening a file should hand focus to the viewer")

		press(m, "G")
		bottom := m.content.Scroll().Offset()
		alsrt.NotEqual(t, 0, bottom, "G should reach the bottom of main.c")

		press(m, "g", "g")
		alsrt.Equal(t, 0, m.content.Scroll().Offset(), "gg should jump back to the top")

		press(m, "ctrl+d")
		pageDown := m.content.Scroll().Offset()
		press(m, "ctrl+u")
		alsrt.Equal(t, 0, m.content.Scroll().Offset(), "A page down then up should round-trip")
		alsrt.NotEqual(t, 0, pageDown, "Page down should move at least one line")

		press(m, "enter")
		alsrt.Equal(t, common.TreeFocused, m.focus.Current(), "Enter in the viewer should return to the tree")
		alsrt.Equal(t, "main.c", m.tree.Current().Name, "The tree cursor should be where it was left")
	})

	t.Run("sidebar round trip", func(t *testing.T) {
		press(m, "~")
		alsrt.False(t, m.focus.SidebarVisible(), "Tilde should hide the sidebar")
		alsrt.Equal(t, common.ContentFocused, m.focus.Current(), "A hidden sidebar cannot hold focus")

		press(m, "~")
		alsrt.True(t, m.focus.SidebarVisible(), "Tilde should reveal the sidebar again")
		alsrt.Equal(t, common.TreeFocused, m.focus.Current(), "The sidebar regains focus on reveal")
	})

	t.Run("collapse and quit", func(t *testing.T) {
		press(m, "k")
		require.Equal(t, "src", m.tree.Current().Name)

		press(m, "z", "c")
		alsrt.False(t, m.tree.Current().IsOpen, "zc should collapse the node under the cursor")

		cmd := press(m, "q")
		require.NotNil(t, cmd)
		alsrt.Equal(t, tea.QuitMsg{}, cmd(), "q should terminate the program")
	})
}
