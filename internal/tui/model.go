// Package tui implements the terminal user interface: a dual-pane browser
// with a directory tree on the left and a scrollable content viewer on the
// right. One key event is fully processed before the next is accepted, so
// every component is owned and mutated by the single event loop.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"peruse/internal/config"
	"peruse/internal/fs"
	"peruse/internal/log"
	"peruse/internal/tui/common"
	"peruse/internal/tui/components"
	"peruse/internal/tui/input"
	"peruse/internal/tui/styles"
	"peruse/pkg/types"
)

// Model is the bubbletea model tying the panes together. It routes every
// key through the input machine, applies the resulting action to the tree
// or the scroll state, and keeps the viewer in sync with the highlighted
// node.
type Model struct {
	cfg     *config.Config
	obs     log.Observer
	walker  *fs.Walker
	tree    *components.Tree
	content *components.Content
	focus   *FocusCoordinator
	machine *input.Machine
	keys    types.KeyMap
	help    help.Model

	width  int
	height int

	// path of the node the viewer currently shows, so cursor travel over
	// the same node does not reload it
	shownPath string
}

// New builds the full UI over the configured root directory. An unreadable
// root fails here, before any terminal state is touched.
func New(cfg *config.Config, obs log.Observer) (*Model, error) {
	walker, err := fs.NewWalker(cfg.Browse.Exclude, obs)
	if err != nil {
		return nil, err
	}

	tree, err := components.NewTree(walker, cfg.Browse.Root, obs)
	if err != nil {
		return nil, err
	}
	tree.ShowIcons = !cfg.Display.NoIcons

	content := components.NewContent(components.Welcome(cfg.Display.Title))
	content.SetTitle("Welcome")

	return &Model{
		cfg:     cfg,
		obs:     obs,
		walker:  walker,
		tree:    tree,
		content: content,
		focus:   NewFocusCoordinator(obs),
		machine: input.NewMachine(input.DefaultKeyTable(), obs),
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.applyLayout(m.calculateLayout())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.machine.Dispatch(m.focus.Current(), msg)

	switch action {
	case input.ActionNone:
		// swallowed or unmapped

	case input.ActionQuit:
		m.obs.Debugf("quit requested")
		return m, tea.Quit

	case input.ActionCursorUp:
		m.tree.MoveUp()
		m.refreshContent()

	case input.ActionCursorDown:
		m.tree.MoveDown()
		m.refreshContent()

	case input.ActionActivate:
		m.activate()

	case input.ActionExpand:
		m.tree.Expand()

	case input.ActionCollapse:
		m.tree.Collapse()

	case input.ActionScrollUp:
		m.content.Scroll().ScrollBy(-1)

	case input.ActionScrollDown:
		m.content.Scroll().ScrollBy(1)

	case input.ActionScrollTop:
		m.content.Scroll().ScrollToTop()

	case input.ActionScrollBottom:
		m.content.Scroll().ScrollToBottom()

	case input.ActionPageUp:
		m.content.Scroll().PageUp()

	case input.ActionPageDown:
		m.content.Scroll().PageDown()

	case input.ActionReturnToTree, input.ActionFocusTree:
		m.focus.FocusTree()

	case input.ActionFocusContent:
		m.focus.FocusContent()

	case input.ActionSwitchPane:
		m.focus.SwitchPane()

	case input.ActionToggleSidebar:
		m.focus.ToggleSidebar()
		m.applyLayout(m.calculateLayout())
	}

	return m, nil
}

// activate handles Enter on the tree: directories toggle, files load into
// the viewer and hand it focus.
func (m *Model) activate() {
	node := m.tree.Current()
	if node == nil {
		return
	}

	if node.IsDir {
		m.tree.Toggle()
		return
	}

	m.loadCurrent()
	m.focus.FocusContent()
}

// refreshContent keeps the viewer tracking the highlighted node while the
// cursor travels. Landing on the node already shown is a no-op so scroll
// position survives a focus round trip.
func (m *Model) refreshContent() {
	node := m.tree.Current()
	if node == nil || node.Path == m.shownPath {
		return
	}
	m.loadCurrent()
}

// loadCurrent replaces the viewer's buffer from the highlighted node,
// resetting scroll.
func (m *Model) loadCurrent() {
	id, ok := m.tree.CurrentID()
	if !ok {
		return
	}

	node := m.tree.Node(id)
	m.shownPath = node.Path
	m.content.SetTitle(node.Name)

	if node.IsDir {
		files, dirs := m.tree.ChildCounts(id)
		m.content.SetBuffer(components.Summarize(node.Name, files, dirs))
		return
	}

	buf := components.LoadFile(m.walker, node.Path)
	m.obs.Debugf("loaded %s (%s)", node.Path, buf.Hint)
	m.content.SetBuffer(buf)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	d := m.calculateLayout()

	header := styles.Theme.Title.Width(m.width).Render(m.cfg.Display.Title)

	contentPane := m.paneStyle(common.ContentFocused).
		Width(d.ContentInnerWidth).
		Height(d.ContentInnerHeight).
		Render(m.content.View())

	body := contentPane
	if m.focus.SidebarVisible() {
		treePane := m.paneStyle(common.TreeFocused).
			Width(d.TreeInnerWidth).
			Height(d.TreeInnerHeight).
			Render(m.tree.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, treePane, contentPane)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView())
}

func (m *Model) paneStyle(pane common.FocusState) lipgloss.Style {
	if m.focus.Current() == pane {
		return styles.Theme.FocusedPane
	}
	return styles.Theme.BlurredPane
}

func (m *Model) footerView() string {
	footer := m.help.View(m.keys)
	if m.machine.State() == input.StatePending {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer,
			styles.Theme.Pending.Render("  "+m.machine.Pending()))
	}
	return footer
}
