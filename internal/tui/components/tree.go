// Package components holds the building blocks of the browser UI: the
// directory tree, the content viewer, and the scroll state that backs it.
// Components render themselves but never interpret keys; the model drives
// them through their methods.
package components

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"peruse/internal/errors"
	"peruse/internal/fs"
	"peruse/internal/log"
	"peruse/internal/tui/styles"
)

// NodeID addresses a node in the tree's arena. IDs are stable for the
// lifetime of the tree since nodes are never added or removed after the
// initial build.
type NodeID int

// TreeNode represents a node in the file tree. Relationships are arena
// indices, not pointers.
type TreeNode struct {
	Name     string
	Path     string
	IsDir    bool
	IsOpen   bool
	Children []NodeID
	Parent   NodeID
	Level    int
}

// Lister enumerates a directory's browsable entries. *fs.Walker satisfies it.
type Lister interface {
	List(path string) ([]fs.Entry, error)
}

// Tree is the sidebar component showing the directory hierarchy. The whole
// tree is built up front so directory summaries know their children without
// touching the disk again. Nodes live in a flat arena in depth-first order;
// VisibleRows is the flattened traversal of open nodes the cursor moves
// over.
type Tree struct {
	Cursor      int
	VisibleRows []NodeID
	Height      int
	Width       int
	Offset      int
	ShowIcons   bool

	nodes  []TreeNode
	byPath map[string]NodeID
	lister Lister
	obs    log.Observer
}

// NewTree builds the tree rooted at rootDir. An unreadable root is a
// startup failure; unreadable subdirectories are logged and shown without
// children.
func NewTree(lister Lister, rootDir string, obs log.Observer) (*Tree, error) {
	t := &Tree{
		ShowIcons: true,
		byPath:    map[string]NodeID{rootDir: 0},
		lister:    lister,
		obs:       obs,
	}
	t.nodes = append(t.nodes, TreeNode{
		Name:   filepath.Base(rootDir),
		Path:   rootDir,
		IsDir:  true,
		IsOpen: true,
		Parent: -1,
	})

	if err := t.buildSubtree(0); err != nil {
		return nil, errors.NewStartupError(rootDir, err)
	}
	t.UpdateVisibleRows()

	return t, nil
}

// buildSubtree fills in the children of id recursively, appending them to
// the arena. Only the caller's directory is allowed to fail; deeper
// failures prune that subtree.
func (t *Tree) buildSubtree(id NodeID) error {
	path, level := t.nodes[id].Path, t.nodes[id].Level

	entries, err := t.lister.List(path)
	if err != nil {
		return err
	}

	children := make([]NodeID, 0, len(entries))
	for _, entry := range entries {
		childID := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, TreeNode{
			Name:   entry.Name,
			Path:   filepath.Join(path, entry.Name),
			IsDir:  entry.IsDir,
			Parent: id,
			Level:  level + 1,
		})
		t.byPath[t.nodes[childID].Path] = childID

		if entry.IsDir {
			if err := t.buildSubtree(childID); err != nil {
				t.obs.Warnf("skipping unreadable directory %s: %v", t.nodes[childID].Path, err)
			}
		}

		children = append(children, childID)
	}
	t.nodes[id].Children = children

	return nil
}

// Node resolves an arena index. The returned pointer stays valid for the
// tree's lifetime.
func (t *Tree) Node(id NodeID) *TreeNode {
	return &t.nodes[id]
}

// Lookup finds the node for a path.
func (t *Tree) Lookup(path string) (NodeID, bool) {
	id, ok := t.byPath[path]
	return id, ok
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// ChildCounts returns how many immediate children of id are files and how
// many are directories.
func (t *Tree) ChildCounts(id NodeID) (files, dirs int) {
	for _, childID := range t.nodes[id].Children {
		if t.nodes[childID].IsDir {
			dirs++
		} else {
			files++
		}
	}
	return files, dirs
}

// UpdateVisibleRows flattens the open nodes into the row list the cursor
// moves over, clamping the cursor if rows disappeared.
func (t *Tree) UpdateVisibleRows() {
	t.VisibleRows = t.VisibleRows[:0]
	t.addVisibleNode(0)

	if t.Cursor >= len(t.VisibleRows) {
		t.Cursor = max(0, len(t.VisibleRows)-1)
	}
	t.EnsureCursorVisible()
}

func (t *Tree) addVisibleNode(id NodeID) {
	t.VisibleRows = append(t.VisibleRows, id)
	if t.nodes[id].IsOpen {
		for _, childID := range t.nodes[id].Children {
			t.addVisibleNode(childID)
		}
	}
}

// Current returns the node under the cursor.
func (t *Tree) Current() *TreeNode {
	if t.Cursor < 0 || t.Cursor >= len(t.VisibleRows) {
		return nil
	}
	return &t.nodes[t.VisibleRows[t.Cursor]]
}

// CurrentID returns the arena index of the node under the cursor.
func (t *Tree) CurrentID() (NodeID, bool) {
	if t.Cursor < 0 || t.Cursor >= len(t.VisibleRows) {
		return 0, false
	}
	return t.VisibleRows[t.Cursor], true
}

// MoveUp moves the cursor up one row.
func (t *Tree) MoveUp() {
	if t.Cursor > 0 {
		t.Cursor--
	}
	t.EnsureCursorVisible()
}

// MoveDown moves the cursor down one row.
func (t *Tree) MoveDown() {
	if t.Cursor < len(t.VisibleRows)-1 {
		t.Cursor++
	}
	t.EnsureCursorVisible()
}

// Toggle flips the open state of the directory under the cursor. The
// cursor stays on the toggled node. Files and childless directories are
// left alone.
func (t *Tree) Toggle() {
	node := t.Current()
	if node == nil || !node.IsDir || len(node.Children) == 0 {
		return
	}

	node.IsOpen = !node.IsOpen
	t.UpdateVisibleRows()
}

// Expand opens the directory under the cursor. Directories that are
// already open, files, and empty directories are left alone.
func (t *Tree) Expand() {
	node := t.Current()
	if node == nil || !node.IsDir || node.IsOpen || len(node.Children) == 0 {
		return
	}

	node.IsOpen = true
	t.UpdateVisibleRows()
}

// Collapse closes the directory under the cursor if it is open.
func (t *Tree) Collapse() {
	node := t.Current()
	if node == nil || !node.IsDir || !node.IsOpen {
		return
	}

	node.IsOpen = false
	t.UpdateVisibleRows()
}

// SetSize records the pane's inner dimensions.
func (t *Tree) SetSize(width, height int) {
	t.Width = max(0, width)
	t.Height = max(0, height)
	t.EnsureCursorVisible()
}

// EnsureCursorVisible adjusts the scroll offset so the cursor row stays in
// the rendered window. Two rows are reserved for the scroll indicators.
func (t *Tree) EnsureCursorVisible() {
	if t.Height <= 0 {
		return
	}

	body := max(1, t.Height-2)

	if t.Cursor < t.Offset {
		t.Offset = t.Cursor
	}
	if t.Cursor >= t.Offset+body {
		t.Offset = t.Cursor - body + 1
	}

	maxOffset := max(0, len(t.VisibleRows)-body)
	t.Offset = min(max(0, t.Offset), maxOffset)
}

// View returns the rendered rows of the tree window.
func (t *Tree) View() string {
	if len(t.VisibleRows) == 0 {
		return styles.Theme.Muted.Render("No files found")
	}

	body := max(1, t.Height-2)
	startIdx := t.Offset
	endIdx := min(len(t.VisibleRows), t.Offset+body)

	var b strings.Builder

	if startIdx > 0 {
		b.WriteString(styles.Theme.Muted.Render("↑ more ↑") + "\n")
	}

	for i := startIdx; i < endIdx; i++ {
		node := &t.nodes[t.VisibleRows[i]]

		line := strings.Repeat("  ", node.Level) + marker(node)
		if t.ShowIcons {
			line += iconFor(node) + " "
		}
		line += node.Name
		line = truncate(line, t.Width)

		switch {
		case i == t.Cursor:
			line = styles.Theme.Selected.Render(line)
		case node.IsDir:
			line = styles.Theme.Directory.Render(line)
		default:
			line = styles.Theme.File.Render(line)
		}

		b.WriteString(line + "\n")
	}

	if endIdx < len(t.VisibleRows) {
		b.WriteString(styles.Theme.Muted.Render("↓ more ↓") + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// marker shows a directory's open state; files get matching padding.
func marker(node *TreeNode) string {
	if !node.IsDir {
		return "  "
	}
	if node.IsOpen {
		return "▾ "
	}
	return "▸ "
}

// iconFor picks the glyph for a node, matching the viewer's file families:
// sources, text, makefiles, everything else.
func iconFor(node *TreeNode) string {
	if node.IsDir {
		return "📁"
	}

	switch filepath.Ext(node.Name) {
	case ".c", ".h":
		return "📄"
	case ".txt", ".md", ".info":
		return "📝"
	case ".mk":
		return "🔧"
	}
	if strings.Contains(node.Name, "Makefile") {
		return "🔧"
	}
	return "📎"
}

// truncate trims s to fit width display cells, marking the cut with an
// ellipsis. A zero width disables truncation.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
