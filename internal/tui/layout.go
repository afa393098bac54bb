package tui

import "peruse/internal/tui/styles"

const (
	headerHeight = 1
	footerHeight = 1
)

// LayoutDimensions holds the calculated pane dimensions for one terminal
// size. Widths are a pure function of the terminal size, the configured
// sidebar share, and the sidebar visibility boolean; nothing else feeds in.
type LayoutDimensions struct {
	TreeWidth          int // columns allocated to the tree pane, frame included
	ContentWidth       int // columns allocated to the content pane, frame included
	BodyHeight         int // rows between header and footer
	TreeInnerWidth     int // usable width inside the tree pane
	TreeInnerHeight    int // usable height inside the tree pane
	ContentInnerWidth  int // usable width inside the content pane
	ContentInnerHeight int // usable height inside the content pane
}

// calculateLayout computes all pane dimensions for the current terminal
// size. A hidden sidebar gives its columns to the content pane.
func (m *Model) calculateLayout() LayoutDimensions {
	body := max(0, m.height-headerHeight-footerHeight)

	treeWidth := 0
	if m.focus.SidebarVisible() {
		treeWidth = m.width * m.cfg.Display.SidebarWidth / 100
	}
	contentWidth := max(0, m.width-treeWidth)

	frameX := styles.Theme.FocusedPane.GetHorizontalFrameSize()
	frameY := styles.Theme.FocusedPane.GetVerticalFrameSize()

	return LayoutDimensions{
		TreeWidth:          treeWidth,
		ContentWidth:       contentWidth,
		BodyHeight:         body,
		TreeInnerWidth:     max(0, treeWidth-frameX),
		TreeInnerHeight:    max(0, body-frameY),
		ContentInnerWidth:  max(0, contentWidth-frameX),
		ContentInnerHeight: max(0, body-frameY),
	}
}

// applyLayout pushes the calculated dimensions into the panes so their
// windowing matches what will be rendered.
func (m *Model) applyLayout(d LayoutDimensions) {
	m.tree.SetSize(d.TreeInnerWidth, d.TreeInnerHeight)
	m.content.SetSize(d.ContentInnerWidth, d.ContentInnerHeight)
}
