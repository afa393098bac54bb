package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"peruse/internal/tui/styles"
)

// FormatHint describes how the content pane should present a buffer.
type FormatHint uint8

const (
	PlainText FormatHint = iota
	CSource
	Makefile
	DirSummary
	ErrorText
)

// String returns a short name for logging.
func (h FormatHint) String() string {
	switch h {
	case PlainText:
		return "plain"
	case CSource:
		return "c"
	case Makefile:
		return "makefile"
	case DirSummary:
		return "summary"
	case ErrorText:
		return "error"
	default:
		return "unknown"
	}
}

// Buffer is one loaded document: its text plus the hint that drives
// presentation.
type Buffer struct {
	Text string
	Hint FormatHint
}

// Reader loads file text. *fs.Walker satisfies it.
type Reader interface {
	ReadText(path string) (string, error)
}

// HintForPath derives the format hint for a file from its path. C sources
// win over the Makefile rule, so a file like Makefile.c reads as C.
func HintForPath(path string) FormatHint {
	switch filepath.Ext(path) {
	case ".c", ".h":
		return CSource
	case ".mk":
		return Makefile
	}
	if strings.Contains(path, "Makefile") {
		return Makefile
	}
	return PlainText
}

// LoadFile reads path into a buffer. Read failures become an ErrorText
// buffer rather than an error so the viewer always has something to show.
func LoadFile(r Reader, path string) Buffer {
	text, err := r.ReadText(path)
	if err != nil {
		return Buffer{
			Text: fmt.Sprintf("Error reading file: %v", err),
			Hint: ErrorText,
		}
	}
	return Buffer{Text: text, Hint: HintForPath(path)}
}

// Summarize builds the overview shown while a directory is highlighted.
// Counts cover the directory's browsable children, not the raw listing.
func Summarize(name string, files, dirs int) Buffer {
	text := fmt.Sprintf("# %s\n\nThis directory contains:\n- %d files\n- %d directories\n\nSelect a file to view its contents.",
		name, files, dirs)
	return Buffer{Text: text, Hint: DirSummary}
}

// Welcome builds the buffer shown before anything is highlighted.
func Welcome(title string) Buffer {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome to %s!\n\n", title)
	b.WriteString("Navigation:\n")
	b.WriteString("- j/k: Move up/down in tree or scroll content\n")
	b.WriteString("- Enter: Open/close folders in tree, focus viewer for files\n")
	b.WriteString("- Enter (in viewer): Return to tree\n")
	b.WriteString("- zo/zc: Expand/collapse directories\n")
	b.WriteString("- fk: Focus viewer\n")
	b.WriteString("- fh: Focus sidebar\n")
	b.WriteString("- Tab: Switch between tree and content\n")
	b.WriteString("- ~: Toggle sidebar\n")
	b.WriteString("- q: Quit\n\n")
	b.WriteString("Content View Additional Controls:\n")
	b.WriteString("- Ctrl+u/Ctrl+d: Page up/down\n")
	b.WriteString("- gg/G: Jump to top/bottom")
	return Buffer{Text: b.String(), Hint: PlainText}
}

// Content is the scrollable viewer pane. It windows the active buffer's
// lines through a ScrollState; loading a new buffer returns to the top.
// With a title set, the first row is a header naming the document and its
// hint tag and the scroll window shrinks by that row.
type Content struct {
	buffer Buffer
	lines  []string
	scroll ScrollState
	title  string
	width  int
	height int
}

// NewContent creates a viewer pane showing the given buffer.
func NewContent(buf Buffer) *Content {
	c := &Content{}
	c.SetBuffer(buf)
	return c
}

// SetBuffer replaces the document and resets the scroll position.
func (c *Content) SetBuffer(buf Buffer) {
	c.buffer = buf
	c.lines = strings.Split(strings.TrimSuffix(buf.Text, "\n"), "\n")
	c.scroll.Reset()
	c.scroll.SetContentHeight(len(c.lines))
}

// Buffer returns the active document.
func (c *Content) Buffer() Buffer {
	return c.buffer
}

// SetTitle names the document in the pane header. An empty title removes
// the header row.
func (c *Content) SetTitle(title string) {
	c.title = title
	c.applyViewport()
}

// SetSize records the pane's inner dimensions.
func (c *Content) SetSize(width, height int) {
	c.width = max(0, width)
	c.height = max(0, height)
	c.applyViewport()
}

func (c *Content) applyViewport() {
	h := c.height
	if c.title != "" {
		h--
	}
	c.scroll.SetViewportHeight(h)
}

// Scroll exposes the pane's scroll state.
func (c *Content) Scroll() *ScrollState {
	return &c.scroll
}

// View renders the header, when titled, above the visible window of the
// buffer.
func (c *Content) View() string {
	body := c.bodyView()
	if c.title == "" {
		return body
	}
	if body == "" {
		return c.headerView()
	}
	return c.headerView() + "\n" + body
}

func (c *Content) headerView() string {
	tag := "[" + c.buffer.Hint.String() + "]"
	// Title style pads one column each side; keep name, space, and tag on
	// the single header row
	avail := c.width - len(tag) - 3
	if avail < 4 {
		return truncate(c.title, c.width)
	}
	return styles.Theme.Title.Render(truncate(c.title, avail)) + " " + styles.Theme.Muted.Render(tag)
}

func (c *Content) bodyView() string {
	start := c.scroll.Offset()
	end := min(len(c.lines), start+c.scroll.ViewportHeight())
	if start >= end {
		return ""
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		line := truncate(c.lines[i], c.width)
		if c.buffer.Hint == ErrorText {
			line = styles.Theme.Error.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
