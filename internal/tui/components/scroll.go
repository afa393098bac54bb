package components

// ScrollState tracks the vertical scroll position of the content pane.
//
// The offset is a line index into the rendered buffer and is re-clamped on
// every mutation to 0 <= offset <= max(0, contentHeight-viewportHeight), so
// scrolling can never reveal space past the last line and shrinking the
// content or growing the window pulls the offset back into range.
type ScrollState struct {
	offset         int
	viewportHeight int
	contentHeight  int
}

// Offset returns the index of the first visible line.
func (s *ScrollState) Offset() int {
	return s.offset
}

// ViewportHeight returns the number of visible lines.
func (s *ScrollState) ViewportHeight() int {
	return s.viewportHeight
}

// SetViewportHeight records the visible line count and re-clamps the offset.
func (s *ScrollState) SetViewportHeight(h int) {
	s.viewportHeight = max(0, h)
	s.offset = s.clamp(s.offset)
}

// SetContentHeight records the buffer's line count and re-clamps the offset.
func (s *ScrollState) SetContentHeight(h int) {
	s.contentHeight = max(0, h)
	s.offset = s.clamp(s.offset)
}

// ScrollBy moves the offset by delta lines, clamped to the valid range.
func (s *ScrollState) ScrollBy(delta int) {
	s.offset = s.clamp(s.offset + delta)
}

// ScrollToTop jumps to the first line.
func (s *ScrollState) ScrollToTop() {
	s.offset = 0
}

// ScrollToBottom jumps so the last line sits on the bottom edge.
func (s *ScrollState) ScrollToBottom() {
	s.offset = s.maxOffset()
}

// PageDown advances by one page.
func (s *ScrollState) PageDown() {
	s.ScrollBy(s.pageSize())
}

// PageUp moves back by one page.
func (s *ScrollState) PageUp() {
	s.ScrollBy(-s.pageSize())
}

// Reset returns to the top. Called whenever a new buffer is loaded.
func (s *ScrollState) Reset() {
	s.offset = 0
}

// pageSize is two lines short of the viewport so consecutive pages keep
// overlap for continuity, and never less than one line.
func (s *ScrollState) pageSize() int {
	return max(1, s.viewportHeight-2)
}

func (s *ScrollState) maxOffset() int {
	return max(0, s.contentHeight-s.viewportHeight)
}

func (s *ScrollState) clamp(offset int) int {
	return min(max(0, offset), s.maxOffset())
}
