package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newScroll(viewport, content int) *ScrollState {
	s := &ScrollState{}
	s.SetViewportHeight(viewport)
	s.SetContentHeight(content)
	return s
}

func TestScrollBounds(t *testing.T) {
	t.Run("offset starts at zero", func(t *testing.T) {
		s := newScroll(20, 100)
		assert.Equal(t, 0, s.Offset())
	})

	t.Run("cannot scroll above the top", func(t *testing.T) {
		s := newScroll(20, 100)
		s.ScrollBy(-5)
		assert.Equal(t, 0, s.Offset())
	})

	t.Run("cannot scroll past the last line", func(t *testing.T) {
		s := newScroll(20, 100)
		s.ScrollBy(1000)
		assert.Equal(t, 80, s.Offset())
	})

	t.Run("jump to bottom lands flush with the last line", func(t *testing.T) {
		s := newScroll(20, 100)
		s.ScrollToBottom()
		assert.Equal(t, 80, s.Offset())

		s.ScrollToTop()
		assert.Equal(t, 0, s.Offset())
	})

	t.Run("short content never scrolls", func(t *testing.T) {
		s := newScroll(20, 5)
		s.ScrollBy(3)
		assert.Equal(t, 0, s.Offset())

		s.PageDown()
		assert.Equal(t, 0, s.Offset())

		s.ScrollToBottom()
		assert.Equal(t, 0, s.Offset())
	})
}

func TestScrollPaging(t *testing.T) {
	t.Run("page is viewport minus two", func(t *testing.T) {
		s := newScroll(20, 100)
		s.PageDown()
		assert.Equal(t, 18, s.Offset())

		s.PageDown()
		assert.Equal(t, 36, s.Offset())

		s.PageUp()
		assert.Equal(t, 18, s.Offset())
	})

	t.Run("page never shrinks below one line", func(t *testing.T) {
		tests := []struct {
			name     string
			viewport int
		}{
			{"viewport of one", 1},
			{"viewport of two", 2},
			{"viewport of three", 3},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newScroll(tt.viewport, 100)
				s.PageDown()
				assert.GreaterOrEqual(t, s.Offset(), 1)
			})
		}
	})

	t.Run("paging clamps at the edges", func(t *testing.T) {
		s := newScroll(20, 30)
		s.PageDown()
		assert.Equal(t, 10, s.Offset(), "a full page would overshoot the last line")

		s.PageUp()
		s.PageUp()
		assert.Equal(t, 0, s.Offset())
	})
}

func TestScrollResize(t *testing.T) {
	t.Run("growing the viewport pulls the offset back", func(t *testing.T) {
		s := newScroll(20, 100)
		s.ScrollToBottom()
		assert.Equal(t, 80, s.Offset())

		s.SetViewportHeight(50)
		assert.Equal(t, 50, s.Offset())
	})

	t.Run("shrinking the content pulls the offset back", func(t *testing.T) {
		s := newScroll(20, 100)
		s.ScrollToBottom()

		s.SetContentHeight(25)
		assert.Equal(t, 5, s.Offset())

		s.SetContentHeight(10)
		assert.Equal(t, 0, s.Offset())
	})

	t.Run("negative dimensions are treated as empty", func(t *testing.T) {
		s := newScroll(-3, -10)
		assert.Equal(t, 0, s.Offset())
		s.ScrollBy(4)
		assert.Equal(t, 0, s.Offset())
	})
}

func TestScrollReset(t *testing.T) {
	s := newScroll(20, 100)
	s.ScrollBy(42)
	assert.Equal(t, 42, s.Offset())

	s.Reset()
	assert.Equal(t, 0, s.Offset())
}
