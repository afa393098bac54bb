package common

// FocusState identifies the pane that owns keyboard input. Exactly one pane
// holds focus at any time.
type FocusState int

const (
	TreeFocused FocusState = iota
	ContentFocused
)

func (s FocusState) String() string {
	switch s {
	case TreeFocused:
		return "tree"
	case ContentFocused:
		return "content"
	}
	return "unknown"
}
