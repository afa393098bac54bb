// Package styles defines the shared lipgloss styles for the TUI. The style
// set is package state: Apply maps the configured palette onto it once
// before the program starts and components read it directly.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"peruse/internal/config"
)

// Theme defines the core UI styles
var Theme struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Directory   lipgloss.Style
	File        lipgloss.Style
	Muted       lipgloss.Style
	Help        lipgloss.Style
	Pending     lipgloss.Style
	Error       lipgloss.Style
	FocusedPane lipgloss.Style
	BlurredPane lipgloss.Style
}

func init() {
	Apply(config.GetTheme("default"))
}

// Apply maps a color palette onto the style set. Focused panes borrow the
// warning color so the active border stands out against the resting one.
func Apply(p config.Palette) {
	Theme.App = lipgloss.NewStyle()
	Theme.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Primary)).
		Padding(0, 1)
	Theme.Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color(p.Emphasis))
	Theme.Directory = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Success))
	Theme.File = lipgloss.NewStyle()
	Theme.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	Theme.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Info))
	Theme.Pending = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Warning))
	Theme.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Error))
	Theme.FocusedPane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Warning))
	Theme.BlurredPane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border))
}
