package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// Styles are the overlay frame and the help listing styles
type Styles struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Key     lipgloss.Style
	Desc    lipgloss.Style
	Hint    lipgloss.Style
}

// DefaultStyles frames overlays in the form accent so they read as part of
// the same screen
func DefaultStyles() *Styles {
	return &Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Mauve).
			Background(styles.Mantle).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(styles.Mauve).
			Bold(true).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().
			Foreground(styles.Lavender).
			Underline(true),
		Key: lipgloss.NewStyle().
			Foreground(styles.Peach).
			Bold(true),
		Desc: lipgloss.NewStyle().
			Foreground(styles.Subtext1),
		Hint: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true).
			MarginTop(1),
	}
}
