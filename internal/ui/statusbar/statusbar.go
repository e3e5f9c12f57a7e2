package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// BusyText is shown while the current mode has a submission in flight
const BusyText = "working..."

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.FormMode
	busy   bool
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, busy flag, width, and styles
func New(mode types.FormMode, busy bool, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		busy:   busy,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.Mode(sb.mode).Render(sb.mode.Label())
	separator := sb.styles.StatusHint.Render(" │ ")

	parts := []string{modeBadge}
	if sb.busy {
		parts = append(parts, separator, sb.styles.StatusInfo.Render(BusyText))
	}
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}
