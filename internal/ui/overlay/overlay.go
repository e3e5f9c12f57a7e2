// Package overlay manages modal views drawn over the form, such as the key
// reference.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// Close is a command that closes the current overlay
func Close() tea.Msg {
	return CloseOverlayMsg{}
}
