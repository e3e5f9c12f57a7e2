// Package loading renders the busy overlay shown while an authentication
// action is in flight.
package loading

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// DefaultMessage is shown under the spinner
const DefaultMessage = "Please wait..."

// Indicator is a binary busy overlay. Show and Hide are not counted: one Hide
// undoes any number of Show calls.
type Indicator struct {
	spinner spinner.Model
	visible bool
	message string
	styles  *styles.Styles
}

// New creates a hidden indicator
func New(s *styles.Styles) *Indicator {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.LoadingSpinner

	return &Indicator{
		spinner: sp,
		message: DefaultMessage,
		styles:  s,
	}
}

// Show makes the overlay visible. It returns the spinner tick only on the
// hidden to visible transition; a repeated Show returns nil.
func (i *Indicator) Show() tea.Cmd {
	if i.visible {
		return nil
	}
	i.visible = true
	return i.spinner.Tick
}

// Hide removes the overlay. Hiding a hidden indicator does nothing.
func (i *Indicator) Hide() {
	i.visible = false
}

// Visible reports whether the overlay is shown
func (i *Indicator) Visible() bool {
	return i.visible
}

// SetMessage changes the text under the spinner
func (i *Indicator) SetMessage(message string) {
	i.message = message
}

// Update advances the spinner while visible. Ticks arriving after Hide are
// dropped, which stops the animation loop.
func (i *Indicator) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !i.visible {
		return nil
	}
	var cmd tea.Cmd
	i.spinner, cmd = i.spinner.Update(tick)
	return cmd
}

// View renders the overlay box, or an empty string while hidden
func (i *Indicator) View() string {
	if !i.visible {
		return ""
	}
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		i.spinner.View(),
		i.message,
	)
	return i.styles.Loading.Render(content)
}

// Place centers the overlay in a width x height area
func (i *Indicator) Place(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, i.View())
}
