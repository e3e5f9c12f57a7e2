package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// DefaultMaxWidth caps the toast width when the renderer is built without one
const DefaultMaxWidth = 40

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles   *styles.Styles
	maxWidth int
}

// New creates a new ToastRenderer with the given styles. A non-positive
// maxWidth uses DefaultMaxWidth.
func New(styles *styles.Styles, maxWidth int) *ToastRenderer {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &ToastRenderer{
		styles:   styles,
		maxWidth: maxWidth,
	}
}

// Render renders a stack of toasts for the top-right corner.
// Toasts still waiting to enter are skipped; exiting toasts are drawn faded.
// Returns empty string if no toasts to display
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	toastWidth := min(width/3, r.maxWidth)
	if toastWidth < 10 {
		toastWidth = min(width, 10)
	}

	var rendered []string
	for _, t := range toasts {
		switch t.State {
		case types.ToastVisible:
			style := r.styles.Toast(t.Kind)
			rendered = append(rendered, style.Width(toastWidth).Render(t.Kind.Icon()+" "+t.Message))
		case types.ToastPendingExit:
			rendered = append(rendered, r.styles.ToastExiting.Width(toastWidth).Render(t.Kind.Icon()+" "+t.Message))
		}
	}

	if len(rendered) == 0 {
		return ""
	}

	// Stack toasts vertically, aligned to the right
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
