package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stack manages a stack of overlays with push/pop operations
type Stack struct {
	overlays []Overlay
	styles   *Styles
}

// NewStack creates a new empty overlay stack
func NewStack() *Stack {
	return &Stack{
		overlays: make([]Overlay, 0),
		styles:   DefaultStyles(),
	}
}

// Push adds an overlay to the top of the stack
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop removes and returns the top overlay from the stack
// Returns nil if the stack is empty
func (s *Stack) Pop() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}

	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top
}

// Current returns the top overlay without removing it
// Returns nil if the stack is empty
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty returns true if the stack has no overlays
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Len returns the number of stacked overlays
func (s *Stack) Len() int {
	return len(s.overlays)
}

// Clear removes all overlays from the stack
func (s *Stack) Clear() {
	s.overlays = s.overlays[:0]
}

// Update forwards the message to the current overlay and handles CloseOverlayMsg
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	newModel, cmd := s.Current().Update(msg)
	if newOverlay, ok := newModel.(Overlay); ok && !s.IsEmpty() {
		s.overlays[len(s.overlays)-1] = newOverlay
	}

	return cmd
}

// Render frames the current overlay with its title and centers it in a
// width x height area. It returns an empty string when the stack is empty.
func (s *Stack) Render(width, height int) string {
	current := s.Current()
	if current == nil {
		return ""
	}

	view := current.View()
	if title := current.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, s.styles.Title.Render(title), view)
	}

	w, h := current.Size()
	frame := s.styles.Frame
	if w > 0 {
		frame = frame.Width(min(w, max(width-2, 1)))
	}
	if h > 0 {
		frame = frame.MaxHeight(max(height, 1))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame.Render(view))
}
