// Package avatar draws the decorative monkey that follows the mouse pointer
// over its form container and covers its eyes while passwords are shown.
//
// The avatar is optional: when it is disabled or has no geometry every
// operation is a no-op.
package avatar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// Rect is a screen area in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle cell
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Options tunes eye movement
type Options struct {
	Enabled bool
	// MaxMove bounds the eye offset in cells along each axis
	MaxMove int
	// DivisorX and DivisorY scale the pointer distance from the face center
	DivisorX int
	DivisorY int
}

// DefaultOptions returns the stock settings
func DefaultOptions() Options {
	return Options{Enabled: true, MaxMove: 1, DivisorX: 8, DivisorY: 4}
}

// Avatar is one form container's monkey
type Avatar struct {
	opts      Options
	container Rect
	face      Rect
	tracking  bool
	blind     bool
	eyeX      int
	eyeY      int
	styles    *styles.Styles
}

// New creates an avatar with no geometry
func New(opts Options, s *styles.Styles) *Avatar {
	if opts.DivisorX <= 0 {
		opts.DivisorX = 1
	}
	if opts.DivisorY <= 0 {
		opts.DivisorY = 1
	}
	if opts.MaxMove < 0 {
		opts.MaxMove = 0
	}
	return &Avatar{opts: opts, styles: s}
}

// SetGeometry records where the container and the face were drawn. An empty
// face disables the avatar until the next call.
func (a *Avatar) SetGeometry(container, face Rect) {
	a.container = container
	a.face = face
	if !a.Active() {
		a.tracking = false
		a.eyeX, a.eyeY = 0, 0
	}
}

// Active reports whether the avatar reacts to input
func (a *Avatar) Active() bool {
	return a.opts.Enabled && !a.face.Empty()
}

// Tracking reports whether the pointer is inside the container
func (a *Avatar) Tracking() bool { return a.tracking }

// Blind reports whether the hands cover the eyes
func (a *Avatar) Blind() bool { return a.blind }

// Eyes returns the current eye offset
func (a *Avatar) Eyes() (int, int) { return a.eyeX, a.eyeY }

// Pointer handles a pointer motion to (x, y). Entering the container starts
// tracking, leaving it stops tracking and resets the eyes.
func (a *Avatar) Pointer(x, y int) {
	if !a.Active() {
		return
	}

	inside := a.container.Contains(x, y)
	if !inside {
		if a.tracking {
			a.tracking = false
			a.Reset()
		}
		return
	}
	a.tracking = true

	if a.blind {
		return
	}

	cx, cy := a.face.Center()
	a.eyeX = clamp((x-cx)/a.opts.DivisorX, a.opts.MaxMove)
	a.eyeY = clamp((y-cy)/a.opts.DivisorY, a.opts.MaxMove)
}

// Click toggles the hands when (x, y) hits the face. It reports whether the
// click was consumed.
func (a *Avatar) Click(x, y int) bool {
	if !a.Active() || !a.face.Contains(x, y) {
		return false
	}
	a.ToggleBlind()
	return true
}

// ToggleBlind flips the hands over the eyes
func (a *Avatar) ToggleBlind() {
	if !a.Active() {
		return
	}
	a.blind = !a.blind
}

// SetBlind sets the hands state
func (a *Avatar) SetBlind(blind bool) {
	if !a.Active() {
		return
	}
	a.blind = blind
}

// LookDown points the eyes at the form while an input has focus
func (a *Avatar) LookDown() {
	if !a.Active() || a.blind {
		return
	}
	a.eyeX, a.eyeY = 0, a.opts.MaxMove
}

// Reset centers the eyes
func (a *Avatar) Reset() {
	a.eyeX, a.eyeY = 0, 0
}

func clamp(v, limit int) int {
	return max(-limit, min(limit, v))
}

// Height is the number of rows View renders
const Height = 4

// Width returns the number of columns View renders
func (a *Avatar) Width() int {
	return lipgloss.Width(a.render())
}

// View renders the face, or an empty string when disabled
func (a *Avatar) View() string {
	if !a.opts.Enabled {
		return ""
	}
	return a.render()
}

func (a *Avatar) render() string {
	s := a.styles
	socket := 2*a.opts.MaxMove + 1

	var eyes string
	if a.blind {
		hands := s.AvatarHands.Render(strings.Repeat("#", socket))
		eyes = hands + " " + hands
	} else {
		eye := s.AvatarEye.Render(a.eye(socket))
		eyes = eye + " " + eye
	}

	inner := 2*socket + 1
	lines := []string{
		s.Avatar.Render(" .-" + strings.Repeat("\"", inner) + "-. "),
		s.Avatar.Render("@( ") + eyes + s.Avatar.Render(" )@"),
		s.Avatar.Render(" \\" + center("._.", inner+2) + "/ "),
		s.Avatar.Render("  '" + strings.Repeat("-", inner) + "'  "),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// eye renders one socket with the pupil shifted by the eye offset
func (a *Avatar) eye(socket int) string {
	pupil := "o"
	switch {
	case a.eyeY < 0:
		pupil = "°"
	case a.eyeY > 0:
		pupil = "."
	}
	cells := []rune(strings.Repeat(" ", socket))
	pos := a.opts.MaxMove + a.eyeX
	var b strings.Builder
	b.WriteString(string(cells[:pos]))
	b.WriteString(pupil)
	b.WriteString(string(cells[pos+1:]))
	return b.String()
}

func center(text string, width int) string {
	pad := max(width-lipgloss.Width(text), 0)
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
