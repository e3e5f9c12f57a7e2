// Package form builds the login and signup containers from declarative specs.
// Controls are addressed by logical name, never by position in the render.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// ControlKind identifies what kind of control holds focus
type ControlKind int

const (
	KindInput ControlKind = iota
	KindCheckbox
	KindSubmit
	KindButton
)

// String returns the string representation of the kind
func (k ControlKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindCheckbox:
		return "checkbox"
	case KindSubmit:
		return "submit"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// SubmitName is the control name of the submit button
const SubmitName = "submit"

// Control is one stop in the focus ring
type Control struct {
	Kind ControlKind
	Name string
}

// ButtonGroup places a button in the layout
type ButtonGroup int

const (
	// GroupInline buttons render as links right under the checkboxes
	GroupInline ButtonGroup = iota
	// GroupSocial buttons render in a row under the divider
	GroupSocial
	// GroupFooter buttons render as links at the bottom
	GroupFooter
)

// InputSpec declares a text field
type InputSpec struct {
	Name        string
	Label       string
	Placeholder string
	Password    bool
	CharLimit   int
}

// CheckboxSpec declares a checkbox
type CheckboxSpec struct {
	Name  string
	Label string
}

// ButtonSpec declares an action button
type ButtonSpec struct {
	Name  string
	Label string
	Group ButtonGroup
}

// Spec declares a form container
type Spec struct {
	Mode        types.FormMode
	Title       string
	Subtitle    string
	SubmitLabel string
	BusyLabel   string
	Inputs      []InputSpec
	Checkboxes  []CheckboxSpec
	Buttons     []ButtonSpec
}

// Form is one mode's container: its controls, focus ring, busy affordance
// and visibility
type Form struct {
	spec    Spec
	inputs  []*Input
	checks  []*Checkbox
	ring    []Control
	focus   int
	busy    bool
	visible bool
	styles  *styles.Styles
}

// New builds a hidden form from spec. Nothing is focused until FocusFirst.
func New(spec Spec, s *styles.Styles) *Form {
	f := &Form{
		spec:   spec,
		focus:  -1,
		styles: s,
	}

	for _, in := range spec.Inputs {
		f.inputs = append(f.inputs, newInput(in))
		f.ring = append(f.ring, Control{Kind: KindInput, Name: in.Name})
	}
	for _, cb := range spec.Checkboxes {
		f.checks = append(f.checks, &Checkbox{name: cb.Name, label: cb.Label})
		f.ring = append(f.ring, Control{Kind: KindCheckbox, Name: cb.Name})
	}
	f.ring = append(f.ring, Control{Kind: KindSubmit, Name: SubmitName})
	for _, b := range spec.Buttons {
		f.ring = append(f.ring, Control{Kind: KindButton, Name: b.Name})
	}

	return f
}

// Mode returns the mode this form serves
func (f *Form) Mode() types.FormMode { return f.spec.Mode }

// Input returns the named input, or nil
func (f *Form) Input(name string) *Input {
	for _, in := range f.inputs {
		if in.name == name {
			return in
		}
	}
	return nil
}

// Inputs returns the inputs in declaration order
func (f *Form) Inputs() []*Input { return f.inputs }

// Checkbox returns the named checkbox, or nil
func (f *Form) Checkbox(name string) *Checkbox {
	for _, cb := range f.checks {
		if cb.name == name {
			return cb
		}
	}
	return nil
}

// Checkboxes returns the checkboxes in declaration order
func (f *Form) Checkboxes() []*Checkbox { return f.checks }

// Value returns the raw value of the named input, or "" if there is none
func (f *Form) Value(name string) string {
	if in := f.Input(name); in != nil {
		return in.Value()
	}
	return ""
}

// Checked reports the named checkbox, false if there is none
func (f *Form) Checked(name string) bool {
	if cb := f.Checkbox(name); cb != nil {
		return cb.Checked()
	}
	return false
}

// Controls returns the focus ring
func (f *Form) Controls() []Control { return f.ring }

// Focused returns the control holding focus
func (f *Form) Focused() (Control, bool) {
	if f.focus < 0 || f.focus >= len(f.ring) {
		return Control{}, false
	}
	return f.ring[f.focus], true
}

// FocusedInput returns the input holding focus, or nil
func (f *Form) FocusedInput() *Input {
	c, ok := f.Focused()
	if !ok || c.Kind != KindInput {
		return nil
	}
	return f.Input(c.Name)
}

// AnyInputFocused reports whether any input carries the focused tag
func (f *Form) AnyInputFocused() bool {
	for _, in := range f.inputs {
		if in.focused {
			return true
		}
	}
	return false
}

// FocusFirst focuses the first control of the ring
func (f *Form) FocusFirst() tea.Cmd {
	return f.setFocus(0)
}

// FocusNext moves focus forward, wrapping around
func (f *Form) FocusNext() tea.Cmd {
	if len(f.ring) == 0 {
		return nil
	}
	return f.setFocus((f.focus + 1) % len(f.ring))
}

// FocusPrev moves focus backward, wrapping around
func (f *Form) FocusPrev() tea.Cmd {
	if len(f.ring) == 0 {
		return nil
	}
	if f.focus < 0 {
		return f.setFocus(len(f.ring) - 1)
	}
	return f.setFocus((f.focus - 1 + len(f.ring)) % len(f.ring))
}

// FocusControl focuses the named control. Unknown names are ignored.
func (f *Form) FocusControl(name string) tea.Cmd {
	for idx, c := range f.ring {
		if c.Name == name {
			return f.setFocus(idx)
		}
	}
	return nil
}

// Blur drops focus from every control
func (f *Form) Blur() {
	f.setFocus(-1)
}

func (f *Form) setFocus(idx int) tea.Cmd {
	for _, in := range f.inputs {
		in.blur()
	}
	f.focus = idx

	if in := f.FocusedInput(); in != nil {
		return in.focus()
	}
	return nil
}

// Clear empties every input, unchecks every checkbox and drops the focused
// and has-value tags of every input
func (f *Form) Clear() {
	for _, in := range f.inputs {
		in.clear()
	}
	for _, cb := range f.checks {
		cb.SetChecked(false)
	}
	f.focus = -1
}

// TogglePassword flips every password input between masked and plain echo
// and returns the new revealed state
func (f *Form) TogglePassword() bool {
	revealed := !f.PasswordRevealed()
	for _, in := range f.inputs {
		in.setRevealed(revealed)
	}
	return revealed
}

// PasswordRevealed reports whether password inputs echo plain text
func (f *Form) PasswordRevealed() bool {
	for _, in := range f.inputs {
		if in.password {
			return in.revealed
		}
	}
	return false
}

// SetBusy switches the submit busy affordance
func (f *Form) SetBusy(busy bool) { f.busy = busy }

// Busy reports the submit busy affordance
func (f *Form) Busy() bool { return f.busy }

// Show makes the container visible
func (f *Form) Show() { f.visible = true }

// Hide hides the container
func (f *Form) Hide() { f.visible = false }

// Visible reports whether the container is shown
func (f *Form) Visible() bool { return f.visible }

// Update forwards msg to the focused input
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	in := f.FocusedInput()
	if in == nil {
		return nil
	}
	return in.update(msg)
}

// View renders the container content at the given width. divider is the
// caption above the social buttons.
func (f *Form) View(width int, divider string) string {
	s := f.styles
	focused, _ := f.Focused()

	sections := []string{s.Title.Render(f.spec.Title)}
	if f.spec.Subtitle != "" {
		sections = append(sections, s.Subtitle.Render(f.spec.Subtitle))
	}
	sections = append(sections, "")

	// label column plus the box padding
	fieldWidth := width - styles.InputLabelWidth - 2
	for _, in := range f.inputs {
		in.setWidth(fieldWidth - 1)
		sections = append(sections, in.view(s, width))
	}

	for _, cb := range f.checks {
		sections = append(sections, cb.view(s, focused.Kind == KindCheckbox && focused.Name == cb.name))
	}

	if inline := f.renderButtons(GroupInline, focused); inline != "" {
		sections = append(sections, inline)
	}

	sections = append(sections, "", f.renderSubmit(focused))

	if social := f.renderButtons(GroupSocial, focused); social != "" {
		sections = append(sections, renderDivider(s, divider, width), social)
	}

	if footer := f.renderButtons(GroupFooter, focused); footer != "" {
		sections = append(sections, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (f *Form) renderSubmit(focused Control) string {
	s := f.styles
	switch {
	case f.busy:
		label := f.spec.BusyLabel
		if label == "" {
			label = f.spec.SubmitLabel
		}
		return s.SubmitDisabled.Render(label)
	case focused.Kind == KindSubmit:
		return s.SubmitFocused.Render(f.spec.SubmitLabel)
	default:
		return s.Submit.Render(f.spec.SubmitLabel)
	}
}

func (f *Form) renderButtons(group ButtonGroup, focused Control) string {
	s := f.styles
	var rendered []string
	for _, b := range f.spec.Buttons {
		if b.Group != group {
			continue
		}
		isFocused := focused.Kind == KindButton && focused.Name == b.Name

		style := s.Link
		if group == GroupSocial {
			style = s.Button
			if isFocused {
				style = s.ButtonFocused
			}
		} else if isFocused {
			style = s.LinkFocused
		}
		rendered = append(rendered, style.Render(b.Label))
	}
	if len(rendered) == 0 {
		return ""
	}
	return strings.Join(rendered, "  ")
}

func renderDivider(s *styles.Styles, caption string, width int) string {
	if caption == "" {
		return s.Divider.Render(strings.Repeat("─", width))
	}
	side := max((width-lipgloss.Width(caption)-2)/2, 2)
	rule := strings.Repeat("─", side)
	return s.Divider.Render(rule + " " + caption + " " + rule)
}
