package form

import "github.com/riordanpawley/visioncraft/internal/ui/styles"

// Checkbox is a labelled boolean control
type Checkbox struct {
	name    string
	label   string
	checked bool
}

// Name returns the logical field name
func (c *Checkbox) Name() string { return c.name }

// Label returns the human label
func (c *Checkbox) Label() string { return c.label }

// Checked reports the current state
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the state
func (c *Checkbox) SetChecked(checked bool) { c.checked = checked }

// Toggle flips the state
func (c *Checkbox) Toggle() { c.checked = !c.checked }

func (c *Checkbox) view(s *styles.Styles, focused bool) string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	style := s.Checkbox
	if focused {
		style = s.CheckboxFocused
	}
	return style.Render(box + " " + c.label)
}
