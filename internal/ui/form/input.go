package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
)

// Input wraps a text input with the focused and has-value presentation tags
// of its container
type Input struct {
	name     string
	label    string
	password bool
	revealed bool
	model    textinput.Model

	focused  bool
	hasValue bool
}

func newInput(spec InputSpec) *Input {
	ti := textinput.New()
	ti.Placeholder = spec.Placeholder
	ti.CharLimit = spec.CharLimit
	if ti.CharLimit == 0 {
		ti.CharLimit = 128
	}
	ti.Prompt = ""
	if spec.Password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return &Input{
		name:     spec.Name,
		label:    spec.Label,
		password: spec.Password,
		model:    ti,
	}
}

// Name returns the logical field name
func (i *Input) Name() string { return i.name }

// Label returns the human label
func (i *Input) Label() string { return i.label }

// Value returns the raw, untrimmed value
func (i *Input) Value() string { return i.model.Value() }

// SetValue replaces the value and refreshes the has-value tag
func (i *Input) SetValue(v string) {
	i.model.SetValue(v)
	i.hasValue = v != ""
}

// Focused reports the focused presentation tag
func (i *Input) Focused() bool { return i.focused }

// HasValue reports the has-value presentation tag
func (i *Input) HasValue() bool { return i.hasValue }

// Revealed reports whether a password input currently echoes plain text
func (i *Input) Revealed() bool { return i.revealed }

func (i *Input) focus() tea.Cmd {
	i.focused = true
	return i.model.Focus()
}

func (i *Input) blur() {
	i.focused = false
	i.model.Blur()
}

// setRevealed switches a password input between masked and plain echo
func (i *Input) setRevealed(revealed bool) {
	if !i.password {
		return
	}
	i.revealed = revealed
	if revealed {
		i.model.EchoMode = textinput.EchoNormal
	} else {
		i.model.EchoMode = textinput.EchoPassword
	}
}

// clear empties the value and drops both presentation tags
func (i *Input) clear() {
	i.model.Reset()
	i.blur()
	i.hasValue = false
}

func (i *Input) setWidth(w int) {
	i.model.Width = max(w, 1)
}

func (i *Input) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	i.hasValue = i.model.Value() != ""
	return cmd
}

func (i *Input) view(s *styles.Styles, width int) string {
	label := s.InputLabel
	box := s.InputBox
	switch {
	case i.focused:
		label = s.InputLabelFocused
		box = s.InputBoxFocused
	case i.hasValue:
		box = s.InputBoxFilled
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label.Render(i.label),
		box.Width(max(width-styles.InputLabelWidth, 4)).Render(i.model.View()),
	)
}
