package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/visioncraft/internal/ui/overlay"
)

// keyMap holds every global binding. Anything not matched here is typed into
// the focused input.
type keyMap struct {
	Submit         key.Binding
	Activate       key.Binding
	Next           key.Binding
	Prev           key.Binding
	SwitchMode     key.Binding
	Clear          key.Binding
	TogglePassword key.Binding
	Dismiss        key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit, or press the focused control"),
		),
		Activate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle checkbox / press button"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Switch sign in / sign up"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear both forms"),
		),
		TogglePassword: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Show / hide password"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Dismiss oldest notification"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Keyboard shortcuts"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
	}
}

// helpCategories groups the bindings for the help overlay
func (k keyMap) helpCategories() []overlay.KeyCategory {
	return []overlay.KeyCategory{
		{
			Name:     "Form",
			Bindings: []key.Binding{k.Submit, k.Activate, k.Next, k.Prev, k.TogglePassword},
		},
		{
			Name:     "Modes",
			Bindings: []key.Binding{k.SwitchMode, k.Clear},
		},
		{
			Name:     "Other",
			Bindings: []key.Binding{k.Dismiss, k.Help, k.Quit},
		},
	}
}
