package statusbar

import "github.com/riordanpawley/visioncraft/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.FormMode) string {
	switch mode {
	case types.ModeLogin:
		return "Enter: sign in  Tab: next  ^T: sign up  Esc: clear  F1: help"
	case types.ModeSignup:
		return "Enter: sign up  Tab: next  ^T: sign in  Esc: clear  F1: help"
	default:
		return ""
	}
}
