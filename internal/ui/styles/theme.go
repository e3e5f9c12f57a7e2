package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/types"
)

// The subset of Catppuccin Macchiato the forms draw with
var (
	// Backgrounds and text, darkest first
	Mantle   = lipgloss.Color("#1e2030")
	Base     = lipgloss.Color("#24273a")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accents
	Mauve    = lipgloss.Color("#c6a0f6")
	Lavender = lipgloss.Color("#b7bdf8")
	Blue     = lipgloss.Color("#8aadf4")
	Sapphire = lipgloss.Color("#7dc4e4")
	Green    = lipgloss.Color("#a6da95")
	Yellow   = lipgloss.Color("#eed49f")
	Peach    = lipgloss.Color("#f5a97f")
	Flamingo = lipgloss.Color("#f0c6c6")
	Red      = lipgloss.Color("#ed8796")
)

// ToastColors maps toast kinds to their accent
var ToastColors = map[types.ToastKind]lipgloss.Color{
	types.ToastInfo:    Blue,
	types.ToastSuccess: Green,
	types.ToastWarning: Yellow,
	types.ToastError:   Red,
}

// ModeColors maps form modes to the status bar badge color
var ModeColors = map[types.FormMode]lipgloss.Color{
	types.ModeLogin:  Blue,
	types.ModeSignup: Mauve,
}
