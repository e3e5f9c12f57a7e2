package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/types"
)

// InputLabelWidth is the column reserved for input labels
const InputLabelWidth = 12

// Styles holds all the UI styles
type Styles struct {
	// Form container
	Container     lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Divider       lipgloss.Style
	Link          lipgloss.Style
	LinkFocused   lipgloss.Style
	ModeTab       lipgloss.Style
	ModeTabActive lipgloss.Style

	// Inputs
	InputLabel        lipgloss.Style
	InputLabelFocused lipgloss.Style
	InputBox          lipgloss.Style
	InputBoxFocused   lipgloss.Style
	InputBoxFilled    lipgloss.Style

	// Checkboxes
	Checkbox        lipgloss.Style
	CheckboxFocused lipgloss.Style

	// Buttons
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	Submit         lipgloss.Style
	SubmitFocused  lipgloss.Style
	SubmitDisabled lipgloss.Style

	// Busy overlay
	Loading        lipgloss.Style
	LoadingSpinner lipgloss.Style

	// Avatar
	Avatar      lipgloss.Style
	AvatarEye   lipgloss.Style
	AvatarHands lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
	ToastExiting lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Container: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(Subtext0),

		Divider: lipgloss.NewStyle().
			Foreground(Overlay1),

		Link: lipgloss.NewStyle().
			Foreground(Sapphire).
			Underline(true),

		LinkFocused: lipgloss.NewStyle().
			Foreground(Base).
			Background(Sapphire).
			Bold(true),

		ModeTab: lipgloss.NewStyle().
			Foreground(Overlay1).
			Padding(0, 2),

		ModeTabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Lavender).
			Bold(true).
			Padding(0, 2),

		InputLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Width(InputLabelWidth),

		InputLabelFocused: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Width(InputLabelWidth),

		InputBox: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext1).
			Padding(0, 1),

		InputBoxFocused: lipgloss.NewStyle().
			Background(Surface1).
			Foreground(Text).
			Padding(0, 1),

		InputBoxFilled: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Text).
			Padding(0, 1),

		Checkbox: lipgloss.NewStyle().
			Foreground(Subtext0),

		CheckboxFocused: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Padding(0, 1),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(Base).
			Background(Lavender).
			Bold(true).
			Padding(0, 1),

		Submit: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 2),

		SubmitFocused: lipgloss.NewStyle().
			Foreground(Base).
			Background(Sapphire).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		SubmitDisabled: lipgloss.NewStyle().
			Foreground(Overlay0).
			Background(Surface0).
			Padding(0, 2),

		Loading: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Mauve).
			Background(Base).
			Foreground(Text).
			Padding(1, 3),

		LoadingSpinner: lipgloss.NewStyle().
			Foreground(Mauve),

		Avatar: lipgloss.NewStyle().
			Foreground(Peach),

		AvatarEye: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		AvatarHands: lipgloss.NewStyle().
			Foreground(Flamingo),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo:    toastStyle(ToastColors[types.ToastInfo]),
		ToastSuccess: toastStyle(ToastColors[types.ToastSuccess]),
		ToastWarning: toastStyle(ToastColors[types.ToastWarning]),
		ToastError:   toastStyle(ToastColors[types.ToastError]),

		ToastExiting: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Foreground(Overlay0).
			Padding(0, 1),
	}
}

func toastStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
}

// Toast returns the style for a toast kind
func (s *Styles) Toast(kind types.ToastKind) lipgloss.Style {
	switch kind {
	case types.ToastSuccess:
		return s.ToastSuccess
	case types.ToastWarning:
		return s.ToastWarning
	case types.ToastError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}

// Mode returns the status bar badge style for a form mode
func (s *Styles) Mode(mode types.FormMode) lipgloss.Style {
	color, ok := ModeColors[mode]
	if !ok {
		color = Blue
	}
	return s.StatusMode.Background(color)
}
