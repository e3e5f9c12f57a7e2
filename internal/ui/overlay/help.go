package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyCategory groups key bindings under a heading
type KeyCategory struct {
	Name     string
	Bindings []key.Binding
}

// keyColumn is the width of the key column in the listing
const keyColumn = 12

// helpKeys are the bindings the help overlay itself answers to
var helpKeys = struct {
	Close, Down, Up, Top, Bottom key.Binding
}{
	Close:  key.NewBinding(key.WithKeys("esc", "q", "?", "f1")),
	Down:   key.NewBinding(key.WithKeys("j", "down")),
	Up:     key.NewBinding(key.WithKeys("k", "up")),
	Top:    key.NewBinding(key.WithKeys("g", "home")),
	Bottom: key.NewBinding(key.WithKeys("G", "end")),
}

// HelpOverlay lists key bindings by category, scrolling when they do not fit
type HelpOverlay struct {
	categories []KeyCategory
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a help overlay listing the given categories.
// Disabled bindings are left out.
func NewHelpOverlay(categories []KeyCategory) *HelpOverlay {
	return &HelpOverlay{
		categories: categories,
		styles:     DefaultStyles(),
		viewHeight: 16,
	}
}

// Init implements tea.Model
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update scrolls the listing or closes the overlay
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch {
	case key.Matches(keyMsg, helpKeys.Close):
		return h, Close
	case key.Matches(keyMsg, helpKeys.Down):
		h.scroll = min(h.scroll+1, h.maxScroll)
	case key.Matches(keyMsg, helpKeys.Up):
		h.scroll = max(h.scroll-1, 0)
	case key.Matches(keyMsg, helpKeys.Top):
		h.scroll = 0
	case key.Matches(keyMsg, helpKeys.Bottom):
		h.scroll = h.maxScroll
	}

	return h, nil
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for _, cat := range h.categories {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.Heading.Render(cat.Name))

		for _, b := range cat.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			lines = append(lines, "  "+h.styles.Key.Width(keyColumn).Render(help.Key)+h.styles.Desc.Render(help.Desc))
		}
	}
	return lines
}

// View renders the visible window of the listing
func (h *HelpOverlay) View() string {
	lines := h.lines()
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	view := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		view += "\n" + h.styles.Hint.Render("j/k scroll, g/G top and bottom")
	}
	return view
}

// Title implements Overlay
func (h *HelpOverlay) Title() string {
	return "Keyboard shortcuts"
}

// Size implements Overlay
func (h *HelpOverlay) Size() (width, height int) {
	return 50, h.viewHeight + 6
}
