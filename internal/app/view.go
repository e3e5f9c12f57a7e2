package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/avatar"
	"github.com/riordanpawley/visioncraft/internal/ui/statusbar"
)

const (
	maxFormWidth = 50
	minFormWidth = 40
	// tabsHeight is the tab row plus the blank line under it
	tabsHeight = 2
	// containerChrome is the border plus horizontal padding of the container
	containerChromeX = 2 + 4
	containerChromeY = 2
	// avatarGap is the blank line between the avatar and the form
	avatarGap = 1
)

// screenLayout is where the main view draws things, in terminal cells
type screenLayout struct {
	formWidth  int
	container  avatar.Rect
	face       avatar.Rect
	showAvatar bool
	tabs       map[types.FormMode]avatar.Rect
}

func (l screenLayout) tabAt(x, y int) (types.FormMode, bool) {
	for mode, r := range l.tabs {
		if r.Contains(x, y) {
			return mode, true
		}
	}
	return types.ModeLogin, false
}

// tabOrder lists the mode tabs in display order
var tabOrder = []types.FormMode{types.ModeLogin, types.ModeSignup}

func (m Model) renderTab(mode types.FormMode) string {
	style := m.styles.ModeTab
	if mode == m.mode {
		style = m.styles.ModeTabActive
	}
	return style.Render(mode.Label())
}

// layout computes the geometry View uses. The avatar is dropped when the
// terminal is too short to hold it above the form.
func (m Model) layout() screenLayout {
	l := screenLayout{tabs: map[types.FormMode]avatar.Rect{}}
	if m.width == 0 || m.height == 0 {
		return l
	}

	l.formWidth = min(maxFormWidth, max(minFormWidth, m.width-containerChromeX-2))
	containerWidth := l.formWidth + containerChromeX

	formHeight := lipgloss.Height(m.activeForm().View(l.formWidth, m.caption))
	bodyHeight := m.height - 1 - tabsHeight
	containerHeight := formHeight + containerChromeY

	av := m.avatars[m.mode]
	faceWidth := av.Width()
	l.showAvatar = m.cfg.Avatar.Enabled &&
		containerHeight+avatar.Height+avatarGap <= bodyHeight &&
		faceWidth <= l.formWidth
	if l.showAvatar {
		containerHeight += avatar.Height + avatarGap
	}

	x0 := max((m.width-containerWidth)/2, 0)
	l.container = avatar.Rect{X: x0, Y: tabsHeight, W: containerWidth, H: containerHeight}
	if l.showAvatar {
		l.face = avatar.Rect{
			X: x0 + 1 + 2 + (l.formWidth-faceWidth)/2,
			Y: tabsHeight + 1,
			W: faceWidth,
			H: avatar.Height,
		}
	}

	// Tabs are centered on the first row, separated by one space
	tabsWidth := 0
	for i, mode := range tabOrder {
		if i > 0 {
			tabsWidth++
		}
		tabsWidth += lipgloss.Width(m.renderTab(mode))
	}
	x := max((m.width-tabsWidth)/2, 0)
	for _, mode := range tabOrder {
		w := lipgloss.Width(m.renderTab(mode))
		l.tabs[mode] = avatar.Rect{X: x, Y: 0, W: w, H: 1}
		x += w + 1
	}

	return l
}

// mainVisible reports whether the tabs and the active container are drawn,
// rather than an overlay or the busy indicator
func (m Model) mainVisible() bool {
	return m.overlayStack.IsEmpty() && !m.loading.Visible()
}

// syncAvatars hands the current geometry to the avatars. Only the active
// mode's avatar is on screen, and only while the main view is drawn.
func (m Model) syncAvatars() {
	l := m.layout()
	for mode, av := range m.avatars {
		if mode == m.mode && l.showAvatar && m.mainVisible() {
			av.SetGeometry(l.container, l.face)
		} else {
			av.SetGeometry(avatar.Rect{}, avatar.Rect{})
		}
	}
}

// View renders the model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	bodyHeight := m.height - 1

	var body string
	switch {
	case !m.overlayStack.IsEmpty():
		body = m.overlayStack.Render(m.width, bodyHeight)
	case m.loading.Visible():
		body = m.loading.Place(m.width, bodyHeight)
	default:
		body = m.renderMain()
	}

	body = clip(lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, body), bodyHeight)

	if toasts := m.toastRenderer.Render(m.toasts.Toasts(), m.width); toasts != "" {
		body = overlayTopRight(body, toasts, m.width)
	}

	sb := statusbar.New(m.mode, m.busy[m.mode], m.width, m.styles)
	return lipgloss.JoinVertical(lipgloss.Left, body, sb.Render())
}

// renderMain draws the mode tabs and the active container
func (m Model) renderMain() string {
	l := m.layout()

	tabs := make([]string, 0, len(tabOrder))
	for _, mode := range tabOrder {
		tabs = append(tabs, m.renderTab(mode))
	}
	tabRow := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(tabs, " "))

	content := m.activeForm().View(l.formWidth, m.caption)
	if l.showAvatar {
		face := lipgloss.PlaceHorizontal(l.formWidth, lipgloss.Center, m.avatars[m.mode].View())
		content = lipgloss.JoinVertical(lipgloss.Left, face, "", content)
	}
	container := m.styles.Container.Width(l.formWidth + 4).Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tabRow,
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, container),
	)
}

// clip keeps at most n lines
func clip(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// overlayTopRight draws top over the right-hand end of the first lines of
// base
func overlayTopRight(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	topWidth := lipgloss.Width(top)
	left := max(width-topWidth-1, 0)

	for i, line := range topLines {
		if i >= len(baseLines) {
			break
		}
		kept := ansi.Truncate(baseLines[i], left, "")
		pad := max(left-ansi.StringWidth(kept), 0)
		baseLines[i] = kept + strings.Repeat(" ", pad) + line
	}
	return strings.Join(baseLines, "\n")
}
