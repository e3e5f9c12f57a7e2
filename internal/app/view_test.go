package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/visioncraft/internal/config"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(config.DefaultConfig(), Dependencies{})
	assert.Equal(t, "Loading...", m.View())
}

func TestView_Login(t *testing.T) {
	h := newHarness(t)
	view := h.m.View()

	for _, want := range []string{
		"SIGN IN", "SIGN UP",
		"Welcome back",
		"Email", "Password", "Remember me", "Forgot password?",
		"Sign In",
		"or sign in with",
		"Google", "Apple", "LinkedIn", "GitHub",
		"Sign in with SSO", "Create an account",
		"Tab: next",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Create account")
}

func TestView_Signup(t *testing.T) {
	h := newHarness(t)
	h.drain(h.m.SwitchMode(types.ModeSignup))
	view := h.m.View()

	for _, want := range []string{
		"Create account",
		"First name", "Last name",
		"Terms",
		"Sign Up",
		"or sign up with",
		"Already have an account? Sign in",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Welcome back")
}

func TestView_FitsTerminal(t *testing.T) {
	sizes := []tea.WindowSizeMsg{
		{Width: 80, Height: 24},
		{Width: 100, Height: 40},
		{Width: 60, Height: 20},
		{Width: 200, Height: 50},
	}

	states := map[string]func(h *harness){
		"login":  func(*harness) {},
		"signup": func(h *harness) { h.drain(h.m.SwitchMode(types.ModeSignup)) },
		"help":   func(h *harness) { h.key(tea.KeyF1) },
		"toasts": func(h *harness) {
			h.key(tea.KeyEsc)
			h.key(tea.KeyCtrlT)
			h.key(tea.KeyCtrlT)
			h.advance(10 * time.Millisecond)
		},
		"busy": func(h *harness) {
			fillLogin(h, "x@y.com", "secret")
			h.drain(h.m.Submit(types.ModeLogin))
		},
	}

	for _, size := range sizes {
		for name, prepare := range states {
			t.Run(name, func(t *testing.T) {
				h := newHarness(t)
				h.send(size)
				prepare(h)

				view := h.m.View()
				assert.LessOrEqual(t, lipgloss.Height(view), size.Height,
					"%dx%d", size.Width, size.Height)
			})
		}
	}
}

func TestView_AvatarHiddenWhenShort(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 16})

	assert.False(t, h.m.layout().showAvatar)
	assert.False(t, h.m.Avatar(types.ModeLogin).Active())

	h.send(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.True(t, h.m.layout().showAvatar)
	assert.True(t, h.m.Avatar(types.ModeLogin).Active())
}

func TestView_AvatarDisabled(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Avatar.Enabled = false
	})

	assert.False(t, h.m.layout().showAvatar)
	assert.False(t, h.m.Avatar(types.ModeLogin).Active())
}

func TestView_Toast(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyEsc)

	assert.NotContains(t, h.m.View(), msgFormCleared, "hidden until the enter delay")

	h.advance(10 * time.Millisecond)
	assert.Contains(t, h.m.View(), msgFormCleared)
}

func TestView_Busy(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")
	h.drain(h.m.Submit(types.ModeLogin))

	view := h.m.View()
	assert.Contains(t, view, "Please wait...")
	assert.Contains(t, view, "working...")

	h.advance(2 * time.Second)
	view = h.m.View()
	assert.NotContains(t, view, "Please wait...")
	assert.Contains(t, view, "Welcome back")
}

func TestView_HelpOverlay(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyF1)

	view := h.m.View()
	assert.Contains(t, view, "Keyboard shortcuts")
	assert.Contains(t, view, "ctrl+t")
}

func TestLayout_TabsOnFirstRow(t *testing.T) {
	h := newHarness(t)
	l := h.m.layout()

	login, signup := l.tabs[types.ModeLogin], l.tabs[types.ModeSignup]
	assert.Zero(t, login.Y)
	assert.Zero(t, signup.Y)
	assert.Less(t, login.X+login.W, signup.X+1)

	firstRow := strings.Split(h.m.View(), "\n")[0]
	assert.Contains(t, firstRow, "SIGN IN")
	assert.Contains(t, firstRow, "SIGN UP")
}

func TestLayout_FaceInsideContainer(t *testing.T) {
	h := newHarness(t)
	l := h.m.layout()
	require.True(t, l.showAvatar)

	assert.True(t, l.container.Contains(l.face.X, l.face.Y))
	assert.True(t, l.container.Contains(l.face.X+l.face.W-1, l.face.Y+l.face.H-1))
}

func TestOverlayTopRight(t *testing.T) {
	base := strings.Join([]string{
		strings.Repeat("a", 20),
		strings.Repeat("b", 20),
		strings.Repeat("c", 20),
	}, "\n")

	got := strings.Split(overlayTopRight(base, "XY\nZW", 20), "\n")

	require.Len(t, got, 3)
	assert.Equal(t, strings.Repeat("a", 17)+"XY", got[0])
	assert.Equal(t, strings.Repeat("b", 17)+"ZW", got[1])
	assert.Equal(t, strings.Repeat("c", 20), got[2])
}

func TestClip(t *testing.T) {
	assert.Equal(t, "a\nb", clip("a\nb\nc", 2))
	assert.Equal(t, "a", clip("a", 3))
}
