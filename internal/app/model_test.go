package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/visioncraft/internal/config"
	"github.com/riordanpawley/visioncraft/internal/domain"
	"github.com/riordanpawley/visioncraft/internal/services/validator"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillLogin(h *harness, email, password string) {
	h.setValue(types.ModeLogin, validator.FieldEmail, email)
	h.setValue(types.ModeLogin, validator.FieldPassword, password)
}

func fillSignup(h *harness, first, last, email, password string, terms bool) {
	h.setValue(types.ModeSignup, validator.FieldFirstName, first)
	h.setValue(types.ModeSignup, validator.FieldLastName, last)
	h.setValue(types.ModeSignup, validator.FieldEmail, email)
	h.setValue(types.ModeSignup, validator.FieldPassword, password)
	h.m.Form(types.ModeSignup).Checkbox(fieldAgreeTerms).SetChecked(terms)
}

func TestNew(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, types.ModeLogin, h.m.Mode())
	assert.True(t, h.m.Form(types.ModeLogin).Visible())
	assert.False(t, h.m.Form(types.ModeSignup).Visible())
	assert.Equal(t, "or sign in with", h.m.Caption())
	assert.False(t, h.m.Busy(types.ModeLogin))
	assert.False(t, h.m.Busy(types.ModeSignup))
	assert.False(t, h.m.Loading().Visible())
	assert.Zero(t, h.m.Toasts().Len())

	in := h.m.Form(types.ModeLogin).FocusedInput()
	require.NotNil(t, in)
	assert.Equal(t, validator.FieldEmail, in.Name())
}

func TestNew_InitialModeFromConfig(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.App.InitialMode = "signup"
	})

	assert.Equal(t, types.ModeSignup, h.m.Mode())
	assert.True(t, h.m.Form(types.ModeSignup).Visible())
	assert.False(t, h.m.Form(types.ModeLogin).Visible())
	assert.Equal(t, "or sign up with", h.m.Caption())
}

func TestNew_NilConfigAndDependencies(t *testing.T) {
	m := New(nil, Dependencies{})

	assert.Equal(t, types.ModeLogin, m.Mode())
	assert.NotNil(t, m.Toasts())
	assert.Equal(t, "Loading...", m.View())
}

func TestInit_WelcomeToast(t *testing.T) {
	h := newHarness(t)
	h.drain(h.m.Init())

	h.advance(490 * time.Millisecond)
	assert.Zero(t, h.m.Toasts().Len())

	h.advance(10 * time.Millisecond)
	toasts := h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, types.ToastInfo, toasts[0].Kind)
	assert.Equal(t, config.DefaultConfig().App.WelcomeMessage, toasts[0].Message)
}

func TestInit_NoWelcomeMessage(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.App.WelcomeMessage = ""
	})
	h.drain(h.m.Init())

	h.advance(time.Second)
	assert.Zero(t, h.m.Toasts().Len())
}

func TestSwitchMode(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")

	h.drain(h.m.SwitchMode(types.ModeSignup))

	assert.Equal(t, types.ModeSignup, h.m.Mode())
	assert.True(t, h.m.Form(types.ModeSignup).Visible())
	assert.False(t, h.m.Form(types.ModeLogin).Visible())
	assert.Equal(t, "or sign up with", h.m.Caption())
	assert.Equal(t, "x@y.com", h.m.Form(types.ModeLogin).Value(validator.FieldEmail))

	_, loginFocused := h.m.Form(types.ModeLogin).Focused()
	assert.False(t, loginFocused)
	in := h.m.Form(types.ModeSignup).FocusedInput()
	require.NotNil(t, in)
	assert.Equal(t, validator.FieldFirstName, in.Name())
}

func TestSwitchMode_Idempotent(t *testing.T) {
	h := newHarness(t)

	h.drain(h.m.SwitchMode(types.ModeSignup))
	h.m.Form(types.ModeSignup).FocusControl(fieldAgreeTerms)

	assert.Nil(t, h.m.SwitchMode(types.ModeSignup))
	assert.Equal(t, types.ModeSignup, h.m.Mode())
	assert.True(t, h.m.Form(types.ModeSignup).Visible())
	assert.False(t, h.m.Form(types.ModeLogin).Visible())

	c, ok := h.m.Form(types.ModeSignup).Focused()
	require.True(t, ok)
	assert.Equal(t, fieldAgreeTerms, c.Name, "switching to the active mode keeps focus")
}

func TestSwitchMode_UnknownModeIgnored(t *testing.T) {
	h := newHarness(t)

	assert.Nil(t, h.m.SwitchMode(types.FormMode(42)))
	assert.Equal(t, types.ModeLogin, h.m.Mode())
	assert.True(t, h.m.Form(types.ModeLogin).Visible())
}

func TestSwitchMode_KeepsBusyFlags(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")
	h.drain(h.m.Submit(types.ModeLogin))
	require.True(t, h.m.Busy(types.ModeLogin))

	h.drain(h.m.SwitchMode(types.ModeSignup))

	assert.True(t, h.m.Busy(types.ModeLogin))
	assert.False(t, h.m.Busy(types.ModeSignup))
}

func TestSwitchModeKey(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyCtrlT)
	assert.Equal(t, types.ModeSignup, h.m.Mode())
	toasts := h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, types.ToastInfo, toasts[0].Kind)
	assert.Equal(t, "Switched to signup mode", toasts[0].Message)

	h.key(tea.KeyCtrlT)
	assert.Equal(t, types.ModeLogin, h.m.Mode())
	toasts = h.toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "Switched to login mode", toasts[1].Message)
}

func TestLoginEndToEnd(t *testing.T) {
	h := newHarness(t)

	h.typeText("x@y.com")
	h.key(tea.KeyTab)
	h.typeText("secret")
	h.key(tea.KeyEnter)

	toasts := h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, types.ToastSuccess, toasts[0].Kind)
	assert.Equal(t, "Sign in feature Coming Soon!", toasts[0].Message)

	require.Len(t, h.auth.signIns, 1)
	assert.Equal(t, domain.Credentials{Email: "x@y.com", Password: "secret"}, h.auth.signIns[0])

	assert.True(t, h.m.Busy(types.ModeLogin))
	assert.True(t, h.m.Form(types.ModeLogin).Busy())
	assert.True(t, h.m.Loading().Visible())

	h.advance(1990 * time.Millisecond)
	assert.True(t, h.m.Busy(types.ModeLogin))

	h.advance(10 * time.Millisecond)
	assert.False(t, h.m.Busy(types.ModeLogin))
	assert.False(t, h.m.Form(types.ModeLogin).Busy())
	assert.False(t, h.m.Loading().Visible())
}

func TestLogin_RememberMe(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")
	h.m.Form(types.ModeLogin).Checkbox(fieldRemember).SetChecked(true)

	h.drain(h.m.Submit(types.ModeLogin))

	require.Len(t, h.auth.signIns, 1)
	assert.True(t, h.auth.signIns[0].Remember)
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"empty form", "", "", "Email is required"},
		{"blank email", "   ", "secret", "Email is required"},
		{"malformed email", "bad", "secret", "Please enter a valid email address"},
		{"missing password", "x@y.com", "", "Password is required"},
		{"short password", "x@y.com", "12345", "Password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			fillLogin(h, tt.email, tt.password)

			h.drain(h.m.Submit(types.ModeLogin))

			toasts := h.toasts()
			require.Len(t, toasts, 1)
			assert.Equal(t, types.ToastError, toasts[0].Kind)
			assert.Equal(t, tt.want, toasts[0].Message)
			assert.False(t, h.m.Busy(types.ModeLogin))
			assert.False(t, h.m.Loading().Visible())
			assert.Empty(t, h.auth.signIns)
		})
	}
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name                   string
		first, last, email, pw string
		terms                  bool
		want                   string
	}{
		{"empty first name", "", "Doe", "x@y.com", "secret", true, "First name is required"},
		{"blank first name", "  ", "Doe", "x@y.com", "secret", true, "First name is required"},
		{"empty last name", "Jane", "", "x@y.com", "secret", true, "Last name is required"},
		{"names before email", "", "", "bad", "", false, "First name is required"},
		{"malformed email", "Jane", "Doe", "bad", "secret", true, "Please enter a valid email address"},
		{"short password", "Jane", "Doe", "x@y.com", "123", true, "Password must be at least 6 characters long"},
		{"terms not accepted", "Jane", "Doe", "x@y.com", "secret", false, msgTerms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.drain(h.m.SwitchMode(types.ModeSignup))
			fillSignup(h, tt.first, tt.last, tt.email, tt.pw, tt.terms)

			h.drain(h.m.Submit(types.ModeSignup))

			toasts := h.toasts()
			require.Len(t, toasts, 1)
			assert.Equal(t, types.ToastError, toasts[0].Kind)
			assert.Equal(t, tt.want, toasts[0].Message)
			assert.False(t, h.m.Busy(types.ModeSignup))
			assert.Empty(t, h.auth.signUps)
		})
	}
}

func TestSignupSuccess(t *testing.T) {
	h := newHarness(t)
	h.drain(h.m.SwitchMode(types.ModeSignup))
	fillSignup(h, "Jane", "Doe", "jane@example.com", "secret", true)

	h.drain(h.m.Submit(types.ModeSignup))

	toasts := h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, types.ToastSuccess, toasts[0].Kind)
	assert.Equal(t, "Signup feature Coming Soon!", toasts[0].Message)

	require.Len(t, h.auth.signUps, 1)
	reg := h.auth.signUps[0]
	assert.Equal(t, "Jane Doe", reg.FullName())
	assert.Equal(t, "jane@example.com", reg.Email)
	assert.True(t, reg.AcceptTerms)

	assert.True(t, h.m.Busy(types.ModeSignup))
	assert.False(t, h.m.Busy(types.ModeLogin))

	h.advance(2 * time.Second)
	assert.False(t, h.m.Busy(types.ModeSignup))
}

func TestSubmit_IgnoredWhileBusy(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")

	h.drain(h.m.Submit(types.ModeLogin))
	require.True(t, h.m.Busy(types.ModeLogin))

	assert.Nil(t, h.m.Submit(types.ModeLogin))
	h.key(tea.KeyEnter)

	assert.Len(t, h.auth.signIns, 1)
	assert.Equal(t, 1, h.m.Toasts().Len())

	h.advance(2 * time.Second)
	require.False(t, h.m.Busy(types.ModeLogin))

	h.drain(h.m.Submit(types.ModeLogin))
	assert.Len(t, h.auth.signIns, 2)
}

func TestSubmit_OtherModeNotBlocked(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")
	h.drain(h.m.Submit(types.ModeLogin))

	h.drain(h.m.SwitchMode(types.ModeSignup))
	fillSignup(h, "Jane", "Doe", "jane@example.com", "secret", true)
	h.drain(h.m.Submit(types.ModeSignup))

	assert.Len(t, h.auth.signUps, 1)
	assert.True(t, h.m.Busy(types.ModeSignup))
}

func TestSubmit_AuthFailure(t *testing.T) {
	tests := []struct {
		name string
		mode types.FormMode
		err  error
		want string
	}{
		{"auth error message", types.ModeLogin, &domain.AuthError{Op: "sign in", Message: "Account locked"}, "Account locked"},
		{"auth error without message", types.ModeLogin, &domain.AuthError{Op: "sign in", Err: errors.New("boom")}, msgSignInFailed},
		{"plain error", types.ModeLogin, errors.New("network unreachable"), "network unreachable"},
		{"blank error", types.ModeLogin, errors.New(""), msgSignInFailed},
		{"blank signup error", types.ModeSignup, errors.New(" "), msgSignUpFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.auth.err = tt.err
			fillLogin(h, "x@y.com", "secret")
			fillSignup(h, "Jane", "Doe", "x@y.com", "secret", true)
			h.drain(h.m.SwitchMode(tt.mode))

			h.drain(h.m.Submit(tt.mode))

			toasts := h.toasts()
			require.Len(t, toasts, 1)
			assert.Equal(t, types.ToastError, toasts[0].Kind)
			assert.Equal(t, tt.want, toasts[0].Message)

			assert.True(t, h.m.Busy(tt.mode), "busy until the settle delay even on failure")
			h.advance(2 * time.Second)
			assert.False(t, h.m.Busy(tt.mode))
		})
	}
}

func TestClearForm(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")
	h.m.Form(types.ModeLogin).Checkbox(fieldRemember).SetChecked(true)
	fillSignup(h, "Jane", "Doe", "jane@example.com", "secret", true)
	h.drain(h.m.SwitchMode(types.ModeSignup))

	h.m.ClearForm()

	for _, mode := range []types.FormMode{types.ModeLogin, types.ModeSignup} {
		f := h.m.Form(mode)
		for _, in := range f.Inputs() {
			assert.Empty(t, in.Value(), "%s %s", mode, in.Name())
			assert.False(t, in.Focused(), "%s %s", mode, in.Name())
			assert.False(t, in.HasValue(), "%s %s", mode, in.Name())
		}
		for _, cb := range f.Checkboxes() {
			assert.False(t, cb.Checked(), "%s %s", mode, cb.Name())
		}
	}
	assert.Equal(t, types.ModeSignup, h.m.Mode(), "clearing keeps the active mode")
}

func TestClearKey(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")

	h.key(tea.KeyEsc)

	assert.Empty(t, h.m.Form(types.ModeLogin).Value(validator.FieldEmail))
	toasts := h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, types.ToastInfo, toasts[0].Kind)
	assert.Equal(t, msgFormCleared, toasts[0].Message)

	// Tab resumes at the first control
	h.key(tea.KeyTab)
	in := h.m.Form(types.ModeLogin).FocusedInput()
	require.NotNil(t, in)
	assert.Equal(t, validator.FieldEmail, in.Name())
}

func TestKeyboardNavigation(t *testing.T) {
	h := newHarness(t)
	f := h.m.Form(types.ModeLogin)

	focused := func() form.Control {
		c, ok := f.Focused()
		require.True(t, ok)
		return c
	}

	assert.Equal(t, validator.FieldEmail, focused().Name)
	h.key(tea.KeyTab)
	assert.Equal(t, validator.FieldPassword, focused().Name)
	h.key(tea.KeyDown)
	assert.Equal(t, fieldRemember, focused().Name)
	h.key(tea.KeyShiftTab)
	assert.Equal(t, validator.FieldPassword, focused().Name)
	h.key(tea.KeyUp)
	h.key(tea.KeyUp)
	last := f.Controls()[len(f.Controls())-1]
	assert.Equal(t, last.Name, focused().Name, "navigation wraps")
}

func TestCheckboxKeys(t *testing.T) {
	h := newHarness(t)
	f := h.m.Form(types.ModeLogin)
	f.FocusControl(fieldRemember)

	h.key(tea.KeySpace)
	assert.True(t, f.Checked(fieldRemember))

	h.key(tea.KeyEnter)
	assert.False(t, f.Checked(fieldRemember))
	assert.Zero(t, h.m.Toasts().Len(), "enter on a checkbox does not submit")
}

func TestSpaceTypesIntoInputs(t *testing.T) {
	h := newHarness(t)

	h.typeText("a")
	h.update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.typeText("b")

	assert.Equal(t, "a b", h.m.Form(types.ModeLogin).Value(validator.FieldEmail))
}

func TestSubmitButton(t *testing.T) {
	h := newHarness(t)
	fillLogin(h, "x@y.com", "secret")
	h.m.Form(types.ModeLogin).FocusControl(form.SubmitName)

	h.key(tea.KeySpace)

	assert.Len(t, h.auth.signIns, 1)
	assert.True(t, h.m.Busy(types.ModeLogin))
}

func TestButtons(t *testing.T) {
	tests := []struct {
		mode   types.FormMode
		button string
		want   string
	}{
		{types.ModeLogin, buttonGoogle, "Google sign in is coming soon!"},
		{types.ModeLogin, buttonApple, "Apple sign in is coming soon!"},
		{types.ModeLogin, buttonLinkedIn, "LinkedIn sign in is coming soon!"},
		{types.ModeLogin, buttonGitHub, "GitHub sign in is coming soon!"},
		{types.ModeSignup, buttonGoogle, "Google sign up is coming soon!"},
		{types.ModeSignup, buttonGitHub, "GitHub sign up is coming soon!"},
		{types.ModeLogin, buttonForgot, msgForgotPassword},
		{types.ModeLogin, buttonSSO, msgSSO},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.button, func(t *testing.T) {
			h := newHarness(t)
			h.drain(h.m.SwitchMode(tt.mode))
			h.m.Form(tt.mode).FocusControl(tt.button)

			h.key(tea.KeyEnter)

			toasts := h.toasts()
			require.Len(t, toasts, 1)
			assert.Equal(t, types.ToastInfo, toasts[0].Kind)
			assert.Equal(t, tt.want, toasts[0].Message)
		})
	}
}

func TestSwitchButton(t *testing.T) {
	h := newHarness(t)
	h.m.Form(types.ModeLogin).FocusControl(buttonSwitch)

	h.key(tea.KeyEnter)
	assert.Equal(t, types.ModeSignup, h.m.Mode())
	assert.Equal(t, "or sign up with", h.m.Caption())
	assert.True(t, h.m.Avatar(types.ModeSignup).Active())

	h.m.Form(types.ModeSignup).FocusControl(buttonSwitch)
	h.key(tea.KeySpace)
	assert.Equal(t, types.ModeLogin, h.m.Mode())
	assert.Zero(t, h.m.Toasts().Len())
}

func TestTogglePassword(t *testing.T) {
	h := newHarness(t)
	f := h.m.Form(types.ModeLogin)
	av := h.m.Avatar(types.ModeLogin)
	require.True(t, av.Active())

	h.key(tea.KeyCtrlR)
	assert.True(t, f.PasswordRevealed())
	assert.True(t, av.Blind())
	assert.False(t, h.m.Form(types.ModeSignup).PasswordRevealed())

	h.key(tea.KeyCtrlR)
	assert.False(t, f.PasswordRevealed())
	assert.False(t, av.Blind())
}

func TestDismissKey(t *testing.T) {
	h := newHarness(t)
	_, cmd := h.m.Toasts().Info("first")
	h.drain(cmd)
	_, cmd = h.m.Toasts().Info("second")
	h.drain(cmd)
	h.advance(10 * time.Millisecond)

	h.key(tea.KeyCtrlX)

	toasts := h.toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, types.ToastPendingExit, toasts[0].State)
	assert.Equal(t, types.ToastVisible, toasts[1].State)

	h.advance(300 * time.Millisecond)
	toasts = h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "second", toasts[0].Message)
}

func TestToastsExpire(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyEsc)
	require.Equal(t, 1, h.m.Toasts().Len())

	h.advance(3 * time.Second)
	toasts := h.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, types.ToastPendingExit, toasts[0].State)

	h.advance(300 * time.Millisecond)
	assert.Zero(t, h.m.Toasts().Len())
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t)
	h.typeText("x@y.com")

	h.key(tea.KeyF1)
	require.False(t, h.m.overlayStack.IsEmpty())

	// Keys belong to the overlay while it is open
	h.key(tea.KeyCtrlT)
	assert.Equal(t, types.ModeLogin, h.m.Mode())

	h.key(tea.KeyEsc)
	assert.True(t, h.m.overlayStack.IsEmpty())
	assert.Equal(t, "x@y.com", h.m.Form(types.ModeLogin).Value(validator.FieldEmail))
	assert.Zero(t, h.m.Toasts().Len(), "esc closed the overlay instead of clearing")
}

func TestQuit(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyCtrlC)
	assert.True(t, h.quit)
}

func TestQuit_WithOverlayOpen(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyF1)

	h.key(tea.KeyCtrlC)
	assert.True(t, h.quit)
}

func TestAvatar_FollowsFocus(t *testing.T) {
	h := newHarness(t)
	av := h.m.Avatar(types.ModeLogin)

	h.key(tea.KeyTab)
	x, y := av.Eyes()
	assert.Equal(t, [2]int{0, 1}, [2]int{x, y}, "looks down while an input has focus")

	h.key(tea.KeyTab)
	x, y = av.Eyes()
	assert.Equal(t, [2]int{0, 1}, [2]int{x, y}, "recenter waits for the blur delay")

	h.advance(100 * time.Millisecond)
	x, y = av.Eyes()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
}

func TestAvatar_RefocusCancelsRecenter(t *testing.T) {
	h := newHarness(t)
	av := h.m.Avatar(types.ModeLogin)

	h.key(tea.KeyTab)
	h.key(tea.KeyTab)
	h.advance(50 * time.Millisecond)
	h.key(tea.KeyShiftTab)

	h.advance(100 * time.Millisecond)
	x, y := av.Eyes()
	assert.Equal(t, [2]int{0, 1}, [2]int{x, y})
}

func TestAvatar_InactiveWhileBusy(t *testing.T) {
	h := newHarness(t)
	av := h.m.Avatar(types.ModeLogin)
	cx, cy := h.m.layout().face.Center()

	h.typeText("x@y.com")
	h.key(tea.KeyTab)
	h.typeText("secret")
	h.key(tea.KeyEnter)
	require.True(t, h.m.Loading().Visible())
	assert.False(t, av.Active())

	h.send(tea.MouseMsg{X: cx + 20, Y: cy, Action: tea.MouseActionMotion})
	assert.False(t, av.Tracking())
	x, y := av.Eyes()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	h.send(tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, av.Blind(), "clicks do not reach a hidden face")

	signup := h.m.layout().tabs[types.ModeSignup]
	h.send(tea.MouseMsg{X: signup.X, Y: signup.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, types.ModeLogin, h.m.Mode(), "tabs are hidden behind the indicator")

	h.advance(2000 * time.Millisecond)
	require.False(t, h.m.Loading().Visible())
	assert.True(t, av.Active())

	h.send(tea.MouseMsg{X: cx + 20, Y: cy, Action: tea.MouseActionMotion})
	assert.True(t, av.Tracking())
}

func TestAvatar_InactiveBehindHelp(t *testing.T) {
	h := newHarness(t)
	av := h.m.Avatar(types.ModeLogin)
	cx, cy := h.m.layout().face.Center()

	h.key(tea.KeyF1)
	require.False(t, h.m.overlayStack.IsEmpty())
	assert.False(t, av.Active())

	h.send(tea.MouseMsg{X: cx + 20, Y: cy, Action: tea.MouseActionMotion})
	assert.False(t, av.Tracking())

	h.key(tea.KeyEsc)
	require.True(t, h.m.overlayStack.IsEmpty())
	assert.True(t, av.Active())
}

func TestMouse_AvatarTracking(t *testing.T) {
	h := newHarness(t)
	av := h.m.Avatar(types.ModeLogin)
	l := h.m.layout()
	require.True(t, l.showAvatar)
	cx, cy := l.face.Center()

	h.send(tea.MouseMsg{X: cx + 20, Y: cy, Action: tea.MouseActionMotion})
	assert.True(t, av.Tracking())
	x, y := av.Eyes()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})

	h.send(tea.MouseMsg{X: cx - 20, Y: cy + 8, Action: tea.MouseActionMotion})
	x, y = av.Eyes()
	assert.Equal(t, [2]int{-1, 1}, [2]int{x, y})

	h.send(tea.MouseMsg{X: 0, Y: l.container.Y + l.container.H + 1, Action: tea.MouseActionMotion})
	assert.False(t, av.Tracking())
	x, y = av.Eyes()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
}

func TestMouse_ClickFace(t *testing.T) {
	h := newHarness(t)
	av := h.m.Avatar(types.ModeLogin)
	cx, cy := h.m.layout().face.Center()

	h.send(tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, av.Blind())

	h.send(tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.True(t, av.Blind(), "only the left button toggles")

	h.send(tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, av.Blind())
}

func TestMouse_ClickTabs(t *testing.T) {
	h := newHarness(t)
	tabs := h.m.layout().tabs

	signup := tabs[types.ModeSignup]
	h.send(tea.MouseMsg{X: signup.X, Y: signup.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, types.ModeSignup, h.m.Mode())
	assert.Equal(t, "or sign up with", h.m.Caption())
	assert.True(t, h.m.Avatar(types.ModeSignup).Active())
	assert.False(t, h.m.Avatar(types.ModeLogin).Active())

	login := h.m.layout().tabs[types.ModeLogin]
	h.send(tea.MouseMsg{X: login.X + login.W - 1, Y: login.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, types.ModeLogin, h.m.Mode())
	assert.Zero(t, h.m.Toasts().Len())
}
