// Package app is the form controller: it owns the active mode, the per-mode
// busy flags and routes every terminal event to the forms, the notification
// queue, the busy indicator and the avatars.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/visioncraft/internal/config"
	"github.com/riordanpawley/visioncraft/internal/domain"
	"github.com/riordanpawley/visioncraft/internal/services/auth"
	"github.com/riordanpawley/visioncraft/internal/services/notify"
	"github.com/riordanpawley/visioncraft/internal/services/scheduler"
	"github.com/riordanpawley/visioncraft/internal/services/validator"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/avatar"
	"github.com/riordanpawley/visioncraft/internal/ui/form"
	"github.com/riordanpawley/visioncraft/internal/ui/loading"
	"github.com/riordanpawley/visioncraft/internal/ui/overlay"
	"github.com/riordanpawley/visioncraft/internal/ui/styles"
	"github.com/riordanpawley/visioncraft/internal/ui/toast"
	"go.uber.org/zap"
)

// Dependencies are the services the controller is built with. Nil fields
// get the production default.
type Dependencies struct {
	Scheduler     scheduler.Scheduler
	Authenticator auth.Authenticator
	Validator     *validator.Validator
	Logger        *zap.Logger
}

// Model is the root bubbletea model
type Model struct {
	cfg *config.Config

	// Form state
	mode    types.FormMode
	forms   map[types.FormMode]*form.Form
	avatars map[types.FormMode]*avatar.Avatar
	busy    map[types.FormMode]bool
	caption string

	// Services
	toasts    *notify.Queue
	loading   *loading.Indicator
	validator *validator.Validator
	auth      auth.Authenticator
	sched     scheduler.Scheduler

	// UI
	overlayStack  *overlay.Stack
	toastRenderer *toast.ToastRenderer
	styles        *styles.Styles
	keys          keyMap
	width         int
	height        int

	logger *zap.Logger
}

// New creates the controller with cfg and deps. A nil cfg uses the defaults.
func New(cfg *config.Config, deps Dependencies) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = scheduler.NewTick()
	}
	if deps.Validator == nil {
		deps.Validator = validator.NewDefault()
	}
	if deps.Authenticator == nil {
		deps.Authenticator = auth.NewStub(deps.Logger)
	}

	s := styles.New()
	avatarOpts := avatar.Options{
		Enabled:  cfg.Avatar.Enabled,
		MaxMove:  cfg.Avatar.MaxMove,
		DivisorX: cfg.Avatar.DivisorX,
		DivisorY: cfg.Avatar.DivisorY,
	}

	m := Model{
		cfg: cfg,
		forms: map[types.FormMode]*form.Form{
			types.ModeLogin:  form.New(loginSpec(cfg.App.Name), s),
			types.ModeSignup: form.New(signupSpec(cfg.App.Name), s),
		},
		avatars: map[types.FormMode]*avatar.Avatar{
			types.ModeLogin:  avatar.New(avatarOpts, s),
			types.ModeSignup: avatar.New(avatarOpts, s),
		},
		busy: map[types.FormMode]bool{},
		toasts: notify.NewQueue(deps.Scheduler, notify.Options{
			Duration:   cfg.Toast.Duration(),
			EnterDelay: cfg.Toast.EnterDelay(),
			ExitWindow: cfg.Toast.ExitWindow(),
		}, deps.Logger),
		loading:       loading.New(s),
		validator:     deps.Validator,
		auth:          deps.Authenticator,
		sched:         deps.Scheduler,
		overlayStack:  overlay.NewStack(),
		toastRenderer: toast.New(s, cfg.Toast.MaxWidth),
		styles:        s,
		keys:          defaultKeyMap(),
		logger:        deps.Logger.Named("app"),
	}

	m.mode = cfg.App.Mode()
	m.SwitchMode(m.mode)

	return m
}

// Init schedules the welcome notification and starts the cursor blink
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.cfg.App.WelcomeMessage != "" {
		_, cmd := m.sched.After(m.cfg.App.WelcomeDelay(), welcomeMsg{})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncAvatars()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		m.syncAvatars()
		return m, nil

	case notify.Msg:
		return m, m.toasts.Update(msg)

	case spinner.TickMsg:
		return m, m.loading.Update(msg)

	case welcomeMsg:
		_, cmd := m.toasts.Info(m.cfg.App.WelcomeMessage)
		return m, cmd

	case authResultMsg:
		cmd := m.finishSubmission(msg)
		return m, cmd

	case settleMsg:
		m.setBusy(msg.mode, false)
		m.loading.Hide()
		m.syncAvatars()
		m.logger.Debug("submission settled", zap.Stringer("mode", msg.mode))
		return m, nil

	case blurResetMsg:
		if f := m.forms[msg.mode]; f != nil && !f.AnyInputFocused() {
			m.avatars[msg.mode].Reset()
		}
		return m, nil
	}

	// Cursor blink and anything else belongs to the focused input
	return m, m.activeForm().Update(msg)
}

// Mode returns the active form mode
func (m Model) Mode() types.FormMode {
	return m.mode
}

// Busy reports whether mode has a submission in flight
func (m Model) Busy(mode types.FormMode) bool {
	return m.busy[mode]
}

// Form returns the container of mode
func (m Model) Form(mode types.FormMode) *form.Form {
	return m.forms[mode]
}

// Avatar returns the avatar of mode
func (m Model) Avatar(mode types.FormMode) *avatar.Avatar {
	return m.avatars[mode]
}

// Toasts returns the notification queue
func (m Model) Toasts() *notify.Queue {
	return m.toasts
}

// Loading returns the busy indicator
func (m Model) Loading() *loading.Indicator {
	return m.loading
}

// Caption returns the divider caption above the social buttons
func (m Model) Caption() string {
	return m.caption
}

func (m Model) activeForm() *form.Form {
	return m.forms[m.mode]
}

// SwitchMode shows the container of target and hides the other one. Busy
// flags and field values are untouched. Switching to the active mode does
// nothing.
func (m *Model) SwitchMode(target types.FormMode) tea.Cmd {
	f, ok := m.forms[target]
	if !ok {
		m.logger.Warn("ignoring mode switch", zap.Error(domain.ErrUnknownMode), zap.Int("mode", int(target)))
		return nil
	}
	if m.mode == target && f.Visible() {
		return nil
	}

	m.mode = target
	for mode, other := range m.forms {
		if mode == target {
			continue
		}
		other.Hide()
		other.Blur()
		m.avatars[mode].Reset()
	}
	f.Show()
	m.caption = target.DividerText()
	m.syncAvatars()

	m.logger.Debug("mode switched", zap.Stringer("mode", target))

	return m.focus(f.FocusFirst())
}

// ClearForm empties every field and checkbox of both modes and drops the
// focused and has-value tags of every input
func (m *Model) ClearForm() {
	for mode, f := range m.forms {
		f.Clear()
		m.avatars[mode].Reset()
	}
	m.logger.Debug("forms cleared")
}

// Submit validates the form of mode and, when it passes, starts the
// authentication action. It does nothing while mode is busy.
func (m *Model) Submit(mode types.FormMode) tea.Cmd {
	f, ok := m.forms[mode]
	if !ok {
		return nil
	}
	if m.busy[mode] {
		m.logger.Debug("submit ignored", zap.Stringer("mode", mode), zap.Error(domain.ErrBusy))
		return nil
	}

	switch mode {
	case types.ModeLogin:
		creds := domain.Credentials{
			Email:    f.Value(validator.FieldEmail),
			Password: f.Value(validator.FieldPassword),
			Remember: f.Checked(fieldRemember),
		}
		if err := m.validateLogin(creds); err != nil {
			return m.reject(mode, err)
		}
		return m.beginSubmission(mode, func(ctx context.Context) error {
			return m.auth.SignIn(ctx, creds)
		})

	case types.ModeSignup:
		reg := domain.Registration{
			FirstName:   f.Value(validator.FieldFirstName),
			LastName:    f.Value(validator.FieldLastName),
			Email:       f.Value(validator.FieldEmail),
			Password:    f.Value(validator.FieldPassword),
			AcceptTerms: f.Checked(fieldAgreeTerms),
		}
		if err := m.validateSignup(reg); err != nil {
			return m.reject(mode, err)
		}
		return m.beginSubmission(mode, func(ctx context.Context) error {
			return m.auth.SignUp(ctx, reg)
		})
	}

	return nil
}

func (m *Model) validateLogin(creds domain.Credentials) error {
	return m.validator.ValidateForm([]validator.Field{
		{Name: validator.FieldEmail, Value: creds.Email},
		{Name: validator.FieldPassword, Value: creds.Password},
	}).Err()
}

// validateSignup checks the names first, then email and password, then the
// terms checkbox. The first failure is returned.
func (m *Model) validateSignup(reg domain.Registration) error {
	for _, field := range []validator.Field{
		{Name: validator.FieldFirstName, Value: reg.FirstName},
		{Name: validator.FieldLastName, Value: reg.LastName},
	} {
		if res := m.validator.Validate(field.Name, field.Value); !res.Valid {
			return &domain.ValidationError{Field: field.Name, Message: res.Message}
		}
	}

	if err := m.validator.ValidateForm([]validator.Field{
		{Name: validator.FieldEmail, Value: reg.Email},
		{Name: validator.FieldPassword, Value: reg.Password},
	}).Err(); err != nil {
		return err
	}

	if !reg.AcceptTerms {
		return fmt.Errorf("%w: %w", domain.ErrTermsNotAccepted,
			&domain.ValidationError{Field: fieldAgreeTerms, Message: msgTerms})
	}
	return nil
}

// reject raises exactly one error notification for a failed validation
func (m *Model) reject(mode types.FormMode, err error) tea.Cmd {
	m.logger.Debug("submission rejected", zap.Stringer("mode", mode), zap.Error(err))
	_, cmd := m.toasts.Error(domain.UserMessage(err, err.Error()))
	return cmd
}

// beginSubmission marks mode busy, shows the busy indicator and runs action
// off the UI goroutine with the configured timeout
func (m *Model) beginSubmission(mode types.FormMode, action func(context.Context) error) tea.Cmd {
	m.setBusy(mode, true)
	spin := m.loading.Show()
	m.syncAvatars()

	m.logger.Info("submission started", zap.Stringer("mode", mode))

	timeout := m.cfg.Form.AuthTimeout()
	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return authResultMsg{mode: mode, err: action(ctx)}
	}
	return tea.Batch(spin, run)
}

// finishSubmission reports the outcome and schedules the end of the busy
// state, whatever the outcome
func (m *Model) finishSubmission(res authResultMsg) tea.Cmd {
	var toastCmd tea.Cmd
	if res.err != nil {
		fallback := msgSignInFailed
		if res.mode == types.ModeSignup {
			fallback = msgSignUpFailed
		}
		m.logger.Warn("submission failed", zap.Stringer("mode", res.mode), zap.Error(res.err))
		_, toastCmd = m.toasts.Error(domain.UserMessage(res.err, fallback))
	} else {
		message := msgSignInSuccess
		if res.mode == types.ModeSignup {
			message = msgSignUpSuccess
		}
		m.logger.Info("submission finished", zap.Stringer("mode", res.mode))
		_, toastCmd = m.toasts.Success(message)
	}

	_, settleCmd := m.sched.After(m.cfg.Form.SettleDelay(), settleMsg{mode: res.mode})
	return tea.Batch(toastCmd, settleCmd)
}

func (m *Model) setBusy(mode types.FormMode, busy bool) {
	m.busy[mode] = busy
	if f := m.forms[mode]; f != nil {
		f.SetBusy(busy)
	}
}

// togglePassword flips password echo of the active form and the avatar hands
func (m *Model) togglePassword() {
	revealed := m.activeForm().TogglePassword()
	m.avatars[m.mode].ToggleBlind()
	m.logger.Debug("password visibility toggled", zap.Bool("revealed", revealed))
}

// focus follows a focus change of the active form: the avatar looks at the
// form while an input has focus and recenters shortly after the last blur
func (m *Model) focus(cmd tea.Cmd) tea.Cmd {
	f := m.activeForm()
	if f.AnyInputFocused() {
		m.avatars[m.mode].LookDown()
		return cmd
	}
	_, reset := m.sched.After(m.cfg.Avatar.BlurReset(), blurResetMsg{mode: m.mode})
	return tea.Batch(cmd, reset)
}

// activate presses the named button of the active form
func (m *Model) activate(name string) tea.Cmd {
	var cmd tea.Cmd
	switch name {
	case buttonForgot:
		_, cmd = m.toasts.Info(msgForgotPassword)
	case buttonSSO:
		_, cmd = m.toasts.Info(msgSSO)
	case buttonSwitch:
		cmd = m.SwitchMode(m.mode.Other())
	default:
		if provider, ok := providers[name]; ok {
			_, cmd = m.toasts.Info(fmt.Sprintf(msgSocialFormat, provider, m.mode.Action()))
		}
	}
	return cmd
}

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm()

	switch {
	case key.Matches(msg, m.keys.Help):
		cmd := m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.helpCategories()))
		m.syncAvatars()
		return m, cmd

	case key.Matches(msg, m.keys.SwitchMode):
		target := m.mode.Other()
		switchCmd := m.SwitchMode(target)
		_, toastCmd := m.toasts.Info(fmt.Sprintf(msgSwitchedFormat, target))
		return m, tea.Batch(switchCmd, toastCmd)

	case key.Matches(msg, m.keys.Clear):
		m.ClearForm()
		_, cmd := m.toasts.Info(msgFormCleared)
		return m, cmd

	case key.Matches(msg, m.keys.TogglePassword):
		m.togglePassword()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		return m, m.toasts.DismissOldest()

	case key.Matches(msg, m.keys.Next):
		cmd := m.focus(f.FocusNext())
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.focus(f.FocusPrev())
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		cmd := m.press(true)
		return m, cmd

	case key.Matches(msg, m.keys.Activate):
		if c, ok := f.Focused(); ok && c.Kind != form.KindInput {
			cmd := m.press(false)
			return m, cmd
		}
	}

	return m, f.Update(msg)
}

// press acts on the focused control. Enter on an input submits the active
// form; space never reaches here for inputs.
func (m *Model) press(enter bool) tea.Cmd {
	f := m.activeForm()
	c, ok := f.Focused()
	if !ok {
		return nil
	}

	switch c.Kind {
	case form.KindInput:
		if enter {
			return m.Submit(m.mode)
		}
	case form.KindSubmit:
		return m.Submit(m.mode)
	case form.KindCheckbox:
		if cb := f.Checkbox(c.Name); cb != nil {
			cb.Toggle()
		}
	case form.KindButton:
		return m.activate(c.Name)
	}
	return nil
}

// handleMouse feeds pointer motion to the avatar and handles clicks on the
// mode tabs and the avatar face
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	av := m.avatars[m.mode]

	switch msg.Action {
	case tea.MouseActionMotion:
		av.Pointer(msg.X, msg.Y)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		av.Pointer(msg.X, msg.Y)
		if av.Click(msg.X, msg.Y) {
			return m, nil
		}
		if !m.mainVisible() {
			return m, nil
		}
		if mode, ok := m.layout().tabAt(msg.X, msg.Y); ok {
			cmd := m.SwitchMode(mode)
			return m, cmd
		}
	}

	return m, nil
}
