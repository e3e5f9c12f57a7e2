package app

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/visioncraft/internal/config"
	"github.com/riordanpawley/visioncraft/internal/domain"
	"github.com/riordanpawley/visioncraft/internal/services/notify"
	"github.com/riordanpawley/visioncraft/internal/services/scheduler"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/overlay"
	"go.uber.org/zap/zaptest"
)

// cmdTimeout bounds how long run waits for a command. Cursor blink commands
// sleep far longer and are abandoned.
const cmdTimeout = 50 * time.Millisecond

// fakeAuth records submissions and answers with err
type fakeAuth struct {
	err     error
	signIns []domain.Credentials
	signUps []domain.Registration
}

func (f *fakeAuth) SignIn(_ context.Context, creds domain.Credentials) error {
	f.signIns = append(f.signIns, creds)
	return f.err
}

func (f *fakeAuth) SignUp(_ context.Context, reg domain.Registration) error {
	f.signUps = append(f.signUps, reg)
	return f.err
}

// harness drives a Model through Update with a manual clock
type harness struct {
	t     *testing.T
	m     Model
	sched *scheduler.Manual
	auth  *fakeAuth
	quit  bool
}

func newHarness(t *testing.T, configure ...func(*config.Config)) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	for _, fn := range configure {
		fn(cfg)
	}

	h := &harness{
		t:     t,
		sched: scheduler.NewManual(),
		auth:  &fakeAuth{},
	}
	h.m = New(cfg, Dependencies{
		Scheduler:     h.sched,
		Authenticator: h.auth,
		Logger:        zaptest.NewLogger(t),
	})
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

// update applies msg without running the returned command
func (h *harness) update(msg tea.Msg) tea.Cmd {
	model, cmd := h.m.Update(msg)
	h.m = model.(Model)
	return cmd
}

// send applies msg and feeds back whatever its command produces
func (h *harness) send(msg tea.Msg) {
	h.drain(h.update(msg))
}

// drain runs cmd and feeds the controller-level messages back into Update
func (h *harness) drain(cmd tea.Cmd) {
	for _, msg := range run(cmd) {
		switch msg.(type) {
		case tea.QuitMsg:
			h.quit = true
		case authResultMsg, settleMsg, welcomeMsg, blurResetMsg, notify.Msg, overlay.CloseOverlayMsg:
			h.send(msg)
		}
	}
}

// advance moves the clock in 10ms steps so follow-up timers land on time
func (h *harness) advance(d time.Duration) {
	const step = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		for _, msg := range h.sched.Advance(min(step, d-elapsed)) {
			h.send(msg)
		}
	}
}

func (h *harness) key(k tea.KeyType) {
	h.send(tea.KeyMsg{Type: k})
}

// typeText types into the focused input
func (h *harness) typeText(s string) {
	for _, r := range s {
		h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) setValue(mode types.FormMode, field, value string) {
	h.t.Helper()
	in := h.m.Form(mode).Input(field)
	if in == nil {
		h.t.Fatalf("no input %q in %s form", field, mode)
	}
	in.SetValue(value)
}

func (h *harness) toasts() []types.Toast {
	return h.m.Toasts().Toasts()
}

func (h *harness) toastsOf(kind types.ToastKind) []types.Toast {
	var out []types.Toast
	for _, t := range h.toasts() {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// run executes cmd and returns the messages it produced, expanding batches
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(cmdTimeout):
		return nil
	}

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	results := make([][]tea.Msg, len(batch))
	var wg sync.WaitGroup
	for i, c := range batch {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = run(c)
		}()
	}
	wg.Wait()

	var out []tea.Msg
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
