// Package notify owns the live collection of toast notifications: creation,
// timed auto-dismiss, the exit window and removal.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/visioncraft/internal/services/scheduler"
	"github.com/riordanpawley/visioncraft/internal/types"
	"go.uber.org/zap"
)

// Handle refers to a toast returned by Show
type Handle = types.ToastID

// Default timings
const (
	DefaultDuration   = 3000 * time.Millisecond
	DefaultEnterDelay = 10 * time.Millisecond
	DefaultExitWindow = 300 * time.Millisecond
)

// Options configures queue timings
type Options struct {
	// Duration is used when Show is called with a non-positive duration
	Duration time.Duration
	// EnterDelay is the wait before a new toast becomes visible
	EnterDelay time.Duration
	// ExitWindow is how long a dismissed toast stays on screen
	ExitWindow time.Duration
}

// DefaultOptions returns the stock timings
func DefaultOptions() Options {
	return Options{
		Duration:   DefaultDuration,
		EnterDelay: DefaultEnterDelay,
		ExitWindow: DefaultExitWindow,
	}
}

// Msg is implemented by every message the queue consumes in Update
type Msg interface {
	notifyMsg()
}

type enteredMsg struct{ id types.ToastID }
type expiredMsg struct{ id types.ToastID }
type removedMsg struct{ id types.ToastID }

func (enteredMsg) notifyMsg() {}
func (expiredMsg) notifyMsg() {}
func (removedMsg) notifyMsg() {}

// ShowMsg asks the queue to show a toast. Components that do not hold the
// queue return it through Cmd.
type ShowMsg struct {
	Kind     types.ToastKind
	Message  string
	Duration time.Duration
}

func (ShowMsg) notifyMsg() {}

// Cmd returns a command that raises a toast with the default duration
func Cmd(kind types.ToastKind, message string) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Kind: kind, Message: message}
	}
}

// Queue holds the toasts that have not been removed yet, in display order
type Queue struct {
	toasts      []*types.Toast
	autoDismiss map[types.ToastID]*scheduler.Task
	sched       scheduler.Scheduler
	opts        Options
	logger      *zap.Logger
	now         func() time.Time
}

// NewQueue creates an empty queue. Zero option fields take the defaults.
func NewQueue(sched scheduler.Scheduler, opts Options, logger *zap.Logger) *Queue {
	defaults := DefaultOptions()
	if opts.Duration <= 0 {
		opts.Duration = defaults.Duration
	}
	if opts.EnterDelay <= 0 {
		opts.EnterDelay = defaults.EnterDelay
	}
	if opts.ExitWindow <= 0 {
		opts.ExitWindow = defaults.ExitWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Queue{
		toasts:      make([]*types.Toast, 0),
		autoDismiss: make(map[types.ToastID]*scheduler.Task),
		sched:       sched,
		opts:        opts,
		logger:      logger.Named("notify"),
		now:         time.Now,
	}
}

// Options returns the effective timings
func (q *Queue) Options() Options {
	return q.opts
}

// Show appends a toast and schedules its entry and auto-dismiss
func (q *Queue) Show(message string, kind types.ToastKind, duration time.Duration) (Handle, tea.Cmd) {
	if duration <= 0 {
		duration = q.opts.Duration
	}

	toast := &types.Toast{
		ID:        types.ToastID(uuid.NewString()),
		Kind:      kind,
		Message:   message,
		CreatedAt: q.now(),
		Duration:  duration,
		State:     types.ToastPendingEnter,
	}
	q.toasts = append(q.toasts, toast)

	_, enterCmd := q.sched.After(q.opts.EnterDelay, enteredMsg{id: toast.ID})
	task, expireCmd := q.sched.After(duration, expiredMsg{id: toast.ID})
	q.autoDismiss[toast.ID] = task

	q.logger.Debug("toast shown",
		zap.String("id", string(toast.ID)),
		zap.Stringer("kind", kind),
		zap.Duration("duration", duration),
		zap.Int("live", len(q.toasts)),
	)

	return toast.ID, tea.Batch(enterCmd, expireCmd)
}

// Success shows a success toast with the default duration
func (q *Queue) Success(message string) (Handle, tea.Cmd) {
	return q.Show(message, types.ToastSuccess, 0)
}

// Error shows an error toast with the default duration
func (q *Queue) Error(message string) (Handle, tea.Cmd) {
	return q.Show(message, types.ToastError, 0)
}

// Warning shows a warning toast with the default duration
func (q *Queue) Warning(message string) (Handle, tea.Cmd) {
	return q.Show(message, types.ToastWarning, 0)
}

// Info shows an info toast with the default duration
func (q *Queue) Info(message string) (Handle, tea.Cmd) {
	return q.Show(message, types.ToastInfo, 0)
}

// Dismiss starts the exit window of a live toast. Unknown, exiting and
// removed handles are ignored.
func (q *Queue) Dismiss(h Handle) tea.Cmd {
	toast := q.find(h)
	if toast == nil || !toast.Live() {
		return nil
	}

	toast.State = types.ToastPendingExit
	if task, ok := q.autoDismiss[h]; ok {
		task.Cancel()
		delete(q.autoDismiss, h)
	}

	q.logger.Debug("toast dismissed", zap.String("id", string(h)))

	_, cmd := q.sched.After(q.opts.ExitWindow, removedMsg{id: h})
	return cmd
}

// DismissOldest dismisses the first live toast, if any
func (q *Queue) DismissOldest() tea.Cmd {
	for _, t := range q.toasts {
		if t.Live() {
			return q.Dismiss(t.ID)
		}
	}
	return nil
}

// Update consumes the queue's scheduled messages and ShowMsg
func (q *Queue) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowMsg:
		_, cmd := q.Show(msg.Message, msg.Kind, msg.Duration)
		return cmd

	case enteredMsg:
		if toast := q.find(msg.id); toast != nil && toast.State == types.ToastPendingEnter {
			toast.State = types.ToastVisible
		}
		return nil

	case expiredMsg:
		delete(q.autoDismiss, msg.id)
		return q.Dismiss(msg.id)

	case removedMsg:
		q.remove(msg.id)
		return nil
	}

	return nil
}

// remove evicts the toast by identity. Removing twice is a no-op.
func (q *Queue) remove(id types.ToastID) {
	filtered := make([]*types.Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		if t.ID == id {
			t.State = types.ToastRemoved
			continue
		}
		filtered = append(filtered, t)
	}

	if len(filtered) != len(q.toasts) {
		q.logger.Debug("toast removed", zap.String("id", string(id)), zap.Int("live", len(filtered)))
	}
	q.toasts = filtered
}

func (q *Queue) find(id types.ToastID) *types.Toast {
	for _, t := range q.toasts {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Len returns the number of toasts not yet removed
func (q *Queue) Len() int {
	return len(q.toasts)
}

// Get returns a copy of the toast behind h
func (q *Queue) Get(h Handle) (types.Toast, bool) {
	if t := q.find(h); t != nil {
		return *t, true
	}
	return types.Toast{}, false
}

// Toasts returns a snapshot of the live collection in display order
func (q *Queue) Toasts() []types.Toast {
	out := make([]types.Toast, len(q.toasts))
	for i, t := range q.toasts {
		out[i] = *t
	}
	return out
}
