// Package scheduler delivers bubbletea messages after a delay through handles
// that can be cancelled before they fire.
package scheduler

import (
	"sort"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler schedules msg for delivery after d
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) (*Task, tea.Cmd)
}

// Task is a handle to a scheduled message
type Task struct {
	delay    time.Duration
	msg      tea.Msg
	canceled atomic.Bool
}

func newTask(d time.Duration, msg tea.Msg) *Task {
	return &Task{delay: d, msg: msg}
}

// Cancel prevents the message from being delivered. Safe to call more than
// once and from any goroutine.
func (t *Task) Cancel() {
	t.canceled.Store(true)
}

// Canceled reports whether Cancel was called
func (t *Task) Canceled() bool {
	return t.canceled.Load()
}

// Delay returns the delay the task was scheduled with
func (t *Task) Delay() time.Duration {
	return t.delay
}

// Msg returns the scheduled message regardless of cancellation
func (t *Task) Msg() tea.Msg {
	return t.msg
}

// Fire returns the message, or nil once the task has been cancelled.
// bubbletea drops nil messages.
func (t *Task) Fire() tea.Msg {
	if t.Canceled() {
		return nil
	}
	return t.msg
}

// Tick schedules through tea.Tick
type Tick struct{}

// NewTick creates a scheduler backed by the bubbletea runtime
func NewTick() Tick {
	return Tick{}
}

// After implements Scheduler
func (Tick) After(d time.Duration, msg tea.Msg) (*Task, tea.Cmd) {
	task := newTask(d, msg)
	return task, tea.Tick(d, func(time.Time) tea.Msg {
		return task.Fire()
	})
}

// Manual records tasks against a virtual clock. Nothing fires until Advance
// is called; the commands it returns are nil.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualEntry
}

type manualEntry struct {
	task *Task
	at   time.Duration
	seq  int
}

// NewManual creates a manual scheduler at virtual time zero
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler
func (m *Manual) After(d time.Duration, msg tea.Msg) (*Task, tea.Cmd) {
	task := newTask(d, msg)
	m.seq++
	m.pending = append(m.pending, &manualEntry{task: task, at: m.now + d, seq: m.seq})
	return task, nil
}

// Now returns the elapsed virtual time
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the tasks that have not fired yet, cancelled ones included
func (m *Manual) Pending() []*Task {
	tasks := make([]*Task, 0, len(m.pending))
	for _, e := range m.pending {
		tasks = append(tasks, e.task)
	}
	return tasks
}

// Advance moves the clock forward by d and returns the messages that came
// due, ordered by deadline and then by scheduling order. Cancelled tasks are
// discarded without producing a message.
func (m *Manual) Advance(d time.Duration) []tea.Msg {
	m.now += d

	var due, rest []*manualEntry
	for _, e := range m.pending {
		if e.at <= m.now {
			due = append(due, e)
		} else {
			rest = append(rest, e)
		}
	}
	m.pending = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})

	msgs := make([]tea.Msg, 0, len(due))
	for _, e := range due {
		if msg := e.task.Fire(); msg != nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
