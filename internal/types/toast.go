package types

import "time"

// ToastID identifies a toast for as long as it is live
type ToastID string

// ToastKind selects the icon and style of a toast
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// String returns the string representation of the kind
func (k ToastKind) String() string {
	switch k {
	case ToastInfo:
		return "info"
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	case ToastError:
		return "error"
	default:
		return "unknown"
	}
}

// Icon returns the glyph shown in front of the message
func (k ToastKind) Icon() string {
	switch k {
	case ToastSuccess:
		return "✔"
	case ToastWarning:
		return "⚠"
	case ToastError:
		return "✖"
	default:
		return "ℹ"
	}
}

// ToastState tracks where a toast is in its lifecycle
type ToastState int

const (
	ToastPendingEnter ToastState = iota
	ToastVisible
	ToastPendingExit
	ToastRemoved
)

// String returns the string representation of the state
func (s ToastState) String() string {
	switch s {
	case ToastPendingEnter:
		return "pending-enter"
	case ToastVisible:
		return "visible"
	case ToastPendingExit:
		return "pending-exit"
	case ToastRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Toast represents a notification message
type Toast struct {
	ID        ToastID
	Kind      ToastKind
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
	State     ToastState
}

// Live reports whether the toast can still be dismissed
func (t Toast) Live() bool {
	return t.State == ToastPendingEnter || t.State == ToastVisible
}

// ExpiresAt returns when the auto-dismiss fires
func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(t.Duration)
}
