// Package types contains shared types used across the application.
package types

// FormMode is the active form variant. Exactly one is active at a time.
type FormMode int

const (
	ModeLogin FormMode = iota
	ModeSignup
)

// String returns the lower-case name used in notifications and config
func (m FormMode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeSignup:
		return "signup"
	default:
		return "unknown"
	}
}

// Label returns the name shown in the status bar badge
func (m FormMode) Label() string {
	switch m {
	case ModeLogin:
		return "SIGN IN"
	case ModeSignup:
		return "SIGN UP"
	default:
		return "UNKNOWN"
	}
}

// Other returns the opposite mode
func (m FormMode) Other() FormMode {
	if m == ModeLogin {
		return ModeSignup
	}
	return ModeLogin
}

// Action returns the verb used in "<Provider> <action> is coming soon!"
func (m FormMode) Action() string {
	if m == ModeSignup {
		return "sign up"
	}
	return "sign in"
}

// DividerText returns the caption shown above the social buttons
func (m FormMode) DividerText() string {
	return "or " + m.Action() + " with"
}

// ParseFormMode parses "login" or "signup"
func ParseFormMode(s string) (FormMode, bool) {
	switch s {
	case "login":
		return ModeLogin, true
	case "signup":
		return ModeSignup, true
	default:
		return ModeLogin, false
	}
}
