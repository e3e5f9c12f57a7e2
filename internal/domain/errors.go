package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	ErrBusy             = errors.New("submission in progress")
	ErrTermsNotAccepted = errors.New("terms not accepted")
	ErrUnknownMode      = errors.New("unknown form mode")
)

// AuthError represents a failure of the authentication action
type AuthError struct {
	Op      string // Operation: "sign in" or "sign up"
	Message string // User-facing message, shown verbatim when set
	Err     error  // Underlying error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ValidationError represents a rejected field value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UserMessage returns the text a notification should carry for err.
// AuthError and ValidationError contribute their Message; other errors their
// Error() text. Blank results fall back to fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		if strings.TrimSpace(authErr.Message) != "" {
			return authErr.Message
		}
		return fallback
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if strings.TrimSpace(validationErr.Message) != "" {
			return validationErr.Message
		}
		return fallback
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
