// Package auth defines the authentication action behind the forms. The only
// implementation is a stub: no request leaves the process.
package auth

import (
	"context"

	"github.com/riordanpawley/visioncraft/internal/domain"
	"go.uber.org/zap"
)

// Authenticator performs the sign in and sign up actions
type Authenticator interface {
	SignIn(ctx context.Context, creds domain.Credentials) error
	SignUp(ctx context.Context, reg domain.Registration) error
}

// Stub accepts every submission without doing anything
type Stub struct {
	logger *zap.Logger
}

// NewStub creates the placeholder authenticator
func NewStub(logger *zap.Logger) *Stub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stub{logger: logger.Named("auth")}
}

// SignIn implements Authenticator
func (s *Stub) SignIn(ctx context.Context, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return &domain.AuthError{Op: "sign in", Err: err}
	}
	s.logger.Info("sign in requested",
		zap.String("email", creds.Email),
		zap.Bool("remember", creds.Remember),
	)
	return nil
}

// SignUp implements Authenticator
func (s *Stub) SignUp(ctx context.Context, reg domain.Registration) error {
	if err := ctx.Err(); err != nil {
		return &domain.AuthError{Op: "sign up", Err: err}
	}
	s.logger.Info("sign up requested",
		zap.String("email", reg.Email),
		zap.String("name", reg.FullName()),
	)
	return nil
}
