package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"jecati/internal/domain/admin"
)

// AdminStoreForLogin defines the store interface needed by Login.
type AdminStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (admin.Admin, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AdminID string
	Email   string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AdminStore AdminStoreForLogin
}

// Login errors. The messages render inline on the login form, so each one
// names the specific failure the way the form always has.
var (
	ErrInvalidUsername = errors.New("Invalid Username")
	ErrInvalidPassword = errors.New("Invalid Password")
	ErrNotVerified     = errors.New("Account not verified")
)

// ExecuteLogin validates credentials and returns the identity for session
// creation. The check order is fixed: unknown email first, then the
// password against the stored hash, and only then the verified flag, so a
// wrong password on an unverified account reports the password error.
// PRE: Email and password provided
// POST: Returns identity on success; never establishes a session for an
// unverified account
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	acct, err := deps.AdminStore.GetByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "unknown_email")
		return LoginResult{}, ErrInvalidUsername
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidPassword
	}

	if !acct.Verified {
		slog.Info("auth_event", "event", "login_blocked", "email", input.Email, "reason", "not_verified")
		return LoginResult{}, ErrNotVerified
	}

	slog.Info("auth_event", "event", "login_success", "email", acct.Email)
	return LoginResult{AdminID: acct.ID, Email: acct.Email}, nil
}
