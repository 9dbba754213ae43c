// Package orchestrators coordinates domain objects, stores and external
// senders. Each operation follows the Input/Deps/Execute pattern so that
// tests can substitute map-backed stores and deterministic clocks.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"jecati/internal/adapters/email"
	"jecati/internal/domain/admin"
)

// AdminStoreForSignup defines the store interface needed by Signup.
type AdminStoreForSignup interface {
	GetByEmail(ctx context.Context, email string) (admin.Admin, error)
	Save(ctx context.Context, a admin.Admin) error
}

// SignupInput carries input for the signup orchestrator.
type SignupInput struct {
	Email           string
	Fullname        string
	Password        string
	ConfirmPassword string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	AdminStore    AdminStoreForSignup
	Sender        email.Sender
	BaseURL       string // public base URL used to build the verification link
	BusinessInbox string // address the admin application is mailed to
	EmailFrom     string
	GenerateID    func() string
	GenerateToken func() string
	Now           func() time.Time
}

// Signup errors
var (
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
)

// ExecuteSignup creates an unverified admin account and mails the business
// inbox an application notice carrying the verification link. Exactly one
// email is sent per attempt; if the send fails the persisted account is NOT
// rolled back and the caller surfaces a generic signup error.
// PRE: Valid email, fullname and matching passwords
// POST: Unverified account persisted, one verification email sent
func ExecuteSignup(ctx context.Context, input SignupInput, deps SignupDeps) (admin.Admin, error) {
	if input.Password != input.ConfirmPassword {
		return admin.Admin{}, ErrPasswordMismatch
	}

	if _, err := deps.AdminStore.GetByEmail(ctx, input.Email); err == nil {
		return admin.Admin{}, ErrEmailAlreadyExists
	}

	acct := admin.Admin{
		ID:                deps.GenerateID(),
		Email:             input.Email,
		Fullname:          input.Fullname,
		Role:              admin.RoleAdmin,
		StartingDate:      deps.Now(),
		Verified:          false,
		VerificationToken: deps.GenerateToken(),
	}

	if err := acct.Validate(); err != nil {
		return admin.Admin{}, err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return admin.Admin{}, err
	}

	if err := deps.AdminStore.Save(ctx, acct); err != nil {
		return admin.Admin{}, err
	}

	slog.Info("auth_event", "event", "signup", "email", acct.Email)

	verificationLink := fmt.Sprintf("%s/verify?token=%s", deps.BaseURL, acct.VerificationToken)
	req := email.SendRequest{
		To:      []string{deps.BusinessInbox},
		From:    deps.EmailFrom,
		Subject: "Admin Applicant",
		HTML: fmt.Sprintf(
			`<p>Admin Application:</p><p>Name: %s</p><p>Email: %s</p><p><a href="%s">Verify Account</a></p>`,
			acct.Fullname, acct.Email, verificationLink,
		),
	}
	if _, err := deps.Sender.Send(ctx, req); err != nil {
		// The unverified account stays behind; the applicant can be
		// re-verified manually once email delivery recovers.
		return admin.Admin{}, fmt.Errorf("failed to send verification email: %w", err)
	}

	return acct, nil
}
