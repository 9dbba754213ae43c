package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"jecati/internal/domain/admin"
)

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	AdminID         string
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// AdminStoreForChangePassword defines the store interface needed by ChangePassword.
type AdminStoreForChangePassword interface {
	GetByID(ctx context.Context, id string) (admin.Admin, error)
	Save(ctx context.Context, a admin.Admin) error
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	AdminStore AdminStoreForChangePassword
}

// Change-password errors
var (
	ErrIncompleteFields    = errors.New("all three password fields are required")
	ErrOldPasswordWrong    = errors.New("old password is incorrect")
	ErrNewPasswordMismatch = errors.New("new password and confirmation do not match")
)

// ExecuteChangePassword validates the old password and updates to the new
// one. The three fields are evaluated as a group, mirroring the profile
// editor: any partial fill is rejected before the store is consulted.
// PRE: AdminID identifies an existing account
// POST: Password hash is replaced
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	if input.OldPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return ErrIncompleteFields
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrNewPasswordMismatch
	}

	acct, err := deps.AdminStore.GetByID(ctx, input.AdminID)
	if err != nil {
		return errors.New("account not found")
	}

	if err := acct.CheckPassword(input.OldPassword); err != nil {
		return ErrOldPasswordWrong
	}

	if err := acct.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := deps.AdminStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "admin_id", input.AdminID)
	return nil
}
