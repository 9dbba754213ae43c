package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"jecati/internal/domain/admin"
)

// AdminStoreForVerify defines the store interface needed by Verify.
type AdminStoreForVerify interface {
	GetByVerificationToken(ctx context.Context, token string) (admin.Admin, error)
	Save(ctx context.Context, a admin.Admin) error
}

// VerifyDeps holds dependencies for Verify.
type VerifyDeps struct {
	AdminStore AdminStoreForVerify
}

// ErrTokenNotFound is returned when no account carries the presented token.
var ErrTokenNotFound = errors.New("invalid verification token")

// ExecuteVerify flips the account matching the token to verified. The token
// is not invalidated afterwards, so replaying the link finds the same
// account and succeeds without changing state.
// PRE: token is non-empty
// POST: Account is verified; calling again with the same token is a no-op
func ExecuteVerify(ctx context.Context, token string, deps VerifyDeps) (admin.Admin, error) {
	if token == "" {
		return admin.Admin{}, ErrTokenNotFound
	}

	acct, err := deps.AdminStore.GetByVerificationToken(ctx, token)
	if err != nil {
		return admin.Admin{}, ErrTokenNotFound
	}

	acct.Verify()
	if err := deps.AdminStore.Save(ctx, acct); err != nil {
		return admin.Admin{}, err
	}

	slog.Info("auth_event", "event", "account_verified", "email", acct.Email)
	return acct, nil
}
