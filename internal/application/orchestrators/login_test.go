package orchestrators

import (
	"context"
	"errors"
	"testing"

	"jecati/internal/domain/admin"
)

func seedAccount(t *testing.T, store *mockAdminStore, verified bool) admin.Admin {
	t.Helper()
	acct := admin.Admin{ID: "a1", Email: "a@b.com", Verified: verified}
	if err := acct.SetPassword("pw12345"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	store.admins[acct.ID] = acct
	return acct
}

func TestExecuteLogin_Success(t *testing.T) {
	store := newMockAdminStore()
	seedAccount(t, store, true)

	res, err := ExecuteLogin(context.Background(), LoginInput{Email: "a@b.com", Password: "pw12345"}, LoginDeps{AdminStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AdminID != "a1" || res.Email != "a@b.com" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestExecuteLogin_UnknownEmail(t *testing.T) {
	store := newMockAdminStore()

	_, err := ExecuteLogin(context.Background(), LoginInput{Email: "ghost@b.com", Password: "pw12345"}, LoginDeps{AdminStore: store})
	if !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("expected ErrInvalidUsername, got %v", err)
	}
}

// TestExecuteLogin_WrongPasswordBeforeVerified pins the check order: a wrong
// password on an unverified account reports the password error, not the
// verification block.
func TestExecuteLogin_WrongPasswordBeforeVerified(t *testing.T) {
	store := newMockAdminStore()
	seedAccount(t, store, false)

	_, err := ExecuteLogin(context.Background(), LoginInput{Email: "a@b.com", Password: "wrong"}, LoginDeps{AdminStore: store})
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

// TestExecuteLogin_UnverifiedBlocked pins the other ordering: a correct
// password on an unverified account is blocked on verification alone.
func TestExecuteLogin_UnverifiedBlocked(t *testing.T) {
	store := newMockAdminStore()
	seedAccount(t, store, false)

	_, err := ExecuteLogin(context.Background(), LoginInput{Email: "a@b.com", Password: "pw12345"}, LoginDeps{AdminStore: store})
	if !errors.Is(err, ErrNotVerified) {
		t.Errorf("expected ErrNotVerified, got %v", err)
	}
}
