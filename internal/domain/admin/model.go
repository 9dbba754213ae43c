package admin

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxEmailLength    = 254
	MaxFullnameLength = 120
)

// RoleAdmin is the only role an admin account can hold.
const RoleAdmin = "admin"

// Domain errors
var (
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInvalidEmail    = errors.New("email must contain '@'")
	ErrEmptyFullname   = errors.New("full name cannot be empty")
	ErrInvalidRole     = errors.New("role must be admin")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrMissingToken    = errors.New("verification token cannot be empty")
	ErrAlreadyVerified = errors.New("account is already verified")
)

// Admin holds state for an admin account. Accounts are created unverified on
// signup and become verified when the verification token is presented.
type Admin struct {
	ID                string
	Email             string
	PasswordHash      string `json:"-"`
	Fullname          string
	Role              string
	StartingDate      time.Time
	EndDate           time.Time // zero when still active
	Verified          bool
	VerificationToken string
}

// Validate checks if the Admin has valid data.
func (a *Admin) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(a.Fullname) == "" {
		return ErrEmptyFullname
	}
	if len(a.Fullname) > MaxFullnameLength {
		return errors.New("full name cannot exceed 120 characters")
	}
	if a.Role != RoleAdmin {
		return ErrInvalidRole
	}
	if a.VerificationToken == "" {
		return ErrMissingToken
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty
// POST: PasswordHash is set to bcrypt hash
func (a *Admin) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// INVARIANT: Admin fields are not mutated
func (a *Admin) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// Verify marks the account as verified. Verifying an already-verified
// account is a no-op so that replaying a verification link never errors.
// POST: Verified is true
func (a *Admin) Verify() {
	a.Verified = true
}
