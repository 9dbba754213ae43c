package transaction

import (
	"errors"
	"strings"
	"time"
)

// Status constants
const (
	StatusPaid    = "paid"
	StatusUnpaid  = "unpaid"
	StatusOngoing = "on-going"
	StatusOverdue = "overdue"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusPaid, StatusUnpaid, StatusOngoing, StatusOverdue}

// Domain errors
var (
	ErrEmptyContactPerson = errors.New("contact person cannot be empty")
	ErrEmptyContactNumber = errors.New("contact number cannot be empty")
	ErrEmptyEmail         = errors.New("email cannot be empty")
	ErrEmptyLocation      = errors.New("location cannot be empty")
	ErrNoServices         = errors.New("transaction must reference at least one service")
	ErrInvalidQuantity    = errors.New("service quantity must be at least 1")
	ErrInvalidStatus      = errors.New("status must be paid, unpaid, on-going or overdue")
)

// Line is one requested catalog unit within a transaction. Unit is the
// catalog display name, referenced by value without a foreign-key check.
type Line struct {
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
}

// Transaction is a customer job or booking record. The admin dashboard
// lists transactions but never mutates them.
type Transaction struct {
	ID            string
	ContactPerson string
	ContactNumber string
	Email         string
	Services      []Line
	StartingDate  time.Time
	DueDate       time.Time
	Location      string
	Status        string
}

// Validate checks if the Transaction has valid data.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ContactPerson) == "" {
		return ErrEmptyContactPerson
	}
	if strings.TrimSpace(t.ContactNumber) == "" {
		return ErrEmptyContactNumber
	}
	if strings.TrimSpace(t.Email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(t.Location) == "" {
		return ErrEmptyLocation
	}
	if len(t.Services) == 0 {
		return ErrNoServices
	}
	for _, line := range t.Services {
		if line.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	if !validStatus(t.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsOverdue reports whether the transaction is past its due date and unpaid.
// INVARIANT: Transaction fields are not mutated
func (t *Transaction) IsOverdue(now time.Time) bool {
	return t.Status != StatusPaid && !t.DueDate.IsZero() && now.After(t.DueDate)
}

func validStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
