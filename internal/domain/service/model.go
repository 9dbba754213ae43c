package service

import (
	"errors"
	"strings"
	"time"
)

// Category constants. These mirror the two lines of business on the
// public pricing page.
const (
	CategoryConstruction = "construction services"
	CategoryEquipment    = "heavy equipment rental"
)

// Availability constants
const (
	Available    = "available"
	NotAvailable = "not available"
	Removed      = "removed"
)

// ValidCategories contains all valid category values.
var ValidCategories = []string{CategoryConstruction, CategoryEquipment}

// ValidAvailabilities contains all valid availability values.
var ValidAvailabilities = []string{Available, NotAvailable, Removed}

// Domain errors
var (
	ErrEmptyUnit           = errors.New("unit cannot be empty")
	ErrInvalidCategory     = errors.New("category must be construction services or heavy equipment rental")
	ErrInvalidAvailability = errors.New("availability must be available, not available or removed")
	ErrNegativePrice       = errors.New("price cannot be negative")
)

// Service is a sellable line item on the catalog: either a construction
// service or a piece of heavy equipment for rent. Unit doubles as the
// display name transactions reference by value; there is no referential
// integrity between the two.
type Service struct {
	ID           string
	Image        string // stored upload filename
	Category     string
	Unit         string
	Price        float64
	Availability string
	AddedDate    time.Time
	Deleted      bool // soft-delete flag set by bulk drop
}

// Validate checks if the Service has valid data.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Unit) == "" {
		return ErrEmptyUnit
	}
	if !contains(ValidCategories, s.Category) {
		return ErrInvalidCategory
	}
	if !contains(ValidAvailabilities, s.Availability) {
		return ErrInvalidAvailability
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// MarkRemoved soft-deletes the service: it stays in the collection but is
// excluded from the public pricing page.
// POST: Availability is removed, Deleted is true
func (s *Service) MarkRemoved() {
	s.Availability = Removed
	s.Deleted = true
}

// IsListed reports whether the service should appear on the pricing page.
// INVARIANT: Service fields are not mutated
func (s *Service) IsListed() bool {
	return !s.Deleted && s.Availability != Removed
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
