package service

import (
	"context"

	domain "jecati/internal/domain/service"
)

// Store persists Service state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Service, error)
	Save(ctx context.Context, value domain.Service) error
	List(ctx context.Context, filter ListFilter) ([]domain.Service, error)
	ListAll(ctx context.Context) ([]domain.Service, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Category   string
	ListedOnly bool // exclude soft-deleted and removed items
}
