package admin

import (
	"context"

	domain "jecati/internal/domain/admin"
)

// Store persists Admin state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
	GetByVerificationToken(ctx context.Context, token string) (domain.Admin, error)
	Save(ctx context.Context, value domain.Admin) error
	List(ctx context.Context) ([]domain.Admin, error)
	Count(ctx context.Context) (int, error)
}
