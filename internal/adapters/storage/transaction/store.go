package transaction

import (
	"context"

	domain "jecati/internal/domain/transaction"
)

// Store persists Transaction state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Transaction, error)
	Save(ctx context.Context, value domain.Transaction) error
	List(ctx context.Context) ([]domain.Transaction, error)
}
