package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"jecati/internal/adapters/storage"
	domain "jecati/internal/domain/service"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new ServiceStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const serviceColumns = "id, image, category, unit, price, availability, added_date, deleted"

// GetByID retrieves a Service by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Service, error) {
	query := "SELECT " + serviceColumns + " FROM service WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanService(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Service{}, fmt.Errorf("service not found: %w", err)
	}
	return entity, err
}

// Save persists a Service to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Service) error {
	fields := []string{"id", "image", "category", "unit", "price", "availability", "added_date", "deleted"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"image=excluded.image",
		"category=excluded.category",
		"unit=excluded.unit",
		"price=excluded.price",
		"availability=excluded.availability",
		"added_date=excluded.added_date",
		"deleted=excluded.deleted",
	}

	query := fmt.Sprintf(
		"INSERT INTO service (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Image,
		entity.Category,
		entity.Unit,
		entity.Price,
		entity.Availability,
		entity.AddedDate.Format(storage.TimeFormat),
		boolToInt(entity.Deleted),
	)
	return err
}

// List retrieves Services based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Service, error) {
	var queryBuilder strings.Builder
	var args []interface{}
	var conds []string

	queryBuilder.WriteString("SELECT " + serviceColumns + " FROM service")

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.ListedOnly {
		conds = append(conds, "deleted = 0 AND availability != ?")
		args = append(args, domain.Removed)
	}
	if len(conds) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY added_date")

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []domain.Service
	for rows.Next() {
		entity, err := scanService(rows.Scan)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

// ListAll retrieves every Service, soft-deleted ones included. The admin
// dashboard shows the full collection.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Service, error) {
	return s.List(ctx, ListFilter{})
}

// scanService scans a row into a Service entity.
func scanService(scan func(...interface{}) error) (domain.Service, error) {
	var entity domain.Service
	var addedDate string
	var deleted int

	err := scan(
		&entity.ID,
		&entity.Image,
		&entity.Category,
		&entity.Unit,
		&entity.Price,
		&entity.Availability,
		&addedDate,
		&deleted,
	)
	if err != nil {
		return domain.Service{}, err
	}

	if entity.AddedDate, err = time.Parse(storage.TimeFormat, addedDate); err != nil {
		return domain.Service{}, fmt.Errorf("invalid added_date: %w", err)
	}
	entity.Deleted = deleted != 0
	return entity, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
