package transaction

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jecati/internal/adapters/storage"
	domain "jecati/internal/domain/transaction"
)

// SQLiteStore implements Store using SQLite. The service lines of a
// transaction are stored as a JSON array in a single column, matching the
// document shape they arrive in.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new TransactionStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const transactionColumns = "id, contact_person, contact_number, email, services, starting_date, due_date, location, status"

// GetByID retrieves a Transaction by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM customer_transaction WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Transaction{}, fmt.Errorf("transaction not found: %w", err)
	}
	return entity, err
}

// Save persists a Transaction to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Transaction) error {
	services, err := json.Marshal(entity.Services)
	if err != nil {
		return fmt.Errorf("failed to encode service lines: %w", err)
	}

	fields := []string{"id", "contact_person", "contact_number", "email", "services", "starting_date", "due_date", "location", "status"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"contact_person=excluded.contact_person",
		"contact_number=excluded.contact_number",
		"email=excluded.email",
		"services=excluded.services",
		"due_date=excluded.due_date",
		"location=excluded.location",
		"status=excluded.status",
	}

	query := fmt.Sprintf(
		"INSERT INTO customer_transaction (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = s.db.ExecContext(ctx, query,
		entity.ID,
		entity.ContactPerson,
		entity.ContactNumber,
		entity.Email,
		string(services),
		entity.StartingDate.Format(storage.TimeFormat),
		entity.DueDate.Format(storage.TimeFormat),
		entity.Location,
		entity.Status,
	)
	return err
}

// List retrieves all Transactions.
// POST: Returns every transaction ordered by starting date
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM customer_transaction ORDER BY starting_date DESC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []domain.Transaction
	for rows.Next() {
		entity, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

// scanTransaction scans a row into a Transaction entity.
func scanTransaction(scan func(...interface{}) error) (domain.Transaction, error) {
	var entity domain.Transaction
	var services, startingDate, dueDate string

	err := scan(
		&entity.ID,
		&entity.ContactPerson,
		&entity.ContactNumber,
		&entity.Email,
		&services,
		&startingDate,
		&dueDate,
		&entity.Location,
		&entity.Status,
	)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := json.Unmarshal([]byte(services), &entity.Services); err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid service lines: %w", err)
	}
	if entity.StartingDate, err = time.Parse(storage.TimeFormat, startingDate); err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid starting_date: %w", err)
	}
	if entity.DueDate, err = time.Parse(storage.TimeFormat, dueDate); err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid due_date: %w", err)
	}
	return entity, nil
}
