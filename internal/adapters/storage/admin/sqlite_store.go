package admin

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"jecati/internal/adapters/storage"
	domain "jecati/internal/domain/admin"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new AdminStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const adminColumns = "id, email, password_hash, fullname, role, starting_date, end_date, verified, verification_token"

// GetByID retrieves an Admin by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	query := "SELECT " + adminColumns + " FROM admin WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanAdmin(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Admin{}, fmt.Errorf("admin not found: %w", err)
	}
	return entity, err
}

// GetByEmail retrieves an Admin by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	query := "SELECT " + adminColumns + " FROM admin WHERE email = ?"
	row := s.db.QueryRowContext(ctx, query, email)

	entity, err := scanAdmin(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Admin{}, fmt.Errorf("admin not found: %w", err)
	}
	return entity, err
}

// GetByVerificationToken retrieves an Admin by its verification token.
// PRE: token is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByVerificationToken(ctx context.Context, token string) (domain.Admin, error) {
	query := "SELECT " + adminColumns + " FROM admin WHERE verification_token = ?"
	row := s.db.QueryRowContext(ctx, query, token)

	entity, err := scanAdmin(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Admin{}, fmt.Errorf("admin not found: %w", err)
	}
	return entity, err
}

// Save persists an Admin to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Admin) error {
	fields := []string{"id", "email", "password_hash", "fullname", "role", "starting_date", "end_date", "verified", "verification_token"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"email=excluded.email",
		"password_hash=excluded.password_hash",
		"fullname=excluded.fullname",
		"role=excluded.role",
		"end_date=excluded.end_date",
		"verified=excluded.verified",
		"verification_token=excluded.verification_token",
	}

	query := fmt.Sprintf(
		"INSERT INTO admin (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	var endDate interface{}
	if !entity.EndDate.IsZero() {
		endDate = entity.EndDate.Format(storage.TimeFormat)
	}

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Email,
		entity.PasswordHash,
		entity.Fullname,
		entity.Role,
		entity.StartingDate.Format(storage.TimeFormat),
		endDate,
		boolToInt(entity.Verified),
		entity.VerificationToken,
	)
	return err
}

// List retrieves all Admins.
// POST: Returns every admin account
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Admin, error) {
	query := "SELECT " + adminColumns + " FROM admin ORDER BY starting_date"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []domain.Admin
	for rows.Next() {
		entity, err := scanAdmin(rows.Scan)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

// Count returns the number of admin accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin").Scan(&count)
	return count, err
}

// scanAdmin scans a row into an Admin entity.
func scanAdmin(scan func(...interface{}) error) (domain.Admin, error) {
	var entity domain.Admin
	var startingDate string
	var endDate sql.NullString
	var verified int

	err := scan(
		&entity.ID,
		&entity.Email,
		&entity.PasswordHash,
		&entity.Fullname,
		&entity.Role,
		&startingDate,
		&endDate,
		&verified,
		&entity.VerificationToken,
	)
	if err != nil {
		return domain.Admin{}, err
	}

	if entity.StartingDate, err = time.Parse(storage.TimeFormat, startingDate); err != nil {
		return domain.Admin{}, fmt.Errorf("invalid starting_date: %w", err)
	}
	if endDate.Valid {
		if entity.EndDate, err = time.Parse(storage.TimeFormat, endDate.String); err != nil {
			return domain.Admin{}, fmt.Errorf("invalid end_date: %w", err)
		}
	}
	entity.Verified = verified != 0
	return entity, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
