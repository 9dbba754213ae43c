package session

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"log/slog"
	"time"

	"jecati/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite, so sessions survive process
// restarts the way the store-backed cookie sessions they replace did.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SessionStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create stores a new session and returns the token.
// PRE: adminID and email are non-empty
// POST: Session is stored, token is returned
func (s *SQLiteStore) Create(ctx context.Context, adminID, email string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO session (token, admin_id, email, created_at) VALUES (?, ?, ?, ?)",
		token, adminID, email, time.Now().Format(storage.TimeFormat),
	)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get retrieves a session by token. Expired sessions are deleted lazily.
// PRE: token is non-empty
// POST: Returns session if valid and not expired
func (s *SQLiteStore) Get(ctx context.Context, token string) (Session, bool) {
	row := s.db.QueryRowContext(ctx,
		"SELECT token, admin_id, email, created_at FROM session WHERE token = ?", token)

	var sess Session
	var createdAt string
	if err := row.Scan(&sess.Token, &sess.AdminID, &sess.Email, &createdAt); err != nil {
		if err != sql.ErrNoRows {
			slog.Error("session_lookup_failed", "error", err.Error())
		}
		return Session{}, false
	}

	var err error
	if sess.CreatedAt, err = time.Parse(storage.TimeFormat, createdAt); err != nil {
		slog.Error("session_bad_timestamp", "error", err.Error())
		return Session{}, false
	}

	if sess.IsExpired(time.Now()) {
		_ = s.Delete(ctx, token)
		return Session{}, false
	}
	return sess, true
}

// Delete removes a session by token.
// PRE: token is non-empty
// POST: Session with given token is removed
func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE token = ?", token)
	return err
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
