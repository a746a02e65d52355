package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// SessionTTL matches the browser cookie's max-age of 604800 seconds.
const SessionTTL = 7 * 24 * time.Hour

// SessionRepository persists the opaque session token between runs.
// The token is never decoded or validated locally; the server is
// authoritative, the repository only honors the expiry.
type SessionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessionRepository creates a session repository over an open database.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

// Save stores token as the single active session, replacing any previous
// token. Saving twice leaves exactly the second token active.
func (r *SessionRepository) Save(token string) error {
	expiresAt := r.now().Add(SessionTTL)
	_, err := r.db.Exec(
		"INSERT OR REPLACE INTO sessions (id, token, expires_at) VALUES (1, ?, ?)",
		token, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored token, or "" when no session exists or the stored
// one has expired. Expired rows are purged on read.
func (r *SessionRepository) Load() (string, error) {
	var (
		token     string
		expiresAt time.Time
	)

	err := r.db.QueryRow("SELECT token, expires_at FROM sessions WHERE id = 1").Scan(&token, &expiresAt)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	if r.now().After(expiresAt) {
		if err := r.Clear(); err != nil {
			return "", err
		}
		return "", nil
	}

	return token, nil
}

// Clear removes any stored session. Idempotent.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
