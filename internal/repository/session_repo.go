package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"classifieds/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL = `INSERT INTO sessions (token, user_id, csrf_token, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`
	selectSessionSQL = `SELECT token, user_id, csrf_token, created_at, expires_at FROM sessions WHERE token = ?`
	deleteSessionSQL = `DELETE FROM sessions WHERE token = ?`
	deleteExpiredSQL = `DELETE FROM sessions WHERE expires_at <= ?`
)

// Create persists a new session row.
func (r *SessionRepository) Create(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL,
		s.Token,
		s.UserID,
		s.CSRFToken,
		formatTime(s.CreatedAt),
		formatTime(s.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("insert session for user %d: %w", s.UserID, err)
	}
	return nil
}

// GetByToken fetches a session by its token. Returns (nil, nil) if not found.
// Expiry is the service's call; the row is returned as stored.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, selectSessionSQL, token).
		Scan(&s.Token, &s.UserID, &s.CSRFToken, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	return &s, nil
}

// Delete removes a session row. Deleting a missing token is not an error:
// logout must be idempotent.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes all sessions past their expiry and reports how many
// were dropped.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredSQL, formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted sessions: %w", err)
	}
	return n, nil
}
