package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"classifieds/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`

	selectListingStatsSQL = `SELECT COUNT(*), MIN(created_at), MAX(created_at) FROM listings WHERE user_id = ?`
	selectInquiryTotalSQL = `SELECT COUNT(*) FROM inquiries WHERE user_id = ?`
)

// Create inserts a new user and returns its ID. A duplicate username
// surfaces as ErrUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string, createdAt time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, passwordHash, formatTime(createdAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrUniqueViolation)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID fetches a user by ID. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return &u, nil
}

// ListingStats returns the listing count and first/last creation times for a
// user. MIN/MAX come back NULL when the user has no listings.
func (r *UserRepository) ListingStats(ctx context.Context, userID int) (models.UserStats, error) {
	var (
		stats models.UserStats
		first sql.NullTime
		last  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, selectListingStatsSQL, userID).
		Scan(&stats.TotalListings, &first, &last)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("select listing stats for user %d: %w", userID, err)
	}
	if first.Valid {
		t := first.Time.UTC()
		stats.FirstCreated = &t
	}
	if last.Valid {
		t := last.Time.UTC()
		stats.LastCreated = &t
	}
	return stats, nil
}

// InquiryTotal returns how many inquiries the user has authored.
func (r *UserRepository) InquiryTotal(ctx context.Context, userID int) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, selectInquiryTotalSQL, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("select inquiry total for user %d: %w", userID, err)
	}
	return total, nil
}
