package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"classifieds/internal/models"
)

type InquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

var _ Inquiries = (*InquiryRepository)(nil)

const (
	insertInquirySQL = `INSERT INTO inquiries (listing_id, user_id, content, sent_at) VALUES (?, ?, ?, ?)`
	selectInquirySQL = `SELECT id, listing_id, user_id, content, sent_at FROM inquiries WHERE id = ?`
	deleteInquirySQL = `DELETE FROM inquiries WHERE id = ?`

	selectForListingSQL = `SELECT i.id, i.listing_id, i.user_id, i.content, i.sent_at, u.username
		FROM inquiries i JOIN users u ON u.id = i.user_id
		WHERE i.listing_id = ? ORDER BY i.id DESC`
)

// Create inserts an inquiry and returns its ID.
func (r *InquiryRepository) Create(ctx context.Context, in models.Inquiry) (int, error) {
	res, err := r.db.ExecContext(ctx, insertInquirySQL,
		in.ListingID, in.UserID, in.Content, formatTime(in.SentAt))
	if err != nil {
		return 0, fmt.Errorf("insert inquiry for listing %d: %w", in.ListingID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for inquiry: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches an inquiry. Returns (nil, nil) if not found.
func (r *InquiryRepository) GetByID(ctx context.Context, id int) (*models.Inquiry, error) {
	var in models.Inquiry
	err := r.db.QueryRowContext(ctx, selectInquirySQL, id).
		Scan(&in.ID, &in.ListingID, &in.UserID, &in.Content, &in.SentAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select inquiry %d: %w", id, err)
	}
	return &in, nil
}

// Delete removes an inquiry.
func (r *InquiryRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteInquirySQL, id); err != nil {
		return fmt.Errorf("delete inquiry %d: %w", id, err)
	}
	return nil
}

// ListForListing returns a listing's inquiries joined with the sender's
// username, newest first by id.
func (r *InquiryRepository) ListForListing(ctx context.Context, listingID int) ([]models.Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, selectForListingSQL, listingID)
	if err != nil {
		return nil, fmt.Errorf("select inquiries for listing %d: %w", listingID, err)
	}
	defer rows.Close()

	out := make([]models.Inquiry, 0, 8)
	for rows.Next() {
		var in models.Inquiry
		if err := rows.Scan(&in.ID, &in.ListingID, &in.UserID, &in.Content, &in.SentAt, &in.Username); err != nil {
			return nil, fmt.Errorf("scan inquiry row: %w", err)
		}
		in.SentAt = in.SentAt.UTC()
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiry rows: %w", err)
	}
	return out, nil
}
