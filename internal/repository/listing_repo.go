package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"classifieds/internal/models"
)

type ListingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

var _ Listings = (*ListingRepository)(nil)

const (
	insertListingSQL = `INSERT INTO listings (user_id, title, location, price_eur, description, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	updateListingSQL = `UPDATE listings SET title = ?, location = ?, price_eur = ?, description = ? WHERE id = ?`

	deleteListingSQL = `DELETE FROM listings WHERE id = ?`

	selectListingBasicSQL = `SELECT id, user_id, title, location, price_eur, description, created_at FROM listings WHERE id = ?`

	selectListingJoinedSQL = `SELECT l.id, l.user_id, l.title, l.location, l.price_eur, l.description, l.created_at, u.username
		FROM listings l JOIN users u ON u.id = l.user_id WHERE l.id = ?`

	selectListingsByUserSQL = `SELECT id, user_id, title, location, price_eur, description, created_at
		FROM listings WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	deleteListingCategoriesSQL = `DELETE FROM listing_categories WHERE listing_id = ?`
	insertListingCategorySQL   = `INSERT OR IGNORE INTO listing_categories (listing_id, category_id) VALUES (?, ?)`

	selectCategoriesForSQL = `SELECT c.id, c.name FROM categories c
		JOIN listing_categories lc ON lc.category_id = c.id
		WHERE lc.listing_id = ? ORDER BY c.name`

	selectAllCategoriesSQL = `SELECT id, name FROM categories ORDER BY name`
)

// Create inserts a listing and returns its ID.
func (r *ListingRepository) Create(ctx context.Context, l models.Listing) (int, error) {
	res, err := r.db.ExecContext(ctx, insertListingSQL,
		l.UserID, l.Title, l.Location, l.PriceEUR, l.Description, formatTime(l.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert listing: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for listing: %w", err)
	}
	return int(lastID), nil
}

// Update rewrites the mutable listing columns. Ownership is checked one layer
// up against GetBasic; the owner and creation time never change here.
func (r *ListingRepository) Update(ctx context.Context, l models.Listing) error {
	if _, err := r.db.ExecContext(ctx, updateListingSQL,
		l.Title, l.Location, l.PriceEUR, l.Description, l.ID); err != nil {
		return fmt.Errorf("update listing %d: %w", l.ID, err)
	}
	return nil
}

// Delete removes a listing. Join rows and inquiries go with it via
// ON DELETE CASCADE.
func (r *ListingRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteListingSQL, id); err != nil {
		return fmt.Errorf("delete listing %d: %w", id, err)
	}
	return nil
}

// GetBasic fetches a listing without joins. Returns (nil, nil) if not found.
func (r *ListingRepository) GetBasic(ctx context.Context, id int) (*models.Listing, error) {
	var l models.Listing
	err := r.db.QueryRowContext(ctx, selectListingBasicSQL, id).
		Scan(&l.ID, &l.UserID, &l.Title, &l.Location, &l.PriceEUR, &l.Description, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select listing %d: %w", id, err)
	}
	return &l, nil
}

// Get fetches a listing joined with its owner's username. Returns (nil, nil)
// if not found.
func (r *ListingRepository) Get(ctx context.Context, id int) (*models.Listing, error) {
	var l models.Listing
	err := r.db.QueryRowContext(ctx, selectListingJoinedSQL, id).
		Scan(&l.ID, &l.UserID, &l.Title, &l.Location, &l.PriceEUR, &l.Description, &l.CreatedAt, &l.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select listing %d: %w", id, err)
	}
	return &l, nil
}

// Search returns listings newest first, filtered by a case-insensitive
// substring match on title/location and/or by category membership. Empty
// query and zero categoryID return the full catalogue.
func (r *ListingRepository) Search(ctx context.Context, query string, categoryID int) ([]models.Listing, error) {
	var (
		conds []string
		args  []any
	)

	if query != "" {
		like := "%" + query + "%"
		conds = append(conds, "(l.title LIKE ? OR l.location LIKE ?)")
		args = append(args, like, like)
	}
	if categoryID > 0 {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM listing_categories lc
			WHERE lc.listing_id = l.id AND lc.category_id = ?
		)`)
		args = append(args, categoryID)
	}

	q := `SELECT l.id, l.user_id, l.title, l.location, l.price_eur, l.description, l.created_at, u.username
		FROM listings l JOIN users u ON u.id = l.user_id`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY l.created_at DESC, l.id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows, true)
}

// ListByUser returns all listings owned by a user, newest first.
func (r *ListingRepository) ListByUser(ctx context.Context, userID int) ([]models.Listing, error) {
	rows, err := r.db.QueryContext(ctx, selectListingsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select listings for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanListings(rows, false)
}

// ReplaceCategories swaps the full category set of a listing in one
// transaction: delete then insert, all-or-nothing. INSERT OR IGNORE makes
// duplicate ids harmless.
func (r *ListingRepository) ReplaceCategories(ctx context.Context, listingID int, categoryIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin category replacement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteListingCategoriesSQL, listingID); err != nil {
		return fmt.Errorf("clear categories for listing %d: %w", listingID, err)
	}
	for _, cid := range categoryIDs {
		if _, err := tx.ExecContext(ctx, insertListingCategorySQL, listingID, cid); err != nil {
			return fmt.Errorf("attach category %d to listing %d: %w", cid, listingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit category replacement: %w", err)
	}
	return nil
}

// CategoriesFor returns the categories attached to a listing, name-ordered.
func (r *ListingRepository) CategoriesFor(ctx context.Context, listingID int) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoriesForSQL, listingID)
	if err != nil {
		return nil, fmt.Errorf("select categories for listing %d: %w", listingID, err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

// AllCategories returns every category, name-ordered.
func (r *ListingRepository) AllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectAllCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

func scanListings(rows *sql.Rows, withUsername bool) ([]models.Listing, error) {
	out := make([]models.Listing, 0, 16)
	for rows.Next() {
		var l models.Listing
		var err error
		if withUsername {
			err = rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Location, &l.PriceEUR, &l.Description, &l.CreatedAt, &l.Username)
		} else {
			err = rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Location, &l.PriceEUR, &l.Description, &l.CreatedAt)
		}
		if err != nil {
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		l.CreatedAt = l.CreatedAt.UTC()
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listing rows: %w", err)
	}
	return out, nil
}

func scanCategories(rows *sql.Rows) ([]models.Category, error) {
	out := make([]models.Category, 0, 8)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return out, nil
}
