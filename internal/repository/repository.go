package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"classifieds/internal/models"
	"classifieds/internal/repository/db"
)

// ErrUniqueViolation marks inserts rejected by a UNIQUE constraint
// (duplicate username). Wrapped so callers can errors.Is on it.
var ErrUniqueViolation = errors.New("unique constraint violation")

type Users interface {
	Create(ctx context.Context, username, passwordHash string, createdAt time.Time) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	ListingStats(ctx context.Context, userID int) (models.UserStats, error)
	InquiryTotal(ctx context.Context, userID int) (int, error)
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Listings interface {
	Create(ctx context.Context, l models.Listing) (int, error)
	Update(ctx context.Context, l models.Listing) error
	Delete(ctx context.Context, id int) error
	GetBasic(ctx context.Context, id int) (*models.Listing, error)
	Get(ctx context.Context, id int) (*models.Listing, error)
	Search(ctx context.Context, query string, categoryID int) ([]models.Listing, error)
	ListByUser(ctx context.Context, userID int) ([]models.Listing, error)
	ReplaceCategories(ctx context.Context, listingID int, categoryIDs []int) error
	CategoriesFor(ctx context.Context, listingID int) ([]models.Category, error)
	AllCategories(ctx context.Context) ([]models.Category, error)
}

type Inquiries interface {
	Create(ctx context.Context, in models.Inquiry) (int, error)
	GetByID(ctx context.Context, id int) (*models.Inquiry, error)
	Delete(ctx context.Context, id int) error
	ListForListing(ctx context.Context, listingID int) ([]models.Inquiry, error)
}

type Repository struct {
	Users     Users
	Sessions  Sessions
	Listings  Listings
	Inquiries Inquiries
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(database),
		Sessions:  NewSessionRepository(database),
		Listings:  NewListingRepository(database),
		Inquiries: NewInquiryRepository(database),
	}
}

// InitDB re-exports the db bootstrap so main only wires this package.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}

// sqliteTimeLayout is the TIMESTAMP format used across all tables.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}
