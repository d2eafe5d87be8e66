package service

import (
	"context"
	"time"

	"classifieds/internal/models"
	"classifieds/internal/repository"
)

// Logger is the slice of the app logger the services need.
type Logger interface {
	Infow(msg string, kv ...interface{})
	Errorw(msg string, kv ...interface{})
}

type Auth interface {
	Register(ctx context.Context, username, password string) (int, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Authenticate(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
	RunSessionSweeper(ctx context.Context, interval time.Duration)
}

// ListingInput is the validated form payload for create/update, built once
// at the boundary and passed by value.
type ListingInput struct {
	Title       string
	Location    string
	PriceEUR    int
	Description string
}

// ListingDetail is a listing with its category set attached.
type ListingDetail struct {
	models.Listing
	Categories []models.Category `json:"categories"`
}

type Listings interface {
	Create(ctx context.Context, ownerID int, in ListingInput) (int, error)
	Update(ctx context.Context, callerID, listingID int, in ListingInput) error
	Delete(ctx context.Context, callerID, listingID int) error
	Get(ctx context.Context, id int) (*ListingDetail, error)
	Search(ctx context.Context, query string, categoryID int) ([]models.Listing, error)
	SetCategories(ctx context.Context, callerID, listingID int, categoryIDs []int) error
	Categories(ctx context.Context) ([]models.Category, error)
}

type Inquiries interface {
	Add(ctx context.Context, senderID, listingID int, content string) (int, error)
	Delete(ctx context.Context, callerID, inquiryID int) error
	ListForListing(ctx context.Context, listingID int) ([]models.Inquiry, error)
}

// Profile aggregates a user's public page: identity, listing stats and
// authored-inquiry count.
type Profiles interface {
	Get(ctx context.Context, userID int) (*models.User, error)
	Stats(ctx context.Context, userID int) (models.UserStats, error)
	InquiryTotal(ctx context.Context, userID int) (int, error)
	Listings(ctx context.Context, userID int) ([]models.Listing, error)
}

type Service struct {
	Auth      Auth
	Listings  Listings
	Inquiries Inquiries
	Profiles  Profiles
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sessionTTL time.Duration, log Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repos.Users, repos.Sessions, sessionTTL, log),
		Listings:  NewListingService(repos.Listings),
		Inquiries: NewInquiryService(repos.Inquiries, repos.Listings),
		Profiles:  NewProfileService(repos.Users, repos.Listings),
	}
}
