package service

import (
	"context"

	"classifieds/internal/models"
	"classifieds/internal/repository"
)

type ProfileService struct {
	users    repository.Users
	listings repository.Listings
}

func NewProfileService(users repository.Users, listings repository.Listings) *ProfileService {
	return &ProfileService{users: users, listings: listings}
}

var _ Profiles = (*ProfileService)(nil)

// Get returns the public user row.
func (s *ProfileService) Get(ctx context.Context, userID int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Stats returns listing count and first/last creation times; zeros and nils
// when the user has no listings.
func (s *ProfileService) Stats(ctx context.Context, userID int) (models.UserStats, error) {
	return s.users.ListingStats(ctx, userID)
}

// InquiryTotal returns how many inquiries the user has authored.
func (s *ProfileService) InquiryTotal(ctx context.Context, userID int) (int, error) {
	return s.users.InquiryTotal(ctx, userID)
}

// Listings returns the user's listings, newest first.
func (s *ProfileService) Listings(ctx context.Context, userID int) ([]models.Listing, error) {
	return s.listings.ListByUser(ctx, userID)
}
