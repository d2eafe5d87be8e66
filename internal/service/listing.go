package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"classifieds/internal/models"
	"classifieds/internal/repository"
)

const (
	maxTitleLen       = 100
	maxLocationLen    = 100
	maxDescriptionLen = 5000
)

type ListingService struct {
	listings repository.Listings
}

func NewListingService(listings repository.Listings) *ListingService {
	return &ListingService{listings: listings}
}

var _ Listings = (*ListingService)(nil)

// validateInput applies the shared create/update rules. Non-numeric and
// non-positive prices collapse into the same coarse error on purpose.
func validateInput(in ListingInput) (ListingInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Title == "" || utf8.RuneCountInString(in.Title) > maxTitleLen:
		return in, validationf("title must be 1-%d characters", maxTitleLen)
	case in.Location == "" || utf8.RuneCountInString(in.Location) > maxLocationLen:
		return in, validationf("location must be 1-%d characters", maxLocationLen)
	case in.Description == "" || utf8.RuneCountInString(in.Description) > maxDescriptionLen:
		return in, validationf("description must be 1-%d characters", maxDescriptionLen)
	case in.PriceEUR <= 0:
		return in, validationf("price must be a positive integer")
	}
	return in, nil
}

// Create validates the input and persists a listing with a server-assigned
// timestamp.
func (s *ListingService) Create(ctx context.Context, ownerID int, in ListingInput) (int, error) {
	in, err := validateInput(in)
	if err != nil {
		return 0, err
	}
	return s.listings.Create(ctx, models.Listing{
		UserID:      ownerID,
		Title:       in.Title,
		Location:    in.Location,
		PriceEUR:    in.PriceEUR,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	})
}

// Update rewrites a listing after checking the caller owns it.
func (s *ListingService) Update(ctx context.Context, callerID, listingID int, in ListingInput) error {
	in, err := validateInput(in)
	if err != nil {
		return err
	}
	if err := s.requireOwner(ctx, callerID, listingID); err != nil {
		return err
	}
	return s.listings.Update(ctx, models.Listing{
		ID:          listingID,
		Title:       in.Title,
		Location:    in.Location,
		PriceEUR:    in.PriceEUR,
		Description: in.Description,
	})
}

// Delete removes a listing the caller owns; the store cascades to join rows
// and inquiries.
func (s *ListingService) Delete(ctx context.Context, callerID, listingID int) error {
	if err := s.requireOwner(ctx, callerID, listingID); err != nil {
		return err
	}
	return s.listings.Delete(ctx, listingID)
}

// Get returns a listing with owner username and its category set.
func (s *ListingService) Get(ctx context.Context, id int) (*ListingDetail, error) {
	l, err := s.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}
	cats, err := s.listings.CategoriesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ListingDetail{Listing: *l, Categories: cats}, nil
}

// Search is a pure filter over the catalogue, newest first. Empty query and
// zero categoryID mean no filtering.
func (s *ListingService) Search(ctx context.Context, query string, categoryID int) ([]models.Listing, error) {
	return s.listings.Search(ctx, strings.TrimSpace(query), categoryID)
}

// SetCategories atomically replaces the category set of a caller-owned
// listing. Duplicate ids are ignored, repeat calls with the same set are
// idempotent.
func (s *ListingService) SetCategories(ctx context.Context, callerID, listingID int, categoryIDs []int) error {
	if err := s.requireOwner(ctx, callerID, listingID); err != nil {
		return err
	}
	return s.listings.ReplaceCategories(ctx, listingID, categoryIDs)
}

// Categories lists every category, name-ordered.
func (s *ListingService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.listings.AllCategories(ctx)
}

// requireOwner distinguishes "no such listing" from "not yours".
func (s *ListingService) requireOwner(ctx context.Context, callerID, listingID int) error {
	l, err := s.listings.GetBasic(ctx, listingID)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrNotFound
	}
	if l.UserID != callerID {
		return ErrForbidden
	}
	return nil
}
