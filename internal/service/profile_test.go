package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"classifieds/internal/models"
)

func TestProfileService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		users := &mockUserRepo{
			GetByIDFn: func(id int) (*models.User, error) {
				return &models.User{ID: id, Username: "alice"}, nil
			},
		}
		svc := NewProfileService(users, &mockListingRepo{})

		u, err := svc.Get(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Username != "alice" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("missing user is not found", func(t *testing.T) {
		users := &mockUserRepo{
			GetByIDFn: func(id int) (*models.User, error) { return nil, nil },
		}
		svc := NewProfileService(users, &mockListingRepo{})

		if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestProfileService_StatsAndListings(t *testing.T) {
	first := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	users := &mockUserRepo{
		ListingStatsFn: func(userID int) (models.UserStats, error) {
			return models.UserStats{TotalListings: 2, FirstCreated: &first}, nil
		},
		InquiryTotalFn: func(userID int) (int, error) { return 4, nil },
	}
	listings := &mockListingRepo{
		ListByUserFn: func(userID int) ([]models.Listing, error) {
			return []models.Listing{{ID: 2}, {ID: 1}}, nil
		},
	}
	svc := NewProfileService(users, listings)

	stats, err := svc.Stats(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalListings != 2 || stats.FirstCreated == nil {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	total, err := svc.InquiryTotal(context.Background(), 5)
	if err != nil || total != 4 {
		t.Fatalf("unexpected inquiry total: %d, %v", total, err)
	}

	out, err := svc.Listings(context.Background(), 5)
	if err != nil || len(out) != 2 || out[0].ID != 2 {
		t.Fatalf("unexpected listings: %v, %v", out, err)
	}
}
