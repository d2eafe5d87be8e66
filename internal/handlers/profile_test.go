package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"classifieds/internal/models"
	"classifieds/internal/service"
)

func TestGetProfile(t *testing.T) {
	joined := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	first := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	last := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	profiles := &mockProfiles{
		user:         &models.User{ID: 3, Username: "alice", PasswordHash: "$2a$10$secret", CreatedAt: joined},
		stats:        models.UserStats{TotalListings: 2, FirstCreated: &first, LastCreated: &last},
		inquiryTotal: 5,
		listings: []models.Listing{
			{ID: 8, UserID: 3, Title: "Loft", Location: "Graz", PriceEUR: 900, CreatedAt: last},
			{ID: 4, UserID: 3, Title: "Flat", Location: "Wien", PriceEUR: 700, CreatedAt: first},
		},
	}
	r := newAPIRouter(&service.Service{Profiles: profiles})

	w := doJSON(r, http.MethodGet, "/api/v1/users/3", "", false)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d (body=%s)", w.Code, w.Body.String())
	}

	var out struct {
		User struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
		Stats        models.UserStats `json:"stats"`
		InquiryTotal int              `json:"inquiry_total"`
		Listings     []models.Listing `json:"listings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.User.ID != 3 || out.User.Username != "alice" {
		t.Fatalf("unexpected user payload: %+v", out.User)
	}
	if out.Stats.TotalListings != 2 || out.InquiryTotal != 5 || len(out.Listings) != 2 {
		t.Fatalf("unexpected aggregates: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatal("password hash must never appear in the response")
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	r := newAPIRouter(&service.Service{Profiles: &mockProfiles{userErr: service.ErrNotFound}})

	w := doJSON(r, http.MethodGet, "/api/v1/users/99", "", false)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}
