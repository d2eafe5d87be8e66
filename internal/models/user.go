package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats aggregates a user's listing activity.
// FirstCreated/LastCreated are nil when the user has no listings.
type UserStats struct {
	TotalListings int        `json:"total_listings"`
	FirstCreated  *time.Time `json:"first_created,omitempty"`
	LastCreated   *time.Time `json:"last_created,omitempty"`
}
