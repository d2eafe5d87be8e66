package models

import "time"

// Listing is a user-created property advertisement.
type Listing struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Username    string    `json:"username,omitempty"` // owner, filled on joined reads
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	PriceEUR    int       `json:"price_eur"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Category tags listings, e.g. "Apartment".
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
