package models

import "time"

// Inquiry is a message sent by a user to a listing's owner.
type Inquiry struct {
	ID        int       `json:"id"`
	ListingID int       `json:"listing_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username,omitempty"` // sender, filled on joined reads
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
}
