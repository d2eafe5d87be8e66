package models

import "time"

// Session ties a browser client to a user identity. The CSRF token is minted
// together with the session token at login and both die together at logout.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	CSRFToken string    `json:"csrf_token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
