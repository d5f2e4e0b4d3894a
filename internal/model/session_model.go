package model

import "time"

// Session is the durable auth entry for one signed-in client: the backend
// bearer token plus identity fields cached for display without a round trip.
// Clients hold only the opaque session id.
type Session struct {
	ID        string    `json:"session_id"`
	Token     string    `json:"-"` // never JSON-encode
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}
