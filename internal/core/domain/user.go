package domain

import "time"

// User models a registered account. PasswordHash is an opaque bcrypt hash
// and must never appear in a response body.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Image        string `json:"image,omitempty"`
	// PlaceIDs is the inverse side of Place.OwnerID: every id here must
	// resolve to a Place whose owner is this user. The place service keeps
	// both sides in step inside one transaction.
	PlaceIDs  []string  `json:"places"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
