package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is an application account. Email is unique across the collection,
// checked at service level rather than enforced by the store.
type User struct {
	ID        string    `firestore:"id,omitempty" json:"id,omitempty"`
	Email     string    `firestore:"email,omitempty" json:"email,omitempty"`
	Password  string    `firestore:"password,omitempty" json:"-"`
	Role      string    `firestore:"role,omitempty" json:"role,omitempty"`
	Enabled   bool      `firestore:"enabled" json:"enabled"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
