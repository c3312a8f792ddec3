package models

import "time"

// Picture is one image in an apartment's ordered gallery. Order is a
// zero-based display index managed by the picture service.
type Picture struct {
	ID          string    `firestore:"id,omitempty" json:"id,omitempty"`
	ApartmentID string    `firestore:"apartmentId,omitempty" json:"apartmentId,omitempty"`
	URL         string    `firestore:"url,omitempty" json:"url,omitempty"`
	Type        string    `firestore:"type,omitempty" json:"type,omitempty"`
	Order       int       `firestore:"order" json:"order"`
	CreatedAt   time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
}
