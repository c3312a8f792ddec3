package models

import "time"

type ApartmentStatus string

const (
	ApartmentAvailable ApartmentStatus = "AVAILABLE"
	ApartmentReserved  ApartmentStatus = "RESERVED"
	ApartmentSold      ApartmentStatus = "SOLD"
)

// Valid reports whether the status is one of the known values. Transitions
// between statuses are intentionally unconstrained.
func (s ApartmentStatus) Valid() bool {
	switch s {
	case ApartmentAvailable, ApartmentReserved, ApartmentSold:
		return true
	}
	return false
}

type Apartment struct {
	ID          string          `firestore:"id,omitempty" json:"id,omitempty"`
	FloorID     string          `firestore:"floorId,omitempty" json:"floorId,omitempty"`
	LotNumber   string          `firestore:"lotNumber,omitempty" json:"lotNumber,omitempty"`
	Type        string          `firestore:"type,omitempty" json:"type,omitempty"`
	Area        float64         `firestore:"area,omitempty" json:"area,omitempty"`
	Price       float64         `firestore:"price,omitempty" json:"price"`
	Status      ApartmentStatus `firestore:"status,omitempty" json:"status,omitempty"`
	Description string          `firestore:"description,omitempty" json:"description,omitempty"`
	MediaURLs   []string        `firestore:"mediaUrls,omitempty" json:"mediaUrls,omitempty"`
	Model3DURL  string          `firestore:"model3dUrl,omitempty" json:"model3dUrl,omitempty"`
	CreatedAt   time.Time       `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time       `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
