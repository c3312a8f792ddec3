package models

import "time"

type BuyerStatus string

const (
	BuyerInterested    BuyerStatus = "INTERESTED"
	BuyerContacted     BuyerStatus = "CONTACTED"
	BuyerNegotiating   BuyerStatus = "NEGOTIATING"
	BuyerPurchased     BuyerStatus = "PURCHASED"
	BuyerNotInterested BuyerStatus = "NOT_INTERESTED"
)

func (s BuyerStatus) Valid() bool {
	switch s {
	case BuyerInterested, BuyerContacted, BuyerNegotiating, BuyerPurchased, BuyerNotInterested:
		return true
	}
	return false
}

type Buyer struct {
	ID                     string      `firestore:"id,omitempty" json:"id,omitempty"`
	Name                   string      `firestore:"name,omitempty" json:"name,omitempty"`
	Email                  string      `firestore:"email,omitempty" json:"email,omitempty"`
	Phone                  string      `firestore:"phone,omitempty" json:"phone,omitempty"`
	Status                 BuyerStatus `firestore:"status,omitempty" json:"status,omitempty"`
	InterestedApartmentIDs []string    `firestore:"interestedApartmentIds,omitempty" json:"interestedApartmentIds,omitempty"`
	Budget                 *float64    `firestore:"budget,omitempty" json:"budget,omitempty"`
	Notes                  string      `firestore:"notes,omitempty" json:"notes,omitempty"`
	ContactDate            time.Time   `firestore:"contactDate,omitempty" json:"contactDate,omitempty"`
	CreatedAt              time.Time   `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt              time.Time   `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
