package repository

import (
	"cloud.google.com/go/firestore"

	"estate-backend/internal/models"
)

// Collection names, shared with the bootstrap step.
const (
	FloorsCollection     = "floors"
	ApartmentsCollection = "apartments"
	BuyersCollection     = "buyers"
	PicturesCollection   = "pictures"
	UsersCollection      = "users"
)

func Floors(client *firestore.Client) *Repository[models.Floor] {
	return New[models.Floor](client, FloorsCollection)
}

func Apartments(client *firestore.Client) *Repository[models.Apartment] {
	return New[models.Apartment](client, ApartmentsCollection)
}

func Buyers(client *firestore.Client) *Repository[models.Buyer] {
	return New[models.Buyer](client, BuyersCollection)
}

func Pictures(client *firestore.Client) *Repository[models.Picture] {
	return New[models.Picture](client, PicturesCollection)
}

func Users(client *firestore.Client) *Repository[models.User] {
	return New[models.User](client, UsersCollection)
}
