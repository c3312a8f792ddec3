package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
	"estate-backend/internal/services"
)

var requiredCollections = []string{
	repository.FloorsCollection,
	repository.ApartmentsCollection,
	repository.BuyersCollection,
	repository.PicturesCollection,
	repository.UsersCollection,
}

// Deps carries everything the startup step needs.
type Deps struct {
	Client        *firestore.Client
	Users         *services.UserService
	Floors        *services.FloorService
	Apartments    *services.ApartmentService
	Buyers        *services.BuyerService
	AdminEmail    string
	AdminPassword string
}

// Run ensures the expected collections exist and seeds the default admin
// account plus sample data when the store is empty. Collection probing is
// idempotent; seeding is guarded only by the admin account's absence.
func Run(ctx context.Context, deps Deps) error {
	ensureCollections(ctx, deps.Client)
	return seedInitialData(ctx, deps)
}

func ensureCollections(ctx context.Context, client *firestore.Client) {
	for _, name := range requiredCollections {
		iter := client.Collection(name).Limit(1).Documents(ctx)
		_, err := iter.Next()
		iter.Stop()
		if err == nil || err == iterator.Done {
			log.Printf("[BOOTSTRAP] [INFO] collection %q exists", name)
			continue
		}

		// Probe failed; create the collection by writing and removing a
		// placeholder document.
		ref := client.Collection(name).Doc("initialization")
		if _, err := ref.Set(ctx, map[string]interface{}{
			"initialized": true,
			"timestamp":   time.Now(),
		}); err != nil {
			log.Printf("[BOOTSTRAP] [ERROR] creating collection %q: %v", name, err)
			continue
		}
		if _, err := ref.Delete(ctx); err != nil {
			log.Printf("[BOOTSTRAP] [ERROR] removing placeholder in %q: %v", name, err)
			continue
		}
		log.Printf("[BOOTSTRAP] [INFO] created collection %q", name)
	}
}

func seedInitialData(ctx context.Context, deps Deps) error {
	_, err := deps.Users.GetByEmail(ctx, deps.AdminEmail)
	if err == nil {
		log.Println("[BOOTSTRAP] [INFO] initial data already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("probing admin account: %w", err)
	}

	admin := models.User{
		Email:    deps.AdminEmail,
		Password: deps.AdminPassword,
		Role:     models.RoleAdmin,
		Enabled:  true,
	}
	adminID, err := deps.Users.Create(ctx, &admin)
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}
	log.Println("[BOOTSTRAP] [INFO] created admin user:", adminID)

	groundFloorID, err := deps.Floors.Create(ctx, &models.Floor{
		Name:        "Ground Floor",
		FloorNumber: intPtr(0),
		Description: "Ground floor with main entrance and lobby",
	}, nil)
	if err != nil {
		return fmt.Errorf("seeding floors: %w", err)
	}

	firstFloorID, err := deps.Floors.Create(ctx, &models.Floor{
		Name:        "First Floor",
		FloorNumber: intPtr(1),
		Description: "Ground level floor with garden access",
	}, nil)
	if err != nil {
		return fmt.Errorf("seeding floors: %w", err)
	}

	secondFloorID, err := deps.Floors.Create(ctx, &models.Floor{
		Name:        "Second Floor",
		FloorNumber: intPtr(2),
		Description: "Second floor with premium apartments",
	}, nil)
	if err != nil {
		return fmt.Errorf("seeding floors: %w", err)
	}

	apartments := []models.Apartment{
		{
			FloorID:     groundFloorID,
			LotNumber:   "G01",
			Type:        "1 Bedroom",
			Area:        65.0,
			Price:       180000,
			Status:      models.ApartmentAvailable,
			Description: "Cozy ground floor apartment with garden access",
		},
		{
			FloorID:     groundFloorID,
			LotNumber:   "G02",
			Type:        "2 Bedroom",
			Area:        85.0,
			Price:       220000,
			Status:      models.ApartmentReserved,
			Description: "Spacious ground floor apartment with patio",
		},
		{
			FloorID:     firstFloorID,
			LotNumber:   "101",
			Type:        "2 Bedroom",
			Area:        85.5,
			Price:       250000,
			Status:      models.ApartmentAvailable,
			Description: "Spacious 2-bedroom apartment with garden view",
		},
		{
			FloorID:     firstFloorID,
			LotNumber:   "102",
			Type:        "3 Bedroom",
			Area:        120.0,
			Price:       350000,
			Status:      models.ApartmentAvailable,
			Description: "Luxury 3-bedroom apartment with balcony",
		},
		{
			FloorID:     secondFloorID,
			LotNumber:   "201",
			Type:        "3 Bedroom",
			Area:        130.0,
			Price:       380000,
			Status:      models.ApartmentSold,
			Description: "Premium 3-bedroom apartment with city view",
		},
	}
	for i := range apartments {
		if _, err := deps.Apartments.Create(ctx, &apartments[i], nil); err != nil {
			return fmt.Errorf("seeding apartments: %w", err)
		}
	}

	budget := 500000.0
	if _, err := deps.Buyers.Create(ctx, &models.Buyer{
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		Phone:       "+1234567890",
		Status:      models.BuyerInterested,
		Notes:       "Interested in 2-bedroom apartments",
		Budget:      &budget,
		ContactDate: time.Now(),
	}); err != nil {
		return fmt.Errorf("seeding buyer: %w", err)
	}

	log.Println("[BOOTSTRAP] [INFO] sample data seeded")
	return nil
}

func intPtr(v int) *int {
	return &v
}
