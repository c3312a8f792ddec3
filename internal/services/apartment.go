package services

import (
	"context"
	"errors"
	"log"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
	"estate-backend/internal/storage"
)

// ApartmentService wraps the apartment repository and orchestrates the
// optional 3D model blob attached to an apartment.
type ApartmentService struct {
	repo  *repository.Repository[models.Apartment]
	media *storage.MediaService
}

func NewApartmentService(repo *repository.Repository[models.Apartment], media *storage.MediaService) *ApartmentService {
	return &ApartmentService{repo: repo, media: media}
}

func (s *ApartmentService) GetAll(ctx context.Context) ([]*models.Apartment, error) {
	return s.repo.FindAll(ctx)
}

func (s *ApartmentService) Get(ctx context.Context, id string) (*models.Apartment, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new apartment; when a model file is supplied it is
// uploaded first and its URL stored on the entity.
func (s *ApartmentService) Create(ctx context.Context, apartment *models.Apartment, model *storage.UploadedFile) (string, error) {
	if model != nil {
		url, err := s.media.UploadFile(ctx, model.Name, model.Data, model.ContentType)
		if err != nil {
			return "", err
		}
		apartment.Model3DURL = url
	}

	id, err := s.repo.Save(ctx, apartment)
	if err != nil {
		return "", err
	}
	apartment.ID = id
	return id, nil
}

// Update merges the supplied fields into the apartment. A new model file
// replaces the old blob: the prior one is deleted best-effort before upload.
func (s *ApartmentService) Update(ctx context.Context, id string, apartment *models.Apartment, model *storage.UploadedFile) error {
	if model != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err == nil && existing.Model3DURL != "" {
			if err := s.media.DeleteByURL(ctx, existing.Model3DURL); err != nil {
				log.Printf("[APARTMENT] [WARN] old model cleanup failed for %s: %v", id, err)
			}
		} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		url, err := s.media.UploadFile(ctx, model.Name, model.Data, model.ContentType)
		if err != nil {
			return err
		}
		apartment.Model3DURL = url
	}

	apartment.ID = id
	return s.repo.Update(ctx, id, apartment)
}

// Delete removes the apartment document and, best-effort, its model blob.
func (s *ApartmentService) Delete(ctx context.Context, id string) error {
	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if apartment != nil && apartment.Model3DURL != "" {
		if err := s.media.DeleteByURL(ctx, apartment.Model3DURL); err != nil {
			log.Printf("[APARTMENT] [WARN] model cleanup failed for %s: %v", id, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *ApartmentService) ByStatus(ctx context.Context, status models.ApartmentStatus) ([]*models.Apartment, error) {
	return s.repo.FindByField(ctx, "status", string(status))
}

func (s *ApartmentService) ByFloor(ctx context.Context, floorID string) ([]*models.Apartment, error) {
	return s.repo.FindByField(ctx, "floorId", floorID)
}

func (s *ApartmentService) ByType(ctx context.Context, apartmentType string) ([]*models.Apartment, error) {
	return s.repo.FindByField(ctx, "type", apartmentType)
}

// ByPriceRange fetches every apartment and filters in memory. The store only
// supports equality queries, so this costs O(n) in total apartment count.
func (s *ApartmentService) ByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*models.Apartment, error) {
	apartments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterByPriceRange(apartments, minPrice, maxPrice), nil
}

// filterByPriceRange keeps apartments with minPrice <= price <= maxPrice,
// inclusive on both ends.
func filterByPriceRange(apartments []*models.Apartment, minPrice, maxPrice float64) []*models.Apartment {
	matched := make([]*models.Apartment, 0)
	for _, apartment := range apartments {
		if apartment.Price >= minPrice && apartment.Price <= maxPrice {
			matched = append(matched, apartment)
		}
	}
	return matched
}
