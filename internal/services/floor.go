package services

import (
	"context"
	"errors"
	"log"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
	"estate-backend/internal/storage"
)

type FloorService struct {
	repo  *repository.Repository[models.Floor]
	media *storage.MediaService
}

func NewFloorService(repo *repository.Repository[models.Floor], media *storage.MediaService) *FloorService {
	return &FloorService{repo: repo, media: media}
}

func (s *FloorService) GetAll(ctx context.Context) ([]*models.Floor, error) {
	return s.repo.FindAll(ctx)
}

func (s *FloorService) Get(ctx context.Context, id string) (*models.Floor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FloorService) Create(ctx context.Context, floor *models.Floor, model *storage.UploadedFile) (string, error) {
	if model != nil {
		url, err := s.media.UploadFile(ctx, model.Name, model.Data, model.ContentType)
		if err != nil {
			return "", err
		}
		floor.Model3DURL = url
	}

	id, err := s.repo.Save(ctx, floor)
	if err != nil {
		return "", err
	}
	floor.ID = id
	return id, nil
}

func (s *FloorService) Update(ctx context.Context, id string, floor *models.Floor, model *storage.UploadedFile) error {
	if model != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err == nil && existing.Model3DURL != "" {
			if err := s.media.DeleteByURL(ctx, existing.Model3DURL); err != nil {
				log.Printf("[FLOOR] [WARN] old model cleanup failed for %s: %v", id, err)
			}
		} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		url, err := s.media.UploadFile(ctx, model.Name, model.Data, model.ContentType)
		if err != nil {
			return err
		}
		floor.Model3DURL = url
	}

	floor.ID = id
	return s.repo.Update(ctx, id, floor)
}

func (s *FloorService) Delete(ctx context.Context, id string) error {
	floor, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if floor != nil && floor.Model3DURL != "" {
		if err := s.media.DeleteByURL(ctx, floor.Model3DURL); err != nil {
			log.Printf("[FLOOR] [WARN] model cleanup failed for %s: %v", id, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *FloorService) ByStatus(ctx context.Context, status string) ([]*models.Floor, error) {
	return s.repo.FindByField(ctx, "status", status)
}

// UpdateHotspots replaces the floor's hotspot collections. A nil collection
// is left untouched, so callers can update top-view and per-angle sets
// independently. Missing floors are a no-op, matching the write-if-present
// semantics of the hotspot editor.
func (s *FloorService) UpdateHotspots(ctx context.Context, id string, topView []models.Hotspot, angles map[string][]models.Hotspot) error {
	floor, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if topView != nil {
		floor.TopViewHotspots = topView
	}
	if angles != nil {
		floor.AngleHotspots = angles
	}
	return s.repo.Update(ctx, id, floor)
}
