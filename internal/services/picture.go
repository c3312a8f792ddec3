package services

import (
	"context"
	"errors"
	"log"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
	"estate-backend/internal/storage"
)

// PictureService manages the ordered picture set attached to an apartment.
// Order integers are zero-based; reordering writes each picture individually,
// so a failure partway leaves a mixed ordering.
type PictureService struct {
	repo  *repository.Repository[models.Picture]
	media *storage.MediaService
}

func NewPictureService(repo *repository.Repository[models.Picture], media *storage.MediaService) *PictureService {
	return &PictureService{repo: repo, media: media}
}

func (s *PictureService) Get(ctx context.Context, id string) (*models.Picture, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PictureService) GetAll(ctx context.Context) ([]*models.Picture, error) {
	return s.repo.FindAll(ctx)
}

func (s *PictureService) ByApartment(ctx context.Context, apartmentID string) ([]*models.Picture, error) {
	return s.repo.FindByField(ctx, "apartmentId", apartmentID)
}

// Create uploads the image and persists the picture document referencing it.
func (s *PictureService) Create(ctx context.Context, picture *models.Picture, file *storage.UploadedFile) (string, error) {
	url, err := s.media.UploadFile(ctx, file.Name, file.Data, file.ContentType)
	if err != nil {
		return "", err
	}
	picture.URL = url

	id, err := s.repo.Save(ctx, picture)
	if err != nil {
		return "", err
	}
	picture.ID = id
	return id, nil
}

// UploadPictures appends new pictures to the apartment's gallery, continuing
// from the current maximum order index.
func (s *PictureService) UploadPictures(ctx context.Context, apartmentID string, files []storage.UploadedFile) ([]*models.Picture, error) {
	existing, err := s.ByApartment(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	order := nextOrder(existing)

	uploaded := make([]*models.Picture, 0, len(files))
	for _, file := range files {
		url, err := s.media.UploadFile(ctx, file.Name, file.Data, file.ContentType)
		if err != nil {
			return uploaded, err
		}

		picture := &models.Picture{
			ApartmentID: apartmentID,
			URL:         url,
			Order:       order,
		}
		id, err := s.repo.Save(ctx, picture)
		if err != nil {
			return uploaded, err
		}
		picture.ID = id
		uploaded = append(uploaded, picture)
		order++
	}
	return uploaded, nil
}

// Reorder reassigns zero-based order integers following the caller-supplied
// id sequence. Ids not belonging to the apartment are skipped. Each picture
// is written individually, not as a single batch.
func (s *PictureService) Reorder(ctx context.Context, apartmentID string, pictureIDs []string) error {
	pictures, err := s.ByApartment(ctx, apartmentID)
	if err != nil {
		return err
	}

	byID := make(map[string]*models.Picture, len(pictures))
	for _, picture := range pictures {
		byID[picture.ID] = picture
	}

	for _, id := range orderedIDs(byID, pictureIDs) {
		picture := byID[id.id]
		picture.Order = id.order
		if err := s.repo.Update(ctx, id.id, picture); err != nil {
			return err
		}
	}
	return nil
}

type orderAssignment struct {
	id    string
	order int
}

// orderedIDs filters the caller-supplied id sequence down to pictures the
// apartment actually owns and pairs each with its new zero-based order.
func orderedIDs(byID map[string]*models.Picture, pictureIDs []string) []orderAssignment {
	assignments := make([]orderAssignment, 0, len(pictureIDs))
	for _, id := range pictureIDs {
		if _, ok := byID[id]; !ok {
			continue
		}
		assignments = append(assignments, orderAssignment{id: id, order: len(assignments)})
	}
	return assignments
}

// UpdateOrder reassigns order integers across apartments by picture id.
func (s *PictureService) UpdateOrder(ctx context.Context, pictureIDs []string) error {
	order := 0
	for _, id := range pictureIDs {
		picture, err := s.repo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		picture.Order = order
		if err := s.repo.Update(ctx, id, picture); err != nil {
			return err
		}
		order++
	}
	return nil
}

// Delete removes the document and, best-effort, the image blob behind it.
func (s *PictureService) Delete(ctx context.Context, id string) error {
	picture, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if picture != nil && picture.URL != "" {
		if err := s.media.DeleteByURL(ctx, picture.URL); err != nil {
			log.Printf("[PICTURE] [WARN] blob cleanup failed for %s: %v", id, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *PictureService) DeleteAllForApartment(ctx context.Context, apartmentID string) error {
	pictures, err := s.ByApartment(ctx, apartmentID)
	if err != nil {
		return err
	}
	for _, picture := range pictures {
		if picture.URL != "" {
			if err := s.media.DeleteByURL(ctx, picture.URL); err != nil {
				log.Printf("[PICTURE] [WARN] blob cleanup failed for %s: %v", picture.ID, err)
			}
		}
		if err := s.repo.Delete(ctx, picture.ID); err != nil {
			return err
		}
	}
	return nil
}

// nextOrder returns the order index for the next appended picture: one past
// the current maximum, or zero for an empty gallery.
func nextOrder(pictures []*models.Picture) int {
	next := 0
	for _, picture := range pictures {
		if picture.Order >= next {
			next = picture.Order + 1
		}
	}
	return next
}
