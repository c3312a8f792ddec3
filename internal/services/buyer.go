package services

import (
	"context"
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
)

type BuyerService struct {
	repo *repository.Repository[models.Buyer]
}

func NewBuyerService(repo *repository.Repository[models.Buyer]) *BuyerService {
	return &BuyerService{repo: repo}
}

func (s *BuyerService) Create(ctx context.Context, buyer *models.Buyer) (string, error) {
	id, err := s.repo.Save(ctx, buyer)
	if err != nil {
		return "", err
	}
	buyer.ID = id
	return id, nil
}

func (s *BuyerService) Get(ctx context.Context, id string) (*models.Buyer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BuyerService) GetAll(ctx context.Context) ([]*models.Buyer, error) {
	return s.repo.FindAll(ctx)
}

func (s *BuyerService) Update(ctx context.Context, id string, buyer *models.Buyer) error {
	return s.repo.Update(ctx, id, buyer)
}

func (s *BuyerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *BuyerService) ByStatus(ctx context.Context, status models.BuyerStatus) ([]*models.Buyer, error) {
	return s.repo.FindByField(ctx, "status", string(status))
}

func (s *BuyerService) ByApartment(ctx context.Context, apartmentID string) ([]*models.Buyer, error) {
	return s.repo.FindByArrayContains(ctx, "interestedApartmentIds", apartmentID)
}

// ByDateRange fetches every buyer and filters on creation time in memory;
// the store offers no range queries. O(n) in total buyer count.
func (s *BuyerService) ByDateRange(ctx context.Context, start, end time.Time) ([]*models.Buyer, error) {
	buyers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterByDateRange(buyers, start, end), nil
}

// filterByDateRange keeps buyers whose createdAt falls in [start, end],
// inclusive on both ends.
func filterByDateRange(buyers []*models.Buyer, start, end time.Time) []*models.Buyer {
	matched := make([]*models.Buyer, 0)
	for _, buyer := range buyers {
		if !buyer.CreatedAt.Before(start) && !buyer.CreatedAt.After(end) {
			matched = append(matched, buyer)
		}
	}
	return matched
}
