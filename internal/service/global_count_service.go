package service

import (
	"context"
	"errors"
	"fmt"

	"covid-hospital-backend/internal/models"
	"covid-hospital-backend/internal/repository"

	"github.com/google/uuid"
)

const latestCountLimit = 1

type GlobalCountService struct {
	countRepo       repository.GlobalCountRepository
	defaultPageSize int
}

func NewGlobalCountService(countRepo repository.GlobalCountRepository, defaultPageSize int) *GlobalCountService {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &GlobalCountService{
		countRepo:       countRepo,
		defaultPageSize: defaultPageSize,
	}
}

// Create stores a new count snapshot
func (s *GlobalCountService) Create(ctx context.Context, value int64) (*models.GlobalCount, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate count id: %w", err)
	}
	count := &models.GlobalCount{ID: id.String(), Count: value}
	if err := s.countRepo.Create(ctx, count); err != nil {
		return nil, fmt.Errorf("failed to create count: %w", err)
	}
	return count, nil
}

// GetByID retrieves a count by ID
func (s *GlobalCountService) GetByID(ctx context.Context, id string) (*models.GlobalCount, error) {
	count, err := s.countRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("count %s not found", id)
		}
		return nil, err
	}
	return count, nil
}

// GetLatestCount returns the most recently created count, as a list that is empty when none exist
func (s *GlobalCountService) GetLatestCount(ctx context.Context) ([]models.GlobalCount, error) {
	counts, err := s.countRepo.Latest(ctx, latestCountLimit)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.GlobalCount{}
	}
	return counts, nil
}

// Update sets the value of an existing count
func (s *GlobalCountService) Update(ctx context.Context, id string, value int64) (*models.GlobalCount, error) {
	count, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count.Count = value
	if err := s.countRepo.Update(ctx, count); err != nil {
		return nil, fmt.Errorf("failed to update count: %w", err)
	}
	return count, nil
}

// GetCountsWithPagination pages through counts in creation order.
// page and size are the raw query values; missing or invalid ones use the defaults.
func (s *GlobalCountService) GetCountsWithPagination(ctx context.Context, page, size string) (*models.Page[models.GlobalCount], error) {
	p := positiveOr(page, 1)
	n := positiveOr(size, s.defaultPageSize)

	counts, total, err := s.countRepo.Paginate(ctx, p, n)
	if err != nil {
		return nil, err
	}
	return models.NewPage(counts, total, p, n), nil
}
