package repository

import (
	"context"
	"errors"

	"covid-hospital-backend/internal/models"

	"gorm.io/gorm"
)

type GormGlobalCountRepository struct {
	db *gorm.DB
}

func NewGlobalCountRepo(db *gorm.DB) *GormGlobalCountRepository {
	return &GormGlobalCountRepository{db: db}
}

// Create inserts a new count record
func (r *GormGlobalCountRepository) Create(ctx context.Context, count *models.GlobalCount) error {
	return r.db.WithContext(ctx).Create(count).Error
}

// GetByID retrieves a count record by ID
func (r *GormGlobalCountRepository) GetByID(ctx context.Context, id string) (*models.GlobalCount, error) {
	var count models.GlobalCount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&count).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &count, nil
}

// Latest retrieves the most recently created records, newest first
func (r *GormGlobalCountRepository) Latest(ctx context.Context, limit int) ([]models.GlobalCount, error) {
	var counts []models.GlobalCount
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&counts).Error
	return counts, err
}

// Paginate retrieves one page of counts in creation order
func (r *GormGlobalCountRepository) Paginate(ctx context.Context, page, size int) ([]models.GlobalCount, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.GlobalCount{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var counts []models.GlobalCount
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&counts).Error
	return counts, total, err
}

// Update saves an existing count record
func (r *GormGlobalCountRepository) Update(ctx context.Context, count *models.GlobalCount) error {
	return r.db.WithContext(ctx).Save(count).Error
}
