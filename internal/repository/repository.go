package repository

import (
	"context"
	"errors"

	"covid-hospital-backend/internal/models"
)

// ErrNotFound is returned when a lookup by identifier matches nothing
var ErrNotFound = errors.New("record not found")

// HospitalRepository is the persistence contract for hospitals
type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.Hospital) error
	GetByID(ctx context.Context, id string) (*models.Hospital, error)
	FindBySlug(ctx context.Context, slug string) ([]models.Hospital, error)
	FindCovid(ctx context.Context) ([]models.Hospital, error)
	FindAll(ctx context.Context) ([]models.Hospital, error)
	Paginate(ctx context.Context, query models.HospitalQuery) ([]models.Hospital, int64, error)
	Update(ctx context.Context, hospital *models.Hospital) error
	// DeleteByID returns the removed record, or nil when nothing matched
	DeleteByID(ctx context.Context, id string) (*models.Hospital, error)
	DeleteBySlug(ctx context.Context, slug string) (*models.Hospital, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// GlobalCountRepository is the persistence contract for global counts
type GlobalCountRepository interface {
	Create(ctx context.Context, count *models.GlobalCount) error
	GetByID(ctx context.Context, id string) (*models.GlobalCount, error)
	Latest(ctx context.Context, limit int) ([]models.GlobalCount, error)
	Paginate(ctx context.Context, page, size int) ([]models.GlobalCount, int64, error)
	Update(ctx context.Context, count *models.GlobalCount) error
}
