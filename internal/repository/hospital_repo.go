package repository

import (
	"context"
	"errors"
	"strings"

	"covid-hospital-backend/internal/models"

	"gorm.io/gorm"
)

var hospitalSortColumns = map[string]string{
	"name":      "name",
	"sn":        "serial_number",
	"createdAt": "created_at",
}

type GormHospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *GormHospitalRepository {
	return &GormHospitalRepository{db: db}
}

// Create inserts a new hospital
func (r *GormHospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

// GetByID retrieves a hospital by ID
func (r *GormHospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// FindBySlug retrieves every hospital carrying the slug
func (r *GormHospitalRepository) FindBySlug(ctx context.Context, slug string) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Where("name_slug = ?", slug).Find(&hospitals).Error
	return hospitals, err
}

// FindCovid retrieves hospitals flagged for COVID treatment
func (r *GormHospitalRepository) FindCovid(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Where("is_covid = ?", true).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// FindAll retrieves all hospitals
func (r *GormHospitalRepository) FindAll(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Order("serial_number ASC").Find(&hospitals).Error
	return hospitals, err
}

// Paginate retrieves one filtered page of hospitals together with the total match count
func (r *GormHospitalRepository) Paginate(ctx context.Context, query models.HospitalQuery) ([]models.Hospital, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Hospital{})
	if query.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.NameSlug != "" {
		tx = tx.Where("name_slug = ?", query.NameSlug)
	}
	if query.SerialNumber != nil {
		tx = tx.Where("serial_number = ?", *query.SerialNumber)
	}
	if query.IsCovid != nil {
		tx = tx.Where("is_covid = ?", *query.IsCovid)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hospitals []models.Hospital
	err := tx.Order(hospitalOrder(query.Sort)).
		Offset((query.Page - 1) * query.Size).
		Limit(query.Size).
		Find(&hospitals).Error
	return hospitals, total, err
}

// Update saves every column of an existing hospital
func (r *GormHospitalRepository) Update(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Save(hospital).Error
}

// DeleteByID removes a hospital and returns it, nil when it does not exist
func (r *GormHospitalRepository) DeleteByID(ctx context.Context, id string) (*models.Hospital, error) {
	return r.deleteFirst(ctx, "id = ?", id)
}

// DeleteBySlug removes the hospital with the slug and returns it, nil when none matched
func (r *GormHospitalRepository) DeleteBySlug(ctx context.Context, slug string) (*models.Hospital, error) {
	return r.deleteFirst(ctx, "name_slug = ?", slug)
}

// DeleteAll removes every hospital
func (r *GormHospitalRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Hospital{})
	return result.RowsAffected, result.Error
}

func (r *GormHospitalRepository) deleteFirst(ctx context.Context, cond string, arg any) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where(cond, arg).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&hospital).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

func hospitalOrder(sort string) string {
	dir := "ASC"
	if strings.HasPrefix(sort, "-") {
		dir = "DESC"
		sort = sort[1:]
	}
	column, ok := hospitalSortColumns[sort]
	if !ok {
		return "serial_number ASC, id ASC"
	}
	return column + " " + dir + ", id ASC"
}
