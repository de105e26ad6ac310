package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"covid-hospital-backend/internal/importer"
	"covid-hospital-backend/internal/metrics"
	"covid-hospital-backend/internal/models"
	"covid-hospital-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultHospitalPageSize = 10

type HospitalService struct {
	hospitalRepo repository.HospitalRepository
	source       importer.Source
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewHospitalService(
	hospitalRepo repository.HospitalRepository,
	source importer.Source,
	m *metrics.Metrics,
	logger *zap.Logger,
) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		source:       source,
		metrics:      m,
		logger:       logger,
	}
}

// CreateHospital creates a hospital from client input, deriving its slug from the name
func (s *HospitalService) CreateHospital(ctx context.Context, input models.HospitalInput) (*models.Hospital, error) {
	hospital := models.Hospital{
		Name:         input.Name,
		NameSlug:     importer.Slugify(input.Name),
		SerialNumber: input.SerialNumber,
		IsCovid:      input.IsCovid,
		Details:      input.Details,
	}
	return s.create(ctx, hospital)
}

func (s *HospitalService) create(ctx context.Context, hospital models.Hospital) (*models.Hospital, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate hospital id: %w", err)
	}
	hospital.ID = id.String()

	if err := s.hospitalRepo.Create(ctx, &hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}
	return &hospital, nil
}

// GetHospitalByID retrieves a hospital by ID
func (s *HospitalService) GetHospitalByID(ctx context.Context, id string) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("hospital %s not found", id)
		}
		return nil, err
	}
	return hospital, nil
}

// GetHospitalBySlug retrieves every hospital with the slug, possibly none
func (s *HospitalService) GetHospitalBySlug(ctx context.Context, slug string) ([]models.Hospital, error) {
	return s.hospitalRepo.FindBySlug(ctx, slug)
}

// GetCovidHospitals retrieves hospitals flagged for COVID
func (s *HospitalService) GetCovidHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := s.hospitalRepo.FindCovid(ctx)
	if err != nil {
		return nil, err
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}
	return hospitals, nil
}

// GetHospitals lists hospitals using the raw query string parameters.
// page, size (or limit) and sort shape the page; name, nameSlug, sn and covid filter it.
// Unknown parameters are ignored and malformed values fall back to defaults.
func (s *HospitalService) GetHospitals(ctx context.Context, params url.Values) (*models.Page[models.Hospital], error) {
	query := ParseHospitalQuery(params)
	hospitals, total, err := s.hospitalRepo.Paginate(ctx, query)
	if err != nil {
		return nil, err
	}
	return models.NewPage(hospitals, total, query.Page, query.Size), nil
}

// ParseHospitalQuery converts query parameters into listing filters
func ParseHospitalQuery(params url.Values) models.HospitalQuery {
	size := params.Get("size")
	if size == "" {
		size = params.Get("limit")
	}
	query := models.HospitalQuery{
		Page:     positiveOr(params.Get("page"), 1),
		Size:     positiveOr(size, defaultHospitalPageSize),
		Sort:     params.Get("sort"),
		Name:     params.Get("name"),
		NameSlug: params.Get("nameSlug"),
	}
	if sn, err := strconv.Atoi(params.Get("sn")); err == nil {
		query.SerialNumber = &sn
	}
	if covid, err := strconv.ParseBool(params.Get("covid")); err == nil {
		query.IsCovid = &covid
	}
	return query
}

// UpdateHospital replaces the editable fields of a hospital, recomputing the slug from the name
func (s *HospitalService) UpdateHospital(ctx context.Context, id string, input models.HospitalInput) (*models.Hospital, error) {
	hospital, err := s.GetHospitalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hospital.Name = input.Name
	hospital.NameSlug = importer.Slugify(input.Name)
	hospital.SerialNumber = input.SerialNumber
	hospital.IsCovid = input.IsCovid
	hospital.Details = input.Details

	if err := s.hospitalRepo.Update(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return hospital, nil
}

// DeleteHospital removes a hospital. A nil hospital with a nil error means nothing matched.
func (s *HospitalService) DeleteHospital(ctx context.Context, id string) (*models.Hospital, error) {
	return s.hospitalRepo.DeleteByID(ctx, id)
}

// DeleteHospitalBySlug removes the hospital with the slug, returning nil when none matched
func (s *HospitalService) DeleteHospitalBySlug(ctx context.Context, slug string) (*models.Hospital, error) {
	return s.hospitalRepo.DeleteBySlug(ctx, slug)
}

// DeleteAll removes every hospital
func (s *HospitalService) DeleteAll(ctx context.Context) (int64, error) {
	return s.hospitalRepo.DeleteAll(ctx)
}

// ImportFromSource inserts the selected rows of the data file one by one.
// The first failure stops the import; records inserted before it are kept.
func (s *HospitalService) ImportFromSource(ctx context.Context, query importer.ImportQuery) (int, error) {
	rows, err := s.source()
	if err != nil {
		return 0, err
	}

	records := importer.PrepareImport(rows, query)
	if len(records) == 0 {
		return 0, nil
	}

	if query.RemoveAll {
		s.logger.Info("Removing all hospital records")
		if _, err := s.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("failed to remove hospitals: %w", err)
		}
	}

	created := 0
	for _, record := range records {
		if _, err := s.create(ctx, record); err != nil {
			s.metrics.RecordImport("import", created)
			return created, err
		}
		created++
	}
	s.metrics.RecordImport("import", created)
	return created, nil
}

// UpdateFromSource re-creates every hospital whose data file row differs from
// the stored record with the same slug. Each record is deleted and then created
// again as two separate writes.
func (s *HospitalService) UpdateFromSource(ctx context.Context) (importer.UpdateSet, error) {
	rows, err := s.source()
	if err != nil {
		return importer.UpdateSet{}, err
	}

	stored, err := s.hospitalRepo.FindAll(ctx)
	if err != nil {
		return importer.UpdateSet{}, fmt.Errorf("failed to load stored hospitals: %w", err)
	}

	set := importer.PrepareUpdate(rows, importer.IndexBySlug(stored))
	for i, record := range set.Data {
		deleted, err := s.DeleteHospitalBySlug(ctx, record.NameSlug)
		if err != nil {
			s.metrics.RecordImport("update", i)
			return set, fmt.Errorf("failed to delete hospital %s: %w", record.NameSlug, err)
		}
		if deleted != nil {
			s.logger.Info("Deleted hospital", zap.String("name", deleted.Name), zap.String("id", deleted.ID))
		}

		if _, err := s.create(ctx, record); err != nil {
			s.metrics.RecordImport("update", i)
			return set, err
		}
	}
	s.metrics.RecordImport("update", len(set.Data))
	return set, nil
}

func positiveOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
