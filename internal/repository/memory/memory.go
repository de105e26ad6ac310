// Package memory keeps hospitals and global counts in process memory.
// It backs the server when DB_DRIVER=memory and doubles as the store used by tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"covid-hospital-backend/internal/models"
	"covid-hospital-backend/internal/repository"
)

// HospitalRepository is an in-memory repository.HospitalRepository
type HospitalRepository struct {
	mu        sync.RWMutex
	hospitals map[string]models.Hospital

	// Err, when set, is returned by every operation
	Err error
}

var _ repository.HospitalRepository = (*HospitalRepository)(nil)

func NewHospitalRepository() *HospitalRepository {
	return &HospitalRepository{hospitals: make(map[string]models.Hospital)}
}

func (r *HospitalRepository) Create(_ context.Context, hospital *models.Hospital) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hospitals[hospital.ID]; exists {
		return fmt.Errorf("duplicate primary key %q", hospital.ID)
	}
	if hospital.NameSlug != "" {
		for _, h := range r.hospitals {
			if h.NameSlug == hospital.NameSlug {
				return fmt.Errorf("duplicate entry %q for key 'name_slug'", hospital.NameSlug)
			}
		}
	}
	now := time.Now().UTC()
	if hospital.CreatedAt.IsZero() {
		hospital.CreatedAt = now
	}
	if hospital.UpdatedAt.IsZero() {
		hospital.UpdatedAt = now
	}
	r.hospitals[hospital.ID] = cloneHospital(*hospital)
	return nil
}

func (r *HospitalRepository) GetByID(_ context.Context, id string) (*models.Hospital, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hospitals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	h = cloneHospital(h)
	return &h, nil
}

func (r *HospitalRepository) FindBySlug(_ context.Context, slug string) ([]models.Hospital, error) {
	return r.filter(func(h models.Hospital) bool { return h.NameSlug == slug }, bySerialNumber)
}

func (r *HospitalRepository) FindCovid(_ context.Context) ([]models.Hospital, error) {
	return r.filter(func(h models.Hospital) bool { return h.IsCovid }, func(a, b models.Hospital) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

func (r *HospitalRepository) FindAll(_ context.Context) ([]models.Hospital, error) {
	return r.filter(func(models.Hospital) bool { return true }, bySerialNumber)
}

func (r *HospitalRepository) Paginate(_ context.Context, query models.HospitalQuery) ([]models.Hospital, int64, error) {
	matches, err := r.filter(func(h models.Hospital) bool {
		if query.Name != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(query.Name)) {
			return false
		}
		if query.NameSlug != "" && h.NameSlug != query.NameSlug {
			return false
		}
		if query.SerialNumber != nil && h.SerialNumber != *query.SerialNumber {
			return false
		}
		if query.IsCovid != nil && h.IsCovid != *query.IsCovid {
			return false
		}
		return true
	}, hospitalComparator(query.Sort))
	if err != nil {
		return nil, 0, err
	}
	return window(matches, query.Page, query.Size), int64(len(matches)), nil
}

func (r *HospitalRepository) Update(_ context.Context, hospital *models.Hospital) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.hospitals {
		if id != hospital.ID && hospital.NameSlug != "" && h.NameSlug == hospital.NameSlug {
			return fmt.Errorf("duplicate entry %q for key 'name_slug'", hospital.NameSlug)
		}
	}
	hospital.UpdatedAt = time.Now().UTC()
	r.hospitals[hospital.ID] = cloneHospital(*hospital)
	return nil
}

func (r *HospitalRepository) DeleteByID(_ context.Context, id string) (*models.Hospital, error) {
	return r.deleteFirst(func(h models.Hospital) bool { return h.ID == id })
}

func (r *HospitalRepository) DeleteBySlug(_ context.Context, slug string) (*models.Hospital, error) {
	return r.deleteFirst(func(h models.Hospital) bool { return h.NameSlug == slug })
}

func (r *HospitalRepository) DeleteAll(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.hospitals))
	clear(r.hospitals)
	return n, nil
}

// Len reports how many hospitals are stored
func (r *HospitalRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hospitals)
}

func (r *HospitalRepository) deleteFirst(match func(models.Hospital) bool) (*models.Hospital, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.hospitals {
		if match(h) {
			delete(r.hospitals, id)
			return &h, nil
		}
	}
	return nil, nil
}

func (r *HospitalRepository) filter(match func(models.Hospital) bool, order func(a, b models.Hospital) int) ([]models.Hospital, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Hospital{}
	for _, h := range r.hospitals {
		if match(h) {
			out = append(out, cloneHospital(h))
		}
	}
	slices.SortFunc(out, order)
	return out, nil
}

func bySerialNumber(a, b models.Hospital) int {
	return cmp.Or(cmp.Compare(a.SerialNumber, b.SerialNumber), cmp.Compare(a.ID, b.ID))
}

func hospitalComparator(sort string) func(a, b models.Hospital) int {
	desc := strings.HasPrefix(sort, "-")
	var key func(a, b models.Hospital) int
	switch strings.TrimPrefix(sort, "-") {
	case "name":
		key = func(a, b models.Hospital) int { return cmp.Compare(a.Name, b.Name) }
	case "sn":
		key = func(a, b models.Hospital) int { return cmp.Compare(a.SerialNumber, b.SerialNumber) }
	case "createdAt":
		key = func(a, b models.Hospital) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return bySerialNumber
	}
	return func(a, b models.Hospital) int {
		c := key(a, b)
		if desc {
			c = -c
		}
		return cmp.Or(c, cmp.Compare(a.ID, b.ID))
	}
}

func cloneHospital(h models.Hospital) models.Hospital {
	h.Details = maps.Clone(h.Details)
	return h
}

// GlobalCountRepository is an in-memory repository.GlobalCountRepository
type GlobalCountRepository struct {
	mu     sync.RWMutex
	counts map[string]models.GlobalCount

	// Err, when set, is returned by every operation
	Err error
}

var _ repository.GlobalCountRepository = (*GlobalCountRepository)(nil)

func NewGlobalCountRepository() *GlobalCountRepository {
	return &GlobalCountRepository{counts: make(map[string]models.GlobalCount)}
}

func (r *GlobalCountRepository) Create(_ context.Context, count *models.GlobalCount) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.counts[count.ID]; exists {
		return fmt.Errorf("duplicate primary key %q", count.ID)
	}
	now := time.Now().UTC()
	if count.CreatedAt.IsZero() {
		count.CreatedAt = now
	}
	if count.UpdatedAt.IsZero() {
		count.UpdatedAt = now
	}
	r.counts[count.ID] = *count
	return nil
}

func (r *GlobalCountRepository) GetByID(_ context.Context, id string) (*models.GlobalCount, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.counts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *GlobalCountRepository) Latest(_ context.Context, limit int) ([]models.GlobalCount, error) {
	all, err := r.ordered()
	if err != nil {
		return nil, err
	}
	slices.Reverse(all)
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *GlobalCountRepository) Paginate(_ context.Context, page, size int) ([]models.GlobalCount, int64, error) {
	all, err := r.ordered()
	if err != nil {
		return nil, 0, err
	}
	return window(all, page, size), int64(len(all)), nil
}

func (r *GlobalCountRepository) Update(_ context.Context, count *models.GlobalCount) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	count.UpdatedAt = time.Now().UTC()
	r.counts[count.ID] = *count
	return nil
}

// ordered returns every count in creation order
func (r *GlobalCountRepository) ordered() ([]models.GlobalCount, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Collect(maps.Values(r.counts))
	if out == nil {
		out = []models.GlobalCount{}
	}
	slices.SortFunc(out, func(a, b models.GlobalCount) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func window[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}
