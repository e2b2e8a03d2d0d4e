package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
)

// MaterialFilter narrows a material listing. Set fields combine with AND.
type MaterialFilter struct {
	CourseID   *int64
	Type       string // case-insensitive; an unknown type matches nothing
	SearchTerm string // case-insensitive substring of title or description
}

// MaterialRepository holds materials and their vote sets in memory
type MaterialRepository struct {
	mu        sync.RWMutex
	materials map[int64]*models.Material
	order     []int64
}

// NewMaterialRepository creates a material store from seed materials
func NewMaterialRepository(materials []*models.Material) *MaterialRepository {
	r := &MaterialRepository{
		materials: make(map[int64]*models.Material, len(materials)),
	}
	for _, m := range materials {
		if _, dup := r.materials[m.ID]; dup {
			continue
		}
		r.materials[m.ID] = m.Clone()
		r.order = append(r.order, m.ID)
	}
	return r
}

// GetByID retrieves a material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.materials[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	return m.Clone(), nil
}

// List returns the matching materials sorted by upvotes, highest first.
// Materials with equal upvotes keep their seed order.
func (r *MaterialRepository) List(ctx context.Context, filter MaterialFilter) []*models.Material {
	var wantType models.MaterialType
	if filter.Type != "" {
		t, ok := models.ParseMaterialType(filter.Type)
		if !ok {
			return []*models.Material{}
		}
		wantType = t
	}
	term := strings.ToLower(filter.SearchTerm)

	r.mu.RLock()
	out := make([]*models.Material, 0)
	for _, id := range r.order {
		m := r.materials[id]
		if filter.CourseID != nil && m.CourseID != *filter.CourseID {
			continue
		}
		if wantType != "" && m.Type != wantType {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Title), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			continue
		}
		out = append(out, m.Clone())
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Upvotes() > out[j].Upvotes()
	})
	return out
}

// All returns every material in seed order
func (r *MaterialRepository) All(ctx context.Context) []*models.Material {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Material, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.materials[id].Clone())
	}
	return out
}

// Update applies fn to the stored material while holding the write lock
// and returns a copy of the result.
func (r *MaterialRepository) Update(ctx context.Context, id int64, fn func(m *models.Material) error) (*models.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.materials[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	if err := fn(m); err != nil {
		return nil, err
	}
	return m.Clone(), nil
}
