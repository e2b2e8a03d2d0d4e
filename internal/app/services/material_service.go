package services

import (
	"context"
	"strings"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/repositories"
)

// MaterialService lists and filters course materials
type MaterialService struct {
	materialRepo *repositories.MaterialRepository
	catalogRepo  *repositories.CatalogRepository
}

// NewMaterialService creates a new material service instance
func NewMaterialService(materialRepo *repositories.MaterialRepository, catalogRepo *repositories.CatalogRepository) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		catalogRepo:  catalogRepo,
	}
}

// ListMaterials returns the materials matching filter, highest upvotes first.
// An empty result is not an error.
func (s *MaterialService) ListMaterials(ctx context.Context, filter repositories.MaterialFilter) []*models.Material {
	filter.Type = strings.TrimSpace(filter.Type)
	filter.SearchTerm = strings.TrimSpace(filter.SearchTerm)
	return s.materialRepo.List(ctx, filter)
}

// ListCourseMaterials returns a course's materials. Unlike a plain courseId
// filter, an unknown course is NotFound.
func (s *MaterialService) ListCourseMaterials(ctx context.Context, courseID int64, filter repositories.MaterialFilter) ([]*models.Material, error) {
	if _, err := s.catalogRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	filter.CourseID = &courseID
	return s.ListMaterials(ctx, filter), nil
}

// GetMaterial retrieves a material by ID
func (s *MaterialService) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	return s.materialRepo.GetByID(ctx, id)
}
