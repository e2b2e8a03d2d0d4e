package services

import (
	"context"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/repositories"
)

// CatalogService serves the read-only faculty, department and course hierarchy
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListFaculties returns every faculty in seed order
func (s *CatalogService) ListFaculties(ctx context.Context) []*models.Faculty {
	return s.catalogRepo.GetAllFaculties(ctx)
}

// GetFaculty retrieves a faculty by ID
func (s *CatalogService) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.catalogRepo.GetFacultyByID(ctx, id)
}

// ListDepartments returns all departments, or only those of facultyID when
// given. An unknown faculty is NotFound rather than an empty list.
func (s *CatalogService) ListDepartments(ctx context.Context, facultyID *int64) ([]*models.Department, error) {
	if facultyID != nil {
		if _, err := s.catalogRepo.GetFacultyByID(ctx, *facultyID); err != nil {
			return nil, err
		}
	}
	return s.catalogRepo.GetDepartments(ctx, facultyID), nil
}

// GetDepartment retrieves a department by ID
func (s *CatalogService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.catalogRepo.GetDepartmentByID(ctx, id)
}

// GetCourse retrieves a course by ID
func (s *CatalogService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.catalogRepo.GetCourseByID(ctx, id)
}

// ListCourses returns the courses visible to a department, or all courses of
// a faculty, or every course when neither is given. departmentID takes
// precedence.
func (s *CatalogService) ListCourses(ctx context.Context, departmentID, facultyID *int64) ([]*models.Course, error) {
	switch {
	case departmentID != nil:
		return s.ListCoursesForDepartment(ctx, *departmentID)
	case facultyID != nil:
		return s.ListCoursesForFaculty(ctx, *facultyID)
	default:
		return s.catalogRepo.GetAllCourses(ctx), nil
	}
}

// ListCoursesForDepartment returns the department's own courses followed by
// the courses shared across its faculty
func (s *CatalogService) ListCoursesForDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	return s.catalogRepo.GetCoursesForDepartment(ctx, departmentID)
}

// ListCoursesForFaculty returns every course of a faculty, owned and shared
func (s *CatalogService) ListCoursesForFaculty(ctx context.Context, facultyID int64) ([]*models.Course, error) {
	return s.catalogRepo.GetCoursesForFaculty(ctx, facultyID)
}
