package repositories

import (
	"context"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
)

// CatalogRepository is the read-only faculty/department/course index.
// Entities are loaded once from the seed and never change, so no locking is needed.
type CatalogRepository struct {
	faculties   map[int64]*models.Faculty
	departments map[int64]*models.Department
	courses     map[int64]*models.Course

	// seed order, used for every listing
	facultyOrder    []int64
	departmentOrder []int64
	courseOrder     []int64
}

// NewCatalogRepository indexes the given catalog entities by id
func NewCatalogRepository(faculties []*models.Faculty, departments []*models.Department, courses []*models.Course) *CatalogRepository {
	r := &CatalogRepository{
		faculties:   make(map[int64]*models.Faculty, len(faculties)),
		departments: make(map[int64]*models.Department, len(departments)),
		courses:     make(map[int64]*models.Course, len(courses)),
	}
	for _, f := range faculties {
		if _, dup := r.faculties[f.ID]; dup {
			continue
		}
		r.faculties[f.ID] = f
		r.facultyOrder = append(r.facultyOrder, f.ID)
	}
	for _, d := range departments {
		if _, dup := r.departments[d.ID]; dup {
			continue
		}
		r.departments[d.ID] = d
		r.departmentOrder = append(r.departmentOrder, d.ID)
	}
	for _, c := range courses {
		if _, dup := r.courses[c.ID]; dup {
			continue
		}
		r.courses[c.ID] = c
		r.courseOrder = append(r.courseOrder, c.ID)
	}
	return r
}

// GetFacultyByID retrieves a faculty by ID
func (r *CatalogRepository) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	f, ok := r.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	cp := *f
	return &cp, nil
}

// GetAllFaculties retrieves all faculties
func (r *CatalogRepository) GetAllFaculties(ctx context.Context) []*models.Faculty {
	out := make([]*models.Faculty, 0, len(r.facultyOrder))
	for _, id := range r.facultyOrder {
		cp := *r.faculties[id]
		out = append(out, &cp)
	}
	return out
}

// GetDepartmentByID retrieves a department by ID
func (r *CatalogRepository) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	cp := *d
	return &cp, nil
}

// GetDepartments lists departments, optionally restricted to one faculty
func (r *CatalogRepository) GetDepartments(ctx context.Context, facultyID *int64) []*models.Department {
	out := make([]*models.Department, 0)
	for _, id := range r.departmentOrder {
		d := r.departments[id]
		if facultyID != nil && d.FacultyID != *facultyID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out
}

// GetCourseByID retrieves a course by ID
func (r *CatalogRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

// CourseExists reports whether id names a catalog course
func (r *CatalogRepository) CourseExists(id int64) bool {
	_, ok := r.courses[id]
	return ok
}

// GetAllCourses lists every course in seed order
func (r *CatalogRepository) GetAllCourses(ctx context.Context) []*models.Course {
	return r.filterCourses(func(*models.Course) bool { return true })
}

// GetCoursesForDepartment returns the department's own courses followed by
// the shared courses of its faculty, each group in seed order.
func (r *CatalogRepository) GetCoursesForDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	dept, ok := r.departments[departmentID]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	owned := r.filterCourses(func(c *models.Course) bool {
		return !c.IsShared() && c.VisibleTo(dept)
	})
	shared := r.filterCourses(func(c *models.Course) bool {
		return c.IsShared() && c.VisibleTo(dept)
	})
	return append(owned, shared...), nil
}

// GetCoursesForFaculty returns every owned and shared course of the faculty
func (r *CatalogRepository) GetCoursesForFaculty(ctx context.Context, facultyID int64) ([]*models.Course, error) {
	if _, ok := r.faculties[facultyID]; !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return r.filterCourses(func(c *models.Course) bool {
		return c.FacultyID == facultyID
	}), nil
}

func (r *CatalogRepository) filterCourses(keep func(*models.Course) bool) []*models.Course {
	out := make([]*models.Course, 0)
	for _, id := range r.courseOrder {
		c := r.courses[id]
		if !keep(c) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out
}
