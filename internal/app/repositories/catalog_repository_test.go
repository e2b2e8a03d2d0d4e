package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/pkg/apperrors"
	"github.com/mskustudx/studx/internal/seed"
)

func newSeedCatalogRepo(t *testing.T) *CatalogRepository {
	t.Helper()
	c, err := seed.LoadCatalog()
	require.NoError(t, err)
	return NewCatalogRepository(c.Faculties, c.Departments, c.Courses)
}


func TestGetCoursesForDepartment_IncludesSharedCourses(t *testing.T) {
	repo := newSeedCatalogRepo(t)

	courses, err := repo.GetCoursesForDepartment(context.Background(), 1)
	require.NoError(t, err)

	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 15, 16, 17, 18, 19}, ids)
}

func TestGetCoursesForDepartment_OtherFacultySharedExcluded(t *testing.T) {
	repo := newSeedCatalogRepo(t)

	courses, err := repo.GetCoursesForDepartment(context.Background(), 4)
	require.NoError(t, err)
	for _, c := range courses {
		assert.Equal(t, int64(2), c.FacultyID)
	}
}

func TestGetCoursesForDepartment_UnknownDepartment(t *testing.T) {
	repo := newSeedCatalogRepo(t)

	_, err := repo.GetCoursesForDepartment(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestGetCoursesForFaculty(t *testing.T) {
	repo := newSeedCatalogRepo(t)

	courses, err := repo.GetCoursesForFaculty(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, courses, 14)
	assert.Equal(t, int64(1), courses[0].ID)

	_, err = repo.GetCoursesForFaculty(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestPointLookups(t *testing.T) {
	repo := newSeedCatalogRepo(t)
	ctx := context.Background()

	dept, err := repo.GetDepartmentByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dept.FacultyID)

	course, err := repo.GetCourseByID(ctx, 15)
	require.NoError(t, err)
	assert.True(t, course.IsShared())

	_, err = repo.GetCourseByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	_, err = repo.GetFacultyByID(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestGetDepartments_FilterByFaculty(t *testing.T) {
	repo := newSeedCatalogRepo(t)
	facultyID := int64(3)

	depts := repo.GetDepartments(context.Background(), &facultyID)
	require.Len(t, depts, 2)
	assert.Len(t, repo.GetDepartments(context.Background(), nil), 7)
}
