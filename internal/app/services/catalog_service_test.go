package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
)

func courseIDs(courses []*models.Course) []int64 {
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestListCourses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cs := f.services.CatalogService

	byDept, err := cs.ListCourses(ctx, ptr(1), ptr(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 15, 16, 17, 18, 19}, courseIDs(byDept))

	byFaculty, err := cs.ListCourses(ctx, nil, ptr(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12, 20, 21}, courseIDs(byFaculty))

	all, err := cs.ListCourses(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 22)

	_, err = cs.ListCourses(ctx, ptr(99), nil)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListDepartments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	depts, err := f.services.CatalogService.ListDepartments(ctx, ptr(2))
	require.NoError(t, err)
	require.Len(t, depts, 2)
	assert.Equal(t, int64(4), depts[0].ID)

	_, err = f.services.CatalogService.ListDepartments(ctx, ptr(42))
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListCourseMaterials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ms := f.services.MaterialService

	materials, err := ms.ListCourseMaterials(ctx, 15, repositories.MaterialFilter{})
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "Calculus I Final 2022", materials[0].Title)

	exams, err := ms.ListCourseMaterials(ctx, 15, repositories.MaterialFilter{Type: " exam "})
	require.NoError(t, err)
	assert.Len(t, exams, 1)

	_, err = ms.ListCourseMaterials(ctx, 999, repositories.MaterialFilter{})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.Empty(t, ms.ListMaterials(ctx, repositories.MaterialFilter{Type: "podcast"}))
}
