package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
)

func testMaterials() []*models.Material {
	return []*models.Material{
		{ID: 1, CourseID: 1, Type: models.MaterialTypeLink, Title: "Go Tour", Description: "Intro", BaseUpvotes: 10},
		{ID: 2, CourseID: 1, Type: models.MaterialTypeExam, Title: "Midterm", Description: "Old calculus exam", BaseUpvotes: 20},
		{ID: 3, CourseID: 2, Type: models.MaterialTypeExam, Title: "Final", Description: "Graphs", BaseUpvotes: 10},
		{ID: 4, CourseID: 2, Type: models.MaterialTypeSlides, Title: "Calculus slides", Description: "Limits", BaseUpvotes: 5},
	}
}

func ids(ms []*models.Material) []int64 {
	out := make([]int64, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestMaterialList_SortedByUpvotesStable(t *testing.T) {
	repo := NewMaterialRepository(testMaterials())

	got := repo.List(context.Background(), MaterialFilter{})
	// 1 and 3 tie at 10 and keep seed order
	assert.Equal(t, []int64{2, 1, 3, 4}, ids(got))
}

func TestMaterialList_Filters(t *testing.T) {
	repo := NewMaterialRepository(testMaterials())
	ctx := context.Background()
	course2 := int64(2)

	assert.Equal(t, []int64{3, 4}, ids(repo.List(ctx, MaterialFilter{CourseID: &course2})))
	assert.Equal(t, []int64{2, 3}, ids(repo.List(ctx, MaterialFilter{Type: "exam"})))
	assert.Equal(t, []int64{3}, ids(repo.List(ctx, MaterialFilter{CourseID: &course2, Type: "EXAM"})))
	// title or description, any case
	assert.Equal(t, []int64{2, 4}, ids(repo.List(ctx, MaterialFilter{SearchTerm: "CALCULUS"})))
	assert.Empty(t, repo.List(ctx, MaterialFilter{Type: "podcast"}))
	assert.Empty(t, repo.List(ctx, MaterialFilter{SearchTerm: "nothing matches"}))
}

func TestMaterialList_OrderFollowsVotes(t *testing.T) {
	repo := NewMaterialRepository(testMaterials())
	ctx := context.Background()

	for _, u := range []int64{1, 2, 3, 4, 5, 6} {
		_, err := repo.Update(ctx, 4, func(m *models.Material) error {
			m.ApplyVote(u, models.VoteUp)
			return nil
		})
		require.NoError(t, err)
	}

	got := repo.List(ctx, MaterialFilter{})
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(got))
	assert.Equal(t, 11, got[1].Upvotes())
}

func TestMaterialGetByID_ReturnsCopy(t *testing.T) {
	repo := NewMaterialRepository(testMaterials())
	ctx := context.Background()

	m, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	m.LikedBy.Add(99)

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, again.LikedBy.Has(99))

	_, err = repo.GetByID(ctx, 100)
	assert.ErrorIs(t, err, apperrors.ErrMaterialNotFound)
}
