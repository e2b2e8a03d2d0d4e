package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.Len(t, c.Faculties, 3)
	assert.NotEmpty(t, c.Departments)
	assert.NotEmpty(t, c.Materials)

	shared := 0
	for _, course := range c.Courses {
		if course.IsShared() && course.FacultyID == 1 {
			shared++
		}
	}
	assert.Equal(t, 5, shared)

	first := c.Materials[0]
	assert.Equal(t, 25, first.BaseUpvotes)
	assert.Equal(t, 2, first.BaseDownvotes)
	assert.NotNil(t, first.LikedBy)
}

func TestParseCatalog_RejectsUnknownMaterialType(t *testing.T) {
	_, err := ParseCatalog([]byte("materials:\n  - { id: 1, courseId: 1, type: PODCAST }\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PODCAST")
}

func TestDefaultUsers_HashesCredentials(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	users, err := c.DefaultUsers(func(s string) (string, error) { return "hashed:" + s, nil }, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, users)
	for _, u := range users {
		assert.True(t, strings.HasPrefix(u.Credential, "hashed:"))
		assert.NotNil(t, u.CoursesLiked)
		assert.NotNil(t, u.RecentlyViewed)
	}
}
