package services

import (
	"testing"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatorTotalPages(t *testing.T) {
	assert.Equal(t, 1, NewPaginator(0, 10).TotalPages())
	assert.Equal(t, 1, NewPaginator(10, 10).TotalPages())
	assert.Equal(t, 2, NewPaginator(11, 10).TotalPages())
	assert.Equal(t, 2, NewPaginator(13, 10).TotalPages())
	assert.Equal(t, 10, NewPaginator(10, 0).Size)
}

func TestPaginatorResolve(t *testing.T) {
	paginator := NewPaginator(13, 10)

	cases := map[string]int{
		"":     1,
		"1":    1,
		"2":    2,
		"3":    2,
		"100":  2,
		"0":    2,
		"-1":   2,
		"abc":  1,
		" 2 ":  2,
		"1.5":  1,
		"last": 1,
	}
	for raw, expected := range cases {
		assert.Equal(t, expected, paginator.Resolve(raw), "page %q", raw)
	}
}

func TestListPostPage(t *testing.T) {
	setupDatabase(t)
	author := createAccount(t, "leo")
	posts := createPosts(t, author, nil, 13)

	first, err := ListPostPage(database.C, "1")
	require.NoError(t, err)
	assert.Len(t, first.Data, 10)
	assert.Equal(t, 2, first.TotalPages)
	assert.EqualValues(t, 13, first.Count)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)
	assert.Equal(t, posts[12].ID, first.Data[0].ID)

	second, err := ListPostPage(database.C, "2")
	require.NoError(t, err)
	assert.Len(t, second.Data, 3)
	assert.Equal(t, posts[0].ID, second.Data[2].ID)

	clamped, err := ListPostPage(database.C, "3")
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Number)
	assert.Equal(t, postIDs(second.Data), postIDs(clamped.Data))
}

func TestListPostPageEmpty(t *testing.T) {
	setupDatabase(t)

	page, err := ListPostPage(database.C, "5")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Data)
}

func postIDs(posts []models.Post) []uint {
	return lo.Map(posts, func(item models.Post, _ int) uint {
		return item.ID
	})
}
