package services

import (
	"testing"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"github.com/stretchr/testify/require"
)

// A 1x1 transparent gif.
var smallGif = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x21, 0xf9, 0x04,
	0x01, 0x0a, 0x00, 0x01, 0x00, 0x2c, 0x00, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02,
	0x02, 0x4c, 0x01, 0x00, 0x3b,
}

func setupDatabase(t *testing.T) {
	t.Helper()

	source, err := database.NewSource("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(source))

	database.C = source
	storage.S = storage.NewLocalStore(t.TempDir())

	t.Cleanup(func() {
		if conn, err := source.DB(); err == nil {
			_ = conn.Close()
		}
	})
}

func createAccount(t *testing.T, username string) models.Account {
	t.Helper()
	account, err := EnsureAccount(username)
	require.NoError(t, err)
	return account
}

func createGroup(t *testing.T, slug string) models.Group {
	t.Helper()
	group, err := NewGroup(GroupInput{
		Title:       "Group " + slug,
		Slug:        slug,
		Description: "Posts about " + slug,
	})
	require.NoError(t, err)
	return group
}

// createPost inserts a post directly, publishedAt keeps the order deterministic.
func createPost(t *testing.T, author models.Account, group *models.Group, text string, publishedAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		Text:        text,
		PublishedAt: publishedAt,
		AuthorID:    author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, database.C.Omit("Author", "Group").Create(&post).Error)
	return post
}

func createPosts(t *testing.T, author models.Account, group *models.Group, count int) []models.Post {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, createPost(t, author, group, "Post number", base.Add(time.Duration(i)*time.Minute)))
	}
	return posts
}
