package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	key := NewImageKey(".png")
	assert.True(t, strings.HasPrefix(key, ImagePrefix))
	assert.True(t, strings.HasSuffix(key, ".png"))

	require.NoError(t, store.Put(ctx, key, strings.NewReader("image"), "image/png"))
	require.NoError(t, store.Put(ctx, "other/file.txt", strings.NewReader("text"), "text/plain"))

	objects, err := store.List(ctx, ImagePrefix)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, key, objects[0].Key)
	assert.False(t, objects[0].ModifiedAt.IsZero())

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))

	objects, err = store.List(ctx, ImagePrefix)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestLocalStoreRejectsEscapes(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	assert.Error(t, store.Put(context.Background(), "../outside", strings.NewReader("x"), "text/plain"))
	assert.Error(t, store.Delete(context.Background(), "/etc/passwd"))
}

func TestListMissingRoot(t *testing.T) {
	store := NewLocalStore(t.TempDir() + "/missing")

	objects, err := store.List(context.Background(), ImagePrefix)
	require.NoError(t, err)
	assert.Empty(t, objects)
}
