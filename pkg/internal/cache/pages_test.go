package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	current time.Time
}

func (v *fakeClock) Now() time.Time {
	return v.current
}

func (v *fakeClock) Advance(d time.Duration) {
	v.current = v.current.Add(d)
}

func newTestCache(t *testing.T) (*PageCache, *fakeClock) {
	t.Helper()
	client, err := NewRistretto(1 << 20)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	clock := &fakeClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewPageCache(client, 20*time.Second, WithClock(clock.Now)), clock
}

func TestPageCacheMiss(t *testing.T) {
	pages, _ := newTestCache(t)

	_, ok := pages.Get(context.Background(), "index#")
	assert.False(t, ok)
}

func TestPageCacheExpiry(t *testing.T) {
	ctx := context.Background()
	pages, clock := newTestCache(t)

	require.NoError(t, pages.Put(ctx, "index#", []byte(`{"data":[]}`), pages.TTL()))

	clock.Advance(19 * time.Second)
	body, ok := pages.Get(ctx, "index#")
	require.True(t, ok)
	assert.Equal(t, `{"data":[]}`, string(body))

	clock.Advance(time.Second)
	_, ok = pages.Get(ctx, "index#")
	assert.False(t, ok)
}

func TestPageCacheClear(t *testing.T) {
	ctx := context.Background()
	pages, _ := newTestCache(t)

	require.NoError(t, pages.Put(ctx, "index#1", []byte("one"), 0))
	require.NoError(t, pages.Put(ctx, "index#2", []byte("two"), 0))

	require.NoError(t, pages.Clear(ctx))

	_, ok := pages.Get(ctx, "index#1")
	assert.False(t, ok)
	_, ok = pages.Get(ctx, "index#2")
	assert.False(t, ok)
}

func TestPageCacheDefaultTTL(t *testing.T) {
	client, err := NewRistretto(0)
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, DefaultPageTTL, NewPageCache(client, 0).TTL())
}
