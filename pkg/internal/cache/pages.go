package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog/log"
)

const DefaultPageTTL = 20 * time.Second

type pageEntry struct {
	Body      []byte `msgpack:"body"`
	ExpiresAt int64  `msgpack:"expires_at"`
}

// PageCache keeps rendered pages for a fixed time.
// Writes to the underlying data never reach it, entries only go away
// when their time is up or when Clear is called.
type PageCache struct {
	client  *ristretto.Cache
	marshal *marshaler.Marshaler
	ttl     time.Duration
	now     func() time.Time
}

type PageCacheOption func(*PageCache)

// WithClock replaces the wall clock used to judge expiry.
func WithClock(now func() time.Time) PageCacheOption {
	return func(v *PageCache) {
		v.now = now
	}
}

func NewPageCache(client *ristretto.Cache, ttl time.Duration, opts ...PageCacheOption) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}

	manager := cache.New[any](ristretto_store.NewRistretto(client))
	pages := &PageCache{
		client:  client,
		marshal: marshaler.New(manager),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(pages)
	}
	return pages
}

func (v *PageCache) TTL() time.Duration {
	return v.ttl
}

func (v *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := v.marshal.Get(ctx, key, new(pageEntry))
	if err != nil {
		return nil, false
	}
	entry, ok := raw.(*pageEntry)
	if !ok {
		return nil, false
	}
	if v.now().UnixNano() >= entry.ExpiresAt {
		_ = v.marshal.Delete(ctx, key)
		return nil, false
	}
	return entry.Body, true
}

func (v *PageCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = v.ttl
	}

	entry := pageEntry{
		Body:      value,
		ExpiresAt: v.now().Add(ttl).UnixNano(),
	}
	// The store keeps the entry a bit longer than the logical ttl,
	// expiry is judged by the cache clock on read.
	if err := v.marshal.Set(
		ctx,
		key,
		entry,
		store.WithExpiration(ttl+time.Second),
		store.WithCost(int64(len(value))),
	); err != nil {
		return err
	}

	v.client.Wait()
	return nil
}

func (v *PageCache) Clear(ctx context.Context) error {
	if err := v.marshal.Clear(ctx); err != nil {
		return err
	}
	log.Debug().Msg("Page cache cleared.")
	return nil
}
