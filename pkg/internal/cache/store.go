package cache

import (
	"github.com/dgraph-io/ristretto"
)

const DefaultMaxCost = 64 << 20

// NewRistretto builds the in-process store, cost is counted in bytes.
func NewRistretto(maxCost int64) (*ristretto.Cache, error) {
	if maxCost <= 0 {
		maxCost = DefaultMaxCost
	}
	return ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
}
