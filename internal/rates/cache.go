package rates

import (
	"context"
	"sync"
	"time"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

// Cache stores the latest validated rate snapshot. A nil snapshot with a nil
// error is a miss; each implementation owns its own freshness decision.
type Cache interface {
	Get(ctx context.Context) (*models.RateSnapshot, error)
	Set(ctx context.Context, snap models.RateSnapshot) error
}

// MemoryCache keeps the latest snapshot in process memory. The snapshot is
// replaced under lock, never mutated, so a reader cannot observe a partial
// write.
type MemoryCache struct {
	mu   sync.RWMutex
	snap *models.RateSnapshot
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryCache creates an in-process cache with the given time-to-live.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

// Get returns the stored snapshot when it is younger than the ttl.
func (c *MemoryCache) Get(_ context.Context) (*models.RateSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil || c.now().Sub(c.snap.FetchedAt) >= c.ttl {
		return nil, nil
	}
	snap := *c.snap
	return &snap, nil
}

// Set replaces the stored snapshot.
func (c *MemoryCache) Set(_ context.Context, snap models.RateSnapshot) error {
	c.mu.Lock()
	c.snap = &snap
	c.mu.Unlock()
	return nil
}
