package dataset

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/pkg/metrics"
)

// Cache memoizes loaded season tables keyed by season label. Each season is
// parsed at most once per process; there is no invalidation, because the
// source files are read-only deployment artifacts. Reads are guarded by an
// RWMutex so concurrent sessions can share one cache safely.
type Cache struct {
	mu      sync.RWMutex
	loader  *Loader
	seasons map[string]string // season label -> CSV path
	tables  map[string][]model.PlayerSeasonRecord
}

// NewCache creates a cache over the given season registry.
func NewCache(loader *Loader, seasons map[string]string) *Cache {
	reg := make(map[string]string, len(seasons))
	for label, path := range seasons {
		reg[label] = path
	}
	return &Cache{
		loader:  loader,
		seasons: reg,
		tables:  make(map[string][]model.PlayerSeasonRecord),
	}
}

// Seasons returns the registered season labels, newest first.
func (c *Cache) Seasons() []string {
	out := make([]string, 0, len(c.seasons))
	for label := range c.seasons {
		out = append(out, label)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// Get returns the table for season, loading it on first use. An unknown
// season or a failed load wraps ErrUnavailable; a failed load is not cached,
// so a later request retries the file.
func (c *Cache) Get(ctx context.Context, season string) ([]model.PlayerSeasonRecord, error) {
	c.mu.RLock()
	if table, ok := c.tables[season]; ok {
		c.mu.RUnlock()
		metrics.RecordCacheHit()
		return table, nil
	}
	c.mu.RUnlock()

	path, ok := c.seasons[season]
	if !ok {
		return nil, fmt.Errorf("%w: unknown season %q", ErrUnavailable, season)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have loaded the season while we waited.
	if table, ok := c.tables[season]; ok {
		metrics.RecordCacheHit()
		return table, nil
	}

	metrics.RecordCacheMiss()
	table, err := c.loader.Load(ctx, season, path)
	if err != nil {
		return nil, err
	}
	c.tables[season] = table
	return table, nil
}

// Loaded returns the number of seasons currently held in memory.
func (c *Cache) Loaded() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
