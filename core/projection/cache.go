package projection

import (
	"sync"

	"github.com/kilianp07/renewables/core/model"
)

// DefaultCacheSize bounds the number of memoized inputs.
const DefaultCacheSize = 256

// Cache memoizes a Projector by its full input. Results are copied on the
// way in and out so cached sequences are never shared.
type Cache struct {
	next Projector
	max  int

	mu      sync.RWMutex
	entries map[Input][]model.ForecastPoint
	order   []Input
	hits    uint64
	misses  uint64
}

// NewCache wraps next. A size <= 0 uses DefaultCacheSize.
func NewCache(next Projector, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{next: next, max: size, entries: make(map[Input][]model.ForecastPoint)}
}

// Project returns the memoized sequence for in, computing it on a miss.
func (c *Cache) Project(in Input) ([]model.ForecastPoint, error) {
	c.mu.RLock()
	pts, ok := c.entries[in]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return clone(pts), nil
	}

	pts, err := c.next.Project(in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if _, ok := c.entries[in]; !ok {
		if len(c.order) >= c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.entries[in] = clone(pts)
		c.order = append(c.order, in)
	}
	return pts, nil
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Len returns the number of memoized inputs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func clone(pts []model.ForecastPoint) []model.ForecastPoint {
	out := make([]model.ForecastPoint, len(pts))
	copy(out, pts)
	return out
}
