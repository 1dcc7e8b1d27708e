package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

// LinkCache maps live slugs to their redirect targets.
type LinkCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(cfg *config.CacheConfig) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<cfg.MaxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache, ttl: cfg.TTL}, nil
}

func (c *LinkCache) Get(slug string) (domain.Redirect, bool) {
	val, found := c.cache.Get(slug)
	if !found {
		return domain.Redirect{}, false
	}
	r, ok := val.(domain.Redirect)
	return r, ok
}

func (c *LinkCache) Set(r domain.Redirect) {
	cost := int64(len(r.Slug) + len(r.URL) + len(r.CallbackURL) + len(r.LinkID))
	c.cache.SetWithTTL(r.Slug, r, cost, c.ttl)
}

func (c *LinkCache) Delete(slug string) {
	c.cache.Del(slug)
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
