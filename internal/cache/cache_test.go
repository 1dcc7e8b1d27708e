package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/cache"
	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

func newCache(t *testing.T, pow2 int, ttl time.Duration) *cache.LinkCache {
	t.Helper()
	c, err := cache.New(&config.CacheConfig{MaxSizePow2: pow2, TTL: ttl})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func redirect(slug, url string) domain.Redirect {
	return domain.Redirect{LinkID: "id-" + slug, Slug: slug, URL: url, Active: true}
}

func TestNew_ZeroSize(t *testing.T) {
	c := newCache(t, 0, time.Minute) // 2^0 = 1 byte (min)
	require.NotNil(t, c)
}

func TestGet_MissingKey(t *testing.T) {
	c := newCache(t, 10, time.Minute)

	val, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Empty(t, val)
}

func TestSetThenGet(t *testing.T) {
	c := newCache(t, 20, time.Minute)

	want := redirect("abc123", "https://example.com/very/long/path")
	c.Set(want)
	time.Sleep(10 * time.Millisecond) // Ristretto needs time to process

	got, found := c.Get("abc123")
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestSet_UpdateExisting(t *testing.T) {
	c := newCache(t, 20, time.Minute)

	c.Set(redirect("abc123", "https://example.com/first"))
	time.Sleep(10 * time.Millisecond)

	c.Set(redirect("abc123", "https://example.com/second"))
	time.Sleep(10 * time.Millisecond)

	got, found := c.Get("abc123")
	assert.True(t, found)
	assert.Equal(t, "https://example.com/second", got.URL)
}

func TestDelete(t *testing.T) {
	c := newCache(t, 20, time.Minute)

	c.Set(redirect("gone", "https://example.com"))
	time.Sleep(10 * time.Millisecond)

	c.Delete("gone")

	_, found := c.Get("gone")
	assert.False(t, found)
}

func TestSet_Expires(t *testing.T) {
	c := newCache(t, 20, 50*time.Millisecond)

	c.Set(redirect("short", "https://example.com"))
	time.Sleep(10 * time.Millisecond)
	_, found := c.Get("short")
	require.True(t, found)

	time.Sleep(100 * time.Millisecond)
	_, found = c.Get("short")
	assert.False(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	c := newCache(t, 20, time.Minute)

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	// Cause a miss
	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	// Add and hit
	c.Set(redirect("key1", "https://example.com/1"))
	time.Sleep(10 * time.Millisecond)
	c.Get("key1")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}
