package cache

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/outfitlab/ensemble/internal/monitoring"
	"github.com/outfitlab/ensemble/internal/types"
)

// entry is a cached response with its expiration time.
type entry struct {
	data      []byte
	expiresAt time.Time
}

func (e *entry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// Cache is a thread-safe TTL cache for recommendation responses, bounded in
// size. On overflow the oldest inserted entry is evicted.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	order      []string // insertion order, oldest first
	ttl        time.Duration
	maxEntries int
}

// New creates a cache with the given TTL and capacity. A capacity of zero or
// less disables the bound.
func New(ttl time.Duration, maxEntries int) *Cache {
	c := &Cache{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}

	go c.sweep()

	return c
}

// sweep removes expired entries periodically.
func (c *Cache) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		kept := c.order[:0]
		for _, key := range c.order {
			if e, ok := c.entries[key]; ok && e.expired() {
				delete(c.entries, key)
				continue
			}
			kept = append(kept, key)
		}
		c.order = kept
		c.mu.Unlock()
	}
}

// Key derives the canonical fingerprint for a recommendation request:
// equivalent requests (e.g. an omitted count versus the explicit default)
// map to the same key.
func Key(req types.RecommendRequest) string {
	canonical, err := json.Marshal(req.Normalized())
	if err != nil {
		// RecommendRequest contains only marshalable fields.
		panic("cache: fingerprint request: " + err.Error())
	}
	return fmt.Sprintf("%x", md5.Sum(canonical))
}

// Get retrieves a cached response.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired() {
		return nil, false
	}
	return e.data, true
}

// Set stores a response, evicting the oldest inserted entry when the cache
// is full.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}

	c.entries[key] = &entry{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	c.order = nil
}

// Size returns the number of entries, expired ones included until the next
// sweep.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns cache statistics for the operational endpoint.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	expired := 0
	for _, e := range c.entries {
		if e.expired() {
			expired++
		}
	}

	return map[string]interface{}{
		"total_entries":   len(c.entries),
		"expired_entries": expired,
		"active_entries":  len(c.entries) - expired,
		"max_entries":     c.maxEntries,
		"ttl_seconds":     c.ttl.Seconds(),
	}
}

// Middleware caches successful responses of POST requests to the given path,
// keyed by the canonical request fingerprint. Requests that fail to parse
// pass through untouched; the handler will report the binding error.
func (c *Cache) Middleware(path string, metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodPost || ctx.Request.URL.Path != path {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.Next()
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		var req types.RecommendRequest
		if err := json.Unmarshal(body, &req); err != nil {
			ctx.Next()
			return
		}
		key := Key(req)

		if data, found := c.Get(key); found {
			slog.Debug("Recommendation cache hit", "key", key[:8]+"...")
			metrics.IncrementCacheHit()
			ctx.Data(http.StatusOK, "application/json", data)
			ctx.Abort()
			return
		}

		metrics.IncrementCacheMiss()

		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()

		if ctx.Writer.Status() == http.StatusOK {
			c.Set(key, wrapper.body.Bytes())
			slog.Debug("Recommendation response cached", "key", key[:8]+"...", "size", c.Size())
		}
	}
}

// responseWriter wraps gin.ResponseWriter to capture the response body.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
