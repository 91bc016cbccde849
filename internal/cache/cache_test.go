package cache

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitlab/ensemble/internal/middleware"
	"github.com/outfitlab/ensemble/internal/monitoring"
	"github.com/outfitlab/ensemble/internal/types"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute, 10)

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set("k1", []byte("payload"))
	data, found := c.Get("k1")
	require.True(t, found)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, 1, c.Size())
}

func TestExpiration(t *testing.T) {
	c := New(10*time.Millisecond, 10)

	c.Set("k1", []byte("payload"))
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("k1")
	assert.False(t, found)
}

func TestEvictsOldestInsertedOnOverflow(t *testing.T) {
	c := New(time.Minute, 3)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), []byte("v"))
	}
	// Refreshing an existing key must not evict anything.
	c.Set("k1", []byte("v2"))
	assert.Equal(t, 3, c.Size())

	c.Set("k3", []byte("v"))

	_, found := c.Get("k0")
	assert.False(t, found, "oldest inserted entry should be evicted")
	for _, key := range []string{"k1", "k2", "k3"} {
		_, found := c.Get(key)
		assert.True(t, found, "entry %s should survive eviction", key)
	}
}

func TestKey_CanonicalizesEquivalentRequests(t *testing.T) {
	base := types.RecommendRequest{BaseProductID: "top_001"}
	explicit := types.RecommendRequest{BaseProductID: "top_001", NumRecommendations: 5}
	different := types.RecommendRequest{BaseProductID: "top_001", NumRecommendations: 3}
	budget := 100.0
	constrained := types.RecommendRequest{BaseProductID: "top_001", MaxBudget: &budget}

	assert.Equal(t, Key(base), Key(explicit), "default count must fingerprint like the explicit default")
	assert.NotEqual(t, Key(base), Key(different))
	assert.NotEqual(t, Key(base), Key(constrained))
}

func newCachedRouter(c *Cache, metrics *monitoring.Metrics, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(c.Middleware("/recommendations", metrics))
	r.POST("/recommendations", func(ctx *gin.Context) {
		*calls++
		ctx.JSON(http.StatusOK, gin.H{"call": *calls})
	})
	return r
}

func TestMiddleware_ServesSecondIdenticalRequestFromCache(t *testing.T) {
	c := New(time.Minute, 10)
	metrics := monitoring.NewMetrics()
	calls := 0
	r := newCachedRouter(c, metrics, &calls)

	body := `{"base_product_id":"top_001","num_recommendations":5}`
	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, first.Code)

	// Equivalent request with the count omitted hits the same entry.
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/recommendations",
		bytes.NewBufferString(`{"base_product_id":"top_001"}`)))

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, calls, "handler must not run on a cache hit")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestMiddleware_DistinctRequestsMiss(t *testing.T) {
	c := New(time.Minute, 10)
	metrics := monitoring.NewMetrics()
	calls := 0
	r := newCachedRouter(c, metrics, &calls)

	for _, id := range []string{"top_001", "top_002"} {
		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"base_product_id":%q}`, id)
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBufferString(body)))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2, calls)
}

func TestMiddleware_IgnoresOtherPaths(t *testing.T) {
	c := New(time.Minute, 10)
	metrics := monitoring.NewMetrics()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(c.Middleware("/recommendations", metrics))
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, c.Size())
}

func TestMiddleware_SkipsErrorResponsesBehindCompression(t *testing.T) {
	c := New(time.Minute, 10)
	metrics := monitoring.NewMetrics()
	cm := middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig())

	gin.SetMode(gin.TestMode)
	calls := 0
	r := gin.New()
	r.Use(cm.Handler())
	r.Use(c.Middleware("/recommendations", metrics))
	r.POST("/recommendations", func(ctx *gin.Context) {
		calls++
		ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	})

	body := `{"base_product_id":"top_999"}`
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBufferString(body))
		req.Header.Set("Accept-Encoding", "gzip")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, 2, calls, "error responses must reach the handler every time")
	assert.Equal(t, 0, c.Size(), "error responses must not be cached")
}

func TestMiddleware_UnparsableBodyPassesThrough(t *testing.T) {
	c := New(time.Minute, 10)
	metrics := monitoring.NewMetrics()
	calls := 0
	r := newCachedRouter(c, metrics, &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBufferString("{broken")))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, c.Size())
}
