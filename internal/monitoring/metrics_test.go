package monitoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementCacheMiss()
	m.IncrementRecommendationsServed()
	m.AddOutfitsGenerated(5)
	m.AddGenerationAttempts(12)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, int64(1), stats["error_count"])
	assert.InDelta(t, 50.0, stats["error_rate_percent"], 0.001)
	assert.InDelta(t, 33.333, stats["cache_hit_rate_percent"].(float64), 0.01)
	assert.Equal(t, int64(5), stats["outfits_generated"])
	assert.Equal(t, int64(12), stats["generation_attempts"])
	assert.InDelta(t, 5.0, stats["avg_outfits_per_request"], 0.001)
}

func TestMetricsPercentiles(t *testing.T) {
	m := NewMetrics()

	for i := 1; i <= 100; i++ {
		m.RecordResponseTime(time.Duration(i) * time.Millisecond)
	}

	p50 := m.GetPercentileResponseTime(50)
	p99 := m.GetPercentileResponseTime(99)

	assert.InDelta(t, 50, p50.Milliseconds(), 2)
	assert.InDelta(t, 99, p99.Milliseconds(), 2)
	assert.GreaterOrEqual(t, p99, p50)
}

func TestMetricsStatusDistribution(t *testing.T) {
	m := NewMetrics()

	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(404)

	dist := m.GetStatusCodeDistribution()
	assert.Equal(t, int64(2), dist[200])
	assert.Equal(t, int64(1), dist[404])
}

func TestMetricsRateLimitStats(t *testing.T) {
	m := NewMetrics()

	m.IncrementRateLimitIPBlock()
	m.IncrementRateLimitFallback()
	m.IncrementRateLimitEndpoint("/recommendations")
	m.IncrementRateLimitEndpoint("/recommendations")

	stats := m.GetRateLimitStats()
	assert.Equal(t, int64(1), stats["ip_blocks"])
	assert.Equal(t, int64(1), stats["fallback_count"])

	blocks := stats["endpoint_blocks"].(map[string]int64)
	assert.Equal(t, int64(2), blocks["/recommendations"])
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.RecordRequestByStatus(500)
	m.RecordResponseTime(10 * time.Millisecond)
	m.Reset()

	stats := m.GetStats()
	assert.Equal(t, int64(0), stats["total_requests"])
	assert.Empty(t, m.GetStatusCodeDistribution())
	assert.Equal(t, time.Duration(0), m.GetPercentileResponseTime(95))
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncrementRequest()
				m.RecordResponseTime(time.Millisecond)
				m.RecordRequestByStatus(200)
			}
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(1000), stats["total_requests"])
	assert.Equal(t, int64(1000), m.GetStatusCodeDistribution()[200])
}
