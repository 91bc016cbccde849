package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for response compression
type CompressionConfig struct {
	MinSize          int // Minimum response size to compress (bytes)
	CompressionLevel int // Gzip compression level (1-9, 9 is best compression)
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:          1024, // Compress responses >= 1KB
		CompressionLevel: 6,    // Balanced compression level
	}
}

// CompressionMiddleware provides gzip compression for HTTP responses
type CompressionMiddleware struct {
	config CompressionConfig
	stats  *CompressionStats
	pool   sync.Pool // Pool of gzip writers for better performance
}

// NewCompressionMiddleware creates a new compression middleware
func NewCompressionMiddleware(config CompressionConfig) *CompressionMiddleware {
	level := config.CompressionLevel
	if level < gzip.BestSpeed || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}

	return &CompressionMiddleware{
		config: config,
		stats:  NewCompressionStats(),
		pool: sync.Pool{
			New: func() interface{} {
				gz, _ := gzip.NewWriterLevel(io.Discard, level)
				return gz
			},
		},
	}
}

// Handler returns a Gin middleware function for response compression
func (cm *CompressionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		bw := &bufferedResponseWriter{ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		body := bw.buf
		compressed := false
		if len(body) >= cm.config.MinSize {
			gz := cm.pool.Get().(*gzip.Writer)
			var out strings.Builder
			gz.Reset(&out)
			if _, err := gz.Write(body); err == nil && gz.Close() == nil {
				bw.ResponseWriter.Header().Set("Content-Encoding", "gzip")
				bw.ResponseWriter.Header().Set("Vary", "Accept-Encoding")
				body = []byte(out.String())
				compressed = true
			}
			cm.pool.Put(gz)
		}

		cm.stats.RecordRequest(int64(len(bw.buf)), int64(len(body)), compressed)

		if bw.status == 0 {
			bw.status = http.StatusOK
		}
		bw.ResponseWriter.Header().Set("Content-Length", strconv.Itoa(len(body)))
		bw.ResponseWriter.WriteHeader(bw.status)
		_, _ = bw.ResponseWriter.Write(body)
	}
}

// bufferedResponseWriter captures the response so it can be compressed as a whole
type bufferedResponseWriter struct {
	gin.ResponseWriter
	buf    []byte
	status int
}

func (bw *bufferedResponseWriter) Write(data []byte) (int, error) {
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.buf = append(bw.buf, data...)
	return len(data), nil
}

func (bw *bufferedResponseWriter) WriteString(s string) (int, error) {
	return bw.Write([]byte(s))
}

func (bw *bufferedResponseWriter) WriteHeader(statusCode int) {
	bw.status = statusCode
}

// Status reports the buffered status so that downstream middleware reading
// c.Writer.Status() sees what the handler wrote, not the untouched underlying
// writer.
func (bw *bufferedResponseWriter) Status() int {
	if bw.status == 0 {
		return bw.ResponseWriter.Status()
	}
	return bw.status
}

// CompressionStats tracks compression statistics
type CompressionStats struct {
	TotalRequests      int64
	CompressedRequests int64
	TotalBytes         int64
	CompressedBytes    int64
	mutex              sync.RWMutex
}

// NewCompressionStats creates new compression statistics
func NewCompressionStats() *CompressionStats {
	return &CompressionStats{}
}

// RecordRequest records a request's compression stats
func (cs *CompressionStats) RecordRequest(originalSize, compressedSize int64, compressed bool) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	cs.TotalRequests++
	cs.TotalBytes += originalSize

	if compressed {
		cs.CompressedRequests++
		cs.CompressedBytes += compressedSize
	}
}

// GetStats returns current compression statistics
func (cs *CompressionStats) GetStats() map[string]interface{} {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	compressionRatio := float64(0)
	if cs.TotalBytes > 0 {
		compressionRatio = float64(cs.CompressedBytes) / float64(cs.TotalBytes)
	}

	return map[string]interface{}{
		"total_requests":      cs.TotalRequests,
		"compressed_requests": cs.CompressedRequests,
		"total_bytes":         cs.TotalBytes,
		"compressed_bytes":    cs.CompressedBytes,
		"compression_ratio":   compressionRatio,
	}
}

// GetStats returns compression statistics
func (cm *CompressionMiddleware) GetStats() map[string]interface{} {
	return cm.stats.GetStats()
}
