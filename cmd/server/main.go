package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/outfitlab/ensemble/internal/cache"
	"github.com/outfitlab/ensemble/internal/catalog"
	"github.com/outfitlab/ensemble/internal/engine"
	"github.com/outfitlab/ensemble/internal/errors"
	"github.com/outfitlab/ensemble/internal/middleware"
	"github.com/outfitlab/ensemble/internal/monitoring"
	"github.com/outfitlab/ensemble/internal/ratelimit"
	"github.com/outfitlab/ensemble/internal/security"
	"github.com/outfitlab/ensemble/internal/types"
)

const version = "1.0.0"

// config holds server configuration sourced from the environment
type config struct {
	Port                 string
	CatalogPath          string
	CacheTTL             time.Duration
	CacheMaxEntries      int
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	IPLimitPerMin        int
	RecommendLimitPerMin int
	EnableCompression    bool
}

func loadConfig() config {
	return config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		CatalogPath:          os.Getenv("CATALOG_PATH"),
		CacheTTL:             getEnvDurationOrDefault("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      getEnvIntOrDefault("CACHE_MAX_ENTRIES", 1024),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvIntOrDefault("REDIS_DB", 0),
		IPLimitPerMin:        getEnvIntOrDefault("RATE_LIMIT_PER_MIN", 60),
		RecommendLimitPerMin: getEnvIntOrDefault("RECOMMEND_LIMIT_PER_MIN", 20),
		EnableCompression:    getEnvOrDefault("ENABLE_COMPRESSION", "true") == "true",
	}
}

// app bundles the wired components behind the HTTP surface
type app struct {
	catalog     *catalog.Catalog
	recommender *engine.Recommender
	cache       *cache.Cache
	limiter     *ratelimit.RateLimiter
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
	compression *middleware.CompressionMiddleware

	recommendLimit int
}

func newApp(cfg config) (*app, error) {
	var cat *catalog.Catalog
	var err error

	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		slog.Info("Catalog loaded from file", "path", cfg.CatalogPath, "products", cat.Len())
	} else {
		cat = catalog.Seed()
		slog.Info("Using built-in catalog", "products", cat.Len())
	}

	metrics := monitoring.NewMetrics()

	redisClient, err := ratelimit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// Redis is optional, the limiter degrades to in-memory
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}

	limiter := ratelimit.NewRateLimiter(redisClient, ratelimit.Config{
		IPLimitPerMin:        cfg.IPLimitPerMin,
		RecommendLimitPerMin: cfg.RecommendLimitPerMin,
		BurstMultiplier:      2,
	}, metrics)

	a := &app{
		catalog:     cat,
		recommender: engine.NewRecommender(cat, engine.WithAttemptRecorder(metrics.AddGenerationAttempts)),
		cache:       cache.New(cfg.CacheTTL, cfg.CacheMaxEntries),
		limiter:     limiter,
		metrics:     metrics,
		logger:      monitoring.NewLogger(),

		recommendLimit: cfg.RecommendLimitPerMin,
	}

	if cfg.EnableCompression {
		a.compression = middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig())
	}

	return a, nil
}

// setupRouter builds the HTTP routing tree with the full middleware chain
func (a *app) setupRouter() *gin.Engine {
	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	r.Use(cors.New(corsConfig))

	if a.compression != nil {
		r.Use(a.compression.Handler())
	}

	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(a.metrics, a.logger))
	r.Use(security.SecurityHeadersMiddleware())
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())
	r.Use(a.limiter.IPRateLimitMiddleware())
	r.Use(a.cache.Middleware("/recommendations", a.metrics))

	r.POST("/recommendations",
		a.limiter.EndpointRateLimitMiddleware("/recommendations", a.recommendLimit),
		a.handleRecommendations)

	r.GET("/products", a.handleListProducts)
	r.GET("/products/:id", a.handleGetProduct)

	r.GET("/health", a.handleHealth)
	r.GET("/stats", a.handleStats)
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.metrics.GetStats())
	})
	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.cache.Stats())
	})
	r.GET("/ratelimit/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.limiter.GetStats())
	})

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Performance profiling endpoints (development only)
	if os.Getenv("ENABLE_PROFILING") == "true" {
		slog.Info("Enabling performance profiling endpoints")
		r.GET("/debug/pprof/*filepath", gin.WrapF(pprof.Index))
		r.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
		r.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
		r.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
		r.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	}

	return r
}

func (a *app) handleRecommendations(c *gin.Context) {
	start := time.Now()

	var req types.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.NewValidationError("invalid request body", err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if appErr := validateRequest(&req); appErr != nil {
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	req = req.Normalized()

	outfits, err := a.recommender.Recommend(engine.Request{
		BaseProductID:      req.BaseProductID,
		Occasion:           req.Occasion,
		Season:             req.Season,
		MaxBudget:          req.MaxBudget,
		StylePreference:    req.StylePreference,
		NumRecommendations: req.NumRecommendations,
	})
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	responses := make([]types.OutfitResponse, len(outfits))
	topScore := 0.0
	for i := range outfits {
		responses[i] = types.NewOutfitResponse(&outfits[i])
		if responses[i].MatchScore > topScore {
			topScore = responses[i].MatchScore
		}
	}

	a.metrics.IncrementRecommendationsServed()
	a.metrics.AddOutfitsGenerated(len(outfits))

	a.logger.RecommendationLogger(req.BaseProductID, req.NumRecommendations, len(outfits), topScore, time.Since(start), false)

	c.JSON(http.StatusOK, gin.H{
		"recommendations": responses,
		"count":           len(responses),
	})
}

// validateRequest checks the enum-valued and numeric fields before they reach the engine
func validateRequest(req *types.RecommendRequest) *errors.AppError {
	if req.Occasion != nil && !req.Occasion.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown occasion %q", *req.Occasion))
	}
	if req.Season != nil && !req.Season.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown season %q", *req.Season))
	}
	if req.StylePreference != nil && !req.StylePreference.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown style %q", *req.StylePreference))
	}
	if req.MaxBudget != nil && *req.MaxBudget <= 0 {
		return errors.NewValidationError("max_budget must be positive")
	}
	if req.NumRecommendations < 0 || req.NumRecommendations > 10 {
		return errors.NewValidationError("num_recommendations must be between 1 and 10")
	}
	return nil
}

func (a *app) handleListProducts(c *gin.Context) {
	products := a.catalog.Products()

	var categoryFilter *catalog.Category
	if raw := c.Query("category"); raw != "" {
		cat := catalog.Category(raw)
		if !cat.Valid() {
			appErr := errors.NewValidationError(fmt.Sprintf("unknown category %q", raw))
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		categoryFilter = &cat
	}

	responses := make([]types.ProductResponse, 0, len(products))
	for i := range products {
		if categoryFilter != nil && products[i].Category != *categoryFilter {
			continue
		}
		responses = append(responses, types.NewProductResponse(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": responses,
		"count":    len(responses),
	})
}

func (a *app) handleGetProduct(c *gin.Context) {
	id := c.Param("id")

	product := a.catalog.ByID(id)
	if product == nil {
		appErr := errors.NewNotFoundError("product", id)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, types.NewProductResponse(product))
}

func (a *app) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   version,
		"catalog":   a.catalog.Len(),
	})
}

func (a *app) handleStats(c *gin.Context) {
	stats := gin.H{
		"catalog_products":    a.catalog.Len(),
		"catalog_by_category": a.catalog.CountByCategory(),
		"compatibility_pairs": a.recommender.Index().Size(),
		"cache":               a.cache.Stats(),
		"metrics":             a.metrics.GetStats(),
	}

	if a.compression != nil {
		stats["compression"] = a.compression.GetStats()
	}

	c.JSON(http.StatusOK, stats)
}

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := loadConfig()

	a, err := newApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	r := a.setupRouter()

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// Helper functions for environment variables with defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value, "default", defaultValue)
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", value, "default", defaultValue)
	}
	return defaultValue
}
