package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alumniconnect/portal-api/config"
	"github.com/alumniconnect/portal-api/internal/cache"
	"github.com/alumniconnect/portal-api/internal/database/postgres"
	"github.com/alumniconnect/portal-api/internal/handlers"
	"github.com/alumniconnect/portal-api/internal/middleware"
	"github.com/alumniconnect/portal-api/internal/repository"
	"github.com/alumniconnect/portal-api/internal/services"
	"github.com/alumniconnect/portal-api/pkg/db"
	"github.com/alumniconnect/portal-api/pkg/jwt"
	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	"github.com/alumniconnect/portal-api/pkg/profiling"
	"github.com/alumniconnect/portal-api/pkg/retry"
	"github.com/alumniconnect/portal-api/pkg/tracing"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// newReportCache picks the report cache backend: disabled, shared Redis, or in-process
func newReportCache(ctx context.Context, cfg config.AnalyticsConfig) (cache.ReportCache, func(), error) {
	noop := func() {}

	if cfg.CacheTTL == 0 {
		logger.Warn("Analytics report caching is DISABLED - every request recomputes from the database")
		return cache.NoopReportCache{}, noop, nil
	}

	if cfg.RedisURL != "" {
		redisCache, err := retry.DoWithResult(ctx, retry.StartupConfig(), "redis_connect", func() (*cache.RedisReportCache, error) {
			return cache.NewRedisReportCache(ctx, cfg.RedisURL, cfg.CacheTTL)
		})
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Analytics reports cached in Redis", zap.Duration("ttl", cfg.CacheTTL))
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				logger.Error("Failed to close Redis report cache", zap.Error(err))
			}
		}, nil
	}

	logger.Info("Analytics reports cached in memory", zap.Duration("ttl", cfg.CacheTTL))
	return cache.NewMemoryReportCache(cfg.CacheTTL), noop, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxBackups:  cfg.Logging.MaxBackups,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting AlumniConnect portal API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	// Background workers (rate limiter cleanup) stop with this context
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Initialize PostgreSQL connection pool
	pool, err := retry.DoWithResult(appCtx, retry.StartupConfig(), "postgres_connect", func() (*pgxpool.Pool, error) {
		return db.NewPool(appCtx, db.PoolConfig{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	pgClient := postgres.NewClient(pool)
	defer pgClient.Close()

	// NOTE: Migrations run separately via the migrate command

	reportCache, closeCache, err := newReportCache(appCtx, cfg.Analytics)
	if err != nil {
		logger.Fatal("Failed to initialize report cache", zap.Error(err))
	}
	defer closeCache()

	mentorshipRepo := repository.NewMentorshipRepository(pgClient)
	userRepo := repository.NewUserRepository(pgClient)

	analyticsService := services.NewAdminAnalyticsService(mentorshipRepo, userRepo,
		services.WithReportCache(reportCache),
	)

	tokenManager := jwt.NewTokenManager(cfg.AdminSession.JWTSecret, cfg.AdminSession.JWTIssuer, cfg.AdminSession.SessionTTLHours)

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(pgClient)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // admin session cookie
		MaxAge:           12 * time.Hour,
	}))

	generalRateLimiter := middleware.NewRateLimiter(appCtx, 100, 200) // 100 req/sec, burst of 200
	adminRateLimiter := middleware.NewRateLimiter(appCtx, 10, 20)     // reports scan full tables

	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	admin := router.Group("/api/v1/admin")
	admin.Use(
		adminRateLimiter.Middleware(),
		middleware.BodySizeLimitMiddleware(16*1024),
		middleware.AdminSessionMiddleware(tokenManager, cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure),
	)
	analyticsHandler.RegisterRoutes(admin)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
