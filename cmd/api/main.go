package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/config"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/resilience/circuitbreaker"
	newsUC "newsdesk/internal/usecase/news"
	envcfg "newsdesk/pkg/config"

	hhttp "newsdesk/internal/handler/http"
	hnews "newsdesk/internal/handler/http/news"
	"newsdesk/internal/handler/http/requestid"

	_ "newsdesk/docs" // swagger docs
)

// @title           Newsdesk API
// @version         1.0
// @description     CRUD API for news records with schema validation, business rules and paginated listing.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	shutdownTracing := tracing.Setup()

	database := initDatabase(logger, cfg.Database)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := envcfg.GetEnvString("VERSION", "dev")
	components := setupServer(logger, cfg, database, version)

	runServer(logger, cfg.HTTP, components, version)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger(cfg config.LogConfig) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.Level, cfg.Format)
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger, cfg config.DatabaseConfig) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.URL, db.ConnectionConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	})
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		_ = database.Close()
		os.Exit(1)
	}
	return database
}

// ServerComponents holds what runServer needs besides the configuration.
type ServerComponents struct {
	Handler     http.Handler
	Database    *sql.DB
	RateLimiter *hhttp.RateLimiter
}

// setupServer wires the store, the use cases, the routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, version string) *ServerComponents {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	newsSvc := newsUC.NewService(
		pgRepo.NewNewsRepo(breaker),
		newsUC.WithMinTextLength(cfg.News.MinTextLength),
		newsUC.WithRejectPastPublication(cfg.News.RejectPastPublication),
	)

	paginationCfg := pagination.DefaultConfig()
	paginationCfg.PageSize = cfg.News.PageSize

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", hhttp.Health)
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database, Breaker: breaker, Version: version})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	hnews.Register(mux, newsSvc, paginationCfg, logger)

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Bool("trust_proxy", cfg.RateLimit.TrustProxy))
	} else {
		logger.Warn("rate limiting is disabled")
	}

	corsCfg := hhttp.DefaultCORSConfig(cfg.HTTP.CORSAllowedOrigins)
	corsCfg.Logger = logger
	if len(corsCfg.AllowedOrigins) > 0 {
		logger.Info("CORS enabled", slog.Any("allowed_origins", corsCfg.AllowedOrigins))
	}

	return &ServerComponents{
		Handler:     applyMiddleware(logger, mux, cfg.HTTP, corsCfg, limiter),
		Database:    database,
		RateLimiter: limiter,
	}
}

// applyMiddleware wraps the mux, outermost first:
// CORS → Request ID → Tracing → Rate Limit → Recovery → Logging → Timeout → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg config.HTTPConfig, corsCfg hhttp.CORSConfig, limiter *hhttp.RateLimiter) http.Handler {
	mws := []hhttp.Middleware{
		hhttp.CORS(corsCfg),
		requestid.Middleware,
		tracing.Middleware,
	}
	if limiter != nil {
		mws = append(mws, limiter.Limit)
	}
	mws = append(mws,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Timeout(cfg.RequestTimeout),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		hhttp.MetricsMiddleware,
	)
	return hhttp.Chain(handler, mws...)
}

// runServer serves until SIGINT/SIGTERM and then shuts down gracefully.
func runServer(logger *slog.Logger, cfg config.HTTPConfig, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.RateLimiter != nil {
		go components.RateLimiter.StartCleanup(ctx, time.Minute, 10*time.Minute)
	}
	go reportPoolStats(ctx, components.Database, 15*time.Second)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}

// reportPoolStats publishes connection pool gauges until ctx is done.
func reportPoolStats(ctx context.Context, database *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		metrics.UpdateDBPoolStats(database.Stats())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
