package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/TomaszGajek/settlements-sub000/internal/config"
	"github.com/TomaszGajek/settlements-sub000/internal/database"
	"github.com/TomaszGajek/settlements-sub000/internal/handlers"
	"github.com/TomaszGajek/settlements-sub000/internal/middleware"
	"github.com/TomaszGajek/settlements-sub000/internal/repositories"
	"github.com/TomaszGajek/settlements-sub000/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	logger := newLogger(&cfg.Log)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	auditLogger := services.NewAuditLogger(logger.With("component", "audit"))

	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	categoryService := services.NewCategoryService(categoryRepo, metrics, auditLogger)
	transactionService := services.NewTransactionService(transactionRepo, metrics, auditLogger)
	dashboardService := services.NewDashboardService(transactionRepo, metrics)
	tokenService := services.NewTokenService(&cfg.Auth)

	rateLimiter := middleware.NewRateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit("64K"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Category:    handlers.NewCategoryHandler(categoryService),
		Transaction: handlers.NewTransactionHandler(transactionService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Health:      handlers.NewHealthCheckHandler(db.DB),
	},
		middleware.RequireAuth(tokenService),
		rateLimiter.Middleware(),
		middleware.ProvisionOwner(categoryService),
	)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting ledger API", "address", address, "environment", cfg.Server.Environment)

	err = serve(ctx, e, address, cfg.Server.ShutdownTimeout, logger, rateLimiter.Run)
	stop()
	closeDB()
	if err != nil {
		logger.Error("Server error", "error", err, "address", address)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.LogConfig) *slog.Logger {
	options := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, options))
}
