package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/database"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/router"
	"budget-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	userRepo := repositories.NewUserRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditLogRepo := repositories.NewAuditLogRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	activity := services.NewActivityLogger(logger)
	auditService := services.NewAuditService(auditLogRepo, logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security)

	deps := router.Dependencies{
		Config:               cfg,
		DB:                   db,
		Registerer:           prometheus.DefaultRegisterer,
		Gatherer:             prometheus.DefaultGatherer,
		Token:                tokenService,
		BlacklistedTokenRepo: blacklistedTokenRepo,
		Auth: services.NewAuthService(
			userRepo, refreshTokenRepo, blacklistedTokenRepo,
			passwordService, tokenService, auditService, metrics, logger,
		),
		Categories:   services.NewCategoryService(categoryRepo, auditService, activity, metrics),
		Transactions: services.NewTransactionService(transactionRepo, categoryRepo, auditService, activity, metrics),
		Budgets:      services.NewBudgetService(budgetRepo, categoryRepo, auditService, activity, metrics),
		Reports:      services.NewReportService(categoryRepo, transactionRepo, budgetRepo, activity, metrics),
		Profile:      services.NewProfileService(userRepo, profileRepo, auditService),
		Audit:        auditService,
		RateLimiter:  middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond),
	}
	if !cfg.IsProduction() {
		deps.SampleData = services.NewSampleDataService(categoryRepo, transactionRepo)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	maintenance := services.NewMaintenanceService(
		refreshTokenRepo, blacklistedTokenRepo, auditLogRepo, activity, metrics, logger,
		cfg.Maintenance.CleanupInterval, cfg.Maintenance.AuditRetention,
	)
	go maintenance.Start(ctx)
	go deps.RateLimiter.Run(ctx)

	e := router.SetupRouter(deps)
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           e,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting budget tracker",
		"addr", srv.Addr,
		"environment", cfg.Server.Environment,
		"driver", cfg.Database.Driver,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err, "addr", srv.Addr)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	opts.Level = slog.LevelDebug
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
