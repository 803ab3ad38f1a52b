package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finance-control/internal/config"
	"finance-control/internal/database"
	"finance-control/internal/middleware"
	"finance-control/internal/repositories"
	"finance-control/internal/server"
	"finance-control/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load(".env")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	trustedProxies, err := cfg.Server.TrustedProxyNets()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	audit := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	counter := services.NewRequestCounter(prometheus.DefaultRegisterer)
	uow := database.NewUnitOfWork(db.DB, cfg.Ledger.TransactionTimeout)
	passwords := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, 2*cfg.Security.RateLimitPerSecond)
	go rateLimiter.Run(ctx)

	router := server.NewRouter(server.Dependencies{
		Users:            services.NewUserService(userRepo, passwords, audit, metrics, logger),
		Accounts:         services.NewAccountService(uow, accountRepo, transactionRepo, userRepo, audit, metrics, logger),
		Ledger:           services.NewLedgerService(uow, accountRepo, transactionRepo, audit, metrics, logger, cfg.Ledger.HistoryLimit),
		Counter:          counter,
		Policy:           newPolicy(cfg),
		Audit:            audit,
		Metrics:          metrics,
		Health:           db,
		RateLimiter:      rateLimiter,
		Gatherer:         prometheus.DefaultGatherer,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		TrustedProxies:   trustedProxies,
	})

	srv := server.New(router, cfg.Address(), logger).
		WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout)

	logger.Info("finance-control starting",
		"environment", cfg.Server.Environment,
		"address", cfg.Address(),
		"auth_mode", cfg.Auth.Mode,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, options))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, options))
}

func newPolicy(cfg *config.Config) services.AuthorizationPolicy {
	if cfg.Auth.Mode == config.AuthModeBearer {
		return services.NewBearerTokenPolicy(cfg.Auth.HMACSecret, cfg.Auth.Issuer)
	}
	return services.NewAllowAllPolicy()
}
