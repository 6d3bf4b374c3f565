package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timed-trading-platform/config"
	httpHandler "timed-trading-platform/internal/adapter/http/handler"
	"timed-trading-platform/internal/adapter/oracle"
	pgStorage "timed-trading-platform/internal/adapter/storage/postgres"
	redisStorage "timed-trading-platform/internal/adapter/storage/redis"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/internal/scheduler"
	"timed-trading-platform/internal/service"
	"timed-trading-platform/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Timed Trading Platform")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	positionRepo := pgStorage.NewPositionRepo(pool)
	entryRepo := pgStorage.NewLedgerEntryRepo(pool)
	payoutRepo := pgStorage.NewPayoutScheduleRepo(pool)
	modeRepo := pgStorage.NewProfitModeRepo(pool)
	orderRepo := pgStorage.NewLimitOrderRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	priceCache := redisStorage.NewPriceCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize the price feed
	priceOracle := oracle.NewBinance(cfg.Oracle, priceCache, logger.Component(log, "oracle"))

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ledgerStore := service.NewLedgerStore(walletRepo, entryRepo, transactor, logger.Component(log, "ledger"))

	// Settlement scheduler and position service reference each other, so the
	// scheduler is constructed first and bound after.
	settleScheduler := scheduler.New(cfg.Settlement, logger.Component(log, "scheduler"))

	positionSvc := service.NewPositionService(
		positionRepo,
		payoutRepo,
		modeRepo,
		ledgerStore,
		priceOracle,
		priceCache,
		transactor,
		settleScheduler,
		cfg.Settlement,
		cfg.Oracle.StaleAfter,
		logger.Component(log, "positions"),
	)
	settleScheduler.Bind(func(ctx context.Context, positionID uuid.UUID) error {
		_, err := positionSvc.Settle(ctx, positionID)
		return err
	})

	walletSvc := service.NewWalletService(walletRepo, entryRepo, ledgerStore, logger.Component(log, "wallet"))
	spotSvc := service.NewSpotTradeService(ledgerStore, logger.Component(log, "spot"))
	limitSvc := service.NewLimitOrderService(orderRepo, ledgerStore, transactor, priceOracle, logger.Component(log, "orders"))

	// Start background workers
	go priceOracle.Run(ctx)
	go settleScheduler.Run(ctx)
	go limitSvc.Run(ctx)

	// Re-arm settlement for positions left OPEN by a previous run.
	if err := positionSvc.RecoverOpen(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to recover open positions")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		PositionSvc:    positionSvc,
		SpotSvc:        spotSvc,
		LimitSvc:       limitSvc,
		PayoutRepo:     payoutRepo,
		Oracle:         priceOracle,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Stop the feed, scheduler and order matcher first so no new ledger
	// writes start while the HTTP server drains.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
