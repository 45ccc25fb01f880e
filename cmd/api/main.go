package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbuddy/config"
	httpHandler "bitbuddy/internal/adapter/http/handler"
	"bitbuddy/internal/adapter/provider/bridge"
	"bitbuddy/internal/adapter/provider/legacy"
	"bitbuddy/internal/adapter/provider/xverse"
	memStorage "bitbuddy/internal/adapter/storage/memory"
	pgStorage "bitbuddy/internal/adapter/storage/postgres"
	redisStorage "bitbuddy/internal/adapter/storage/redis"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/internal/service"
	"bitbuddy/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("BB_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Str("network", cfg.Wallet.Network).
		Msg("Starting BitBuddy")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var checkers []ports.HealthChecker

	// Activity store
	var store ports.ActivityStore
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if cfg.Database.AutoMigrate {
			if err := pgStorage.Migrate(ctx, pool, log); err != nil {
				log.Fatal().Err(err).Msg("Failed to run migrations")
			}
		}
		go pgStorage.ReportPoolUsage(ctx, pool, 15*time.Second)

		store = pgStorage.NewActivityStore(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		store = memStorage.NewActivityStore()
		log.Warn().Msg("Using in-memory activity store, data is lost on restart")
	}

	// Redis: processed-event cache, rate limiting, feed stream
	var (
		events      ports.ProcessedEventCache
		rateLimiter ports.RateLimiter
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		events = redisStorage.NewEventCache(rdb)
		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		store.Feed = redisStorage.NewFeedStream(rdb, redisStorage.DefaultFeedMaxLen)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Wallet provider adapters, in priority order
	adapters, clients := buildAdapters(cfg.Wallet, log)
	for _, c := range clients {
		defer c.Close()
		checkers = append(checkers, c)
	}

	// Core services
	session := service.NewWalletSession(adapters, service.WalletSessionConfig{
		AppName:              cfg.Wallet.AppName,
		ConnectMessage:       cfg.Wallet.ConnectMessage,
		Network:              domain.Network(cfg.Wallet.Network),
		AdvisoryBalanceCheck: cfg.Wallet.AdvisoryBalanceCheck,
		AttemptTimeout:       cfg.Wallet.ConnectAttemptTimeout,
	}, logger.Component(log, "session"))

	publisher := service.NewFeedPublisher(store.Feed, logger.Component(log, "feed"))
	rewardsSvc := service.NewRewardsService(store, publisher, events, service.RewardsConfig{
		ContributionRetries: cfg.Rewards.ContributionRetries,
		ProcessedEventTTL:   cfg.Rewards.ProcessedEventTTL,
	}, logger.Component(log, "rewards"))
	giftFlow := service.NewGiftFlow(session, rewardsSvc, logger.Component(log, "gifts"))
	bridgeFlow := service.NewBridgeFlow(session, rewardsSvc, publisher, logger.Component(log, "bridge"))

	unsubscribe := session.Subscribe(func(s domain.Session) {
		log.Debug().Str("state", string(s.State)).Str("provider", s.Provider).Msg("session changed")
	})
	defer unsubscribe()

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Session:        session,
		Rewards:        rewardsSvc,
		Gifts:          giftFlow,
		Bridge:         bridgeFlow,
		RateLimiter:    rateLimiter,
		HealthCheckers: checkers,
		FeedLimit:      cfg.Rewards.FeedDefaultLimit,
		MetricsPath:    metricsPath,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	session.Disconnect()
	stop()

	log.Info().Msg("Server exited")
}

// buildAdapters creates one adapter per configured provider, keeping config order.
func buildAdapters(cfg config.WalletConfig, log zerolog.Logger) ([]ports.ProviderAdapter, []*bridge.Client) {
	var (
		adapters []ports.ProviderAdapter
		clients  []*bridge.Client
	)
	for _, p := range cfg.Providers {
		client := bridge.NewClient(p.Name, p.Endpoint, cfg.RequestTimeout)
		adapterLog := log.With().Str("provider", p.Name).Logger()

		switch p.Name {
		case xverse.Name:
			adapters = append(adapters, xverse.New(client, adapterLog))
		case legacy.Name:
			adapters = append(adapters, legacy.New(client, cfg.AccountPollInterval, adapterLog))
		default:
			log.Warn().Str("provider", p.Name).Msg("unknown wallet provider, skipping")
			client.Close()
			continue
		}
		clients = append(clients, client)
	}
	return adapters, clients
}
