package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bimakw/btc-balance/internal/application/services"
	"github.com/bimakw/btc-balance/internal/config"
	"github.com/bimakw/btc-balance/internal/domain/entities"
	"github.com/bimakw/btc-balance/internal/infrastructure/logging"
	"github.com/bimakw/btc-balance/internal/infrastructure/mempool"
	"github.com/bimakw/btc-balance/internal/presentation/handlers"
	"github.com/bimakw/btc-balance/internal/presentation/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting btc-balance API",
		zap.Int("port", cfg.API.Port),
		zap.String("mainnet_url", cfg.Explorer.MainnetURL),
		zap.String("testnet_url", cfg.Explorer.TestnetURL),
	)

	// Create explorer client and services
	explorer := mempool.NewClient(cfg.Explorer, logger)
	balanceService := services.NewBalanceService(explorer, nil, logger)

	// Create handlers
	balanceHandler := handlers.NewBalanceHandler(balanceService, logger)
	healthHandler := handlers.NewHealthHandler(
		explorer.NetworkHealth(entities.NetworkMainnet),
		explorer.NetworkHealth(entities.NetworkTestnet),
	)

	// Setup router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(chimiddleware.Recoverer)

	// Health endpoints (no rate limiting)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/live", healthHandler.Live)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimiter(cfg.API.RateLimitRPS))
		balanceHandler.RegisterRoutes(r)
	})

	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("API server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
