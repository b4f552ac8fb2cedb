package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/application/services"
	"github.com/bimakw/btc-balance/internal/config"
	"github.com/bimakw/btc-balance/internal/infrastructure/logging"
	"github.com/bimakw/btc-balance/internal/infrastructure/mempool"
	"github.com/bimakw/btc-balance/internal/infrastructure/storage"
	"github.com/bimakw/btc-balance/internal/presentation/cli"
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

	// Cancel the lookup on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	explorer := mempool.NewClient(cfg.Explorer, logger)
	store := storage.NewFileStore(cfg.Output, logger)
	balanceService := services.NewBalanceService(explorer, store, logger)

	prompt := cli.NewPrompt(balanceService, os.Stdin, os.Stdout, logger)
	if err := prompt.Run(ctx); err != nil {
		logger.Error("Failed to read address", zap.Error(err))
	}
}
