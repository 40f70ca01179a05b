package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-universe/utils"
)

const configFile = "config.json"

func main() {
	os.Exit(run())
}

func run() int {
	logger := utils.NewLogger("info", "text", os.Stderr)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		logger.Warn("using default configuration", "file", configFile, "error", err)
		config = utils.DefaultConfig()
	}
	logger = utils.NewLogger(config.LogLevel, config.LogFormat, os.Stderr)

	if config.Interactive {
		if config, err = utils.Prompt(os.Stdin, os.Stdout, config); err != nil {
			logger.Error("invalid input", "error", err)
			return 1
		}
	}
	if err = config.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	grid, renderer, stats, err := initializeGame(config, os.Stdout, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		return 1
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return runSimulation(ctx, grid, renderer, config, stats, logger)
	})
	eg.Go(func() error {
		return watchSignals(ctx, sigChan)
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, errInterrupted):
		logger.Info("shutting down gracefully", "reason", err)
	case err != nil:
		logger.Error("simulation failed", "error", err)
		return 1
	}

	displayFinalStats(stats, logger)
	return 0
}
