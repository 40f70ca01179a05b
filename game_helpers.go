package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-universe/model"
	"github.com/sheikhrachel/go-universe/utils"
)

var errInterrupted = errors.New("interrupted")

// initializeGame seeds the grid and sets up the renderer and stats
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("seeding universe", "seed", seed)

	grid, err := model.NewGrid(config.Rows, config.Cols, rand.New(rand.NewPCG(seed, 0)))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}

	logger.Info("universe created",
		"rows", grid.Rows(),
		"cols", grid.Cols(),
		"generations", config.Generations,
		"living", grid.CountLivingCells(),
	)

	return grid, model.NewTerminalRenderer(out), utils.NewStats(config.StagnationHistory), nil
}

// runSimulation renders and advances the grid once per generation, pacing
// each turn by the configured frame rate
func runSimulation(
	ctx context.Context,
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	config utils.Config,
	stats *utils.Stats,
	logger *slog.Logger,
) error {
	lastFrameTime := time.Now()
	for turn := 1; turn <= config.Generations; turn++ {
		if err := renderer.DisplayTurn(turn, grid); err != nil {
			return errors.Wrapf(err, "[runSimulation] turn %d", turn)
		}

		grid.Step()
		updateGameState(grid, turn, lastFrameTime, stats, logger)
		lastFrameTime = time.Now()

		if err := pace(ctx, config.FrameRate); err != nil {
			return err
		}
	}
	return nil
}

// updateGameState records stats for the generation just computed
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	logger *slog.Logger,
) {
	livingCells := grid.CountLivingCells()
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	if stats.Record(grid.Hash()) {
		logger.Debug("grid is stagnant", "generation", generation, "living", livingCells)
	}
	if livingCells == 0 {
		logger.Debug("universe is extinct", "generation", generation)
	}
}

// pace waits for d or until ctx is done
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// watchSignals returns errInterrupted when a signal arrives, or nil once ctx is done
func watchSignals(ctx context.Context, sigChan <-chan os.Signal) error {
	select {
	case sig := <-sigChan:
		return errors.Wrapf(errInterrupted, "received %s", sig)
	case <-ctx.Done():
		return nil
	}
}

// displayFinalStats logs the run summary
func displayFinalStats(stats *utils.Stats, logger *slog.Logger) {
	logger.Info("simulation finished",
		"generations", stats.TotalGenerations,
		"runtime", stats.Runtime().Round(time.Millisecond),
		"gen_per_sec", stats.GenerationsPerSecond,
		"avg_population", stats.AveragePopulation,
	)
}
