package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/driver"
	"github.com/sheikhrachel/gol-engine/utils"
)

var errInterrupted = errors.New("interrupted")

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config.json: %v\n", err)
		os.Exit(2)
	}

	// Initialize game
	grid, renderer, stats := initializeGame(config)
	d := driver.New(grid, config,
		driver.WithFrameFunc(func(f driver.Frame) { drawFrame(f, config, renderer, stats) }),
		driver.WithErrorFunc(reportError),
	)
	displayGameInfo(config, grid)

	eg, ctx := errgroup.WithContext(context.Background())

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		return driver.ReadCommands(ctx, os.Stdin, d, reportError)
	})
	eg.Go(func() error {
		return d.Run(ctx)
	})

	err = eg.Wait()
	fmt.Println()
	switch {
	case err == nil, errors.Is(err, driver.ErrQuit), errors.Is(err, errInterrupted):
		fmt.Println("🛑 Shutting down gracefully...")
	case errors.Is(err, driver.ErrGenerationLimit):
		fmt.Printf("🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
	default:
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		printFinalStats(grid, stats)
		os.Exit(1)
	}
	printFinalStats(grid, stats)
}
