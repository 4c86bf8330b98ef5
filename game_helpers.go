package main

import (
	"fmt"
	"os"

	"github.com/sheikhrachel/gol-engine/driver"
	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	grid := model.NewGrid(config.Width, config.Height)

	renderer := model.NewTerminalRenderer(os.Stdout)
	renderer.ShowBorder = config.GridVisible

	return grid, renderer, utils.NewStats()
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Tick: %v | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), config.TickInterval, grid.CountLivingCells())
	fmt.Println("Commands: p (run/pause), s (step), t X Y (toggle), set X Y 0|1, q (quit)")
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// drawFrame updates stats and redraws the board; it runs on the driver goroutine
func drawFrame(f driver.Frame, config utils.Config, renderer *model.TerminalRenderer, stats *utils.Stats) {
	livingCells := f.Grid.CountLivingCells()
	if f.Stepped {
		stats.Update(f.Generation, livingCells, f.Elapsed)
	} else {
		stats.RecordToggle(livingCells)
	}

	if config.ClearScreen {
		renderer.Clear()
	}
	displayGameStatus(f, livingCells, stats)
	if err := renderer.Display(f.Grid); err != nil {
		reportError(err)
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(f driver.Frame, livingCells int, stats *utils.Stats) {
	density := float64(livingCells) / float64(f.Grid.GetWidth()*f.Grid.GetHeight()) * 100

	status := f.State.String()
	if livingCells == 0 {
		status += " | Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.Generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Edits: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Toggles, stats.Runtime().Seconds())
	fmt.Println()
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}

func printFinalStats(grid *model.Grid, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		grid.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
