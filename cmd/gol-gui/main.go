//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/ui"
	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Using default configuration: %v", err)
		cfg = utils.DefaultConfig()
	}
	if err = cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game := ui.New(model.NewGrid(cfg.Width, cfg.Height), cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
