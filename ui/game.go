//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/gol-engine/driver"
	"github.com/sheikhrachel/gol-engine/utils"
)

const hudHeight = 20

var (
	backgroundColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	cellColor       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	lineColor       = color.Black
	hudColor        = color.RGBA{R: 20, G: 20, B: 120, A: 255}
)

// Game adapts the engine and its driver to the ebiten.Game interface.
type Game struct {
	grid   driver.Engine
	driver *driver.Driver
	ticker *FixedStep

	scale    int
	showGrid bool
	lastErr  error
}

// New constructs a Game for grid using the tick and display settings from cfg
func New(grid driver.Engine, cfg utils.Config) *Game {
	g := &Game{
		grid:     grid,
		ticker:   NewFixedStep(cfg.TickInterval),
		scale:    cfg.CellScale,
		showGrid: cfg.GridVisible,
	}
	g.driver = driver.New(grid, cfg, driver.WithErrorFunc(func(err error) { g.lastErr = err }))
	return g
}

// Update handles input and advances the simulation on the configured interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.Toggle()
		g.ticker.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleUnderCursor()
	}

	if g.ticker.ShouldStep() {
		g.driver.Tick()
	}
	return nil
}

func (g *Game) toggleUnderCursor() {
	mx, my := ebiten.CursorPosition()
	s := float64(g.scale)
	x, y, ok := driver.PickCell(float64(mx)/s, float64(my-hudHeight)/s, g.grid.GetWidth(), g.grid.GetHeight())
	if !ok {
		return
	}
	if err := g.driver.Apply(driver.Command{Kind: driver.CmdToggle, X: x, Y: y}); err != nil {
		g.lastErr = err
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := g.grid.GetWidth(), g.grid.GetHeight()
	s := float32(g.scale)
	top := float32(hudHeight)

	for y := range h {
		for x := range w {
			alive, err := g.grid.IsAlive(x, y)
			if err != nil || !alive {
				continue
			}
			inset := s * 0.01
			vector.DrawFilledRect(screen, float32(x)*s+inset, top+float32(y)*s+inset, s-2*inset, s-2*inset, cellColor, false)
		}
	}

	if g.showGrid {
		for y := 0; y <= h; y++ {
			vector.StrokeLine(screen, 0, top+float32(y)*s, float32(w)*s, top+float32(y)*s, 1, lineColor, false)
		}
		for x := 0; x <= w; x++ {
			vector.StrokeLine(screen, float32(x)*s, top, float32(x)*s, top+float32(h)*s, 1, lineColor, false)
		}
	}

	status := fmt.Sprintf("Gen %d  %s  Living %d", g.grid.Generation(), g.driver.State(), g.grid.CountLivingCells())
	if g.lastErr != nil {
		status += "  " + g.lastErr.Error()
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, hudColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.GetWidth() * g.scale, g.grid.GetHeight()*g.scale + hudHeight
}
