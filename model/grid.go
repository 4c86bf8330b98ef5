package model

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/rules"
)

// ErrOutOfRange is returned when a coordinate falls outside the grid
var ErrOutOfRange = errors.New("coordinates out of range")

// Grid is the simulation engine: a fixed-size board of live/dead cells.
//
// Only interior cells are evolved by Step. The outermost ring keeps
// whatever value it holds, so it stays frozen unless edited with ToggleCell or Set.
//
// Grid is not safe for concurrent use; callers serialize Step and edits.
type Grid struct {
	width      int
	height     int
	cells      [][]bool // current generation, indexed [y][x]
	next       [][]bool // scratch buffer for the generation being computed
	generation int
}

// NewGrid creates a grid with the given dimensions, seeded with a 2x2 block at its center.
// It panics if width or height is not positive.
func NewGrid(width, height int) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("model.NewGrid: invalid dimensions %dx%d", width, height))
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  newCells(width, height),
		next:   newCells(width, height),
	}
	g.seed()
	return g
}

func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// seed places a block still-life at the center; cells that would land outside tiny grids are skipped
func (g *Grid) seed() {
	cx, cy := g.width/2, g.height/2
	for _, p := range [][2]int{
		{cx, cy},
		{cx - 1, cy - 1},
		{cx - 1, cy},
		{cx, cy - 1},
	} {
		if g.inBounds(p[0], p[1]) {
			g.cells[p[1]][p[0]] = true
		}
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns the number of completed steps
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

func (g *Grid) checkBounds(op string, x, y int) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[%s] (%d,%d) outside %dx%d grid", op, x, y, g.width, g.height)
	}
	return nil
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(x, y int) (bool, error) {
	if err := g.checkBounds("IsAlive", x, y); err != nil {
		return false, err
	}
	return g.cells[y][x], nil
}

// ToggleCell flips a cell between alive and dead
func (g *Grid) ToggleCell(x, y int) error {
	if err := g.checkBounds("ToggleCell", x, y); err != nil {
		return err
	}
	g.cells[y][x] = !g.cells[y][x]
	return nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if err := g.checkBounds("Set", x, y); err != nil {
		return err
	}
	g.cells[y][x] = alive
	return nil
}

// CountNeighbors returns the number of live neighbors of an interior cell.
// Border cells have no full neighborhood and report ErrOutOfRange.
func (g *Grid) CountNeighbors(x, y int) (int, error) {
	if err := g.checkBounds("CountNeighbors", x, y); err != nil {
		return 0, err
	}
	if g.isBorder(x, y) {
		return 0, errors.Wrapf(ErrOutOfRange, "[CountNeighbors] (%d,%d) is on the border", x, y)
	}
	return g.countNeighbors(x, y), nil
}

// countNeighbors assumes (x, y) is an interior cell
func (g *Grid) countNeighbors(x, y int) int {
	count := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation.
//
// Every decision reads the current buffer only; the result is built in the
// scratch buffer and swapped in once complete.
func (g *Grid) Step() {
	for y := range g.height {
		for x := range g.width {
			if g.isBorder(x, y) {
				g.next[y][x] = g.cells[y][x]
				continue
			}
			g.next[y][x] = rules.ApplyConwayRules(g.countNeighbors(x, y), g.cells[y][x])
		}
	}

	g.cells, g.next = g.next, g.cells
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Snapshot returns a copy of the current generation, indexed [y][x]
func (g *Grid) Snapshot() [][]bool {
	out := newCells(g.width, g.height)
	for y := range g.height {
		copy(out[y], g.cells[y])
	}
	return out
}
