package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	gridPosEdge  = "░░"

	macosClearCmd = "clear"
)

// CellReader is the read side of the engine that renderers depend on
type CellReader interface {
	GetWidth() int
	GetHeight() int
	IsAlive(x, y int) (bool, error)
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out io.Writer

	// ShowBorder marks dead cells on the frozen outer ring so the border is visible
	ShowBorder bool
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Display renders the grid to the terminal, one row per line with y=0 at the top
func (r *TerminalRenderer) Display(g CellReader) error {
	w := bufio.NewWriter(r.out)
	width, height := g.GetWidth(), g.GetHeight()
	for y := range height {
		for x := range width {
			alive, err := g.IsAlive(x, y)
			if err != nil {
				return errors.Wrap(err, "[Display] failed to read cell")
			}
			switch {
			case alive:
				fmt.Fprint(w, gridPosBlock)
			case r.ShowBorder && (x == 0 || y == 0 || x == width-1 || y == height-1):
				fmt.Fprint(w, gridPosEdge)
			default:
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
