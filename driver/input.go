package driver

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadCommand is returned for input that does not parse into a Command
var ErrBadCommand = errors.New("bad command")

// Kind identifies a Command
type Kind int

const (
	CmdToggle Kind = iota
	CmdSet
	CmdPause // flips Running/Paused
	CmdStep
	CmdQuit
)

// Command is a request from an input collaborator
type Command struct {
	Kind  Kind
	X, Y  int
	Alive bool
}

// ParseCommand turns one line of user input into a Command.
//
//	t|toggle X Y    flip a cell
//	set X Y 0|1     set a cell
//	p|space         toggle Running/Paused
//	s|step          advance one generation
//	q|quit          stop
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, errors.Wrap(ErrBadCommand, "[ParseCommand] empty input")
	}

	switch fields[0] {
	case "t", "toggle":
		x, y, err := parseXY(fields)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdToggle, X: x, Y: y}, nil
	case "set":
		if len(fields) != 4 {
			return Command{}, errors.Wrapf(ErrBadCommand, "[ParseCommand] usage: set X Y 0|1, got %q", line)
		}
		x, y, err := parseXY(fields[:3])
		if err != nil {
			return Command{}, err
		}
		switch fields[3] {
		case "0":
			return Command{Kind: CmdSet, X: x, Y: y}, nil
		case "1":
			return Command{Kind: CmdSet, X: x, Y: y, Alive: true}, nil
		}
		return Command{}, errors.Wrapf(ErrBadCommand, "[ParseCommand] cell state must be 0 or 1, got %q", fields[3])
	case "p", "pause", "space":
		return Command{Kind: CmdPause}, nil
	case "s", "step":
		return Command{Kind: CmdStep}, nil
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	}
	return Command{}, errors.Wrapf(ErrBadCommand, "[ParseCommand] unknown command %q", fields[0])
}

func parseXY(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, errors.Wrapf(ErrBadCommand, "[ParseCommand] usage: %s X Y", fields[0])
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(ErrBadCommand, "[ParseCommand] bad x %q", fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Wrapf(ErrBadCommand, "[ParseCommand] bad y %q", fields[2])
	}
	return x, y, nil
}

// PickCell maps a point in grid space (one unit per cell) to cell indices.
// ok is false when the point falls outside a width x height grid.
func PickCell(px, py float64, width, height int) (x, y int, ok bool) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return 0, 0, false
	}
	fx, fy := math.Floor(px), math.Floor(py)
	if fx < 0 || fy < 0 || fx >= float64(width) || fy >= float64(height) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// ReadCommands parses lines from r and submits them to d until r is exhausted
// or ctx is canceled. Lines that fail to parse or address cells outside the
// grid are passed to report and skipped.
func ReadCommands(ctx context.Context, r io.Reader, d *Driver, report func(error)) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	// the scanner blocks in Read and cannot be interrupted, so it runs on its own
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.Wrap(err, "[ReadCommands] failed to read input")
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			cmd, err := ParseCommand(line)
			if err != nil {
				report(err)
				continue
			}
			if (cmd.Kind == CmdToggle || cmd.Kind == CmdSet) && !d.Contains(cmd.X, cmd.Y) {
				report(errors.Wrapf(ErrBadCommand, "[ReadCommands] (%d,%d) is outside the %dx%d grid",
					cmd.X, cmd.Y, d.grid.GetWidth(), d.grid.GetHeight()))
				continue
			}
			if err = d.Submit(ctx, cmd); err != nil {
				if ctx.Err() != nil || errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
		}
	}
}
