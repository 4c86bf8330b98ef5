package driver

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/utils"
)

var (
	// ErrQuit is returned by Run after a quit command
	ErrQuit = errors.New("quit requested")
	// ErrGenerationLimit is returned by Run once the configured generation limit is reached
	ErrGenerationLimit = errors.New("generation limit reached")
	// ErrStopped is returned by Submit once Run has returned
	ErrStopped = errors.New("driver stopped")
)

// Engine is the part of the grid the driver steps and edits
type Engine interface {
	GetWidth() int
	GetHeight() int
	IsAlive(x, y int) (bool, error)
	ToggleCell(x, y int) error
	Set(x, y int, alive bool) error
	Step()
	Generation() int
	CountLivingCells() int
}

// State is the tick loop state
type State int

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "Running"
	}
	return "Paused"
}

// Frame describes a change the host may want to render
type Frame struct {
	Grid       Engine
	State      State
	Generation int
	Stepped    bool
	Elapsed    time.Duration // time since the previous step, zero when not stepped
}

// Option configures a Driver
type Option func(*Driver)

// WithFrameFunc sets the callback invoked from the loop goroutine after every change
func WithFrameFunc(f func(Frame)) Option {
	return func(d *Driver) { d.onFrame = f }
}

// WithErrorFunc sets the callback for commands the engine rejected
func WithErrorFunc(f func(error)) Option {
	return func(d *Driver) { d.onError = f }
}

// Driver owns the Running/Paused state and is the single writer to its grid.
// Outside of Run, all methods must be called from one goroutine; while Run is
// active other goroutines interact only through Submit.
type Driver struct {
	grid           Engine
	interval       time.Duration
	maxGenerations int
	state          State
	lastStep       time.Time

	commands chan Command
	done     chan struct{}

	onFrame func(Frame)
	onError func(error)
}

// New creates a driver for grid using the tick settings from cfg
func New(grid Engine, cfg utils.Config, opts ...Option) *Driver {
	d := &Driver{
		grid:           grid,
		interval:       cfg.TickInterval,
		maxGenerations: cfg.MaxGenerations,
		commands:       make(chan Command, 16),
		done:           make(chan struct{}),
		onFrame:        func(Frame) {},
		onError:        func(error) {},
	}
	if d.interval <= 0 {
		d.interval = utils.DefaultConfig().TickInterval
	}
	if cfg.StartRunning {
		d.state = Running
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current loop state
func (d *Driver) State() State {
	return d.state
}

// Running reports whether ticks advance the grid
func (d *Driver) Running() bool {
	return d.state == Running
}

// Toggle switches between Running and Paused
func (d *Driver) Toggle() {
	if d.state == Running {
		d.Pause()
		return
	}
	d.Resume()
}

// Pause stops ticks from advancing the grid
func (d *Driver) Pause() {
	d.state = Paused
}

// Resume lets ticks advance the grid again
func (d *Driver) Resume() {
	d.state = Running
	d.lastStep = time.Time{}
}

// LimitReached reports whether the configured generation limit has been hit
func (d *Driver) LimitReached() bool {
	return d.maxGenerations > 0 && d.grid.Generation() >= d.maxGenerations
}

// Contains reports whether (x, y) addresses a cell of the driven grid
func (d *Driver) Contains(x, y int) bool {
	return x >= 0 && x < d.grid.GetWidth() && y >= 0 && y < d.grid.GetHeight()
}

// Tick advances the grid one generation when Running and reports whether it did
func (d *Driver) Tick() bool {
	if d.state != Running || d.LimitReached() {
		return false
	}

	now := time.Now()
	var elapsed time.Duration
	if !d.lastStep.IsZero() {
		elapsed = now.Sub(d.lastStep)
	}
	d.lastStep = now

	d.grid.Step()
	d.emit(true, elapsed)
	return true
}

// Step advances one generation regardless of state, for single-stepping while paused
func (d *Driver) Step() {
	if d.LimitReached() {
		return
	}
	d.grid.Step()
	d.emit(true, 0)
}

func (d *Driver) emit(stepped bool, elapsed time.Duration) {
	d.onFrame(Frame{
		Grid:       d.grid,
		State:      d.state,
		Generation: d.grid.Generation(),
		Stepped:    stepped,
		Elapsed:    elapsed,
	})
}

// Apply executes cmd immediately. It returns ErrQuit for a quit command and
// the engine's error for rejected edits.
func (d *Driver) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdToggle:
		if err := d.grid.ToggleCell(cmd.X, cmd.Y); err != nil {
			return err
		}
	case CmdSet:
		if err := d.grid.Set(cmd.X, cmd.Y, cmd.Alive); err != nil {
			return err
		}
	case CmdPause:
		d.Toggle()
	case CmdStep:
		d.Step()
		return nil
	case CmdQuit:
		return ErrQuit
	default:
		return errors.Wrapf(ErrBadCommand, "[Apply] unknown command kind %d", cmd.Kind)
	}
	d.emit(false, 0)
	return nil
}

// Submit queues cmd for the Run loop
func (d *Driver) Submit(ctx context.Context, cmd Command) error {
	select {
	case <-d.done:
		return ErrStopped
	default:
	}

	select {
	case d.commands <- cmd:
		return nil
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the grid until ctx is canceled, a quit command arrives, or the
// generation limit is reached. Steps only happen while Running; queued
// commands are applied between ticks.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.emit(false, 0)

	for {
		if d.LimitReached() {
			return ErrGenerationLimit
		}

		select {
		case <-ctx.Done():
			return nil
		case cmd := <-d.commands:
			if err := d.Apply(cmd); err != nil {
				if errors.Is(err, ErrQuit) {
					return err
				}
				d.onError(err)
			}
		case <-ticker.C:
			d.Tick()
		}
	}
}
