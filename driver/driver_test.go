package driver

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

func testConfig(running bool, maxGenerations int) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickInterval = time.Millisecond
	cfg.StartRunning = running
	cfg.MaxGenerations = maxGenerations
	return cfg
}

func TestStateMachine(t *testing.T) {
	d := New(model.NewGrid(6, 6), testConfig(false, 0))
	if d.State() != Paused || d.Running() {
		t.Fatalf("initial state = %v, want Paused", d.State())
	}
	d.Toggle()
	if d.State() != Running {
		t.Fatalf("after Toggle state = %v, want Running", d.State())
	}
	d.Toggle()
	if d.State() != Paused {
		t.Fatalf("after second Toggle state = %v, want Paused", d.State())
	}
	d.Resume()
	d.Pause()
	if d.Running() {
		t.Fatal("Pause did not stop the driver")
	}

	if New(model.NewGrid(6, 6), testConfig(true, 0)).State() != Running {
		t.Fatal("StartRunning should start in Running")
	}
}

func TestTickOnlyStepsWhileRunning(t *testing.T) {
	grid := model.NewGrid(6, 6)
	var frames []Frame
	d := New(grid, testConfig(false, 0), WithFrameFunc(func(f Frame) { frames = append(frames, f) }))

	if d.Tick() {
		t.Fatal("Tick stepped while paused")
	}
	if grid.Generation() != 0 || len(frames) != 0 {
		t.Fatalf("paused tick changed generation=%d frames=%d", grid.Generation(), len(frames))
	}

	d.Resume()
	if !d.Tick() || !d.Tick() {
		t.Fatal("Tick did not step while running")
	}
	if grid.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", grid.Generation())
	}
	if len(frames) != 2 || !frames[1].Stepped || frames[1].Generation != 2 || frames[1].State != Running {
		t.Fatalf("unexpected frames: %+v", frames)
	}
}

func TestApplyCommands(t *testing.T) {
	grid := model.NewGrid(6, 6)
	d := New(grid, testConfig(false, 0))

	if err := d.Apply(Command{Kind: CmdToggle, X: 1, Y: 1}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if v, _ := grid.IsAlive(1, 1); !v {
		t.Fatal("toggle did not flip (1,1)")
	}
	if err := d.Apply(Command{Kind: CmdSet, X: 1, Y: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := grid.IsAlive(1, 1); v {
		t.Fatal("set 0 left (1,1) alive")
	}
	if err := d.Apply(Command{Kind: CmdStep}); err != nil || grid.Generation() != 1 {
		t.Fatalf("step: err=%v generation=%d", err, grid.Generation())
	}
	if d.Running() {
		t.Fatal("single step should not resume the driver")
	}
	if err := d.Apply(Command{Kind: CmdPause}); err != nil || !d.Running() {
		t.Fatalf("pause toggle: err=%v running=%v", err, d.Running())
	}
	if err := d.Apply(Command{Kind: CmdToggle, X: 6, Y: 0}); !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("out of range toggle error = %v, want ErrOutOfRange", err)
	}
	if err := d.Apply(Command{Kind: CmdQuit}); !errors.Is(err, ErrQuit) {
		t.Fatalf("quit error = %v, want ErrQuit", err)
	}
	if err := d.Apply(Command{Kind: Kind(99)}); !errors.Is(err, ErrBadCommand) {
		t.Fatalf("unknown kind error = %v, want ErrBadCommand", err)
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	grid := model.NewGrid(6, 6)
	d := New(grid, testConfig(true, 5))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.Run(ctx); !errors.Is(err, ErrGenerationLimit) {
		t.Fatalf("Run error = %v, want ErrGenerationLimit", err)
	}
	if grid.Generation() != 5 {
		t.Fatalf("Generation() = %d, want 5", grid.Generation())
	}
	if err := d.Submit(ctx, Command{Kind: CmdStep}); !errors.Is(err, ErrStopped) {
		t.Fatalf("Submit after Run error = %v, want ErrStopped", err)
	}
}

func TestRunPausedDoesNotStep(t *testing.T) {
	grid := model.NewGrid(6, 6)
	frames := 0
	d := New(grid, testConfig(false, 0), WithFrameFunc(func(Frame) { frames++ }))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run error = %v, want nil on cancel", err)
	}
	if grid.Generation() != 0 {
		t.Fatalf("paused driver stepped to generation %d", grid.Generation())
	}
	if frames != 1 {
		t.Fatalf("frames = %d, want only the initial frame", frames)
	}
}

func TestRunAppliesSubmittedCommands(t *testing.T) {
	grid := model.NewGrid(6, 6)
	var reported []error
	d := New(grid, testConfig(false, 0), WithErrorFunc(func(err error) { reported = append(reported, err) }))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := make(chan error, 1)
	go func() { result <- d.Run(ctx) }()

	for _, cmd := range []Command{
		{Kind: CmdToggle, X: 0, Y: 0},
		{Kind: CmdToggle, X: -1, Y: 0},
		{Kind: CmdStep},
		{Kind: CmdQuit},
	} {
		if err := d.Submit(ctx, cmd); err != nil {
			t.Fatalf("Submit(%+v): %v", cmd, err)
		}
	}

	if err := <-result; !errors.Is(err, ErrQuit) {
		t.Fatalf("Run error = %v, want ErrQuit", err)
	}
	if v, _ := grid.IsAlive(0, 0); !v {
		t.Fatal("submitted toggle was not applied")
	}
	if grid.Generation() != 1 {
		t.Fatalf("Generation() = %d, want 1", grid.Generation())
	}
	if len(reported) != 1 || !errors.Is(reported[0], model.ErrOutOfRange) {
		t.Fatalf("reported errors = %v, want one ErrOutOfRange", reported)
	}
}
