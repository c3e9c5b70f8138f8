// Command termtris shows a falling, rotatable piece drawn with half-block
// twoxels inside a braille outline, in the terminal or in a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/termtris/ecs/debugui"
	"github.com/plus3/termtris/internal/game"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/internal/surface/memory"
	"github.com/plus3/termtris/internal/surface/term"
	"github.com/plus3/termtris/internal/surface/window"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

type options struct {
	backend string
	logPath string
	debug   bool
	frames  int
	scale   float64
	game    game.Config
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("termtris", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := game.DefaultConfig()
	opts := options{game: defaults}
	fs.StringVar(&opts.backend, "backend", "term", "Render backend: term, window or headless.")
	fs.IntVar(&opts.game.FPS, "fps", defaults.FPS, "Frames per second.")
	fs.Float64Var(&opts.game.FallSpeed, "fall-speed", defaults.FallSpeed, "Blocks fallen per second; 0 disables falling.")
	piece := fs.String("piece", defaults.Piece.String(), "Starting piece: one of I O T J L S Z.")
	hex := fs.String("color", "", "Piece color as #rrggbb; empty uses the piece palette.")
	fs.StringVar(&opts.logPath, "log", "", "Append logs to this file.")
	fs.BoolVar(&opts.debug, "debug", false, "Show the debug overlay (window backend).")
	fs.IntVar(&opts.frames, "frames", 0, "Stop after this many frames; 0 runs until quit (headless defaults to 120).")
	fs.Float64Var(&opts.scale, "scale", 12, "Window pixels per terminal column.")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	kind, err := tetromino.ParseKind(*piece)
	if err != nil {
		return opts, fmt.Errorf("-piece: %w", err)
	}
	opts.game.Piece = kind

	if *hex != "" {
		c, err := shade.ParseHex(*hex)
		if err != nil {
			return opts, fmt.Errorf("-color: %w", err)
		}
		opts.game.Color = c
	}

	switch opts.backend {
	case "term", "window":
	case "headless":
		if opts.frames == 0 {
			opts.frames = 120
		}
	default:
		return opts, fmt.Errorf("-backend: unknown backend %q", opts.backend)
	}
	if opts.frames < 0 {
		return opts, fmt.Errorf("-frames: %d is negative", opts.frames)
	}
	if err := opts.game.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f.Close, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "termtris:", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "termtris:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, logger)
	stop()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "termtris:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	world := game.New(opts.game)
	logger.Info("starting",
		"backend", opts.backend,
		"piece", opts.game.Piece,
		"fps", opts.game.FPS,
		"fall_speed", opts.game.FallSpeed)

	var err error
	switch opts.backend {
	case "term":
		err = runTerminal(ctx, world, opts, logger)
	case "window":
		err = runWindow(world, opts)
	case "headless":
		err = runHeadless(ctx, world, opts, os.Stdout)
	}

	stats := world.Scheduler.GetStats()
	for _, s := range stats.Systems {
		logger.Debug("system", "name", s.Name, "runs", s.ExecutionCount, "avg", s.AvgDuration, "max", s.MaxDuration)
	}
	logger.Info("stopped", "frames", world.Frames(), "err", err)
	return err
}

// step renders one frame onto s. It returns false once the world quits.
func step(world *game.World, s game.Presenter, dt float64) (bool, error) {
	s.Begin()
	running := world.Step(dt, s.Poll())
	if err := s.End(); err != nil {
		return false, fmt.Errorf("frame %d: %w", world.Frames(), err)
	}
	return running, nil
}

func runTerminal(ctx context.Context, world *game.World, opts options, logger *slog.Logger) error {
	s, err := term.New()
	if err != nil {
		return err
	}
	defer s.Close()

	err = world.Run(ctx, s, opts.frames)
	if ctx.Err() != nil {
		logger.Info("interrupted")
	}
	return err
}

func runHeadless(ctx context.Context, world *game.World, opts options, out io.Writer) error {
	s := memory.New()
	world.Attach(s)

	dt := opts.game.FrameDuration().Seconds()
	for world.Frames() < opts.frames && ctx.Err() == nil {
		running, err := step(world, s, dt)
		if err != nil {
			return err
		}
		if !running {
			break
		}
	}

	state, _ := world.Controlled()
	_, err := fmt.Fprintf(out, "frame %d: %v %v at (%d, %d)\n%s\n",
		world.Frames(), state.Kind, state.Rotation, state.Anchor.X, state.Anchor.Y, s.ASCII())
	return err
}

func runWindow(world *game.World, opts options) error {
	wopts := window.DefaultOptions()
	wopts.Cols = int(opts.game.Origin.X+opts.game.Width+opts.game.Origin.X) * 2
	wopts.Rows = int(opts.game.Origin.Y + opts.game.Height + opts.game.Origin.Y)
	wopts.Scale = float32(opts.scale)
	wopts.TPS = opts.game.FPS
	wopts.Debug = opts.debug

	s, err := window.New(wopts)
	if err != nil {
		return err
	}
	world.Attach(s)

	if opts.debug {
		debugui.RegisterComponents(world.Registry)
		debugui.Install(world.Storage, world.Scheduler,
			debugui.NewFrameStatsWindow(world.Storage, world.Scheduler, 120),
			&debugui.PieceInspector{
				Storage: world.Storage,
				Entity:  world.PieceEntity(),
				Piece: func() (debugui.PieceInfo, bool) {
					st, ok := world.Controlled()
					return debugui.PieceInfo{
						Kind:     st.Kind,
						Rotation: st.Rotation,
						Anchor:   st.Anchor,
						Color:    st.Color,
					}, ok
				},
			},
		)
	}

	frames := 0
	return s.Run(func(dt float64, events []input.Event) bool {
		frames++
		if opts.frames > 0 && frames > opts.frames {
			return false
		}
		return world.Step(dt, events)
	})
}
