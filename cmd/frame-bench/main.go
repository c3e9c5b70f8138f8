// Command frame-bench drives a world headless against an in-memory surface
// and reports frame timings, per-system timings and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/termtris/internal/game"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/internal/surface/memory"
	"github.com/plus3/termtris/tetromino"
)

// script is replayed in order, one key every -input-every frames.
var script = []input.Key{
	input.KeyRight, input.KeyRight, input.KeyR, input.KeyLeft,
	input.KeyE, input.KeyDown, input.KeyTab, input.KeyUp,
}

func main() {
	duration := flag.Duration("duration", 5*time.Second, "The total duration the benchmark should run for.")
	piece := flag.String("piece", "T", "Starting piece.")
	fallSpeed := flag.Float64("fall-speed", 20, "Blocks fallen per second.")
	inputEvery := flag.Int("input-every", 4, "Frames between scripted key presses; 0 disables input.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.FallSpeed = *fallSpeed
	kind, err := tetromino.ParseKind(*piece)
	if err != nil {
		log.Fatalf("Invalid -piece: %v", err)
	}
	cfg.Piece = kind
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Starting frame benchmark...")
	world := game.New(cfg)
	surface := memory.New()
	world.Attach(surface)

	report := &Report{
		Duration:       *duration,
		Piece:          kind,
		Width:          cfg.Width,
		Height:         cfg.Height,
		InputEvery:     *inputEvery,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	run(ctx, world, surface, cfg.FrameDuration().Seconds(), *inputEvery, report)

	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Frame Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run steps the world with a fixed dt until ctx is done or the world quits,
// filling the timing fields of report.
func run(ctx context.Context, world *game.World, surface *memory.Surface, dt float64, inputEvery int, report *Report) {
	startTime := time.Now()
	next := 0

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if inputEvery > 0 && world.Frames()%inputEvery == 0 {
			surface.Feed(input.Press(script[next%len(script)]))
			next++
		}

		frameStart := time.Now()
		surface.Begin()
		running := world.Step(dt, surface.Poll())
		if err := surface.End(); err != nil {
			log.Printf("Frame %d failed: %v", world.Frames(), err)
			break
		}
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))

		twoxels, octads := surface.Count()
		report.Twoxels += int64(twoxels)
		report.Octads += int64(octads)
		if !running {
			break
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = int64(world.Frames())
	report.KeyPresses = next
	report.FrameTime.Finalize()
	report.Scheduler = world.Scheduler.GetStats()
}
