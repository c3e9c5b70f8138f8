package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/termtris/internal/game"
	"github.com/plus3/termtris/internal/surface/memory"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2, 6}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(6), s.Max)
	assert.Equal(t, time.Duration(3), s.Avg)
	assert.Equal(t, time.Duration(3), s.P99)
	assert.Equal(t, []time.Duration{3, 1, 2, 6}, s.Samples)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Max)
}

func TestRunAndGenerate(t *testing.T) {
	world := game.New(game.DefaultConfig())
	surface := memory.New()
	world.Attach(surface)

	report := &Report{Duration: 50 * time.Millisecond, InputEvery: 2}
	ctx, cancel := context.WithTimeout(context.Background(), report.Duration)
	defer cancel()
	run(ctx, world, surface, 1.0/60, 2, report)

	require.Positive(t, report.TotalFrames)
	assert.Len(t, report.FrameTime.Samples, int(report.TotalFrames))
	assert.Equal(t, 16.0, report.PerFrame(report.Twoxels))
	assert.Equal(t, 244.0, report.PerFrame(report.Octads))
	require.Len(t, report.Scheduler.Systems, 4)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "# Frame Benchmark Report")
	for _, s := range report.Scheduler.Systems {
		assert.Contains(t, out.String(), "| "+s.Name+" | ")
	}
	assert.NotContains(t, out.String(), "GC Pause")
}
