package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/termtris/ecs"
	"github.com/plus3/termtris/tetromino"
)

// Report is the data rendered by Generate.
type Report struct {
	// Configuration
	Duration   time.Duration
	Piece      tetromino.Kind
	Width      int16
	Height     int16
	InputEvery int

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	FrameTime      Stats
	KeyPresses     int
	Twoxels        int64
	Octads         int64
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarizes duration samples.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

// Finalize computes Min, Max, Avg and P99 from Samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// PerFrame divides a total by the number of frames rendered.
func (r *Report) PerFrame(total int64) float64 {
	if r.TotalFrames == 0 {
		return 0
	}
	return float64(total) / float64(r.TotalFrames)
}

// Generate writes the report to w as markdown.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Frame Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Piece:** {{.Piece}}
- **Field:** {{.Width}}x{{.Height}}
- **Input Every:** {{.InputEvery}} frames

## Frame Results
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Key Presses:** {{.KeyPresses}}
- **Twoxels / Frame:** {{printf "%.1f" (.PerFrame .Twoxels)}}
- **Octads / Frame:** {{printf "%.1f" (.PerFrame .Octads)}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
  - **P99:** {{.FrameTime.P99}}

## Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
