package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/termtris/ecs"
)

// FrameStatsWindow shows frame times, per-system scheduler timings and the
// storage population.
type FrameStatsWindow struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	timer     frameTimer
	history   []float32
	index     int
}

// NewFrameStatsWindow keeps historyFrames frame times for the plot.
func NewFrameStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *FrameStatsWindow {
	return &FrameStatsWindow{
		storage:   storage,
		scheduler: scheduler,
		timer:     frameTimer{last: time.Now()},
		history:   make([]float32, max(historyFrames, 1)),
	}
}

// Record stores the time since the previous call in the frame history.
func (w *FrameStatsWindow) Record() {
	w.history[w.index] = float32(w.timer.delta().Seconds() * 1000)
	w.index = (w.index + 1) % len(w.history)
}

// AverageFrameTime is the mean of the recorded history in milliseconds.
func (w *FrameStatsWindow) AverageFrameTime() float32 {
	var sum float32
	for _, ft := range w.history {
		sum += ft
	}
	return sum / float32(len(w.history))
}

// Render records the frame time and draws the window.
func (w *FrameStatsWindow) Render() {
	w.Record()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Frame Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sched := w.scheduler.GetStats()
	avg := w.AverageFrameTime()
	imgui.Text(fmt.Sprintf("Frames: %d", sched.Frames))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &w.history[0], int32(len(w.history)))

	imgui.Separator()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, s := range sched.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(s.Name)
			imgui.TableNextColumn()
			imgui.Text(s.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(s.MaxDuration.String())
			imgui.TableNextColumn()
			imgui.Text(s.LastDuration.String())
		}
		imgui.EndTable()
	}

	stats := w.storage.CollectStats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Entities: %d in %d archetypes", stats.TotalEntityCount, stats.ArchetypeCount))
	if imgui.TreeNodeStr("Archetypes") {
		for _, arch := range stats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("0x%08X  %d entities, %d components", arch.ID, arch.EntityCount, len(arch.ComponentTypes)))
		}
		imgui.TreePop()
	}
	if imgui.TreeNodeStr(fmt.Sprintf("Singletons (%d)", stats.SingletonCount)) {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

type frameTimer struct {
	last time.Time
}

func (ft *frameTimer) delta() time.Duration {
	now := time.Now()
	d := now.Sub(ft.last)
	ft.last = now
	return d
}
