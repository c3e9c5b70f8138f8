// Package window renders in a desktop window through ebiten. A terminal cell
// becomes a Scale x 2*Scale pixel rectangle, so twoxels come out square.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/termtris/coords"
	debugui_ebiten "github.com/plus3/termtris/ecs/debugui/ebiten"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
)

// Options sizes the window in terminal cells.
type Options struct {
	Title      string
	Cols, Rows int
	Scale      float32
	TPS        int
	Background shade.Color
	// Debug enables the Dear ImGui overlay.
	Debug bool
}

// DefaultOptions is a 40x24 cell window at 12 pixels per column.
func DefaultOptions() Options {
	return Options{
		Title:      "termtris",
		Cols:       40,
		Rows:       24,
		Scale:      12,
		TPS:        60,
		Background: shade.Black,
	}
}

// StepFunc advances the program by one frame. Returning false closes the
// window.
type StepFunc func(dt float64, events []input.Event) bool

var keys = []struct {
	ebiten ebiten.Key
	key    input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyTab, input.KeyTab},
	{ebiten.KeyQ, input.KeyQ},
	{ebiten.KeyE, input.KeyE},
	{ebiten.KeyR, input.KeyR},
}

// Surface records plots during Update and replays them in Draw.
type Surface struct {
	opts  Options
	plots []plot
	imgui *debugui_ebiten.ImguiBackend
}

type plot struct {
	octad bool
	at    coords.Term
	color shade.Color
}

// New checks opts and returns a surface. The window opens in Run.
func New(opts Options) (*Surface, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 || opts.Scale <= 0 {
		return nil, fmt.Errorf("window %dx%d cells at scale %v: sizes must be positive", opts.Cols, opts.Rows, opts.Scale)
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	return &Surface{opts: opts}, nil
}

// PlotTwoxel records a twoxel for the next Draw.
func (s *Surface) PlotTwoxel(p coords.Term, c shade.Color) {
	s.plots = append(s.plots, plot{at: p, color: c})
}

// PlotOctad records an octad for the next Draw.
func (s *Surface) PlotOctad(p coords.Term, c shade.Color) {
	s.plots = append(s.plots, plot{octad: true, at: p, color: c})
}

// Size is the window size in pixels.
func (s *Surface) Size() (width, height int) {
	return int(float32(s.opts.Cols) * s.opts.Scale), int(float32(s.opts.Rows) * 2 * s.opts.Scale)
}

// Rect returns the pixel rectangle of a plot at p.
func (s *Surface) Rect(p coords.Term, octad bool) (x, y, w, h float32) {
	x, y = p.X*s.opts.Scale, p.Y*2*s.opts.Scale
	if !octad {
		return x, y, s.opts.Scale, s.opts.Scale
	}
	// Octads are drawn as dots, inset inside their half-scale square.
	side := s.opts.Scale / 2
	inset := side / 5
	return x + inset, y + inset, side - 2*inset, side - 2*inset
}

// Run opens the window and drives step at the configured tick rate until it
// returns false or the window is closed. With Debug set, step runs inside an
// ImGui frame so ImguiSystem can queue windows.
func (s *Surface) Run(step StepFunc) error {
	width, height := s.Size()
	if s.opts.Debug {
		s.imgui = debugui_ebiten.NewImguiBackend(s.opts.Title, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(s.opts.Title)
	}
	ebiten.SetTPS(s.opts.TPS)

	err := ebiten.RunGame(&game{surface: s, step: step})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	surface *Surface
	step    StepFunc
	events  []input.Event
}

func (g *game) Update() error {
	g.events = g.events[:0]
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			g.events = append(g.events, input.Press(k.key))
		}
		if inpututil.IsKeyJustReleased(k.ebiten) {
			g.events = append(g.events, input.Release(k.key))
		}
	}

	s := g.surface
	s.plots = s.plots[:0]
	dt := 1 / float64(ebiten.TPS())

	running := true
	if s.imgui != nil {
		s.imgui.Frame(func() { running = g.step(dt, g.events) })
	} else {
		running = g.step(dt, g.events)
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	s := g.surface
	screen.Fill(s.opts.Background)
	for _, p := range s.plots {
		x, y, w, h := s.Rect(p.at, p.octad)
		vector.DrawFilledRect(screen, x, y, w, h, p.color, false)
	}
	if s.imgui != nil {
		s.imgui.Overlay(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.imgui != nil {
		g.surface.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
