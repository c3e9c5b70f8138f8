package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

// Config describes a world. The zero Color selects the palette color of the
// piece kind.
type Config struct {
	FPS       int
	FallSpeed float64
	Piece     tetromino.Kind
	Color     shade.Color
	Border    shade.Color
	Origin    coords.Block
	Width     int16
	Height    int16
	Start     coords.Block
}

// DefaultConfig is a 10x20 field with a T piece falling two blocks a second.
func DefaultConfig() Config {
	return Config{
		FPS:       60,
		FallSpeed: 2,
		Piece:     tetromino.T,
		Border:    shade.White,
		Origin:    coords.Block{X: 8, Y: 1},
		Width:     10,
		Height:    20,
		Start:     coords.Block{X: 3, Y: 0},
	}
}

const (
	minFieldSide = tetromino.Side
	maxFieldSide = 256
	maxFPS       = 1000
)

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.FPS <= 0 || c.FPS > maxFPS {
		errs = append(errs, fmt.Errorf("fps %d out of range 1..%d", c.FPS, maxFPS))
	}
	if math.IsNaN(c.FallSpeed) || math.IsInf(c.FallSpeed, 0) || c.FallSpeed < 0 {
		errs = append(errs, fmt.Errorf("fall speed %v must be a finite, non-negative rate", c.FallSpeed))
	}
	if !c.Piece.Valid() {
		errs = append(errs, fmt.Errorf("unknown piece %v", c.Piece))
	}
	if c.Width < minFieldSide || c.Width > maxFieldSide || c.Height < minFieldSide || c.Height > maxFieldSide {
		errs = append(errs, fmt.Errorf("field %dx%d out of range %d..%d", c.Width, c.Height, minFieldSide, maxFieldSide))
	} else if c.Start.X < 0 || c.Start.Y < 0 || c.Start.X >= c.Width || c.Start.Y >= c.Height {
		errs = append(errs, fmt.Errorf("start %v outside the %dx%d field", c.Start, c.Width, c.Height))
	}
	return errors.Join(errs...)
}

// FrameDuration is the frame period for FPS.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
