// Package shade derives the per-sub-cell colors of a block from one base
// color. Colors are plain values; every operation returns a new one.
package shade

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	White   = Color{255, 255, 255, 255}
	Black   = Color{0, 0, 0, 255}
	Magenta = Color{255, 0, 255, 255}
)

var _ color.Color = Color{}

// RGBA builds a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// RGBA implements color.Color, returning alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// FromColor converts any color.Color, un-premultiplying through
// color.NRGBAModel.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex accepts "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
// Six-digit forms are opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
