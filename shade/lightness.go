package shade

import "math"

// Lightness factors are quantised to 8.8 fixed point and clamped to this
// range, so the brightest factor is just under 2x.
const (
	lightnessOne = 256
	lightnessMax = 511
)

// ScaleLightness multiplies each RGB channel by factor. The factor is
// rounded to the nearest 1/256 and clamped to [0, 511/256]; results clamp at
// 255 and alpha is kept. A NaN factor scales to black.
func ScaleLightness(c Color, factor float32) Color {
	q := quantize(factor)
	return Color{scale(c.R, q), scale(c.G, q), scale(c.B, q), c.A}
}

func quantize(factor float32) uint32 {
	f := math.Round(float64(factor) * lightnessOne)
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= lightnessMax:
		return lightnessMax
	}
	return uint32(f)
}

func scale(ch uint8, q uint32) uint8 {
	return uint8(min(uint32(ch)*q>>8, 255))
}
