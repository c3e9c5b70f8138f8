package shade

import "math"

// ShiftHue rotates c around the gray axis by degrees using the luminance
// preserving RGB mixing matrix of SVG's feColorMatrix hueRotate. It is a
// cheap approximation, not a perceptual hue shift. Channels are rounded and
// clamped to [0, 255]; alpha is kept. ShiftHue(c, 0) returns c.
func ShiftHue(c Color, degrees float32) Color {
	rad := float64(degrees) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	nr := (0.213+0.787*cos-0.213*sin)*r +
		(0.715-0.715*cos-0.715*sin)*g +
		(0.072-0.072*cos+0.928*sin)*b
	ng := (0.213-0.213*cos+0.143*sin)*r +
		(0.715+0.285*cos+0.140*sin)*g +
		(0.072-0.072*cos-0.283*sin)*b
	nb := (0.213-0.213*cos-0.787*sin)*r +
		(0.715-0.715*cos+0.715*sin)*g +
		(0.072+0.928*cos+0.072*sin)*b

	return Color{channel(nr), channel(ng), channel(nb), c.A}
}

func channel(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
