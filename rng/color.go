package rng

import "github.com/lucasb-eyer/go-colorful"

// ColorHSV returns a random color with uniform hue, and saturation and
// value drawn uniformly from their given ranges.
func (e *Engine) ColorHSV(satMin, satMax, valMin, valMax float64) colorful.Color {
	h := e.fraction() * 360
	s := e.FloatRange(satMin, satMax)
	v := e.FloatRange(valMin, valMax)
	return colorful.Hsv(h, s, v)
}

// Greyscale returns a grey color with one uniform draw in [min, max)
// replicated across all three channels.
func (e *Engine) Greyscale(min, max float64) colorful.Color {
	v := e.FloatRange(min, max)
	return colorful.Color{R: v, G: v, B: v}
}
