package okcolor

import "math"

// LinearRGB is a color in linear-light sRGB, each channel nominally in [0, 1].
type LinearRGB struct {
	R float64
	G float64
	B float64
}

// FromSRGB8 decodes 8-bit gamma-encoded sRGB channels to linear light.
func FromSRGB8(r, g, b uint8) LinearRGB {
	return LinearRGB{
		R: toLinear(float64(r) / 255),
		G: toLinear(float64(g) / 255),
		B: toLinear(float64(b) / 255),
	}
}

// SRGB8 gamma-encodes lc and scales it to 8 bits. Every channel is clamped to
// [0, 255] and truncated, never rounded.
func (lc LinearRGB) SRGB8() (uint8, uint8, uint8) {
	return to8(fromLinear(lc.R)), to8(fromLinear(lc.G)), to8(fromLinear(lc.B))
}

// InGamut reports whether every channel is within [0, 1].
func (lc LinearRGB) InGamut() bool {
	return (lc.R >= 0) && (lc.R <= 1) && (lc.G >= 0) && (lc.G <= 1) && (lc.B >= 0) && (lc.B <= 1)
}

// the linear segment ends at 0.0405 on the encoded side
const linearThreshold = 0.0405

func toLinear(x float64) float64 {
	if x <= linearThreshold {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return math.Pow(x, pow)*1.055 - 0.055
}

func to8(x float64) uint8 {
	return uint8(clamp(x*255, 0, 255))
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	} else if x > max {
		return max
	} else if x != x {
		return min
	}
	return x
}
