// based on:
// https://bottosson.github.io/posts/oklab/

// Package okcolor converts between 8-bit sRGB, linear sRGB and the Oklab
// perceptual color space.
package okcolor

import "math"

type Lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

// FromSRGB8Lab is FromSRGB8(r, g, b).Lab().
func FromSRGB8Lab(r, g, b uint8) Lab {
	return FromSRGB8(r, g, b).Lab()
}

// Lab projects lc to cone responses, compresses them with a cube root and
// projects the result to Oklab.
func (lc LinearRGB) Lab() Lab {
	var l, m, s float64
	l = math.Cbrt(0.4122214708*lc.R + 0.5363325363*lc.G + 0.0514459929*lc.B)
	m = math.Cbrt(0.2119034982*lc.R + 0.6806995451*lc.G + 0.1073969566*lc.B)
	s = math.Cbrt(0.0883024619*lc.R + 0.2817188376*lc.G + 0.6299787005*lc.B)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// Linear is the inverse of LinearRGB.Lab. The result is not clipped.
func (lc Lab) Linear() LinearRGB {
	var l, m, s float64
	l = lc.L + 0.3963377774*lc.A + 0.2158037573*lc.B
	l = l * l * l
	m = lc.L - 0.1055613458*lc.A - 0.0638541728*lc.B
	m = m * m * m
	s = lc.L - 0.0894841775*lc.A - 1.2914855480*lc.B
	s = s * s * s

	return LinearRGB{
		R: +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// SRGB8 converts lc back to 8-bit sRGB, clamping out of gamut channels.
func (lc Lab) SRGB8() (uint8, uint8, uint8) {
	return lc.Linear().SRGB8()
}

// Swap exchanges the a and b axes.
func (lc Lab) Swap() Lab {
	lc.A, lc.B = lc.B, lc.A
	return lc
}

func (lc Lab) LCh() LCh {
	return LCh{
		L: lc.L,
		C: math.Sqrt((lc.A * lc.A) + (lc.B * lc.B)),
		H: math.Atan2(lc.B, lc.A),
	}
}

type LCh struct {
	L float64 // perceived lightness
	C float64 // chroma
	H float64 // hue, in radians
}

func (lc LCh) Lab() Lab {
	return Lab{
		L: lc.L,
		A: lc.C * math.Cos(lc.H),
		B: lc.C * math.Sin(lc.H),
	}
}

// Opposite turns the hue by half a circle. Hues up to and including π are
// moved down by π, larger ones up, so Atan2 output lands in [-2π, 0].
func (lc LCh) Opposite() LCh {
	lc.H = OppositeHue(lc.H)
	return lc
}

func OppositeHue(h float64) float64 {
	if h <= math.Pi {
		return h - math.Pi
	}
	return h + math.Pi
}
