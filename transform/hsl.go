package transform

import "math"

// HueInvertHSL turns the HSL hue of the pixel by 180 degrees and keeps its
// saturation and lightness.
func HueInvertHSL(r, g, b uint8) (uint8, uint8, uint8) {
	h, s, l := toHSL(r, g, b)
	return fromHSL(math.Mod(h+180, 360), s, l)
}

// toHSL returns hue in [0, 360) and saturation and lightness in [0, 1].
// Grays have hue and saturation 0.
func toHSL(r, g, b uint8) (h, s, l float64) {
	xr := float64(r) / 255
	xg := float64(g) / 255
	xb := float64(b) / 255

	hi := max(xr, xg, xb)
	lo := min(xr, xg, xb)
	l = (hi + lo) / 2
	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	switch hi {
	case xr:
		h = math.Mod(60*((xg-xb)/d), 360)
		if h < 0 {
			h += 360
		}
	case xg:
		h = 60*((xb-xr)/d) + 120
	default:
		h = 60*((xr-xg)/d) + 240
	}

	if l < 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}
	return h, s, l
}

// fromHSL rebuilds the pixel from chroma and the intermediate value of the
// 60 degree sector h falls in.
func fromHSL(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var xr, xg, xb float64
	switch {
	case h < 60:
		xr, xg = c, x
	case h < 120:
		xr, xg = x, c
	case h < 180:
		xg, xb = c, x
	case h < 240:
		xg, xb = x, c
	case h < 300:
		xr, xb = x, c
	default:
		xr, xb = c, x
	}

	m := l - c/2
	return unit8(xr + m), unit8(xg + m), unit8(xb + m)
}

// unit8 scales x from [0, 1] to [0, 255] and truncates.
func unit8(x float64) uint8 {
	v := x * 255
	if v <= 0 || v != v {
		return 0
	} else if v >= 255 {
		return 255
	}
	return uint8(v)
}
