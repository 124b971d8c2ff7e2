package okcolor

import "math"

// Lab32 is a single precision Oklab color produced by the fast conversions.
// Results differ visibly from Lab near the edges of the sRGB gamut.
type Lab32 struct {
	L, A, B float32
}

// FastFromSRGB8Lab approximates FromSRGB8Lab in single precision with
// bit-level approximations of pow and cbrt.
func FastFromSRGB8Lab(r, g, b uint8) Lab32 {
	lr, lg, lb := fastToLinear(r), fastToLinear(g), fastToLinear(b)

	l := fastCbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	m := fastCbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	s := fastCbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	return Lab32{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// SRGB8 converts lc back to 8-bit sRGB, clamping and truncating.
func (lc Lab32) SRGB8() (uint8, uint8, uint8) {
	l := lc.L + 0.3963377774*lc.A + 0.2158037573*lc.B
	m := lc.L - 0.1055613458*lc.A - 0.0638541728*lc.B
	s := lc.L - 0.0894841775*lc.A - 1.2914855480*lc.B
	l, m, s = l*l*l, m*m*m, s*s*s

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return fastTo8(r), fastTo8(g), fastTo8(b)
}

func (lc Lab32) Swap() Lab32 {
	lc.A, lc.B = lc.B, lc.A
	return lc
}

// Opposite rotates the hue by π using FastAtan2, with the same branch as
// LCh.Opposite.
func (lc Lab32) Opposite() Lab32 {
	c := float32(math.Sqrt(float64(lc.A*lc.A + lc.B*lc.B)))
	h := FastAtan2(lc.B, lc.A)
	if h <= math.Pi {
		h -= math.Pi
	} else {
		h += math.Pi
	}
	sin, cos := math.Sincos(float64(h))
	lc.A = c * float32(cos)
	lc.B = c * float32(sin)
	return lc
}

func fastToLinear(c uint8) float32 {
	x := float32(c) / 255
	if x <= linearThreshold {
		return x / 12.92
	}
	return fastPow((x+0.055)/1.055, 2.4)
}

func fastTo8(x float32) uint8 {
	var v float32
	if x <= 0.0031308 {
		v = x * 12.92
	} else {
		v = fastPow(x, 1/2.4)*1.055 - 0.055
	}
	v *= 255
	if v < 0 || v != v {
		return 0
	} else if v > 255 {
		return 255
	}
	return uint8(v)
}

// fastLog2 splits x into exponent and mantissa and fits log2 on the
// mantissa with a quadratic. Absolute error is below 0.005.
func fastLog2(x float32) float32 {
	bits := math.Float32bits(x)
	e := float32(int32(bits>>23&0xff) - 127)
	m := math.Float32frombits(bits&0x007fffff | 0x3f800000) // [1, 2)
	return e + (-0.34484843*m+2.02466578)*m - 1.67487759
}

// fastExp2 builds 2^floor(p) in the exponent bits and scales it by a
// quadratic fit of 2^frac(p). Relative error is below 0.4%.
func fastExp2(p float32) float32 {
	if p < -126 {
		p = -126
	}
	ip := float32(math.Floor(float64(p)))
	f := p - ip
	scale := math.Float32frombits(uint32(int32(ip)+127) << 23)
	return scale * (1 + f*(0.6565+f*0.3435))
}

func fastPow(x, y float32) float32 {
	if x <= 0 {
		return 0
	}
	return fastExp2(y * fastLog2(x))
}

// fastCbrt divides the exponent by three in the integer domain and refines
// the guess with two Newton steps. Only defined for x >= 0.
func fastCbrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	y := math.Float32frombits(math.Float32bits(x)/3 + 0x2a5137a0)
	y = (2*y + x/(y*y)) / 3
	y = (2*y + x/(y*y)) / 3
	return y
}

// FastAtan2 approximates math.Atan2 with a degree 7 odd polynomial on the
// first octant. Maximum error is about 2e-4 radians.
func FastAtan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := abs32(x), abs32(y)
	a := min(ax, ay) / max(ax, ay)
	s := a * a
	r := ((-0.0464964749*s+0.15931422)*s-0.327622764)*s*a + a
	if ay > ax {
		r = math.Pi/2 - r
	}
	if x < 0 {
		r = math.Pi - r
	}
	if y < 0 {
		r = -r
	}
	return r
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
