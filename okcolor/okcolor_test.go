package okcolor

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestFromSRGB8Endpoints(t *testing.T) {
	if lc := FromSRGB8(0, 0, 0); lc != (LinearRGB{}) {
		t.Errorf("black = %+v", lc)
	}
	if lc := FromSRGB8(255, 255, 255); lc != (LinearRGB{1, 1, 1}) {
		t.Errorf("white = %+v", lc)
	}
	// below the threshold the curve is linear
	if lc := FromSRGB8(10, 0, 0); !near(lc.R, 10.0/255/12.92, 1e-15) {
		t.Errorf("FromSRGB8(10).R = %v", lc.R)
	}
}

func TestWhiteIsNeutral(t *testing.T) {
	lab := FromSRGB8Lab(255, 255, 255)
	if !near(lab.L, 1, 1e-6) || !near(lab.A, 0, 1e-6) || !near(lab.B, 0, 1e-6) {
		t.Errorf("white = %+v", lab)
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {100, 150, 200}, {13, 7, 250}} {
		lc := FromSRGB8(c[0], c[1], c[2])
		back := lc.Lab().Linear()
		if !near(lc.R, back.R, 1e-6) || !near(lc.G, back.G, 1e-6) || !near(lc.B, back.B, 1e-6) {
			t.Errorf("%v: %+v -> %+v", c, lc, back)
		}
	}
}

func TestSRGB8Clamps(t *testing.T) {
	r, g, b := LinearRGB{R: -0.5, G: 2, B: 0.5}.SRGB8()
	if r != 0 || g != 255 || b != 187 {
		t.Errorf("SRGB8 = (%d, %d, %d), want (0, 255, 187)", r, g, b)
	}
	if r, _, _ := (LinearRGB{R: math.NaN()}).SRGB8(); r != 0 {
		t.Errorf("NaN channel = %d, want 0", r)
	}
	if !(LinearRGB{0, 0.5, 1}).InGamut() || (LinearRGB{0, 1.01, 1}).InGamut() {
		t.Error("InGamut is wrong")
	}
}

func TestSwap(t *testing.T) {
	lab := Lab{L: 0.5, A: 0.1, B: -0.2}
	if got, want := lab.Swap(), (Lab{L: 0.5, A: -0.2, B: 0.1}); got != want {
		t.Errorf("Swap = %+v, want %+v", got, want)
	}
	if diag := (Lab{L: 0.7, A: 0.05, B: 0.05}); diag.Swap() != diag {
		t.Errorf("Swap changed a color with a == b")
	}
	if got := lab.Swap().Swap(); got != lab {
		t.Errorf("double Swap = %+v", got)
	}
}

func TestOppositeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{math.Pi, 0},
		{0, -math.Pi},
		{-math.Pi / 2, -3 * math.Pi / 2},
		{-math.Pi, -2 * math.Pi},
		{4, 4 + math.Pi},
	}
	for _, tt := range tests {
		if got := OppositeHue(tt.in); !near(got, tt.want, 1e-12) {
			t.Errorf("OppositeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLChRoundTrip(t *testing.T) {
	lab := Lab{L: 0.6, A: 0.1, B: -0.05}
	lch := lab.LCh()
	if !near(lch.C, math.Hypot(0.1, 0.05), 1e-12) {
		t.Errorf("chroma = %v", lch.C)
	}
	back := lch.Lab()
	if !near(back.A, lab.A, 1e-12) || !near(back.B, lab.B, 1e-12) || back.L != lab.L {
		t.Errorf("%+v -> %+v", lab, back)
	}

	opp := lch.Opposite().Lab()
	if !near(opp.A, -lab.A, 1e-12) || !near(opp.B, -lab.B, 1e-12) {
		t.Errorf("Opposite = %+v", opp)
	}
}

func TestFastPrimitives(t *testing.T) {
	for i := 1; i < 3000; i++ {
		x := float32(i) / 997
		if got, want := float64(fastCbrt(x)), math.Cbrt(float64(x)); math.Abs(got/want-1) > 1e-5 {
			t.Fatalf("fastCbrt(%v) = %v, want %v", x, got, want)
		}
		if got, want := float64(fastLog2(x)), math.Log2(float64(x)); math.Abs(got-want) > 0.006 {
			t.Fatalf("fastLog2(%v) = %v, want %v", x, got, want)
		}
	}
	for i := -2000; i < 200; i++ {
		p := float32(i) / 100
		if got, want := float64(fastExp2(p)), math.Exp2(float64(p)); math.Abs(got/want-1) > 0.004 {
			t.Fatalf("fastExp2(%v) = %v, want %v", p, got, want)
		}
	}
	for i := 1; i <= 1000; i++ {
		x := float32(i) / 1000
		for _, y := range []float32{2.4, 1 / 2.4} {
			if got, want := float64(fastPow(x, y)), math.Pow(float64(x), float64(y)); math.Abs(got/want-1) > 0.02 {
				t.Fatalf("fastPow(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
	for i := -157; i <= 157; i++ {
		angle := float64(i) / 50
		y, x := math.Sincos(angle)
		if got, want := float64(FastAtan2(float32(y), float32(x))), math.Atan2(y, x); math.Abs(got-want) > 3e-4 {
			t.Fatalf("FastAtan2 at %v = %v, want %v", angle, got, want)
		}
	}
	if fastCbrt(0) != 0 || fastPow(0, 2.4) != 0 || FastAtan2(0, 0) != 0 {
		t.Error("zero inputs")
	}
}

func TestFastLabTracksLab(t *testing.T) {
	for _, c := range [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {128, 128, 128}, {100, 150, 200}, {255, 255, 255}, {10, 20, 30}} {
		want := FromSRGB8Lab(c[0], c[1], c[2])
		got := FastFromSRGB8Lab(c[0], c[1], c[2])
		if !near(float64(got.L), want.L, 0.01) || !near(float64(got.A), want.A, 0.01) || !near(float64(got.B), want.B, 0.01) {
			t.Errorf("%v: fast %+v, exact %+v", c, got, want)
		}
	}
}
