// Package transform holds the closed set of per-pixel color transforms.
//
// Every transform sees one pixel as (red, green, blue), reads nothing but
// that pixel and keeps no state, so pixels may be processed in any order.
// Floating point results are truncated to 8 bits, never rounded.
package transform

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Func maps one pixel to its new color.
type Func func(r, g, b uint8) (uint8, uint8, uint8)

type Kind int

const (
	InvertRGB Kind = iota
	InvertHue
	InvertOklab
	FlipOklab
	FastInvertOklab
	FastFlipOklab
	numKinds
)

var kinds = [numKinds]struct {
	name   string
	suffix string
	fn     Func
}{
	InvertRGB:       {"invert-rgb", "RGBInverted", ChannelInvert},
	InvertHue:       {"invert-hue", "HSLHueInverted", HueInvertHSL},
	InvertOklab:     {"invert-oklab", "OklabHueInverted", HueInvertOklab},
	FlipOklab:       {"flip-oklab", "OklabABFlipped", OklabAxisFlip},
	FastInvertOklab: {"invert-oklab-fast", "OklabHueInvertedFast", FastHueInvertOklab},
	FastFlipOklab:   {"flip-oklab-fast", "OklabABFlippedFast", FastOklabAxisFlip},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := range numKinds {
		m[kinds[k].name] = k
	}
	return m
}()

// Parse returns the transform with the given symbolic name.
func Parse(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown transform %q", name)
	}
	return k, nil
}

// Names lists the symbolic names of all transforms, sorted.
func Names() []string {
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Func returns the pixel function of k, or nil for an invalid Kind.
func (k Kind) Func() Func {
	if !k.valid() {
		return nil
	}
	return kinds[k].fn
}

// Suffix is appended to the source file name to name the output by default.
func (k Kind) Suffix() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].suffix
}

// UnmarshalText lets a Kind be read from flags and config files.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid transform %d", int(k))
	}
	return []byte(kinds[k].name), nil
}
