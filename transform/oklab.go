package transform

import "github.com/m3z0id/chroma/okcolor"

// HueInvertOklab turns the Oklab hue of the pixel by π and keeps its
// lightness and chroma. Colors pushed out of the sRGB gamut are clamped per
// channel.
func HueInvertOklab(r, g, b uint8) (uint8, uint8, uint8) {
	return okcolor.FromSRGB8Lab(r, g, b).LCh().Opposite().Lab().SRGB8()
}

// OklabAxisFlip exchanges the a and b axes of the pixel in Oklab.
func OklabAxisFlip(r, g, b uint8) (uint8, uint8, uint8) {
	return okcolor.FromSRGB8Lab(r, g, b).Swap().SRGB8()
}

// FastHueInvertOklab is HueInvertOklab computed in single precision with
// approximated pow, cbrt and atan2. Results may differ from HueInvertOklab by
// several levels near the gamut boundary.
func FastHueInvertOklab(r, g, b uint8) (uint8, uint8, uint8) {
	return okcolor.FastFromSRGB8Lab(r, g, b).Opposite().SRGB8()
}

// FastOklabAxisFlip is OklabAxisFlip computed like FastHueInvertOklab.
func FastOklabAxisFlip(r, g, b uint8) (uint8, uint8, uint8) {
	return okcolor.FastFromSRGB8Lab(r, g, b).Swap().SRGB8()
}
