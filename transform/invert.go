package transform

// ChannelInvert complements every channel. Applying it twice is the identity.
func ChannelInvert(r, g, b uint8) (uint8, uint8, uint8) {
	return ^r, ^g, ^b
}
