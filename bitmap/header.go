// Package bitmap reads and validates 24-bit uncompressed BMP containers and
// addresses their pixel rows.
//
// Six info header shapes are recognized, each a byte-for-byte extension of
// the previous one:
//
//	core  12 bytes  BITMAPCOREHEADER
//	v1    40 bytes  BITMAPINFOHEADER
//	v2    52 bytes  + RGB bit masks
//	v3    56 bytes  + alpha bit mask
//	v4   108 bytes  + color space, endpoints, gamma
//	v5   124 bytes  + intent, ICC profile location
//
// Row order is never reinterpreted: row y lives at DataOffset + y*Stride
// whatever the sign of the height.
package bitmap

import "fmt"

// FileHeaderSize is the size of the BITMAPFILEHEADER structure.
const FileHeaderSize = 14

// Signature is "BM" read as a little-endian uint16.
const Signature uint16 = 0x4d42

type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeCore
	ShapeV1
	ShapeV2
	ShapeV3
	ShapeV4
	ShapeV5
)

var shapeSizes = [...]uint32{
	ShapeCore: 12,
	ShapeV1:   40,
	ShapeV2:   52,
	ShapeV3:   56,
	ShapeV4:   108,
	ShapeV5:   124,
}

var shapeNames = [...]string{
	ShapeUnknown: "unknown",
	ShapeCore:    "core",
	ShapeV1:      "v1",
	ShapeV2:      "v2",
	ShapeV3:      "v3",
	ShapeV4:      "v4",
	ShapeV5:      "v5",
}

// ShapeOf returns the shape whose size is exactly size, or ShapeUnknown.
func ShapeOf(size uint32) Shape {
	for s := ShapeCore; s <= ShapeV5; s++ {
		if shapeSizes[s] == size {
			return s
		}
	}
	return ShapeUnknown
}

// Size returns the byte size of the info header shape, 0 for ShapeUnknown.
func (s Shape) Size() uint32 {
	if s < ShapeCore || s > ShapeV5 {
		return 0
	}
	return shapeSizes[s]
}

func (s Shape) String() string {
	if s < ShapeUnknown || s > ShapeV5 {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// MinSize is the smallest buffer Decode accepts: a file header, a core
// info header and at least one pixel.
const MinSize = FileHeaderSize + 12 + 4

type FileHeader struct {
	Signature  uint16
	FileSize   uint32 // total size of the file in bytes
	Reserved   uint32 // must be 0
	DataOffset uint32 // offset of the first pixel row
}

// InfoHeader is the decoded DIB header. Shape tells which of the optional
// blocks are set: Masks from v2, ColorSpace from v4, Profile for v5.
type InfoHeader struct {
	Shape Shape
	Size  uint32 // declared size, as stored

	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   uint32
	YPelsPerMeter   uint32
	ColorsUsed      uint32
	ColorsImportant uint32

	Masks      *ChannelMasks
	ColorSpace *ColorSpace
	Profile    *Profile
}

// ChannelMasks holds the v2 RGB masks; Alpha is only stored from v3 on.
type ChannelMasks struct {
	Red, Green, Blue, Alpha uint32
}

// Endpoint is a CIEXYZ triple of 16.16 fixed-point coordinates.
type Endpoint struct {
	X, Y, Z Fixed16
}

type ColorSpace struct {
	Type                            uint32
	Red, Green, Blue                Endpoint
	GammaRed, GammaGreen, GammaBlue Fixed16
}

type Profile struct {
	Intent   uint32
	Data     uint32 // offset of the ICC profile from the start of the info header
	Size     uint32
	Reserved uint32 // must be 0
}

// Compression methods.
const (
	CompressionRGB     uint32 = 0
	CompressionRLE8    uint32 = 1
	CompressionRLE4    uint32 = 2
	CompressionBitmask uint32 = 3
)

// Color space types of the v4 header.
const (
	CalibratedRGB     uint32 = 0
	SRGB              uint32 = 0x73524742 // "sRGB"
	WindowsColorSpace uint32 = 0x57696e20 // "Win "
	ProfileLinked     uint32 = 0x4c494e4b // "LINK"
	ProfileEmbedded   uint32 = 0x4d424544 // "MBED"
)

// Rendering intents of the v5 header.
const (
	IntentBusiness        uint32 = 1 // saturation
	IntentGraphics        uint32 = 2 // relative colorimetric
	IntentImages          uint32 = 4 // perceptual
	IntentAbsColorimetric uint32 = 8
)
