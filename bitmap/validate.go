package bitmap

import "fmt"

// Header invariants, in the order Check evaluates them.
const (
	invFileSize = 1 + iota
	invSize
	invReserved
	invDataOffset
	invCorePlanes
	invPixelFormat
	invProfileReserved
)

// Validate reports whether the headers describe a bitmap this package can
// transform: every invariant holds for a buffer of actualSize bytes.
func Validate(fh FileHeader, ih InfoHeader, actualSize int) bool {
	return Check(fh, ih, actualSize) == nil
}

// Check evaluates the same invariants as Validate and returns the first one
// that fails as a *HeaderError.
func Check(fh FileHeader, ih InfoHeader, actualSize int) error {
	if actualSize < 0 || int64(fh.FileSize) != int64(actualSize) {
		return &HeaderError{invFileSize, fmt.Sprintf("file size %d does not match buffer length %d", fh.FileSize, actualSize)}
	}
	shape := ShapeOf(ih.Size)
	if shape == ShapeUnknown {
		return &HeaderError{invSize, fmt.Sprintf("info header size %d", ih.Size)}
	}
	if fh.Reserved != 0 {
		return &HeaderError{invReserved, fmt.Sprintf("reserved field is %#x", fh.Reserved)}
	}
	if !validDataOffset(fh.DataOffset) || uint64(fh.DataOffset) != FileHeaderSize+uint64(ih.Size) {
		return &HeaderError{invDataOffset, fmt.Sprintf("data offset %d, want %d", fh.DataOffset, FileHeaderSize+ih.Size)}
	}

	switch shape {
	case ShapeCore:
		if ih.Planes != 1 {
			return &HeaderError{invCorePlanes, fmt.Sprintf("%d color planes", ih.Planes)}
		}
	case ShapeV1, ShapeV2, ShapeV3, ShapeV4:
		if ih.Planes != 1 || ih.BitCount != 24 || ih.Compression != CompressionRGB {
			return &HeaderError{invPixelFormat, fmt.Sprintf("%d planes, %d bits, compression %d",
				ih.Planes, ih.BitCount, ih.Compression)}
		}
	case ShapeV5:
		if ih.Profile == nil || ih.Profile.Reserved != 0 {
			return &HeaderError{invProfileReserved, "v5 reserved field is not zero"}
		}
	}
	return nil
}

func validDataOffset(off uint32) bool {
	for s := ShapeCore; s <= ShapeV5; s++ {
		if off == FileHeaderSize+s.Size() {
			return true
		}
	}
	return false
}
