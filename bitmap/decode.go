package bitmap

import (
	"encoding/binary"
	"fmt"
)

func u16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off:])
}

func u32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

// Decode reads the file header and the info header at the start of buf.
//
// An unknown declared size is not an error here: the returned InfoHeader has
// ShapeUnknown and only Size set, and Validate rejects it. A known shape whose
// fields run past the end of buf is reported as ErrTooSmall.
func Decode(buf []byte) (FileHeader, InfoHeader, error) {
	if len(buf) < MinSize {
		return FileHeader{}, InfoHeader{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTooSmall, len(buf), MinSize)
	}

	fh := FileHeader{
		Signature:  u16(buf, 0),
		FileSize:   u32(buf, 2),
		Reserved:   u32(buf, 6),
		DataOffset: u32(buf, 10),
	}

	size := u32(buf, FileHeaderSize)
	ih := InfoHeader{
		Shape: ShapeOf(size),
		Size:  size,
	}
	if ih.Shape == ShapeUnknown {
		return fh, ih, nil
	}
	if FileHeaderSize+int(size) > len(buf) {
		return fh, InfoHeader{}, fmt.Errorf("%w: %s info header needs %d bytes, have %d",
			ErrTooSmall, ih.Shape, FileHeaderSize+int(size), len(buf))
	}

	decodeInfo(buf[FileHeaderSize:FileHeaderSize+int(size)], &ih)
	return fh, ih, nil
}

// decodeInfo fills ih from b, which holds exactly ih.Size bytes.
func decodeInfo(b []byte, ih *InfoHeader) {
	if ih.Shape == ShapeCore {
		ih.Width = int32(u16(b, 4))
		ih.Height = int32(u16(b, 6))
		ih.Planes = u16(b, 8)
		ih.BitCount = u16(b, 10)
		return
	}

	ih.Width = int32(u32(b, 4))
	ih.Height = int32(u32(b, 8))
	ih.Planes = u16(b, 12)
	ih.BitCount = u16(b, 14)
	ih.Compression = u32(b, 16)
	ih.ImageSize = u32(b, 20)
	ih.XPelsPerMeter = u32(b, 24)
	ih.YPelsPerMeter = u32(b, 28)
	ih.ColorsUsed = u32(b, 32)
	ih.ColorsImportant = u32(b, 36)

	if ih.Shape >= ShapeV2 {
		ih.Masks = &ChannelMasks{
			Red:   u32(b, 40),
			Green: u32(b, 44),
			Blue:  u32(b, 48),
		}
	}
	if ih.Shape >= ShapeV3 {
		ih.Masks.Alpha = u32(b, 52)
	}
	if ih.Shape >= ShapeV4 {
		ih.ColorSpace = &ColorSpace{
			Type:       u32(b, 56),
			Red:        endpoint(b, 60),
			Green:      endpoint(b, 72),
			Blue:       endpoint(b, 84),
			GammaRed:   Fixed16(u32(b, 96)),
			GammaGreen: Fixed16(u32(b, 100)),
			GammaBlue:  Fixed16(u32(b, 104)),
		}
	}
	if ih.Shape >= ShapeV5 {
		ih.Profile = &Profile{
			Intent:   u32(b, 108),
			Data:     u32(b, 112),
			Size:     u32(b, 116),
			Reserved: u32(b, 120),
		}
	}
}

func endpoint(b []byte, off int) Endpoint {
	return Endpoint{
		X: Fixed16(u32(b, off)),
		Y: Fixed16(u32(b, off+4)),
		Z: Fixed16(u32(b, off+8)),
	}
}
