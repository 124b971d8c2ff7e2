package bitmap

import (
	"encoding/binary"
	"fmt"
)

// AppendBinary appends the 14-byte little-endian encoding of fh to b.
func (fh FileHeader) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint16(b, fh.Signature)
	b = binary.LittleEndian.AppendUint32(b, fh.FileSize)
	b = binary.LittleEndian.AppendUint32(b, fh.Reserved)
	b = binary.LittleEndian.AppendUint32(b, fh.DataOffset)
	return b, nil
}

// AppendBinary appends the encoding of ih in the layout selected by
// ih.Shape. The declared size written is ih.Shape.Size(). Missing optional
// blocks are written as zeros.
func (ih InfoHeader) AppendBinary(b []byte) ([]byte, error) {
	le := binary.LittleEndian
	switch ih.Shape {
	case ShapeUnknown:
		return b, fmt.Errorf("%w: cannot encode shape %s", ErrUnsupportedShape, ih.Shape)
	case ShapeCore:
		if ih.Width < 0 || ih.Width > 0xffff || ih.Height < 0 || ih.Height > 0xffff {
			return b, fmt.Errorf("bitmap: %dx%d does not fit a core header", ih.Width, ih.Height)
		}
		b = le.AppendUint32(b, ShapeCore.Size())
		b = le.AppendUint16(b, uint16(ih.Width))
		b = le.AppendUint16(b, uint16(ih.Height))
		b = le.AppendUint16(b, ih.Planes)
		b = le.AppendUint16(b, ih.BitCount)
		return b, nil
	}

	b = le.AppendUint32(b, ih.Shape.Size())
	b = le.AppendUint32(b, uint32(ih.Width))
	b = le.AppendUint32(b, uint32(ih.Height))
	b = le.AppendUint16(b, ih.Planes)
	b = le.AppendUint16(b, ih.BitCount)
	b = le.AppendUint32(b, ih.Compression)
	b = le.AppendUint32(b, ih.ImageSize)
	b = le.AppendUint32(b, ih.XPelsPerMeter)
	b = le.AppendUint32(b, ih.YPelsPerMeter)
	b = le.AppendUint32(b, ih.ColorsUsed)
	b = le.AppendUint32(b, ih.ColorsImportant)

	if ih.Shape >= ShapeV2 {
		var m ChannelMasks
		if ih.Masks != nil {
			m = *ih.Masks
		}
		b = le.AppendUint32(b, m.Red)
		b = le.AppendUint32(b, m.Green)
		b = le.AppendUint32(b, m.Blue)
		if ih.Shape >= ShapeV3 {
			b = le.AppendUint32(b, m.Alpha)
		}
	}
	if ih.Shape >= ShapeV4 {
		var cs ColorSpace
		if ih.ColorSpace != nil {
			cs = *ih.ColorSpace
		}
		b = le.AppendUint32(b, cs.Type)
		for _, e := range [...]Endpoint{cs.Red, cs.Green, cs.Blue} {
			b = le.AppendUint32(b, uint32(e.X))
			b = le.AppendUint32(b, uint32(e.Y))
			b = le.AppendUint32(b, uint32(e.Z))
		}
		b = le.AppendUint32(b, uint32(cs.GammaRed))
		b = le.AppendUint32(b, uint32(cs.GammaGreen))
		b = le.AppendUint32(b, uint32(cs.GammaBlue))
	}
	if ih.Shape == ShapeV5 {
		var p Profile
		if ih.Profile != nil {
			p = *ih.Profile
		}
		b = le.AppendUint32(b, p.Intent)
		b = le.AppendUint32(b, p.Data)
		b = le.AppendUint32(b, p.Size)
		b = le.AppendUint32(b, p.Reserved)
	}
	return b, nil
}

// Blank returns a valid, all-black 24-bit bitmap of the given size using the
// given info header shape.
func Blank(width, height int, shape Shape) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap: invalid dimensions %dx%d", width, height)
	}
	if shape == ShapeUnknown || shape.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, shape)
	}

	unpadded, padding := RowLayout(width, 24)
	imageSize := (unpadded + padding) * height
	dataOffset := FileHeaderSize + int(shape.Size())

	fh := FileHeader{
		Signature:  Signature,
		FileSize:   uint32(dataOffset + imageSize),
		DataOffset: uint32(dataOffset),
	}
	ih := InfoHeader{
		Shape:         shape,
		Size:          shape.Size(),
		Width:         int32(width),
		Height:        int32(height),
		Planes:        1,
		BitCount:      24,
		ImageSize:     uint32(imageSize),
		XPelsPerMeter: 2835, // 72 DPI
		YPelsPerMeter: 2835,
	}
	if shape >= ShapeV2 {
		ih.Masks = &ChannelMasks{Red: 0x00ff0000, Green: 0x0000ff00, Blue: 0x000000ff}
	}
	if shape >= ShapeV4 {
		ih.ColorSpace = &ColorSpace{Type: SRGB}
	}
	if shape == ShapeV5 {
		ih.Profile = &Profile{Intent: IntentImages}
	}

	buf := make([]byte, 0, dataOffset+imageSize)
	buf, _ = fh.AppendBinary(buf)
	buf, err := ih.AppendBinary(buf)
	if err != nil {
		return nil, err
	}
	return buf[:dataOffset+imageSize], nil
}
