package bitmap

import "fmt"

// BytesPerPixel is the size of a 24-bit BGR pixel sample.
const BytesPerPixel = 3

// RowLayout returns the number of pixel bytes in a row and the number of
// padding bytes that bring the row to a multiple of 4.
func RowLayout(width, bitCount int) (unpadded, padding int) {
	unpadded = width * (bitCount / 8)
	padding = (4 - unpadded%4) % 4
	return unpadded, padding
}

// PixelOffset returns the offset of pixel (x, y) in the buffer. It does not
// check bounds.
func PixelOffset(dataOffset, stride, x, y int) int {
	return dataOffset + y*stride + x*BytesPerPixel
}

// Raster is a mutable view of the pixel rows inside a bitmap buffer. The
// pixel at (x, y) starts at Pix[Offset + y*Stride + x*3] and is stored as
// blue, green, red.
type Raster struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Offset int
}

// NewRaster builds the raster view for headers that passed Check. It refuses
// pixel formats other than uncompressed 24-bit and rows that would run past
// the end of buf.
func NewRaster(buf []byte, fh FileHeader, ih InfoHeader) (*Raster, error) {
	if ih.BitCount != 24 || ih.Compression != CompressionRGB {
		return nil, fmt.Errorf("%w: %d bits per pixel, compression %d", ErrUnsupportedPixels, ih.BitCount, ih.Compression)
	}
	if ih.Width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrUnsupportedPixels, ih.Width)
	}

	width := int(ih.Width)
	height := int(ih.Height)
	if height < 0 {
		height = -height
	}
	unpadded, padding := RowLayout(width, int(ih.BitCount))
	stride := unpadded + padding
	offset := int(fh.DataOffset)

	if need := int64(offset) + int64(height)*int64(stride); need > int64(len(buf)) {
		return nil, fmt.Errorf("%w: %d rows of %d bytes from offset %d need %d bytes, have %d",
			ErrTruncated, height, stride, offset, need, len(buf))
	}

	return &Raster{
		Pix:    buf,
		Width:  width,
		Height: height,
		Stride: stride,
		Offset: offset,
	}, nil
}

// Row returns the pixel bytes of row y without its padding.
func (r *Raster) Row(y int) []byte {
	start := r.Offset + y*r.Stride
	return r.Pix[start : start+r.Width*BytesPerPixel : start+r.Width*BytesPerPixel]
}

// At returns the three bytes of pixel (x, y), blue first.
func (r *Raster) At(x, y int) []byte {
	i := PixelOffset(r.Offset, r.Stride, x, y)
	return r.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
}

// Padding returns the number of filler bytes at the end of each row.
func (r *Raster) Padding() int {
	return r.Stride - r.Width*BytesPerPixel
}
