// Package pipeline rewrites the pixels of an in-memory bitmap through a
// color transform. The headers are decoded and checked, and the raster is
// located, before a single byte of the buffer changes.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/m3z0id/chroma/bitmap"
	"github.com/m3z0id/chroma/parallel"
	"github.com/m3z0id/chroma/transform"
)

var ErrNoTransform = errors.New("pipeline: no transform")

type Options struct {
	// Workers is the number of row bands processed concurrently. Values
	// below 2 process the rows on the calling goroutine.
	Workers int
	Logger  *slog.Logger
}

// Result describes the bitmap that was transformed.
type Result struct {
	File   bitmap.FileHeader
	Info   bitmap.InfoHeader
	Width  int
	Height int
	Stride int
	Pixels int
}

// Apply replaces every pixel of the bitmap in buf with fn of its color.
// Header bytes and row padding are left as they are. On error buf is
// unchanged.
func Apply(buf []byte, fn transform.Func, opts Options) (Result, error) {
	if fn == nil {
		return Result{}, ErrNoTransform
	}

	fh, ih, err := bitmap.Decode(buf)
	if err != nil {
		return Result{}, fmt.Errorf("could not decode headers: %w", err)
	}
	if err = bitmap.Check(fh, ih, len(buf)); err != nil {
		return Result{}, fmt.Errorf("invalid bitmap: %w", err)
	}
	raster, err := bitmap.NewRaster(buf, fh, ih)
	if err != nil {
		return Result{}, fmt.Errorf("could not locate pixels: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bands := parallel.Bands(raster.Height, opts.Workers)
	logger.Debug("transforming", "shape", ih.Shape, "width", raster.Width, "height", raster.Height,
		"stride", raster.Stride, "bands", len(bands))

	if len(bands) <= 1 {
		transformRows(raster, fn, 0, raster.Height)
	} else {
		pool := parallel.Start(len(bands))
		for _, band := range bands {
			pool.Do(func() {
				transformRows(raster, fn, band.Start, band.End)
			})
		}
		pool.Wait()
	}

	return Result{
		File:   fh,
		Info:   ih,
		Width:  raster.Width,
		Height: raster.Height,
		Stride: raster.Stride,
		Pixels: raster.Width * raster.Height,
	}, nil
}

// ApplyKind is Apply with the pixel function of kind.
func ApplyKind(buf []byte, kind transform.Kind, opts Options) (Result, error) {
	fn := kind.Func()
	if fn == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNoTransform, kind)
	}
	return Apply(buf, fn, opts)
}

// transformRows rewrites rows [from, to). Samples are stored blue first.
func transformRows(r *bitmap.Raster, fn transform.Func, from, to int) {
	for y := from; y < to; y++ {
		row := r.Row(y)
		for i := 0; i < len(row); i += bitmap.BytesPerPixel {
			px := row[i : i+bitmap.BytesPerPixel : i+bitmap.BytesPerPixel]
			px[2], px[1], px[0] = fn(px[2], px[1], px[0])
		}
	}
}
