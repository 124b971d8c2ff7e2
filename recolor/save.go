package recolor

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// checkFile makes sure src is a regular file and, unless overwrite is set,
// that dest does not exist yet.
func checkFile(src, dest string, overwrite bool) error {
	srcFileInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !srcFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot recolor non-regular file %q: %s", srcFileInfo.Name(), srcFileInfo.Mode().String())
	}
	if overwrite {
		return nil
	}

	destFileInfo, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
	} else {
		return fmt.Errorf("destination file already exists: %q", destFileInfo.Name())
	}
	return nil
}

// save writes the recolored bitmap to dest through a temporary file in the
// same folder, so dest is either the old file or the complete new one. BMP
// output is written byte for byte; other formats are re-encoded.
func save(data []byte, format, dest string) (err error) {
	destDir, destName := filepath.Split(dest)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if format == "bmp" {
		if _, err = outFile.Write(data); err != nil {
			return fmt.Errorf("could not write BMP destination %q: %w", destName, err)
		}
		canRename = true
		return nil
	}

	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not decode recolored image for %s export: %w", format, err)
	}

	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	canRename = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
