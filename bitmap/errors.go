package bitmap

import (
	"errors"
	"fmt"
)

var (
	ErrTooSmall           = errors.New("bitmap: buffer too small")
	ErrUnsupportedShape   = errors.New("bitmap: unsupported info header size")
	ErrInconsistentHeader = errors.New("bitmap: inconsistent header")
	ErrUnsupportedPixels  = errors.New("bitmap: unsupported pixel format")
	ErrTruncated          = errors.New("bitmap: pixel data exceeds buffer")
)

// HeaderError reports the first header invariant that does not hold.
type HeaderError struct {
	Invariant int
	Msg       string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("bitmap: invariant %d: %s", e.Invariant, e.Msg)
}

// Is makes a HeaderError match ErrUnsupportedShape for the size invariant
// and ErrInconsistentHeader for every other one.
func (e *HeaderError) Is(target error) bool {
	if e.Invariant == invSize {
		return target == ErrUnsupportedShape
	}
	return target == ErrInconsistentHeader
}
