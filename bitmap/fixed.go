package bitmap

import "fmt"

// Fixed16 is an unsigned 16.16 fixed-point number.
type Fixed16 uint32

const fixedDigits = 1_000_000

// String renders f with six decimals, rounding half up.
func (f Fixed16) String() string {
	frac := (uint64(f&0xffff)*fixedDigits + 0x8000) >> 16
	return fmt.Sprintf("%d.%06d", uint32(f>>16), frac)
}

func (f Fixed16) Float64() float64 {
	return float64(f) / 65536
}
