package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// MulUint64 multiplies a and b, failing instead of wrapping around.
func MulUint64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds uint64", a, b)
	}
	return lo, nil
}

// SizeBytes returns count elements of elemSize bytes as an int64 byte count.
func SizeBytes(count int, elemSize uintptr) (int64, error) {
	c, err := IntToUint64(count)
	if err != nil {
		return 0, err
	}
	n, err := MulUint64(c, uint64(elemSize))
	if err != nil {
		return 0, err
	}
	return Uint64ToInt64(n)
}
