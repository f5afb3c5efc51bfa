package hashing

import (
	"math"
	"unsafe"
)

// Canonical quiet-NaN bit patterns. Every NaN encoding is normalized to one
// of these before hashing so that all NaNs of a width hash identically.
const (
	quietNaN32 uint32 = 0x7FC00000
	quietNaN64 uint64 = 0x7FF8000000000000
)

// HashFloat hashes a floating-point value by normalizing it and delegating
// to HashInteger on its IEEE-754 bit pattern. Positive and negative zero
// hash identically, as do all NaN encodings.
func HashFloat[H HashUint, T Float](seed H, value T) H {
	if value == 0 {
		value = 0 // collapses -0.0 onto +0.0
	}

	if unsafe.Sizeof(value) == 4 {
		bits := math.Float32bits(float32(value))
		if value != value {
			bits = quietNaN32
		}
		return HashInteger(seed, bits)
	}

	bits := math.Float64bits(float64(value))
	if value != value {
		bits = quietNaN64
	}
	return HashInteger(seed, bits)
}
