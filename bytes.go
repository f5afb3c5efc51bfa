package hashing

import "unsafe"

// HashString hashes the bytes of s. See HashBytes.
func HashString[H HashUint](seed H, s string) H {
	if len(s) == 0 {
		return 0
	}
	return HashBytes(seed, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// HashBytes hashes a byte sequence, linear in its length. Empty input always
// hashes to zero, regardless of seed or output width - a fixed sentinel that
// gives every empty container the same identity.
//
// The 32-bit width folds each byte through CRC32-C starting from the seed.
// The 64-bit width runs two independent CRC32-C streams, seeded from the low
// and high halves of the seed; the low stream consumes the bytes as-is and
// the high stream consumes them bit-inverted, so the two halves never
// coincide and both carry real entropy. A single 32-bit CRC widened to 64
// bits would leave the upper half degenerate.
func HashBytes[H HashUint](seed H, p []byte) H {
	if len(p) == 0 {
		return 0
	}

	if !is64[H]() {
		return H(crc32cFold(uint32(seed), p))
	}

	low := uint32(uint64(seed))
	high := uint32(uint64(seed) >> 32)

	low = crc32cFold(low, p)
	high = crc32cFoldInverted(high, p)

	x := uint64(high)<<32 | uint64(low)
	return H(x)
}
