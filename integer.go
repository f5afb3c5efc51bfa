package hashing

import "unsafe"

// HashInteger hashes an integral value of any width into H via avalanche
// mixing. Zero maps to zero exactly, for every input width, output width and
// seed: zero is a reserved sentinel, not a collision concern. The seed is
// XORed in before mixing, never after, so seed changes avalanche fully
// through the output.
//
// 32-bit outputs use two rounds of Knuth's multiplicative mixing; 64-bit
// inputs are first folded onto 32 bits so the high half still participates.
// 64-bit outputs use Wang's avalanche (the splitmix64 finalizer).
func HashInteger[H HashUint, T Integer](seed H, value T) H {
	if value == 0 {
		return 0
	}

	if is64[H]() {
		x := uint64(value) ^ uint64(seed)
		x = (x ^ (x >> 30)) * WangMultiplier64C1
		x = (x ^ (x >> 27)) * WangMultiplier64C2
		x = x ^ (x >> 31)

		return H(x)
	}

	var x uint32
	if unsafe.Sizeof(value) == 8 {
		// Fold the 64-bit value onto 32 bits before mixing so high bits
		// are preserved.
		v64 := uint64(value) ^ uint64(seed)
		x = uint32(v64 ^ (v64 >> 32))
	} else {
		x = uint32(value) ^ uint32(seed)
	}
	x = ((x >> 16) ^ x) * KnuthMultiplier32
	x = ((x >> 16) ^ x) * KnuthMultiplier32
	x = (x >> 16) ^ x

	return H(x)
}
