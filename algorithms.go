package hashing

import (
	"hash/crc32"

	"github.com/ronan-fdev/nfx-hashing/internal/cpufeat"
)

// castagnoliTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// Larson folds one byte into the running hash using Paul Larson's
// multiplicative hash: 37*hash + ch. It has no avalanche behavior and is
// provided as a comparison baseline, not for production use.
func Larson[H HashUint](hash H, ch byte) H {
	return 37*hash + H(ch)
}

// FNV1a folds one byte into the running hash using FNV-1a with the prime
// matching the width of H. The XOR precedes the multiply; this order, not
// the reverse, is what gives FNV-1a its stated avalanche properties.
func FNV1a[H HashUint](hash H, ch byte) H {
	if is64[H]() {
		p := uint64(FNVPrime64)
		return FNV1aPrime(hash, ch, H(p))
	}
	return FNV1aPrime(hash, ch, H(FNVPrime32))
}

// FNV1aPrime is FNV1a with an explicit prime.
func FNV1aPrime[H HashUint](hash H, ch byte, prime H) H {
	hash ^= H(ch)
	hash *= prime
	return hash
}

// Crc32c folds one byte into the running hash using the CRC32-C (Castagnoli)
// step, without the pre/post inversion of standard CRC framing. The
// hardware-backed kernel is used when the CPU supports it (see
// internal/cpufeat); otherwise it degrades silently to Crc32cSoft. Both
// paths are bit-identical for every (state, byte) pair.
func Crc32c(hash uint32, ch byte) uint32 {
	if cpufeat.CRC32() {
		return crc32cStep(hash, ch)
	}
	return Crc32cSoft(hash, ch)
}

// Crc32cSoft is the portable bit-serial reference implementation of the
// CRC32-C step, using the reflected Castagnoli polynomial 0x82F63B78.
// It must produce the same output as Crc32c for any input.
func Crc32cSoft(hash uint32, ch byte) uint32 {
	const polynomial = 0x82F63B78
	crc := hash ^ uint32(ch)
	for i := 0; i < 8; i++ {
		if crc&1 != 0 {
			crc = (crc >> 1) ^ polynomial
		} else {
			crc >>= 1
		}
	}
	return crc
}

// crc32cStep runs one raw CRC32-C step through the standard library kernel,
// which dispatches to the CRC32 instruction where available. hash/crc32
// inverts the state on entry and exit per the CRC framing convention; the
// surrounding complements strip that framing so the step matches the raw
// instruction semantics.
func crc32cStep(state uint32, ch byte) uint32 {
	buf := [1]byte{ch}
	return ^crc32.Update(^state, castagnoliTable, buf[:])
}

// crc32cFold folds a byte sequence into state, equivalent to applying Crc32c
// byte by byte.
func crc32cFold(state uint32, p []byte) uint32 {
	if cpufeat.CRC32() {
		return ^crc32.Update(^state, castagnoliTable, p)
	}
	for _, ch := range p {
		state = Crc32cSoft(state, ch)
	}
	return state
}

// crc32cFoldInverted folds the bit-inverted image of p into state. This is
// the high stream of the dual-stream 64-bit byte hash.
func crc32cFoldInverted(state uint32, p []byte) uint32 {
	if !cpufeat.CRC32() {
		for _, ch := range p {
			state = Crc32cSoft(state, ch^0xFF)
		}
		return state
	}
	var buf [512]byte
	for len(p) > 0 {
		n := copy(buf[:], p)
		for i := 0; i < n; i++ {
			buf[i] ^= 0xFF
		}
		state = ^crc32.Update(^state, castagnoliTable, buf[:n])
		p = p[n:]
	}
	return state
}

// Combine merges newHash into existingHash using the Boost hash_combine
// formula. Combining is order-sensitive: Combine(a, b) differs from
// Combine(b, a). At 64 bits the Boost formula alone does not guarantee
// avalanche, so the result additionally passes through the MurmurHash3
// triple-avalanche finalizer.
func Combine[H HashUint](existingHash, newHash H) H {
	if !is64[H]() {
		existingHash ^= newHash + H(GoldenRatio32) + (existingHash << 6) + (existingHash >> 2)
		return existingHash
	}

	x := uint64(existingHash)
	x ^= uint64(newHash) + GoldenRatio64 + (x << 6) + (x >> 2)

	x ^= x >> 33
	x *= Murmur3MultiplierC1
	x ^= x >> 33
	x *= Murmur3MultiplierC2
	x ^= x >> 33

	return H(x)
}

// CombinePrime merges newHash into existingHash FNV-1a style: XOR then
// multiply by the supplied prime. Its output is distinct from Combine for
// the same input pair.
func CombinePrime[H HashUint](existingHash, newHash, prime H) H {
	existingHash ^= newHash
	existingHash *= prime
	return existingHash
}

// SeedMix mixes a seed with a hash into a table index in [0, size) using the
// default multiplicative constant. size must be a power of two; the index is
// computed with a bitmask, and the precondition is deliberately unchecked to
// keep the operation branch-free (a non-power-of-two size yields a
// well-defined but useless masked value).
func SeedMix[H HashUint](seed, hash H, size uint64) H {
	return SeedMixConstant(seed, hash, size, SeedMixMultiplier64)
}

// SeedMixConstant is SeedMix with an explicit multiplicative constant.
// The 32-bit width applies Thomas Wang's bit mixing; the 64-bit width
// applies the MurmurHash3 avalanche before the multiply-and-mask.
func SeedMixConstant[H HashUint](seed, hash H, size uint64, mixConstant uint64) H {
	if !is64[H]() {
		x := uint32(seed + hash)
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27

		return H((uint64(x) * mixConstant) & (size - 1))
	}

	x := uint64(seed + hash)
	x ^= x >> 33
	x *= Murmur3MultiplierC1
	x ^= x >> 33
	x *= Murmur3MultiplierC2
	x ^= x >> 33

	return H((x * mixConstant) & (size - 1))
}
