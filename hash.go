package hashing

// Hash hashes a value of any supported shape into H, seeded with the FNV
// offset basis of the selected width. It is the unified entry point over the
// Hasher dispatch table; algorithm selection follows the value's shape
// (CRC32-C for byte strings, Knuth/Wang mixing for integers, bit-pattern
// hashing for floats, recursive combining for composites).
func Hash[H HashUint](value any) H {
	return NewHasher[H]().Hash(value)
}

// HashWithSeed is Hash with an explicit seed.
func HashWithSeed[H HashUint](seed H, value any) H {
	return NewHasherSeed(seed).Hash(value)
}

// Hash32 hashes a value to 32 bits with the default seed.
func Hash32(value any) uint32 {
	return Hash[uint32](value)
}

// Hash64 hashes a value to 64 bits with the default seed.
func Hash64(value any) uint64 {
	return Hash[uint64](value)
}
