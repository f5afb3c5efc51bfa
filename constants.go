package hashing

// Mathematical constants shared by the hash algorithms. All values are
// well-known published constants; none were invented here.
const (
	// FNVOffsetBasis32 is the FNV-1a 32-bit offset basis.
	FNVOffsetBasis32 uint32 = 0x811C9DC5

	// FNVPrime32 is the FNV-1a 32-bit prime.
	FNVPrime32 uint32 = 0x01000193

	// FNVOffsetBasis64 is the FNV-1a 64-bit offset basis.
	FNVOffsetBasis64 uint64 = 0xCBF29CE484222325

	// FNVPrime64 is the FNV-1a 64-bit prime.
	FNVPrime64 uint64 = 0x00000100000001B3

	// KnuthMultiplier32 is Knuth's multiplicative constant for 32-bit
	// integer hashing.
	KnuthMultiplier32 uint32 = 0x045D9F3B

	// WangMultiplier64C1 is the first multiplicative constant of Wang's
	// 64-bit avalanche (splitmix64 finalizer).
	WangMultiplier64C1 uint64 = 0xBF58476D1CE4E5B9

	// WangMultiplier64C2 is the second multiplicative constant of Wang's
	// 64-bit avalanche (splitmix64 finalizer).
	WangMultiplier64C2 uint64 = 0x94D049BB133111EB

	// GoldenRatio32 is 2^32 divided by the golden ratio, used by the
	// 32-bit Combine.
	GoldenRatio32 uint32 = 0x9E3779B9

	// GoldenRatio64 is 2^64 divided by the golden ratio, used by the
	// 64-bit Combine.
	GoldenRatio64 uint64 = 0x9E3779B97F4A7C15

	// Murmur3MultiplierC1 is the first MurmurHash3 finalizer constant.
	Murmur3MultiplierC1 uint64 = 0xFF51AFD7ED558CCD

	// Murmur3MultiplierC2 is the second MurmurHash3 finalizer constant.
	Murmur3MultiplierC2 uint64 = 0xC4CEB9FE1A85EC53

	// SeedMixMultiplier64 is the default multiplicative constant of SeedMix.
	SeedMixMultiplier64 uint64 = 0x2545F4914F6CDD1D
)
