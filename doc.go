// Package hashing provides fast, non-cryptographic hashing primitives and a
// generic value hasher for composite Go values.
//
// The toolkit is built in layers. At the bottom sit byte-wise mixers (Larson,
// FNV-1a, CRC32-C with a capability-gated hardware path), multiplicative
// integer hashes (Knuth at 32 bits, Wang/splitmix at 64 bits) and the
// Combine/SeedMix operators. On top of those, Hasher dispatches any supported
// value shape - strings, integers, floats, pointers, enums, optionals, pairs,
// tuples, arrays, views, slices and tagged unions - by recursively combining
// sub-hashes.
//
// # Quick Start
//
//	h32 := hashing.Hash32("hello")                  // 32-bit, FNV offset basis seed
//	h64 := hashing.Hash64("hello")                  // 64-bit, dual-stream CRC32-C
//	hs  := hashing.HashWithSeed(uint32(0xBEEF), 42) // explicit seed
//
// Low-level building blocks are exported directly:
//
//	state := hashing.FNV1a(hashing.FNVOffsetBasis32, 'x')
//	idx := hashing.SeedMix(seed, h, 1024) // table index in [0, 1024)
//
// # Width and Seed
//
// Every primitive is generic over HashUint (uint32 or uint64), so the output
// width is fixed at the call site and monomorphized by the compiler. Seeds
// default to the FNV offset basis of the selected width; a Hasher binds its
// seed once at construction.
//
// # Sentinels
//
// Two deliberate identities hold everywhere: integer zero hashes to zero for
// both widths and any seed, and empty byte strings hash to zero regardless of
// seed. Empty fixed arrays hash to the seed itself, while empty slices hash
// to Combine(seed, 0) - runtime length is data, array length is not.
//
// # Concurrency
//
// All functions are pure and reentrant. The only process-wide state is the
// CRC32-C acceleration probe, computed once behind a compute-once cell.
//
// Cryptographic strength is explicitly out of scope: none of these functions
// resist adversarial collision or preimage search.
package hashing
