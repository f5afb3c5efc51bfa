package hashing

import "unsafe"

// MapHasher is a pluggable per-key hash strategy for associative containers.
// It detects string keys once at construction and routes them through the
// byte-string policy without boxing; every other key type goes through the
// generic dispatcher. Because string keys use the byte-string policy, a
// MapHasher result matches HashBytes over the same bytes, enabling
// heterogeneous string/[]byte lookup schemes.
type MapHasher[K comparable, H HashUint] struct {
	hasher      Hasher[H]
	keyIsString bool
}

// NewMapHasher returns a MapHasher seeded with the FNV offset basis of H.
func NewMapHasher[K comparable, H HashUint]() MapHasher[K, H] {
	return NewMapHasherSeed[K](defaultSeed[H]())
}

// NewMapHasherSeed returns a MapHasher with an explicit seed.
func NewMapHasherSeed[K comparable, H HashUint](seed H) MapHasher[K, H] {
	m := MapHasher[K, H]{hasher: NewHasherSeed(seed)}

	var key K
	if _, ok := any(key).(string); ok {
		m.keyIsString = true
	}
	return m
}

// Hash hashes one key.
func (m MapHasher[K, H]) Hash(key K) H {
	if m.keyIsString {
		return HashString(m.hasher.seed, *(*string)(unsafe.Pointer(&key)))
	}
	return m.hasher.Hash(key)
}

// Seed returns the seed the MapHasher was constructed with.
func (m MapHasher[K, H]) Seed() H {
	return m.hasher.seed
}
