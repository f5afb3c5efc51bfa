package hashtable

import hashing "github.com/ronan-fdev/nfx-hashing"

type config struct {
	seed     uint64
	capacity int
}

func defaultConfig() *config {
	return &config{
		seed:     hashing.FNVOffsetBasis64,
		capacity: minCapacity,
	}
}

// Option configures a Map at construction time.
type Option func(*config)

// WithSeed sets the hash seed. Two maps with different seeds place the same
// keys in different buckets.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithCapacity pre-sizes the table for at least n entries. The actual
// capacity is rounded up to a power of two. Negative values are rejected by
// New.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}
