package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestHashDefaults(t *testing.T) {
	t.Run("default seed is the FNV offset basis", func(t *testing.T) {
		assert.Equal(t, HashWithSeed(FNVOffsetBasis32, "hello"), Hash32("hello"))
		assert.Equal(t, HashWithSeed(FNVOffsetBasis64, "hello"), Hash64("hello"))
	})

	t.Run("generic form matches width helpers", func(t *testing.T) {
		assert.Equal(t, Hash[uint32]("hello"), Hash32("hello"))
		assert.Equal(t, Hash[uint64]("hello"), Hash64("hello"))
	})

	t.Run("repeat calls agree", func(t *testing.T) {
		assert.Equal(t, Hash32(12345), Hash32(12345))
		assert.Equal(t, Hash64([]string{"a", "b"}), Hash64([]string{"a", "b"}))
	})
}

func TestHashSeedSensitivity(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		assert.NotEqual(t,
			HashWithSeed(uint32(0), 42),
			HashWithSeed(uint32(0xDEADBEEF), 42))
	})

	t.Run("string", func(t *testing.T) {
		assert.NotEqual(t,
			HashWithSeed(uint32(0), "seeded"),
			HashWithSeed(uint32(0xDEADBEEF), "seeded"))
	})

	t.Run("many sampled seeds disagree pairwise", func(t *testing.T) {
		seen := make(map[uint64]uint64)
		for seed := uint64(1); seed <= 512; seed++ {
			h := HashWithSeed(seed, uint64(0xFACEFEED))
			if prev, dup := seen[h]; dup {
				t.Fatalf("seeds %d and %d collide", prev, seed)
			}
			seen[h] = seed
		}
	})
}

// Hashing is pure and reentrant: concurrent callers over the same inputs
// must agree with a sequentially computed reference.
func TestHashConcurrent(t *testing.T) {
	inputs := []any{"alpha", 42, 3.14, []int{1, 2, 3}, Some("x"), Tuple{"k", 7}}
	want := make([]uint64, len(inputs))
	for i, in := range inputs {
		want[i] = Hash64(in)
	}

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for n := 0; n < 1000; n++ {
				for i, in := range inputs {
					if got := Hash64(in); got != want[i] {
						return assert.AnError
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
