package hashing

import (
	"fmt"
	"hash/fnv"
	"testing"

	"github.com/cespare/xxhash/v2"
)

var benchSink uint64

var benchStrings = func() []string {
	s := make([]string, 512)
	for i := range s {
		s[i] = fmt.Sprintf("benchmark_key_%04d_payload", i)
	}
	return s
}()

func BenchmarkLarsonStep(b *testing.B) {
	var h uint32
	for i := 0; i < b.N; i++ {
		h = Larson(h, byte(i))
	}
	benchSink = uint64(h)
}

func BenchmarkFNV1aStep(b *testing.B) {
	h := FNVOffsetBasis32
	for i := 0; i < b.N; i++ {
		h = FNV1a(h, byte(i))
	}
	benchSink = uint64(h)
}

func BenchmarkCrc32cStep(b *testing.B) {
	var h uint32
	for i := 0; i < b.N; i++ {
		h = Crc32c(h, byte(i))
	}
	benchSink = uint64(h)
}

func BenchmarkCrc32cSoftStep(b *testing.B) {
	var h uint32
	for i := 0; i < b.N; i++ {
		h = Crc32cSoft(h, byte(i))
	}
	benchSink = uint64(h)
}

func BenchmarkHashInteger32(b *testing.B) {
	var h uint32
	for i := 0; i < b.N; i++ {
		h ^= HashInteger(FNVOffsetBasis32, i)
	}
	benchSink = uint64(h)
}

func BenchmarkHashInteger64(b *testing.B) {
	var h uint64
	for i := 0; i < b.N; i++ {
		h ^= HashInteger(FNVOffsetBasis64, i)
	}
	benchSink = h
}

func BenchmarkHashString32(b *testing.B) {
	b.ReportAllocs()
	var h uint32
	for i := 0; i < b.N; i++ {
		h ^= HashString(FNVOffsetBasis32, benchStrings[i&511])
	}
	benchSink = uint64(h)
}

func BenchmarkHashString64(b *testing.B) {
	b.ReportAllocs()
	var h uint64
	for i := 0; i < b.N; i++ {
		h ^= HashString(FNVOffsetBasis64, benchStrings[i&511])
	}
	benchSink = h
}

func BenchmarkCombine64(b *testing.B) {
	h := uint64(1)
	for i := 0; i < b.N; i++ {
		h = Combine(h, uint64(i))
	}
	benchSink = h
}

func BenchmarkSeedMix64(b *testing.B) {
	var h uint64
	for i := 0; i < b.N; i++ {
		h ^= SeedMix(FNVOffsetBasis64, uint64(i), 1<<20)
	}
	benchSink = h
}

func BenchmarkHasherDispatch(b *testing.B) {
	h := NewHasher[uint64]()
	b.Run("string", func(b *testing.B) {
		var s uint64
		for i := 0; i < b.N; i++ {
			s ^= h.Hash(benchStrings[i&511])
		}
		benchSink = s
	})
	b.Run("int", func(b *testing.B) {
		var s uint64
		for i := 0; i < b.N; i++ {
			s ^= h.Hash(i)
		}
		benchSink = s
	})
	b.Run("tuple", func(b *testing.B) {
		tup := Tuple{"k", 42, 2.5}
		var s uint64
		for i := 0; i < b.N; i++ {
			s ^= h.Hash(tup)
		}
		benchSink = s
	})
}

// Reference points against established string hashes.

func BenchmarkReferenceXxhash(b *testing.B) {
	var h uint64
	for i := 0; i < b.N; i++ {
		h ^= xxhash.Sum64String(benchStrings[i&511])
	}
	benchSink = h
}

func BenchmarkReferenceStdFNV(b *testing.B) {
	var h uint64
	for i := 0; i < b.N; i++ {
		d := fnv.New64a()
		_, _ = d.Write([]byte(benchStrings[i&511]))
		h ^= d.Sum64()
	}
	benchSink = h
}
