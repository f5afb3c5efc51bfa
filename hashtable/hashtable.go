// Package hashtable provides a string-keyed open-addressing map built on the
// hashing toolkit. It exists primarily as the associative-container
// integration for the hashing package: bucket indices come from SeedMix over
// a power-of-two capacity, keys are hashed with the dual-stream 64-bit
// CRC32-C policy, and lookups are heterogeneous (Get by string, GetBytes by
// []byte, both hitting the same entries).
package hashtable

import (
	"errors"

	hashing "github.com/ronan-fdev/nfx-hashing"
)

// ErrInvalidCapacity is returned when a configured capacity is negative.
var ErrInvalidCapacity = errors.New("hashtable: capacity must not be negative")

const (
	minCapacity = 8

	// Grow when live+dead slots exceed 3/4 of capacity.
	loadNum, loadDen = 3, 4
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotFull
	slotDead
)

type slot[V any] struct {
	hash  uint64
	key   string
	value V
	state slotState
}

// Map is an open-addressing hash table with string keys. It is not safe for
// concurrent mutation.
type Map[V any] struct {
	seed  uint64
	slots []slot[V]
	mask  uint64
	live  int
	dead  int
}

// New creates a Map.
func New[V any](opts ...Option) (*Map[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	capacity := nextPow2(cfg.capacity)
	return &Map[V]{
		seed:  cfg.seed,
		slots: make([]slot[V], capacity),
		mask:  uint64(capacity - 1),
	}, nil
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	return m.live
}

// Set stores value under key, replacing any previous value.
func (m *Map[V]) Set(key string, value V) {
	if (m.live+m.dead+1)*loadDen > len(m.slots)*loadNum {
		m.grow()
	}

	h := hashing.HashString(m.seed, key)
	idx := m.bucket(h)
	insert := -1
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			if insert < 0 {
				insert = int(idx)
			}
			m.slots[insert] = slot[V]{hash: h, key: key, value: value, state: slotFull}
			m.live++
			return
		case slotDead:
			// Remember the first tombstone so deleted slots get reused.
			if insert < 0 {
				insert = int(idx)
				m.dead--
			}
		case slotFull:
			if s.hash == h && s.key == key {
				s.value = value
				if insert >= 0 {
					m.dead++ // the remembered tombstone stays dead
				}
				return
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	h := hashing.HashString(m.seed, key)
	idx := m.bucket(h)
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			var zero V
			return zero, false
		case slotFull:
			if s.hash == h && s.key == key {
				return s.value, true
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// GetBytes is Get with a []byte key, without converting it to a string. The
// byte-string hash policy makes equal bytes hash identically to the string
// form, so this reaches the same entries as Get.
func (m *Map[V]) GetBytes(key []byte) (V, bool) {
	h := hashing.HashBytes(m.seed, key)
	idx := m.bucket(h)
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			var zero V
			return zero, false
		case slotFull:
			if s.hash == h && equalStringBytes(s.key, key) {
				return s.value, true
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// Delete removes key, reporting whether it was present.
func (m *Map[V]) Delete(key string) bool {
	h := hashing.HashString(m.seed, key)
	idx := m.bucket(h)
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			return false
		case slotFull:
			if s.hash == h && s.key == key {
				var zero V
				s.value = zero
				s.key = ""
				s.state = slotDead
				m.live--
				m.dead++
				return true
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// Range calls fn for every entry until fn returns false. Iteration order is
// unspecified.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for i := range m.slots {
		if m.slots[i].state == slotFull {
			if !fn(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// bucket maps a key hash onto a slot index. Capacity is a power of two by
// construction, satisfying SeedMix's masking precondition.
func (m *Map[V]) bucket(h uint64) uint64 {
	return hashing.SeedMix(m.seed, h, m.mask+1)
}

func (m *Map[V]) grow() {
	old := m.slots
	m.slots = make([]slot[V], 2*len(old))
	m.mask = uint64(len(m.slots) - 1)
	m.live = 0
	m.dead = 0

	for i := range old {
		if old[i].state != slotFull {
			continue
		}
		// Reinsert without rehashing the key.
		idx := m.bucket(old[i].hash)
		for m.slots[idx].state == slotFull {
			idx = (idx + 1) & m.mask
		}
		m.slots[idx] = old[i]
		m.live++
	}
}

func equalStringBytes(s string, b []byte) bool {
	if len(s) != len(b) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != b[i] {
			return false
		}
	}
	return true
}

func nextPow2(n int) int {
	c := minCapacity
	for c < n {
		c <<= 1
	}
	return c
}
