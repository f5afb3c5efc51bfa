package hashing

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/zeebo/xxh3"
)

// Hasher hashes arbitrary values by routing each supported shape to its
// policy and recursively combining sub-hashes. It is a value type holding
// only its seed; construct once, use from any goroutine.
//
// Dispatch precedence (first match wins): byte strings, integrals, floats,
// pointers, enums (named scalar kinds), Option, Pair, Tuple, fixed arrays,
// View, slices, Variant, then the opaque fallback. Composite rules are built
// entirely from Combine and the scalar rules.
type Hasher[H HashUint] struct {
	seed H
}

// NewHasher returns a Hasher seeded with the FNV offset basis of H.
func NewHasher[H HashUint]() Hasher[H] {
	return Hasher[H]{seed: defaultSeed[H]()}
}

// NewHasherSeed returns a Hasher with an explicit seed.
func NewHasherSeed[H HashUint](seed H) Hasher[H] {
	return Hasher[H]{seed: seed}
}

// Seed returns the seed the Hasher was constructed with.
func (h Hasher[H]) Seed() H {
	return h.seed
}

// Hashable lets a custom type supply its own 64-bit hash to the dispatcher.
// It is consulted only on the fallback path: values matching a more specific
// shape (strings, named integers, ...) use that shape's policy instead.
type Hashable interface {
	HashValue(seed uint64) uint64
}

// Option is a nullable value whose hash distinguishes presence from any
// contained value: present values hash as Combine(hash(v), 1), absent ones
// as Combine(seed, 0).
type Option[T any] struct {
	value T
	valid bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

func (o Option[T]) optionValue() (any, bool) {
	return o.value, o.valid
}

// Pair is an ordered two-element composite hashed as
// Combine(hash(First), hash(Second)).
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) pairValues() (any, any) {
	return p.First, p.Second
}

// Tuple is a heterogeneous fixed group of values hashed by folding Combine
// left to right from the seed, in declared order. Order matters: both sides
// of an equality check must list elements identically.
type Tuple []any

// Variant is a tagged union alternative. The active index participates in
// the hash, so equal-looking values in different alternative slots hash
// differently.
type Variant struct {
	Index int
	Value any
}

// View is the span analog: a window over elements hashed by folding Combine
// from the seed, with no length prefix. Views with identical content hash
// identically regardless of which buffer or offset they came from; an empty
// View hashes to the seed itself, like an empty fixed array.
type View[T any] []T

func (v View[T]) viewLen() int {
	return len(v)
}

func (v View[T]) viewAt(i int) any {
	return v[i]
}

type optionValue interface {
	optionValue() (any, bool)
}

type pairValue interface {
	pairValues() (any, any)
}

type viewValue interface {
	viewLen() int
	viewAt(i int) any
}

// Hash hashes any supported value. Unsupported shapes fall back to a
// general-purpose hash of the value's printed representation XORed with the
// seed; that path is deliberately weaker than the dedicated policies (the
// seed is not threaded through the underlying hash) and exists only so every
// value is hashable.
func (h Hasher[H]) Hash(value any) H {
	switch v := value.(type) {
	case nil:
		// A nil interface hashes like a null pointer: the zero sentinel.
		return 0
	case string:
		return HashString(h.seed, v)
	case []byte:
		return HashBytes(h.seed, v)
	case View[byte]:
		// Byte views take the string policy so a view over equal bytes
		// hashes identically to the string (heterogeneous lookup).
		return HashBytes(h.seed, v)
	case bool:
		var b uint32
		if v {
			b = 1
		}
		return HashInteger(h.seed, b)
	case int:
		return HashInteger(h.seed, v)
	case int8:
		return HashInteger(h.seed, v)
	case int16:
		return HashInteger(h.seed, v)
	case int32:
		return HashInteger(h.seed, v)
	case int64:
		return HashInteger(h.seed, v)
	case uint:
		return HashInteger(h.seed, v)
	case uint8:
		return HashInteger(h.seed, v)
	case uint16:
		return HashInteger(h.seed, v)
	case uint32:
		return HashInteger(h.seed, v)
	case uint64:
		return HashInteger(h.seed, v)
	case uintptr:
		return HashInteger(h.seed, v)
	case float32:
		return HashFloat(h.seed, v)
	case float64:
		return HashFloat(h.seed, v)
	case unsafe.Pointer:
		return HashInteger(h.seed, uintptr(v))
	case Tuple:
		result := h.seed
		for _, elem := range v {
			result = Combine(result, h.Hash(elem))
		}
		return result
	case Variant:
		return Combine(h.Hash(v.Index), h.Hash(v.Value))
	}

	switch v := value.(type) {
	case optionValue:
		inner, ok := v.optionValue()
		if ok {
			// Marker value 1 keeps present values distinguishable from the
			// contained value's own hash.
			return Combine(h.Hash(inner), H(1))
		}
		return Combine(h.seed, H(0))
	case pairValue:
		a, b := v.pairValues()
		return Combine(h.Hash(a), h.Hash(b))
	case viewValue:
		result := h.seed
		for i := 0; i < v.viewLen(); i++ {
			result = Combine(result, h.Hash(v.viewAt(i)))
		}
		return result
	}

	return h.hashReflect(value)
}

// hashReflect covers named scalar kinds (enums), typed pointers, arrays and
// slices that the concrete type switch cannot enumerate.
func (h Hasher[H]) hashReflect(value any) H {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return HashString(h.seed, rv.String())
	case reflect.Bool:
		var b uint32
		if rv.Bool() {
			b = 1
		}
		return HashInteger(h.seed, b)
	case reflect.Int8:
		return HashInteger(h.seed, int8(rv.Int()))
	case reflect.Int16:
		return HashInteger(h.seed, int16(rv.Int()))
	case reflect.Int32:
		return HashInteger(h.seed, int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return HashInteger(h.seed, rv.Int())
	case reflect.Uint8:
		return HashInteger(h.seed, uint8(rv.Uint()))
	case reflect.Uint16:
		return HashInteger(h.seed, uint16(rv.Uint()))
	case reflect.Uint32:
		return HashInteger(h.seed, uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return HashInteger(h.seed, rv.Uint())
	case reflect.Float32:
		return HashFloat(h.seed, float32(rv.Float()))
	case reflect.Float64:
		return HashFloat(h.seed, rv.Float())
	case reflect.Pointer, reflect.UnsafePointer:
		return HashInteger(h.seed, rv.Pointer())
	case reflect.Array:
		// Empty arrays hash to the seed unchanged, unlike empty slices:
		// array length is a compile-time non-case, slice length is data.
		result := h.seed
		for i := 0; i < rv.Len(); i++ {
			result = Combine(result, h.Hash(rv.Index(i).Interface()))
		}
		return result
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// Named byte slices keep the string policy.
			buf := make([]byte, rv.Len())
			for i := range buf {
				buf[i] = byte(rv.Index(i).Uint())
			}
			return HashBytes(h.seed, buf)
		}
		result := Combine(h.seed, HashInteger(h.seed, rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			result = Combine(result, h.Hash(rv.Index(i).Interface()))
		}
		return result
	}

	return h.hashFallback(value)
}

// hashFallback is the opaque-type path: a Hashable implementation if the
// value provides one, otherwise a general-purpose hash of the value's
// printed representation. The printed-representation path only XORs the seed
// in afterwards, which is weaker seed mixing than the dedicated policies
// provide; Hashable implementations receive the seed directly.
func (h Hasher[H]) hashFallback(value any) H {
	var hv uint64
	if c, ok := value.(Hashable); ok {
		hv = c.HashValue(uint64(h.seed))
		return foldTo[H](hv)
	}

	hv = xxh3.Hash(fmt.Appendf(nil, "%T=%+v", value, value))
	return foldTo[H](hv) ^ h.seed
}

// foldTo narrows a 64-bit hash to H, XOR-folding the halves together when H
// is 32 bits wide so the high half is not discarded.
func foldTo[H HashUint](x uint64) H {
	if is64[H]() {
		return H(x)
	}
	return H(uint32(x ^ (x >> 32)))
}

// HashSeq hashes a slice under the growable-sequence rule: the length is
// combined first, then each element in order. An empty sequence therefore
// hashes to Combine(seed, 0), which is never the seed itself.
func HashSeq[H HashUint, T any](h Hasher[H], elems []T) H {
	result := Combine(h.seed, HashInteger(h.seed, len(elems)))
	for i := range elems {
		result = Combine(result, h.Hash(elems[i]))
	}
	return result
}

// HashFold hashes elements under the fixed-array/view rule: fold Combine
// over the elements starting from the seed, with no length prefix. Empty
// input returns the seed unchanged.
func HashFold[H HashUint, T any](h Hasher[H], elems []T) H {
	result := h.seed
	for i := range elems {
		result = Combine(result, h.Hash(elems[i]))
	}
	return result
}
