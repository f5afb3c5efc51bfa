package hashing

// HashUint constrains hash values to the two supported widths. Every
// primitive and combinator in this package is closed over this set: no other
// width is a valid hash output.
type HashUint interface {
	~uint32 | ~uint64
}

// Integer matches any built-in integral type, signed or unsigned, including
// named types (Go's spelling of enums).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float matches the two IEEE-754 binary floating-point types.
type Float interface {
	~float32 | ~float64
}

// is64 reports whether H is the 64-bit hash width. The comparison folds to a
// constant after instantiation, so width branches cost nothing at runtime.
func is64[H HashUint]() bool {
	return uint64(^H(0)) > 1<<32-1
}

// defaultSeed returns the FNV offset basis matching the width of H.
func defaultSeed[H HashUint]() H {
	if is64[H]() {
		basis := uint64(FNVOffsetBasis64)
		return H(basis)
	}
	return H(FNVOffsetBasis32)
}
