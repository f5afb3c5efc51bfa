//go:build !amd64 && !arm64

package cpufeat

// If support cannot be determined, assume unsupported and use the software
// path. Correctness is unaffected; only throughput varies.
func hasHardwareCRC32() bool {
	return false
}
