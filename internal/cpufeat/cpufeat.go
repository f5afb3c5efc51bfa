// Package cpufeat detects CPU support for hardware-accelerated CRC32-C.
//
// Detection is a pure function of the hardware, so the result is computed
// once per process behind a compute-once cell and is read-only for the
// process lifetime. Safe for concurrent first use.
package cpufeat

import (
	"os"
	"strings"
	"sync"
)

// EnvOverride names the environment variable that forces the software
// CRC32-C path. Set NFX_CRC32C=soft to bypass hardware acceleration, e.g.
// when benchmarking the portable implementation. Any other value is ignored
// and auto-detection applies.
const EnvOverride = "NFX_CRC32C"

var crc32Supported = sync.OnceValue(detect)

// CRC32 reports whether the hardware CRC32-C path should be used. The first
// call performs detection; subsequent calls return the cached result.
func CRC32() bool {
	return crc32Supported()
}

func detect() bool {
	if v := os.Getenv(EnvOverride); strings.EqualFold(strings.TrimSpace(v), "soft") {
		return false
	}
	return hasHardwareCRC32()
}
