//go:build arm64

package cpufeat

import "golang.org/x/sys/cpu"

// ARM64 exposes CRC32C through the optional CRC32 extension.
func hasHardwareCRC32() bool {
	return cpu.ARM64.HasCRC32
}
