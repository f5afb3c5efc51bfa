//go:build amd64

package cpufeat

import "golang.org/x/sys/cpu"

// SSE4.2 carries the CRC32 instruction family on x86-64.
func hasHardwareCRC32() bool {
	return cpu.X86.HasSSE42
}
