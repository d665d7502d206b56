//go:build amd64

package rsonpath

import "github.com/klauspost/cpuid/v2"

// SupportedCPU reports whether the running CPU has the features the word
// kernel in internal/seq dispatches on (AVX2). When false, Count still
// works correctly through the portable scalar fallback, just slower.
func SupportedCPU() bool {
	return cpuid.CPU.Supports(cpuid.AVX2)
}
