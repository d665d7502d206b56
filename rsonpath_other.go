//go:build !amd64

package rsonpath

// SupportedCPU reports whether the running CPU has the features the word
// kernel in internal/seq dispatches on. Non-amd64 builds never use the
// word kernel, so this always reports false; Count still works correctly
// through the portable scalar fallback.
func SupportedCPU() bool {
	return false
}
