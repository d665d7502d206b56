//go:build amd64

package seq

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasWordKernel gates the word-batched fast paths the same way
// coregx-coregex's simd package gates its AVX2 memchr: a package-level
// flag computed once from golang.org/x/sys/cpu and consulted on every
// call. A host without AVX2 still gets correct results, just via the
// scalar kernel, matching spec.md's "observable output must be
// independent of feature path" invariant.
var hasWordKernel = cpu.X86.HasAVX2

// wordKernelMinLen is the crossover below which the scalar kernel's setup
// cost is cheaper than batching, mirroring the 64-byte block granularity
// the teacher classifies JSON in (stage1_find_marks.go's 64-byte stride).
const wordKernelMinLen = 64

const (
	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// hasZeroByte reports whether any of the 8 bytes packed in w is zero,
// using the classic "SIMD within a register" broadcast trick: subtracting
// 1 from each byte borrows out of a zero byte (setting its high bit)
// while a nonzero byte with its high bit already clear cannot borrow that
// far, and the high-bit-clear check on ^w excludes false positives from
// bytes with their own high bit already set.
func hasZeroByte(w uint64) uint64 {
	return (w - loBits) & ^w & hiBits
}

// findByteWord scans s for b, 8 bytes per iteration via hasZeroByte on
// s XOR broadcast(b), falling back to a scalar loop for the remainder.
func findByteWord(b byte, s []byte) int {
	bcast := uint64(b) * loBits
	i := 0
	for ; i+8 <= len(s); i += 8 {
		w := binary.LittleEndian.Uint64(s[i : i+8])
		if mask := hasZeroByte(w ^ bcast); mask != 0 {
			return i + bits.TrailingZeros64(mask)/8
		}
	}
	for ; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// findByteSequenceWord locates needle in hay by word-batching the search
// for needle's first byte and verifying full equality scalarly at each
// candidate, the same two-phase shape as the AVX2 algorithm in spec.md
// §4.1 (per-position broadcast+compare, then a scalar suffix check for
// needles longer than one vector).
func findByteSequenceWord(needle, hay []byte) int {
	if len(needle) == 1 {
		return findByteWord(needle[0], hay)
	}
	n := len(needle)
	limit := len(hay) - n
	if limit < 0 {
		return -1
	}
	first := needle[0]
	i := 0
	for i <= limit {
		rel := findByteWord(first, hay[i:limit+1])
		if rel < 0 {
			return -1
		}
		cand := i + rel
		if equalAt(hay, cand, needle) {
			return cand
		}
		i = cand + 1
	}
	return -1
}

// findAnyOfSequencesWord batches the first-byte scan across all needles
// (up to 8 of them, matching the AVX2 8-lane packing in
// simdpath-codegen/src/bytes/sequences.rs) and verifies full matches, in
// needle order, at the earliest candidate position.
func findAnyOfSequencesWord(needles [][]byte, hay []byte) (int, int, bool) {
	n := len(needles)
	broadcasts := make([]uint64, n)
	for k, nd := range needles {
		if len(nd) > 0 {
			broadcasts[k] = uint64(nd[0]) * loBits
		}
	}

	i := 0
	for i < len(hay) {
		pos := -1
		j := i
		for ; j+8 <= len(hay); j += 8 {
			w := binary.LittleEndian.Uint64(hay[j : j+8])
			var combined uint64
			for k, nd := range needles {
				if len(nd) == 0 {
					continue
				}
				combined |= hasZeroByte(w ^ broadcasts[k])
			}
			if combined != 0 {
				pos = j + bits.TrailingZeros64(combined)/8
				break
			}
		}
		if pos == -1 {
			for ; j < len(hay); j++ {
				for _, nd := range needles {
					if len(nd) > 0 && hay[j] == nd[0] {
						pos = j
						break
					}
				}
				if pos != -1 {
					break
				}
			}
			if pos == -1 {
				return 0, 0, false
			}
		}
		for k, nd := range needles {
			if len(nd) == 0 {
				continue
			}
			if pos+len(nd) <= len(hay) && hay[pos] == nd[0] && equalAt(hay, pos, nd) {
				return pos, k, true
			}
		}
		i = pos + 1
	}
	return 0, 0, false
}
