// Package seq implements fixed- and arbitrary-length byte-sequence search
// and JSON structural/in-string classification helpers over byte slices.
//
// FindByteSequence and FindAnyOfSequences each have two code paths: a
// word-batched kernel
// that tests several candidate alignments per 64-bit load (selected when
// the host supports the CPU features internal/seq/word_amd64.go looks
// for and the input is large enough to amortize it), and a scalar kernel
// used as the tail handler and as the sole path on unsupported targets.
// Both must agree on every input; see parity_test.go. The other finders
// (FindByte, FindByte2, the escape-aware variants, FindNonWhitespace) are
// scalar only.
package seq

// FindByte returns the index of the first occurrence of b in s, or -1.
func FindByte(b byte, s []byte) int {
	for i, c := range s {
		if c == b {
			return i
		}
	}
	return -1
}

// FindByte2 returns the index of the first occurrence of either b1 or b2
// in s, or -1.
func FindByte2(b1, b2 byte, s []byte) int {
	for i, c := range s {
		if c == b1 || c == b2 {
			return i
		}
	}
	return -1
}

// FindByteSequence returns the first index i such that s[i:i+len(needle)]
// equals needle, or -1 if there is no such index.
//
// needle must be non-empty; this is a fatal precondition violation of the
// caller, matching rsonpath's find_byte_sequence, and panics rather than
// returning a sentinel.
func FindByteSequence(needle, hay []byte) int {
	if len(needle) == 0 {
		panic("seq: FindByteSequence called with empty needle")
	}
	if hasWordKernel && len(hay) >= wordKernelMinLen {
		return findByteSequenceWord(needle, hay)
	}
	return findByteSequenceScalar(needle, hay)
}

// findByteSequenceScalar is the reference, always-correct sliding-window
// implementation. Every fast path must degrade to this for short inputs
// and must agree with it for every input (see parity_test.go).
func findByteSequenceScalar(needle, hay []byte) int {
	if len(needle) == 1 {
		return FindByte(needle[0], hay)
	}
	n := len(needle)
	limit := len(hay) - n
	for i := 0; i <= limit; i++ {
		if hay[i] == needle[0] && equalAt(hay, i, needle) {
			return i
		}
	}
	return -1
}

func equalAt(hay []byte, at int, needle []byte) bool {
	for j := 1; j < len(needle); j++ {
		if hay[at+j] != needle[j] {
			return false
		}
	}
	return true
}

// FindAnyOfSequences returns the earliest match, across needles, of any
// sequence in needles within hay. Ties among needles that start at the
// same index are broken by the lowest index into needles. len(needles)
// must be <= 8.
//
// Returns (index, which, true) on a match, or (0, 0, false) otherwise.
func FindAnyOfSequences(needles [][]byte, hay []byte) (int, int, bool) {
	if len(needles) == 0 {
		return 0, 0, false
	}
	if len(needles) > 8 {
		panic("seq: FindAnyOfSequences supports at most 8 needles")
	}
	if hasWordKernel && len(hay) >= wordKernelMinLen {
		return findAnyOfSequencesWord(needles, hay)
	}
	return findAnyOfSequencesScalar(needles, hay)
}

func findAnyOfSequencesScalar(needles [][]byte, hay []byte) (int, int, bool) {
	for i := range hay {
		for k, n := range needles {
			if len(n) == 0 {
				continue
			}
			if i+len(n) <= len(hay) && hay[i] == n[0] && equalAt(hay, i, n) {
				return i, k, true
			}
		}
	}
	return 0, 0, false
}
