package seq

import (
	"math/rand"
	"testing"
)

// TestFindByteSequenceScalarWordParity exercises spec.md §8's universal
// invariant directly: "find_byte_sequence SIMD and scalar paths produce
// identical outputs for every input."
func TestFindByteSequenceScalarWordParity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	alphabet := []byte("ab")

	for trial := 0; trial < 500; trial++ {
		hayLen := r.Intn(300)
		hay := randBytes(r, alphabet, hayLen)

		needleLen := 1 + r.Intn(8)
		if needleLen > hayLen+2 {
			needleLen = hayLen + 1
			if needleLen == 0 {
				needleLen = 1
			}
		}
		needle := randBytes(r, alphabet, needleLen)

		want := findByteSequenceScalar(needle, hay)
		got := findByteSequenceWord(needle, hay)
		if got != want {
			t.Fatalf("trial %d: needle=%q hay=%q: scalar=%d word=%d", trial, needle, hay, want, got)
		}
	}
}

func TestFindAnyOfSequencesScalarWordParity(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	alphabet := []byte("abc")

	for trial := 0; trial < 300; trial++ {
		hay := randBytes(r, alphabet, r.Intn(300))

		n := 1 + r.Intn(8)
		needles := make([][]byte, n)
		for i := range needles {
			needles[i] = randBytes(r, alphabet, 1+r.Intn(4))
		}

		wantIdx, wantK, wantOK := findAnyOfSequencesScalar(needles, hay)
		gotIdx, gotK, gotOK := findAnyOfSequencesWord(needles, hay)
		if wantOK != gotOK || (wantOK && (wantIdx != gotIdx || wantK != gotK)) {
			t.Fatalf("trial %d: hay=%q: scalar=(%d,%d,%v) word=(%d,%d,%v)",
				trial, hay, wantIdx, wantK, wantOK, gotIdx, gotK, gotOK)
		}
	}
}

func randBytes(r *rand.Rand, alphabet []byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return b
}
