// Package align provides the block-aligned input buffer the rest of the
// pipeline consumes: a byte slice padded to a whole number of blocks so
// the block iterator never has to special-case a short final read. The
// buffer is an ordinary heap allocation; its start is not page-aligned.
//
// Grounded on stage1_find_marks.go's own tail handling (copying the
// remainder of the input into a zero/space-padded [64]byte buffer before
// the final classification pass) from the minio-simdjson-go teacher.
package align

import (
	"os"

	"github.com/azoyan/rsonpath/internal/block"
)

// Input is an immutable, block-aligned byte buffer. Its Len reports the
// length of the original content; Bytes returns the full padded buffer
// (content followed by zero bytes).
type Input struct {
	buf     []byte
	dataLen int
}

// New pads b to a multiple of block.Size and wraps it. b is copied; the
// returned Input does not alias the caller's slice.
func New(b []byte) *Input {
	padded := make([]byte, padLen(len(b)))
	copy(padded, b)
	return &Input{buf: padded, dataLen: len(b)}
}

// NewFromFile reads path and wraps its contents via New.
func NewFromFile(path string) (*Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(b), nil
}

func padLen(n int) int {
	if n%block.Size == 0 {
		return n
	}
	return n + (block.Size - n%block.Size)
}

// Len returns the length of the original, unpadded content.
func (in *Input) Len() int {
	return in.dataLen
}

// Bytes returns the full padded buffer. Callers may index into it up to
// len(Bytes())-1; bytes at or beyond Len() are zero padding, never part
// of the original document.
func (in *Input) Bytes() []byte {
	return in.buf
}

// At returns the byte at absolute offset i in the original content.
func (in *Input) At(i int) byte {
	return in.buf[i]
}

// Slice returns in.Bytes()[lo:hi], a relaxed 32/64-byte window per
// spec.md §3's "addressable as overlapping 32-byte windows".
func (in *Input) Slice(lo, hi int) []byte {
	return in.buf[lo:hi]
}
