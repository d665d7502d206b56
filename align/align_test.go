package align

import (
	"testing"

	"github.com/azoyan/rsonpath/internal/block"
)

func TestNewPadsToBlockSize(t *testing.T) {
	in := New([]byte("hello"))
	if in.Len() != 5 {
		t.Errorf("Len() = %d, want 5", in.Len())
	}
	if len(in.Bytes())%block.Size != 0 {
		t.Errorf("Bytes() length %d is not a multiple of block.Size", len(in.Bytes()))
	}
	if string(in.Bytes()[:5]) != "hello" {
		t.Errorf("Bytes() prefix = %q, want %q", in.Bytes()[:5], "hello")
	}
	for i := 5; i < len(in.Bytes()); i++ {
		if in.Bytes()[i] != 0 {
			t.Fatalf("padding byte at %d = %d, want 0", i, in.Bytes()[i])
		}
	}
}

func TestNewDoesNotAliasInput(t *testing.T) {
	b := []byte("abc")
	in := New(b)
	b[0] = 'z'
	if in.At(0) != 'a' {
		t.Errorf("Input aliased caller's slice")
	}
}

func TestNewExactMultipleOfBlockSize(t *testing.T) {
	b := make([]byte, block.Size*2)
	in := New(b)
	if len(in.Bytes()) != block.Size*2 {
		t.Errorf("Bytes() length = %d, want %d", len(in.Bytes()), block.Size*2)
	}
}
