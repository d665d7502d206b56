package block

import "testing"

func TestIteratorYieldsAllBlocks(t *testing.T) {
	buf := make([]byte, Size*3)
	for i := range buf {
		buf[i] = byte(i / Size)
	}

	it := New(buf)
	for want := 0; want < 3; want++ {
		b, ok := it.Next()
		if !ok {
			t.Fatalf("block %d: expected ok", want)
		}
		if it.Offset() != want*Size {
			t.Errorf("block %d: Offset() = %d, want %d", want, it.Offset(), want*Size)
		}
		if b[0] != byte(want) {
			t.Errorf("block %d: first byte = %d, want %d", want, b[0], want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected iterator to be exhausted")
	}
}

func TestIteratorSkip(t *testing.T) {
	buf := make([]byte, Size*4)
	for i := range buf {
		buf[i] = byte(i / Size)
	}
	it := New(buf)
	it.Skip(2)
	b, ok := it.Next()
	if !ok || b[0] != 2 {
		t.Fatalf("after Skip(2): got block %v ok=%v, want block starting with 2", b[0], ok)
	}
}

func TestNewPanicsOnMisalignedBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for misaligned buffer")
		}
	}()
	New(make([]byte, Size+1))
}
