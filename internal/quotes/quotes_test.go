package quotes

import (
	"strings"
	"testing"

	"github.com/azoyan/rsonpath/internal/block"
)

func toBlock(s string) block.Block {
	if len(s) != block.Size {
		panic("test fixture must be exactly block.Size bytes")
	}
	var b block.Block
	copy(b[:], s)
	return b
}

// Fixtures adapted from minio-simdjson-go's find_quote_mask_and_bits_test.go,
// padded to exactly 64 bytes; expected masks follow this package's
// inclusive-opening/exclusive-closing convention (see Classifier.Next doc).
func TestClassifierBasicMasks(t *testing.T) {
	pad := func(s string) string {
		return s + strings.Repeat(" ", block.Size-len(s))
	}

	cases := []struct {
		input    string
		expected uint64
	}{
		{pad(`  ""`), 0x4},
		{pad(`  "-"`), 0xc},
		{pad(`  "--"`), 0x1c},
		{pad(`  "---"`), 0x3c},
		{pad(`  "-------------"`), 0xfffc},
	}

	for i, tc := range cases {
		c := New()
		mask := c.Next(toBlock(tc.input))
		if mask != tc.expected {
			t.Errorf("case %d: got 0x%x want 0x%x", i, mask, tc.expected)
		}
	}
}

func TestClassifierWholeBlockInsideString(t *testing.T) {
	input := `"` + strings.Repeat("-", block.Size-1)
	c := New()
	mask := c.Next(toBlock(input))
	if mask != ^uint64(0) {
		t.Errorf("got 0x%x want 0x%x", mask, ^uint64(0))
	}
}

func TestClassifierCarriesStateAcrossBlocks(t *testing.T) {
	first := `"` + strings.Repeat("-", block.Size-1)
	second := strings.Repeat("-", block.Size-1) + `"`

	c := New()
	m1 := c.Next(toBlock(first))
	if m1 != ^uint64(0) {
		t.Fatalf("first block: got 0x%x want all-ones", m1)
	}
	m2 := c.Next(toBlock(second))
	// everything up to (not including) the final closing quote is in-string.
	want := ^uint64(0) &^ (uint64(1) << (block.Size - 1))
	if m2 != want {
		t.Fatalf("second block: got 0x%x want 0x%x", m2, want)
	}
}

func TestClassifierEscapedQuoteDoesNotToggle(t *testing.T) {
	// Opening quote, an escaped quote inside the string, then unescaped close.
	input := `"a\"b"` + strings.Repeat(" ", block.Size-6)
	c := New()
	mask := c.Next(toBlock(input))

	// bytes 0..4 are inside the string ("a\"b), byte 5 (closing ") is not.
	for i := 0; i <= 4; i++ {
		if mask&(1<<uint(i)) == 0 {
			t.Errorf("byte %d should be inside string, mask=0x%x", i, mask)
		}
	}
	if mask&(1<<5) != 0 {
		t.Errorf("closing quote byte should not be marked inside string")
	}
}

func TestFlipQuotesBit(t *testing.T) {
	c := New()
	c.FlipQuotesBit()
	input := strings.Repeat("-", block.Size)
	mask := c.Next(toBlock(input))
	if mask != ^uint64(0) {
		t.Errorf("after flipping into in-string state, expected entire block marked inside string, got 0x%x", mask)
	}
}
