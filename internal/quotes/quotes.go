// Package quotes classifies the bytes of a block as lying inside or
// outside a JSON string literal, carrying escape and in-string state
// across block boundaries.
//
// Grounded on spec.md §4.3 and on the carried-state shape of
// find_odd_backslash_sequences_amd64.go / find_quote_mask_and_bits_amd64.go
// in the minio-simdjson-go teacher (prev_iter_ends_odd_backslash,
// prev_iter_inside_quote threaded explicitly block to block), reimplemented
// as a portable inclusive prefix-XOR scan rather than carry-less multiply.
package quotes

import "github.com/azoyan/rsonpath/internal/block"

// Classifier holds the two bits of state that must carry across blocks:
// whether an odd-length run of backslashes is still open at the block
// boundary, and whether the scan is currently inside a string literal.
type Classifier struct {
	backslashCarry bool
	inString       bool
}

// New returns a Classifier starting outside any string, with no pending
// backslash run.
func New() *Classifier {
	return &Classifier{}
}

// Next computes the in-string bitmask for b: bit i is set iff byte i of b
// lies inside a JSON string literal, inclusive of the literal's opening
// quote byte and exclusive of its closing quote byte (the latter is the
// byte at which the scan transitions back out). Escaped quotes (preceded
// by an odd-length run of '\') never toggle the in-string state.
func (c *Classifier) Next(b block.Block) uint64 {
	var quoteMask uint64
	for i := 0; i < block.Size; i++ {
		if b[i] == '"' {
			quoteMask |= 1 << uint(i)
		}
	}

	escaped := c.escapedQuoteMask(b, quoteMask)
	unescapedQuotes := quoteMask &^ escaped

	var mask uint64
	state := c.inString
	for i := 0; i < block.Size; i++ {
		if unescapedQuotes&(1<<uint(i)) != 0 {
			state = !state
		}
		if state {
			mask |= 1 << uint(i)
		}
	}
	c.inString = state
	return mask
}

// escapedQuoteMask marks every quote byte immediately preceded by an
// odd-length run of backslashes, carrying the run's parity across the
// block boundary via c.backslashCarry.
func (c *Classifier) escapedQuoteMask(b block.Block, quoteMask uint64) uint64 {
	var escaped uint64
	oddRun := c.backslashCarry
	for i := 0; i < block.Size; i++ {
		if b[i] == '\\' {
			oddRun = !oddRun
			continue
		}
		if quoteMask&(1<<uint(i)) != 0 && oddRun {
			escaped |= 1 << uint(i)
		}
		oddRun = false
	}
	c.backslashCarry = oddRun
	return escaped
}

// FlipQuotesBit toggles the in-string parity carried into the next block.
// Exists for an external consumer that parsed one quote out-of-band, per
// spec.md §4.3 and §9; the shipped automaton never calls it.
func (c *Classifier) FlipQuotesBit() {
	c.inString = !c.inString
}
