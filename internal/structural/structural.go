// Package structural turns quote-classified blocks into a stream of
// JSON structural events ('{', '}', ':'), skipping anything inside a
// string literal.
//
// Grounded on spec.md §4.4 and on the trailing-zero-count bit-walking
// idiom used throughout stage1_find_marks_amd64.go / flatten_bits_amd64.go
// in the minio-simdjson-go teacher (iterate set bits via TrailingZeros +
// clear-lowest-bit, rather than a per-byte scan once a mask is in hand).
package structural

import (
	"math/bits"

	"github.com/azoyan/rsonpath/internal/block"
	"github.com/azoyan/rsonpath/internal/quotes"
)

// Kind identifies which structural character an Event reports.
type Kind uint8

const (
	Opening Kind = iota // '{'
	Closing             // '}'
	Colon               // ':'
)

// Event is a structural character and its absolute byte offset from the
// start of the input. Events are produced in strictly increasing Idx
// order.
type Event struct {
	Kind Kind
	Idx  int
}

// BlockSource is the minimal pull interface structural.Iterator consumes;
// *block.Iterator satisfies it.
type BlockSource interface {
	Next() (block.Block, bool)
}

// Iterator emits structural events from blocks pulled from a BlockSource,
// classifying each block's in-string regions itself via an
// internal quotes.Classifier.
type Iterator struct {
	src     BlockSource
	qc      *quotes.Classifier
	base    int
	pending []Event
	pos     int
}

// New returns an Iterator reading blocks from src.
func New(src BlockSource) *Iterator {
	return &Iterator{src: src, qc: quotes.New()}
}

// Next returns the next structural event, or (Event{}, false) once the
// input is exhausted.
func (it *Iterator) Next() (Event, bool) {
	for it.pos >= len(it.pending) {
		b, ok := it.src.Next()
		if !ok {
			return Event{}, false
		}
		within := it.qc.Next(b)
		out := it.base
		it.pending = classifyBlock(b, within, out)
		it.pos = 0
		it.base += block.Size
	}
	e := it.pending[it.pos]
	it.pos++
	return e, true
}

// classifyBlock computes the {, }, : masks for b restricted to
// out-of-string bytes and merges them into absolute-offset events in
// ascending order, per spec.md §4.4 ("implementations may either merge
// the three masks position-by-position or process them separately and
// order externally — the observable order is the invariant").
func classifyBlock(b block.Block, withinQuotes uint64, base int) []Event {
	var open, closeM, colon uint64
	for i := 0; i < block.Size; i++ {
		switch b[i] {
		case '{':
			open |= 1 << uint(i)
		case '}':
			closeM |= 1 << uint(i)
		case ':':
			colon |= 1 << uint(i)
		}
	}
	outOfString := ^withinQuotes
	open &= outOfString
	closeM &= outOfString
	colon &= outOfString

	events := make([]Event, 0, bits.OnesCount64(open)+bits.OnesCount64(closeM)+bits.OnesCount64(colon))

	// Walk the three masks in lockstep by repeatedly taking the lowest set
	// bit across all of them (TrailingZeros64 + clear-lowest-bit), the same
	// idiom find_structural_bits/flatten_bits use to turn a bitmask into an
	// ascending sequence of indices without a per-byte scan.
	for open != 0 || closeM != 0 || colon != 0 {
		bestIdx := block.Size
		bestKind := Opening
		if open != 0 {
			if i := bits.TrailingZeros64(open); i < bestIdx {
				bestIdx, bestKind = i, Opening
			}
		}
		if closeM != 0 {
			if i := bits.TrailingZeros64(closeM); i < bestIdx {
				bestIdx, bestKind = i, Closing
			}
		}
		if colon != 0 {
			if i := bits.TrailingZeros64(colon); i < bestIdx {
				bestIdx, bestKind = i, Colon
			}
		}
		events = append(events, Event{Kind: bestKind, Idx: base + bestIdx})
		clear := ^(uint64(1) << uint(bestIdx))
		switch bestKind {
		case Opening:
			open &= clear
		case Closing:
			closeM &= clear
		case Colon:
			colon &= clear
		}
	}
	return events
}
