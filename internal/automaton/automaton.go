// Package automaton implements the stackless, streaming descendant-only
// JSONPath automaton: it walks a structural.Iterator's events once,
// forward, maintaining match state in a small fixed register file with
// no recursion and no heap-resident call stack.
//
// Grounded, idiom for idiom, on
// original_source/simdpath/src/stackless/mod.rs's
// descendant_only_automaton and query_to_descendant_pattern_labels.
package automaton

import (
	"github.com/azoyan/rsonpath/align"
	"github.com/azoyan/rsonpath/internal/block"
	"github.com/azoyan/rsonpath/internal/seq"
	"github.com/azoyan/rsonpath/internal/structural"
	"github.com/azoyan/rsonpath/query"
)

// Runner evaluates a compiled descendant-only query against any number
// of separate inputs. A Runner is immutable after Compile and safe for
// concurrent use from multiple goroutines against distinct inputs,
// matching spec.md §5.
type Runner struct {
	labels []query.Label
}

// Compile builds a Runner for q. Compilation is O(k) in the query
// length. Panics if q has more labels than query.MaxLabels — a fatal
// precondition violation, matching
// original_source's StacklessRunner::compile_query assertion.
func Compile(q query.Query) *Runner {
	labels := q.Labels()
	if len(labels) > query.MaxLabels {
		panic("automaton: query exceeds the maximum supported number of labels")
	}
	return &Runner{labels: labels}
}

// Count runs the automaton over in and returns the number of full-path
// matches. O(n) in the input length, constant memory beyond the input
// and the runner's fixed register file.
func (r *Runner) Count(in *align.Input) int {
	events := structural.New(block.New(in.Bytes()))
	return r.run(in, events)
}

// eventSource is the minimal interface run needs, letting tests drive
// the automaton with a canned event sequence.
type eventSource interface {
	Next() (structural.Event, bool)
}

// run is the descendant-only automaton proper: depth tracking, state
// retraction on Closing, and the colon-candidate leftward key scan on
// Colon. See spec.md §4.5 for the transition table this implements.
func (r *Runner) run(in *align.Input, events eventSource) int {
	doc := in.Bytes()
	lastLabel := len(r.labels)

	depth := 0
	state := 1
	count := 0
	var regs [query.MaxLabels + 1]int

	// peekable wrapper: the Colon transition needs to know whether the
	// following event is an Opening, matching
	// block_event_source.peek() in the Rust source.
	var pending *structural.Event
	next := func() (structural.Event, bool) {
		if pending != nil {
			e := *pending
			pending = nil
			return e, true
		}
		return events.Next()
	}
	peek := func() (structural.Event, bool) {
		if pending == nil {
			e, ok := events.Next()
			if !ok {
				return structural.Event{}, false
			}
			pending = &e
		}
		return *pending, true
	}

	for {
		e, ok := next()
		if !ok {
			break
		}
		switch e.Kind {
		case structural.Closing:
			if depth > 0 {
				depth--
			}
			if depth <= regs[state-1] {
				if state > 1 {
					state--
				}
			}
		case structural.Opening:
			depth++
		case structural.Colon:
			following, hasFollowing := peek()
			candidateOK := (hasFollowing && following.Kind == structural.Opening) || state == lastLabel
			if !candidateOK {
				continue
			}
			label := r.labels[state-1]
			length := label.Len()
			if e.Idx < length+2 {
				continue
			}
			closingQuote := findClosingKeyQuote(doc, e.Idx-1)
			if closingQuote < 0 {
				continue
			}
			openingQuote := closingQuote - length - 1
			if openingQuote < 0 {
				continue
			}
			slice := in.Slice(openingQuote, closingQuote+1)
			if seq.FindByteSequence(label.BytesWithQuotes(), slice) != 0 {
				continue
			}
			if state == lastLabel {
				count++
			} else {
				state++
				regs[state-1] = depth
			}
		}
	}
	return count
}

// findClosingKeyQuote scans leftward from idx for the nearest '"' that is
// not itself escaped, i.e. not preceded by an odd-length run of '\'. This
// resolves spec.md §4.5's flagged open question (a byte scan landing on
// an escaped quote) by validating escape parity at the landing point
// rather than assuming JSON shape guarantees it can never happen.
func findClosingKeyQuote(doc []byte, from int) int {
	for i := from; i >= 0; i-- {
		if doc[i] != '"' {
			continue
		}
		if !seq.IsEscapedAt(i, doc) {
			return i
		}
	}
	return -1
}
