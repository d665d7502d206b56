// Package query defines the restricted JSONPath query shape this engine
// evaluates: a chain of descendant-name selectors, $..L1..L2..…..Lk.
//
// Grounded on the Label/bytes_with_quotes shape in
// original_source/simdpath/src/stackless/mod.rs; query text parsing
// itself lives in internal/parser, kept separate per spec.md §1's
// framing of query parsing as a collaborator distinct from the core.
package query

import "fmt"

// MaxLabels is the largest query this engine accepts, matching spec.md
// §3/§6's 256-label cap (the automaton's register file is sized to
// match).
const MaxLabels = 256

// Label is a single JSON object key to match at any depth, without its
// surrounding quotes.
type Label struct {
	bytes      []byte
	withQuotes []byte
}

// NewLabel builds a Label from a raw key (without quotes). The caller
// promises name contains neither '"' nor '\\', matching spec.md §3's
// precondition (enforced by internal/parser for text-derived queries).
func NewLabel(name string) Label {
	b := []byte(name)
	wq := make([]byte, 0, len(b)+2)
	wq = append(wq, '"')
	wq = append(wq, b...)
	wq = append(wq, '"')
	return Label{bytes: b, withQuotes: wq}
}

// Bytes returns the label's raw bytes, without quotes.
func (l Label) Bytes() []byte { return l.bytes }

// BytesWithQuotes returns the label bracketed by '"' on both sides, the
// form compared byte-exact against a document's raw key bytes.
func (l Label) BytesWithQuotes() []byte { return l.withQuotes }

// Len returns len(l.Bytes()).
func (l Label) Len() int { return len(l.bytes) }

func (l Label) String() string { return string(l.bytes) }

// Query is the ordered label chain $..L1..L2..…..Lk, 1 <= k <= MaxLabels.
type Query struct {
	labels []Label
}

// New builds a Query from labels in order. Panics if labels is empty or
// exceeds MaxLabels — a fatal precondition violation per spec.md §6.
func New(labels ...Label) Query {
	if len(labels) == 0 {
		panic("query: a query must have at least one label")
	}
	if len(labels) > MaxLabels {
		panic(fmt.Sprintf("query: max supported length is %d labels, got %d", MaxLabels, len(labels)))
	}
	cp := make([]Label, len(labels))
	copy(cp, labels)
	return Query{labels: cp}
}

// Labels returns the query's label chain in order.
func (q Query) Labels() []Label { return q.labels }

// Len returns the number of labels in the query.
func (q Query) Len() int { return len(q.labels) }

func (q Query) String() string {
	s := "$"
	for _, l := range q.labels {
		s += ".." + l.String()
	}
	return s
}
