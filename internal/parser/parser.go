// Package parser parses the restricted JSONPath grammar this engine
// supports — $ followed by one or more ..name descendant segments — into
// a query.Query.
//
// This is the concrete implementation of the "query text parsing"
// external collaborator spec.md §1 scopes out of the core; array
// indexing, filters, wildcards, unions, and whitespace between tokens are
// explicit non-goals and are rejected with a SyntaxError rather than
// silently mis-parsed.
package parser

import (
	"fmt"

	"github.com/azoyan/rsonpath/query"
)

// SyntaxError reports a malformed query string and the byte offset at
// which parsing failed.
type SyntaxError struct {
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rsonpath: syntax error at byte %d: %s", e.Pos, e.Message)
}

// Parse parses text, which must match `$(\.\.[^.\[\]=*"'\\ \t\n\r]+)+`
// exactly, into a query.Query.
func Parse(text string) (query.Query, error) {
	if len(text) == 0 || text[0] != '$' {
		return query.Query{}, &SyntaxError{Pos: 0, Message: "query must start with '$'"}
	}
	i := 1
	var labels []query.Label

	for i < len(text) {
		if i+1 >= len(text) || text[i] != '.' || text[i+1] != '.' {
			return query.Query{}, &SyntaxError{Pos: i, Message: "expected '..' before a label"}
		}
		i += 2
		start := i
		for i < len(text) && isLabelByte(text[i]) {
			i++
		}
		if i == start {
			return query.Query{}, &SyntaxError{Pos: i, Message: "expected a non-empty label name"}
		}
		labels = append(labels, query.NewLabel(text[start:i]))
	}

	if len(labels) == 0 {
		return query.Query{}, &SyntaxError{Pos: 1, Message: "query must contain at least one descendant label"}
	}
	if len(labels) > query.MaxLabels {
		return query.Query{}, &SyntaxError{
			Pos:     len(text),
			Message: fmt.Sprintf("query has %d labels, max supported is %d", len(labels), query.MaxLabels),
		}
	}
	return query.New(labels...), nil
}

// isLabelByte reports whether c may appear in a label name: anything but
// '.', '[', ']', '=', '*', quote characters, '\\', and whitespace — the
// bytes that would signal array indexing, filters, wildcards, unions,
// escaping, or a token boundary this grammar does not support.
func isLabelByte(c byte) bool {
	switch c {
	case '.', '[', ']', '=', '*', '"', '\'', '\\', ' ', '\t', '\n', '\r':
		return false
	default:
		return true
	}
}
