package seq

// FindUnescapedByte returns the index of the first occurrence of b in s
// whose preceding run of '\' bytes has even length (including zero), or
// -1. Ported from original_source/simdpath/src/bytes/mod.rs's
// find_unescaped_byte / is_escaped.
func FindUnescapedByte(b byte, s []byte) int {
	i := 0
	for i < len(s) {
		j := FindByte(b, s[i:])
		if j < 0 {
			return -1
		}
		if j == 0 {
			return j + i
		}
		if !isEscaped(j+i, s) {
			return j + i
		}
		i = j + i + 1
	}
	return -1
}

// FindUnescapedByte2 is FindUnescapedByte for either of two bytes.
func FindUnescapedByte2(b1, b2 byte, s []byte) int {
	i := 0
	for i < len(s) {
		j := FindByte2(b1, b2, s[i:])
		if j < 0 {
			return -1
		}
		if j == 0 {
			return j + i
		}
		if !isEscaped(j+i, s) {
			return j + i
		}
		i = j + i + 1
	}
	return -1
}

// IsEscapedAt reports whether the byte at idx in s is preceded by an
// odd-length run of '\' bytes. Exported for internal/automaton's leftward
// key-quote scan, which needs to validate escape parity at a landing
// point found by a raw byte scan rather than by consuming structural
// events (see spec.md §4.5, §9).
func IsEscapedAt(idx int, s []byte) bool {
	return isEscaped(idx, s)
}

// isEscaped reports whether the byte at idx is preceded by an odd-length
// run of '\' bytes (and is therefore an escaped character, not a
// structural one).
func isEscaped(idx int, s []byte) bool {
	if idx == 0 {
		return false
	}
	count := 0
	for k := idx - 1; k >= 0 && s[k] == '\\'; k-- {
		count++
	}
	return count%2 != 0
}

// whitespaceBytes holds exactly the four bytes RFC 4627 §2 designates as
// insignificant JSON whitespace.
var whitespaceBytes = [4]byte{' ', '\t', '\n', '\r'}

// FindNonWhitespace returns the index of the first byte in s that is not
// one of {SP, TAB, LF, CR}, or -1 if s is entirely whitespace.
//
// This is a stub per spec.md §4.4: the automaton assumes no whitespace
// appears between structural tokens, so this helper is provided for
// completeness and testing but is not on the automaton's hot path.
func FindNonWhitespace(s []byte) int {
	for i, c := range s {
		if c != whitespaceBytes[0] && c != whitespaceBytes[1] && c != whitespaceBytes[2] && c != whitespaceBytes[3] {
			return i
		}
	}
	return -1
}
