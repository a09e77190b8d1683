package glyph

import "unicode/utf8"

// scanner produces Unicode scalar values lazily from a string, consuming
// 1 to 4 bytes per step. It is finite and not restartable.
//
// A malformed or truncated sequence yields utf8.RuneError and the scanner
// always advances at least one byte, so a decode failure can never stall
// at the same position. The price is that a legitimately encoded U+FFFD
// in the input is indistinguishable from the error sentinel; callers skip
// both.
type scanner struct {
	text string
	pos  int
}

// next returns the next decoded scalar value. The second result is false
// once the input is exhausted.
func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.pos += size
	return r, true
}
