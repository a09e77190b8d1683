package atlas

import (
	"slices"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Common coverage tables for Load. Any *unicode.RangeTable works; these
// exist for the default Latin case.
var (
	// BasicLatin covers the printable ASCII range U+0020..U+007F.
	BasicLatin = spanTable(0x20, 0x7f)

	// Latin1Supplement covers U+00A0..U+00FF.
	Latin1Supplement = spanTable(0xa0, 0xff)
)

// DefaultRanges returns the default coverage: Basic Latin plus the
// Latin-1 Supplement.
func DefaultRanges() []*unicode.RangeTable {
	return []*unicode.RangeTable{BasicLatin, Latin1Supplement}
}

// spanTable builds a RangeTable for one contiguous codepoint span.
func spanTable(lo, hi rune) *unicode.RangeTable {
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return rangetable.New(runes...)
}

// coveredRunes expands the range tables into a sorted, deduplicated rune
// list. The glyph table inherits this order, which keeps it sorted by
// codepoint as glyph.NewFont requires.
func coveredRunes(tables []*unicode.RangeTable) []rune {
	seen := make(map[rune]struct{})
	for _, t := range tables {
		rangetable.Visit(t, func(r rune) {
			seen[r] = struct{}{}
		})
	}
	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}
