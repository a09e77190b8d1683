package atlas

import (
	"cmp"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
)

// extractKerning builds the sorted kerning table for the loaded glyph set
// according to the configured source.
func extractKerning(f *opentype.Font, buf *sfnt.Buffer, data []byte,
	glyphs []glyph.Glyph, ppem fixed.Int26_6, src KerningSource) ([]glyph.KerningPair, error) {

	switch src {
	case KernNone:
		return nil, nil
	case KernTable:
		return kernFromTable(f, buf, glyphs, ppem), nil
	case KernShaper:
		return kernFromShaper(data, glyphs, ppem)
	default: // KernAuto
		if pairs := kernFromTable(f, buf, glyphs, ppem); len(pairs) > 0 {
			return pairs, nil
		}
		return kernFromShaper(data, glyphs, ppem)
	}
}

// kernFromTable queries the font's legacy 'kern' table for every ordered
// pair of loaded glyph indices. Iterating sorted unique indices produces
// the table already sorted by (First, Second).
func kernFromTable(f *opentype.Font, buf *sfnt.Buffer, glyphs []glyph.Glyph, ppem fixed.Int26_6) []glyph.KerningPair {
	gids := uniqueGIDs(glyphs)

	var pairs []glyph.KerningPair
	for _, first := range gids {
		for _, second := range gids {
			k, err := f.Kern(buf, sfnt.GlyphIndex(first), sfnt.GlyphIndex(second), ppem, font.HintingFull)
			if err != nil || k == 0 {
				// no table, unsupported table format, or no pair
				continue
			}
			pairs = append(pairs, glyph.KerningPair{
				First:  first,
				Second: second,
				Amount: fixedToFloat(k),
			})
		}
	}
	return pairs
}

// uniqueGIDs returns the sorted distinct glyph indices of the loaded set.
// Several codepoints can map to the same glyph, so the glyph table alone
// is not pair-iteration safe.
func uniqueGIDs(glyphs []glyph.Glyph) []uint32 {
	gids := make([]uint32, 0, len(glyphs))
	for i := range glyphs {
		gids = append(gids, glyphs[i].GID)
	}
	slices.Sort(gids)
	return slices.Compact(gids)
}

// sortKerning sorts pairs by their composite (First, Second) key and drops
// duplicates, establishing the invariant glyph.NewFont checks.
func sortKerning(pairs []glyph.KerningPair) []glyph.KerningPair {
	key := func(p glyph.KerningPair) uint64 {
		return uint64(p.First)<<32 | uint64(p.Second)
	}
	slices.SortFunc(pairs, func(a, b glyph.KerningPair) int {
		return cmp.Compare(key(a), key(b))
	})
	return slices.CompactFunc(pairs, func(a, b glyph.KerningPair) bool {
		return key(a) == key(b)
	})
}
