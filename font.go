package glyph

import (
	"cmp"
	"slices"
)

// Glyph holds the metrics and atlas location of one codepoint in a Font.
//
// Positions derived from a Glyph follow the usual raster convention:
// positive y points down, bearings are relative to the pen position on the
// baseline (BearingY is typically negative, reaching above the baseline).
type Glyph struct {
	// Codepoint is the Unicode scalar value this glyph renders.
	Codepoint rune

	// GID is the glyph index inside the font file. It is unrelated to the
	// glyph's position in the Font's table and is used only for kerning
	// lookups. Index 0 is the font's missing-glyph slot.
	GID uint32

	// BearingX, BearingY offset the glyph's bounding box from the pen
	// position. Both are in pixels at the loaded size.
	BearingX float64
	BearingY float64

	// Width, Height are the bounding box dimensions in pixels.
	Width  float64
	Height float64

	// Advance is the horizontal pen distance to the next glyph.
	Advance float64

	// U0, V0, U1, V1 locate the glyph's image in the atlas, normalized
	// to [0, 1].
	U0, V0, U1, V1 float64
}

// KerningPair is a pairwise advance adjustment between two glyph indices.
type KerningPair struct {
	// First, Second are font glyph indices (Glyph.GID), not table positions.
	First  uint32
	Second uint32

	// Amount is the horizontal adjustment in pixels, usually negative.
	Amount float64
}

// key combines both glyph indices into a single sort key.
// The kerning table is sorted by First, then Second, so the composite
// orders identically.
func (p KerningPair) key() uint64 {
	return uint64(p.First)<<32 | uint64(p.Second)
}

// Metrics holds a font's vertical metrics in pixels at the loaded size.
type Metrics struct {
	// Ascent is the maximum height above the baseline of all glyphs.
	Ascent float64

	// Descent is the maximum extent below the baseline of all glyphs.
	// It is negative (positive y points down).
	Descent float64

	// LineGap is the spacing between one row's descent and the next
	// row's ascent.
	LineGap float64

	// LineHeight is the baseline distance between consecutive lines:
	// Ascent - Descent + LineGap.
	LineHeight float64
}

// Atlas is the bitmap packing all glyph images of a Font.
// Glyphs reference it through their normalized UV rectangles.
type Atlas struct {
	// Pix holds Width*Height*Channels bytes in row-major order.
	Pix []byte

	// Width, Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// Channels is the number of bytes per pixel (1 for an alpha atlas).
	Channels int
}

// FontData is the construction contract between a font loader and NewFont.
//
// Glyphs must be sorted strictly ascending by codepoint and Kerning strictly
// ascending by (First, Second); NewFont rejects anything else.
type FontData struct {
	Metrics Metrics
	Glyphs  []Glyph
	Kerning []KerningPair
	Atlas   Atlas
}

// Font owns a sorted glyph table, a sorted kerning table, vertical metrics
// and an atlas bitmap. It is immutable after construction and safe for
// concurrent reads.
type Font struct {
	glyphs  []Glyph
	kerning []KerningPair
	metrics Metrics
	atlas   Atlas

	// codepoints mirrors glyphs[i].Codepoint. Lookup runs on every decoded
	// codepoint, so it searches a compact dedicated array.
	codepoints []rune
}

// NewFont builds an immutable Font from loader-supplied tables.
// The glyph and kerning slices are copied; the caller may reuse them.
//
// The tables are validated here rather than trusted: a glyph table that is
// not sorted strictly ascending by codepoint yields ErrGlyphsUnsorted, a
// kerning table not sorted strictly ascending by (First, Second) yields
// ErrKerningUnsorted. An empty glyph table yields ErrNoGlyphs.
func NewFont(data FontData) (*Font, error) {
	if len(data.Glyphs) == 0 {
		return nil, ErrNoGlyphs
	}
	for i := 1; i < len(data.Glyphs); i++ {
		if data.Glyphs[i-1].Codepoint >= data.Glyphs[i].Codepoint {
			return nil, ErrGlyphsUnsorted
		}
	}
	for i := 1; i < len(data.Kerning); i++ {
		if data.Kerning[i-1].key() >= data.Kerning[i].key() {
			return nil, ErrKerningUnsorted
		}
	}

	f := &Font{
		glyphs:  slices.Clone(data.Glyphs),
		kerning: slices.Clone(data.Kerning),
		metrics: data.Metrics,
		atlas: Atlas{
			Pix:      slices.Clone(data.Atlas.Pix),
			Width:    data.Atlas.Width,
			Height:   data.Atlas.Height,
			Channels: data.Atlas.Channels,
		},
	}
	f.codepoints = make([]rune, len(f.glyphs))
	for i := range f.glyphs {
		f.codepoints[i] = f.glyphs[i].Codepoint
	}
	return f, nil
}

// Lookup returns the glyph for a codepoint, or (nil, false) when the font
// has none. A miss is a routine outcome, not an error: callers skip the
// codepoint and reset their kerning context.
//
// The returned pointer aliases the Font's table and must not be modified.
func (f *Font) Lookup(r rune) (*Glyph, bool) {
	i, ok := slices.BinarySearch(f.codepoints, r)
	if !ok {
		return nil, false
	}
	return &f.glyphs[i], true
}

// Kern returns the kerning adjustment between two glyph indices, or 0 when
// the pair is not in the table. Missing pairs are the common case and are
// not reported as errors.
func (f *Font) Kern(first, second uint32) float64 {
	want := KerningPair{First: first, Second: second}.key()
	i, ok := slices.BinarySearchFunc(f.kerning, want, func(p KerningPair, key uint64) int {
		return cmp.Compare(p.key(), key)
	})
	if !ok {
		return 0
	}
	return f.kerning[i].Amount
}

// Glyphs returns the font's glyph table, sorted ascending by codepoint.
// The slice is shared and must not be modified.
func (f *Font) Glyphs() []Glyph {
	return f.glyphs
}

// KerningPairs returns the font's kerning table, sorted ascending by
// (First, Second). The slice is shared and must not be modified.
func (f *Font) KerningPairs() []KerningPair {
	return f.kerning
}

// Metrics returns the font's vertical metrics at the loaded size.
func (f *Font) Metrics() Metrics {
	return f.metrics
}

// Atlas returns the font's atlas bitmap. Pix is shared and must not be
// modified.
func (f *Font) Atlas() Atlas {
	return f.atlas
}
