package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrNoGlyphs is returned by NewFont when the glyph table is empty.
	ErrNoGlyphs = errors.New("glyph: font has no glyphs")

	// ErrGlyphsUnsorted is returned by NewFont when the glyph table is not
	// sorted strictly ascending by codepoint (duplicates count as unsorted).
	ErrGlyphsUnsorted = errors.New("glyph: glyph table not sorted by codepoint")

	// ErrKerningUnsorted is returned by NewFont when the kerning table is not
	// sorted strictly ascending by (first, second) glyph index pair.
	ErrKerningUnsorted = errors.New("glyph: kerning table not sorted by glyph pair")

	// ErrQuadsFull is returned by DrawText when the destination buffer is too
	// small for the text. The buffer is filled up to its length; nothing is
	// written past it.
	ErrQuadsFull = errors.New("glyph: quad buffer full")
)
