// Package glyph turns UTF-8 text plus a font's glyph and kerning tables
// into positioned glyph placements ready to become texture-mapped quads.
//
// # Overview
//
// glyph is a small text layout engine for embedders (game and UI engines)
// that want direct control over text rendering. It deliberately stops at
// quad generation: you hand the quads and the font's atlas bitmap to your
// own renderer. There is no script shaping, no bidi reordering and no GPU
// code in this module.
//
// A Font holds an immutable, sorted glyph table, a sorted kerning table,
// vertical metrics and an atlas bitmap. Fonts are built by the
// companion atlas package (or by any loader that satisfies the FontData
// contract) and are safe for concurrent reads.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyph"
//	    "github.com/gogpu/glyph/atlas"
//	)
//
//	font, err := atlas.LoadFile("Roboto-Regular.ttf", atlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layout := glyph.NewLayout[struct{}](1024)
//	layout.Reset(300, glyph.AlignLeft)
//	layout.AddText(&glyph.Style[struct{}]{Font: font}, "Hello, wrapped world!")
//	layout.Compute()
//
//	for i := range layout.Glyphs() {
//	    quad := layout.Glyphs()[i].Quad(40, 40)
//	    // feed quad to your renderer, sampling the atlas at quad.U0..U1
//	}
//
// # Coordinate conventions
//
// Positive y points down. The y coordinate passed to DrawText and
// PlacedGlyph.Quad is the baseline; glyph bearings are baseline-relative
// and may be negative. Atlas UV coordinates are normalized to [0, 1].
//
// # Architecture
//
//   - Font, Lookup, Kern: binary-searched read-only tables
//   - TextWidth, DrawText, Quads: single-line measuring and quad output
//   - Layout: stateful word/character wrapping with alignment
//   - atlas: TTF/OTF loading, rasterization and atlas packing
package glyph
