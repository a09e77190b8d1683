// Package atlas loads TrueType/OpenType fonts into glyph.Font values.
//
// Load parses a font with golang.org/x/image/font/opentype, rasterizes a
// configurable codepoint coverage at a fixed pixel size into a
// shelf-packed single-channel atlas bitmap, extracts pairwise kerning,
// and hands the result to glyph.NewFont.
//
// Coverage is expressed as unicode.RangeTable values, so any table from
// the unicode package or one built with
// golang.org/x/text/unicode/rangetable can be used:
//
//	cfg := atlas.DefaultConfig()
//	cfg.Ranges = []*unicode.RangeTable{unicode.Latin, unicode.Greek}
//	font, err := atlas.LoadFile("Roboto-Regular.ttf", cfg)
//
// Kerning can come from the font's legacy 'kern' table (fast) or be
// probed through HarfBuzz shaping via go-text/typesetting (slower, but
// covers fonts whose kerning lives in GPOS). See KerningSource.
package atlas
