package glyph

import (
	"iter"
	"unicode/utf8"
)

// TextWidth returns the visual width of a single line of text: the
// distance from the left edge of the first glyph's bounding box to the
// right edge of the last glyph's bounding box, including kerning.
//
// Because the bearing correction applies only at the two ends, TextWidth
// is not additive: TextWidth(a+b) != TextWidth(a)+TextWidth(b) in general.
//
// Codepoints without a glyph contribute nothing and reset the kerning
// context. Text with no mapped glyphs measures 0.
func TextWidth(f *Font, text string) float64 {
	var (
		cursor  float64
		prevGID uint32
		first   *Glyph
		last    *Glyph
	)

	sc := scanner{text: text}
	for {
		r, ok := sc.next()
		if !ok {
			break
		}
		g, ok := f.Lookup(r)
		if r == utf8.RuneError || !ok {
			// invalid byte sequence or codepoint not in font
			prevGID = 0
			continue
		}

		if first == nil {
			first = g
		}
		last = g

		if prevGID != 0 {
			cursor += f.Kern(prevGID, g.GID)
		}
		cursor += g.Advance
		prevGID = g.GID
	}

	if first == nil {
		return 0
	}

	start := first.BearingX
	end := cursor - last.Advance + last.BearingX + last.Width
	return end - start
}

// Quads returns an iterator over the render quads of a single line of text
// anchored at (x, y), where y is the baseline. Wrapping and newline
// characters are not handled; use Layout for multi-line text.
func Quads(f *Font, text string, x, y float64) iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		cursorX := x
		var prevGID uint32

		sc := scanner{text: text}
		for {
			r, ok := sc.next()
			if !ok {
				return
			}
			g, ok := f.Lookup(r)
			if r == utf8.RuneError || !ok {
				prevGID = 0
				continue
			}

			if prevGID != 0 {
				cursorX += f.Kern(prevGID, g.GID)
			}
			if !yield(quadFor(g, cursorX+g.BearingX, y+g.BearingY)) {
				return
			}
			cursorX += g.Advance
			prevGID = g.GID
		}
	}
}

// AppendQuads appends the render quads for a single line of text to dst
// and returns the extended slice.
func AppendQuads(dst []Quad, f *Font, text string, x, y float64) []Quad {
	for q := range Quads(f, text, x, y) {
		dst = append(dst, q)
	}
	return dst
}

// DrawText generates render quads for a single line of text anchored at
// (x, y) into a caller-supplied buffer and returns the number written.
//
// A nil buffer selects size-query mode: DrawText returns the number of
// quads the text would produce without writing anything.
//
// When the buffer is too small, DrawText fills it completely and returns
// (len(quads), ErrQuadsFull); it never writes past the buffer.
func DrawText(f *Font, text string, x, y float64, quads []Quad) (int, error) {
	n := 0
	for q := range Quads(f, text, x, y) {
		if quads == nil {
			n++
			continue
		}
		if n >= len(quads) {
			return n, ErrQuadsFull
		}
		quads[n] = q
		n++
	}
	return n, nil
}
