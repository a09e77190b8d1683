package glyph

import (
	"math"
	"unicode/utf8"
)

// Alignment specifies horizontal text alignment within the wrap width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines within the wrap width.
	AlignCenter
	// AlignRight aligns lines to the right edge of the wrap width.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Style attaches a Font and an arbitrary per-run payload to a run of text.
// The payload type is a type parameter rather than an untyped pointer;
// embedders use it for color, effects or whatever their renderer needs.
type Style[T any] struct {
	Font *Font
	Data T
}

// PlacedGlyph is one entry of a Layout's output buffer: a glyph positioned
// relative to the layout origin, together with the Style it was added under.
//
// X and Y may be mutated in place before quad conversion, e.g. for wave or
// shake effects. Entries stay valid until the next AddText, AddGlyphs or
// Reset call on the owning Layout.
type PlacedGlyph[T any] struct {
	Style *Style[T]
	Glyph *Glyph
	X, Y  float64
}

// Quad converts the placed glyph into a render quad, with the layout
// origin anchored at (x, y).
func (p *PlacedGlyph[T]) Quad(x, y float64) Quad {
	return quadFor(p.Glyph, x+p.X, y+p.Y)
}

// chunkCap bounds the scratch buffer holding one wrap chunk (a word, or a
// single glyph in character-wrap mode). A word longer than this degrades
// to character wrapping: the full scratch is flushed as its own chunk and
// accumulation continues.
const chunkCap = 128

// Layout is a stateful multi-call builder that wraps styled text into
// lines and accumulates positioned glyphs in a fixed-capacity output
// buffer.
//
// The capacity is chosen at construction and never grows; embedders
// pre-budget their glyph counts, and overflow is reported through
// Truncated instead of reallocating. Feed text with AddText or AddGlyphs,
// close the final line with Compute, then read (and freely mutate) the
// output via Glyphs.
//
// A Layout is not safe for concurrent use; lay out independent text
// blocks with one Layout each.
type Layout[T any] struct {
	glyphs []PlacedGlyph[T]

	wrapWidth float64
	align     Alignment

	cursorX float64
	cursorY float64

	// lineStart indexes the first glyph of the currently open line.
	// Everything from lineStart on is shifted when the line closes.
	lineStart  int
	lineHeight float64

	truncated bool
}

// NewLayout creates a Layout whose output buffer holds at most capacity
// glyphs. The new Layout is ready for AddText with wrapping disabled and
// left alignment; call Reset to change either.
func NewLayout[T any](capacity int) *Layout[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Layout[T]{glyphs: make([]PlacedGlyph[T], 0, capacity)}
}

// Reset clears all accumulated glyphs and cursors and configures wrapping.
//
// wrapWidth <= 0 disables wrapping entirely: lines then break only at
// line feeds, and alignment shifts are relative to a zero-width box.
func (l *Layout[T]) Reset(wrapWidth float64, align Alignment) {
	l.glyphs = l.glyphs[:0]
	l.wrapWidth = wrapWidth
	l.align = align
	l.cursorX = 0
	l.cursorY = 0
	l.lineStart = 0
	l.lineHeight = 0
	l.truncated = false
}

// AddText appends UTF-8 text in word-wrap mode: runs of non-whitespace
// glyphs form indivisible chunks, and a chunk that would overflow a
// non-empty line moves to the next line. Kerning applies inside chunks.
//
// Whitespace handling: a line feed closes the current line even when the
// line is empty; a space advances the cursor only on a non-empty line
// (no leading-space indent); a carriage return only delimits chunks.
// Codepoints without a glyph are skipped and reset the kerning context.
//
// The return value is the cumulative number of glyphs placed across all
// calls since Reset. If the output buffer fills up, placement stops for
// the remainder of the call and Truncated reports true.
func (l *Layout[T]) AddText(style *Style[T], text string) int {
	return l.add(style, text, false)
}

// AddGlyphs appends UTF-8 text in character-wrap mode: every glyph is its
// own chunk, so lines may break between any two glyphs. Use this for
// scripts without whitespace word boundaries. No kerning is applied.
// Whitespace, return value and truncation behave as in AddText.
func (l *Layout[T]) AddGlyphs(style *Style[T], text string) int {
	return l.add(style, text, true)
}

func (l *Layout[T]) add(style *Style[T], text string, perGlyph bool) int {
	font := style.Font

	var spaceAdvance float64
	if sp, ok := font.Lookup(' '); ok {
		spaceAdvance = sp.Advance
	}
	// A taller style on the same line raises the whole line.
	l.lineHeight = math.Max(l.lineHeight, font.metrics.LineHeight)

	var (
		chunk       [chunkCap]PlacedGlyph[T]
		chunkLen    int
		chunkCursor float64
		prevGID     uint32
	)

	sc := scanner{text: text}
	for {
		r, ok := sc.next()
		if !ok {
			break
		}
		if r == utf8.RuneError {
			// invalid byte sequence, skip and reset kerning
			prevGID = 0
			continue
		}

		if isWhitespace(r) {
			if !l.flushChunk(chunk[:chunkLen], chunkCursor, font) {
				return len(l.glyphs)
			}
			chunkLen, chunkCursor = 0, 0

			switch r {
			case '\n':
				l.closeLine(font)
			case ' ':
				if l.cursorX > 0 {
					l.cursorX += spaceAdvance
				}
			}
			prevGID = 0
			continue
		}

		g, ok := font.Lookup(r)
		if !ok {
			prevGID = 0
			continue
		}

		if chunkLen == chunkCap {
			// Over-long word: flush what we have and wrap it like
			// characters. The chunk boundary drops one kern pair.
			if !l.flushChunk(chunk[:chunkLen], chunkCursor, font) {
				return len(l.glyphs)
			}
			chunkLen, chunkCursor = 0, 0
			prevGID = 0
		}

		if prevGID != 0 {
			chunkCursor += font.Kern(prevGID, g.GID)
		}
		prevGID = g.GID

		chunk[chunkLen] = PlacedGlyph[T]{
			Style: style,
			Glyph: g,
			X:     chunkCursor + g.BearingX,
			Y:     g.BearingY,
		}
		chunkLen++
		chunkCursor += g.Advance

		if perGlyph {
			if !l.flushChunk(chunk[:chunkLen], chunkCursor, font) {
				return len(l.glyphs)
			}
			chunkLen, chunkCursor = 0, 0
			prevGID = 0
		}
	}

	l.flushChunk(chunk[:chunkLen], chunkCursor, font)
	return len(l.glyphs)
}

// flushChunk moves one completed chunk from the scratch buffer into the
// output buffer, breaking the line first when the chunk would overflow a
// non-empty line. It reports false when the output buffer cannot hold the
// chunk, in which case nothing is placed and the Layout is marked
// truncated.
func (l *Layout[T]) flushChunk(chunk []PlacedGlyph[T], advance float64, font *Font) bool {
	if len(chunk) == 0 {
		return true
	}
	if len(l.glyphs)+len(chunk) > cap(l.glyphs) {
		l.truncated = true
		return false
	}

	// wrapWidth <= 0 means never wrap; the check must not fall out of the
	// comparison below or non-positive widths would wrap on every chunk.
	if l.wrapWidth > 0 && l.cursorX > 0 && l.cursorX+spanWidth(chunk) > l.wrapWidth {
		l.closeLine(font)
	}

	for i := range chunk {
		g := chunk[i]
		g.X += l.cursorX
		g.Y += l.cursorY
		l.glyphs = append(l.glyphs, g)
	}

	// Advance by the chunk's advance sum, not its visual width: advances
	// carry the inter-chunk spacing, visual width would be off by
	// (advance - width) at the seam.
	l.cursorX += advance
	return true
}

// closeLine finishes the currently open line: alignment is applied to its
// glyphs exactly once, the vertical cursor moves down by the line height,
// and a new empty line opens at the left edge.
func (l *Layout[T]) closeLine(font *Font) {
	l.cursorX = 0
	l.cursorY += l.lineHeight
	l.alignLine()
	l.lineStart = len(l.glyphs)
	l.lineHeight = font.metrics.LineHeight
}

// alignLine shifts the open line's glyphs according to the alignment mode.
func (l *Layout[T]) alignLine() {
	line := l.glyphs[l.lineStart:]
	if len(line) == 0 || l.align == AlignLeft {
		return
	}
	shift := l.wrapWidth - spanWidth(line)
	if l.align == AlignCenter {
		shift /= 2
	}
	for i := range line {
		line[i].X += shift
	}
}

// Compute closes and aligns the final line. Call it after all text has
// been added and before reading Glyphs.
//
// Compute is idempotent: calling it again without intervening additions
// leaves every position untouched. Text added after Compute starts a new
// alignment span on the same line.
func (l *Layout[T]) Compute() {
	l.alignLine()
	l.lineStart = len(l.glyphs)
}

// Glyphs returns the Layout's output buffer in placement order. The slice
// is live: entries may be mutated in place (e.g. to displace glyphs for
// text effects) and remain valid until the next AddText, AddGlyphs or
// Reset call.
func (l *Layout[T]) Glyphs() []PlacedGlyph[T] {
	return l.glyphs
}

// Truncated reports whether any glyphs were dropped since the last Reset
// because the output buffer was full.
func (l *Layout[T]) Truncated() bool {
	return l.truncated
}

// isWhitespace reports whether the codepoint delimits wrap chunks.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r'
}

// spanWidth returns the visual width of a contiguous run of placed
// glyphs: from the left edge of the first bounding box to the right edge
// of the last. The X positions already include each glyph's bearing.
func spanWidth[T any](span []PlacedGlyph[T]) float64 {
	first := &span[0]
	last := &span[len(span)-1]
	start := first.X - first.Glyph.BearingX
	end := last.X + last.Glyph.Width
	return end - start
}
