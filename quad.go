package glyph

// Quad is one texture-mapped rectangle ready for rendering.
//
// X, Y are the top-left corner in pixel space relative to the anchor the
// quad was generated against, with positive y pointing down. U0..V1 sample
// the font's atlas and are normalized to [0, 1].
type Quad struct {
	X, Y float64
	W, H float64

	U0, V0 float64
	U1, V1 float64
}

// quadFor builds the render quad for a glyph whose bounding box starts at
// (x, y).
func quadFor(g *Glyph, x, y float64) Quad {
	return Quad{
		X: x, Y: y,
		W: g.Width, H: g.Height,
		U0: g.U0, V0: g.V0,
		U1: g.U1, V1: g.V1,
	}
}
