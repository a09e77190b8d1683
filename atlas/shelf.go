package atlas

// shelfPacker packs glyph rectangles into horizontal shelves.
// Simple and fast; glyphs rasterized at one size are near-uniform in
// height, which is the case shelf packing handles well.
//
// Each shelf spans the full atlas width and has the height of its tallest
// item. Items go left-to-right on the lowest shelf tall enough to hold
// them; when none fits, a new shelf opens below.
type shelfPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

// shelf is one horizontal strip of the atlas.
type shelf struct {
	y      int // top edge
	height int // tallest item placed so far
	x      int // next free slot
}

func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// place finds room for a w x h rectangle and returns its top-left corner.
// ok is false when the atlas is full.
func (p *shelfPacker) place(w, h int) (x, y int, ok bool) {
	paddedW := w + p.padding
	paddedH := h + p.padding
	if paddedW > p.width {
		return 0, 0, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if h > s.height || s.x+paddedW > p.width {
			continue
		}
		x, y = s.x, s.y
		s.x += paddedW
		p.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if n := len(p.shelves); n > 0 {
		last := &p.shelves[n-1]
		newY = last.y + last.height + p.padding
	}
	if newY+paddedH > p.height {
		return 0, 0, false
	}

	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: paddedW})
	p.usedArea += w * h
	return 0, newY, true
}

// utilization returns the fraction of atlas area covered by glyphs.
func (p *shelfPacker) utilization() float64 {
	total := p.width * p.height
	if total == 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}
