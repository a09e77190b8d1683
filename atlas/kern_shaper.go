package atlas

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
)

// kernThreshold discards probe noise below 1/64 px, the smallest
// adjustment the shaper's fixed-point output can express.
const kernThreshold = 1.0 / 64

// kernFromShaper probes pairwise kerning through HarfBuzz shaping
// (go-text/typesetting). For each ordered pair of covered codepoints it
// shapes the two-rune sequence and compares the shaped advance against
// the runes shaped alone; the difference is the kerning amount. This
// covers GPOS kerning that the legacy 'kern' table misses.
//
// Pairs that shape into anything other than two glyphs (ligatures,
// cluster merges) are skipped: their advance delta is substitution, not
// kerning. Probing cost grows quadratically with the coverage size, so
// this runs at load time only.
func kernFromShaper(data []byte, glyphs []glyph.Glyph, ppem fixed.Int26_6) ([]glyph.KerningPair, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font for kerning: %w", err)
	}

	// HarfbuzzShaper has internal mutable state; this one is confined to
	// the current call.
	shaper := &shaping.HarfbuzzShaper{}

	shapeAdvance := func(runes []rune) (float64, int) {
		out := shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      ppem,
			Script:    language.LookupScript(runes[0]),
			Language:  language.NewLanguage("en"),
		})
		var total float64
		for _, g := range out.Glyphs {
			total += fixedToFloat(g.Advance)
		}
		return total, len(out.Glyphs)
	}

	// Nominal advances of each codepoint shaped alone.
	single := make(map[rune]float64, len(glyphs))
	for i := range glyphs {
		r := glyphs[i].Codepoint
		adv, n := shapeAdvance([]rune{r})
		if n != 1 {
			continue
		}
		single[r] = adv
	}

	var pairs []glyph.KerningPair
	for i := range glyphs {
		a := &glyphs[i]
		advA, okA := single[a.Codepoint]
		if !okA {
			continue
		}
		for j := range glyphs {
			b := &glyphs[j]
			advB, okB := single[b.Codepoint]
			if !okB {
				continue
			}

			total, n := shapeAdvance([]rune{a.Codepoint, b.Codepoint})
			if n != 2 {
				continue
			}
			kern := total - advA - advB
			if math.Abs(kern) < kernThreshold {
				continue
			}
			pairs = append(pairs, glyph.KerningPair{
				First:  a.GID,
				Second: b.GID,
				Amount: kern,
			})
		}
	}

	// The glyph table is codepoint-ordered, not GID-ordered, and distinct
	// codepoints may share a GID.
	return sortKerning(pairs), nil
}
