package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
)

// LoadFile loads a TTF or OTF font file into a glyph.Font.
func LoadFile(path string, cfg Config) (*glyph.Font, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: read font file: %w", err)
	}
	return Load(data, cfg)
}

// Load parses TTF or OTF font data, rasterizes the configured coverage
// into an alpha atlas and returns an immutable glyph.Font.
//
// Codepoints the font has no glyph for are skipped; the resulting Font
// simply misses them, which the layout core treats as a routine lookup
// miss. Zero-valued Config fields take their defaults.
func Load(data []byte, cfg Config) (*glyph.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font: %w", err)
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(math.Round(cfg.Size * 64))

	m, err := f.Metrics(&buf, ppem, font.HintingFull)
	if err != nil {
		return nil, fmt.Errorf("atlas: font metrics: %w", err)
	}
	// Positive y points down, so Descent is stored negative.
	// Height is ascent+descent+linegap, the baseline-to-baseline distance.
	metrics := glyph.Metrics{
		Ascent:     math.Round(fixedToFloat(m.Ascent)),
		Descent:    -math.Round(fixedToFloat(m.Descent)),
		LineGap:    math.Round(fixedToFloat(m.Height - m.Ascent - m.Descent)),
		LineHeight: math.Round(fixedToFloat(m.Height)),
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	atlasImg := image.NewAlpha(image.Rect(0, 0, cfg.AtlasSize, cfg.AtlasSize))
	packer := newShelfPacker(cfg.AtlasSize, cfg.AtlasSize, cfg.Padding)
	atlasScale := float64(cfg.AtlasSize)

	runes := coveredRunes(cfg.Ranges)
	glyphs := make([]glyph.Glyph, 0, len(runes))
	skipped := 0

	for _, r := range runes {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			// not covered by the font's cmap
			skipped++
			continue
		}

		// With the dot at the origin, dr.Min is the bearing and dr spans
		// the glyph's bounding box, y growing downward.
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			skipped++
			continue
		}

		g := glyph.Glyph{
			Codepoint: r,
			GID:       uint32(gid),
			BearingX:  float64(dr.Min.X),
			BearingY:  float64(dr.Min.Y),
			Width:     float64(dr.Dx()),
			Height:    float64(dr.Dy()),
			Advance:   fixedToFloat(advance),
		}

		if !dr.Empty() {
			x, y, ok := packer.place(dr.Dx(), dr.Dy())
			if !ok {
				return nil, fmt.Errorf("atlas: pack %d glyphs at size %g into %dx%d: %w",
					len(runes), cfg.Size, cfg.AtlasSize, cfg.AtlasSize, ErrAtlasFull)
			}
			dst := image.Rect(x, y, x+dr.Dx(), y+dr.Dy())
			draw.Draw(atlasImg, dst, mask, maskp, draw.Src)

			g.U0 = float64(x) / atlasScale
			g.V0 = float64(y) / atlasScale
			g.U1 = float64(x+dr.Dx()) / atlasScale
			g.V1 = float64(y+dr.Dy()) / atlasScale
		}

		glyphs = append(glyphs, g)
	}

	kerning, err := extractKerning(f, &buf, data, glyphs, ppem, cfg.Kerning)
	if err != nil {
		return nil, err
	}

	out, err := glyph.NewFont(glyph.FontData{
		Metrics: metrics,
		Glyphs:  glyphs,
		Kerning: kerning,
		Atlas: glyph.Atlas{
			Pix:      atlasImg.Pix,
			Width:    cfg.AtlasSize,
			Height:   cfg.AtlasSize,
			Channels: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: build font: %w", err)
	}

	glyph.Logger().Debug("atlas: font loaded",
		"glyphs", len(glyphs),
		"skipped", skipped,
		"kerning_pairs", len(kerning),
		"kerning_source", cfg.Kerning.String(),
		"utilization", packer.utilization(),
	)
	return out, nil
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
