package atlas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/rangetable"

	"github.com/gogpu/glyph"
)

// loadTestFont loads Go Regular with the given config.
func loadTestFont(t *testing.T, cfg Config) *glyph.Font {
	t.Helper()
	f, err := Load(goregular.TTF, cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return f
}

// TestLoad tests loading a real font with the default configuration.
func TestLoad(t *testing.T) {
	f := loadTestFont(t, Config{Kerning: KernNone})

	// Go Regular covers all of Latin-1; only the codepoints absent from
	// its cmap may be skipped.
	if got := len(f.Glyphs()); got < 150 {
		t.Errorf("loaded %d glyphs, want at least 150", got)
	}

	g, ok := f.Lookup('A')
	if !ok {
		t.Fatal("Lookup('A') missed")
	}
	if g.Advance <= 0 || g.Width <= 0 || g.Height <= 0 {
		t.Errorf("degenerate 'A' metrics: %+v", g)
	}
	if g.BearingY >= 0 {
		t.Errorf("'A'.BearingY = %v, want negative (above baseline)", g.BearingY)
	}
	if g.U1 <= g.U0 || g.V1 <= g.V0 {
		t.Errorf("'A' has empty texture region: %+v", g)
	}

	m := f.Metrics()
	if m.Ascent <= 0 || m.Descent >= 0 || m.LineHeight <= 0 {
		t.Errorf("implausible metrics: %+v", m)
	}

	a := f.Atlas()
	if a.Width != 512 || a.Height != 512 || a.Channels != 1 {
		t.Errorf("atlas %dx%dx%d, want 512x512x1", a.Width, a.Height, a.Channels)
	}
	if len(a.Pix) != a.Width*a.Height {
		t.Errorf("len(Pix) = %d, want %d", len(a.Pix), a.Width*a.Height)
	}
	inked := false
	for _, p := range a.Pix {
		if p != 0 {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("atlas bitmap is entirely blank")
	}

	if w := glyph.TextWidth(f, "Hello, world"); w <= 0 {
		t.Errorf("TextWidth = %v, want positive", w)
	}
}

// TestLoad_GlyphTableInvariants tests UV bounds and table order on a
// loaded font.
func TestLoad_GlyphTableInvariants(t *testing.T) {
	f := loadTestFont(t, Config{Kerning: KernNone})

	var prev rune = -1
	for _, g := range f.Glyphs() {
		if g.Codepoint <= prev {
			t.Fatalf("glyph table unsorted at %#x", g.Codepoint)
		}
		prev = g.Codepoint

		for _, uv := range []float64{g.U0, g.V0, g.U1, g.V1} {
			if uv < 0 || uv > 1 {
				t.Fatalf("glyph %#x UV out of range: %+v", g.Codepoint, g)
			}
		}
		if g.Width > 0 && (g.U1 <= g.U0 || g.V1 <= g.V0) {
			t.Fatalf("inked glyph %#x has empty texture region", g.Codepoint)
		}
	}
}

// TestLoad_CustomRange tests restricting coverage to a custom table.
func TestLoad_CustomRange(t *testing.T) {
	cfg := Config{
		Ranges:  []*unicode.RangeTable{rangetable.New('A', 'B', 'C')},
		Kerning: KernNone,
	}
	f := loadTestFont(t, cfg)

	if got := len(f.Glyphs()); got != 3 {
		t.Fatalf("loaded %d glyphs, want 3", got)
	}
	if _, ok := f.Lookup('A'); !ok {
		t.Error("Lookup('A') missed")
	}
	if _, ok := f.Lookup('D'); ok {
		t.Error("Lookup('D') hit outside configured range")
	}
}

// TestLoad_Errors tests the failure modes.
func TestLoad_Errors(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		_, err := Load(nil, DefaultConfig())
		if !errors.Is(err, ErrEmptyFontData) {
			t.Errorf("err = %v, want ErrEmptyFontData", err)
		}
	})

	t.Run("garbage data", func(t *testing.T) {
		_, err := Load([]byte("not a font"), DefaultConfig())
		if err == nil {
			t.Error("Load accepted garbage data")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := Load(goregular.TTF, Config{Size: -5})
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("err = %v, want *ConfigError", err)
		}
	})

	t.Run("atlas full", func(t *testing.T) {
		// Full Latin coverage at 64 px cannot fit a 64x64 atlas.
		_, err := Load(goregular.TTF, Config{Size: 64, AtlasSize: 64, Kerning: KernNone})
		if !errors.Is(err, ErrAtlasFull) {
			t.Errorf("err = %v, want ErrAtlasFull", err)
		}
	})
}

// TestLoad_KerningShaper tests shaper-probed kerning on a small coverage
// set.
func TestLoad_KerningShaper(t *testing.T) {
	cfg := Config{
		Ranges:  []*unicode.RangeTable{rangetable.New('A', 'T', 'V', 'o')},
		Kerning: KernShaper,
	}
	f := loadTestFont(t, cfg)

	pairs := f.KerningPairs()
	var prev uint64
	for i, p := range pairs {
		key := uint64(p.First)<<32 | uint64(p.Second)
		if i > 0 && key <= prev {
			t.Fatalf("kerning table unsorted at pair %d", i)
		}
		prev = key
		if p.Amount == 0 {
			t.Errorf("pair %d stored with zero amount", i)
		}
		if got := f.Kern(p.First, p.Second); got != p.Amount {
			t.Errorf("Kern(%d, %d) = %v, want %v", p.First, p.Second, got, p.Amount)
		}
	}
}

// TestLoad_KerningNone tests that KernNone skips extraction.
func TestLoad_KerningNone(t *testing.T) {
	f := loadTestFont(t, Config{Kerning: KernNone})
	if got := len(f.KerningPairs()); got != 0 {
		t.Errorf("KernNone produced %d pairs, want 0", got)
	}
}

// TestLoadFile tests the file-path entry point.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("write temp font: %v", err)
	}

	f, err := LoadFile(path, Config{Kerning: KernNone})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := f.Lookup('A'); !ok {
		t.Error("Lookup('A') missed")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.ttf"), DefaultConfig()); err == nil {
		t.Error("LoadFile accepted a missing file")
	}
}
