package atlas

import "unicode"

// KerningSource selects how Load extracts pairwise kerning.
type KerningSource int

const (
	// KernAuto reads the font's legacy 'kern' table first and falls back
	// to shaper probing when the table yields no pairs. This is the
	// default.
	KernAuto KerningSource = iota

	// KernTable reads only the legacy 'kern' table.
	KernTable

	// KernShaper probes every ordered pair of covered glyphs through
	// HarfBuzz shaping (go-text/typesetting). This also finds GPOS
	// kerning, at a cost quadratic in the coverage size.
	KernShaper

	// KernNone skips kerning extraction entirely.
	KernNone
)

// String returns the string representation of the kerning source.
func (k KerningSource) String() string {
	switch k {
	case KernAuto:
		return "Auto"
	case KernTable:
		return "Table"
	case KernShaper:
		return "Shaper"
	case KernNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Config holds font loading configuration.
// The zero value of any field selects its default.
type Config struct {
	// Size is the target pixel size (pixels per em).
	// Default: 32
	Size float64

	// AtlasSize is the atlas bitmap width and height.
	// Must be a power of two. Default: 512
	AtlasSize int

	// Padding is the gap in pixels between packed glyphs, preventing
	// sampling bleed. Zero means tightly packed; DefaultConfig uses 1.
	Padding int

	// Ranges lists the codepoints to load.
	// Default: Basic Latin and Latin-1 Supplement (see DefaultRanges).
	Ranges []*unicode.RangeTable

	// Kerning selects the kerning extraction strategy. Default: KernAuto.
	Kerning KerningSource
}

// DefaultConfig returns the default loading configuration.
func DefaultConfig() Config {
	return Config{
		Size:      32,
		AtlasSize: 512,
		Padding:   1,
		Ranges:    DefaultRanges(),
		Kerning:   KernAuto,
	}
}

// applyDefaults fills zero-valued fields with their defaults.
func applyDefaults(c *Config) {
	if c.Size == 0 {
		c.Size = 32
	}
	if c.AtlasSize == 0 {
		c.AtlasSize = 512
	}
	if len(c.Ranges) == 0 {
		c.Ranges = DefaultRanges()
	}
}

// Validate checks whether the configuration is usable.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if c.Size > 512 {
		return &ConfigError{Field: "Size", Reason: "must be at most 512"}
	}
	if c.AtlasSize < 64 {
		return &ConfigError{Field: "AtlasSize", Reason: "must be at least 64"}
	}
	if c.AtlasSize > 8192 {
		return &ConfigError{Field: "AtlasSize", Reason: "must be at most 8192"}
	}
	if c.AtlasSize&(c.AtlasSize-1) != 0 {
		return &ConfigError{Field: "AtlasSize", Reason: "must be power of 2"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding >= c.AtlasSize/4 {
		return &ConfigError{Field: "Padding", Reason: "must be less than a quarter of AtlasSize"}
	}
	if c.Kerning < KernAuto || c.Kerning > KernNone {
		return &ConfigError{Field: "Kerning", Reason: "unknown kerning source"}
	}
	return nil
}
