package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrEmptyFontData is returned by Load when the font data is empty.
	ErrEmptyFontData = errors.New("atlas: empty font data")

	// ErrAtlasFull is returned by Load when the configured coverage does
	// not fit in the configured atlas size. Raise Config.AtlasSize or
	// shrink Config.Ranges.
	ErrAtlasFull = errors.New("atlas: glyphs do not fit in atlas")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
