package atlas

import (
	"errors"
	"strings"
	"testing"
)

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string // invalid field name, empty for valid
	}{
		{"defaults", func(c *Config) {}, ""},
		{"negative size", func(c *Config) { c.Size = -1 }, "Size"},
		{"huge size", func(c *Config) { c.Size = 1000 }, "Size"},
		{"atlas too small", func(c *Config) { c.AtlasSize = 32 }, "AtlasSize"},
		{"atlas too large", func(c *Config) { c.AtlasSize = 16384 }, "AtlasSize"},
		{"atlas not power of two", func(c *Config) { c.AtlasSize = 500 }, "AtlasSize"},
		{"negative padding", func(c *Config) { c.Padding = -1 }, "Padding"},
		{"excessive padding", func(c *Config) { c.Padding = 128 }, "Padding"},
		{"unknown kerning source", func(c *Config) { c.Kerning = KerningSource(42) }, "Kerning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.wantErr {
				t.Errorf("ConfigError.Field = %q, want %q", cerr.Field, tt.wantErr)
			}
			if !strings.Contains(cerr.Error(), tt.wantErr) {
				t.Errorf("error %q does not name the field", cerr.Error())
			}
		})
	}
}

// TestConfig_ApplyDefaults tests zero-value defaulting.
func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if cfg.Size != 32 {
		t.Errorf("Size = %v, want 32", cfg.Size)
	}
	if cfg.AtlasSize != 512 {
		t.Errorf("AtlasSize = %d, want 512", cfg.AtlasSize)
	}
	if len(cfg.Ranges) != 2 {
		t.Errorf("len(Ranges) = %d, want 2", len(cfg.Ranges))
	}
	if cfg.Kerning != KernAuto {
		t.Errorf("Kerning = %v, want KernAuto", cfg.Kerning)
	}

	// Explicit settings survive.
	cfg = Config{Size: 16, AtlasSize: 256, Padding: 2, Kerning: KernNone}
	applyDefaults(&cfg)
	if cfg.Size != 16 || cfg.AtlasSize != 256 || cfg.Padding != 2 || cfg.Kerning != KernNone {
		t.Errorf("explicit config overwritten: %+v", cfg)
	}
}

// TestKerningSource_String tests the enum names.
func TestKerningSource_String(t *testing.T) {
	tests := []struct {
		src  KerningSource
		want string
	}{
		{KernAuto, "Auto"},
		{KernTable, "Table"},
		{KernShaper, "Shaper"},
		{KernNone, "None"},
		{KerningSource(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("KerningSource(%d).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}
