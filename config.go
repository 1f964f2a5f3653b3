package vflow

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables of a Flow. Start from DefaultConfig and override
// fields, or decode a TOML document with LoadConfig.
type Config struct {
	// ScrollBarSize is the thickness of both scrollbars and the side of the
	// corner square, in pixels.
	ScrollBarSize float64 `toml:"scrollbar_size"`
	// MinThumbLength is the smallest thumb drawn or hit-tested, in pixels.
	MinThumbLength float64 `toml:"min_thumb_length"`
	// MaxPileSize bounds the number of detached cells kept for reuse after a
	// layout pass. Zero or less keeps every cell.
	MaxPileSize int `toml:"max_pile_size"`
	// FixedCellSize, when > 0, is the length of every cell along the virtual
	// axis and disables per-cell measurement.
	FixedCellSize float64 `toml:"fixed_cell_size"`

	// WheelLineStep is the number of pixels scrolled per wheel notch.
	WheelLineStep float64 `toml:"wheel_line_step"`
	// WheelPageMultiplier scales wheel steps taken while Control is held.
	WheelPageMultiplier float64 `toml:"wheel_page_multiplier"`
	// Pannable enables drag-to-scroll on the content area.
	Pannable bool `toml:"pannable"`

	TrackColor  Color `toml:"track_color"`
	ThumbColor  Color `toml:"thumb_color"`
	CornerColor Color `toml:"corner_color"`
}

// DefaultConfig returns the configuration used by NewFlow when callers have
// no preferences.
func DefaultConfig() Config {
	return Config{
		ScrollBarSize:       12,
		MinThumbLength:      16,
		MaxPileSize:         64,
		WheelLineStep:       20,
		WheelPageMultiplier: 10,
		Pannable:            true,
		TrackColor:          Color{0.15, 0.15, 0.18, 1},
		ThumbColor:          Color{0.55, 0.55, 0.6, 1},
		CornerColor:         Color{0.15, 0.15, 0.18, 1},
	}
}

// LoadConfig decodes a TOML document over DefaultConfig. Keys that match no
// field are reported as an error.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse flow config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parse flow config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse flow config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	fields := []struct {
		key string
		v   float64
	}{
		{"scrollbar_size", c.ScrollBarSize},
		{"min_thumb_length", c.MinThumbLength},
		{"fixed_cell_size", c.FixedCellSize},
		{"wheel_line_step", c.WheelLineStep},
		{"wheel_page_multiplier", c.WheelPageMultiplier},
	}
	for _, fd := range fields {
		if math.IsNaN(fd.v) || math.IsInf(fd.v, 0) {
			return fmt.Errorf("%s must be finite, got %v", fd.key, fd.v)
		}
		if fd.v < 0 {
			return fmt.Errorf("%s must be >= 0, got %v", fd.key, fd.v)
		}
	}
	return nil
}
