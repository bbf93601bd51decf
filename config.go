package lines

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// DefaultLineWidth is the width of lines drawn without an explicit width.
const DefaultLineWidth = 1.0 / 8

// Config holds the defaults wires fall back to. It is usually loaded from a
// TOML document:
//
//	line_width = 0.125
//	arrow_head_multiplier = 3
//	default_color = "magenta"
//	bezier_points = 25
//	spiral_sides = 24
//	spiral_rotations = 3
type Config struct {
	LineWidth           float64 `toml:"line_width"`
	ArrowHeadMultiplier float64 `toml:"arrow_head_multiplier"`
	// DefaultColor is a CSS color name or a "#rrggbb" hex triplet. It is
	// used when a style has no color.
	DefaultColor    string  `toml:"default_color"`
	BezierPoints    int     `toml:"bezier_points"`
	SpiralSides     float64 `toml:"spiral_sides"`
	SpiralRotations float64 `toml:"spiral_rotations"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LineWidth:           DefaultLineWidth,
		ArrowHeadMultiplier: DefaultArrowHeadMultiplier,
		DefaultColor:        "magenta",
		BezierPoints:        DefaultBezierPoints,
		SpiralSides:         DefaultSpiralSides,
		SpiralRotations:     DefaultSpiralRotations,
	}
}

// LoadConfig reads a TOML document from r on top of [DefaultConfig]. Unknown
// keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case !(c.LineWidth > 0):
		return fmt.Errorf("line_width %g must be positive: %w", c.LineWidth, ErrInvalidArgument)
	case !(c.ArrowHeadMultiplier > 0):
		return fmt.Errorf("arrow_head_multiplier %g must be positive: %w", c.ArrowHeadMultiplier, ErrInvalidArgument)
	case c.BezierPoints < 2 || c.BezierPoints >= MaxPointCount:
		return fmt.Errorf("bezier_points %d outside [2, %d): %w", c.BezierPoints, MaxPointCount, ErrInvalidArgument)
	case !(c.SpiralSides > 0) || !(c.SpiralRotations > 0):
		return fmt.Errorf("spiral_sides and spiral_rotations must be positive: %w", ErrInvalidArgument)
	}
	if _, err := ParseColor(c.DefaultColor); err != nil {
		return fmt.Errorf("default_color: %w", err)
	}
	return nil
}

// Color returns the parsed default color.
func (c Config) Color() color.Color {
	col, err := ParseColor(c.DefaultColor)
	if err != nil {
		return colornames.Magenta
	}
	return col
}

// ParseColor parses a CSS color name such as "steelblue" or a hex color such
// as "#4682b4".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", s, ErrInvalidArgument)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color %q: %w", s, ErrInvalidArgument)
}
