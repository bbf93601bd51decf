package lines

import (
	"image/color"
)

// Style holds the drawing parameters shared by all wire operations. The zero
// Style draws a plain line of the configured default width and color.
type Style struct {
	// Color of the line. Nil selects the configured default color. Color is
	// not part of a shape; changing only the color never recomputes geometry.
	Color color.Color
	// StartWidth is the width at the first point. Zero or less selects the
	// configured line width.
	StartWidth float64
	// EndWidth is the width at the last point. Zero or less means the same as
	// StartWidth.
	EndWidth float64
	End      EndCap
	// PointCount overrides the number of points of tessellated shapes. Zero
	// or less selects a density based on the shape's size.
	PointCount int
}

// widths resolves the style's widths against the configured defaults.
func (s Style) widths(cfg *Config) (start, end float64) {
	start = s.StartWidth
	if start <= 0 {
		start = cfg.LineWidth
	}
	end = s.EndWidth
	if end <= 0 {
		end = start
	}
	return start, end
}

// with returns a copy of s with the end cap replaced.
func (s Style) with(end EndCap) Style {
	s.End = end
	return s
}
