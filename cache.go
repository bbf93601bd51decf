package lines

import (
	"slices"
)

// Geometry is what a wire hands to its renderer.
type Geometry struct {
	Points  []Vec3
	Profile WidthProfile
	// Loop connects the last point back to the first.
	Loop bool
	// Local means Points are relative to the renderer's transform rather
	// than in world space.
	Local bool
}

// Cache holds the last shape a wire committed and the geometry derived from
// it. The zero value is an empty cache that matches nothing.
//
// A Cache belongs to a single wire and is not safe for concurrent use.
type Cache struct {
	shape    Shape
	geometry Geometry
}

// Shape returns the committed shape, or nil.
func (c *Cache) Shape() Shape { return c.shape }

// Kind returns the kind of the committed shape, or KindNone.
func (c *Cache) Kind() Kind {
	if c.shape == nil {
		return KindNone
	}
	return c.shape.Kind()
}

// Geometry returns the committed geometry. Callers must not modify it.
func (c *Cache) Geometry() Geometry { return c.geometry }

// Matches reports whether s is equal to the committed shape, in which case the
// committed geometry can be reused as is.
func (c *Cache) Matches(s Shape) bool {
	return c.shape != nil && Equal(c.shape, s)
}

// Commit replaces the committed shape and geometry. Slices in s are copied, so
// later changes by the caller don't affect the cache. A rod is converted to
// its local frame, which is then used by [Cache.Matches].
func (c *Cache) Commit(s Shape, g Geometry) {
	c.shape = cloneShape(s)
	c.geometry = g
}

// Reset empties the cache.
func (c *Cache) Reset() {
	c.shape = nil
	c.geometry = Geometry{}
}

func cloneShape(s Shape) Shape {
	switch s := s.(type) {
	case LineShape:
		s.Points = slices.Clone(s.Points)
		s.Widths = slices.Clone(s.Widths)
		return s
	case RodShape:
		s.Points = slices.Clone(s.Points)
		if s.frame == nil {
			s.frame = newRodFrame(s.Points)
		}
		return s
	case RotationShape:
		s.StartPoints = slices.Clone(s.StartPoints)
		return s
	default:
		return s
	}
}
