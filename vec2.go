package lines

import (
	"fmt"
)

// Vec2 is a vector in the plane of a rectangle. It only carries sizes and
// offsets; it gets embedded into 3D space by [RectangleCorners].
type Vec2 struct {
	X float64
	Y float64
}

// V2 returns the vector ⟨x, y⟩.
func V2(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Vec3 lifts v into 3D space with a Z of zero.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// ApproxEqual reports whether both components of v are within [Tolerance] of o.
func (v Vec2) ApproxEqual(o Vec2) bool {
	return eq(v.X, o.X) && eq(v.Y, o.Y)
}
