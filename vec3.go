package lines

import (
	"fmt"
	"math"
)

// Tolerance is how close two values have to be before this package considers
// them equal. It is the spacing of float32 values just below 1.
const Tolerance = 1.0 / (1 << 23)

// eq reports whether a and b are within [Tolerance] of each other.
// Use it for values that are computed rather than assigned.
func eq(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Vec3 is a point or a direction in 3D space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// World axes. Up is +Y, Right is +X and Forward is +Z.
var (
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Right   = Vec3{1, 0, 0}
	Left    = Vec3{-1, 0, 0}
	Forward = Vec3{0, 0, 1}
	Back    = Vec3{0, 0, -1}
)

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Scale multiplies v component-wise by o.
func (v Vec3) Scale(o Vec3) Vec3 {
	return Vec3{
		X: v.X * o.X,
		Y: v.Y * o.Y,
		Z: v.Z * o.Z,
	}
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Length2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Length].
func (v Vec3) Length2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Angle returns the unsigned angle between v and o in degrees.
// It is zero if either vector has zero length.
func (v Vec3) Angle(o Vec3) float64 {
	d := math.Sqrt(v.Length2() * o.Length2())
	if d == 0 {
		return 0
	}
	c := max(-1, min(1, v.Dot(o)/d))
	return math.Acos(c) * (180 / math.Pi)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// ApproxEqual reports whether every component of v is within [Tolerance] of o.
func (v Vec3) ApproxEqual(o Vec3) bool {
	return eq(v.X, o.X) && eq(v.Y, o.Y) && eq(v.Z, o.Z)
}

// IsInf reports whether at least one component is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// parallel reports whether v and o point along the same line, in either
// direction.
func parallel(v, o Vec3) bool {
	return v.Cross(o).Length2() < Tolerance*Tolerance
}

func sameVecs(a, b []Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// polylineLength returns the summed length of all segments of pts.
func polylineLength(pts []Vec3) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i].Distance(pts[i-1])
	}
	return l
}
