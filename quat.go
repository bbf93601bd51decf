package lines

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion with X, Y, Z and W components.
//
// The zero Quat is not a unit quaternion, but [Quat.Rotate] treats it like
// the identity, so that an unset rotation leaves vectors unchanged.
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the rotation that leaves every vector unchanged.
var Identity = Quat{0, 0, 0, 1}

// AngleAxis returns the rotation of deg degrees about axis. The axis does not
// need to be normalized. A zero axis results in [Identity].
func AngleAxis(deg float64, axis Vec3) Quat {
	axis = axis.Normalize()
	if axis.IsZero() {
		return Identity
	}
	sin, cos := math.Sincos(deg * (math.Pi / 180) / 2)
	return Quat{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}
}

// FromTo returns the shortest rotation that turns the direction from into the
// direction to.
func FromTo(from, to Vec3) Quat {
	from = from.Normalize()
	to = to.Normalize()
	if from.IsZero() || to.IsZero() {
		return Identity
	}
	axis := from.Cross(to)
	if axis.Length2() < Tolerance*Tolerance {
		if from.Dot(to) > 0 {
			return Identity
		}
		// Opposite directions: any axis perpendicular to from will do.
		axis = from.Cross(Up)
		if axis.Length2() < Tolerance*Tolerance {
			axis = from.Cross(Right)
		}
		return AngleAxis(180, axis)
	}
	return AngleAxis(from.Angle(to), axis)
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Mul returns the rotation that applies o first and q second.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.X*o.W + q.W*o.X + q.Y*o.Z - q.Z*o.Y,
		Y: q.Y*o.W + q.W*o.Y + q.Z*o.X - q.X*o.Z,
		Z: q.Z*o.W + q.W*o.Z + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	x2, y2, z2 := q.X*2, q.Y*2, q.Z*2
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	return Vec3{
		X: (1-(yy+zz))*v.X + (xy-wz)*v.Y + (xz+wy)*v.Z,
		Y: (xy+wz)*v.X + (1-(xx+zz))*v.Y + (yz-wx)*v.Z,
		Z: (xz-wy)*v.X + (yz+wx)*v.Y + (1-(xx+yy))*v.Z,
	}
}

// Conjugate returns q with the vector part negated.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the norm of the quaternion.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length. The zero quaternion normalizes to
// [Identity].
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return Identity
	}
	l = 1 / l
	return Quat{X: q.X * l, Y: q.Y * l, Z: q.Z * l, W: q.W * l}
}

// Inverse returns the rotation that undoes q.
func (q Quat) Inverse() Quat {
	return q.Conjugate().Normalize()
}

// AngleAxis returns the angle in degrees, in [0, 360], and the unit axis of
// the rotation. Rotations close to the identity report an angle of zero about
// [Right].
func (q Quat) AngleAxis() (deg float64, axis Vec3) {
	q = q.Normalize()
	w := max(-1, min(1, q.W))
	deg = 2 * math.Acos(w) * (180 / math.Pi)
	s := math.Sqrt(1 - w*w)
	if s < 1e-12 {
		return deg, Right
	}
	return deg, Vec3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}
}

// ApproxEqual reports whether every component of q is within [Tolerance] of o.
func (q Quat) ApproxEqual(o Quat) bool {
	return eq(q.X, o.X) && eq(q.Y, o.Y) && eq(q.Z, o.Z) && eq(q.W, o.W)
}

// sameRotation is the rotation comparison used by the shape cache: either an
// exact match or a component-wise tolerant one.
func sameRotation(a, b Quat) bool {
	return a == b || a.ApproxEqual(b)
}
