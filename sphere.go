package lines

import (
	"fmt"
	"math"
)

// Defaults for [SpiralSphere] as used by [Wire.SpiralSphere].
const (
	DefaultSpiralSides     = 24
	DefaultSpiralRotations = 3
)

// SpiralSphere returns a single path wrapped around the sphere at center. It
// starts at the pole above the center, winds rotations times around the up
// axis with sides points per revolution, and rolls down to the opposite pole
// while doing so, which covers the whole surface instead of one great circle.
// The finished path is rotated by rotation about the center.
func SpiralSphere(center Vec3, radius float64, rotation Quat, sides, rotations float64) ([]Vec3, error) {
	steps := sides * rotations
	if !(steps > 0) || math.Ceil(steps) >= MaxPointCount-1 {
		return nil, fmt.Errorf("spiral with %g sides and %g rotations: %w", sides, rotations, ErrInvalidArgument)
	}
	pole := Up.Mul(radius)
	points := make([]Vec3, 0, int(math.Ceil(steps))+1)
	points = append(points, rotation.Rotate(pole).Add(center))
	for i := 1; ; i++ {
		iter := float64(i) / steps
		face := AngleAxis(iter*360*rotations, Up).Rotate(Right)
		r := AngleAxis(iter*180, face).Rotate(pole)
		points = append(points, rotation.Rotate(r).Add(center))
		if iter >= 1 {
			break
		}
	}
	return points, nil
}
