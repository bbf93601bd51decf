package lines

import (
	"math"
)

// CirclePointCount returns the automatic point count of a circle with the
// given radius, roughly 24π points per unit of radius.
func CirclePointCount(radius float64) int {
	return int(math.Round(24*math.Pi*math.Abs(radius) + 0.5))
}

// circleStart returns a unit vector perpendicular to normal, which is where
// circles around normal begin.
func circleStart(normal Vec3) Vec3 {
	crossDir := Up
	if parallel(normal, Up) {
		crossDir = Forward
	}
	return normal.Cross(crossDir).Normalize()
}

// WriteCircle returns the points of a circle around center, in the plane
// perpendicular to normal. The first point is repeated as the last one.
//
// A pointCount of zero selects [CirclePointCount]; a negative one selects
// [ArcPointCount] for a full turn.
func WriteCircle(center, normal Vec3, radius float64, pointCount int) ([]Vec3, error) {
	if pointCount == 0 {
		pointCount = CirclePointCount(radius)
	}
	if normal.IsZero() {
		normal = Up
	}
	r := circleStart(normal).Mul(radius)
	return WriteArc(normal, r, 360, pointCount, center)
}
