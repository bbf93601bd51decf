package lines

import (
	"fmt"
	"math"
)

// MaxPointCount is the exclusive upper bound on the number of points any
// single tessellated shape may have.
const MaxPointCount = 32767

// ArcPointCount returns the automatic point count for an arc sweeping angle
// degrees: 24 points per half turn, plus one.
func ArcPointCount(angle float64) int {
	return int(math.Round(24*math.Abs(angle)/180)) + 1
}

// checkPointCount validates an already resolved point count.
func checkPointCount(n int) error {
	if n < 2 || n >= MaxPointCount {
		return fmt.Errorf("point count %d outside [2, %d): %w", n, MaxPointCount, ErrInvalidArgument)
	}
	return nil
}

// WriteArc returns the points of an arc that starts at firstPoint and rotates
// about normal, through the origin, by angle degrees. Every point is then
// translated by offset.
//
// A negative pointCount selects [ArcPointCount]. Counts below 2 are raised to
// 2. Counts of [MaxPointCount] or more are rejected with [ErrInvalidArgument].
func WriteArc(normal, firstPoint Vec3, angle float64, pointCount int, offset Vec3) ([]Vec3, error) {
	if pointCount < 0 {
		pointCount = ArcPointCount(angle)
	}
	if pointCount < 2 {
		pointCount = 2
	}
	if err := checkPointCount(pointCount); err != nil {
		return nil, err
	}
	points := make([]Vec3, pointCount)
	step := angle / float64(pointCount-1)
	points[0] = firstPoint.Add(offset)
	for i := 1; i < pointCount; i++ {
		// Each point is rotated from firstPoint directly, so a full turn
		// ends exactly where it started instead of accumulating error.
		q := AngleAxis(step*float64(i), normal)
		points[i] = q.Rotate(firstPoint).Add(offset)
	}
	return points, nil
}

// WriteArcOnSphere returns the points of an arc around center that leads from
// start to end. The arc sweeps the angle between the two radius vectors while
// its radius changes linearly from |start-center| to |end-center|, so the
// first and last points are start and end.
//
// A negative pointCount selects [ArcPointCount] for the swept angle.
func WriteArcOnSphere(center, start, end Vec3, pointCount int) ([]Vec3, error) {
	a, b := start.Sub(center), end.Sub(center)
	aRad, bRad := a.Length(), b.Length()

	var dir Vec3
	switch {
	case aRad != 0:
		dir = a.Div(aRad)
	case bRad != 0:
		dir = b.Div(bRad)
	default:
		dir = Right
	}

	var angle float64
	if aRad != 0 && bRad != 0 {
		angle = a.Angle(b)
		if math.IsNaN(angle) {
			angle = 0
		}
	}

	axis := a.Cross(b)
	if axis.Length2() < Tolerance*Tolerance {
		// start and end are colinear with the center. When they are
		// antipodal any great circle through them works; pick the one whose
		// axis is perpendicular to both the radius and world up.
		axis = dir.Cross(Up)
		if axis.Length2() < Tolerance*Tolerance {
			axis = dir.Cross(Forward)
		}
	}
	axis = axis.Normalize()

	points, err := WriteArc(axis, dir, angle, pointCount, Vec3{})
	if err != nil {
		return nil, err
	}
	last := float64(len(points) - 1)
	radDelta := bRad - aRad
	for i := range points {
		r := aRad + radDelta*float64(i)/last
		points[i] = points[i].Mul(r).Add(center)
	}
	return points, nil
}

// WriteArcBetween returns an arc of angle degrees whose chord runs from start
// to end. The arc bulges toward up, which defaults to [Up] when zero.
//
// If start and end coincide, or the angle is a full turn or more, the result
// is the straight segment from start to end. A pointCount of zero or less
// selects [ArcPointCount].
func WriteArcBetween(start, end Vec3, angle float64, up Vec3, pointCount int) ([]Vec3, error) {
	if start == end || math.Abs(angle) >= 360 {
		return []Vec3{start, end}, nil
	}
	if up.IsZero() {
		up = Up
	}
	if pointCount <= 0 {
		pointCount = max(ArcPointCount(angle), 2)
	}
	delta := end.Sub(start)
	dist := delta.Length()
	right := up.Cross(delta).Normalize()
	if right.IsZero() {
		// The chord is parallel to up; bulge sideways instead.
		right = Right.Cross(delta).Normalize()
		if right.IsZero() {
			right = Forward.Cross(delta).Normalize()
		}
	}
	arc, err := WriteArc(right, up.Normalize().Negate(), angle, pointCount, Vec3{})
	if err != nil {
		return nil, err
	}
	chord := arc[len(arc)-1].Sub(arc[0])
	chordLen := chord.Length()
	if chordLen == 0 {
		return []Vec3{start, end}, nil
	}
	turn := FromTo(chord, delta)
	ratio := dist / chordLen
	for i := range arc {
		arc[i] = turn.Rotate(arc[i]).Mul(ratio)
	}
	offset := start.Sub(arc[0])
	for i := range arc {
		arc[i] = arc[i].Add(offset)
	}
	return arc, nil
}
