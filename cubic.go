package lines

// DefaultBezierPoints is the number of points a Bézier is sampled at when no
// count is given.
const DefaultBezierPoints = 25

// CubicBez is a cubic Bézier curve in 3D space.
type CubicBez struct {
	P0 Vec3
	P1 Vec3
	P2 Vec3
	P3 Vec3
}

// Eval returns the point at t, which is clamped to [0, 1].
func (c CubicBez) Eval(t float64) Vec3 {
	t = max(0, min(1, t))
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return c.P0.Mul(mt2 * mt).
		Add(c.P1.Mul(3 * mt2 * t)).
		Add(c.P2.Mul(3 * mt * t2)).
		Add(c.P3.Mul(t2 * t))
}

func (c CubicBez) Start() Vec3 { return c.P0 }
func (c CubicBez) End() Vec3   { return c.P3 }

// Points samples the curve at count evenly spaced values of t, including
// both end points.
func (c CubicBez) Points(count int) ([]Vec3, error) {
	if err := checkPointCount(count); err != nil {
		return nil, err
	}
	pts := make([]Vec3, count)
	n := float64(count - 1)
	for i := range pts {
		pts[i] = c.Eval(float64(i) / n)
	}
	// Pin the end points so they survive rounding exactly.
	pts[0], pts[count-1] = c.P0, c.P3
	return pts, nil
}

// BezierPoint returns the point at t on the cubic Bézier defined by p0 … p3.
func BezierPoint(p0, p1, p2, p3 Vec3, t float64) Vec3 {
	return CubicBez{p0, p1, p2, p3}.Eval(t)
}

// WriteBezier samples the cubic Bézier from start to end at count evenly
// spaced values of t.
func WriteBezier(start, startControl, endControl, end Vec3, count int) ([]Vec3, error) {
	return CubicBez{start, startControl, endControl, end}.Points(count)
}
