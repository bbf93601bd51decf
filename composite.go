package lines

import (
	"fmt"
	"math"
)

// DefaultRotationStartPoints are the points whose paths [Wire.Rotation] draws
// when none are given.
var DefaultRotationStartPoints = []Vec3{Forward, Up}

// CartesianPlaneChildCount returns the number of child wires a cartesian
// plane with the given extents and increment uses, and how many thin lines
// each half axis gets. A thin line that would fall exactly on the edge of the
// plane is left out.
func CartesianPlaneChildCount(extents, increment float64) (count, linesPerHalf int, err error) {
	if !(increment > 0) || !(extents > 0) {
		return 0, 0, fmt.Errorf("cartesian plane with extents %g and increment %g: %w", extents, increment, ErrInvalidArgument)
	}
	ratio := extents / increment
	if ratio >= MaxPointCount {
		return 0, 0, fmt.Errorf("cartesian plane with %g lines per half axis: %w", ratio, ErrInvalidArgument)
	}
	linesPerHalf = int(ratio)
	if math.Abs(float64(linesPerHalf)-ratio) < Tolerance {
		linesPerHalf--
	}
	return 2 + 4*linesPerHalf, linesPerHalf, nil
}

// ensureChildren grows or shrinks the wire's children to n and returns them.
// New children are created through the wire's factory and share its config
// and color filter.
func (w *Wire) ensureChildren(n int) ([]*Wire, error) {
	if len(w.children) < n && w.factory == nil {
		return nil, fmt.Errorf("wire %q has no factory for child wires: %w", w.name, ErrMissingResource)
	}
	for len(w.children) < n {
		r, err := w.factory.NewRenderable()
		if err != nil {
			return nil, fmt.Errorf("creating child %d of wire %q: %w", len(w.children), w.name, err)
		}
		child := NewWire(r,
			WithName(fmt.Sprintf("%s/%d", w.name, len(w.children))),
			WithConfig(w.cfg),
			WithFactory(w.factory),
			WithColorFilter(w.filter))
		w.children = append(w.children, child)
		Logger().Debug("created child", "wire", child.name)
	}
	for len(w.children) > n {
		last := w.children[len(w.children)-1]
		w.children = w.children[:len(w.children)-1]
		last.release()
	}
	return w.children, nil
}

// releaseChildren releases every child wire, and their children.
func (w *Wire) releaseChildren() {
	for _, child := range w.children {
		child.release()
	}
	w.children = nil
}

// release hands the wire's renderable and those of its children back to the
// factory. The wire must not be used afterwards.
func (w *Wire) release() {
	w.releaseChildren()
	w.cache.Reset()
	if w.factory == nil {
		Logger().Warn("cannot release wire without factory", "wire", w.name)
		return
	}
	w.factory.Release(w.r)
}

// Rotation visualizes the rotation q, placed at position and turned by
// orientation. The rotation axis is drawn as an arrow through position and
// every start point, relative to position, gets an arrowed arc along the path
// it takes under q. Nil start points select [DefaultRotationStartPoints].
//
// The style's point count sets the number of points per arc.
func (w *Wire) Rotation(q Quat, position Vec3, startPoints []Vec3, orientation Quat, st Style) (*Wire, error) {
	if startPoints == nil {
		startPoints = DefaultRotationStartPoints
	}
	angle, axis := q.AngleAxis()
	width, _ := st.widths(&w.cfg)
	shape := RotationShape{
		Angle:       angle,
		Axis:        axis,
		Position:    position,
		StartPoints: startPoints,
		Orientation: orientation,
		ArcPoints:   st.PointCount,
		LineWidth:   width,
	}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		if st.PointCount >= MaxPointCount {
			return shape, Geometry{}, fmt.Errorf("arc point count %d: %w", st.PointCount, ErrInvalidArgument)
		}
		for angle >= 180 {
			angle -= 360
		}
		for angle < -180 {
			angle += 360
		}
		axisRotated := orientation.Rotate(axis)
		g, err := w.polyline([]Vec3{position.Sub(axisRotated), position.Add(axisRotated)}, width, width, Arrow, nil)
		if err != nil {
			return shape, Geometry{}, err
		}
		children, err := w.ensureChildren(len(startPoints))
		if err != nil {
			return shape, Geometry{}, err
		}
		arc := Style{Color: st.Color, StartWidth: width, End: Arrow, PointCount: st.PointCount}
		for i, child := range children {
			if _, err := child.Arc(angle, axisRotated, startPoints[i], position, arc); err != nil {
				return shape, Geometry{}, err
			}
		}
		return shape, g, nil
	})
}

// CartesianPlane draws a grid centered on center, in the plane spanned by the
// rotated right and up axes. The axes are arrows from -extents to +extents;
// thinner lines run parallel to them every increment units. The wire itself
// draws an arrow along the plane's normal, one increment long.
func (w *Wire) CartesianPlane(center Vec3, rotation Quat, extents, increment float64, st Style) (*Wire, error) {
	width, _ := st.widths(&w.cfg)
	shape := CartesianPlaneShape{
		Center:    center,
		Rotation:  rotation,
		LineWidth: width,
		Extents:   extents,
		Increment: increment,
	}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		count, thin, err := CartesianPlaneChildCount(extents, increment)
		if err != nil {
			return shape, Geometry{}, err
		}
		up := rotation.Rotate(Up)
		right := rotation.Rotate(Right)
		normal := right.Cross(up).Normalize()
		g, err := w.polyline([]Vec3{center, center.Add(normal.Mul(increment))}, width, width, Arrow, nil)
		if err != nil {
			return shape, Geometry{}, err
		}
		children, err := w.ensureChildren(count)
		if err != nil {
			return shape, Geometry{}, err
		}

		minX, maxX := center.Add(right.Mul(-extents)), center.Add(right.Mul(extents))
		minY, maxY := center.Add(up.Mul(-extents)), center.Add(up.Mul(extents))
		axis := Style{Color: st.Color, StartWidth: width, End: Arrow}
		if _, err := children[0].Segment(minX, maxX, axis); err != nil {
			return shape, Geometry{}, err
		}
		if _, err := children[1].Segment(minY, maxY, axis); err != nil {
			return shape, Geometry{}, err
		}

		line := Style{Color: st.Color, StartWidth: width / 4}
		next := 2
		for _, dir := range []struct{ step, from, to Vec3 }{
			{up, minX, maxX},
			{up.Negate(), minX, maxX},
			{right, minY, maxY},
			{right.Negate(), minY, maxY},
		} {
			for i := range thin {
				delta := dir.step.Mul(increment * float64(i+1))
				if _, err := children[next].Segment(dir.from.Add(delta), dir.to.Add(delta), line); err != nil {
					return shape, Geometry{}, err
				}
				next++
			}
		}
		return shape, g, nil
	})
}

// Rectangle draws a rectangle as four separate edges in the XY plane of the
// frame given by origin and rotation. The rectangle is centered on offset
// within that plane. The wire itself draws nothing.
func (w *Wire) Rectangle(origin Vec3, halfSize, offset Vec2, rotation Quat, st Style) (*Wire, error) {
	width, _ := st.widths(&w.cfg)
	shape := RectangleShape{
		Origin:    origin,
		HalfSize:  halfSize,
		Offset:    offset,
		Rotation:  rotation,
		LineWidth: width,
	}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		children, err := w.ensureChildren(4)
		if err != nil {
			return shape, Geometry{}, err
		}
		corners := RectangleCorners(origin, rotation, halfSize, offset)
		edge := Style{Color: st.Color, StartWidth: width}
		for i, child := range children {
			if _, err := child.Segment(corners[i], corners[(i+1)%4], edge); err != nil {
				return shape, Geometry{}, err
			}
		}
		return shape, Geometry{Profile: Flat(0, 0)}, nil
	})
}
