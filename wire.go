package lines

import (
	"fmt"
	"image/color"
	"math"
	"slices"
)

// A Wire draws one shape at a time into a [Renderable]. Drawing the same
// shape again is cheap: geometry is only recomputed when the shape's
// parameters change, while the color is applied on every call.
//
// Every drawing method returns the wire and an error so that calls can be
// chained by callers that don't care about failures. When a method fails,
// the wire keeps showing what it showed before.
//
// A Wire is not safe for concurrent use.
type Wire struct {
	name    string
	r       Renderable
	factory Factory
	cfg     Config
	color   color.Color
	filter  func(color.Color) color.Color

	cache      Cache
	children   []*Wire
	recomputes int
}

// Option configures a [Wire].
type Option func(*Wire)

// WithConfig sets the defaults the wire falls back to. The config is not
// validated; use [Config.Validate] first if it comes from outside.
func WithConfig(cfg Config) Option {
	return func(w *Wire) { w.cfg = cfg }
}

// WithFactory sets the factory composite shapes create their child wires
// with. Without one, composite shapes fail with [ErrMissingResource].
func WithFactory(f Factory) Option {
	return func(w *Wire) { w.factory = f }
}

// WithColorFilter installs a function every color passes through before it
// reaches the renderer. Child wires inherit the filter.
func WithColorFilter(f func(color.Color) color.Color) Option {
	return func(w *Wire) { w.filter = f }
}

// WithName sets the name the wire logs under.
func WithName(name string) Option {
	return func(w *Wire) { w.name = name }
}

// NewWire returns a wire drawing into r.
func NewWire(r Renderable, opts ...Option) *Wire {
	w := &Wire{r: r, cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(w)
	}
	w.color = w.cfg.Color()
	return w
}

// Name returns the name the wire was created with.
func (w *Wire) Name() string { return w.name }

// Renderable returns the renderable the wire draws into.
func (w *Wire) Renderable() Renderable { return w.r }

// Shape returns the shape currently drawn, or nil.
func (w *Wire) Shape() Shape { return w.cache.Shape() }

// Kind returns the kind of the shape currently drawn.
func (w *Wire) Kind() Kind { return w.cache.Kind() }

// Geometry returns what was last handed to the renderer.
func (w *Wire) Geometry() Geometry { return w.cache.Geometry() }

// Recomputes returns how many times the wire computed geometry. Calls that
// reuse the cached geometry don't count.
func (w *Wire) Recomputes() int { return w.recomputes }

// Children returns the child wires of a composite shape.
func (w *Wire) Children() []*Wire { return slices.Clone(w.children) }

// Ends returns the first and last point of the drawn shape in world space.
func (w *Wire) Ends() (start, end Vec3, ok bool) {
	g := w.cache.Geometry()
	if len(g.Points) == 0 {
		return Vec3{}, Vec3{}, false
	}
	start, end = g.Points[0], g.Points[len(g.Points)-1]
	if g.Local {
		pos, rot := w.r.Position(), w.r.Rotation()
		start = rot.Rotate(start).Add(pos)
		end = rot.Rotate(end).Add(pos)
	}
	return start, end, true
}

// draw is the path every shape takes. If s matches the cached shape the
// cached geometry stays. Otherwise build computes the shape to commit and its
// geometry, which then replace the cache and are pushed to the renderer. The
// color is applied either way.
func (w *Wire) draw(s Shape, c color.Color, build func() (Shape, Geometry, error)) error {
	if w.cache.Matches(s) {
		Logger().Debug("reusing geometry", "wire", w.name, "kind", s.Kind())
		w.applyColor(c)
		return nil
	}
	s, g, err := build()
	if err != nil {
		Logger().Warn("keeping previous shape", "wire", w.name, "kind", s.Kind(), "err", err)
		return err
	}
	w.recomputes++
	if !s.Kind().Composite() {
		w.releaseChildren()
	}
	w.cache.Commit(s, g)
	Logger().Debug("recomputed geometry", "wire", w.name, "kind", s.Kind(), "points", len(g.Points))
	w.push(w.cache.Shape(), g)
	w.applyColor(c)
	return nil
}

func (w *Wire) push(s Shape, g Geometry) {
	if rod, ok := s.(RodShape); ok && rod.frame != nil {
		w.r.SetPosition(rod.frame.position)
		w.r.SetRotation(rod.frame.rotation)
	}
	w.r.SetLocalSpace(g.Local)
	w.r.SetPoints(g.Points)
	w.r.SetWidthProfile(g.Profile)
	w.r.SetLoop(g.Loop)
}

func (w *Wire) applyColor(c color.Color) {
	if c == nil {
		c = w.color
	}
	for _, child := range w.children {
		child.applyColor(c)
	}
	if w.filter != nil {
		c = w.filter(c)
	}
	w.r.SetColor(c)
}

// polyline computes the geometry of a line with the given end cap. widths, if
// not nil, holds one width per point and replaces the taper from start to
// end.
func (w *Wire) polyline(points []Vec3, start, end float64, cap EndCap, widths []float64) (Geometry, error) {
	if len(points) == 0 {
		return Geometry{Profile: Flat(start, end)}, nil
	}
	var profile WidthProfile
	if widths != nil {
		var err error
		profile, err = ProfileFromWidths(points, widths)
		if err != nil {
			return Geometry{}, err
		}
		start, end = widths[0], widths[len(widths)-1]
	}
	mult := w.cfg.ArrowHeadMultiplier
	switch cap {
	case Arrow:
		pts, prof := ArrowProfile(points, start, end, mult, profile)
		return Geometry{Points: pts, Profile: prof}, nil
	case ArrowBothEnds:
		pts, prof := arrowBothEnds(points, start, end, mult, profile)
		return Geometry{Points: pts, Profile: prof}, nil
	case Normal:
		if profile == nil {
			profile = Flat(start, end)
		}
		return Geometry{Points: slices.Clone(points), Profile: profile}, nil
	default:
		return Geometry{}, fmt.Errorf("end cap %v: %w", cap, ErrInvalidArgument)
	}
}

// Line draws a polyline through points. Nil or empty points clear the wire.
func (w *Wire) Line(points []Vec3, st Style) (*Wire, error) {
	return w, w.line(points, st, nil)
}

// TaperedLine draws a polyline whose width at every point is given by the
// parallel slice widths. The style's widths only size the arrowheads.
func (w *Wire) TaperedLine(points []Vec3, widths []float64, st Style) (*Wire, error) {
	if len(points) != len(widths) {
		return w, fmt.Errorf("%d points but %d widths: %w", len(points), len(widths), ErrInvalidArgument)
	}
	return w, w.line(points, st, widths)
}

func (w *Wire) line(points []Vec3, st Style, widths []float64) error {
	start, end := st.widths(&w.cfg)
	shape := LineShape{Points: points, StartWidth: start, EndWidth: end, End: st.End, Widths: widths}
	return w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		g, err := w.polyline(points, start, end, st.End, widths)
		return shape, g, err
	})
}

// Segment draws a straight line from start to end.
func (w *Wire) Segment(start, end Vec3, st Style) (*Wire, error) {
	return w.Line([]Vec3{start, end}, st)
}

// Arrow draws an arrow from start to end.
func (w *Wire) Arrow(start, end Vec3, st Style) (*Wire, error) {
	return w.Line([]Vec3{start, end}, st.with(Arrow))
}

// Bezier draws a cubic Bézier curve. A point count of zero or less in st
// selects the configured number of points.
func (w *Wire) Bezier(start, startControl, endControl, end Vec3, st Style) (*Wire, error) {
	n := st.PointCount
	if n <= 0 {
		n = w.cfg.BezierPoints
	}
	points, err := WriteBezier(start, startControl, endControl, end, n)
	if err != nil {
		return w, err
	}
	return w.Line(points, st)
}

// Rod draws a polyline relative to a frame at its first point that faces its
// last point. The points handed to the renderer are local to that frame, and
// the renderable's transform is set to it.
func (w *Wire) Rod(points []Vec3, st Style) (*Wire, error) {
	start, end := st.widths(&w.cfg)
	shape := RodShape{Points: points, StartWidth: start, EndWidth: end, End: st.End}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		shape.frame = newRodFrame(points)
		g, err := w.polyline(shape.frame.local, start, end, st.End, nil)
		g.Local = true
		return shape, g, err
	})
}

// RodSegment draws a straight rod from start to end.
func (w *Wire) RodSegment(start, end Vec3, st Style) (*Wire, error) {
	return w.Rod([]Vec3{start, end}, st)
}

// Arc draws an arc that rotates firstPoint, given relative to center, about
// normal by angle degrees. A plain arc of exactly 360 degrees is drawn as a
// closed loop.
func (w *Wire) Arc(angle float64, normal, firstPoint, center Vec3, st Style) (*Wire, error) {
	count := st.PointCount
	if count <= 0 {
		count = max(ArcPointCount(angle), 2)
	}
	start, end := st.widths(&w.cfg)
	shape := ArcShape{
		FirstPoint: firstPoint,
		Normal:     normal,
		Center:     center,
		Angle:      angle,
		PointCount: count,
		StartWidth: start,
		EndWidth:   end,
		End:        st.End,
	}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		points, err := WriteArc(normal, firstPoint, angle, count, center)
		if err != nil {
			return shape, Geometry{}, err
		}
		g, err := w.polyline(points, start, end, st.End, nil)
		g.Loop = st.End == Normal && math.Abs(angle) == 360
		return shape, g, err
	})
}

// Circle draws a circle around center in the plane perpendicular to normal.
// A zero radius clears the wire.
func (w *Wire) Circle(center, normal Vec3, radius float64, st Style) (*Wire, error) {
	if radius == 0 {
		return w.Line(nil, st)
	}
	if normal.IsZero() {
		normal = Up
	}
	if st.PointCount <= 0 {
		st.PointCount = max(CirclePointCount(radius), 2)
	}
	dir := circleStart(normal)
	// Keep the seam where it was when only the radius or center changes. An
	// earlier plain arc may have started off the circle's plane.
	if arc, ok := w.cache.Shape().(ArcShape); ok && arc.Normal == normal && !arc.FirstPoint.IsZero() {
		if seam := arc.FirstPoint.Normalize(); math.Abs(seam.Dot(normal.Normalize())) < Tolerance {
			dir = seam
		}
	}
	return w.Arc(360, normal, dir.Mul(radius), center, st)
}

// ArcBetween draws an arc of angle degrees from start to end that bulges
// toward up.
func (w *Wire) ArcBetween(start, end Vec3, angle float64, up Vec3, st Style) (*Wire, error) {
	points, err := WriteArcBetween(start, end, angle, up, st.PointCount)
	if err != nil {
		return w, err
	}
	return w.Line(points, st)
}

// Orbital draws an arc around center from start to end. The radius changes
// linearly along the arc if start and end are at different distances from
// center.
func (w *Wire) Orbital(center, startPoint, endPoint Vec3, st Style) (*Wire, error) {
	start, end := st.widths(&w.cfg)
	count := st.PointCount
	if count <= 0 {
		count = -1
	}
	shape := OrbitalShape{
		Start:      startPoint,
		End:        endPoint,
		Center:     center,
		PointCount: count,
		StartWidth: start,
		EndWidth:   end,
		EndCap:     st.End,
	}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		points, err := WriteArcOnSphere(center, startPoint, endPoint, count)
		if err != nil {
			return shape, Geometry{}, err
		}
		g, err := w.polyline(points, start, end, st.End, nil)
		return shape, g, err
	})
}

// SpiralSphere draws a single line wrapped around a sphere. The spiral's
// density comes from the config; only the style's color and start width are
// used.
func (w *Wire) SpiralSphere(center Vec3, radius float64, rotation Quat, st Style) (*Wire, error) {
	width, _ := st.widths(&w.cfg)
	shape := SpiralSphereShape{Center: center, Radius: radius, Rotation: rotation, LineWidth: width}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		points, err := SpiralSphere(center, radius, rotation, w.cfg.SpiralSides, w.cfg.SpiralRotations)
		if err != nil {
			return shape, Geometry{}, err
		}
		return shape, Geometry{Points: points, Profile: Flat(width, width)}, nil
	})
}

// Box draws the wireframe of a box. Only the style's color and start width
// are used.
func (w *Wire) Box(center, size Vec3, rotation Quat, st Style) (*Wire, error) {
	width, _ := st.widths(&w.cfg)
	shape := BoxShape{Center: center, Size: size, Rotation: rotation, LineWidth: width}
	return w, w.draw(shape, st.Color, func() (Shape, Geometry, error) {
		return shape, Geometry{Points: BoxWireframe(center, size, rotation), Profile: Flat(width, width)}, nil
	})
}

// Disable hides the wire and releases its children.
func (w *Wire) Disable() *Wire {
	if w.cache.Kind() == KindDisabled {
		return w
	}
	w.releaseChildren()
	w.recomputes++
	w.cache.Commit(DisabledShape{}, Geometry{})
	w.push(DisabledShape{}, Geometry{})
	Logger().Debug("disabled", "wire", w.name)
	return w
}
