package lines

import (
	"fmt"
)

// Kind selects which geometry a [Shape] describes.
type Kind int

const (
	// KindNone is the kind of a wire that has not drawn anything yet.
	KindNone Kind = iota
	KindLine
	KindRod
	KindArc
	KindOrbital
	KindSpiralSphere
	KindBox
	KindRotation
	KindCartesianPlane
	KindRectangle
	KindDisabled
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLine:
		return "line"
	case KindRod:
		return "rod"
	case KindArc:
		return "arc"
	case KindOrbital:
		return "orbital"
	case KindSpiralSphere:
		return "spiral sphere"
	case KindBox:
		return "box"
	case KindRotation:
		return "rotation"
	case KindCartesianPlane:
		return "cartesian plane"
	case KindRectangle:
		return "rectangle"
	case KindDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Composite reports whether shapes of this kind own child wires.
func (k Kind) Composite() bool {
	return k == KindRotation || k == KindCartesianPlane || k == KindRectangle
}

// EndCap defines how the ends of a line are drawn.
type EndCap int

const (
	// A plain end.
	Normal EndCap = iota
	// An arrowhead at the last point.
	Arrow
	// Arrowheads at the first and the last point.
	ArrowBothEnds
)

func (e EndCap) String() string {
	switch e {
	case Normal:
		return "normal"
	case Arrow:
		return "arrow"
	case ArrowBothEnds:
		return "arrow both ends"
	default:
		return fmt.Sprintf("EndCap(%d)", int(e))
	}
}

// Shape is the set of parameters that fully determines the geometry of a
// wire. Two equal shapes produce the same geometry; see [Equal].
//
// The set of shapes is closed: it is implemented by LineShape, RodShape,
// ArcShape, OrbitalShape, SpiralSphereShape, BoxShape, RotationShape,
// CartesianPlaneShape, RectangleShape and DisabledShape.
type Shape interface {
	Kind() Kind
	shape()
}

// LineShape is a polyline in world space.
type LineShape struct {
	Points     []Vec3
	StartWidth float64
	EndWidth   float64
	End        EndCap
	// Widths, if not nil, holds one width per point.
	Widths []float64
}

// RodShape is a polyline drawn relative to a frame that sits at its first
// point and faces its last point.
type RodShape struct {
	// Points in world space, as passed by the caller.
	Points     []Vec3
	StartWidth float64
	EndWidth   float64
	End        EndCap

	frame *rodFrame
}

// rodFrame is the local frame a rod is stored in once committed.
type rodFrame struct {
	local    []Vec3
	position Vec3
	rotation Quat
}

func newRodFrame(world []Vec3) *rodFrame {
	f := &rodFrame{local: make([]Vec3, len(world)), rotation: Identity}
	if len(world) == 0 {
		return f
	}
	start, end := world[0], world[len(world)-1]
	delta := end.Sub(start)
	dir := Forward
	if d := delta.Length(); d != 0 {
		dir = delta.Div(d)
	}
	f.position = start
	f.rotation = FromTo(Forward, dir)
	inv := f.rotation.Inverse()
	for i := 1; i < len(world); i++ {
		f.local[i] = inv.Rotate(world[i].Sub(start))
	}
	return f
}

// world maps the stored local points back into world space.
func (f *rodFrame) world(i int) Vec3 {
	return f.rotation.Rotate(f.local[i]).Add(f.position)
}

// ArcShape is an arc rotating FirstPoint about Normal through Center.
type ArcShape struct {
	FirstPoint Vec3
	Normal     Vec3
	Center     Vec3
	Angle      float64
	PointCount int
	StartWidth float64
	EndWidth   float64
	End        EndCap
}

// OrbitalShape is an arc from Start to End around Center.
type OrbitalShape struct {
	Start      Vec3
	End        Vec3
	Center     Vec3
	PointCount int
	StartWidth float64
	EndWidth   float64
	EndCap     EndCap
}

// SpiralSphereShape is a single line wrapped around a sphere.
type SpiralSphereShape struct {
	Center    Vec3
	Radius    float64
	Rotation  Quat
	LineWidth float64
}

// BoxShape is the wireframe of a box.
type BoxShape struct {
	Center    Vec3
	Size      Vec3
	Rotation  Quat
	LineWidth float64
}

// RotationShape visualizes a rotation of Angle degrees about Axis: the axis
// as a double-headed arrow and one arrowed arc per start point.
type RotationShape struct {
	Angle       float64
	Axis        Vec3
	Position    Vec3
	StartPoints []Vec3
	Orientation Quat
	ArcPoints   int
	LineWidth   float64
}

// CartesianPlaneShape is a grid with two arrowed axes and thinner lines every
// Increment units, out to Extents in each direction.
type CartesianPlaneShape struct {
	Center    Vec3
	Rotation  Quat
	LineWidth float64
	Extents   float64
	Increment float64
}

// RectangleShape is a rectangle drawn as four separate edges.
type RectangleShape struct {
	Origin    Vec3
	HalfSize  Vec2
	Offset    Vec2
	Rotation  Quat
	LineWidth float64
}

// DisabledShape hides a wire.
type DisabledShape struct{}

func (LineShape) Kind() Kind           { return KindLine }
func (RodShape) Kind() Kind            { return KindRod }
func (ArcShape) Kind() Kind            { return KindArc }
func (OrbitalShape) Kind() Kind        { return KindOrbital }
func (SpiralSphereShape) Kind() Kind   { return KindSpiralSphere }
func (BoxShape) Kind() Kind            { return KindBox }
func (RotationShape) Kind() Kind       { return KindRotation }
func (CartesianPlaneShape) Kind() Kind { return KindCartesianPlane }
func (RectangleShape) Kind() Kind      { return KindRectangle }
func (DisabledShape) Kind() Kind       { return KindDisabled }

func (LineShape) shape()           {}
func (RodShape) shape()            {}
func (ArcShape) shape()            {}
func (OrbitalShape) shape()        {}
func (SpiralSphereShape) shape()   {}
func (BoxShape) shape()            {}
func (RotationShape) shape()       {}
func (CartesianPlaneShape) shape() {}
func (RectangleShape) shape()      {}
func (DisabledShape) shape()       {}

// Equal reports whether a wire that committed old can keep its geometry when
// asked to draw new.
//
// Points, centers and other assigned positions must match exactly. Widths,
// angles and radii are compared within [Tolerance]. Rotations match if they
// are identical or component-wise within [Tolerance]. A committed rod is
// compared by mapping its stored local points back into world space.
func Equal(old, new Shape) bool {
	switch o := old.(type) {
	case nil:
		return false
	case LineShape:
		n, ok := new.(LineShape)
		return ok && sameVecs(o.Points, n.Points) &&
			eq(o.StartWidth, n.StartWidth) && eq(o.EndWidth, n.EndWidth) &&
			o.End == n.End && sameWidths(o.Widths, n.Widths)
	case RodShape:
		n, ok := new.(RodShape)
		return ok && sameRod(o, n.Points) &&
			eq(o.StartWidth, n.StartWidth) && eq(o.EndWidth, n.EndWidth) &&
			o.End == n.End
	case ArcShape:
		n, ok := new.(ArcShape)
		return ok && o.FirstPoint == n.FirstPoint && o.PointCount == n.PointCount &&
			o.Normal == n.Normal && o.Center == n.Center && eq(o.Angle, n.Angle) &&
			eq(o.StartWidth, n.StartWidth) && eq(o.EndWidth, n.EndWidth) &&
			o.End == n.End
	case OrbitalShape:
		n, ok := new.(OrbitalShape)
		return ok && o.Start == n.Start && o.End == n.End && o.Center == n.Center &&
			o.PointCount == n.PointCount &&
			eq(o.StartWidth, n.StartWidth) && eq(o.EndWidth, n.EndWidth) &&
			o.EndCap == n.EndCap
	case SpiralSphereShape:
		n, ok := new.(SpiralSphereShape)
		return ok && o.Center == n.Center && eq(o.Radius, n.Radius) &&
			eq(o.LineWidth, n.LineWidth) && sameRotation(o.Rotation, n.Rotation)
	case BoxShape:
		n, ok := new.(BoxShape)
		return ok && o.Center == n.Center && o.Size == n.Size &&
			eq(o.LineWidth, n.LineWidth) && sameRotation(o.Rotation, n.Rotation)
	case RotationShape:
		n, ok := new.(RotationShape)
		return ok && sameVecs(o.StartPoints, n.StartPoints) && o.Position == n.Position &&
			o.Axis == n.Axis && eq(o.Angle, n.Angle) && o.ArcPoints == n.ArcPoints &&
			eq(o.LineWidth, n.LineWidth) && sameRotation(o.Orientation, n.Orientation)
	case CartesianPlaneShape:
		n, ok := new.(CartesianPlaneShape)
		return ok && o.Center == n.Center && eq(o.Extents, n.Extents) &&
			eq(o.Increment, n.Increment) && eq(o.LineWidth, n.LineWidth) &&
			sameRotation(o.Rotation, n.Rotation)
	case RectangleShape:
		n, ok := new.(RectangleShape)
		return ok && o.Origin == n.Origin && o.HalfSize.ApproxEqual(n.HalfSize) &&
			o.Offset.ApproxEqual(n.Offset) && eq(o.LineWidth, n.LineWidth) &&
			sameRotation(o.Rotation, n.Rotation)
	case DisabledShape:
		_, ok := new.(DisabledShape)
		return ok
	default:
		panic(fmt.Sprintf("unhandled shape %T", old))
	}
}

// sameRod compares a rod against world points. Before it is committed a rod
// has no frame and its points are compared as given.
func sameRod(o RodShape, world []Vec3) bool {
	if o.frame == nil {
		return sameVecs(o.Points, world)
	}
	if len(o.frame.local) != len(world) {
		return false
	}
	for i := range world {
		if !o.frame.world(i).ApproxEqual(world[i]) {
			return false
		}
	}
	return true
}

func sameWidths(a, b []float64) bool {
	if len(a) != len(b) || (a == nil) != (b == nil) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
