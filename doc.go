// Package lines draws 3D debug visualizations (lines, arrows, arcs, circles,
// spheres, boxes, rotations and grids) as polylines with varying width.
//
// It was designed to make vector math visible while a program is running.
// Geometry is computed in this package; drawing is left to a [Renderer]
// provided by the caller. The raster subpackage contains one that renders
// into an image.
//
// # Wires
//
// A [Wire] owns one [Renderable] and draws one shape into it at a time. Wires
// are meant to be redrawn every frame with whatever the program currently
// wants to see:
//
//	w.Arrow(origin, origin.Add(velocity), lines.Style{Color: colornames.Red})
//
// Each call describes the shape as a [Shape] value and compares it with the
// shape the wire drew last (see [Equal]). Only if they differ is new geometry
// computed and handed to the renderer. Colors are not part of a shape and are
// applied on every call.
//
// Rotations, cartesian planes and rectangles are composite shapes: they draw
// into child wires the wire creates through its [Factory]. Children are
// released when the wire switches to a shape that doesn't need them.
//
// A [Registry] creates wires that share a factory and a [Config], and looks
// them up by name.
//
// # Geometry
//
// The functions that compute geometry are usable on their own. [WriteArc],
// [WriteArcOnSphere], [WriteArcBetween], [WriteCircle], [WriteBezier],
// [SpiralSphere] and [BoxWireframe] produce points. [ArrowProfile] and
// [ArrowProfileBothEnds] turn a polyline and its widths into an arrow, described by
// a [WidthProfile].
//
// # Units
//
// Angles are in degrees. Widths are in world units. Points are compared
// exactly, while widths, angles and radii are compared within [Tolerance].
//
// # Errors and logging
//
// Invalid arguments are reported with errors wrapping [ErrInvalidArgument];
// missing renderer resources with errors wrapping [ErrMissingResource]. A
// failed call leaves the wire showing what it showed before. Nothing is
// logged unless a logger is installed with [SetLogger].
package lines
