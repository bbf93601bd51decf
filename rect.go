package lines

// BoxWireframe returns a 16-point path along the edges of the box with the
// given center and size, rotated by rotation about its center. Every pair of
// consecutive points is one of the box's edges, so the box can be drawn as one
// continuous stroke. Three of the twelve edges are traversed twice, and the
// last point shares an edge with the first.
func BoxWireframe(center, size Vec3, rotation Quat) []Vec3 {
	x := Right.Mul(size.X / 2)
	y := Up.Mul(size.Y / 2)
	z := Forward.Mul(size.Z / 2)
	corner := func(sz, sy, sx float64) Vec3 {
		return z.Mul(sz).Add(y.Mul(sy)).Add(x.Mul(sx))
	}
	line := []Vec3{
		corner(+1, +1, -1), corner(-1, +1, -1), corner(-1, -1, -1), corner(-1, -1, +1),
		corner(-1, +1, +1), corner(+1, +1, +1), corner(+1, -1, +1), corner(+1, -1, -1),
		corner(+1, +1, -1), corner(+1, +1, +1), corner(+1, -1, +1), corner(-1, -1, +1),
		corner(-1, +1, +1), corner(-1, +1, -1), corner(-1, -1, -1), corner(+1, -1, -1),
	}
	for i, p := range line {
		line[i] = rotation.Rotate(p).Add(center)
	}
	return line
}

// RectangleCorners returns the corners of a rectangle in the XY plane of the
// frame given by origin and rotation. The rectangle is centered on offset
// within that plane and extends halfSize in each direction. Corners are in
// order top-left, top-right, bottom-right, bottom-left.
func RectangleCorners(origin Vec3, rotation Quat, halfSize, offset Vec2) [4]Vec3 {
	corners := [4]Vec3{
		offset.Add(Vec2{-halfSize.X, halfSize.Y}).Vec3(),
		offset.Add(Vec2{halfSize.X, halfSize.Y}).Vec3(),
		offset.Add(Vec2{halfSize.X, -halfSize.Y}).Vec3(),
		offset.Add(Vec2{-halfSize.X, -halfSize.Y}).Vec3(),
	}
	for i := range corners {
		corners[i] = rotation.Rotate(corners[i]).Add(origin)
	}
	return corners
}
