package lines

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBoxWireframeEdges(t *testing.T) {
	center := V3(1, -2, 3)
	size := V3(2, 4, 6)
	pts := BoxWireframe(center, size, Identity)
	if len(pts) != 16 {
		t.Fatalf("got %d points, want 16", len(pts))
	}

	type edge [2]Vec3
	edges := map[edge]bool{}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1].Sub(center), pts[i].Sub(center)
		for _, p := range []Vec3{a, b} {
			if math.Abs(p.X) != 1 || math.Abs(p.Y) != 2 || math.Abs(p.Z) != 3 {
				t.Fatalf("point %v is not a corner", p)
			}
		}
		changed := 0
		if a.X != b.X {
			changed++
		}
		if a.Y != b.Y {
			changed++
		}
		if a.Z != b.Z {
			changed++
		}
		if changed != 1 {
			t.Errorf("points %d and %d are not joined by an edge: %v, %v", i-1, i, a, b)
		}
		if b.X < a.X || b.Y < a.Y || b.Z < a.Z {
			a, b = b, a
		}
		edges[edge{a, b}] = true
	}
	if len(edges) != 12 {
		t.Errorf("got %d distinct edges, want 12", len(edges))
	}
}

func TestBoxWireframeRotation(t *testing.T) {
	rot := AngleAxis(37, V3(1, 2, -1))
	center := V3(5, 0, 0)
	size := V3(1, 2, 3)
	plain := BoxWireframe(Vec3{}, size, Identity)
	rotated := BoxWireframe(center, size, rot)
	for i := range plain {
		diff(t, rot.Rotate(plain[i]).Add(center), rotated[i], cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestRectangleCorners(t *testing.T) {
	got := RectangleCorners(V3(0, 0, 1), Identity, V2(2, 1), V2(1, 0))
	want := [4]Vec3{
		V3(-1, 1, 1),
		V3(3, 1, 1),
		V3(3, -1, 1),
		V3(-1, -1, 1),
	}
	diff(t, want, got)

	// Turned a quarter about up, the XY plane becomes the ZY plane.
	got = RectangleCorners(Vec3{}, AngleAxis(90, Up), V2(1, 1), Vec2{})
	want = [4]Vec3{
		V3(0, 1, 1),
		V3(0, 1, -1),
		V3(0, -1, -1),
		V3(0, -1, 1),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}
