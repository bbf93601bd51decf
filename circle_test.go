package lines

import (
	"math"
	"testing"
)

func TestCirclePointCount(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{1, 76},
		{-1, 76},
		{0.5, 38},
		{0, 1},
	}
	for _, tt := range tests {
		if got := CirclePointCount(tt.radius); got != tt.want {
			t.Errorf("CirclePointCount(%v) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestCircleStart(t *testing.T) {
	diff(t, Right, circleStart(Up))
	diff(t, Left, circleStart(Down.Mul(3)))
	diff(t, Left, circleStart(Forward))
	for _, n := range []Vec3{Right, V3(1, 2, 3), V3(0, 1, 1e-3)} {
		s := circleStart(n)
		if math.Abs(s.Dot(n)) > 1e-12 {
			t.Errorf("start %v is not perpendicular to %v", s, n)
		}
		if l := s.Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("start %v has length %v", s, l)
		}
	}
}

func TestWriteCircle(t *testing.T) {
	center := V3(-1, 0, 4)
	for _, normal := range []Vec3{Up, Forward, V3(1, -1, 2).Normalize()} {
		pts, err := WriteCircle(center, normal, 2, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(pts) != CirclePointCount(2) {
			t.Fatalf("got %d points, want %d", len(pts), CirclePointCount(2))
		}
		if !pts[0].ApproxEqual(pts[len(pts)-1]) {
			t.Errorf("normal %v: circle isn't closed: %v != %v", normal, pts[0], pts[len(pts)-1])
		}
		for i, p := range pts {
			r := p.Sub(center)
			if d := r.Length(); math.Abs(d-2) > 1e-9 {
				t.Errorf("normal %v: point %d is %v from the center, want 2", normal, i, d)
			}
			if d := r.Dot(normal); math.Abs(d) > 1e-9 {
				t.Errorf("normal %v: point %d is %v off the plane", normal, i, d)
			}
		}
	}
}

func TestWriteCircleZeroNormal(t *testing.T) {
	got, err := WriteCircle(Vec3{}, Vec3{}, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	want, err := WriteCircle(Vec3{}, Up, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)
}
