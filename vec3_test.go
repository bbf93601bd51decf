package lines

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{Right, Up, Forward},
		{Up, Forward, Right},
		{Forward, Right, Up},
		{Up, Right, Back},
		{Up, Up, Vec3{}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.a.Cross(tt.b))
	}
}

func TestVec3Normalize(t *testing.T) {
	diff(t, Vec3{}, Vec3{}.Normalize())
	diff(t, Up, V3(0, 5, 0).Normalize())
	if l := V3(3, -4, 12).Normalize().Length(); !eq(l, 1) {
		t.Errorf("got length %v, want 1", l)
	}
}

func TestVec3Angle(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{Right, Up, 90},
		{Right, Left, 180},
		{Right, V3(1, 1, 0), 45},
		{Right, Right, 0},
		{Vec3{}, Right, 0},
	}
	for _, tt := range tests {
		if got := tt.a.Angle(tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("angle between %v and %v: got %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParallel(t *testing.T) {
	if !parallel(Up, Down) {
		t.Error("up and down should be parallel")
	}
	if !parallel(Up, V3(0, 3, 0)) {
		t.Error("up and a scaled up should be parallel")
	}
	if parallel(Up, V3(0, 1, 1e-3)) {
		t.Error("up and a tilted up should not be parallel")
	}
}

func TestEq(t *testing.T) {
	if !eq(1, 1+Tolerance/2) {
		t.Error("values within tolerance should be equal")
	}
	if eq(1, 1+Tolerance) {
		t.Error("values a full tolerance apart should not be equal")
	}
}

func TestPolylineLength(t *testing.T) {
	pts := []Vec3{{}, V3(3, 0, 0), V3(3, 4, 0)}
	if got := polylineLength(pts); got != 7 {
		t.Errorf("got %v, want 7", got)
	}
	if got := polylineLength(pts[:1]); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}
