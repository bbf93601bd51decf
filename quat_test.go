package lines

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		q    Quat
		v    Vec3
		want Vec3
	}{
		{AngleAxis(90, Forward), Right, Up},
		{AngleAxis(90, Up), Forward, Right},
		{AngleAxis(90, Right), Up, Forward},
		{AngleAxis(180, Up), Right, Left},
		{AngleAxis(-90, Forward), Up, Right},
		{Identity, V3(1, 2, 3), V3(1, 2, 3)},
		// The zero quaternion acts like the identity.
		{Quat{}, V3(1, 2, 3), V3(1, 2, 3)},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.q.Rotate(tt.v), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestQuatMul(t *testing.T) {
	a := AngleAxis(90, Up)
	b := AngleAxis(90, Right)
	v := V3(0.3, -1, 2)
	// Mul applies its argument first.
	diff(t, a.Rotate(b.Rotate(v)), a.Mul(b).Rotate(v), cmpopts.EquateApprox(0, 1e-12))
	diff(t, v, a.Inverse().Mul(a).Rotate(v), cmpopts.EquateApprox(0, 1e-12))
}

func TestFromTo(t *testing.T) {
	dirs := []Vec3{Up, Down, Right, Left, Forward, Back, V3(1, 2, 3), V3(-1, 0.5, 0)}
	for _, from := range dirs {
		for _, to := range dirs {
			got := FromTo(from, to).Rotate(from.Normalize())
			diff(t, to.Normalize(), got, cmpopts.EquateApprox(0, 1e-9))
		}
	}
	diff(t, Identity, FromTo(Vec3{}, Up))
}

func TestQuatAngleAxis(t *testing.T) {
	tests := []struct {
		deg  float64
		axis Vec3
	}{
		{90, Up},
		{45, V3(1, 1, 0).Normalize()},
		{270, Right},
		{359, Forward},
	}
	for _, tt := range tests {
		deg, axis := AngleAxis(tt.deg, tt.axis).AngleAxis()
		if math.Abs(deg-tt.deg) > 1e-9 {
			t.Errorf("got angle %v, want %v", deg, tt.deg)
		}
		diff(t, tt.axis, axis, cmpopts.EquateApprox(0, 1e-9))
	}

	deg, axis := Identity.AngleAxis()
	if deg != 0 || axis != Right {
		t.Errorf("identity: got %v about %v, want 0 about %v", deg, axis, Right)
	}
}

func TestSameRotation(t *testing.T) {
	q := AngleAxis(30, Up)
	if !sameRotation(q, q) {
		t.Error("a rotation should equal itself")
	}
	nudged := q
	nudged.W += Tolerance / 4
	if !sameRotation(q, nudged) {
		t.Error("rotations within tolerance should be equal")
	}
	if sameRotation(q, AngleAxis(31, Up)) {
		t.Error("different rotations should not be equal")
	}
}
