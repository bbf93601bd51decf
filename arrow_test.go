package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArrowProfile(t *testing.T) {
	pts := []Vec3{{}, V3(10, 0, 0)}
	line, wp := ArrowProfile(pts, 1, 1, 3, nil)

	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, []Vec3{{}, V3(7, 0, 0), V3(7+10.0/512, 0, 0), V3(10, 0, 0)}, line, opt)
	diff(t, WidthProfile{{0, 1}, {0.7, 1}, {0.7 + 1.0/512, 3}, {1, 0}}, wp, opt)
}

func TestArrowProfileDropsPointsInsideHead(t *testing.T) {
	pts := []Vec3{{}, V3(4, 0, 0), V3(5, 0, 0), V3(6, 0, 0)}
	line, wp := ArrowProfile(pts, 0.5, 1, 3, nil)

	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, []Vec3{{}, V3(3, 0, 0), V3(3+6.0/512, 0, 0), V3(6, 0, 0)}, line, opt)
	diff(t, WidthProfile{{0, 0.5}, {0.5, 1}, {0.5 + 1.0/512, 3}, {1, 0}}, wp, opt)
}

func TestArrowProfileKeepsPointsBeforeHead(t *testing.T) {
	pts := []Vec3{{}, V3(0, 5, 0), V3(5, 5, 0), V3(10, 5, 0)}
	line, _ := ArrowProfile(pts, 1, 1, 3, nil)
	if len(line) != 6 {
		t.Fatalf("got %d points, want 6", len(line))
	}
	diff(t, pts[:3], line[:3])
	diff(t, V3(7, 5, 0), line[3], cmpopts.EquateApprox(0, 1e-12))
	diff(t, pts[3], line[5])
}

func TestArrowProfileDegenerate(t *testing.T) {
	// A line no longer than its arrowhead is all arrowhead.
	const e = 0.5
	for _, l := range []float64{0.1, 1, 3 * e} {
		pts := []Vec3{{}, V3(l/2, 0, 0), V3(l, 0, 0)}
		line, wp := ArrowProfile(pts, 2, e, 3, nil)
		diff(t, []Vec3{{}, V3(l, 0, 0)}, line)
		diff(t, WidthProfile{{0, 3 * e}, {1, 0}}, wp)
	}

	line, wp := ArrowProfile([]Vec3{Up}, 1, 1, 3, nil)
	diff(t, []Vec3{Up, Up}, line)
	diff(t, WidthProfile{{0, 3}, {1, 0}}, wp)

	line, wp = ArrowProfile(nil, 1, 1, 3, nil)
	if line != nil || wp != nil {
		t.Errorf("got %v, %v for no points, want nil", line, wp)
	}
}

func TestArrowProfileNoHead(t *testing.T) {
	pts := []Vec3{{}, V3(4, 0, 0), V3(10, 0, 0)}
	for _, e := range []float64{0, -1} {
		line, wp := ArrowProfile(pts, 2, e, 3, nil)
		diff(t, pts, line)
		diff(t, Flat(2, 0), wp)
	}

	existing := WidthProfile{{0, 1}, {0.4, 2}, {1, 0}}
	_, wp := ArrowProfile(pts, 2, 0, 3, existing)
	diff(t, existing, wp)
}

func TestArrowProfileExisting(t *testing.T) {
	pts := []Vec3{{}, V3(10, 0, 0)}
	existing := WidthProfile{{0, 2}, {0.5, 1}, {0.9, 5}, {1, 1}}
	_, wp := ArrowProfile(pts, 9, 1, 3, existing)
	want := WidthProfile{{0, 2}, {0.5, 1}, {0.7, 1}, {0.7 + 1.0/512, 3}, {1, 0}}
	diff(t, want, wp, cmpopts.EquateApprox(0, 1e-12))
}

func TestArrowProfileTimesIncrease(t *testing.T) {
	pts := []Vec3{{}, V3(10, 0, 0)}
	// A keyframe exactly at the arrowhead's base is replaced.
	arrowSize, length := 3.0, 10.0
	existing := WidthProfile{{0, 2}, {1 - arrowSize/length, 7}, {1, 1}}
	_, wp := ArrowProfile(pts, 2, 1, 3, existing)
	for i := 1; i < len(wp); i++ {
		if wp[i].Time <= wp[i-1].Time {
			t.Errorf("keyframe %d at %v doesn't follow %v", i, wp[i].Time, wp[i-1].Time)
		}
	}
	if len(wp) != 4 {
		t.Errorf("got %d keyframes, want 4", len(wp))
	}
}

func TestArrowProfileBothEndsSymmetry(t *testing.T) {
	pts := []Vec3{{}, V3(10, 0, 0)}
	line, wp := ArrowProfileBothEnds(pts, 1, 1, 3)

	opt := cmpopts.EquateApprox(0, 1e-9)
	want := []Vec3{{}, V3(3-10.0/512, 0, 0), V3(3, 0, 0), V3(7, 0, 0), V3(7+10.0/512, 0, 0), V3(10, 0, 0)}
	diff(t, want, line, opt)

	mirrored := make([]Vec3, len(line))
	for i, p := range line {
		mirrored[len(line)-1-i] = V3(10-p.X, p.Y, p.Z)
	}
	diff(t, line, mirrored, opt)
	diff(t, wp, wp.Reverse(), opt)

	if wp[0].Width != 0 || wp[len(wp)-1].Width != 0 {
		t.Errorf("both ends should taper to a point, got %v", wp)
	}
}

func TestArrowProfileBothEndsUneven(t *testing.T) {
	pts := []Vec3{{}, V3(10, 0, 0)}
	const a, b = 0.5, 1.0
	line, wp := ArrowProfileBothEnds(pts, a, b, 3)
	if len(line) != 6 || len(wp) != 6 {
		t.Fatalf("got %d points and %d keyframes, want 6 and 6", len(line), len(wp))
	}
	opt := cmpopts.EquateApprox(0, 1e-9)

	// The head at the end is the one a single arrow would get.
	endLine, endWP := ArrowProfile(pts, a, b, 3, nil)
	diff(t, endLine[1:], line[3:], opt)
	diff(t, endWP[1:], wp[3:], opt)

	// The head at the start is a single arrow drawn the other way, with the
	// widths swapped.
	startLine, startWP := Reverse(ArrowProfile([]Vec3{pts[1], pts[0]}, b, a, 3, nil))
	diff(t, startLine[:3], line[:3], opt)
	diff(t, startWP[:3], wp[:3], opt)

	if got, want := wp[1].Width, 3*a; got != want {
		t.Errorf("start head is %v wide, want %v", got, want)
	}
	if got, want := wp[4].Width, 3*b; got != want {
		t.Errorf("end head is %v wide, want %v", got, want)
	}
}
