package lines

import (
	"fmt"
	"slices"
)

// Keyframe is the width of a line at a position along it. Time is the
// normalized arclength, from 0 at the first point to 1 at the last.
type Keyframe struct {
	Time  float64
	Width float64
}

// WidthProfile describes how the width of a line changes along its length.
// Keyframe times increase strictly, start at 0 and end at 1. Widths between
// keyframes are interpolated linearly.
type WidthProfile []Keyframe

// Flat returns the profile that tapers linearly from start to end.
func Flat(start, end float64) WidthProfile {
	return WidthProfile{{0, start}, {1, end}}
}

// At returns the width at normalized position t.
func (wp WidthProfile) At(t float64) float64 {
	switch {
	case len(wp) == 0:
		return 0
	case t <= wp[0].Time:
		return wp[0].Width
	case t >= wp[len(wp)-1].Time:
		return wp[len(wp)-1].Width
	}
	i, _ := slices.BinarySearchFunc(wp, t, func(k Keyframe, t float64) int {
		switch {
		case k.Time < t:
			return -1
		case k.Time > t:
			return 1
		default:
			return 0
		}
	})
	if wp[i].Time == t {
		return wp[i].Width
	}
	a, b := wp[i-1], wp[i]
	f := (t - a.Time) / (b.Time - a.Time)
	return a.Width + (b.Width-a.Width)*f
}

// Reverse returns the profile of the same line traversed from its end: the
// keyframes in reverse order, with every time t mapped to 1-t.
func (wp WidthProfile) Reverse() WidthProfile {
	if wp == nil {
		return nil
	}
	out := make(WidthProfile, len(wp))
	for i, k := range wp {
		out[len(wp)-1-i] = Keyframe{Time: 1 - k.Time, Width: k.Width}
	}
	return out
}

// Reverse returns the points in reverse order together with the reversed
// profile. Reversing twice yields the input again.
func Reverse(points []Vec3, profile WidthProfile) ([]Vec3, WidthProfile) {
	var out []Vec3
	if points != nil {
		out = slices.Clone(points)
		slices.Reverse(out)
	}
	return out, profile.Reverse()
}

// ProfileFromWidths returns a profile with one keyframe per point, placed at
// the point's normalized arclength. points and widths are parallel slices and
// must have the same length. Points that do not advance along the line are
// skipped so that keyframe times stay strictly increasing.
func ProfileFromWidths(points []Vec3, widths []float64) (WidthProfile, error) {
	if len(points) != len(widths) {
		return nil, fmt.Errorf("%d points but %d widths: %w", len(points), len(widths), ErrInvalidArgument)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%d points: %w", len(points), ErrInvalidArgument)
	}
	total := polylineLength(points)
	if total == 0 {
		return Flat(widths[0], widths[len(widths)-1]), nil
	}
	wp := WidthProfile{{0, widths[0]}}
	var dist float64
	for i := 1; i < len(points)-1; i++ {
		dist += points[i].Distance(points[i-1])
		t := dist / total
		if t <= wp[len(wp)-1].Time || t >= 1 {
			continue
		}
		wp = append(wp, Keyframe{t, widths[i]})
	}
	return append(wp, Keyframe{1, widths[len(widths)-1]}), nil
}
