package lines

import "slices"

// DefaultArrowHeadMultiplier is the default ratio between the width of an
// arrowhead and the width of the line at its base. It is also the ratio
// between the arrowhead's length and that width.
const DefaultArrowHeadMultiplier = 3

// arrowFlare is the distance between an arrowhead's base and its widest point,
// as a fraction of the line's length. The width profile jumps from the line
// width to the arrowhead width across that gap.
const arrowFlare = 1.0 / 512

// ArrowProfile turns the polyline points into an arrow pointing at its last
// point. The arrowhead is endWidth*multiplier long and as wide at its base.
//
// The returned points are the input points up to the one before the
// arrowhead's base, followed by the base, the base's flared copy and the tip.
// The returned profile tapers from startWidth to endWidth, flares to the
// arrowhead width and ends in a point.
//
// If existing is not nil, it is the profile of points from an earlier call
// (see [ArrowProfileBothEnds]); its keyframes up to the arrowhead are kept in place of
// the plain taper.
//
// A line no longer than the arrowhead becomes all arrowhead: the two end
// points with a profile that narrows from the arrowhead width to zero. An
// arrowhead of no size leaves the points and existing as they are, or tapers
// the line from startWidth to zero if there is no existing profile.
func ArrowProfile(points []Vec3, startWidth, endWidth, multiplier float64, existing WidthProfile) ([]Vec3, WidthProfile) {
	if len(points) == 0 {
		return nil, nil
	}
	arrowSize := endWidth * multiplier
	if !(arrowSize > 0) {
		if existing != nil {
			return slices.Clone(points), slices.Clone(existing)
		}
		return slices.Clone(points), Flat(startWidth, 0)
	}
	last := len(points) - 1

	// Walk backwards from the tip until the arrowhead fits.
	var (
		dist          float64
		found         bool
		lastGoodIndex int
		arrowheadBase Vec3
	)
	for i := last; i > 0; i-- {
		dist += points[i].Distance(points[i-1])
		if !found && dist >= arrowSize {
			found = true
			lastGoodIndex = i - 1
			dir := points[i].Sub(points[i-1]).Normalize()
			arrowheadBase = points[lastGoodIndex].Add(dir.Mul(dist - arrowSize))
		}
	}
	if dist <= arrowSize {
		return []Vec3{points[0], points[last]}, WidthProfile{{0, arrowSize}, {1, 0}}
	}

	dir := points[last].Sub(arrowheadBase).Normalize()
	arrowheadWidest := arrowheadBase.Add(dir.Mul(dist * arrowFlare))

	line := make([]Vec3, lastGoodIndex+4)
	copy(line, points[:lastGoodIndex+1])
	line[lastGoodIndex+1] = arrowheadBase
	line[lastGoodIndex+2] = arrowheadWidest
	line[lastGoodIndex+3] = points[last]

	baseTime := 1 - arrowSize/dist
	widestTime := 1 - (arrowSize/dist - arrowFlare)
	head := []Keyframe{{baseTime, endWidth}, {widestTime, arrowSize}, {1, 0}}
	if existing == nil {
		return line, append(WidthProfile{{0, startWidth}}, head...)
	}

	// Keyframes past the arrowhead base are replaced by the arrowhead.
	valid := len(existing)
	for i, k := range existing {
		if k.Time > baseTime {
			valid = i
			break
		}
	}
	profile := make(WidthProfile, 0, valid+len(head))
	profile = append(profile, existing[:valid]...)
	if valid > 0 && profile[valid-1].Time == baseTime {
		// Keep times strictly increasing.
		profile = profile[:valid-1]
	}
	return line, append(profile, head...)
}

// ArrowProfileBothEnds turns the polyline points into a double-headed arrow. The
// arrowhead at the last point is sized from endWidth, the one at the first
// point from startWidth.
//
// It builds the arrow at the end, reverses the result, builds the second arrow
// on what is now the end while keeping the first arrow's profile, and
// reverses back.
func ArrowProfileBothEnds(points []Vec3, startWidth, endWidth, multiplier float64) ([]Vec3, WidthProfile) {
	return arrowBothEnds(points, startWidth, endWidth, multiplier, nil)
}

func arrowBothEnds(points []Vec3, startWidth, endWidth, multiplier float64, existing WidthProfile) ([]Vec3, WidthProfile) {
	line, profile := ArrowProfile(points, startWidth, endWidth, multiplier, existing)
	line, profile = Reverse(line, profile)
	line, profile = ArrowProfile(line, endWidth, startWidth, multiplier, profile)
	return Reverse(line, profile)
}
