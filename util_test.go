package lines

import (
	"image/color"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// fakeRenderable records what a wire pushed to it.
type fakeRenderable struct {
	points   []Vec3
	profile  WidthProfile
	color    color.Color
	loop     bool
	local    bool
	position Vec3
	rotation Quat

	pointUpdates int
	colorUpdates int
	released     bool
}

func (r *fakeRenderable) SetPoints(points []Vec3) {
	r.points = slices.Clone(points)
	r.pointUpdates++
}

func (r *fakeRenderable) SetWidthProfile(p WidthProfile) { r.profile = slices.Clone(p) }

func (r *fakeRenderable) SetColor(c color.Color) {
	r.color = c
	r.colorUpdates++
}

func (r *fakeRenderable) SetLoop(loop bool)        { r.loop = loop }
func (r *fakeRenderable) SetLocalSpace(local bool) { r.local = local }
func (r *fakeRenderable) Points() []Vec3           { return r.points }
func (r *fakeRenderable) Position() Vec3           { return r.position }
func (r *fakeRenderable) SetPosition(p Vec3)       { r.position = p }
func (r *fakeRenderable) Rotation() Quat           { return r.rotation }
func (r *fakeRenderable) SetRotation(q Quat)       { r.rotation = q }

// fakeFactory hands out fakeRenderables. After limit renderables, if limit is
// positive, it fails.
type fakeFactory struct {
	created  []*fakeRenderable
	released int
	limit    int
}

func (f *fakeFactory) NewRenderable() (Renderable, error) {
	if f.limit > 0 && len(f.created) >= f.limit {
		return nil, ErrMissingResource
	}
	r := &fakeRenderable{rotation: Identity}
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeFactory) Release(r Renderable) {
	r.(*fakeRenderable).released = true
	f.released++
}

// live returns the number of renderables not yet released.
func (f *fakeFactory) live() int { return len(f.created) - f.released }

func newTestWire(t *testing.T) (*Wire, *fakeRenderable, *fakeFactory) {
	t.Helper()
	f := &fakeFactory{}
	r, err := f.NewRenderable()
	if err != nil {
		t.Fatal(err)
	}
	w := NewWire(r, WithName("test"), WithFactory(f))
	return w, r.(*fakeRenderable), f
}
