// Package raster renders wires into an image, for previews and tests.
//
// Points are projected orthographically onto the XY plane, with y pointing
// up. Every segment of a line is filled as a quad whose width follows the
// line's width profile. There are no joins or caps beyond what the profile
// describes.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/vector"

	"honnef.co/go/lines"
)

// Canvas is a [lines.Factory] whose renderables draw into an image.
type Canvas struct {
	img    *image.RGBA
	scale  float64
	origin lines.Vec2
	items  []*Renderable
	ras    *vector.Rasterizer
}

// NewCanvas returns a canvas drawing into img. One world unit covers scale
// pixels and the world origin lands on the pixel position origin.
//
// A canvas without an image can't create renderables.
func NewCanvas(img *image.RGBA, scale float64, origin lines.Vec2) *Canvas {
	c := &Canvas{img: img, scale: scale, origin: origin}
	if img != nil {
		size := img.Bounds().Size()
		c.ras = vector.NewRasterizer(size.X, size.Y)
	}
	return c
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Len returns the number of live renderables.
func (c *Canvas) Len() int { return len(c.items) }

// NewRenderable implements [lines.Factory].
func (c *Canvas) NewRenderable() (lines.Renderable, error) {
	if c.img == nil {
		return nil, fmt.Errorf("canvas has no image: %w", lines.ErrMissingResource)
	}
	r := &Renderable{rotation: lines.Identity}
	c.items = append(c.items, r)
	return r, nil
}

// Release implements [lines.Factory].
func (c *Canvas) Release(r lines.Renderable) {
	c.items = slices.DeleteFunc(c.items, func(item *Renderable) bool {
		return item == r
	})
}

// Project maps a world space point to pixel coordinates.
func (c *Canvas) Project(p lines.Vec3) (x, y float64) {
	return c.origin.X + p.X*c.scale, c.origin.Y - p.Y*c.scale
}

// Render draws every live renderable, in the order they were created.
func (c *Canvas) Render() {
	if c.img == nil {
		return
	}
	for _, r := range c.items {
		c.render(r)
	}
}

func (c *Canvas) render(r *Renderable) {
	if len(r.points) < 2 || r.color == nil {
		return
	}
	n := len(r.points)
	px := make([]lines.Vec2, n)
	for i, p := range r.points {
		if r.local {
			p = r.rotation.Rotate(p).Add(r.position)
		}
		x, y := c.Project(p)
		px[i] = lines.V2(x, y)
	}

	// Widths follow the normalized arclength in world space.
	widths := make([]float64, n)
	var total float64
	dists := make([]float64, n)
	for i := 1; i < n; i++ {
		total += r.points[i].Distance(r.points[i-1])
		dists[i] = total
	}
	for i := range widths {
		t := 0.0
		if total > 0 {
			t = dists[i] / total
		}
		widths[i] = r.profile.At(t) * c.scale
	}

	src := image.NewUniform(r.color)
	for i := 1; i < n; i++ {
		c.quad(px[i-1], px[i], widths[i-1], widths[i], src)
	}
	if r.loop {
		c.quad(px[n-1], px[0], widths[n-1], widths[0], src)
	}
}

// quad fills the segment from a to b, wa wide at a and wb wide at b.
func (c *Canvas) quad(a, b lines.Vec2, wa, wb float64, src image.Image) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 || (wa <= 0 && wb <= 0) {
		return
	}
	nx, ny := -dy/l, dx/l
	ha, hb := wa/2, wb/2

	size := c.img.Bounds().Size()
	c.ras.Reset(size.X, size.Y)
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(float32(a.X+nx*ha), float32(a.Y+ny*ha))
	c.ras.LineTo(float32(b.X+nx*hb), float32(b.Y+ny*hb))
	c.ras.LineTo(float32(b.X-nx*hb), float32(b.Y-ny*hb))
	c.ras.LineTo(float32(a.X-nx*ha), float32(a.Y-ny*ha))
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// Renderable holds the state a wire pushed to it until the canvas renders.
type Renderable struct {
	points   []lines.Vec3
	profile  lines.WidthProfile
	color    color.Color
	loop     bool
	local    bool
	position lines.Vec3
	rotation lines.Quat
}

func (r *Renderable) SetPoints(points []lines.Vec3)        { r.points = slices.Clone(points) }
func (r *Renderable) SetWidthProfile(p lines.WidthProfile) { r.profile = slices.Clone(p) }
func (r *Renderable) SetColor(c color.Color)               { r.color = c }
func (r *Renderable) SetLoop(loop bool)                    { r.loop = loop }
func (r *Renderable) SetLocalSpace(local bool)             { r.local = local }
func (r *Renderable) Points() []lines.Vec3                 { return r.points }
func (r *Renderable) Position() lines.Vec3                 { return r.position }
func (r *Renderable) SetPosition(p lines.Vec3)             { r.position = p }
func (r *Renderable) Rotation() lines.Quat                 { return r.rotation }
func (r *Renderable) SetRotation(q lines.Quat)             { r.rotation = q }
func (r *Renderable) Color() color.Color                   { return r.color }
func (r *Renderable) WidthProfile() lines.WidthProfile     { return r.profile }
func (r *Renderable) Loop() bool                           { return r.loop }
