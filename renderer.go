package lines

import (
	"image/color"
)

// Renderer is the drawable side of a wire. Implementations upload what they
// are given to whatever actually draws lines; this package never draws.
type Renderer interface {
	SetPoints(points []Vec3)
	SetWidthProfile(profile WidthProfile)
	SetColor(c color.Color)
	SetLoop(loop bool)
	// SetLocalSpace selects whether points are relative to the renderer's
	// transform (true) or in world space (false).
	SetLocalSpace(local bool)
	Points() []Vec3
}

// Transform places a renderer in the world.
type Transform interface {
	Position() Vec3
	SetPosition(p Vec3)
	Rotation() Quat
	SetRotation(q Quat)
}

// Renderable is a renderer together with its transform.
type Renderable interface {
	Renderer
	Transform
}

// Factory creates the renderables wires draw into and disposes of them.
type Factory interface {
	// NewRenderable returns a fresh renderable. It fails with an error
	// wrapping ErrMissingResource if something needed for drawing, such as
	// a material, is unavailable.
	NewRenderable() (Renderable, error)
	// Release disposes of a renderable created by NewRenderable. The
	// renderable is not used again.
	Release(r Renderable)
}
