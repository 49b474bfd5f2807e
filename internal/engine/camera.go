package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera handles the view and projection matrices
type PerspectiveCamera struct {
	FOV         float32 // vertical, degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:         fov,
		AspectRatio: aspect,
		NearPlane:   near,
		FarPlane:    far,
		Up:          mgl32.Vec3{0, 1, 0},
	}
}

// SetAspect derives the aspect ratio from viewport dimensions. Degenerate sizes are ignored.
func (c *PerspectiveCamera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}
