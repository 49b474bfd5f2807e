package engine

// Renderer draws a scene from a camera's point of view.
type Renderer interface {
	Render(scene *Scene, camera *PerspectiveCamera) error
	SetSize(width, height int)
}

// Surface is the display a renderer is bound to.
type Surface interface {
	// Size returns the framebuffer size in pixels.
	Size() (width, height int)
}
