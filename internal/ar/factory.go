package ar

import (
	"log"

	"arscene/internal/config"
	"arscene/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneBundle is the scene, camera and renderer of one AR session.
type SceneBundle struct {
	Scene    *engine.Scene
	Camera   *engine.PerspectiveCamera
	Renderer engine.Renderer
}

// Valid reports whether every part of the bundle is present.
func (b *SceneBundle) Valid() bool {
	return b != nil && b.Scene != nil && b.Camera != nil && !isNil(b.Renderer)
}

// Resize keeps the camera aspect and the renderer viewport in step with the surface.
func (b *SceneBundle) Resize(width, height int) {
	if b == nil || b.Camera == nil || width <= 0 || height <= 0 {
		return
	}
	b.Camera.SetAspect(width, height)
	if !isNil(b.Renderer) {
		b.Renderer.SetSize(width, height)
	}
}

// InitializeARScene builds an empty scene, a perspective camera sized to the
// surface and a GL renderer bound to it. A nil surface or one reporting a
// degenerate size falls back to the default viewport.
func InitializeARScene(surface engine.Surface) *SceneBundle {
	width, height := config.DefaultViewportWidth, config.DefaultViewportHeight
	if surface != nil {
		if w, h := surface.Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}

	near, far := config.GetClipPlanes()
	camera := engine.NewPerspectiveCamera(config.GetFOV(), float32(width)/float32(height), near, far)
	camera.Position = mgl32.Vec3{0, 0, 5}

	renderer := engine.NewGLRenderer(surface)
	renderer.SetSize(width, height)

	log.Printf("AR scene initialized: viewport %dx%d, fov %.0f", width, height, camera.FOV)

	return &SceneBundle{
		Scene:    engine.NewScene(),
		Camera:   camera,
		Renderer: renderer,
	}
}
