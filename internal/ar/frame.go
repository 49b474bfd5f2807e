package ar

import (
	"reflect"

	"arscene/internal/engine"
)

// RenderARScene runs exactly one render pass of scene from camera. Errors from
// the renderer are returned unmodified. Frame pacing is the caller's job.
func RenderARScene(renderer engine.Renderer, scene *engine.Scene, camera *engine.PerspectiveCamera) error {
	if isNil(renderer) {
		return ErrRendererNotInitialized
	}
	return renderer.Render(scene, camera)
}

// isNil also catches a typed nil pointer stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
