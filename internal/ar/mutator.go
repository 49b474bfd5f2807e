package ar

import "arscene/internal/engine"

// RenderableObject is anything exposing a geometry and a material.
type RenderableObject = engine.Renderable

// AddObjectToScene appends object to the scene's children. Values that do not
// implement RenderableObject, including nil pointers, are rejected with an
// *InvalidObjectError and the scene is left untouched.
func AddObjectToScene(scene *engine.Scene, object any) error {
	r, ok := object.(RenderableObject)
	if !ok || isNil(r) {
		return &InvalidObjectError{Object: object}
	}
	if scene == nil {
		return ErrSceneNotInitialized
	}
	scene.Add(r)
	return nil
}
