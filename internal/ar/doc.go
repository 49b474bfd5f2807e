// Package ar manages the lifecycle of an augmented-reality scene: it builds
// the scene/camera/renderer bundle, validates objects inserted into the scene
// and issues one render pass per call.
//
// The package never owns engine resources. Callers own the bundle, drive the
// frame loop and release the renderer when the session ends.
package ar
