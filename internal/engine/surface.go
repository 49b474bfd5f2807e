package engine

import "github.com/go-gl/glfw/v3.3/glfw"

// WindowSurface binds a renderer to a GLFW window.
type WindowSurface struct {
	Window *glfw.Window
}

func NewWindowSurface(w *glfw.Window) *WindowSurface {
	return &WindowSurface{Window: w}
}

func (s *WindowSurface) Size() (int, int) {
	return s.Window.GetFramebufferSize()
}

// SwapBuffers presents the frame that was just rendered.
func (s *WindowSurface) SwapBuffers() {
	s.Window.SwapBuffers()
}
