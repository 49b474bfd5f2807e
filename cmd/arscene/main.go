package main

import (
	"flag"
	"log"
	"runtime"

	"arscene/internal/config"
	"arscene/internal/session"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	fps := flag.Int("fps", 0, "frame rate cap, 0 for unlimited")
	fov := flag.Float64("fov", 75, "vertical field of view in degrees")
	flag.Parse()

	config.SetFPSLimit(*fps)
	config.SetFOV(float32(*fov))

	// Interrupts exit through closer. Its cleanups run off the main thread, so
	// they must not touch GL or GLFW; the OS reclaims the context on exit.
	closer.Bind(func() {
		log.Println("arscene: shutting down")
	})

	if err := glfw.Init(); err != nil {
		closer.Fatalln(err)
	}

	window, err := setupWindow()
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	s, err := session.New(window)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	runErr := s.Run()
	s.Close()
	glfw.Terminate()

	if runErr != nil {
		closer.Fatalln("render loop stopped:", runErr)
	}
	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(config.DefaultViewportWidth, config.DefaultViewportHeight, "arscene", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; frame pacing is done by the session's FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}
