package session

import (
	"fmt"
	"log"
	"time"

	"arscene/internal/ar"
	"arscene/internal/engine"
	"arscene/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

const slowFrame = 16 * time.Millisecond

// Session owns the frame loop of one AR view: it feeds objects into the
// scene and requests one render pass per frame.
type Session struct {
	Bundle *ar.SceneBundle

	window  *glfw.Window
	surface *engine.WindowSurface

	spinning []*engine.Mesh

	// Render bookkeeping lives here, at the call site.
	renderCalls      int
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time

	fpsLimiter *FPSLimiter
}

// New builds a session rendering into window, whose GL context must be current.
func New(window *glfw.Window) (*Session, error) {
	surface := engine.NewWindowSurface(window)
	s := NewWithBundle(ar.InitializeARScene(surface))
	s.window = window
	s.surface = surface

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.Resize(width, height)
	})

	if err := s.AddDemoContent(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithBundle wraps an existing bundle. The session has no window, so only
// Frame, Resize and Close are usable.
func NewWithBundle(b *ar.SceneBundle) *Session {
	now := time.Now()
	return &Session{
		Bundle:           b,
		fpsLimiter:       NewFPSLimiter(),
		lastTime:         now,
		lastFPSCheckTime: now,
	}
}

// AddDemoContent places a green cube and a red sphere side by side.
func (s *Session) AddDemoContent() error {
	cube := engine.NewMesh(engine.NewBoxGeometry(1, 1, 1), engine.NewMeshBasicMaterial(0x00ff00))
	cube.Position = mgl32.Vec3{-1.5, 0, 0}

	sphere := engine.NewMesh(engine.NewSphereGeometry(0.8, 32, 16), engine.NewMeshBasicMaterialColor(colornames.Red))
	sphere.Position = mgl32.Vec3{1.5, 0, 0}

	for _, m := range []*engine.Mesh{cube, sphere} {
		if err := s.AddSpinning(m); err != nil {
			return err
		}
	}
	return nil
}

// AddSpinning inserts m into the scene and rotates it every frame.
func (s *Session) AddSpinning(m *engine.Mesh) error {
	if err := ar.AddObjectToScene(s.Bundle.Scene, m); err != nil {
		return fmt.Errorf("add spinning mesh: %w", err)
	}
	s.spinning = append(s.spinning, m)
	log.Printf("Added mesh %s to scene (%d children)", m.ID, s.Bundle.Scene.ChildCount())
	return nil
}

// Frame advances animation by dt seconds and renders once.
func (s *Session) Frame(dt float64) error {
	s.animate(float32(dt))

	stop := profiling.Track("session.Render")
	err := ar.RenderARScene(s.Bundle.Renderer, s.Bundle.Scene, s.Bundle.Camera)
	stop()
	if err != nil {
		return fmt.Errorf("render pass %d: %w", s.renderCalls+1, err)
	}

	s.renderCalls++
	s.frames++
	return nil
}

func (s *Session) animate(dt float32) {
	defer profiling.Track("session.Animate")()
	for _, m := range s.spinning {
		m.Rotation[0] += 0.4 * dt
		m.Rotation[1] += 0.8 * dt
	}
}

// RenderCalls returns how many render passes completed successfully.
func (s *Session) RenderCalls() int {
	return s.renderCalls
}

// Resize handles framebuffer size changes.
func (s *Session) Resize(width, height int) {
	s.Bundle.Resize(width, height)
}

// Run drives frames until the window is asked to close.
func (s *Session) Run() error {
	if s.window == nil {
		return fmt.Errorf("session has no window")
	}
	for !s.window.ShouldClose() {
		if err := s.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) tick() error {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(s.lastTime).Seconds()
	s.lastTime = startTick

	glfw.PollEvents()
	if s.window.GetKey(glfw.KeyEscape) == glfw.Press {
		s.window.SetShouldClose(true)
	}

	if err := s.Frame(dt); err != nil {
		return err
	}
	s.surface.SwapBuffers()

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top stages: %s", d, profiling.TopN(3))
	}

	if elapsed := time.Since(s.lastFPSCheckTime); elapsed >= time.Second {
		log.Printf("FPS: %d (%d render calls total)", int(float64(s.frames)/elapsed.Seconds()+0.5), s.renderCalls)
		s.frames = 0
		s.lastFPSCheckTime = time.Now()
	}

	s.fpsLimiter.Wait()
	return nil
}

// Close releases the renderer's GPU resources, if it holds any.
func (s *Session) Close() {
	if d, ok := s.Bundle.Renderer.(interface{ Dispose() }); ok {
		d.Dispose()
	}
}
