package engine

import (
	"errors"
	"fmt"
	"log"
	"reflect"

	"arscene/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrNilScene  = errors.New("engine: nil scene")
	ErrNilCamera = errors.New("engine: nil camera")

	// ErrUncacheableGeometry is returned for geometries whose value cannot be
	// used as a buffer cache key, e.g. a struct value holding a slice.
	ErrUncacheableGeometry = errors.New("engine: geometry is not comparable")
)

// GLRenderer draws scenes with OpenGL 4.1 into the current context.
// GL resources are created on the first Render call, so constructing a
// GLRenderer never touches the GL context.
type GLRenderer struct {
	surface Surface
	width   int
	height  int

	shader *shader
	meshes map[Geometry]*gpuMesh
}

type gpuMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewGLRenderer binds a renderer to a display surface.
func NewGLRenderer(surface Surface) *GLRenderer {
	r := &GLRenderer{
		surface: surface,
		width:   config.DefaultViewportWidth,
		height:  config.DefaultViewportHeight,
	}
	if surface != nil {
		if w, h := surface.Size(); w > 0 && h > 0 {
			r.width, r.height = w, h
		}
	}
	return r
}

// Surface returns the display surface the renderer is bound to.
func (r *GLRenderer) Surface() Surface {
	return r.surface
}

func (r *GLRenderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

func (r *GLRenderer) Size() (int, int) {
	return r.width, r.height
}

// Render draws every child of scene as seen from camera.
func (r *GLRenderer) Render(scene *Scene, camera *PerspectiveCamera) error {
	if scene == nil {
		return ErrNilScene
	}
	if camera == nil {
		return ErrNilCamera
	}

	parts := make([]drawable, 0, len(scene.children))
	for _, child := range scene.children {
		d, ok, err := drawableOf(child)
		if err != nil {
			return err
		}
		if ok {
			parts = append(parts, d)
		}
	}

	if r.shader == nil {
		if err := r.init(); err != nil {
			return err
		}
	}

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	cc := config.GetClearColor()
	gl.ClearColor(cc[0], cc[1], cc[2], cc[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := camera.ProjectionMatrix().Mul4(camera.ViewMatrix())

	r.shader.use()
	for _, d := range parts {
		m := r.upload(d.geometry)
		if m.vertexCount == 0 {
			continue
		}

		mvp := viewProj
		if t, ok := d.child.(Transformable); ok {
			mvp = viewProj.Mul4(t.ModelMatrix())
		}
		r.shader.setMatrix4("uMVP", mvp)
		r.shader.setVector4("uColor", d.material.Color())

		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error after render: 0x%x", code)
	}
	return nil
}

type drawable struct {
	child    Renderable
	geometry Geometry
	material Material
}

// drawableOf resolves a child's geometry and material. Children missing
// either one, including typed nil pointers, are skipped.
func drawableOf(child Renderable) (drawable, bool, error) {
	if isNil(child) {
		return drawable{}, false, nil
	}
	geom, mat := child.Geometry(), child.Material()
	if isNil(geom) || isNil(mat) {
		return drawable{}, false, nil
	}
	if !reflect.ValueOf(geom).Comparable() {
		return drawable{}, false, fmt.Errorf("%w: %T", ErrUncacheableGeometry, geom)
	}
	return drawable{child: child, geometry: geom, material: mat}, true, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (r *GLRenderer) init() error {
	s, err := newShader(basicVertexShader, basicFragmentShader)
	if err != nil {
		return fmt.Errorf("create basic shader: %w", err)
	}

	// Meshes emit CCW front faces
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r.shader = s
	r.meshes = make(map[Geometry]*gpuMesh)
	log.Printf("GL renderer ready: %s, viewport %dx%d", gl.GoStr(gl.GetString(gl.VERSION)), r.width, r.height)
	return nil
}

// upload returns the GPU buffers for geom, creating them on first use.
// Buffers are shared by every renderable using the same geometry.
func (r *GLRenderer) upload(geom Geometry) *gpuMesh {
	if m, ok := r.meshes[geom]; ok {
		return m
	}

	verts := geom.Vertices()
	m := &gpuMesh{vertexCount: geom.VertexCount()}
	r.meshes[geom] = m
	if len(verts) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Dispose releases all GL resources. The renderer may be used again
// afterwards; resources are recreated on the next Render.
func (r *GLRenderer) Dispose() {
	if r == nil || r.shader == nil {
		return
	}
	for _, m := range r.meshes {
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
	}
	r.meshes = nil
	r.shader.delete()
	r.shader = nil
}
