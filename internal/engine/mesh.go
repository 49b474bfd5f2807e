package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Renderable is anything the renderer can draw: a geometry shaded by a material.
type Renderable interface {
	Geometry() Geometry
	Material() Material
}

// Transformable is implemented by renderables that carry a model transform.
type Transformable interface {
	ModelMatrix() mgl32.Mat4
}

// Mesh pairs a geometry with a material and places it in the world.
type Mesh struct {
	ID       uuid.UUID
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    mgl32.Vec3

	geometry Geometry
	material Material
}

func NewMesh(geometry Geometry, material Material) *Mesh {
	return &Mesh{
		ID:       uuid.New(),
		Scale:    mgl32.Vec3{1, 1, 1},
		geometry: geometry,
		material: material,
	}
}

func (m *Mesh) Geometry() Geometry { return m.geometry }

func (m *Mesh) Material() Material { return m.material }

// ModelMatrix returns translation * rotation * scale.
func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	r := mgl32.HomogRotate3DZ(m.Rotation[2]).
		Mul4(mgl32.HomogRotate3DY(m.Rotation[1])).
		Mul4(mgl32.HomogRotate3DX(m.Rotation[0]))
	s := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	return t.Mul4(r).Mul4(s)
}
