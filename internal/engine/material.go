package engine

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Material describes how a mesh surface is shaded.
type Material interface {
	Color() mgl32.Vec4
}

// MeshBasicMaterial is an unlit, single-color material.
type MeshBasicMaterial struct {
	color mgl32.Vec4
}

// NewMeshBasicMaterial creates a material from a 0xRRGGBB value.
func NewMeshBasicMaterial(hex uint32) *MeshBasicMaterial {
	return &MeshBasicMaterial{color: mgl32.Vec4{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
		1,
	}}
}

// NewMeshBasicMaterialColor creates a material from any color.Color,
// e.g. the named colors in golang.org/x/image/colornames.
func NewMeshBasicMaterialColor(c color.Color) *MeshBasicMaterial {
	r, g, b, a := c.RGBA()
	return &MeshBasicMaterial{color: mgl32.Vec4{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	}}
}

func (m *MeshBasicMaterial) Color() mgl32.Vec4 { return m.color }

// SetColor replaces the material color.
func (m *MeshBasicMaterial) SetColor(c mgl32.Vec4) { m.color = c }
