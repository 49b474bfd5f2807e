package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout of every geometry: position xyz, normal xyz.
const FloatsPerVertex = 6

// Geometry is a triangle list in the interleaved position/normal layout.
type Geometry interface {
	Vertices() []float32
	VertexCount() int32
}

// BoxGeometry is an axis-aligned box centered on the origin.
type BoxGeometry struct {
	Width, Height, Depth float32

	vertices []float32
}

// NewBoxGeometry creates a box. Non-positive dimensions default to 1.
func NewBoxGeometry(width, height, depth float32) *BoxGeometry {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if depth <= 0 {
		depth = 1
	}
	g := &BoxGeometry{Width: width, Height: height, Depth: depth}
	g.vertices = buildBox(mgl32.Vec3{width / 2, height / 2, depth / 2})
	return g
}

func (g *BoxGeometry) Vertices() []float32 { return g.vertices }

func (g *BoxGeometry) VertexCount() int32 { return int32(len(g.vertices) / FloatsPerVertex) }

// boxFaces lists normal, u, v per face with u x v == normal so triangles wind CCW from outside.
var boxFaces = [6][3]mgl32.Vec3{
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

func buildBox(half mgl32.Vec3) []float32 {
	out := make([]float32, 0, 36*FloatsPerVertex)
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {1, 1}, {-1, 1}, {-1, -1}}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1]))
			p = mgl32.Vec3{p[0] * half[0], p[1] * half[1], p[2] * half[2]}
			out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}
	return out
}

// SphereGeometry is a UV sphere centered on the origin.
type SphereGeometry struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int

	vertices []float32
}

// NewSphereGeometry creates a sphere. A non-positive radius defaults to 1 and
// segment counts are raised to at least 3 around and 2 from pole to pole.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *SphereGeometry {
	if radius <= 0 {
		radius = 1
	}
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	g := &SphereGeometry{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
	g.vertices = buildSphere(radius, widthSegments, heightSegments)
	return g
}

// NewDefaultSphereGeometry creates a unit sphere with 32x16 segments.
func NewDefaultSphereGeometry() *SphereGeometry {
	return NewSphereGeometry(1, 32, 16)
}

func (g *SphereGeometry) Vertices() []float32 { return g.vertices }

func (g *SphereGeometry) VertexCount() int32 { return int32(len(g.vertices) / FloatsPerVertex) }

func buildSphere(radius float32, ws, hs int) []float32 {
	point := func(ix, iy int) mgl32.Vec3 {
		phi := float64(ix) / float64(ws) * 2 * math.Pi
		theta := float64(iy) / float64(hs) * math.Pi
		return mgl32.Vec3{
			float32(-math.Cos(phi) * math.Sin(theta)),
			float32(math.Cos(theta)),
			float32(math.Sin(phi) * math.Sin(theta)),
		}
	}

	out := make([]float32, 0, ws*hs*6*FloatsPerVertex)
	emit := func(n mgl32.Vec3) {
		p := n.Mul(radius)
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := point(ix+1, iy)
			b := point(ix, iy)
			c := point(ix, iy+1)
			d := point(ix+1, iy+1)
			emit(a)
			emit(b)
			emit(d)
			emit(b)
			emit(c)
			emit(d)
		}
	}
	return out
}
