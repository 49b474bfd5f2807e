package engine_test

import (
	"arscene/internal/engine"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

func TestSceneKeepsInsertionOrderAndDuplicates(t *testing.T) {
	s := engine.NewScene()
	box := engine.NewMesh(engine.NewBoxGeometry(1, 1, 1), engine.NewMeshBasicMaterial(0x00ff00))
	sphere := engine.NewMesh(engine.NewDefaultSphereGeometry(), engine.NewMeshBasicMaterial(0xff0000))

	s.Add(box)
	s.Add(sphere)
	s.Add(box)

	children := s.Children()
	if len(children) != 3 || s.ChildCount() != 3 {
		t.Fatalf("Expected 3 children, got %d", len(children))
	}
	if children[0] != box || children[1] != sphere || children[2] != box {
		t.Errorf("Children out of order: %v", children)
	}
	if !s.Contains(sphere) {
		t.Errorf("Expected scene to contain sphere")
	}
}

func TestSceneChildrenIsACopy(t *testing.T) {
	s := engine.NewScene()
	box := engine.NewMesh(engine.NewBoxGeometry(1, 1, 1), engine.NewMeshBasicMaterial(0))
	s.Add(box)

	children := s.Children()
	children[0] = nil
	if s.Children()[0] != box {
		t.Errorf("Mutating the returned slice changed the scene")
	}
}

func TestMeshBasicMaterialHex(t *testing.T) {
	m := engine.NewMeshBasicMaterial(0x00ff00)
	if got := m.Color(); got != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("Expected green, got %v", got)
	}
}

func TestMeshBasicMaterialNamedColor(t *testing.T) {
	m := engine.NewMeshBasicMaterialColor(colornames.Red)
	if got := m.Color(); got != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Errorf("Expected red, got %v", got)
	}
}

func TestMeshModelMatrix(t *testing.T) {
	m := engine.NewMesh(engine.NewBoxGeometry(1, 1, 1), engine.NewMeshBasicMaterial(0))
	if m.ModelMatrix() != mgl32.Ident4() {
		t.Fatalf("Expected identity model matrix for a fresh mesh")
	}

	m.Position = mgl32.Vec3{1, 2, 3}
	p := m.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if p != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Errorf("Expected origin translated to (1,2,3), got %v", p)
	}
}

func TestMeshIDsAreUnique(t *testing.T) {
	a := engine.NewMesh(nil, nil)
	b := engine.NewMesh(nil, nil)
	if a.ID == b.ID {
		t.Errorf("Expected distinct mesh IDs, both were %v", a.ID)
	}
}
