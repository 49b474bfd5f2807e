package engine

import "testing"

func TestDrawableOfSkipsMissingParts(t *testing.T) {
	var nilBox *BoxGeometry
	var nilMat *MeshBasicMaterial
	var nilMesh *Mesh

	cases := []struct {
		name  string
		child Renderable
	}{
		{"nil child", nil},
		{"nil mesh pointer", nilMesh},
		{"typed nil geometry", NewMesh(nilBox, NewMeshBasicMaterial(0))},
		{"typed nil material", NewMesh(NewBoxGeometry(1, 1, 1), nilMat)},
		{"nil geometry", NewMesh(nil, NewMeshBasicMaterial(0))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, err := drawableOf(tc.child)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ok {
				t.Errorf("Expected child to be skipped")
			}
		})
	}
}

func TestDrawableOfAcceptsMesh(t *testing.T) {
	geom := NewBoxGeometry(1, 1, 1)
	mat := NewMeshBasicMaterial(0x00ff00)
	m := NewMesh(geom, mat)

	d, ok, err := drawableOf(m)
	if err != nil || !ok {
		t.Fatalf("Expected mesh to be drawable, got ok=%v err=%v", ok, err)
	}
	if d.geometry != Geometry(geom) || d.material != Material(mat) || d.child != Renderable(m) {
		t.Errorf("Drawable does not carry the mesh's parts")
	}
}
