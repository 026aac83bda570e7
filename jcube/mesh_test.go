package jcube

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestAssembleLayout(t *testing.T) {
	cubes := []Cube{
		NewCube(model3d.XYZ(0, 0, 0), model3d.XYZ(1, 1, 1)),
		NewCube(model3d.XYZ(5, 5, 5), model3d.XYZ(6, 6, 6)),
	}
	verts, tris := Assemble(cubes, 1)
	if len(verts) != 16 {
		t.Fatalf("expected 16 vertices but got %d", len(verts))
	}
	if len(tris) != 24 {
		t.Fatalf("expected 24 triangles but got %d", len(tris))
	}
	for i, c := range cubes {
		for j, p := range c.Corners() {
			if verts[8*i+j] != p {
				t.Errorf("vertex %d: expected %v but got %v", 8*i+j, p, verts[8*i+j])
			}
		}
	}
	for i, tri := range tris {
		block := tri[0] / 8
		if tri[2]/8 != block {
			t.Errorf("triangle %d crosses cube blocks: %v", i, tri)
		}
		if tri[0] >= tri[1] || tri[1] >= tri[2] {
			t.Errorf("triangle %d is not sorted and distinct: %v", i, tri)
		}
	}
}

func TestDedupTriangles(t *testing.T) {
	tris := [][3]int{{0, 1, 2}, {3, 4, 5}, {0, 1, 2}, {1, 2, 3}, {3, 4, 5}}
	expected := [][3]int{{0, 1, 2}, {3, 4, 5}, {1, 2, 3}}
	result := dedupTriangles(tris)
	if len(result) != len(expected) {
		t.Fatalf("expected %d triangles but got %d", len(expected), len(result))
	}
	for i, tri := range expected {
		if result[i] != tri {
			t.Errorf("triangle %d: expected %v but got %v", i, tri, result[i])
		}
	}
}

func TestWeldVertices(t *testing.T) {
	verts := []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(1e-13, 0, 0),
		model3d.XYZ(1, 1e-3, 0),
		model3d.XYZ(1, 0, 1e-13),
	}
	kept, remap := weldVertices(verts, WeldTolerance)
	if len(kept) != 3 {
		t.Fatalf("expected 3 kept vertices but got %d", len(kept))
	}
	expectedKept := []model3d.Coord3D{verts[0], verts[1], verts[3]}
	for i, v := range expectedKept {
		if kept[i] != v {
			t.Errorf("kept vertex %d: expected %v but got %v", i, v, kept[i])
		}
	}
	expectedRemap := []int{0, 1, 0, 2, 1}
	for i, m := range expectedRemap {
		if remap[i] != m {
			t.Errorf("remap %d: expected %d but got %d", i, m, remap[i])
		}
	}
}

func TestFinalizePrintable(t *testing.T) {
	verts := []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 1, 0),
	}
	tris := [][3]int{{0, 2, 3}, {1, 2, 3}}
	newVerts, newTris := Finalize(verts, tris, true)
	if len(newVerts) != len(verts) || len(newTris) != len(tris) {
		t.Fatal("printable mode should leave the mesh unchanged")
	}

	// The same mesh welds to 3 vertices and a single triangle.
	newVerts, newTris = Finalize(verts, tris, false)
	if len(newVerts) != 3 {
		t.Errorf("expected 3 welded vertices but got %d", len(newVerts))
	}
	if len(newTris) != 1 {
		t.Errorf("expected 1 welded triangle but got %d", len(newTris))
	}
}

func TestToMesh(t *testing.T) {
	verts, tris := Generate(0, false, 0)
	mesh := ToMesh(verts, tris)
	if n := mesh.NumTriangles(); n != len(tris) {
		t.Errorf("expected %d mesh triangles but got %d", len(tris), n)
	}
}
