package sdfx

import (
	"math"
	"testing"
)

// square is a unit-ish closed outline reused by the tests.
var square = [][2]float64{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}

func TestExtrudeSquare(t *testing.T) {
	k := NewWithResolution(32)
	s, err := k.Extrude(square, 20)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}

	min, max := s.BoundingBox()
	// Extrusion is centered on z=0.
	if math.Abs(max[2]-10) > 1e-6 || math.Abs(min[2]+10) > 1e-6 {
		t.Errorf("z bounds = [%v, %v], want [-10, 10]", min[2], max[2])
	}
	if max[0]-min[0] < 10 || max[1]-min[1] < 10 {
		t.Errorf("xy bounds too small: min %v max %v", min, max)
	}

	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triangles*3", len(mesh.Indices))
	}
}

func TestExtrudeRejectsDegenerateOutline(t *testing.T) {
	k := New()
	if _, err := k.Extrude([][2]float64{{0, 0}, {1, 1}}, 10); err == nil {
		t.Fatal("expected error for a 2-point outline")
	}
}
