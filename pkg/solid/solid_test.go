package solid

import (
	"errors"
	"testing"

	"github.com/chazu/involute/pkg/kernel"
	"github.com/chazu/involute/pkg/profile"
	"github.com/chazu/involute/pkg/spline"
)

// fakeKernel records calls and returns canned results, keeping the tests
// independent of the sdfx backend.
type fakeKernel struct {
	outlines [][][2]float64
	lengths  []float64
}

type fakeSolid struct{}

func (fakeSolid) BoundingBox() (min, max [3]float64) { return }

func (f *fakeKernel) Extrude(outline [][2]float64, length float64) (kernel.Solid, error) {
	f.outlines = append(f.outlines, outline)
	f.lengths = append(f.lengths, length)
	return fakeSolid{}, nil
}

func (f *fakeKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return &kernel.Mesh{Vertices: []float32{0, 0, 0}, Indices: []uint32{0, 0, 0}}, nil
}

func generate(t *testing.T, teeth int) *profile.Data {
	t.Helper()
	res, err := spline.Compute(spline.Input{
		Module:              2,
		Teeth:               teeth,
		PressureAngle:       30,
		RootType:            spline.RootFlat,
		ToleranceClass:      5,
		Length:              50,
		FormClearanceFactor: 0.1,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	d, err := profile.Generate(res, 20)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return d
}

func TestMeshesExtrudesBothSides(t *testing.T) {
	k := &fakeKernel{}
	d := generate(t, 12)

	meshes, err := Meshes(d, 50, k)
	if err != nil {
		t.Fatalf("Meshes failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}
	if meshes[0].Name != "external" || meshes[1].Name != "internal" {
		t.Errorf("mesh names = %q, %q", meshes[0].Name, meshes[1].Name)
	}
	if len(k.outlines) != 2 {
		t.Fatalf("kernel saw %d outlines, want 2", len(k.outlines))
	}
	if len(k.outlines[0]) != len(d.External.Assembled) {
		t.Errorf("external outline has %d points, want %d",
			len(k.outlines[0]), len(d.External.Assembled))
	}
	for _, l := range k.lengths {
		if l != 50 {
			t.Errorf("extrusion length = %v, want 50", l)
		}
	}
}

func TestMeshesRequiresAssembledProfile(t *testing.T) {
	k := &fakeKernel{}
	d := generate(t, 64) // above the assembly limit

	_, err := Meshes(d, 50, k)
	if !errors.Is(err, ErrNotAssembled) {
		t.Fatalf("error = %v, want ErrNotAssembled", err)
	}
}
