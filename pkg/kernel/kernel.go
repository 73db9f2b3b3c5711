// Package kernel defines the abstract geometry kernel interface used to
// turn 2D spline cross-sections into preview solids. Implementations
// (sdfx) provide extrusion and tessellation behind this interface so the
// backend can be swapped without touching the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. The spline system has
// exactly one solid-modeling need: sweep a closed cross-section along the
// spline axis and tessellate the result.
type Kernel interface {
	// Extrude sweeps a closed 2D outline (x,y points in order, implicitly
	// closed) along the z axis over the given length.
	Extrude(outline [][2]float64, length float64) (Solid, error)

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
