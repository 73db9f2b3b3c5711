// Package solid turns generated spline profiles into preview solids using a
// geometry kernel. One mesh is produced per side. The driver is read-only
// and never mutates the profile data.
package solid

import (
	"errors"
	"fmt"

	"github.com/chazu/involute/pkg/kernel"
	"github.com/chazu/involute/pkg/profile"
)

// ErrNotAssembled is returned when the profile carries no assembled
// outline, which happens above the generator's tooth-count limit.
var ErrNotAssembled = errors.New("profile has no assembled outline to extrude")

// Meshes extrudes the assembled cross-sections of both sides over the
// given spline length and tessellates them. The external mesh is named
// "external", the internal one "internal".
func Meshes(d *profile.Data, length float64, k kernel.Kernel) ([]*kernel.Mesh, error) {
	ext, err := sideMesh(d.External, "external", length, k)
	if err != nil {
		return nil, err
	}
	intl, err := sideMesh(d.Internal, "internal", length, k)
	if err != nil {
		return nil, err
	}
	return []*kernel.Mesh{ext, intl}, nil
}

// External extrudes only the shaft cross-section.
func External(d *profile.Data, length float64, k kernel.Kernel) (*kernel.Mesh, error) {
	return sideMesh(d.External, "external", length, k)
}

func sideMesh(side profile.Side, name string, length float64, k kernel.Kernel) (*kernel.Mesh, error) {
	if side.Assembled == nil {
		return nil, fmt.Errorf("%s: %w (more than %d teeth)", name, ErrNotAssembled, profile.AssemblyTeethLimit)
	}

	outline := make([][2]float64, len(side.Assembled))
	for i, p := range side.Assembled {
		outline[i] = [2]float64{p.X, p.Y}
	}

	s, err := k.Extrude(outline, length)
	if err != nil {
		return nil, fmt.Errorf("solid: extrude %s failed: %w", name, err)
	}
	mesh, err := k.ToMesh(s)
	if err != nil {
		return nil, fmt.Errorf("solid: ToMesh failed for %s: %w", name, err)
	}
	mesh.Name = name
	return mesh, nil
}
