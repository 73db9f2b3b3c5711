// Package involute exposes JSON-serializable bindings over the script
// engine, calculator and mesh pipeline, for embedding in a viewer or UI
// host. The CLI under cmd/involute is one such host.
package involute

import (
	"fmt"
	"log/slog"

	"github.com/chazu/involute/pkg/engine"
	"github.com/chazu/involute/pkg/kernel"
	"github.com/chazu/involute/pkg/kernel/sdfx"
	"github.com/chazu/involute/pkg/profile"
	"github.com/chazu/involute/pkg/report"
	"github.com/chazu/involute/pkg/solid"
	"github.com/chazu/involute/pkg/spline"
)

// colorPalette assigns distinct colors to the meshes of a case.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App binds the engine and the mesh kernel together for a host process.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format sent to a viewer.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable script error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// CaseData is one computed case in a serializable form: the full result,
// its text report, and preview meshes when the script attached a profile.
type CaseData struct {
	Name   string         `json:"name"`
	Input  spline.Input   `json:"input"`
	Result *spline.Result `json:"result"`
	Report string         `json:"report"`
	Meshes []MeshData     `json:"meshes"`
}

// EvalResult is the full evaluation outcome returned to the host.
type EvalResult struct {
	Cases  []CaseData      `json:"cases"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates an App with a fresh engine and the sdfx kernel.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
	}
}

// Evaluate runs Lisp source through the engine and serializes the session.
// Script errors come back in the result rather than as a Go error, so a
// host can render them inline.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Cases:  []CaseData{},
		Errors: []EvalErrorData{},
	}

	session, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout).
		slog.Error("evaluation failed", "error", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	for _, c := range session.Cases() {
		data := CaseData{
			Name:   c.Name,
			Input:  c.Input,
			Result: c.Result,
			Report: report.String(c.Result),
			Meshes: []MeshData{},
		}

		// Meshes only for cases the script profiled, and only when the
		// profile carries an assembled outline.
		if c.Profile != nil && c.Profile.External.Assembled != nil {
			meshes, err := solid.Meshes(c.Profile, c.Input.Length, a.kernel)
			if err != nil {
				slog.Error("mesh generation failed", "case", c.Name, "error", err)
				result.Errors = append(result.Errors, EvalErrorData{
					Message: fmt.Sprintf("case %q: mesh generation failed: %v", c.Name, err),
				})
			} else {
				data.Meshes = convertMeshes(meshes)
			}
		}

		result.Cases = append(result.Cases, data)
	}

	return result
}

// Meshes computes a single spline connection and returns its preview
// meshes directly, bypassing the script engine.
func (a *App) Meshes(in spline.Input, pointsPerCurve int) ([]MeshData, error) {
	res, err := spline.Compute(in)
	if err != nil {
		return nil, err
	}

	d, err := profile.Generate(res, pointsPerCurve)
	if err != nil {
		return nil, err
	}

	meshes, err := solid.Meshes(d, in.Length, a.kernel)
	if err != nil {
		return nil, err
	}

	return convertMeshes(meshes), nil
}

func convertMeshes(meshes []*kernel.Mesh) []MeshData {
	out := make([]MeshData, 0, len(meshes))
	for i, m := range meshes {
		out = append(out, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Name:     m.Name,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}
	return out
}
