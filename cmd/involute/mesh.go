package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	involute "github.com/chazu/involute"
)

var (
	meshFlags splineFlags
	meshPts   int
	meshOut   string
)

// meshCmd extrudes the assembled profiles into preview meshes and writes
// them as viewer JSON.
var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate preview meshes as viewer JSON",
	Long: `Extrude the assembled internal and external tooth profiles along the
spline length and tessellate them into triangle meshes. The output is a
JSON array of flat vertex/normal/index buffers, ready for a WebGL or
three.js viewer. Requires a tooth count within the assembly limit.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMesh(cmd)
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)

	meshFlags.register(meshCmd)
	meshCmd.Flags().IntVarP(&meshPts, "points", "n", 0, "Sample points per involute curve")
	meshCmd.Flags().StringVarP(&meshOut, "output", "o", "", "Output file path (default: stdout)")
}

func runMesh(cmd *cobra.Command) (err error) {
	in := meshFlags.input(cmd)
	points := profilePoints(cmd, meshPts)

	app := involute.NewApp()
	meshes, err := app.Meshes(in, points)
	if err != nil {
		return err
	}
	for _, m := range meshes {
		slog.Debug("mesh built", "name", m.Name, "triangles", len(m.Indices)/3)
	}

	w, closer, err := outputWriter(meshOut)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meshes)
}
