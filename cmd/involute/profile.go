package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chazu/involute/pkg/profile"
	"github.com/chazu/involute/pkg/spline"
	"github.com/chazu/involute/pkg/svg"
)

var (
	profileCmdFlags splineFlags
	profilePts      int
	profileOut      string
	profileFull     bool
	profileCircles  bool
)

// profileCmd renders the tooth profile of a spline connection as SVG.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Render the tooth profile as SVG",
	Long: `Derive the 2D involute tooth-profile coordinates for one spline
connection and render them as an SVG plot. By default a single tooth of
each side is drawn; --full draws the complete assembled spline when the
tooth count allows it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runProfile(cmd)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmdFlags.register(profileCmd)
	profileCmd.Flags().IntVarP(&profilePts, "points", "n", 0, "Sample points per involute curve")
	profileCmd.Flags().StringVarP(&profileOut, "output", "o", "", "Output file path (default: stdout)")
	profileCmd.Flags().BoolVar(&profileFull, "full", false, "Draw the full assembled spline instead of one tooth")
	profileCmd.Flags().BoolVar(&profileCircles, "circles", false, "Draw base and pitch reference circles")
}

func runProfile(cmd *cobra.Command) (err error) {
	in := profileCmdFlags.input(cmd)
	points := profilePoints(cmd, profilePts)

	res, err := spline.Compute(in)
	if err != nil {
		return err
	}

	d, err := profile.Generate(res, points)
	if err != nil {
		return err
	}
	slog.Debug("profile generated", "points", points, "assembled", d.External.Assembled != nil)

	w, closer, err := outputWriter(profileOut)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)

	return svg.Write(w, d, svg.Options{
		Assembled:        profileFull,
		ReferenceCircles: profileCircles,
	})
}
