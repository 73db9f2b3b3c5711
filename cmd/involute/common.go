package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chazu/involute/pkg/spline"
)

// splineFlags collects the calculator inputs shared by the calc, profile
// and mesh commands.
type splineFlags struct {
	module    float64
	teeth     int
	angle     float64
	root      string
	class     int
	length    float64
	deviation float64
	clearance float64
}

func (f *splineFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.module, "module", "m", 0, "Module in mm (required)")
	cmd.Flags().IntVarP(&f.teeth, "teeth", "z", 0, "Number of teeth (required)")
	cmd.Flags().Float64VarP(&f.angle, "angle", "a", 30, "Pressure angle in degrees: 30, 37.5 or 45")
	cmd.Flags().StringVar(&f.root, "root", "flat", "Root type: flat or fillet")
	cmd.Flags().IntVar(&f.class, "class", 5, "Tolerance class: 4 to 7")
	cmd.Flags().Float64VarP(&f.length, "length", "l", 0, "Spline length in mm (required)")
	cmd.Flags().Float64Var(&f.deviation, "deviation", 0, "Fundamental deviation in micrometres (signed)")
	cmd.Flags().Float64Var(&f.clearance, "clearance", 0, "Form clearance factor, as a fraction of module")

	_ = cmd.MarkFlagRequired("module")
	_ = cmd.MarkFlagRequired("teeth")
	_ = cmd.MarkFlagRequired("length")
}

// input builds the calculator input, falling back to configured defaults
// for flags the user did not set.
func (f *splineFlags) input(cmd *cobra.Command) spline.Input {
	clearance := f.clearance
	if !cmd.Flags().Changed("clearance") {
		clearance = viper.GetFloat64("clearance")
	}

	return spline.Input{
		Module:              f.module,
		Teeth:               f.teeth,
		PressureAngle:       f.angle,
		RootType:            spline.RootType(f.root),
		ToleranceClass:      f.class,
		Length:              f.length,
		Deviation:           f.deviation,
		FormClearanceFactor: clearance,
	}
}

// profilePoints resolves the per-curve sample count from a flag, falling
// back to the configured default.
func profilePoints(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("points") {
		return flagValue
	}
	return viper.GetInt("points")
}

// outputWriter opens the output destination. An empty path means stdout.
// The returned closer is a no-op for stdout; for files it reports the
// close error so a failed flush does not pass silently.
func outputWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, file.Close, nil
}

// closeOutput folds a closer's error into the command error, keeping the
// first failure.
func closeOutput(closer func() error, err *error) {
	if cerr := closer(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output file: %w", cerr)
	}
}
