package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/chazu/involute/pkg/sweep"
)

var (
	sweepFormat string
	sweepOut    string
)

// sweepCmd runs the calculator over a YAML file of cases and classes.
var sweepCmd = &cobra.Command{
	Use:   "sweep <cases.yaml>",
	Short: "Compare spline cases across tolerance classes",
	Long: `Load a YAML file of spline cases and compute every case at every
listed tolerance class (4 through 7 when none are listed). The table
output shows the key fit parameters side by side; json and yaml emit
the full result set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSweep(args[0])
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&sweepFormat, "format", "table", "Output format: table, json, yaml")
	sweepCmd.Flags().StringVarP(&sweepOut, "output", "o", "", "Output file path (default: stdout)")
}

func runSweep(path string) (err error) {
	f, err := sweep.Load(path)
	if err != nil {
		return err
	}
	slog.Debug("sweep loaded", "cases", len(f.Cases), "classes", f.Classes)

	rows, err := sweep.Run(f)
	if err != nil {
		return err
	}

	w, closer, err := outputWriter(sweepOut)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)

	switch sweepFormat {
	case "table":
		return writeSweepTable(w, rows)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s (supported: table, json, yaml)", sweepFormat)
	}
}

func writeSweepTable(w io.Writer, rows []sweep.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "CASE\tCLASS\tD\tT+λ\tT\tλ\tEV max\tSV min\tCV min\tCV max")
	for _, r := range rows {
		res := r.Result
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			r.Case, r.Class,
			res.PitchDiameter,
			res.TotalTolerance,
			res.MachiningTolerance,
			res.DeviationAllowance,
			res.SpaceWidth.EffectiveMax,
			res.ToothThickness.EffectiveMin,
			res.Clearance.EffectiveMin,
			res.Clearance.EffectiveMax)
	}

	return tw.Flush()
}
