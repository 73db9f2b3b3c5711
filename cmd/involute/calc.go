package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chazu/involute/pkg/report"
	"github.com/chazu/involute/pkg/spline"
)

var (
	calcFlags  splineFlags
	calcFormat string
	calcOut    string
)

// calcCmd computes one spline connection and prints its dimension report.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute spline geometry and tolerances",
	Long: `Compute the full ISO 4156 parameter set for one spline connection:
pitch and base geometry, the tolerance system for the selected class,
space width and tooth thickness envelopes, fit clearances, limit
diameters and inspection measurements.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCalc(cmd)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcFlags.register(calcCmd)
	calcCmd.Flags().StringVar(&calcFormat, "format", "report", "Output format: report, json")
	calcCmd.Flags().StringVarP(&calcOut, "output", "o", "", "Output file path (default: stdout)")
}

func runCalc(cmd *cobra.Command) (err error) {
	in := calcFlags.input(cmd)
	slog.Debug("computing spline", "module", in.Module, "teeth", in.Teeth, "class", in.ToleranceClass)

	res, err := spline.Compute(in)
	if err != nil {
		return err
	}

	w, closer, err := outputWriter(calcOut)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)

	switch calcFormat {
	case "report":
		return report.Write(w, res)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return fmt.Errorf("unknown format: %s (supported: report, json)", calcFormat)
	}
}
