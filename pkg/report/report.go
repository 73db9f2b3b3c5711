// Package report renders a computed spline parameter set as a plain-text
// report. It is a read-only consumer of the calculator's output.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chazu/involute/pkg/spline"
)

// Write renders res to w. Lengths are reported in mm with µm-scale
// precision; the tolerance unit keeps its native µm.
func Write(w io.Writer, res *spline.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	in := res.Input
	fmt.Fprintf(tw, "ISO 4156 involute spline %d/%g\n", in.Teeth, in.Module)
	fmt.Fprintf(tw, "pressure angle\t%g deg\t%s root, class %d\n",
		in.PressureAngle, in.RootType, in.ToleranceClass)
	fmt.Fprintf(tw, "spline length\t%.3f mm\texternal deviation %g um\n\n",
		in.Length, in.Deviation)

	fmt.Fprintln(tw, "-- geometry --")
	fmt.Fprintf(tw, "pitch diameter\t%.4f mm\n", res.PitchDiameter)
	fmt.Fprintf(tw, "base diameter\t%.4f mm\n", res.BaseDiameter)
	fmt.Fprintf(tw, "circular pitch\t%.4f mm\n", res.CircularPitch)
	fmt.Fprintf(tw, "base pitch\t%.4f mm\n", res.BasePitch)
	fmt.Fprintf(tw, "basic space width\t%.4f mm\n", res.BasicSpaceWidth)
	fmt.Fprintf(tw, "basic tooth thickness\t%.4f mm\n", res.BasicToothThickness)
	fmt.Fprintf(tw, "form tooth height\t%.4f mm\n\n", res.FormToothHeight)

	fmt.Fprintln(tw, "-- tolerances --")
	fmt.Fprintf(tw, "tolerance unit i\t%.4f um\n", res.ToleranceUnit)
	fmt.Fprintf(tw, "total tolerance (T+lambda)\t%.4f mm\n", res.TotalTolerance)
	fmt.Fprintf(tw, "machining tolerance T\t%.4f mm\n", res.MachiningTolerance)
	fmt.Fprintf(tw, "deviation allowance lambda\t%.4f mm\n", res.DeviationAllowance)
	fmt.Fprintf(tw, "pitch deviation Fp\t%.4f mm\n", res.PitchDeviation)
	fmt.Fprintf(tw, "profile deviation Fa\t%.4f mm\n", res.ProfileDeviation)
	fmt.Fprintf(tw, "helix deviation Fb\t%.4f mm\n\n", res.HelixDeviation)

	writeEnvelope(tw, "space width (internal)", res.SpaceWidth)
	writeEnvelope(tw, "tooth thickness (external)", res.ToothThickness)

	fmt.Fprintln(tw, "-- clearance --")
	fmt.Fprintf(tw, "effective min\t%.4f mm\n", res.Clearance.EffectiveMin)
	fmt.Fprintf(tw, "effective max\t%.4f mm\n", res.Clearance.EffectiveMax)
	fmt.Fprintf(tw, "form clearance cF\t%.4f mm\n\n", res.Clearance.Form)

	fmt.Fprintln(tw, "-- diameters, external --")
	fmt.Fprintf(tw, "major\t%.4f / %.4f mm\n", res.External.MajorMin, res.External.MajorMax)
	fmt.Fprintf(tw, "form max\t%.4f mm\n\n", res.External.FormMax)

	fmt.Fprintln(tw, "-- diameters, internal --")
	fmt.Fprintf(tw, "major min\t%.4f mm\n", res.Internal.MajorMin)
	fmt.Fprintf(tw, "form min\t%.4f mm\n", res.Internal.FormMin)
	fmt.Fprintf(tw, "minor\t%.4f / %.4f mm\n\n", res.Internal.MinorMin, res.Internal.MinorMax)

	fmt.Fprintln(tw, "-- measurement --")
	fmt.Fprintf(tw, "ball/pin diameter internal\t%.4f mm\n", res.Measurement.BallPinDiameterInternal)
	fmt.Fprintf(tw, "ball/pin diameter external\t%.4f mm\n", res.Measurement.BallPinDiameterExternal)
	fmt.Fprintf(tw, "over rollers internal\t%.4f mm\n", res.Measurement.OverRollersInternal)
	fmt.Fprintf(tw, "over rollers external\t%.4f mm\n", res.Measurement.OverRollersExternal)

	return tw.Flush()
}

func writeEnvelope(w io.Writer, title string, e spline.Envelope) {
	fmt.Fprintf(w, "-- %s --\n", title)
	fmt.Fprintf(w, "effective\t%.4f / %.4f mm\n", e.EffectiveMin, e.EffectiveMax)
	fmt.Fprintf(w, "actual\t%.4f / %.4f mm\n\n", e.ActualMin, e.ActualMax)
}

// String renders res to a string.
func String(res *spline.Result) string {
	var sb strings.Builder
	// tabwriter flushing to a strings.Builder cannot fail.
	_ = Write(&sb, res)
	return sb.String()
}
