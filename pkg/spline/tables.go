package spline

import "math"

// Tolerance-class factor tables from ISO 4156-1, indexed by
// toleranceClass - 4 (classes 4..7).
var (
	fpLFactor    = [4]float64{2.5, 3.55, 5.0, 7.1}
	fAlphaFactor = [4]float64{1.6, 2.5, 4.0, 6.3}
	fBetaFactor  = [4]float64{0.8, 5.0, 12.5, 20.0}
	tFactor      = [4]float64{10, 16, 25, 40}
	lambdaFactor = [4]float64{40, 64, 100, 160}
)

// toleranceUnit evaluates the tolerance unit i for a reference size x in mm.
// The result is in µm. The same piecewise formula serves both the pitch
// diameter and the basic space width.
func toleranceUnit(x float64) float64 {
	if x <= 500 {
		return 0.45*math.Cbrt(x) + 0.001*x
	}
	return 0.004*x + 2.1
}

// formHeightFactor returns the form tooth height hs as a multiple of the
// module. Only the 30° profile distinguishes the root form.
func formHeightFactor(angle float64, root RootType) float64 {
	switch {
	case angle == 30 && root == RootFlat:
		return 0.6
	case angle == 30:
		return 0.9
	case angle == 37.5:
		return 0.7
	default: // 45
		return 0.6
	}
}

// moduleCoefficient returns the per-profile multiple of the module used by
// the internal major and minor diameter formulas.
func moduleCoefficient(angle float64, root RootType) float64 {
	switch {
	case angle == 30 && root == RootFlat:
		return 1.5
	case angle == 30:
		return 1.8
	case angle == 37.5:
		return 1.4
	default: // 45
		return 1.2
	}
}

// tipCoefficient returns the multiple of module·tan(α) used by the external
// major diameter formula. Root form does not matter here.
func tipCoefficient(angle float64) float64 {
	switch angle {
	case 30:
		return 1.5
	case 37.5:
		return 0.9
	default: // 45
		return 0.8
	}
}

// formCoefficient returns the multiplier of the diametral form clearance in
// the internal form diameter formula, plus a fixed offset in mm. The 2 mm
// offset for 37.5° and 45° comes straight from the standard's worked
// formulas and is an absolute value, not a multiple of anything.
func formCoefficient(angle float64) (factor, offset float64) {
	switch angle {
	case 30:
		return 1.2, 0
	case 37.5:
		return 0.9, 2.0
	default: // 45
		return 0.8, 2.0
	}
}

// diameterBand returns the multiple of the tolerance unit applied to the
// secondary diameter limits, banded by module.
func diameterBand(module float64) float64 {
	switch {
	case module <= 0.75:
		return 10
	case module <= 2:
		return 11
	default:
		return 12
	}
}
