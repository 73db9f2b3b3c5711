package spline

import "math"

// Compute derives the full ISO 4156 parameter set from in. It validates the
// input first and never returns a partially populated Result: on any
// validation failure the Result is nil and the error is one of the named
// Err* values.
func Compute(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m := in.Module
	z := float64(in.Teeth)
	alpha := in.PressureAngle * math.Pi / 180

	// Fundamental sizes.
	d := m * z
	db := d * math.Cos(alpha)
	p := m * math.Pi
	pb := p * math.Cos(alpha)
	e := 0.5 * math.Pi * m // basic space width E = basic tooth thickness S

	// Tolerance units for the pitch diameter and the basic space width, µm.
	iD := toleranceUnit(d)
	iE := toleranceUnit(e)

	cls := in.ToleranceClass - 4
	total := (tFactor[cls]*iD + lambdaFactor[cls]*iE) / 1000 // (T+λ), mm

	// Two-stage split per the standard: a nominal 40% deviation allowance
	// seeds the machining tolerance T, then λ is recomputed from the
	// individual deviations below. The refined λ and T are not required to
	// sum back to (T+λ).
	lambdaInitial := 0.4 * total
	machining := total - lambdaInitial

	length := math.Pi * m * z / 2
	fp := (fpLFactor[cls]*length + 9) / 1000
	phiF := 0.0125 * m * z
	fAlpha := (fAlphaFactor[cls]*phiF + 16) / 1000
	fBeta := (fBetaFactor[cls]*in.Length + 4) / 1000
	lambda := 0.6 * math.Sqrt(fp*fp+fAlpha*fAlpha+fBeta*fBeta)

	es := in.Deviation / 1000 // µm -> mm, signed

	// Space width (internal) and tooth thickness (external) envelopes.
	space := Envelope{
		EffectiveMin: e,
		EffectiveMax: e + machining,
		ActualMin:    e + lambda,
		ActualMax:    e + lambda + machining,
	}
	svMax := e + es
	tooth := Envelope{
		EffectiveMax: svMax,
		EffectiveMin: svMax - machining,
		ActualMax:    svMax - lambda,
		ActualMin:    svMax - (lambda + machining),
	}

	cf := in.FormClearanceFactor * m
	clearance := Clearance{
		EffectiveMax: space.EffectiveMax - tooth.EffectiveMin,
		EffectiveMin: space.EffectiveMin - tooth.EffectiveMax,
		Form:         cf,
	}

	hf := formHeightFactor(in.PressureAngle, in.RootType) * m
	band := diameterBand(m) * iD / 1000

	cm := moduleCoefficient(in.PressureAngle, in.RootType)
	ct := tipCoefficient(in.PressureAngle)
	ff, off := formCoefficient(in.PressureAngle)

	ext := ExternalDiameters{}
	ext.MajorMax = d + ct*m*math.Tan(alpha) + es
	ext.MajorMin = ext.MajorMax - band
	ext.FormMax = d - 2*(hf+cf)

	intl := InternalDiameters{
		MajorMin: d + cm*m,
		FormMin:  d + ff*2*cf + off,
		MinorMin: d - cm*m,
	}
	intl.MinorMax = intl.MinorMin + band

	// Inspection values over balls/pins and rollers.
	s := e
	dre := 2 * math.Sqrt((d/2)*(d/2)-(s/2)*(s/2))
	dri := 2 * math.Sqrt((d/2)*(d/2)-(e/2)*(e/2))
	meas := Measurement{
		BallPinDiameterInternal: dri,
		BallPinDiameterExternal: dre,
		OverRollersInternal:     e + dre,
		OverRollersExternal:     s + dre,
	}

	return &Result{
		Input: in,

		PitchDiameter:       d,
		BaseDiameter:        db,
		CircularPitch:       p,
		BasePitch:           pb,
		BasicSpaceWidth:     e,
		BasicToothThickness: e,
		FormToothHeight:     hf,

		ToleranceUnit:      iD,
		TotalTolerance:     total,
		MachiningTolerance: machining,
		DeviationAllowance: lambda,
		PitchDeviation:     fp,
		ProfileDeviation:   fAlpha,
		HelixDeviation:     fBeta,

		SpaceWidth:     space,
		ToothThickness: tooth,
		Clearance:      clearance,
		External:       ext,
		Internal:       intl,
		Measurement:    meas,
	}, nil
}
