// Package spline implements the closed-form geometry and tolerance
// calculations of ISO 4156-1:2021 for involute splines. The calculator is
// pure: a validated Input maps deterministically to a Result, with no
// state, no iteration and no side effects.
package spline

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RootType selects the root form of the basic rack profile.
type RootType string

const (
	RootFlat   RootType = "flat"
	RootFillet RootType = "fillet"
)

// Named validation errors. Each invalid input field maps to exactly one of
// these so callers can build precise diagnostics.
var (
	ErrInvalidModule         = errors.New("module must be greater than zero")
	ErrInvalidTeethCount     = errors.New("teeth count must be a positive integer")
	ErrInvalidPressureAngle  = errors.New("pressure angle must be 30, 37.5 or 45 degrees")
	ErrInvalidRootType       = errors.New(`root type must be "flat" or "fillet"`)
	ErrInvalidToleranceClass = errors.New("tolerance class must be 4, 5, 6 or 7")
	ErrInvalidSplineLength   = errors.New("spline length must be greater than zero")
	ErrInvalidFormClearance  = errors.New("form clearance factor must be greater than zero")
)

// Input holds the independent spline parameters. It is a value object:
// validated once at the boundary and never mutated afterwards.
type Input struct {
	Module              float64  `json:"module" yaml:"module" validate:"gt=0"`
	Teeth               int      `json:"teeth" yaml:"teeth" validate:"gt=0"`
	PressureAngle       float64  `json:"pressure_angle" yaml:"pressure_angle"` // degrees; 30, 37.5 or 45, checked in Validate
	RootType            RootType `json:"root_type" yaml:"root_type" validate:"oneof=flat fillet"`
	ToleranceClass      int      `json:"tolerance_class" yaml:"tolerance_class" validate:"oneof=4 5 6 7"`
	Length              float64  `json:"length" yaml:"length" validate:"gt=0"` // spline engagement length in mm
	Deviation           float64  `json:"deviation" yaml:"deviation"`           // external tooth thickness deviation es in µm, signed
	FormClearanceFactor float64  `json:"form_clearance_factor" yaml:"form_clearance_factor" validate:"gt=0"`
}

var inputValidator = validator.New()

// Validate checks every field and reports the first violation as one of the
// named sentinel errors. A nil return means the Input is in the calculator's
// defined domain.
func (in Input) Validate() error {
	// The pressure angle is checked by hand: validator's oneof only
	// handles string and integer kinds and panics on float fields.
	switch in.PressureAngle {
	case 30, 37.5, 45:
	default:
		return fmt.Errorf("%w: got %v", ErrInvalidPressureAngle, in.PressureAngle)
	}

	err := inputValidator.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "Module":
		return fmt.Errorf("%w: got %v", ErrInvalidModule, fe.Value())
	case "Teeth":
		return fmt.Errorf("%w: got %v", ErrInvalidTeethCount, fe.Value())
	case "RootType":
		return fmt.Errorf("%w: got %q", ErrInvalidRootType, fe.Value())
	case "ToleranceClass":
		return fmt.Errorf("%w: got %v", ErrInvalidToleranceClass, fe.Value())
	case "Length":
		return fmt.Errorf("%w: got %v", ErrInvalidSplineLength, fe.Value())
	case "FormClearanceFactor":
		return fmt.Errorf("%w: got %v", ErrInvalidFormClearance, fe.Value())
	}
	return err
}

// Envelope describes the four-bound width envelope of a tooth space or a
// tooth thickness: the effective (fit) limits and the actual (machined)
// limits, all in mm.
type Envelope struct {
	EffectiveMin float64 `json:"effective_min"`
	EffectiveMax float64 `json:"effective_max"`
	ActualMin    float64 `json:"actual_min"`
	ActualMax    float64 `json:"actual_max"`
}

// Clearance bundles the fit clearances between the internal and the
// external spline.
type Clearance struct {
	EffectiveMin float64 `json:"effective_min"`
	EffectiveMax float64 `json:"effective_max"`
	Form         float64 `json:"form"` // absolute form clearance cF in mm
}

// ExternalDiameters are the limit diameters of the external spline (shaft).
type ExternalDiameters struct {
	MajorMin float64 `json:"major_min"`
	MajorMax float64 `json:"major_max"`
	FormMax  float64 `json:"form_max"`
}

// InternalDiameters are the limit diameters of the internal spline (hub).
type InternalDiameters struct {
	MajorMin float64 `json:"major_min"`
	FormMin  float64 `json:"form_min"`
	MinorMin float64 `json:"minor_min"`
	MinorMax float64 `json:"minor_max"`
}

// Measurement holds the inspection values: ball/pin diameters and the
// measurements over rollers, all in mm.
type Measurement struct {
	BallPinDiameterInternal float64 `json:"ball_pin_diameter_internal"`
	BallPinDiameterExternal float64 `json:"ball_pin_diameter_external"`
	OverRollersInternal     float64 `json:"over_rollers_internal"`
	OverRollersExternal     float64 `json:"over_rollers_external"`
}

// Result is the complete derived parameter set for one spline connection.
// Every field is a deterministic function of Input; a Result is computed
// once and never mutated.
type Result struct {
	Input Input `json:"input"`

	// Basic geometry, mm unless noted.
	PitchDiameter       float64 `json:"pitch_diameter"`
	BaseDiameter        float64 `json:"base_diameter"`
	CircularPitch       float64 `json:"circular_pitch"`
	BasePitch           float64 `json:"base_pitch"`
	BasicSpaceWidth     float64 `json:"basic_space_width"`
	BasicToothThickness float64 `json:"basic_tooth_thickness"`
	FormToothHeight     float64 `json:"form_tooth_height"`

	// Tolerance system.
	ToleranceUnit      float64 `json:"tolerance_unit"`      // i, µm
	TotalTolerance     float64 `json:"total_tolerance"`     // (T+λ), mm
	MachiningTolerance float64 `json:"machining_tolerance"` // T, mm
	DeviationAllowance float64 `json:"deviation_allowance"` // λ, mm
	PitchDeviation     float64 `json:"pitch_deviation"`     // Fp, mm
	ProfileDeviation   float64 `json:"profile_deviation"`   // Fα, mm
	HelixDeviation     float64 `json:"helix_deviation"`     // Fβ, mm

	SpaceWidth     Envelope `json:"space_width"`
	ToothThickness Envelope `json:"tooth_thickness"`

	Clearance Clearance `json:"clearance"`

	External ExternalDiameters `json:"external"`
	Internal InternalDiameters `json:"internal"`

	Measurement Measurement `json:"measurement"`
}
