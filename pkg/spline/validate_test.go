package spline

import (
	"errors"
	"testing"
)

func TestValidateRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"zero module", func(in *Input) { in.Module = 0 }, ErrInvalidModule},
		{"negative module", func(in *Input) { in.Module = -2 }, ErrInvalidModule},
		{"zero teeth", func(in *Input) { in.Teeth = 0 }, ErrInvalidTeethCount},
		{"negative teeth", func(in *Input) { in.Teeth = -20 }, ErrInvalidTeethCount},
		{"pressure angle 40", func(in *Input) { in.PressureAngle = 40 }, ErrInvalidPressureAngle},
		{"pressure angle 20", func(in *Input) { in.PressureAngle = 20 }, ErrInvalidPressureAngle},
		{"unknown root type", func(in *Input) { in.RootType = "round" }, ErrInvalidRootType},
		{"empty root type", func(in *Input) { in.RootType = "" }, ErrInvalidRootType},
		{"class too low", func(in *Input) { in.ToleranceClass = 3 }, ErrInvalidToleranceClass},
		{"class too high", func(in *Input) { in.ToleranceClass = 8 }, ErrInvalidToleranceClass},
		{"zero length", func(in *Input) { in.Length = 0 }, ErrInvalidSplineLength},
		{"zero clearance factor", func(in *Input) { in.FormClearanceFactor = 0 }, ErrInvalidFormClearance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(&in)

			err := in.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}

			res, cerr := Compute(in)
			if res != nil {
				t.Error("Compute returned a partial result for invalid input")
			}
			if !errors.Is(cerr, tt.want) {
				t.Errorf("Compute() error = %v, want %v", cerr, tt.want)
			}
		})
	}
}

func TestValidateNeverPanics(t *testing.T) {
	inputs := []Input{
		base(),
		{}, // zero value: every field invalid
		{Module: 2, Teeth: 20, PressureAngle: 40, RootType: RootFlat,
			ToleranceClass: 5, Length: 50, FormClearanceFactor: 0.1},
	}
	for i, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("input %d: Validate panicked: %v", i, r)
				}
			}()
			_ = in.Validate()
		}()
	}

	in := base()
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateAcceptsAllDefinedAngles(t *testing.T) {
	for _, angle := range []float64{30, 37.5, 45} {
		in := base()
		in.PressureAngle = angle
		if err := in.Validate(); err != nil {
			t.Errorf("angle %v: Validate() = %v, want nil", angle, err)
		}
	}
}

func TestValidateAllowsAnyDeviationSign(t *testing.T) {
	for _, dev := range []float64{-120, 0, 35} {
		in := base()
		in.Deviation = dev
		if err := in.Validate(); err != nil {
			t.Errorf("deviation %v: Validate() = %v, want nil", dev, err)
		}
	}
}
