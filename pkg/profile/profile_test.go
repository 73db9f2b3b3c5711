package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/involute/pkg/spline"
)

func compute(t *testing.T, teeth int) *spline.Result {
	t.Helper()
	res, err := spline.Compute(spline.Input{
		Module:              2,
		Teeth:               teeth,
		PressureAngle:       30,
		RootType:            spline.RootFlat,
		ToleranceClass:      5,
		Length:              50,
		FormClearanceFactor: 0.1,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return res
}

func TestGenerateRejectsTooFewPoints(t *testing.T) {
	res := compute(t, 20)
	for _, n := range []int{-1, 0, 10} {
		d, err := Generate(res, n)
		if d != nil {
			t.Errorf("points=%d: expected nil data", n)
		}
		if !errors.Is(err, ErrInvalidProfilePointCount) {
			t.Errorf("points=%d: error = %v, want ErrInvalidProfilePointCount", n, err)
		}
	}
}

func TestHalfProfilePointCounts(t *testing.T) {
	res := compute(t, 20)
	d, err := Generate(res, 40)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Half = flank samples plus one root point; Tooth = mirrored Half.
	for name, side := range map[string]Side{"external": d.External, "internal": d.Internal} {
		if len(side.Half) != 41 {
			t.Errorf("%s: len(Half) = %d, want 41", name, len(side.Half))
		}
		if len(side.Tooth) != 2*len(side.Half) {
			t.Errorf("%s: len(Tooth) = %d, want %d", name, len(side.Tooth), 2*len(side.Half))
		}
	}
}

func TestFlankSpansBaseToOuterRadius(t *testing.T) {
	res := compute(t, 20)
	d, err := Generate(res, 50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// External half: index 0 is the root point, index 1 the involute start
	// on the base circle, last index the tip on the outer bound radius.
	ext := d.External
	first := ext.Half[1]
	last := ext.Half[len(ext.Half)-1]
	rFirst := math.Hypot(first.X, first.Y)
	rLast := math.Hypot(last.X, last.Y)
	if math.Abs(rFirst-ext.BaseRadius) > 1e-9 {
		t.Errorf("flank start radius = %v, want base radius %v", rFirst, ext.BaseRadius)
	}
	if math.Abs(rLast-ext.OuterRadius) > 1e-9 {
		t.Errorf("flank end radius = %v, want outer radius %v", rLast, ext.OuterRadius)
	}

	rRoot := math.Hypot(ext.Half[0].X, ext.Half[0].Y)
	if math.Abs(rRoot-ext.FormRadius) > 1e-9 {
		t.Errorf("root point radius = %v, want form radius %v", rRoot, ext.FormRadius)
	}
}

func TestToothMirrorSymmetry(t *testing.T) {
	res := compute(t, 20)
	d, err := Generate(res, 30)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for name, side := range map[string]Side{"external": d.External, "internal": d.Internal} {
		n := len(side.Tooth)
		for i := 0; i < n/2; i++ {
			a := side.Tooth[i]
			b := side.Tooth[n-1-i]
			if math.Abs(a.X-b.X) > 1e-12 || math.Abs(a.Y+b.Y) > 1e-12 {
				t.Fatalf("%s: tooth not mirror-symmetric at %d: (%v,%v) vs (%v,%v)",
					name, i, a.X, a.Y, b.X, b.Y)
			}
		}
	}
}

func TestAssembledProfileCopiesPerTooth(t *testing.T) {
	res := compute(t, 20)
	d, err := Generate(res, 25)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := 20 * len(d.External.Tooth)
	if len(d.External.Assembled) != want {
		t.Errorf("external assembled points = %d, want %d", len(d.External.Assembled), want)
	}
	if len(d.Internal.Assembled) != 20*len(d.Internal.Tooth) {
		t.Errorf("internal assembled points = %d, want %d",
			len(d.Internal.Assembled), 20*len(d.Internal.Tooth))
	}

	// Copy k sits one angular pitch further around; spot-check the second
	// copy against a rotation of the first.
	phi := 2 * math.Pi / 20
	sin, cos := math.Sincos(phi)
	for i, p := range d.External.Tooth {
		got := d.External.Assembled[len(d.External.Tooth)+i]
		wx := p.X*cos - p.Y*sin
		wy := p.X*sin + p.Y*cos
		if math.Abs(got.X-wx) > 1e-9 || math.Abs(got.Y-wy) > 1e-9 {
			t.Fatalf("assembled copy 1 point %d = (%v,%v), want (%v,%v)", i, got.X, got.Y, wx, wy)
		}
	}
}

func TestAssemblySkippedAboveTeethLimit(t *testing.T) {
	res := compute(t, 64)
	d, err := Generate(res, 25)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if d.External.Assembled != nil {
		t.Error("external assembly present for 64 teeth, want skipped")
	}
	if d.Internal.Assembled != nil {
		t.Error("internal assembly present for 64 teeth, want skipped")
	}
	// Single-tooth profiles remain available.
	if len(d.External.Tooth) == 0 || len(d.Internal.Tooth) == 0 {
		t.Error("tooth profiles should still be generated above the assembly limit")
	}
}

func TestAssemblyLimitBoundary(t *testing.T) {
	res := compute(t, 50)
	d, err := Generate(res, 25)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if d.External.Assembled == nil {
		t.Error("assembly missing at exactly 50 teeth, want generated")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	res := compute(t, 20)
	a, err := Generate(res, 30)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(res, 30)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i := range a.External.Tooth {
		if a.External.Tooth[i] != b.External.Tooth[i] {
			t.Fatal("identical inputs produced different profiles")
		}
	}
}
