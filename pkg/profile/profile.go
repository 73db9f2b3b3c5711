// Package profile derives 2D involute tooth-profile coordinates from a
// computed spline parameter set. Like the calculator it is pure: the output
// is a read-only snapshot that keeps only the radii it was derived from,
// never a live reference into the Result.
package profile

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/involute/pkg/spline"
)

// ErrInvalidProfilePointCount is returned when pointsPerCurve is too small
// to represent an involute curve meaningfully.
var ErrInvalidProfilePointCount = errors.New("profile point count must be greater than 10")

// AssemblyTeethLimit is the tooth count above which the full-spline
// assembly is skipped. The single-tooth profiles remain available.
const AssemblyTeethLimit = 50

// Point is a 2D coordinate in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Side holds the profile curves for one side of the connection (the
// external shaft tooth or the internal hub tooth space).
type Side struct {
	// Half is the half profile from root to tip: the root point plus the
	// sampled involute flank.
	Half []Point `json:"half"`
	// Tooth is the full symmetric profile: Half concatenated with its
	// mirror image about the tooth bisector.
	Tooth []Point `json:"tooth"`
	// Assembled is the complete spline: Tooth rotated and repeated once per
	// tooth. Nil when the tooth count exceeds AssemblyTeethLimit.
	Assembled []Point `json:"assembled,omitempty"`

	// Radii snapshot used to produce the curves.
	BaseRadius  float64 `json:"base_radius"`
	PitchRadius float64 `json:"pitch_radius"`
	OuterRadius float64 `json:"outer_radius"`
	FormRadius  float64 `json:"form_radius"`
}

// Data bundles the generated profiles for both sides.
type Data struct {
	Teeth    int  `json:"teeth"`
	External Side `json:"external"`
	Internal Side `json:"internal"`
}

// Generate samples the involute flanks described by res with pointsPerCurve
// points per curve and assembles the tooth and full-spline profiles.
// Deterministic for identical arguments.
func Generate(res *spline.Result, pointsPerCurve int) (*Data, error) {
	if pointsPerCurve <= 10 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidProfilePointCount, pointsPerCurve)
	}

	z := res.Input.Teeth
	rb := res.BaseDiameter / 2
	rp := res.PitchDiameter / 2
	alpha := res.Input.PressureAngle * math.Pi / 180

	// Offset that centers one flank symmetrically about the tooth bisector.
	halfTooth := math.Pi / float64(z)
	theta := halfTooth - involute(alpha)

	ext := buildSide(rb, rp,
		res.External.MajorMax/2, res.External.FormMax/2,
		theta, pointsPerCurve, z, true)
	intl := buildSide(rb, rp,
		res.Internal.MajorMin/2, res.Internal.FormMin/2,
		-theta, pointsPerCurve, z, false)

	return &Data{Teeth: z, External: ext, Internal: intl}, nil
}

// involute is the involute function inv(α) = tan(α) − α.
func involute(alpha float64) float64 {
	return math.Tan(alpha) - alpha
}

// rotate turns p by theta radians about the origin.
func rotate(p Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// buildSide samples one involute flank between the base circle and the
// outer bound radius, attaches the root point at the form radius and
// derives the mirrored tooth and, for small tooth counts, the assembled
// spline. For the external side the root point leads the flank; for the
// internal side it trails it.
func buildSide(rb, rp, outer, form, theta float64, points, teeth int, external bool) Side {
	uMax := math.Sqrt((outer/rb)*(outer/rb) - 1)

	flank := make([]Point, points)
	for i := 0; i < points; i++ {
		u := uMax * float64(i) / float64(points-1)
		sin, cos := math.Sincos(u)
		raw := Point{
			X: rb * (cos + u*sin),
			Y: rb * (sin - u*cos),
		}
		flank[i] = rotate(raw, theta)
	}

	// Single root point at the form radius. For fillet roots this is a
	// visual approximation, not a tangent arc.
	root := rotate(Point{X: form}, theta)

	var half []Point
	if external {
		half = append([]Point{root}, flank...)
	} else {
		half = append(flank, root)
	}

	tooth := mirrorTooth(half)

	side := Side{
		Half:        half,
		Tooth:       tooth,
		BaseRadius:  rb,
		PitchRadius: rp,
		OuterRadius: outer,
		FormRadius:  form,
	}
	if teeth <= AssemblyTeethLimit {
		side.Assembled = assemble(tooth, teeth)
	}
	return side
}

// mirrorTooth appends the mirror image of half (y negated, order reversed)
// so that the result is point-symmetric about the x axis.
func mirrorTooth(half []Point) []Point {
	tooth := make([]Point, 0, 2*len(half))
	tooth = append(tooth, half...)
	for i := len(half) - 1; i >= 0; i-- {
		tooth = append(tooth, Point{X: half[i].X, Y: -half[i].Y})
	}
	return tooth
}

// assemble rotates tooth by one angular pitch per tooth and concatenates
// the copies into the complete spline outline.
func assemble(tooth []Point, teeth int) []Point {
	out := make([]Point, 0, len(tooth)*teeth)
	for k := 0; k < teeth; k++ {
		phi := 2 * math.Pi * float64(k) / float64(teeth)
		for _, p := range tooth {
			out = append(out, rotate(p, phi))
		}
	}
	return out
}
