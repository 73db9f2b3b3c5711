// Package svg plots generated tooth profiles as standalone SVG documents.
// It consumes profile.Data read-only; nothing here feeds back into the
// calculator or the generator.
package svg

import (
	"fmt"
	"io"

	"github.com/chazu/involute/pkg/profile"
)

// Stroke styles for the plotted curves.
const (
	externalStyle  = "stroke: #1f77b4; stroke-width: 0.02; fill: none"
	internalStyle  = "stroke: #d62728; stroke-width: 0.02; fill: none"
	referenceStyle = "stroke: #999999; stroke-width: 0.01; fill: none; stroke-dasharray: 0.2 0.2"
)

// Options controls what Write plots.
type Options struct {
	// Assembled plots the complete spline outlines when available,
	// otherwise the single-tooth profiles.
	Assembled bool
	// ReferenceCircles adds dashed base and pitch circles.
	ReferenceCircles bool
}

// writer wraps an io.Writer with printf-style helpers and sticky error
// handling so the plotting code stays linear.
type writer struct {
	w   io.Writer
	err error
}

func (s *writer) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// Write renders d as an SVG document to w.
func Write(w io.Writer, d *profile.Data, opts Options) error {
	s := &writer{w: w}

	// The internal major radius is the largest radius in the data.
	extent := d.Internal.OuterRadius * 1.05

	s.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%.4f %.4f %.4f %.4f\">\n",
		-extent, -extent, 2*extent, 2*extent)
	// Flip the y axis so positive y points up, as in the tooth coordinates.
	s.printf("  <g transform=\"scale(1,-1)\">\n")

	if opts.ReferenceCircles {
		s.circle(d.External.BaseRadius)
		s.circle(d.External.PitchRadius)
	}

	s.polyline(selectCurve(d.External, opts.Assembled), externalStyle)
	s.polyline(selectCurve(d.Internal, opts.Assembled), internalStyle)

	s.printf("  </g>\n</svg>\n")
	return s.err
}

func selectCurve(side profile.Side, assembled bool) []profile.Point {
	if assembled && side.Assembled != nil {
		return side.Assembled
	}
	return side.Tooth
}

func (s *writer) polyline(pts []profile.Point, style string) {
	if len(pts) == 0 {
		return
	}
	s.printf("    <polyline style=\"%s\" points=\"", style)
	for i, p := range pts {
		if i > 0 {
			s.printf(" ")
		}
		s.printf("%.4f,%.4f", p.X, p.Y)
	}
	s.printf("\"/>\n")
}

func (s *writer) circle(r float64) {
	s.printf("    <circle style=\"%s\" cx=\"0\" cy=\"0\" r=\"%.4f\"/>\n", referenceStyle, r)
}
