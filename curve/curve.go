// Package curve fits smooth cubic Bézier curves through gamma plane points.
//
// The control points of segment P[i-1]→P[i] are taken on a tangent built
// from the neighbouring segments, at a fixed fraction (the curviness) of
// the segment length from each end. The path is open: the first and last
// segments have no outer neighbour, so their outer control point collapses
// onto the end point.
package curve

import (
	"errors"
	"math"

	"github.com/gogpu/smith/gamma"
)

// DefaultCurviness is the control point distance as a fraction of the
// segment length.
const DefaultCurviness = 0.25

// ErrTooFewPoints is returned when fewer than two points are given.
var ErrTooFewPoints = errors.New("curve: need at least two points")

// Line is a directed segment from A to B.
type Line struct {
	A, B gamma.Point
}

// Angle returns the direction of the line in radians.
func (l Line) Angle() float64 {
	return math.Atan2(l.B.V-l.A.V, l.B.U-l.A.U)
}

// Segment is one cubic Bézier segment. The start point is the previous
// segment's To, or the first input point.
type Segment struct {
	C1, C2 gamma.Point
	To     gamma.Point
}

// ControlPoints returns the control points of the segment joining g.B to
// l.A, where g is the segment before it and l the segment after it.
// f is the curviness.
func ControlPoints(g, l Line, f float64) (c1, c2 gamma.Point) {
	lgt := math.Hypot(g.B.U-l.A.U, g.B.V-l.A.V)

	// Tangent at g.B: from a point lgt back along g to l.A.
	ga := g.Angle()
	h := Line{
		A: gamma.Pt(g.B.U-lgt*math.Cos(ga), g.B.V-lgt*math.Sin(ga)),
		B: l.A,
	}
	a := h.Angle()
	c1 = gamma.Pt(g.B.U+lgt*math.Cos(a)*f, g.B.V+lgt*math.Sin(a)*f)

	// Tangent at l.A: from g.B to a point lgt forward along l.
	la := l.Angle()
	h = Line{
		A: g.B,
		B: gamma.Pt(l.A.U+lgt*math.Cos(la), l.A.V+lgt*math.Sin(la)),
	}
	a = h.Angle()
	c2 = gamma.Pt(l.A.U-lgt*math.Cos(a)*f, l.A.V-lgt*math.Sin(a)*f)
	return c1, c2
}

// Interpolate returns the len(points)-1 segments of a smooth open curve
// through points. Two points give a straight segment with its control
// points on the ends.
func Interpolate(points []gamma.Point, f float64) ([]Segment, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	segs := make([]Segment, 0, n-1)
	for i := 1; i < n; i++ {
		// Neighbour indices wrap; the ends are fixed up below.
		g := Line{A: points[(i+n-2)%n], B: points[(i+n-1)%n]}
		l := Line{A: points[i%n], B: points[(i+1)%n]}
		c1, c2 := ControlPoints(g, l, f)

		if i == 1 {
			c1 = g.B
		}
		if i == n-1 {
			c2 = l.A
		}
		segs = append(segs, Segment{C1: c1, C2: c2, To: points[i]})
	}
	return segs, nil
}
