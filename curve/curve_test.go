package curve

import (
	"errors"
	"testing"

	"github.com/gogpu/smith/gamma"
	"gonum.org/v1/gonum/floats/scalar"
)

// exampleCurve is a sample trace across the upper half of the chart.
var exampleCurve = []gamma.Point{
	{U: -0.3, V: 0.4}, {U: -0.2273, V: 0.4479}, {U: -0.1545, V: 0.4826}, {U: -0.0818, V: 0.5041},
	{U: -0.0091, V: 0.5124}, {U: 0.0636, V: 0.5074}, {U: 0.1364, V: 0.4893}, {U: 0.2091, V: 0.4579},
	{U: 0.2818, V: 0.4132}, {U: 0.3545, V: 0.3554}, {U: 0.4273, V: 0.2843}, {U: 0.5, V: 0.2},
}

func pointsEqual(a, b gamma.Point, tol float64) bool {
	return scalar.EqualWithinAbs(a.U, b.U, tol) && scalar.EqualWithinAbs(a.V, b.V, tol)
}

func TestInterpolateTooFewPoints(t *testing.T) {
	for _, pts := range [][]gamma.Point{nil, {{U: 0, V: 0}}} {
		if _, err := Interpolate(pts, DefaultCurviness); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("Interpolate(%d points) error = %v, want ErrTooFewPoints", len(pts), err)
		}
	}
}

func TestInterpolateTwoPointsIsLine(t *testing.T) {
	a, b := gamma.Pt(-0.5, 0.1), gamma.Pt(0.3, -0.2)
	segs, err := Interpolate([]gamma.Point{a, b}, DefaultCurviness)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1", len(segs))
	}
	if s := segs[0]; s.C1 != a || s.C2 != b || s.To != b {
		t.Errorf("segment = %+v, want controls on the endpoints", s)
	}
}

func TestInterpolateExampleCurve(t *testing.T) {
	segs, err := Interpolate(exampleCurve, DefaultCurviness)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	if len(segs) != 11 {
		t.Fatalf("len(segs) = %d, want 11", len(segs))
	}
	if segs[0].C1 != exampleCurve[0] {
		t.Errorf("first control = %v, want %v", segs[0].C1, exampleCurve[0])
	}
	last := segs[len(segs)-1]
	if last.C2 != exampleCurve[11] {
		t.Errorf("last control = %v, want %v", last.C2, exampleCurve[11])
	}
	for i, s := range segs {
		if s.To != exampleCurve[i+1] {
			t.Errorf("segment %d ends at %v, want %v", i, s.To, exampleCurve[i+1])
		}
	}
	// Interior joins are smooth: the controls either side of a point are
	// on one line through it.
	for i := 0; i < len(segs)-1; i++ {
		p := segs[i].To
		in, out := segs[i].C2, segs[i+1].C1
		cross := (p.U-in.U)*(out.V-p.V) - (p.V-in.V)*(out.U-p.U)
		if !scalar.EqualWithinAbs(cross, 0, 1e-9) {
			t.Errorf("join %d not smooth, cross = %v", i+1, cross)
		}
	}
}

func TestControlPointsCollinear(t *testing.T) {
	g := Line{A: gamma.Pt(0, 0), B: gamma.Pt(1, 0)}
	l := Line{A: gamma.Pt(2, 0), B: gamma.Pt(3, 0)}
	c1, c2 := ControlPoints(g, l, DefaultCurviness)
	if !pointsEqual(c1, gamma.Pt(1.25, 0), 1e-12) {
		t.Errorf("c1 = %v, want (1.25, 0)", c1)
	}
	if !pointsEqual(c2, gamma.Pt(1.75, 0), 1e-12) {
		t.Errorf("c2 = %v, want (1.75, 0)", c2)
	}
}

func TestControlPointsCurviness(t *testing.T) {
	g := Line{A: gamma.Pt(0, 0), B: gamma.Pt(1, 0)}
	l := Line{A: gamma.Pt(2, 1), B: gamma.Pt(3, 1)}
	c1, _ := ControlPoints(g, l, 0)
	if c1 != g.B {
		t.Errorf("zero curviness c1 = %v, want %v", c1, g.B)
	}
	c1, c2 := ControlPoints(g, l, 0.5)
	lgt := gamma.Pt(l.A.U-g.B.U, l.A.V-g.B.V).Abs()
	if d := gamma.Pt(c1.U-g.B.U, c1.V-g.B.V).Abs(); !scalar.EqualWithinAbs(d, 0.5*lgt, 1e-12) {
		t.Errorf("|c1 - P1| = %v, want %v", d, 0.5*lgt)
	}
	if d := gamma.Pt(c2.U-l.A.U, c2.V-l.A.V).Abs(); !scalar.EqualWithinAbs(d, 0.5*lgt, 1e-12) {
		t.Errorf("|c2 - P2| = %v, want %v", d, 0.5*lgt)
	}
}
