package grid

import (
	"github.com/gogpu/smith/gamma"
)

// Family says which kind of grid line an arc is.
type Family int

// Arc families. Under the admittance rotation Resistance arcs are constant
// conductance and Reactance arcs constant susceptance.
const (
	Resistance Family = iota
	Reactance
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Resistance:
		return "Resistance"
	case Reactance:
		return "Reactance"
	default:
		return "Unknown"
	}
}

// Weight is a stroke weight class.
type Weight int

// Stroke weights, from finest to boldest.
const (
	Thin Weight = iota
	Minor
	Major
)

// Width returns the stroke width in chart radii.
func (w Weight) Width() float64 {
	switch w {
	case Thin:
		return 1.0 / 2000
	case Major:
		return 1.0 / 500
	default:
		return 1.0 / 1500
	}
}

// Arc is one grid line segment: part of a constant R (or constant X)
// circle between two values of the other family.
type Arc struct {
	Family Family
	Value  float64

	// From and To are the bounding values of the other family: reactances
	// for a Resistance arc, resistances for a Reactance arc.
	From, To float64

	Center gamma.Point
	Radius float64

	// Start and End are the sweep angles in radians. The sweep runs with
	// increasing angle from Start, wrapping past 2π if needed.
	Start, End float64

	Weight Weight

	// Zone is the index of the zone that produced the arc, or -1 for
	// arcs not tied to a zone.
	Zone int
}

// resistanceArc is the constant R arc between reactances xFrom and xTo.
func resistanceArc(r, xFrom, xTo float64, w Weight, zone int) Arc {
	c, radius := gamma.ResistanceCircle(r)
	return Arc{
		Family: Resistance,
		Value:  r,
		From:   xFrom,
		To:     xTo,
		Center: c,
		Radius: radius,
		Start:  gamma.AngleFromResistanceCenter(gamma.Impedance{R: r, X: xFrom}),
		End:    gamma.AngleFromResistanceCenter(gamma.Impedance{R: r, X: xTo}),
		Weight: w,
		Zone:   zone,
	}
}

// reactanceArc is the constant X arc between resistances rFrom and rTo.
func reactanceArc(x, rFrom, rTo float64, w Weight, zone int) Arc {
	c, radius := gamma.ReactanceCircle(x)
	return Arc{
		Family: Reactance,
		Value:  x,
		From:   rFrom,
		To:     rTo,
		Center: c,
		Radius: radius,
		Start:  gamma.AngleFromReactanceCenter(gamma.Impedance{R: rFrom, X: x}),
		End:    gamma.AngleFromReactanceCenter(gamma.Impedance{R: rTo, X: x}),
		Weight: w,
		Zone:   zone,
	}
}

// appendArcs drops arcs with an empty sweep.
func appendArcs(dst []Arc, arcs ...Arc) []Arc {
	for _, a := range arcs {
		if a.Start != a.End {
			dst = append(dst, a)
		}
	}
	return dst
}

// Generate returns the arcs of the grid described by spec, in draw order.
// Zones are visited once each up to the End entry. Malformed zone lists
// yield degenerate or missing arcs, never an error; see Spec.Validate.
func Generate(spec Spec) []Arc {
	zones := spec.Zones
	var arcs []Arc

	for i := 0; i < len(zones) && zones[i].TicksPerMajor != End; i++ {
		z := zones[i]
		if z.TicksPerMajor == SpecialCase {
			arcs = appendArcs(arcs, specialCaseArcs(i)...)
			continue
		}
		if i+1 >= len(zones) {
			break
		}
		next := zones[i+1].Boundary

		// Away from the centerline: R in (0, next], |X| in (z, next].
		arcs = sweepBlock(arcs, i,
			gamma.Impedance{R: 0, X: z.Boundary},
			gamma.Impedance{R: next, X: next},
			z.MinorStep, z.TicksPerMajor)

		// Around the centerline: R in (z, next], |X| in (0, z].
		arcs = sweepBlock(arcs, i,
			gamma.Impedance{R: z.Boundary, X: 0},
			gamma.Impedance{R: next, X: z.Boundary},
			z.MinorStep, centerlineTicksPerMajor(i, z.TicksPerMajor))
	}

	arcs = appendArcs(arcs, boundaryArcs()...)
	if spec.Sparse {
		arcs = appendArcs(arcs, sparsePatchArcs()...)
	}
	return arcs
}

// centerlineTicksPerMajor returns the ticks per major line for the block
// around the centerline. Zone 7 uses 3 whatever its table entry says; the
// other block of that zone keeps the table value.
func centerlineTicksPerMajor(zone, perMajor int) int {
	if zone == 7 {
		return 3
	}
	return perMajor
}

// sweepBlock adds the grid lines of the two blocks mirrored about the
// centerline between from and to. Lines are stepped from the lower bound;
// every perMajor-th line is bold.
func sweepBlock(arcs []Arc, zone int, from, to gamma.Impedance, step float64, perMajor int) []Arc {
	if step <= 0 {
		return arcs
	}
	weight := func(k int) Weight {
		if perMajor > 0 && k%perMajor == 0 {
			return Major
		}
		return Minor
	}

	for k := 1; ; k++ {
		r := from.R + float64(k)*step
		if r > to.R+step/2 {
			break
		}
		w := weight(k)
		arcs = appendArcs(arcs,
			resistanceArc(r, to.X, from.X, w, zone),
			resistanceArc(r, -from.X, -to.X, w, zone))
	}

	for k := 1; ; k++ {
		x := from.X + float64(k)*step
		if x > to.X+step/2 {
			break
		}
		w := weight(k)
		arcs = appendArcs(arcs,
			reactanceArc(x, from.R, to.R, w, zone),
			reactanceArc(-x, to.R, from.R, w, zone))
	}
	return arcs
}

// specialCaseArcs is the irregular R = X = 20 transition of the sparse
// table, matching the published admittance form. It replaces the sweep of
// the zone at index zone.
func specialCaseArcs(zone int) []Arc {
	return []Arc{
		resistanceArc(20, 50, 20, Major, zone),
		resistanceArc(20, -20, -50, Major, zone),
		reactanceArc(20, 20, 50, Major, zone),
		reactanceArc(-20, 50, 20, Major, zone),
	}
}

// boundaryArcs are the bold R = 50 and X = ±50 lines out to the chart edge.
func boundaryArcs() []Arc {
	return []Arc{
		resistanceArc(50, gamma.Infinity, 0, Major, -1),
		resistanceArc(50, 0, -gamma.Infinity, Major, -1),
		reactanceArc(50, 0, gamma.Infinity, Major, -1),
		reactanceArc(-50, gamma.Infinity, 0, Major, -1),
	}
}

// sparsePatchArcs closes the R = 10 and X = ±4 lines the sparse table
// leaves open.
func sparsePatchArcs() []Arc {
	return []Arc{
		resistanceArc(10, 10, 0, Major, -1),
		resistanceArc(10, 0, -10, Major, -1),
		reactanceArc(4, 4, 10, Major, -1),
		reactanceArc(-4, 10, 4, Major, -1),
	}
}
