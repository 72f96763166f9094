package canvas

import (
	"math"

	"github.com/gogpu/gg"
)

// arcSegments approximates the arc from a1 to a2 (either direction) with
// the cubic Bezier segments gg.Path.Arc emits, at most π/2 each. Each entry
// holds the two control points and the end point: c1x, c1y, c2x, c2y, x, y.
//
// gg.Path.Arc only sweeps counter-clockwise, so a negative sweep is built
// forwards from a2 and walked back.
func arcSegments(cx, cy, r, a1, a2 float64) [][6]float64 {
	if a1 == a2 || r == 0 {
		return nil
	}
	lo, hi := a1, a2
	if a2 < a1 {
		lo, hi = a2, a1
	}

	p := gg.NewPath()
	p.Arc(cx, cy, r, lo, hi)
	var segs [][6]float64
	p.Iterate(func(verb gg.PathVerb, coords []float64) {
		if verb == gg.CubicTo {
			var s [6]float64
			copy(s[:], coords)
			segs = append(segs, s)
		}
	})

	if a2 < a1 {
		segs = reverseCubics(segs, cx+r*math.Cos(lo), cy+r*math.Sin(lo))
	}
	return segs
}

// reverseCubics returns the chain of segments starting at (x0, y0) walked
// from its end back to (x0, y0).
func reverseCubics(segs [][6]float64, x0, y0 float64) [][6]float64 {
	out := make([][6]float64, len(segs))
	for i, s := range segs {
		px, py := x0, y0
		if i > 0 {
			px, py = segs[i-1][4], segs[i-1][5]
		}
		out[len(segs)-1-i] = [6]float64{s[2], s[3], s[0], s[1], px, py}
	}
	return out
}
