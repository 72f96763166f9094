package layout

import (
	"math"

	"github.com/gogpu/smith/canvas"
	"golang.org/x/text/unicode/norm"
)

const halfPi = math.Pi / 2

// CurvedText writes s clockwise along the circle of the given radius about
// the origin, centred on angle, with glyph tops facing outward. The
// annular wedge behind the text is cleared first.
func CurvedText(cv canvas.Canvas, s string, radius, angle float64) {
	s = norm.NFC.String(s)
	ext := cv.TextExtents(s)
	sweep := ext.XAdvance / radius

	cv.Push()
	cv.NewPath()
	cv.SetLineWidth(0)
	cv.SetOperator(canvas.OpClear)

	// Rotate so the wedge runs from angle 0 to sweep.
	cv.Rotate(angle - sweep/2)
	cv.ArcNegative(0, 0, radius+ext.YBearing, sweep, 0)
	cv.LineTo(radius+ext.YBearing+ext.Height, 0)
	cv.Arc(0, 0, radius+ext.Height, 0, sweep)
	cv.ClosePath()
	cv.StrokePreserve()
	cv.Fill()
	cv.SetOperator(canvas.OpOver)

	// +y now points at the start of the text.
	cv.Rotate(sweep - halfPi)
	for _, r := range s {
		ch := string(r)
		half := cv.TextExtents(ch).XAdvance / 2
		cv.Rotate(-half / radius)
		cv.ShowText(ch, -half, radius)
		cv.Rotate(-half / radius)
	}
	cv.Pop()
}

// CurvedArrow draws an arc about the origin from start to stop with an
// arrowhead at stop. The arc runs clockwise when start > stop.
func CurvedArrow(cv canvas.Canvas, radius, start, stop float64) {
	cw := start > stop

	cv.Push()
	cv.NewPath()
	cv.SetLineWidth(pct(0.2))
	if cw {
		cv.ArcNegative(0, 0, radius, start, stop)
	} else {
		cv.Arc(0, 0, radius, start, stop)
	}
	cv.Stroke()

	cv.Rotate(stop)
	cv.SetLineWidth(0)
	cv.NewPath()
	x, y := radius, 0.0
	cv.MoveTo(x, y)
	for _, d := range arrowHead(cw) {
		x, y = x+d[0], y+d[1]
		cv.LineTo(x, y)
	}
	cv.ClosePath()
	cv.Fill()
	cv.Pop()
}

// arrowHead returns the relative moves tracing the head from its base on
// the arc.
func arrowHead(cw bool) [3][2]float64 {
	s := 1.0
	if !cw {
		s = -1
	}
	return [3][2]float64{
		{pct(0.7), s * pct(2)},
		{pct(-0.7), s * pct(-0.8)},
		{pct(-0.7), s * pct(0.8)},
	}
}
