package grid

import (
	"math"

	"github.com/gogpu/smith/canvas"
)

// Centre dot radii, in chart radii.
const (
	DotOuterRadius = 1.0 / 150
	DotInnerRadius = 1.0 / 800
)

// Draw strokes arcs in the current colour, then the centerline, the unit
// circle and the centre dot. The canvas must already be in the unit
// gamma frame.
func Draw(cv canvas.Canvas, arcs []Arc) {
	for _, a := range arcs {
		cv.SetLineWidth(a.Weight.Width())
		cv.Arc(a.Center.U, a.Center.V, a.Radius, a.Start, a.End)
		cv.Stroke()
	}

	cv.SetLineWidth(Major.Width())
	cv.NewPath()
	cv.MoveTo(-1, 0)
	cv.LineTo(1, 0)
	cv.Stroke()
	cv.Arc(0, 0, 1, 0, 2*math.Pi)
	cv.Stroke()

	drawCentreDot(cv)
}

// drawCentreDot punches out the lines crossing the origin and marks it with
// two thin rings.
func drawCentreDot(cv canvas.Canvas) {
	cv.NewPath()
	cv.SetOperator(canvas.OpClear)
	cv.Arc(0, 0, DotOuterRadius, 0, 2*math.Pi)
	cv.Fill()
	cv.SetOperator(canvas.OpOver)

	cv.SetLineWidth(Thin.Width())
	cv.Arc(0, 0, DotOuterRadius, 0, 2*math.Pi)
	cv.Stroke()
	cv.Arc(0, 0, DotInnerRadius, 0, 2*math.Pi)
	cv.Stroke()
}
