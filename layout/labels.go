package layout

import (
	"math"

	"github.com/gogpu/smith/canvas"
	"github.com/gogpu/smith/gamma"
	"github.com/gogpu/smith/grid"
)

// ValueLabels writes the numeric grid labels: each non-zero label along
// the outer circle at +X and -X and along the centerline at R, plus the
// labels 0.2 to 1.0 on the X = ±1 arcs and the R = 1 circle.
func ValueLabels(cv canvas.Canvas, st Style) {
	st.apply(cv)
	labels := grid.Labels()

	for i := 1; i < len(labels) && labels[i].Text != ""; i++ {
		l := labels[i]

		cv.Push()
		cv.Rotate(gamma.ToGamma(gamma.Impedance{X: l.Value}).Angle())
		RightJustified(cv, l.Text, 1-LabelMargin, LabelMargin)
		cv.Pop()

		cv.Push()
		cv.Rotate(gamma.ToGamma(gamma.Impedance{X: -l.Value}).Angle() + math.Pi)
		LeftJustified(cv, l.Text, -1+LabelMargin, LabelMargin)
		cv.Pop()

		p := gamma.ToGamma(gamma.Impedance{R: l.Value})
		cv.Push()
		cv.Rotate(halfPi)
		LeftJustified(cv, l.Text, LabelMargin, -p.U+LabelMargin)
		cv.Pop()
	}

	for i := 2; i <= 10 && i < len(labels); i += 2 {
		l := labels[i]
		arcLabel(cv, l.Text, gamma.Impedance{R: l.Value, X: 1}, true)
		arcLabel(cv, l.Text, gamma.Impedance{R: l.Value, X: -1}, false)
		circleLabel(cv, l.Text, gamma.Impedance{R: 1, X: l.Value}, false)
		circleLabel(cv, l.Text, gamma.Impedance{R: 1, X: -l.Value}, true)
	}
}

// arcLabel writes an R value where it crosses a reactance arc, aligned
// with the arc.
func arcLabel(cv canvas.Canvas, s string, z gamma.Impedance, upper bool) {
	p := gamma.ToGamma(z)
	cv.Push()
	cv.Translate(p.U, p.V)
	if upper {
		cv.Rotate(gamma.AngleFromReactanceCenter(z) + math.Pi)
		LeftJustified(cv, s, LabelMargin, LabelMargin)
	} else {
		cv.Rotate(gamma.AngleFromReactanceCenter(z))
		RightJustified(cv, s, -LabelMargin, LabelMargin)
	}
	cv.Pop()
}

// circleLabel writes an X value where it crosses a resistance circle,
// aligned with the circle. flip turns the text by π.
func circleLabel(cv canvas.Canvas, s string, z gamma.Impedance, flip bool) {
	p := gamma.ToGamma(z)
	cv.Push()
	cv.Translate(p.U, p.V)
	if flip {
		cv.Rotate(gamma.AngleFromResistanceCenter(z) + math.Pi)
		LeftJustified(cv, s, LabelMargin, LabelMargin)
	} else {
		cv.Rotate(gamma.AngleFromResistanceCenter(z))
		RightJustified(cv, s, -LabelMargin, LabelMargin)
	}
	cv.Pop()
}
