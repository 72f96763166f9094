package smith

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/smith/canvas"
	"github.com/gogpu/smith/curve"
	"github.com/gogpu/smith/gamma"
	"github.com/gogpu/smith/layout"
)

// Frame is the result of a chart render: the transform from the gamma
// plane to the canvas, and the configuration overlays are drawn with.
//
// Overlay methods draw under the frame's transform regardless of the
// canvas's current one, and leave the canvas state as they found it. Like
// RenderChart, they return the first error an error-collecting canvas
// raised during the call.
type Frame struct {
	Transform gg.Matrix
	Config    Config
}

// NewFrame returns a frame for drawing overlays under m without rendering
// a chart, for hosts that draw the chart themselves or keep the transform
// between passes.
func NewFrame(cfg Config, m gg.Matrix) Frame {
	return Frame{Transform: m, Config: cfg}
}

// begin enters the frame's coordinate system with the overlay pen.
func (f Frame) begin(cv canvas.Canvas) {
	beginPass(cv)
	cv.Push()
	cv.SetTransform(f.Transform)
	cv.SetOperator(canvas.OpOver)
	cv.SetLineWidth(f.Config.LineWidth / 100)
	cv.SetColor(f.Config.Colors.Line)
	cv.NewPath()
}

// end leaves the frame's coordinate system and reports the call's error.
func (f Frame) end(cv canvas.Canvas) error {
	cv.Pop()
	return passErr(cv)
}

// RenderLine draws a straight line between two gamma-plane points.
func (f Frame) RenderLine(cv canvas.Canvas, from, to gamma.Point) error {
	return f.RenderPolyline(cv, []gamma.Point{from, to})
}

// RenderPolyline draws straight lines through points in order.
func (f Frame) RenderPolyline(cv canvas.Canvas, points []gamma.Point) error {
	if !usable(cv) {
		return ErrNilCanvas
	}
	if len(points) < 2 {
		return ErrTooFewPoints
	}

	f.begin(cv)
	cv.MoveTo(points[0].U, points[0].V)
	for _, p := range points[1:] {
		cv.LineTo(p.U, p.V)
	}
	cv.Stroke()
	return f.end(cv)
}

// RenderSmoothCurve draws a Bezier curve through points in order, with
// the default curviness. Two points give a straight line.
func (f Frame) RenderSmoothCurve(cv canvas.Canvas, points []gamma.Point) error {
	if !usable(cv) {
		return ErrNilCanvas
	}
	segs, err := curve.Interpolate(points, curve.DefaultCurviness)
	if err != nil {
		return ErrTooFewPoints
	}

	f.begin(cv)
	cv.MoveTo(points[0].U, points[0].V)
	for _, s := range segs {
		cv.CubicTo(s.C1.U, s.C1.V, s.C2.U, s.C2.V, s.To.U, s.To.V)
	}
	cv.Stroke()
	return f.end(cv)
}

// RenderPoint draws a filled dot at p.
func (f Frame) RenderPoint(cv canvas.Canvas, p gamma.Point) error {
	if !usable(cv) {
		return ErrNilCanvas
	}

	f.begin(cv)
	cv.SetLineWidth(0)
	cv.Arc(p.U, p.V, f.Config.PointWidth/100, 0, 2*math.Pi)
	cv.Fill()
	return f.end(cv)
}

// RenderAnnotation writes s beside p, starting just right of it when left
// is true and ending just left of it otherwise. The box behind the text is
// cleared.
func (f Frame) RenderAnnotation(cv canvas.Canvas, s string, p gamma.Point, left bool) error {
	if !usable(cv) {
		return ErrNilCanvas
	}

	family := f.Config.AnnotationFont
	if family == "" {
		family = layout.DefaultFontFamily
	}
	size := 2 * layout.LabelFontSize
	if f.Config.AnnotationFontSize != 0 {
		size = f.Config.AnnotationFontSize / 100
	}

	beginPass(cv)
	cv.Push()
	cv.SetTransform(f.Transform)
	cv.SetOperator(canvas.OpOver)
	cv.SetLineWidth(0)
	cv.SetColor(f.Config.Colors.Annotation)
	cv.SetFont(family, size)
	if left {
		layout.LeftJustified(cv, s, p.U+size*0.5, p.V-size*0.3)
	} else {
		layout.RightJustified(cv, s, p.U-size*0.5, p.V-size*0.3)
	}
	return f.end(cv)
}
