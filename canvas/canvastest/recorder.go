// Package canvastest provides a recording Canvas for tests.
//
// Recorder implements canvas.Canvas without rasterising anything. It keeps
// the full drawing state (CTM stack, colour, line width, operator, font)
// and records every painted path and every text run, with coordinates
// transformed to device space, so tests can assert on geometry directly.
// Strokes at zero width are dropped, as canvas.GG drops them.
//
// Text metrics are synthetic and deterministic: every rune advances
// 0.6 × size, ink spans [0, 0.7 × size] above the baseline.
package canvastest

import (
	"math"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/smith/canvas"
)

// Synthetic font metrics, as fractions of the font size.
const (
	AdvanceRatio = 0.6
	HeightRatio  = 0.7
)

// SegmentKind identifies a path segment.
type SegmentKind int

// Segment kinds.
const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegCubicTo
	SegArc
	SegClose
)

// Arc is an arc segment in user space together with the CTM it was built
// under.
type Arc struct {
	Center   gg.Point
	Radius   float64
	Start    float64
	End      float64
	Negative bool
	Matrix   gg.Matrix
}

// DeviceCenter returns the arc center in device space.
func (a Arc) DeviceCenter() gg.Point {
	return a.Matrix.TransformPoint(a.Center)
}

// DeviceRadius returns the arc radius in device space, assuming the CTM
// scales uniformly.
func (a Arc) DeviceRadius() float64 {
	return a.Radius * math.Sqrt(math.Abs(a.Matrix.A*a.Matrix.E-a.Matrix.B*a.Matrix.D))
}

// Segment is one element of a recorded path. Points are in device space.
type Segment struct {
	Kind   SegmentKind
	Points []gg.Point
	Arc    Arc
}

// PaintKind distinguishes strokes from fills.
type PaintKind int

// Paint kinds.
const (
	Stroked PaintKind = iota
	Filled
)

// Paint is one Stroke or Fill of the current path.
type Paint struct {
	Kind      PaintKind
	Path      []Segment
	LineWidth float64
	Color     gg.RGBA
	Operator  canvas.Operator
	Matrix    gg.Matrix
}

// Text is one ShowText call.
type Text struct {
	S      string
	Origin gg.Point // device space
	Matrix gg.Matrix
	Family string
	Size   float64
	Color  gg.RGBA
}

type state struct {
	matrix    gg.Matrix
	color     gg.RGBA
	lineWidth float64
	op        canvas.Operator
	family    string
	size      float64
}

// Recorder is a canvas.Canvas that records instead of drawing.
type Recorder struct {
	Paints []Paint
	Texts  []Text

	// Depth is the current Push nesting.
	Depth int

	st    state
	stack []state
	path  []Segment
}

var _ canvas.Canvas = (*Recorder)(nil)

// New returns a Recorder with an identity transform.
func New() *Recorder {
	return &Recorder{st: state{matrix: gg.Identity(), color: gg.Black, lineWidth: 1, size: 10}}
}

func (r *Recorder) dev(x, y float64) gg.Point {
	return r.st.matrix.TransformPoint(gg.Pt(x, y))
}

// Push implements canvas.Canvas.
func (r *Recorder) Push() {
	r.stack = append(r.stack, r.st)
	r.Depth++
}

// Pop implements canvas.Canvas.
func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.st = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.Depth--
}

// Translate implements canvas.Canvas.
func (r *Recorder) Translate(x, y float64) {
	r.st.matrix = r.st.matrix.Multiply(gg.Translate(x, y))
}

// Scale implements canvas.Canvas.
func (r *Recorder) Scale(sx, sy float64) {
	r.st.matrix = r.st.matrix.Multiply(gg.Scale(sx, sy))
}

// Rotate implements canvas.Canvas.
func (r *Recorder) Rotate(angle float64) {
	r.st.matrix = r.st.matrix.Multiply(gg.Rotate(angle))
}

// Transform implements canvas.Canvas.
func (r *Recorder) Transform() gg.Matrix { return r.st.matrix }

// SetTransform implements canvas.Canvas.
func (r *Recorder) SetTransform(m gg.Matrix) { r.st.matrix = m }

// NewPath implements canvas.Canvas.
func (r *Recorder) NewPath() { r.path = nil }

// MoveTo implements canvas.Canvas.
func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, Segment{Kind: SegMoveTo, Points: []gg.Point{r.dev(x, y)}})
}

// LineTo implements canvas.Canvas.
func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, Segment{Kind: SegLineTo, Points: []gg.Point{r.dev(x, y)}})
}

// CubicTo implements canvas.Canvas.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.path = append(r.path, Segment{
		Kind:   SegCubicTo,
		Points: []gg.Point{r.dev(c1x, c1y), r.dev(c2x, c2y), r.dev(x, y)},
	})
}

// Arc implements canvas.Canvas.
func (r *Recorder) Arc(cx, cy, radius, angle1, angle2 float64) {
	r.arc(cx, cy, radius, angle1, angle2, false)
}

// ArcNegative implements canvas.Canvas.
func (r *Recorder) ArcNegative(cx, cy, radius, angle1, angle2 float64) {
	r.arc(cx, cy, radius, angle1, angle2, true)
}

func (r *Recorder) arc(cx, cy, radius, a1, a2 float64, negative bool) {
	r.path = append(r.path, Segment{
		Kind: SegArc,
		Arc: Arc{
			Center:   gg.Pt(cx, cy),
			Radius:   radius,
			Start:    a1,
			End:      a2,
			Negative: negative,
			Matrix:   r.st.matrix,
		},
		Points: []gg.Point{
			r.dev(cx+radius*math.Cos(a1), cy+radius*math.Sin(a1)),
			r.dev(cx+radius*math.Cos(a2), cy+radius*math.Sin(a2)),
		},
	})
}

// ClosePath implements canvas.Canvas.
func (r *Recorder) ClosePath() {
	r.path = append(r.path, Segment{Kind: SegClose})
}

// SetLineWidth implements canvas.Canvas.
func (r *Recorder) SetLineWidth(w float64) { r.st.lineWidth = w }

// SetColor implements canvas.Canvas.
func (r *Recorder) SetColor(c gg.RGBA) { r.st.color = c }

// SetOperator implements canvas.Canvas.
func (r *Recorder) SetOperator(op canvas.Operator) { r.st.op = op }

func (r *Recorder) paint(kind PaintKind) {
	path := make([]Segment, len(r.path))
	copy(path, r.path)
	r.Paints = append(r.Paints, Paint{
		Kind:      kind,
		Path:      path,
		LineWidth: r.st.lineWidth,
		Color:     r.st.color,
		Operator:  r.st.op,
		Matrix:    r.st.matrix,
	})
}

// Stroke implements canvas.Canvas.
func (r *Recorder) Stroke() {
	r.StrokePreserve()
	r.path = nil
}

// StrokePreserve implements canvas.Canvas. Like the gg adapter, it paints
// nothing when the line width is not positive.
func (r *Recorder) StrokePreserve() {
	if r.st.lineWidth <= 0 {
		return
	}
	r.paint(Stroked)
}

// Fill implements canvas.Canvas.
func (r *Recorder) Fill() {
	r.paint(Filled)
	r.path = nil
}

// SetFont implements canvas.Canvas.
func (r *Recorder) SetFont(family string, size float64) {
	r.st.family = family
	r.st.size = size
}

// TextExtents implements canvas.Canvas with synthetic metrics.
func (r *Recorder) TextExtents(s string) canvas.Extents {
	n := float64(utf8.RuneCountInString(s))
	if n == 0 {
		return canvas.Extents{}
	}
	w := n * AdvanceRatio * r.st.size
	return canvas.Extents{
		Width:    w,
		Height:   HeightRatio * r.st.size,
		XAdvance: w,
	}
}

// ShowText implements canvas.Canvas.
func (r *Recorder) ShowText(s string, x, y float64) {
	r.Texts = append(r.Texts, Text{
		S:      s,
		Origin: r.dev(x, y),
		Matrix: r.st.matrix,
		Family: r.st.family,
		Size:   r.st.size,
		Color:  r.st.color,
	})
	r.path = nil
}

// Strokes returns the recorded strokes painted with OpOver.
func (r *Recorder) Strokes() []Paint {
	var out []Paint
	for _, p := range r.Paints {
		if p.Kind == Stroked && p.Operator == canvas.OpOver {
			out = append(out, p)
		}
	}
	return out
}

// Clears returns the recorded paints made with OpClear.
func (r *Recorder) Clears() []Paint {
	var out []Paint
	for _, p := range r.Paints {
		if p.Operator == canvas.OpClear {
			out = append(out, p)
		}
	}
	return out
}

// TextsMatching returns the text runs whose string equals s.
func (r *Recorder) TextsMatching(s string) []Text {
	var out []Text
	for _, t := range r.Texts {
		if t.S == s {
			out = append(out, t)
		}
	}
	return out
}
