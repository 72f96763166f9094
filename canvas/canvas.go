// Package canvas defines the drawing-context contract the Smith chart engine
// renders through, and an adapter that satisfies it with a gg.Context.
//
// # Contract
//
// A Canvas is an immediate-mode 2D vector surface with cairo-like
// semantics:
//
//   - Paths are built in user space and transformed by the current
//     transformation matrix (CTM) as they are built.
//   - Arc and ArcNegative connect the current point (if any) to the start
//     of the arc with a straight segment.
//   - Push saves the CTM together with colour, line width, operator and
//     font; Pop restores all of them.
//   - Stroke and Fill consume the current path; the Preserve variants keep
//     it for a following operation.
//   - Line widths are in user units and scale with the CTM.
//   - Text is laid out with glyph ascent along +y of user space. The chart
//     draws in a Y-up frame, so text renders upright there.
//   - Text is unhinted: it scales proportionally with the CTM.
//
// # Operators
//
// OpClear punches through previously painted content; the chart uses it to
// blank label backgrounds before painting glyphs over the grid.
package canvas

import (
	"github.com/gogpu/gg"
)

// Operator selects the compositing mode for Stroke and Fill.
type Operator int

const (
	// OpOver paints the source over the destination.
	OpOver Operator = iota

	// OpClear clears the destination where the source would paint.
	OpClear
)

// String returns the operator name.
func (op Operator) String() string {
	switch op {
	case OpOver:
		return "Over"
	case OpClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Extents describes the ink and advance of a string in user space, with the
// Y axis pointing up. YBearing is the lowest ink coordinate relative to the
// baseline (negative for descenders).
type Extents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
}

// Canvas is the drawing context the chart renders onto.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(angle float64)
	Transform() gg.Matrix
	SetTransform(m gg.Matrix)

	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Arc(cx, cy, r, angle1, angle2 float64)
	ArcNegative(cx, cy, r, angle1, angle2 float64)
	ClosePath()

	SetLineWidth(w float64)
	SetColor(c gg.RGBA)
	SetOperator(op Operator)
	Stroke()
	StrokePreserve()
	Fill()

	SetFont(family string, size float64)
	TextExtents(s string) Extents
	ShowText(s string, x, y float64)
}
