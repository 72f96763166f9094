// Package layout places the text, rings and arrows of a Smith chart.
//
// Every function draws in the chart's unit frame: origin at the chart
// centre, radius 1, Y up. Callers set colour and any extra rotation
// before calling; functions that change other state restore it.
package layout

import (
	"github.com/gogpu/smith/canvas"
)

// DefaultFontFamily is the label font of the published chart forms.
const DefaultFontFamily = "Nimbus Sans"

// LabelFontSize is the grid and ring label size, in chart radii.
const LabelFontSize = 1.0 / 55

// LabelMargin is the gap between a label and the line it annotates.
const LabelMargin = LabelFontSize / 4

// pct converts a percentage of the chart radius to chart radii.
func pct(p float64) float64 { return p / 100 }

// Style is the text style shared by label and ring layout.
type Style struct {
	// FontFamily is the label font. Empty selects the canvas fallback.
	FontFamily string
}

// DefaultStyle returns the style of the published chart forms.
func DefaultStyle() Style {
	return Style{FontFamily: DefaultFontFamily}
}

// apply selects the label font at LabelFontSize.
func (s Style) apply(cv canvas.Canvas) {
	cv.SetFont(s.FontFamily, LabelFontSize)
}

// clearRect punches a rectangle out of what has been drawn so far.
func clearRect(cv canvas.Canvas, x, y, w, h float64) {
	cv.Push()
	cv.SetOperator(canvas.OpClear)
	cv.NewPath()
	cv.MoveTo(x, y)
	cv.LineTo(x+w, y)
	cv.LineTo(x+w, y+h)
	cv.LineTo(x, y+h)
	cv.ClosePath()
	cv.StrokePreserve()
	cv.Fill()
	cv.Pop()
}

// LeftJustified shows s starting at (x, y) after clearing the box its ink
// covers.
func LeftJustified(cv canvas.Canvas, s string, x, y float64) {
	ext := cv.TextExtents(s)
	clearRect(cv, x, y, ext.Width+ext.XBearing, ext.Height+ext.YBearing)
	cv.ShowText(s, x, y)
}

// RightJustified shows s ending at (x, y) after clearing the box its ink
// covers.
func RightJustified(cv canvas.Canvas, s string, x, y float64) {
	ext := cv.TextExtents(s)
	w := ext.Width + ext.XBearing
	clearRect(cv, x-w, y, w, ext.Height+ext.YBearing)
	cv.ShowText(s, x-ext.XAdvance, y)
}

// Centered shows s centred on x with its baseline at y. The background is
// not cleared.
func Centered(cv canvas.Canvas, s string, x, y float64) {
	cv.ShowText(s, x-cv.TextExtents(s).XAdvance/2, y)
}

// NormalToRadial centres s across the radial at angle, dist from the
// origin, so the radial meets the baseline like the stem of a T.
func NormalToRadial(cv canvas.Canvas, angle, dist float64, s string) {
	cv.Push()
	cv.Rotate(angle)
	cv.Translate(dist, 0)
	cv.Rotate(-halfPi)
	Centered(cv, s, 0, 0)
	cv.Pop()
}
