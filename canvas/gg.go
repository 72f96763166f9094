package canvas

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// outlineSize is the ppem glyph outlines and advances are extracted at.
// Chart text is a fraction of a user unit, far below what 26.6 fixed point
// can represent, so glyphs are extracted here and scaled down.
const outlineSize = 256.0

// GGOption configures a GG adapter.
type GGOption func(*ggOptions)

type ggOptions struct {
	background gg.RGBA
	fonts      *Fonts
}

// WithBackground sets the colour painted by OpClear. gg has no clear
// operator for direct drawing, so clearing repaints the surface background.
// The default is opaque white.
func WithBackground(c gg.RGBA) GGOption {
	return func(o *ggOptions) {
		o.background = c
	}
}

// WithFonts sets the font resolver. The default is DefaultFonts().
func WithFonts(f *Fonts) GGOption {
	return func(o *ggOptions) {
		o.fonts = f
	}
}

// ggState is the part of the drawing state gg.Context.Push does not save.
type ggState struct {
	color     gg.RGBA
	lineWidth float64
	op        Operator
	family    string
	size      float64
}

// GG adapts a *gg.Context to the Canvas contract.
//
// Errors returned by gg's Stroke and Fill do not interrupt drawing; the
// first one is kept and reported by Err.
type GG struct {
	dc         *gg.Context
	background gg.RGBA
	fonts      *Fonts
	extractor  *text.OutlineExtractor

	state ggState
	stack []ggState

	hasPoint bool
	err      error
}

var _ Canvas = (*GG)(nil)

// NewGG wraps dc.
func NewGG(dc *gg.Context, opts ...GGOption) *GG {
	o := ggOptions{background: gg.White}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = DefaultFonts()
	}
	return &GG{
		dc:         dc,
		background: o.background,
		fonts:      o.fonts,
		extractor:  text.NewOutlineExtractor(),
		state: ggState{
			color:     gg.Black,
			lineWidth: 1,
			size:      10,
		},
	}
}

// Context returns the wrapped gg.Context.
func (c *GG) Context() *gg.Context { return c.dc }

// Err returns the first error reported by the gg backend, if any.
func (c *GG) Err() error { return c.err }

// ResetErr clears the recorded error.
func (c *GG) ResetErr() { c.err = nil }

func (c *GG) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
		Logger().Warn("canvas: gg paint failed", "err", err)
	}
}

// Push implements Canvas.
func (c *GG) Push() {
	c.dc.Push()
	c.stack = append(c.stack, c.state)
}

// Pop implements Canvas.
func (c *GG) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate implements Canvas.
func (c *GG) Translate(x, y float64) { c.dc.Translate(x, y) }

// Scale implements Canvas.
func (c *GG) Scale(sx, sy float64) { c.dc.Scale(sx, sy) }

// Rotate implements Canvas.
func (c *GG) Rotate(angle float64) { c.dc.Rotate(angle) }

// Transform implements Canvas.
func (c *GG) Transform() gg.Matrix { return c.dc.GetTransform() }

// SetTransform implements Canvas.
func (c *GG) SetTransform(m gg.Matrix) { c.dc.SetTransform(m) }

// NewPath implements Canvas.
func (c *GG) NewPath() {
	c.dc.ClearPath()
	c.hasPoint = false
}

// MoveTo implements Canvas.
func (c *GG) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
	c.hasPoint = true
}

// LineTo implements Canvas.
func (c *GG) LineTo(x, y float64) {
	if !c.hasPoint {
		c.MoveTo(x, y)
		return
	}
	c.dc.LineTo(x, y)
}

// CubicTo implements Canvas.
func (c *GG) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.hasPoint {
		c.MoveTo(c1x, c1y)
	}
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Arc implements Canvas. The sweep runs counter-clockwise in user space
// (increasing angle); angle2 is advanced by 2π until it is >= angle1.
func (c *GG) Arc(cx, cy, r, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	c.arc(cx, cy, r, angle1, angle2)
}

// ArcNegative implements Canvas. The sweep runs with decreasing angle.
func (c *GG) ArcNegative(cx, cy, r, angle1, angle2 float64) {
	for angle2 > angle1 {
		angle2 -= 2 * math.Pi
	}
	c.arc(cx, cy, r, angle1, angle2)
}

func (c *GG) arc(cx, cy, r, a1, a2 float64) {
	sx, sy := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	if c.hasPoint {
		c.dc.LineTo(sx, sy)
	} else {
		c.MoveTo(sx, sy)
	}
	for _, s := range arcSegments(cx, cy, r, a1, a2) {
		c.dc.CubicTo(s[0], s[1], s[2], s[3], s[4], s[5])
	}
}

// ClosePath implements Canvas.
func (c *GG) ClosePath() { c.dc.ClosePath() }

// SetLineWidth implements Canvas.
func (c *GG) SetLineWidth(w float64) { c.state.lineWidth = w }

// SetColor implements Canvas.
func (c *GG) SetColor(col gg.RGBA) { c.state.color = col }

// SetOperator implements Canvas.
func (c *GG) SetOperator(op Operator) { c.state.op = op }

func (c *GG) applyPaint() {
	col := c.state.color
	if c.state.op == OpClear {
		col = c.background
	}
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(c.state.lineWidth)
}

// Stroke implements Canvas. A zero line width strokes nothing.
func (c *GG) Stroke() {
	c.StrokePreserve()
	c.NewPath()
}

// StrokePreserve implements Canvas.
func (c *GG) StrokePreserve() {
	if c.state.lineWidth <= 0 {
		return
	}
	c.applyPaint()
	c.keep(c.dc.StrokePreserve())
}

// Fill implements Canvas.
func (c *GG) Fill() {
	c.applyPaint()
	c.keep(c.dc.Fill())
	c.hasPoint = false
}

// SetFont implements Canvas. size is in user units.
func (c *GG) SetFont(family string, size float64) {
	c.state.family = family
	c.state.size = size
}

func (c *GG) face() (text.Face, *text.FontSource) {
	src := c.fonts.Source(c.state.family)
	return src.Face(outlineSize, text.WithHinting(text.HintingNone)), src
}

// TextExtents implements Canvas.
func (c *GG) TextExtents(s string) Extents {
	face, src := c.face()
	k := c.state.size / outlineSize

	var (
		pen                    float64
		minX, minY, maxX, maxY = math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	)
	parsed := src.Parsed()
	for _, r := range s {
		gid := text.GlyphID(parsed.GlyphIndex(r))
		o, err := c.extractor.ExtractOutline(parsed, gid, outlineSize)
		if err == nil && !o.IsEmpty() {
			// Outlines are Y-down; extents are Y-up.
			minX = math.Min(minX, pen+o.Bounds.MinX)
			maxX = math.Max(maxX, pen+o.Bounds.MaxX)
			minY = math.Min(minY, -o.Bounds.MaxY)
			maxY = math.Max(maxY, -o.Bounds.MinY)
		}
		pen += face.Advance(string(r))
	}
	ext := Extents{XAdvance: pen * k}
	if minX <= maxX {
		ext.XBearing = minX * k
		ext.YBearing = minY * k
		ext.Width = (maxX - minX) * k
		ext.Height = (maxY - minY) * k
	}
	return ext
}

// ShowText implements Canvas. Glyphs are filled as outlines through the
// CTM, so text rotates and scales with the chart.
func (c *GG) ShowText(s string, x, y float64) {
	face, src := c.face()
	parsed := src.Parsed()
	k := c.state.size / outlineSize

	c.NewPath()
	pen := x
	for _, r := range s {
		gid := text.GlyphID(parsed.GlyphIndex(r))
		o, err := c.extractor.ExtractOutline(parsed, gid, outlineSize)
		if err == nil {
			c.appendOutline(o, pen, y, k)
		}
		pen += face.Advance(string(r)) * k
	}
	if c.hasPoint {
		c.Fill()
	}
	c.NewPath()
}

func (c *GG) appendOutline(o *text.GlyphOutline, x, y, k float64) {
	pt := func(p text.OutlinePoint) (float64, float64) {
		return x + float64(p.X)*k, y - float64(p.Y)*k
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if c.hasPoint {
				c.dc.ClosePath()
			}
			c.MoveTo(pt(seg.Points[0]))
		case text.OutlineOpLineTo:
			c.dc.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			c.dc.QuadraticTo(cx, cy, px, py)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			c.dc.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if len(o.Segments) > 0 {
		c.dc.ClosePath()
	}
}
