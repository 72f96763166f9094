package smith

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/smith/canvas"
	"github.com/gogpu/smith/canvas/canvastest"
	"github.com/gogpu/smith/gamma"
	"github.com/gogpu/smith/layout"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/floats/scalar"
)

const devTol = 1e-6

func newRecorder() *canvastest.Recorder {
	return canvastest.New()
}

// findLine returns the first stroke that is a single straight segment
// between a and b in device space, in either direction.
func findLine(r *canvastest.Recorder, a, b gg.Point) (canvastest.Paint, bool) {
	near := func(p, q gg.Point) bool {
		return scalar.EqualWithinAbs(p.X, q.X, devTol) && scalar.EqualWithinAbs(p.Y, q.Y, devTol)
	}
	for _, p := range r.Strokes() {
		if len(p.Path) != 2 || p.Path[0].Kind != canvastest.SegMoveTo || p.Path[1].Kind != canvastest.SegLineTo {
			continue
		}
		from, to := p.Path[0].Points[0], p.Path[1].Points[0]
		if near(from, a) && near(to, b) || near(from, b) && near(to, a) {
			return p, true
		}
	}
	return canvastest.Paint{}, false
}

// circleRadii returns the device radii of every full circle stroked about
// the device point c.
func circleRadii(r *canvastest.Recorder, c gg.Point) []float64 {
	var out []float64
	for _, p := range r.Strokes() {
		for _, s := range p.Path {
			if s.Kind != canvastest.SegArc {
				continue
			}
			if math.Abs(s.Arc.End-s.Arc.Start) < 2*math.Pi-1e-9 {
				continue
			}
			dc := s.Arc.DeviceCenter()
			if scalar.EqualWithinAbs(dc.X, c.X, devTol) && scalar.EqualWithinAbs(dc.Y, c.Y, devTol) {
				out = append(out, s.Arc.DeviceRadius())
			}
		}
	}
	return out
}

func hasRadius(radii []float64, want float64) bool {
	for _, r := range radii {
		if scalar.EqualWithinAbs(r, want, devTol) {
			return true
		}
	}
	return false
}

func TestMapImpedanceToPlane(t *testing.T) {
	tests := []struct {
		r, x float64
		want gamma.Point
	}{
		{0, 0, gamma.Pt(-1, 0)},
		{1, 0, gamma.Pt(0, 0)},
		{0, 1, gamma.Pt(0, 1)},
		{1, 1, gamma.Pt(0.2, 0.4)},
	}
	for _, tt := range tests {
		got := MapImpedanceToPlane(tt.r, tt.x)
		if !scalar.EqualWithinAbs(got.U, tt.want.U, 1e-12) || !scalar.EqualWithinAbs(got.V, tt.want.V, 1e-12) {
			t.Errorf("MapImpedanceToPlane(%v, %v) = %v, want %v", tt.r, tt.x, got, tt.want)
		}
	}
	if p := MapImpedanceToPlane(gamma.Infinity, 3); p.U < 0.9998 {
		t.Errorf("large R maps to %v, want near (1, 0)", p)
	}
}

func TestRenderChartNilCanvas(t *testing.T) {
	if _, err := RenderChart(nil, 0, 0, 1, DefaultConfig()); !errors.Is(err, ErrNilCanvas) {
		t.Errorf("RenderChart(nil) error = %v, want ErrNilCanvas", err)
	}
}

func TestRenderChartNilPointerCanvas(t *testing.T) {
	var cv *canvas.GG
	if _, err := RenderChart(cv, 0, 0, 1, DefaultConfig()); !errors.Is(err, ErrNilCanvas) {
		t.Errorf("RenderChart((*canvas.GG)(nil)) error = %v, want ErrNilCanvas", err)
	}
}

// faultyCanvas is a Recorder that collects errors the way canvas.GG does,
// raising fault on every stroke and fill.
type faultyCanvas struct {
	*canvastest.Recorder
	fault error
	err   error
}

func (c *faultyCanvas) raise() {
	if c.err == nil {
		c.err = c.fault
	}
}

func (c *faultyCanvas) Stroke() {
	c.Recorder.Stroke()
	c.raise()
}

func (c *faultyCanvas) Fill() {
	c.Recorder.Fill()
	c.raise()
}

func (c *faultyCanvas) Err() error { return c.err }
func (c *faultyCanvas) ResetErr()  { c.err = nil }

func TestRenderChartCanvasErrors(t *testing.T) {
	errPaint := errors.New("paint failed")
	errStale := errors.New("stale")
	tests := []struct {
		name    string
		cv      *faultyCanvas
		wantErr error
	}{
		{"clean", &faultyCanvas{Recorder: newRecorder()}, nil},
		{"stale error cleared", &faultyCanvas{Recorder: newRecorder(), err: errStale}, nil},
		{"paint error", &faultyCanvas{Recorder: newRecorder(), fault: errPaint}, errPaint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderChart(tt.cv, 250, 250, 240, DefaultConfig())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RenderChart() error = %v, want %v", err, tt.wantErr)
			}
			if len(tt.cv.Paints) == 0 {
				t.Error("chart not drawn")
			}
		})
	}
}

func TestRenderChartWithRings(t *testing.T) {
	r := newRecorder()
	frame, err := RenderChart(r, 500, 500, 490, DefaultConfig())
	if err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}
	if r.Depth != 0 {
		t.Errorf("unbalanced Push, depth %d", r.Depth)
	}
	if r.Transform() != gg.Identity() {
		t.Error("caller transform not restored")
	}

	unit := 490 / layout.OuterBoundaryWithRing
	centre := gg.Pt(500, 500)
	radii := circleRadii(r, centre)

	if !hasRadius(radii, unit) {
		t.Errorf("no unit circle of radius %v among %v", unit, radii)
	}
	if !hasRadius(radii, 490) {
		t.Error("outer boundary does not fill the requested radius")
	}
	if _, ok := findLine(r, gg.Pt(500-unit, 500), gg.Pt(500+unit, 500)); !ok {
		t.Error("no centerline across the unit circle")
	}

	inner := layout.AngleRingRadius * unit
	outer := (layout.AngleRingRadius + layout.AngleRingWidth) * unit
	wave := layout.WaveRingRadius * unit
	if !hasRadius(radii, inner) || !hasRadius(radii, outer) || !hasRadius(radii, wave) {
		t.Fatalf("ring circles missing from %v", radii)
	}
	if !(unit < inner && outer < wave) {
		t.Errorf("coefficient ring [%v, %v] not between unit circle %v and wavelength ring %v",
			inner, outer, unit, wave)
	}

	// The frame maps the gamma plane onto the same circle.
	if got := frame.Transform.TransformPoint(gg.Pt(1, 0)); !scalar.EqualWithinAbs(got.X, 500+unit, devTol) {
		t.Errorf("frame maps (1, 0) to %v", got)
	}
	if got := frame.Transform.TransformPoint(gg.Pt(0, 1)); !scalar.EqualWithinAbs(got.Y, 500-unit, devTol) {
		t.Errorf("frame maps (0, 1) to %v, want Y up", got)
	}
	if frame.Config != DefaultConfig() {
		t.Error("frame does not carry the render configuration")
	}
}

func TestRenderChartWithoutRings(t *testing.T) {
	r := newRecorder()
	if _, err := RenderChart(r, 500, 500, 490, NewConfig(WithRings(false))); err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}

	if _, ok := findLine(r, gg.Pt(10, 500), gg.Pt(990, 500)); !ok {
		t.Error("no centerline from (10, 500) to (990, 500)")
	}
	radii := circleRadii(r, gg.Pt(500, 500))
	if !hasRadius(radii, 490) {
		t.Errorf("no unit circle of radius 490 among %v", radii)
	}
	if hasRadius(radii, 490*layout.WaveRingRadius) {
		t.Error("wavelength ring drawn with rings off")
	}
	if len(r.TextsMatching("0.50")) != 0 {
		t.Error("wavelength labels drawn with rings off")
	}
}

func TestRenderChartLayerOrder(t *testing.T) {
	cfg := NewConfig(WithConductanceGrid(true))
	r := newRecorder()
	if _, err := RenderChart(r, 0, 0, 100, cfg); err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}

	first := func(col gg.RGBA) int {
		for i, p := range r.Paints {
			if p.Color == col && p.Operator == canvas.OpOver {
				return i
			}
		}
		return -1
	}
	gb, rx := first(cfg.Colors.ConductanceGrid), first(cfg.Colors.ResistanceGrid)
	if gb < 0 || rx < 0 {
		t.Fatalf("grid strokes missing: conductance %d, resistance %d", gb, rx)
	}
	if gb > rx {
		t.Error("conductance grid drawn after the resistance grid")
	}

	firstText := func(col gg.RGBA) int {
		for i, tx := range r.Texts {
			if tx.Color == col {
				return i
			}
		}
		return -1
	}
	rxText, gbText := firstText(cfg.Colors.ResistanceText), firstText(cfg.Colors.ConductanceText)
	if rxText < 0 || gbText < 0 {
		t.Fatalf("text missing: resistance %d, conductance %d", rxText, gbText)
	}
	// ConductanceText and ConductanceGrid share a colour by default, so
	// order by text runs.
	if rxText > gbText {
		t.Error("conductance text drawn before resistance text")
	}
	if len(r.TextsMatching(layout.ConductanceComponent)) != 1 || len(r.TextsMatching(layout.ResistanceComponent)) != 1 {
		t.Error("component captions missing")
	}
}

func TestRenderChartConductanceMirrored(t *testing.T) {
	cfg := NewConfig(WithResistanceGrid(false), WithConductanceGrid(true), WithRings(false), WithSparseConductance(false))
	r := newRecorder()
	if _, err := RenderChart(r, 0, 0, 1, cfg); err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}

	// The R = 1 circle of the admittance grid is centred at (-0.5, 0).
	found := false
	for _, p := range r.Strokes() {
		for _, s := range p.Path {
			if s.Kind != canvastest.SegArc {
				continue
			}
			c := s.Arc.DeviceCenter()
			if scalar.EqualWithinAbs(c.X, -0.5, 1e-9) && scalar.EqualWithinAbs(c.Y, 0, 1e-9) &&
				scalar.EqualWithinAbs(s.Arc.DeviceRadius(), 0.5, 1e-9) {
				found = true
			}
		}
	}
	if !found {
		t.Error("no G = 1 circle about (-0.5, 0)")
	}
	if len(r.TextsMatching(layout.ResistanceComponent)) != 0 {
		t.Error("resistance caption drawn with the resistance grid hidden")
	}
}

func TestRenderChartFlags(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		label   bool
		caption bool
	}{
		{"all", nil, true, true},
		{"no labels", []Option{WithLabels(false)}, false, true},
		{"no strings", []Option{WithStrings(false)}, true, false},
		{"neither", []Option{WithLabels(false), WithStrings(false)}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(append(tt.opts, WithRings(false))...)
			r := newRecorder()
			if _, err := RenderChart(r, 0, 0, 1, cfg); err != nil {
				t.Fatalf("RenderChart() error = %v", err)
			}
			if got := len(r.TextsMatching("0.5")) > 0; got != tt.label {
				t.Errorf("value labels drawn = %v, want %v", got, tt.label)
			}
			if got := len(r.TextsMatching(layout.ResistanceComponent)) > 0; got != tt.caption {
				t.Errorf("captions drawn = %v, want %v", got, tt.caption)
			}
		})
	}
}

func TestRenderChartEmpty(t *testing.T) {
	cfg := NewConfig(WithResistanceGrid(false), WithRings(false))
	r := newRecorder()
	frame, err := RenderChart(r, 10, 20, 5, cfg)
	if err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}
	if len(r.Paints) != 0 || len(r.Texts) != 0 {
		t.Errorf("drew %d paints and %d texts with everything off", len(r.Paints), len(r.Texts))
	}
	if got := frame.Transform.TransformPoint(gg.Pt(1, 1)); got != gg.Pt(15, 15) {
		t.Errorf("frame maps (1, 1) to %v, want (15, 15)", got)
	}
}

func testFonts(t *testing.T) *canvas.Fonts {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	f := canvas.NewFonts()
	f.Register(layout.DefaultFontFamily, src)
	return f
}

func TestRenderChartOnGG(t *testing.T) {
	dc := gg.NewContext(400, 400)
	dc.ClearWithColor(gg.White)
	cv := canvas.NewGG(dc, canvas.WithFonts(testFonts(t)))

	frame, err := RenderChart(cv, 200, 200, 190, DefaultConfig())
	if err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}

	// The unit circle crosses the centerline at the left edge.
	unit := 190 / layout.OuterBoundaryWithRing
	left := frame.Transform.TransformPoint(gg.Pt(-1, 0))
	if !scalar.EqualWithinAbs(left.X, 200-unit, devTol) {
		t.Errorf("frame maps (-1, 0) to %v", left)
	}
	inked := false
	x0 := int(math.Round(left.X))
	for x := x0 - 1; x <= x0+1; x++ {
		for y := 199; y <= 201; y++ {
			r, g, b, _ := dc.Image().At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				inked = true
			}
		}
	}
	if !inked {
		t.Error("nothing drawn where the unit circle meets the centerline")
	}
	if err := frame.RenderPoint(cv, MapImpedanceToPlane(1, 1)); err != nil {
		t.Errorf("RenderPoint() error = %v", err)
	}
}
