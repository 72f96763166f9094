package smith

import (
	"math"
	"reflect"

	"github.com/gogpu/gg"
	"github.com/gogpu/smith/canvas"
	"github.com/gogpu/smith/gamma"
	"github.com/gogpu/smith/grid"
	"github.com/gogpu/smith/layout"
)

// errReporter is implemented by canvases that collect drawing errors,
// such as canvas.GG. Render calls clear it first, so an error returned
// belongs to that call.
type errReporter interface {
	Err() error
	ResetErr()
}

// usable reports whether cv can be drawn on. A nil pointer held in the
// interface counts as no canvas.
func usable(cv canvas.Canvas) bool {
	if cv == nil {
		return false
	}
	v := reflect.ValueOf(cv)
	return v.Kind() != reflect.Pointer || !v.IsNil()
}

// beginPass clears any error an earlier call left on cv.
func beginPass(cv canvas.Canvas) {
	if r, ok := cv.(errReporter); ok {
		r.ResetErr()
	}
}

// passErr returns the first error cv collected since beginPass.
func passErr(cv canvas.Canvas) error {
	if r, ok := cv.(errReporter); ok {
		return r.Err()
	}
	return nil
}

// MapImpedanceToPlane returns the gamma-plane point of the normalized
// impedance r + jx.
func MapImpedanceToPlane(r, x float64) gamma.Point {
	return gamma.ToGamma(gamma.Impedance{R: r, X: x})
}

// RenderChart draws a Smith chart centred on (cx, cy) whose outermost
// circle has the given radius, in the canvas's current user space.
//
// Parts are drawn in a fixed order: the conductance grid, the resistance
// grid, their text in the same order, then the rings. Text clears the grid
// behind it, and the resistance grid lands on top of the conductance grid
// along the shared centerline.
//
// The returned Frame carries the chart transform for overlays. If cv
// collects drawing errors, any left from earlier calls are cleared and the
// first one raised by this chart is returned after it has been drawn in
// full.
func RenderChart(cv canvas.Canvas, cx, cy, radius float64, cfg Config) (Frame, error) {
	if !usable(cv) {
		return Frame{}, ErrNilCanvas
	}
	log := Logger()
	beginPass(cv)

	if cfg.Flags.DrawRings {
		radius /= layout.OuterBoundaryWithRing
	}
	log.Debug("smith: render chart",
		"cx", cx, "cy", cy, "radius", radius, "flags", cfg.Flags)

	st := layout.DefaultStyle()

	cv.Push()
	cv.Translate(cx, cy)
	cv.Scale(radius, -radius)
	cv.SetFont(st.FontFamily, layout.LabelFontSize)

	if cfg.Flags.ShowConductance {
		spec := grid.Standard()
		if cfg.Flags.SparseConductance {
			spec = grid.SparseSpec()
		}
		conductanceGrid(cv, spec, cfg.Colors.ConductanceGrid)
	}
	if cfg.Flags.ShowResistance {
		resistanceGrid(cv, grid.Standard(), cfg.Colors.ResistanceGrid)
	}
	if cfg.Flags.ShowResistance {
		resistanceText(cv, st, cfg)
	}
	if cfg.Flags.ShowConductance {
		conductanceText(cv, st, cfg)
	}

	if cfg.Flags.DrawRings {
		cv.SetColor(cfg.Colors.Ring)
		layout.WavelengthRing(cv, st)
		layout.AngleRing(cv, st)
	}

	frame := NewFrame(cfg, cv.Transform())
	cv.Pop()

	if err := passErr(cv); err != nil {
		log.Warn("smith: chart drawn with errors", "err", err)
		return frame, err
	}
	return frame, nil
}

func resistanceGrid(cv canvas.Canvas, spec grid.Spec, col gg.RGBA) {
	arcs := grid.Generate(spec)
	Logger().Debug("smith: resistance grid", "arcs", len(arcs))

	cv.Push()
	cv.SetColor(col)
	grid.Draw(cv, arcs)
	cv.Pop()
}

// conductanceGrid draws the admittance grid, which is the impedance grid
// turned by π.
func conductanceGrid(cv canvas.Canvas, spec grid.Spec, col gg.RGBA) {
	arcs := grid.Generate(spec)
	Logger().Debug("smith: conductance grid", "arcs", len(arcs), "sparse", spec.Sparse)

	cv.Push()
	cv.SetColor(col)
	cv.Rotate(math.Pi)
	grid.Draw(cv, arcs)
	cv.Pop()
}

func resistanceText(cv canvas.Canvas, st layout.Style, cfg Config) {
	cv.Push()
	cv.SetColor(cfg.Colors.ResistanceText)
	cv.SetLineWidth(0)
	if cfg.Flags.ShowLabels {
		layout.ValueLabels(cv, st)
	}
	if cfg.Flags.ShowStrings {
		layout.ResistanceCaptions(cv, cfg.Flags.ShowConductance)
	}
	cv.Pop()
}

// conductanceText labels the admittance grid in its rotated frame; the
// captions read in the unrotated one.
func conductanceText(cv canvas.Canvas, st layout.Style, cfg Config) {
	cv.Push()
	cv.Rotate(math.Pi)
	cv.SetColor(cfg.Colors.ConductanceText)
	cv.SetLineWidth(0)
	if cfg.Flags.ShowLabels {
		layout.ValueLabels(cv, st)
	}
	if cfg.Flags.ShowStrings {
		cv.Rotate(-math.Pi)
		layout.ConductanceCaptions(cv, cfg.Flags.ShowResistance)
	}
	cv.Pop()
}
