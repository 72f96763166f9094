package layout

import (
	"math"

	"github.com/gogpu/smith/canvas"
)

// Caption placement.
const (
	CaptionRadius = 0.94
	CaptionAngle  = 141.7 // degrees

	// CaptionAngleShift moves the susceptance captions clear of the
	// reactance ones when both grids show.
	CaptionAngleShift = 27.0
)

// Caption strings.
const (
	InductiveReactance    = "INDUCTIVE REACTANCE COMPONENT (+jX/Zo)"
	CapacitiveReactance   = "CAPACITIVE REACTANCE COMPONENT (-jX/Zo)"
	ResistanceComponent   = "RESISTANCE COMPONENT (R/Zo)"
	CapacitiveSusceptance = "CAPACITIVE SUSCEPTANCE COMPONENT (+jX/Yo)"
	InductiveSusceptance  = "INDUCTIVE SUSCEPTANCE COMPONENT (-jB/Yo)"
	ConductanceComponent  = "CONDUCTANCE COMPONENT (G/Yo)"
)

func radians(deg float64) float64 { return deg / 180 * math.Pi }

// ResistanceCaptions writes the impedance grid descriptions: reactance
// captions curved along the upper and lower edge, the resistance caption
// under the centerline. withConductance drops the latter one line to
// leave room for the conductance caption.
func ResistanceCaptions(cv canvas.Canvas, withConductance bool) {
	vpos := -(LabelFontSize + pct(0.8))
	if withConductance {
		vpos -= LabelFontSize + pct(0.4)
	}
	CurvedText(cv, InductiveReactance, CaptionRadius, radians(CaptionAngle))
	CurvedText(cv, CapacitiveReactance, CaptionRadius, radians(-CaptionAngle))
	LeftJustified(cv, ResistanceComponent, pct(-32.5), vpos)
}

// ConductanceCaptions writes the admittance grid descriptions in the
// unrotated chart frame. withResistance moves them clear of the
// impedance captions.
func ConductanceCaptions(cv canvas.Canvas, withResistance bool) {
	angle := CaptionAngle
	vpos := pct(0.8)
	if withResistance {
		angle -= CaptionAngleShift
		vpos += LabelFontSize + pct(0.4)
	}
	CurvedText(cv, CapacitiveSusceptance, CaptionRadius, radians(angle))
	CurvedText(cv, InductiveSusceptance, CaptionRadius, radians(-angle))
	LeftJustified(cv, ConductanceComponent, pct(-32.5), vpos+pct(0.8))
}
