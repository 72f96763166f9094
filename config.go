package smith

import (
	"github.com/gogpu/gg"
)

// Flags selects which parts of the chart are drawn.
type Flags struct {
	// ShowResistance draws the resistance/reactance grid and its text.
	ShowResistance bool

	// ShowConductance draws the conductance/susceptance grid, mirrored by π.
	ShowConductance bool

	// ShowLabels draws the numeric value labels.
	ShowLabels bool

	// ShowStrings draws the descriptive captions.
	ShowStrings bool

	// DrawRings draws the wavelength and coefficient rings.
	DrawRings bool

	// SparseConductance uses the reduced-density conductance grid, as on
	// forms that overlay both grids.
	SparseConductance bool
}

// Colors holds the chart palette.
type Colors struct {
	ResistanceGrid  gg.RGBA
	ConductanceGrid gg.RGBA
	ResistanceText  gg.RGBA
	ConductanceText gg.RGBA
	Ring            gg.RGBA
	Line            gg.RGBA
	Annotation      gg.RGBA
}

// Config describes how a chart and its overlays are drawn. It is an input
// only; the renderer never modifies it.
type Config struct {
	Flags Flags

	// LineWidth is the overlay line width, in percent of the chart radius.
	LineWidth float64

	// PointWidth is the overlay point radius, in percent of the chart radius.
	PointWidth float64

	Colors Colors

	// AnnotationFont is the annotation font family. Empty selects the
	// label font.
	AnnotationFont string

	// AnnotationFontSize is the annotation size in percent of the chart
	// radius. Zero selects twice the label size.
	AnnotationFontSize float64
}

// DefaultConfig returns the configuration of the published impedance
// chart form: resistance grid with labels, captions and rings.
func DefaultConfig() Config {
	return Config{
		Flags: Flags{
			ShowResistance:    true,
			ShowConductance:   false,
			ShowLabels:        true,
			ShowStrings:       true,
			DrawRings:         true,
			SparseConductance: true,
		},
		LineWidth:  0.25,
		PointWidth: 0.6,
		Colors: Colors{
			ResistanceGrid:  gg.RGBA{R: 0.7, G: 0, B: 0, A: 1},
			ConductanceGrid: gg.RGBA{R: 0, G: 0.5, B: 0.5, A: 1},
			ResistanceText:  gg.RGBA{R: 0.5, G: 0, B: 0, A: 1},
			ConductanceText: gg.RGBA{R: 0, G: 0.5, B: 0.5, A: 1},
			Ring:            gg.Black,
			Line:            gg.RGBA{R: 0, G: 0, B: 0.5, A: 1},
			Annotation:      gg.RGBA{R: 0, G: 0.5, B: 0, A: 1},
		},
	}
}
