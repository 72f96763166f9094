// Package grid generates the arc geometry of a Smith chart grid.
//
// A grid family (resistance/reactance, or conductance/susceptance drawn
// under a rotation by π) is described by a list of density zones. Each zone
// sets the spacing of the fine grid lines and how many fine lines make up
// one bold line. Generate turns a zone list into the arcs to stroke, all in
// the unit-circle gamma plane; Draw strokes them onto a canvas.
//
// A few arcs are fixed geometric patches reproducing the published chart
// forms the tables follow. They live in their own functions and are not
// derived from the zone sweep.
package grid

// Zone tick counts with special meaning.
const (
	// End marks the terminal zone. Its Boundary closes the previous zone.
	End = -1

	// SpecialCase marks a zone drawn by a fixed patch instead of a sweep.
	SpecialCase = 0
)

// Zone is one density region of the grid.
type Zone struct {
	// Boundary is the R (and X) value where the zone starts.
	Boundary float64

	// MinorStep is the spacing between fine grid lines.
	MinorStep float64

	// TicksPerMajor is the number of fine steps per bold line, or End or
	// SpecialCase.
	TicksPerMajor int
}

// Spec is a zone list together with the patches that go with it.
type Spec struct {
	Zones []Zone

	// Sparse adds the R=10 / X=±4 patch arcs that fit the sparse table.
	Sparse bool
}

// Standard returns the full density grid.
func Standard() Spec {
	return Spec{Zones: []Zone{
		{0.0, 0.01, 5},
		{0.2, 0.02, 5},
		{0.5, 0.05, 2},
		{1.0, 0.10, 2},
		{2.0, 0.20, 5},
		{5.0, 1.00, 5},
		{10.0, 2.00, 5},
		{20.0, 10.00, 5},
		{50.0, 0, End},
	}}
}

// SparseSpec returns the reduced grid drawn when both grid families are
// overlaid.
func SparseSpec() Spec {
	return Spec{
		Zones: []Zone{
			{0, 0.1, 5},
			{1, 0.2, 5},
			{2, 0.5, 2},
			{4, 1.0, 6},
			{10, 5.0, 2},
			{20, 30.0, SpecialCase},
			{50, 0, End},
		},
		Sparse: true,
	}
}

// Label is a numeric grid label.
type Label struct {
	Value float64
	Text  string
}

// Labels returns the value labels shared by both grid families. The list
// ends with a Label whose Text is empty.
func Labels() []Label {
	return []Label{
		{0.0, "0"}, {0.1, "0.1"}, {0.2, "0.2"}, {0.3, "0.3"}, {0.4, "0.4"},
		{0.5, "0.5"}, {0.6, "0.6"}, {0.7, "0.7"}, {0.8, "0.8"}, {0.9, "0.9"},
		{1.0, "1.0"}, {1.2, "1.2"}, {1.4, "1.4"}, {1.6, "1.6"}, {1.8, "1.8"},
		{2.0, "2.0"}, {3.0, "3.0"}, {4.0, "4.0"}, {5.0, "5.0"},
		{10.0, "10"}, {20.0, "20"}, {50.0, "50"},
		{},
	}
}
