package smith

import "errors"

var (
	// ErrNilCanvas is returned when a render call is given no canvas.
	ErrNilCanvas = errors.New("smith: nil canvas")

	// ErrTooFewPoints is returned when a polyline or curve has fewer than
	// two points.
	ErrTooFewPoints = errors.New("smith: need at least two points")
)
