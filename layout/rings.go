package layout

import (
	"fmt"
	"math"

	"github.com/gogpu/smith/canvas"
)

// Ring geometry, in chart radii.
const (
	WaveRingRadius  = 1.115
	AngleRingRadius = 1.038

	// AngleRingWidth separates the two circles of the coefficient ring.
	AngleRingWidth = 0.035

	// OuterBoundaryWithRing is the radius of the outermost circle when
	// the rings are drawn.
	OuterBoundaryWithRing = WaveRingRadius + (WaveRingRadius-AngleRingRadius)/2
)

// Wavelength ring scale.
const (
	WaveTickCount = 250
	waveTickStep  = math.Pi / 125
	waveLabelFrom = 16 // labels start above this tick
	waveLabelStep = 5
)

// Ring captions.
const (
	TowardGenerator        = "WAVELENGTHS TOWARD GENERATOR"
	TowardLoad             = "WAVELENGTHS TOWARD LOAD"
	ReflectionAngleCaption = "ANGLE OF REFLECTION COEFFICIENT IN DEGREES"
	TransmissionCaption    = "ANGLE OF TRANSMISSION COEFFICIENT IN DEGREES"
)

const minorWidth = 1.0 / 1500

// WaveTick is one tick of the wavelength ring.
type WaveTick struct {
	Index int

	// Angle is the rotation of the tick, measured from the -U axis
	// (zero wavelengths) counter-clockwise.
	Angle float64

	// Label is the wavelength text, or empty for unlabelled ticks.
	Label string
}

// WavelengthTicks returns the 250 ticks of the wavelength ring. Half a
// wavelength is one turn; every fifth tick past the first few is labelled
// with its wavelength, the last one wrapping to 0.00.
func WavelengthTicks() []WaveTick {
	ticks := make([]WaveTick, 0, WaveTickCount)
	for ix := 1; ix <= WaveTickCount; ix++ {
		t := WaveTick{Index: ix, Angle: float64(ix) * waveTickStep}
		if ix%waveLabelStep == 0 && ix > waveLabelFrom {
			v := float64(ix) / 500
			if ix == WaveTickCount {
				v = 0
			}
			t.Label = fmt.Sprintf("%.2f", v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// WavelengthRing draws the wavelength scale: ring, ticks, labels toward
// the generator (outside) and toward the load (inside), captions and
// direction arrows, then the outer boundary circle.
func WavelengthRing(cv canvas.Canvas, st Style) {
	cv.Push()
	cv.SetLineWidth(minorWidth)
	st.apply(cv)

	cv.NewPath()
	cv.Arc(0, 0, WaveRingRadius, 0, 2*math.Pi)
	cv.Stroke()

	for _, t := range WavelengthTicks() {
		cv.Push()
		cv.Rotate(t.Angle)
		cv.MoveTo(-(WaveRingRadius + pct(0.8)), 0)
		cv.LineTo(-(WaveRingRadius - pct(0.8)), 0)
		cv.Stroke()
		cv.Pop()

		if t.Label == "" {
			continue
		}
		cv.Push()
		cv.Rotate(t.Angle)
		cv.Translate(-(WaveRingRadius - pct(1.25) - LabelFontSize), 0)
		cv.Rotate(halfPi)
		Centered(cv, t.Label, 0, 0)
		cv.Pop()

		cv.Push()
		cv.Rotate(-t.Angle)
		cv.Translate(-(WaveRingRadius + pct(1.5)), 0)
		cv.Rotate(halfPi)
		Centered(cv, t.Label, 0, 0)
		cv.Pop()
	}

	CurvedText(cv, TowardGenerator, WaveRingRadius+pct(1.25), radians(165.6))
	CurvedText(cv, TowardLoad, WaveRingRadius-pct(3), radians(-165.5))

	CurvedArrow(cv, WaveRingRadius+pct(2), radians(178.2), radians(174.9))
	CurvedArrow(cv, WaveRingRadius+pct(2), radians(156.3), radians(153.0))
	CurvedArrow(cv, WaveRingRadius-pct(2.1), radians(-176.8), radians(-173.6))
	CurvedArrow(cv, WaveRingRadius-pct(2.1), radians(-157.5), radians(-154.2))

	cv.NewPath()
	cv.SetLineWidth(minorWidth)
	cv.Arc(0, 0, OuterBoundaryWithRing, 0, 2*math.Pi)
	cv.Stroke()
	cv.Pop()
}

// FindTCRadial returns the distance from the chart's left edge point
// (-unitRadius, 0) to the circle of radius coeffRadius about the origin,
// along the ray leaving that point at angleDegrees above the U axis.
//
// With a the ray angle, the law of sines in the triangle formed with the
// origin gives the angle at the crossing point, asin(sin(a)·unit/coeff),
// and then the side opposite the origin angle.
func FindTCRadial(angleDegrees, unitRadius, coeffRadius float64) float64 {
	a := radians(angleDegrees)
	inter := math.Sin(a) * unitRadius / coeffRadius
	inter = math.Atan2(inter/math.Sqrt(1-inter*inter), 1)
	return math.Sin(math.Pi-a-inter) * coeffRadius / math.Sin(a)
}

// CoefficientTick is one tick of the transmission coefficient scale, on
// rays from (-1, 0).
type CoefficientTick struct {
	Degrees int

	// Radial is the distance from (-1, 0) to the coefficient ring.
	Radial float64

	// Length is how far the tick reaches inward.
	Length float64

	// Labeled reports whether the tick carries its angle.
	Labeled bool
}

// CoefficientTicks returns the transmission coefficient ticks for 90
// down to 1 degrees. Ticks past 55 degrees are longer; every fifth
// degree from 10 up is labelled.
func CoefficientTicks() []CoefficientTick {
	ticks := make([]CoefficientTick, 0, 90)
	for deg := 90; deg >= 1; deg-- {
		length := pct(1.5)
		if deg > 55 {
			length = pct(2)
		}
		ticks = append(ticks, CoefficientTick{
			Degrees: deg,
			Radial:  FindTCRadial(float64(deg), 1, AngleRingRadius),
			Length:  length,
			Labeled: deg >= 10 && deg%5 == 0,
		})
	}
	return ticks
}

// coefficientLabelOffsets returns the baseline offsets of a coefficient
// label relative to its tick. Labels drift further from the tick as the
// angle grows past 45 degrees.
func coefficientLabelOffsets(deg int) (upperX, upperY, lowerX, lowerY float64) {
	d := float64(deg)
	upperX = -LabelFontSize * d / 90
	upperY = -LabelFontSize * d / 90
	lowerY = -LabelFontSize * d / 90
	if deg <= 45 {
		upperY = -LabelFontSize * 0.33
		lowerY = -LabelFontSize * 0.5
	}
	lowerX = LabelFontSize / 2
	if deg < 45 {
		lowerX = LabelFontSize / 3
	}
	return upperX, upperY, lowerX, lowerY
}

// AngleRing draws the coefficient ring: the two circles, 2° reflection
// ticks with labels every 10°, and the transmission scale seen from
// (-1, 0), then the two ring captions.
func AngleRing(cv canvas.Canvas, st Style) {
	cv.Push()
	cv.SetLineWidth(minorWidth)
	st.apply(cv)

	cv.NewPath()
	cv.Arc(0, 0, AngleRingRadius, 0, 2*math.Pi)
	cv.Arc(0, 0, AngleRingRadius+AngleRingWidth, 0, 2*math.Pi)
	cv.Stroke()

	cv.Push()
	for deg := 0; deg <= 178; deg += 2 {
		cv.MoveTo(-AngleRingRadius, 0)
		cv.LineTo(-AngleRingRadius-pct(1.5), 0)
		cv.Stroke()
		cv.MoveTo(AngleRingRadius, 0)
		cv.LineTo(AngleRingRadius+pct(1.5), 0)
		cv.Stroke()
		cv.Rotate(radians(2))
	}
	cv.Pop()

	labelDist := AngleRingRadius + pct(1)
	for deg := 20; deg <= 170; deg += 10 {
		NormalToRadial(cv, radians(float64(deg)), labelDist, fmt.Sprint(deg))
		NormalToRadial(cv, radians(float64(-deg)), labelDist, fmt.Sprint(-deg))
	}
	NormalToRadial(cv, math.Pi, labelDist, "±180")

	cv.Push()
	cv.Translate(-1, 0)
	for _, t := range CoefficientTicks() {
		a := radians(float64(t.Degrees))
		ux, uy, lx, ly := coefficientLabelOffsets(t.Degrees)

		cv.Push()
		cv.Rotate(a)
		cv.MoveTo(t.Radial, 0)
		cv.LineTo(t.Radial-t.Length, 0)
		cv.Stroke()
		if t.Labeled {
			s := fmt.Sprint(t.Degrees)
			x := t.Radial - pct(0.85) - cv.TextExtents(s).XAdvance + ux
			cv.ShowText(s, x, uy)
		}
		cv.Pop()

		cv.Push()
		cv.Rotate(math.Pi - a)
		cv.MoveTo(-t.Radial, 0)
		cv.LineTo(-t.Radial+t.Length, 0)
		cv.Stroke()
		if t.Labeled {
			cv.ShowText(fmt.Sprint(-t.Degrees), -t.Radial+lx, ly)
		}
		cv.Pop()
	}
	cv.Pop()

	CurvedText(cv, ReflectionAngleCaption, AngleRingRadius+pct(1), 0)
	CurvedText(cv, TransmissionCaption, AngleRingRadius-pct(2.7), 0)
	cv.Pop()
}
