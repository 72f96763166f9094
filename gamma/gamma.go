// Package gamma converts between normalized impedance and the reflection
// coefficient (gamma) plane of a Smith chart.
//
// The mapping is the bilinear transform
//
//	Γ = (Z - 1) / (Z + 1)
//
// which carries the right half of the normalized impedance plane onto the
// unit disk. Constant resistance and constant reactance lines become
// circles; the helpers in this package return their centers and radii and
// the angles needed to bound arc sweeps between two grid lines.
//
// All functions are pure and safe for concurrent use.
package gamma

import "math"

// Infinity is the finite surrogate used for "infinite" resistance or
// reactance bounds when sweeping arcs out to the chart boundary.
const Infinity = 10000.0

// Impedance is a normalized impedance R + jX (or admittance G + jB).
// R < 0 maps to points outside the unit circle; such values are accepted
// and represent active, unrealizable loads.
type Impedance struct {
	R, X float64
}

// Point is a Cartesian coordinate on the gamma plane.
type Point struct {
	U, V float64
}

// Pt is shorthand for Point{U: u, V: v}.
func Pt(u, v float64) Point {
	return Point{U: u, V: v}
}

// Abs returns |Γ|, the reflection coefficient magnitude.
func (p Point) Abs() float64 {
	return math.Hypot(p.U, p.V)
}

// Angle returns the reflection coefficient angle in radians, in (-π, π].
func (p Point) Angle() float64 {
	return math.Atan2(p.V, p.U)
}

// ToGamma maps a normalized impedance onto the gamma plane.
//
// Numerator and denominator are multiplied by the conjugate of (Z + 1) so
// the division is real valued:
//
//	D = R² + X² + 2R + 1
//	U = (R² + X² - 1) / D
//	V = 2X / D
//
// D is zero only for Z = -1, where the result is not finite.
func ToGamma(z Impedance) Point {
	magSq := z.R*z.R + z.X*z.X
	d := magSq + 2*z.R + 1
	return Point{
		U: (magSq - 1) / d,
		V: 2 * z.X / d,
	}
}

// ToImpedance is the inverse of ToGamma: Z = (1 + Γ) / (1 - Γ).
// Γ = 1 (the open circuit point) returns R = +Inf, X = 0.
func ToImpedance(p Point) Impedance {
	d := (1-p.U)*(1-p.U) + p.V*p.V
	if d == 0 {
		return Impedance{R: math.Inf(1)}
	}
	return Impedance{
		R: (1 - p.U*p.U - p.V*p.V) / d,
		X: 2 * p.V / d,
	}
}

// ToAdmittanceGamma maps a normalized admittance G + jB onto the gamma
// plane. The admittance chart is the impedance chart rotated by π, so this
// is ToGamma with both coordinates negated.
func ToAdmittanceGamma(y Impedance) Point {
	p := ToGamma(y)
	return Point{U: -p.U, V: -p.V}
}

// ResistanceCircle returns the center and radius of the constant R circle.
func ResistanceCircle(r float64) (center Point, radius float64) {
	return Point{U: r / (r + 1), V: 0}, 1 / (r + 1)
}

// ReactanceCircle returns the center and radius of the constant X circle.
// All reactance circles are centered on the U = 1 line.
func ReactanceCircle(x float64) (center Point, radius float64) {
	center = Point{U: 1, V: 1 / x}
	return center, math.Abs(center.V)
}

// AngleFromResistanceCenter returns the angle of the line from the center
// of the R = z.R circle to the mapped point z.
func AngleFromResistanceCenter(z Impedance) float64 {
	p := ToGamma(z)
	return math.Atan2(p.V, p.U-z.R/(z.R+1))
}

// AngleFromReactanceCenter returns the angle of the line from the center
// of the X = z.X circle to the mapped point z.
func AngleFromReactanceCenter(z Impedance) float64 {
	p := ToGamma(z)
	return math.Atan2(p.V-1/z.X, p.U-1)
}
