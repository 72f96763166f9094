package smith

import "github.com/gogpu/gg"

// Option configures a Config built by NewConfig.
//
// Example:
//
//	// Admittance and impedance grids together, without rings
//	cfg := smith.NewConfig(
//	    smith.WithConductanceGrid(true),
//	    smith.WithRings(false),
//	)
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithResistanceGrid shows or hides the resistance/reactance grid.
func WithResistanceGrid(on bool) Option {
	return func(c *Config) {
		c.Flags.ShowResistance = on
	}
}

// WithConductanceGrid shows or hides the conductance/susceptance grid.
func WithConductanceGrid(on bool) Option {
	return func(c *Config) {
		c.Flags.ShowConductance = on
	}
}

// WithLabels shows or hides the numeric value labels.
func WithLabels(on bool) Option {
	return func(c *Config) {
		c.Flags.ShowLabels = on
	}
}

// WithStrings shows or hides the descriptive captions.
func WithStrings(on bool) Option {
	return func(c *Config) {
		c.Flags.ShowStrings = on
	}
}

// WithRings shows or hides the wavelength and coefficient rings. With
// rings off the unit circle fills the requested radius.
func WithRings(on bool) Option {
	return func(c *Config) {
		c.Flags.DrawRings = on
	}
}

// WithSparseConductance selects the reduced-density conductance grid.
func WithSparseConductance(on bool) Option {
	return func(c *Config) {
		c.Flags.SparseConductance = on
	}
}

// WithLineWidth sets the overlay line width in percent of the radius.
func WithLineWidth(pct float64) Option {
	return func(c *Config) {
		c.LineWidth = pct
	}
}

// WithPointWidth sets the overlay point radius in percent of the radius.
func WithPointWidth(pct float64) Option {
	return func(c *Config) {
		c.PointWidth = pct
	}
}

// WithAnnotationFont sets the annotation font family and size. A zero
// size selects twice the label size.
//
// Example:
//
//	cfg := smith.NewConfig(smith.WithAnnotationFont("DejaVu Sans", 3))
func WithAnnotationFont(family string, sizePct float64) Option {
	return func(c *Config) {
		c.AnnotationFont = family
		c.AnnotationFontSize = sizePct
	}
}

// WithColors replaces the palette.
func WithColors(colors Colors) Option {
	return func(c *Config) {
		c.Colors = colors
	}
}

// WithLineColor sets the overlay line and point colour.
func WithLineColor(col gg.RGBA) Option {
	return func(c *Config) {
		c.Colors.Line = col
	}
}
