// Package smith draws Smith charts onto a 2D vector canvas.
//
// # Overview
//
// A Smith chart maps the right half of the normalized impedance plane,
// R + jX with R >= 0, onto the unit disk of the reflection coefficient
// Γ = (Z-1)/(Z+1). Constant-resistance lines become circles tangent at
// (1, 0); constant-reactance lines become arcs through the same point.
// smith renders the resistance/reactance grid, the optional mirrored
// conductance/susceptance grid, the value labels and captions, and the
// wavelength and coefficient rings of the classic printed form.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/smith"
//	    "github.com/gogpu/smith/canvas"
//	)
//
//	dc := gg.NewContext(1000, 1000)
//	cv := canvas.NewGG(dc, canvas.WithBackground(gg.White))
//
//	frame, err := smith.RenderChart(cv, 500, 500, 490, smith.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Overlays reuse the chart's transform.
//	z := smith.MapImpedanceToPlane(0.5, 0.8)
//	frame.RenderPoint(cv, z)
//	frame.RenderAnnotation(cv, "Z1", z, true)
//
//	dc.SavePNG("chart.png")
//
// # Configuration
//
// [DefaultConfig] returns the published-form defaults by value. Adjust
// fields directly, build one with [NewConfig] and functional options, or
// overlay a YAML theme with [DecodeTheme]. A Config is never written by
// the renderer; the transform of a render pass comes back in a [Frame].
//
// # Coordinate System
//
// Chart drawing happens in the unit frame: origin at the chart centre,
// radius 1, Y up. Overlay points are gamma-plane coordinates in the same
// frame; use [MapImpedanceToPlane] to convert from R and X.
//
// # Packages
//
//   - gamma: impedance to reflection coefficient mapping
//   - grid: zone tables, grid arc generation and drawing
//   - curve: smooth Bezier interpolation through points
//   - layout: labels, captions, curved text and the outer rings
//   - canvas: the drawing contract and its gg implementation
//
// # Logging
//
// smith is silent by default. See [SetLogger].
package smith
