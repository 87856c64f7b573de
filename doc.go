// Package gradient resolves declarative, CSS-like gradient descriptions
// into concrete physical geometry and color-stop sequences.
//
// # Overview
//
// UI elements describe gradients declaratively: a linear gradient has an
// angle and a list of color stops, a radial gradient has a responsive
// center position and an end shape, a conic gradient sweeps color stops
// around a center. Stop positions and lengths may be absolute pixels,
// percentages, viewport units, or left automatic.
//
// Resolution turns such a description, together with the element's
// physical size, the viewport size and the device scale factor, into a
// [Resolved] value: explicit start/end/center geometry and a monotonic,
// fully explicit stop sequence that a rasterizer can interpolate
// directly.
//
// # Quick Start
//
//	import "github.com/gogpu/gradient"
//
//	g := gradient.LinearGradient{
//	    Angle: gradient.ToRight,
//	    Stops: []gradient.ColorStop{
//	        gradient.Stop(gradient.Red, gradient.Percent(0)),
//	        gradient.AutoStop(gradient.Blue),
//	    },
//	}
//
//	// Resolve against a 200x100 element on a 800x600 viewport at 2x scale.
//	r := g.Resolve(2, gradient.Pt(200, 100), gradient.Pt(800, 600))
//
//	// Bake a 256-entry ramp for a 1D texture.
//	ramp := r.Ramp(256, gradient.SampleOptions{})
//
// # Coordinate conventions
//
// Positions are relative to the element's geometric center, y-down.
// Anchor components span [-0.5, 0.5] from the negative to the positive
// edge. Linear gradient angles are radians, 0 pointing up, increasing
// clockwise. Conic stop angles are radians from 12 o'clock over a full
// turn.
//
// # Purity
//
// Every resolver is a pure, total function of its arguments: missing
// length information degrades to a zero contribution and malformed stop
// order is corrected deterministically, never signaled. The only package
// state is the swappable diagnostics logger, see [SetLogger].
package gradient
