package gradient

import "math"

// Gradient is one of the three gradient variants: [LinearGradient],
// [RadialGradient] or [ConicGradient]. The variant set is closed.
type Gradient interface {
	// IsEmpty reports whether the gradient has no stops.
	IsEmpty() bool
	// Single returns the sole color of a single-stop gradient, the
	// degenerate solid-fill case. ok is false unless the gradient has
	// exactly one stop.
	Single() (color RGBA, ok bool)
	// Resolve converts the gradient into physical geometry and a fully
	// explicit stop sequence. scaleFactor is the device pixel ratio,
	// size the element's physical size and target the physical target
	// (viewport) size.
	Resolve(scaleFactor float64, size, target Point) Resolved

	gradientMarker()
}

// Named linear gradient direction angles, in radians. An angle of 0
// points upward; angles increase clockwise.
const (
	// ToTop transitions from bottom to top.
	ToTop = 0.0
	// ToTopRight transitions from bottom-left to top-right.
	ToTopRight = Tau / 8
	// ToRight transitions from left to right.
	ToRight = 2 * ToTopRight
	// ToBottomRight transitions from top-left to bottom-right.
	ToBottomRight = 3 * ToTopRight
	// ToBottom transitions from top to bottom.
	ToBottom = 4 * ToTopRight
	// ToBottomLeft transitions from top-right to bottom-left.
	ToBottomLeft = 5 * ToTopRight
	// ToLeft transitions from right to left.
	ToLeft = 6 * ToTopRight
	// ToTopLeft transitions from bottom-right to top-left.
	ToTopLeft = 7 * ToTopRight
)

// LinearGradient is a linear color transition across an element.
//
// https://developer.mozilla.org/en-US/docs/Web/CSS/gradient/linear-gradient
type LinearGradient struct {
	// Angle is the direction of the gradient in radians. An angle of 0
	// points upward, angles increase clockwise.
	Angle float64
	// Stops is the list of color stops.
	Stops []ColorStop
}

// Linear creates a linear gradient with the given angle in radians.
func Linear(angle float64, stops ...ColorStop) LinearGradient {
	return LinearGradient{Angle: angle, Stops: stops}
}

// Degrees creates a linear gradient with the given angle in degrees.
func Degrees(degrees float64, stops ...ColorStop) LinearGradient {
	return LinearGradient{Angle: degrees * math.Pi / 180, Stops: stops}
}

func (LinearGradient) gradientMarker() {}

// IsEmpty reports whether the gradient has no stops.
func (g LinearGradient) IsEmpty() bool { return len(g.Stops) == 0 }

// Single returns the sole color of a single-stop gradient.
func (g LinearGradient) Single() (RGBA, bool) {
	if len(g.Stops) != 1 {
		return RGBA{}, false
	}
	return g.Stops[0].Color, true
}

// RadialGradient is a color transition radiating from a center point to
// an end shape.
//
// https://developer.mozilla.org/en-US/docs/Web/CSS/gradient/radial-gradient
type RadialGradient struct {
	// Position is the center of the gradient.
	Position Position
	// Shape defines the end shape of the gradient.
	Shape Shape
	// Stops is the list of color stops.
	Stops []ColorStop
}

// Radial creates a radial gradient with the default center and end
// shape (centered, ClosestCorner).
func Radial(stops ...ColorStop) RadialGradient {
	return RadialGradient{Position: Center, Shape: ClosestCorner, Stops: stops}
}

func (RadialGradient) gradientMarker() {}

// IsEmpty reports whether the gradient has no stops.
func (g RadialGradient) IsEmpty() bool { return len(g.Stops) == 0 }

// Single returns the sole color of a single-stop gradient.
func (g RadialGradient) Single() (RGBA, bool) {
	if len(g.Stops) != 1 {
		return RGBA{}, false
	}
	return g.Stops[0].Color, true
}

// ConicGradient is a color transition swept around a center point.
//
// https://developer.mozilla.org/en-US/docs/Web/CSS/gradient/conic-gradient
type ConicGradient struct {
	// Position is the center of the gradient.
	Position Position
	// Stops is the list of angular color stops.
	Stops []AngularColorStop
}

// Conic creates a conic gradient centered on the element.
func Conic(stops ...AngularColorStop) ConicGradient {
	return ConicGradient{Position: Center, Stops: stops}
}

func (ConicGradient) gradientMarker() {}

// IsEmpty reports whether the gradient has no stops.
func (g ConicGradient) IsEmpty() bool { return len(g.Stops) == 0 }

// Single returns the sole color of a single-stop gradient.
func (g ConicGradient) Single() (RGBA, bool) {
	if len(g.Stops) != 1 {
		return RGBA{}, false
	}
	return g.Stops[0].Color, true
}

// BackgroundGradient is an ordered list of gradients filling an
// element's background. The first entry paints topmost; an empty list
// means no gradient.
type BackgroundGradient []Gradient

// IsEmpty reports whether the list holds no gradients.
func (b BackgroundGradient) IsEmpty() bool { return len(b) == 0 }

// BorderGradient is an ordered list of gradients painting an element's
// border band. The first entry paints topmost; an empty list means no
// gradient.
type BorderGradient []Gradient

// IsEmpty reports whether the list holds no gradients.
func (b BorderGradient) IsEmpty() bool { return len(b) == 0 }
