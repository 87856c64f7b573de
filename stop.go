package gradient

// ColorStop is a color stop for a linear or radial gradient.
type ColorStop struct {
	// Color of the stop.
	Color RGBA
	// Point is the responsive position of the stop along the gradient
	// line. Stop positions are relative to the start of the gradient,
	// not to other stops. An automatic point is interpolated evenly
	// between the neighboring explicit stops during resolution.
	Point Length
	// Hint is the normalized position between this and the following
	// stop of the interpolation midpoint. 0.5 is a plain linear blend.
	Hint float64
}

// Stop creates a color stop at an explicit point.
func Stop(color RGBA, point Length) ColorStop {
	return ColorStop{Color: color, Point: point, Hint: 0.5}
}

// AutoStop creates an automatic color stop. The positions of automatic
// stops are interpolated evenly between explicit stops.
func AutoStop(color RGBA) ColorStop {
	return ColorStop{Color: color, Point: Auto, Hint: 0.5}
}

// WithHint returns a copy of the stop with the interpolation midpoint
// between it and the following stop set to hint.
func (s ColorStop) WithHint(hint float64) ColorStop {
	s.Hint = hint
	return s
}

// AngularColorStop is a color stop for a conic gradient.
type AngularColorStop struct {
	// Color of the stop.
	Color RGBA
	// Angle of the stop in radians, relative to the start of the
	// gradient, not to other stops. Ignored when Auto is set.
	Angle float64
	// Auto marks an automatic stop whose angle is interpolated evenly
	// between the neighboring explicit stops (or 0 and 2π when there
	// are none).
	Auto bool
	// Hint is the normalized position between this and the following
	// stop of the interpolation midpoint. 0.5 is a plain linear blend.
	Hint float64
}

// AngleStop creates an angular color stop at an explicit angle in
// radians.
func AngleStop(color RGBA, angle float64) AngularColorStop {
	return AngularColorStop{Color: color, Angle: angle, Hint: 0.5}
}

// AutoAngleStop creates an angular stop without an explicit angle.
// The angles of automatic stops are interpolated evenly between explicit
// stops.
func AutoAngleStop(color RGBA) AngularColorStop {
	return AngularColorStop{Color: color, Auto: true, Hint: 0.5}
}

// WithHint returns a copy of the stop with the interpolation midpoint
// between it and the following stop set to hint.
func (s AngularColorStop) WithHint(hint float64) AngularColorStop {
	s.Hint = hint
	return s
}
