package gradient

import (
	"fmt"
	"math"
)

// Kind tags the variant of a resolved gradient.
type Kind int

const (
	KindLinear Kind = iota
	KindRadial
	KindConic
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindRadial:
		return "radial"
	case KindConic:
		return "conic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Resolved is a fully resolved gradient: concrete physical geometry and
// an explicit, non-decreasing stop sequence, ready for direct
// interpolation by a rasterizer. All coordinates are physical pixels
// relative to the element's geometric center, y-down.
type Resolved struct {
	// Kind selects which geometry fields below are meaningful.
	Kind Kind
	// Start and End are the gradient line endpoints, symmetric about
	// the element center. Linear only.
	Start, End Point
	// Center is the gradient center. Radial and conic.
	Center Point
	// Radii are the half-extents of the end shape. Radial only.
	Radii Point
	// Length is the extent the stop positions span: the gradient line
	// length for linear, the horizontal end-shape radius for radial,
	// a full turn (Tau) for conic.
	Length float64
	// Stops is the normalized stop sequence, non-decreasing in
	// position.
	Stops []ResolvedStop
}

// Resolve converts the linear gradient into physical geometry. The
// gradient line runs through the element center along the gradient
// angle; its length is the projection of the element onto that
// direction, so the line exactly spans the element's silhouette.
func (g LinearGradient) Resolve(scaleFactor float64, size, target Point) Resolved {
	sin, cos := math.Sincos(g.Angle)
	length := math.Abs(sin)*size.X + math.Abs(cos)*size.Y
	// Angle 0 points up; y grows downward.
	half := Pt(sin, -cos).Mul(0.5 * length)
	return Resolved{
		Kind:   KindLinear,
		Start:  Pt(-half.X, -half.Y),
		End:    half,
		Length: length,
		Stops:  resolveStops(g.Stops, scaleFactor, length, target),
	}
}

// Resolve converts the radial gradient into physical geometry: the
// resolved center, the end shape half-extents, and stops spanning the
// horizontal radius.
func (g RadialGradient) Resolve(scaleFactor float64, size, target Point) Resolved {
	shape := g.Shape
	if shape == nil {
		shape = ClosestCorner
	}
	center := g.Position.Resolve(scaleFactor, size, target)
	radii := shape.resolve(center, scaleFactor, size, target)
	return Resolved{
		Kind:   KindRadial,
		Center: center,
		Radii:  radii,
		Length: radii.X,
		Stops:  resolveStops(g.Stops, scaleFactor, radii.X, target),
	}
}

// Resolve converts the conic gradient into physical geometry: the
// resolved center and stop angles spanning a full turn.
func (g ConicGradient) Resolve(scaleFactor float64, size, target Point) Resolved {
	return Resolved{
		Kind:   KindConic,
		Center: g.Position.Resolve(scaleFactor, size, target),
		Length: Tau,
		Stops:  resolveAngularStops(g.Stops),
	}
}

// Validate reports whether the resolved gradient contains a NaN or
// infinite value. Resolution itself never fails; this is a defensive
// check for tests and debug builds, not a user-facing error channel.
func (r Resolved) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"start.x", r.Start.X}, {"start.y", r.Start.Y},
		{"end.x", r.End.X}, {"end.y", r.End.Y},
		{"center.x", r.Center.X}, {"center.y", r.Center.Y},
		{"radii.x", r.Radii.X}, {"radii.y", r.Radii.Y},
		{"length", r.Length},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return fmt.Errorf("resolved %s gradient: non-finite %s: %v", r.Kind, f.name, f.v)
		}
	}
	for i, s := range r.Stops {
		if !isFinite(s.Position) {
			return fmt.Errorf("resolved %s gradient: non-finite position %v at stop %d", r.Kind, s.Position, i)
		}
		if !isFinite(s.Hint) {
			return fmt.Errorf("resolved %s gradient: non-finite hint %v at stop %d", r.Kind, s.Hint, i)
		}
		for _, c := range [4]float64{s.Color.R, s.Color.G, s.Color.B, s.Color.A} {
			if !isFinite(c) {
				return fmt.Errorf("resolved %s gradient: non-finite color component at stop %d", r.Kind, i)
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
