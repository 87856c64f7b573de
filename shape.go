package gradient

import "math"

// Shape defines the end shape of a radial gradient: the circle or
// ellipse at which the last color stop lands. It is a closed variant
// set; the implicit shapes size themselves from the gradient center and
// the element extents, the explicit ones carry responsive radii.
type Shape interface {
	// resolve returns the physical half-extents of the end shape.
	// position is the gradient center relative to the element center,
	// size the element's physical size.
	resolve(position Point, scaleFactor float64, size, target Point) Point

	shapeMarker()
}

type implicitShape int

const (
	// ClosestSide is a circle with radius equal to the distance from
	// the gradient center to the closest side of the element.
	ClosestSide implicitShape = iota
	// FarthestSide is a circle with radius equal to the distance from
	// the gradient center to the farthest side of the element.
	FarthestSide
	// ClosestCorner is an ellipse with half-extents equal to the
	// per-axis distances from the gradient center to the nearest
	// corner.
	ClosestCorner
	// FarthestCorner is an ellipse with half-extents equal to the
	// per-axis distances from the gradient center to the farthest
	// corner.
	FarthestCorner
)

func (implicitShape) shapeMarker() {}

func (s implicitShape) resolve(position Point, _ float64, size, _ Point) Point {
	hx, hy := 0.5*size.X, 0.5*size.Y
	switch s {
	case ClosestSide:
		r := math.Min(closeSide(position.X, hx), closeSide(position.Y, hy))
		return Pt(r, r)
	case FarthestSide:
		r := math.Max(farSide(position.X, hx), farSide(position.Y, hy))
		return Pt(r, r)
	case ClosestCorner:
		return Pt(closeSide(position.X, hx), closeSide(position.Y, hy))
	default: // FarthestCorner
		return Pt(farSide(position.X, hx), farSide(position.Y, hy))
	}
}

// Circle is an explicit circular end shape.
type Circle struct {
	Radius Length
}

func (Circle) shapeMarker() {}

func (c Circle) resolve(_ Point, scaleFactor float64, size, target Point) Point {
	r := c.Radius.resolveOr(0, scaleFactor, size.X, target)
	return Pt(r, r)
}

// Ellipse is an explicit elliptical end shape.
type Ellipse struct {
	RX, RY Length
}

func (Ellipse) shapeMarker() {}

func (e Ellipse) resolve(_ Point, scaleFactor float64, size, target Point) Point {
	return Pt(
		e.RX.resolveOr(0, scaleFactor, size.X, target),
		e.RY.resolveOr(0, scaleFactor, size.Y, target),
	)
}

// closeSide is the distance from p to the nearer of the two element
// edges at ±h, measured perpendicular to the edge.
func closeSide(p, h float64) float64 {
	return math.Min(math.Abs(-h-p), math.Abs(h-p))
}

// farSide is the distance from p to the farther of the two element
// edges at ±h.
func farSide(p, h float64) float64 {
	return math.Max(math.Abs(-h-p), math.Abs(h-p))
}
