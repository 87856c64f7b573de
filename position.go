package gradient

// Position is a responsive position relative to a UI element's geometric
// center. The anchor locates a normalized reference point on the element
// (components conventionally in [-0.5, 0.5], -0.5 at the top/left edge,
// 0.5 at the bottom/right edge; values outside that range extrapolate).
// X and Y offset the anchor point, always measured from the anchor's own
// side toward the element interior.
type Position struct {
	// Anchor is the normalized anchor point.
	Anchor Point
	// X is the responsive horizontal offset from the anchor point.
	X Length
	// Y is the responsive vertical offset from the anchor point.
	Y Length
}

// AnchorAt creates a position at the given normalized anchor point with
// zero offsets.
func AnchorAt(anchor Point) Position {
	return Position{Anchor: anchor}
}

// The nine named anchor presets.
var (
	TopLeft     = AnchorAt(Pt(-0.5, -0.5))
	Top         = AnchorAt(Pt(0, -0.5))
	TopRight    = AnchorAt(Pt(0.5, -0.5))
	Left        = AnchorAt(Pt(-0.5, 0))
	Center      = AnchorAt(Pt(0, 0))
	Right       = AnchorAt(Pt(0.5, 0))
	BottomLeft  = AnchorAt(Pt(-0.5, 0.5))
	Bottom      = AnchorAt(Pt(0, 0.5))
	BottomRight = AnchorAt(Pt(0.5, 0.5))
)

// At returns a copy of the position with the given x and y offsets.
func (p Position) At(x, y Length) Position {
	p.X, p.Y = x, y
	return p
}

// AtX returns a copy of the position with the given x offset.
func (p Position) AtX(x Length) Position {
	p.X = x
	return p
}

// AtY returns a copy of the position with the given y offset.
func (p Position) AtY(y Length) Position {
	p.Y = y
	return p
}

// AtPx returns a copy of the position with offsets in logical pixels.
func (p Position) AtPx(x, y float64) Position {
	return p.At(Px(x), Px(y))
}

// AtPercent returns a copy of the position with percentage offsets.
func (p Position) AtPercent(x, y float64) Position {
	return p.At(Percent(x), Percent(y))
}

// WithAnchor returns a copy of the position with the given anchor point.
func (p Position) WithAnchor(anchor Point) Position {
	p.Anchor = anchor
	return p
}

// Resolve converts the position to physical coordinates relative to the
// element's center. size is the element's physical size and target the
// physical target (viewport) size; scaleFactor is the device pixel
// ratio.
//
// Offsets are applied toward the element interior for anchors on the
// positive side and toward the positive side otherwise, so an authored
// offset always reads as a distance inward from the anchored edge or
// corner.
func (p Position) Resolve(scaleFactor float64, size, target Point) Point {
	return Point{
		X: resolveAxis(p.Anchor.X, p.X, scaleFactor, size.X, target),
		Y: resolveAxis(p.Anchor.Y, p.Y, scaleFactor, size.Y, target),
	}
}

// resolveAxis computes one axis of the physical position: the anchor's
// own contribution plus the sign-flipped offset.
func resolveAxis(anchor float64, offset Length, scaleFactor, size float64, target Point) float64 {
	d := 1.0
	if anchor > 0 {
		d = -1
	}
	return size*anchor + d*offset.resolveOr(0, scaleFactor, size, target)
}
