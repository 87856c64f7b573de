package gradient

// Unit identifies how a Length value is interpreted during resolution.
type Unit int

const (
	// UnitAuto marks an automatic length with no explicit value.
	// Automatic lengths never resolve; callers substitute zero or, for
	// color stops, an interpolated position.
	UnitAuto Unit = iota
	// UnitPx is logical pixels, scaled by the device scale factor.
	UnitPx
	// UnitPercent is a percentage of the reference size.
	UnitPercent
	// UnitVw is a percentage of the target (viewport) width.
	UnitVw
	// UnitVh is a percentage of the target (viewport) height.
	UnitVh
	// UnitVMin is a percentage of the target's smaller extent.
	UnitVMin
	// UnitVMax is a percentage of the target's larger extent.
	UnitVMax
)

// Length is a responsive length: a value whose physical size depends on
// the device scale factor, a reference size, or the target (viewport)
// size. The zero value is Auto.
type Length struct {
	Unit  Unit
	Value float64
}

// Auto is the automatic length. It never resolves to a concrete value.
var Auto = Length{Unit: UnitAuto}

// Px creates a length in logical pixels.
func Px(v float64) Length { return Length{Unit: UnitPx, Value: v} }

// Percent creates a length as a percentage of the reference size.
// Percent(50) is half the reference size.
func Percent(v float64) Length { return Length{Unit: UnitPercent, Value: v} }

// Vw creates a length as a percentage of the target width.
func Vw(v float64) Length { return Length{Unit: UnitVw, Value: v} }

// Vh creates a length as a percentage of the target height.
func Vh(v float64) Length { return Length{Unit: UnitVh, Value: v} }

// VMin creates a length as a percentage of the target's smaller extent.
func VMin(v float64) Length { return Length{Unit: UnitVMin, Value: v} }

// VMax creates a length as a percentage of the target's larger extent.
func VMax(v float64) Length { return Length{Unit: UnitVMax, Value: v} }

// IsAuto reports whether the length is automatic.
func (l Length) IsAuto() bool { return l.Unit == UnitAuto }

// Resolve converts the length to a physical distance. Pixel values are
// multiplied by scaleFactor, percentages resolve against referenceSize,
// viewport units against target. Automatic lengths report ok == false;
// callers treat that as zero.
func (l Length) Resolve(scaleFactor, referenceSize float64, target Point) (float64, bool) {
	switch l.Unit {
	case UnitPx:
		return l.Value * scaleFactor, true
	case UnitPercent:
		return l.Value / 100 * referenceSize, true
	case UnitVw:
		return l.Value / 100 * target.X, true
	case UnitVh:
		return l.Value / 100 * target.Y, true
	case UnitVMin:
		return l.Value / 100 * min(target.X, target.Y), true
	case UnitVMax:
		return l.Value / 100 * max(target.X, target.Y), true
	default:
		return 0, false
	}
}

// resolveOr resolves the length, substituting fallback when automatic.
func (l Length) resolveOr(fallback, scaleFactor, referenceSize float64, target Point) float64 {
	if v, ok := l.Resolve(scaleFactor, referenceSize, target); ok {
		return v
	}
	return fallback
}
