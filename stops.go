package gradient

import "math"

// Tau is a full turn in radians, the angular extent of a conic gradient.
const Tau = 2 * math.Pi

// ResolvedStop is a fully explicit color stop: a physical position along
// the gradient line (an angle in radians for conic gradients), the stop
// color, and the interpolation midpoint hint toward the following stop.
type ResolvedStop struct {
	Color    RGBA
	Position float64
	Hint     float64
}

// resolveStops normalizes a linear/radial stop list into explicit,
// non-decreasing physical positions. extent is the resolved gradient
// line length; stop points resolve against it, so percentage points are
// percentages of the gradient line.
func resolveStops(stops []ColorStop, scaleFactor, extent float64, target Point) []ResolvedStop {
	if len(stops) == 0 {
		return nil
	}
	out := make([]ResolvedStop, len(stops))
	known := make([]bool, len(stops))
	for i, s := range stops {
		v, ok := s.Point.Resolve(scaleFactor, extent, target)
		out[i] = ResolvedStop{Color: s.Color, Position: v, Hint: s.Hint}
		known[i] = ok
	}
	fillAutoStops(out, known, extent)
	enforceMonotonic(out)
	return out
}

// resolveAngularStops normalizes a conic stop list into explicit,
// non-decreasing angles over a full turn.
func resolveAngularStops(stops []AngularColorStop) []ResolvedStop {
	if len(stops) == 0 {
		return nil
	}
	out := make([]ResolvedStop, len(stops))
	known := make([]bool, len(stops))
	for i, s := range stops {
		out[i] = ResolvedStop{Color: s.Color, Hint: s.Hint}
		if !s.Auto {
			out[i].Position = s.Angle
			known[i] = true
		}
	}
	fillAutoStops(out, known, Tau)
	enforceMonotonic(out)
	return out
}

// fillAutoStops assigns positions to automatic stops: an automatic first
// stop gets 0, an automatic last stop gets the full extent, and every
// interior run of automatic stops is spread evenly between its known
// neighbors.
func fillAutoStops(out []ResolvedStop, known []bool, extent float64) {
	if !known[0] {
		out[0].Position = 0
		known[0] = true
	}
	last := len(out) - 1
	if !known[last] {
		out[last].Position = extent
		known[last] = true
	}
	for i := 1; i < last; {
		if known[i] {
			i++
			continue
		}
		// Maximal run of automatic stops [i, j); known[i-1] and
		// known[j] hold by construction.
		j := i
		for !known[j] {
			j++
		}
		lo, hi := out[i-1].Position, out[j].Position
		n := j - i
		for k := 0; k < n; k++ {
			out[i+k].Position = lo + (hi-lo)*float64(k+1)/float64(n+1)
			known[i+k] = true
		}
		i = j + 1
	}
}

// enforceMonotonic raises any stop position below its predecessor up to
// the predecessor, so the output is non-decreasing left to right.
// Inverted spans would otherwise render as hard jumps in the wrong
// direction.
func enforceMonotonic(out []ResolvedStop) {
	for i := 1; i < len(out); i++ {
		if out[i].Position < out[i-1].Position {
			Logger().Debug("raised out-of-order gradient stop",
				"index", i,
				"position", out[i].Position,
				"previous", out[i-1].Position)
			out[i].Position = out[i-1].Position
		}
	}
}
