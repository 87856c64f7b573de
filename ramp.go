package gradient

import (
	"math"
	"sort"

	icolor "github.com/gogpu/gradient/internal/color"
)

// ExtendMode defines how a gradient extends beyond its stop range.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond the stop range (default).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// SampleOptions configures sampling of a resolved gradient.
type SampleOptions struct {
	// Extend selects how positions outside the stop range map back
	// into it.
	Extend ExtendMode
	// ClampHints restricts interpolation hints to [0, 1] before the
	// midpoint remap. When false (the default), out-of-range hints are
	// used raw and skew the whole segment toward one endpoint.
	ClampHints bool
}

// At returns the color at a physical position along the gradient line
// (an angle in radians for conic gradients). Interpolation happens in
// linear sRGB with the segment's hint shifting the blend midpoint.
func (r Resolved) At(pos float64, opts SampleOptions) RGBA {
	stops := r.Stops
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	first := stops[0].Position
	span := stops[len(stops)-1].Position - first
	if span <= 0 {
		// All stops coincide; everything before them takes the first
		// color, everything after the last.
		if pos < first {
			return stops[0].Color
		}
		return stops[len(stops)-1].Color
	}

	t := applyExtendMode((pos-first)/span, opts.Extend)
	pos = first + t*span

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Position >= pos
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Position == s1.Position {
		return s1.Color
	}
	local := (pos - s1.Position) / (s2.Position - s1.Position)
	return lerpLinear(s1.Color, s2.Color, hintWeight(local, s1.Hint, opts.ClampHints))
}

// Ramp bakes n evenly spaced samples over the gradient extent, the form
// a rasterizer uploads as a 1D ramp texture. n must be at least 2.
func (r Resolved) Ramp(n int, opts SampleOptions) []RGBA {
	if n < 2 {
		n = 2
	}
	out := make([]RGBA, n)
	for i := range out {
		out[i] = r.At(r.Length*float64(i)/float64(n-1), opts)
	}
	return out
}

// hintWeight remaps the interpolation parameter t in [0, 1] so the
// blend midpoint lands on the hint: linear from 0 to 0.5 below the
// hint, linear from 0.5 to 1 above it. A hint of 0.5 is the identity.
func hintWeight(t, hint float64, clampHints bool) float64 {
	if clampHints {
		hint = clamp01(hint)
	}
	if hint == 0.5 {
		return t
	}
	if t <= hint {
		if hint <= 0 {
			return 0
		}
		return 0.5 * t / hint
	}
	if hint >= 1 {
		return 0.5
	}
	return 0.5 + 0.5*(t-hint)/(1-hint)
}

// applyExtendMode maps t back into [0, 1] per the extend mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerpLinear interpolates between two colors in linear sRGB space.
func lerpLinear(c1, c2 RGBA, t float64) RGBA {
	l1 := icolor.SRGBToLinearColor(icolor.Color(c1))
	l2 := icolor.SRGBToLinearColor(icolor.Color(c2))
	out := icolor.LinearToSRGBColor(icolor.Lerp(l1, l2, t))
	return RGBA(out)
}
