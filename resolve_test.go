package gradient

import (
	"math"
	"testing"
)

func TestLinearResolveLineLength(t *testing.T) {
	target := Pt(800, 600)

	// The gradient line length is the projection of the element onto
	// the gradient direction: |sin a|*w + |cos a|*h.
	tests := []struct {
		name  string
		angle float64
		size  Point
		want  float64
	}{
		{"to top spans height", ToTop, Pt(100, 200), 200},
		{"to bottom spans height", ToBottom, Pt(100, 200), 200},
		{"to right spans width", ToRight, Pt(100, 200), 100},
		{"to left spans width", ToLeft, Pt(100, 200), 100},
		{"diagonal on a square", ToTopRight, Pt(100, 100), 100 * math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Linear(tt.angle, AutoStop(Red), AutoStop(Blue)).Resolve(1, tt.size, target)
			if !approxEqual(r.Length, tt.want) {
				t.Errorf("Length = %v, want %v", r.Length, tt.want)
			}
		})
	}
}

func TestLinearResolveGeometry(t *testing.T) {
	target := Pt(800, 600)
	r := Linear(ToRight, Stop(Red, Percent(0)), AutoStop(Yellow)).Resolve(1, Pt(100, 200), target)

	if r.Kind != KindLinear {
		t.Fatalf("Kind = %v, want linear", r.Kind)
	}
	// The line runs left to right through the center.
	if !approxEqual(r.Start.X, -50) || !approxEqual(r.Start.Y, 0) {
		t.Errorf("Start = %v, want (-50, 0)", r.Start)
	}
	if !approxEqual(r.End.X, 50) || !approxEqual(r.End.Y, 0) {
		t.Errorf("End = %v, want (50, 0)", r.End)
	}
	// Spec scenario: [red@0, yellow@auto] resolves to
	// [(0, red), (length, yellow)].
	if !positionsEqual(r.Stops, []float64{0, 100}) {
		t.Errorf("stop positions = %v, want [0 100]", positions(r.Stops))
	}
	if r.Stops[0].Color != Red || r.Stops[1].Color != Yellow {
		t.Errorf("stop colors = %+v", r.Stops)
	}
}

func TestLinearResolveUpward(t *testing.T) {
	r := Linear(ToTop, AutoStop(Red), AutoStop(Blue)).Resolve(1, Pt(100, 200), Pt(800, 600))
	// Angle 0 points up: the line starts at the bottom edge (y-down).
	if !approxEqual(r.Start.Y, 100) || !approxEqual(r.End.Y, -100) {
		t.Errorf("Start.Y, End.Y = %v, %v, want 100, -100", r.Start.Y, r.End.Y)
	}
}

func TestRadialResolve(t *testing.T) {
	target := Pt(800, 600)
	g := RadialGradient{
		Position: Center,
		Shape:    FarthestSide,
		Stops:    []ColorStop{AutoStop(Red), AutoStop(Blue)},
	}
	r := g.Resolve(1, Pt(100, 60), target)

	if r.Kind != KindRadial {
		t.Fatalf("Kind = %v, want radial", r.Kind)
	}
	if !approxEqual(r.Center.X, 0) || !approxEqual(r.Center.Y, 0) {
		t.Errorf("Center = %v, want origin", r.Center)
	}
	if !approxEqual(r.Radii.X, 50) || !approxEqual(r.Radii.Y, 50) {
		t.Errorf("Radii = %v, want (50, 50)", r.Radii)
	}
	// Stops span the horizontal radius.
	if !positionsEqual(r.Stops, []float64{0, 50}) {
		t.Errorf("stop positions = %v, want [0 50]", positions(r.Stops))
	}
}

func TestRadialResolveOffCenter(t *testing.T) {
	target := Pt(800, 600)
	g := RadialGradient{
		Position: TopLeft,
		Shape:    ClosestCorner,
		Stops:    []ColorStop{AutoStop(Red)},
	}
	r := g.Resolve(1, Pt(100, 60), target)
	if !approxEqual(r.Center.X, -50) || !approxEqual(r.Center.Y, -30) {
		t.Errorf("Center = %v, want (-50, -30)", r.Center)
	}
	// Closest corner from the top-left corner is the corner itself.
	if !approxEqual(r.Radii.X, 0) || !approxEqual(r.Radii.Y, 0) {
		t.Errorf("Radii = %v, want (0, 0)", r.Radii)
	}
}

func TestRadialResolveNilShape(t *testing.T) {
	g := RadialGradient{Stops: []ColorStop{AutoStop(Red)}}
	r := g.Resolve(1, Pt(100, 60), Pt(800, 600))
	// Zero-value shape falls back to the ClosestCorner default.
	if !approxEqual(r.Radii.X, 50) || !approxEqual(r.Radii.Y, 30) {
		t.Errorf("Radii = %v, want (50, 30)", r.Radii)
	}
}

func TestConicResolve(t *testing.T) {
	target := Pt(800, 600)
	g := Conic(AngleStop(Red, 0), AutoAngleStop(Red), AutoAngleStop(Blue))
	r := g.Resolve(1, Pt(100, 60), target)

	if r.Kind != KindConic {
		t.Fatalf("Kind = %v, want conic", r.Kind)
	}
	if !approxEqual(r.Length, Tau) {
		t.Errorf("Length = %v, want tau", r.Length)
	}
	// Spec scenario: the middle automatic stop lands at pi, the last
	// at the full turn.
	if !positionsEqual(r.Stops, []float64{0, math.Pi, Tau}) {
		t.Errorf("stop positions = %v, want [0 pi tau]", positions(r.Stops))
	}
}

func TestResolvedValidate(t *testing.T) {
	ok := Linear(ToRight, AutoStop(Red), AutoStop(Blue)).Resolve(1, Pt(100, 60), Pt(800, 600))
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name string
		r    Resolved
	}{
		{"nan length", Resolved{Length: math.NaN()}},
		{"inf center", Resolved{Center: Pt(math.Inf(1), 0)}},
		{"nan stop position", Resolved{Stops: []ResolvedStop{{Position: math.NaN(), Hint: 0.5}}}},
		{"nan hint", Resolved{Stops: []ResolvedStop{{Hint: math.NaN()}}}},
		{"nan color", Resolved{Stops: []ResolvedStop{{Color: RGBA{R: math.NaN()}, Hint: 0.5}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.r.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}

	// NaN inputs propagate rather than fail; Validate is how tests
	// catch them.
	bad := Linear(math.NaN(), AutoStop(Red), AutoStop(Blue)).Resolve(1, Pt(100, 60), Pt(800, 600))
	if err := bad.Validate(); err == nil {
		t.Error("Validate() on NaN-angle resolve = nil, want error")
	}
}

func TestResolutionIsPure(t *testing.T) {
	g := Linear(ToBottomRight,
		Stop(Red, Px(0)),
		AutoStop(Green).WithHint(0.3),
		Stop(Blue, Percent(100)),
	)
	a := g.Resolve(2, Pt(120, 80), Pt(800, 600))
	b := g.Resolve(2, Pt(120, 80), Pt(800, 600))
	if len(a.Stops) != len(b.Stops) {
		t.Fatal("repeated resolution differs in stop count")
	}
	for i := range a.Stops {
		if a.Stops[i] != b.Stops[i] {
			t.Errorf("stop %d differs between identical resolutions", i)
		}
	}
	if a.Start != b.Start || a.End != b.End || a.Length != b.Length {
		t.Error("geometry differs between identical resolutions")
	}
}
