package gradient

import "testing"

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2, 3)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Length(); !approxEqual(got, 5) {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}
