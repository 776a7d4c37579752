package curveplot

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointLerpEndpoints(t *testing.T) {
	// These values are not exactly representable, which makes the
	// naive p + t(o-p) formulation miss o at t = 1.
	p := Pt(0.1, -0.7)
	o := Pt(0.3, 0.9)
	if got := p.Lerp(o, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(o, 1); got != o {
		t.Errorf("Lerp(1) = %v, want %v", got, o)
	}
	diff(t, Pt(0.2, 0.1), p.Lerp(o, 0.5), approx(1e-15))
}

func TestPointFinite(t *testing.T) {
	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(-1)), false},
		{Pt(math.Inf(1), math.NaN()), false},
	} {
		if got := tc.pt.IsFinite(); got != tc.want {
			t.Errorf("%v.IsFinite() = %t, want %t", tc.pt, got, tc.want)
		}
	}
}
