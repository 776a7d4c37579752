package curveplot

import (
	"math"
	"testing"
)

// tips returns the distinct points of s at unit distance from the origin,
// the tips of a rose's petals.
func tips(s SampleSet) []Point {
	const epsilon = 1e-9
	var out []Point
outer:
	for _, pt := range s {
		if math.Abs(math.Hypot(pt.X, pt.Y)-1) > epsilon {
			continue
		}
		for _, o := range out {
			if d := pt.Sub(o); math.Hypot(d.X, d.Y) < epsilon {
				continue outer
			}
		}
		out = append(out, pt)
	}
	return out
}

func TestRoseOnePetal(t *testing.T) {
	s := Rose{Petals: 1}.Curve(360)
	if len(s) != 361 {
		t.Fatalf("got %d points, want 361", len(s))
	}
	// The second half-turn retraces the first.
	for i := 0; i <= 180; i++ {
		diff(t, s[i], s[i+180], approx(1e-12))
	}
	diff(t, []Point{Pt(1, 0)}, tips(s), approx(1e-12))
}

func TestRoseFourPetals(t *testing.T) {
	s := Rose{Petals: 2}.Curve(360)
	want := []Point{Pt(1, 0), Pt(0, -1), Pt(-1, 0), Pt(0, 1)}
	diff(t, want, tips(s), approx(1e-12))
}

func TestRoseVisiblePetals(t *testing.T) {
	for n := 1; n <= 6; n++ {
		r := Rose{Petals: n}
		if got, want := len(tips(r.Curve(360))), r.VisiblePetals(); got != want {
			t.Errorf("n=%d: found %d petal tips, want %d", n, got, want)
		}
	}
}

func TestRoseFullTurn(t *testing.T) {
	for n := 1; n <= 7; n++ {
		s := Rose{Petals: n}.Curve(100)
		diff(t, Pt(1, 0), s[0])
		diff(t, s[0], s[len(s)-1], approx(1e-12))
		if !s.Within(Canonical) {
			t.Errorf("n=%d: rose leaves the canonical viewport", n)
		}
	}
}
