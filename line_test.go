package curveplot

import (
	"testing"
)

func TestLineEval(t *testing.T) {
	l := Line{P0: Pt(-1, 0), P1: Pt(1, 2)}
	diff(t, Pt(-1, 0), l.Eval(0))
	diff(t, Pt(0, 1), l.Eval(0.5))
	diff(t, Pt(1, 2), l.Eval(1))
}

func TestSegmentSet(t *testing.T) {
	a := Line{P0: Pt(0, 0), P1: Pt(1, 1)}
	b := Line{P0: Pt(2, 2), P1: Pt(3, 3)}
	diff(t, SampleSet{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}, SegmentSet(a, b))
	diff(t, SampleSet{}, SegmentSet())
}

func TestAxes(t *testing.T) {
	want := SampleSet{Pt(-1, 0), Pt(1, 0), Pt(0, -1), Pt(0, 1)}
	diff(t, want, Axes())
	if !Axes().Within(Canonical) {
		t.Error("axes leave the canonical viewport")
	}
}
