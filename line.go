package curveplot

// Line represents a line segment. It is a [ParametricCurve].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// SegmentSet flattens lines into a SampleSet of disjoint pairs, suitable for
// the [Segments] draw style.
func SegmentSet(lines ...Line) SampleSet {
	out := make(SampleSet, 0, 2*len(lines))
	for _, l := range lines {
		out = append(out, l.P0, l.P1)
	}
	return out
}
