package curveplot

// AxisLines returns the x and y axes of the canonical viewport.
func AxisLines() [2]Line {
	return [2]Line{
		{P0: Pt(-1, 0), P1: Pt(1, 0)},
		{P0: Pt(0, -1), P1: Pt(0, 1)},
	}
}

// Axes returns the four endpoints of the axes, (-1, 0), (1, 0), (0, -1) and
// (0, 1). They form two disjoint segments and must be drawn with the
// [Segments] style.
func Axes() SampleSet {
	l := AxisLines()
	return SegmentSet(l[0], l[1])
}
