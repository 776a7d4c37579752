package curveplot

import "slices"

// Bezier is a Bézier curve of arbitrary degree, given by its control points
// P0..Pn in order. The curve starts at P0 and ends at Pn.
//
// A Bezier only reads its points; callers may reuse the slice after
// evaluation returns.
type Bezier []Point

var _ ParametricCurve = Bezier(nil)

// Degree returns the degree of the curve, one less than the number of
// control points.
func (b Bezier) Degree() int {
	return len(b) - 1
}

// Eval evaluates the curve at t using De Casteljau's algorithm: each level
// replaces n points by the n−1 linear interpolations of neighboring pairs
// until a single point remains.
//
// A curve with one control point evaluates to that point for every t; an
// empty curve evaluates to the zero point.
func (b Bezier) Eval(t float64) Point {
	switch len(b) {
	case 0:
		return Point{}
	case 1:
		return b[0]
	}
	next := make(Bezier, len(b)-1)
	for i := range next {
		next[i] = b[i].Lerp(b[i+1], t)
	}
	return next.Eval(t)
}

// EvalInto is like [Bezier.Eval] but reduces the points in buf, which it
// grows as needed and returns for reuse. It does not allocate once buf is
// large enough, and produces the same results as Eval.
func (b Bezier) EvalInto(t float64, buf []Point) (Point, []Point) {
	if len(b) == 0 {
		return Point{}, buf
	}
	buf = append(buf[:0], b...)
	for n := len(buf) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			buf[i] = buf[i].Lerp(buf[i+1], t)
		}
	}
	return buf[0], buf
}

// Curve returns steps+1 points of the curve at t = i/steps, i = 0..steps.
func (b Bezier) Curve(steps int) SampleSet {
	steps = max(steps, 1)
	out := make(SampleSet, 0, steps+1)
	var buf []Point
	for i := 0; i <= steps; i++ {
		var pt Point
		pt, buf = b.EvalInto(float64(i)/float64(steps), buf)
		out = append(out, pt)
	}
	return out
}

// Polygon returns the control polygon, the control points joined in order.
func (b Bezier) Polygon() SampleSet {
	return SampleSet(slices.Clone(b))
}
