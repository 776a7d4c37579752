package curveplot

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Canonical is the viewport every curve is plotted in. Its perimeter belongs
// to it, see [Rect.ContainsClosed].
var Canonical = Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// ContainsClosed reports whether pt lies inside r or on its perimeter. NaN
// coordinates are never contained.
func (r Rect) ContainsClosed(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// ClipLine clips l to r, perimeter included, using the Liang–Barsky
// algorithm. It reports false if no part of l lies within r or if l has
// non-finite coordinates. r must not have negative width or height.
func (r Rect) ClipLine(l Line) (Line, bool) {
	if !l.P0.IsFinite() || !l.P1.IsFinite() {
		return Line{}, false
	}
	d := l.P1.Sub(l.P0)
	t0, t1 := 0.0, 1.0
	for _, e := range [4]struct{ p, q float64 }{
		{-d.X, l.P0.X - r.X0},
		{d.X, r.X1 - l.P0.X},
		{-d.Y, l.P0.Y - r.Y0},
		{d.Y, r.Y1 - l.P0.Y},
	} {
		if e.p == 0 {
			// Parallel to this edge.
			if e.q < 0 {
				return Line{}, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return Line{}, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return Line{}, false
			}
			t1 = min(t1, t)
		}
	}
	return Line{P0: l.Eval(t0), P1: l.Eval(t1)}, true
}
