package curveplot

import "slices"

// SampleSet is an ordered sequence of points forming a polyline, a point
// cloud or a list of disjoint segments, depending on the [Style] it is
// drawn with.
//
// Sample sets are produced fresh by every evaluation and are never shared
// between requests.
type SampleSet []Point

// Bounds returns the smallest rectangle enclosing all points. The second
// result is false for an empty set.
func (s SampleSet) Bounds() (Rect, bool) {
	if len(s) == 0 {
		return Rect{}, false
	}
	r := NewRectFromPoints(s[0], s[0])
	for _, pt := range s[1:] {
		r = r.UnionPoint(pt)
	}
	return r, true
}

// Within reports whether every point lies inside r or on its perimeter.
func (s SampleSet) Within(r Rect) bool {
	for _, pt := range s {
		if !r.ContainsClosed(pt) {
			return false
		}
	}
	return true
}

// Transform returns a copy of s with aff applied to every point.
func (s SampleSet) Transform(aff Affine) SampleSet {
	out := make(SampleSet, len(s))
	for i, pt := range s {
		out[i] = pt.Transform(aff)
	}
	return out
}

// Flatten returns the coordinates as an interleaved x0, y0, x1, y1, …
// slice, the layout vertex buffers expect.
func (s SampleSet) Flatten() []float32 {
	out := make([]float32, 0, 2*len(s))
	for _, pt := range s {
		out = append(out, float32(pt.X), float32(pt.Y))
	}
	return out
}

func (s SampleSet) Clone() SampleSet {
	return slices.Clone(s)
}
