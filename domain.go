package curveplot

import "math"

// Domain is the closed interval [XMin, XMax] a function graph is sampled
// over. A valid domain has finite bounds and XMin < XMax.
type Domain struct {
	XMin float64
	XMax float64
}

// Validate reports whether d is usable for sampling.
func (d Domain) Validate() error {
	switch {
	case math.IsNaN(d.XMin) || math.IsInf(d.XMin, 0):
		return invalid("xmin", "must be a finite number")
	case math.IsNaN(d.XMax) || math.IsInf(d.XMax, 0):
		return invalid("xmax", "must be a finite number")
	case d.XMin >= d.XMax:
		return invalid("xmin", "must be less than xmax (%g >= %g)", d.XMin, d.XMax)
	}
	return nil
}

// Scale returns the factor function samples are divided by, the larger
// magnitude of the two bounds. Both axes share it so that the graph keeps
// its proportions.
func (d Domain) Scale() float64 {
	return max(math.Abs(d.XMax), math.Abs(d.XMin))
}

// Normalize maps a function sample into the canonical viewport by dividing
// both coordinates by [Domain.Scale]. The result is not clamped: callers
// drop points outside [Canonical] instead of distorting the graph. A zero
// scale yields non-finite coordinates.
func (d Domain) Normalize(x, y float64) Point {
	r := d.Scale()
	return Point{X: x / r, Y: y / r}
}

// At returns the i-th of steps+1 evenly spaced abscissas, including both
// bounds.
func (d Domain) At(i, steps int) float64 {
	return d.XMin + (d.XMax-d.XMin)*(float64(i)/float64(steps))
}
