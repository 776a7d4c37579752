package curveplot

// DefaultMaxSteps is the largest step count a [Request] accepts unless the
// caller configures a different limit.
const DefaultMaxSteps = 100_000

// ParametricCurve describes a curve parametrized by a scalar.
//
// [Line], [Bezier], [Hermite] and [Rose] are parametric curves.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
}

// Sweep evaluates c at t = i/steps for i = 0..steps and returns the
// resulting steps+1 points in order. Steps smaller than one are treated as
// one.
//
// The parameter is computed as a quotient of integers rather than by
// accumulating a step width, so both endpoints are evaluated at exactly 0
// and 1.
func Sweep(c ParametricCurve, steps int) SampleSet {
	steps = max(steps, 1)
	out := make(SampleSet, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, c.Eval(t))
	}
	return out
}
