package curveplot

// DefaultTangentScale is the factor tangent vectors are multiplied by when
// they are drawn next to a [Hermite] curve.
const DefaultTangentScale = 0.1

// Hermite is a cubic Hermite curve from P0 to P1 with tangent V0 at the
// start and V1 at the end. The tangents are given for the unit parameter
// interval.
type Hermite struct {
	P0 Point
	P1 Point
	V0 Vec2
	V1 Vec2
}

var _ ParametricCurve = Hermite{}

// HermiteBasis returns the four cubic Hermite basis functions at t:
//
//	h1 = 2t³ − 3t² + 1
//	h2 = −2t³ + 3t²
//	h3 = t³ − 2t² + t
//	h4 = t³ − t²
func HermiteBasis(t float64) (h1, h2, h3, h4 float64) {
	t2 := t * t
	t3 := t2 * t
	h1 = 2*t3 - 3*t2 + 1
	h2 = -2*t3 + 3*t2
	h3 = t3 - 2*t2 + t
	h4 = t3 - t2
	return h1, h2, h3, h4
}

// Eval evaluates h1·P0 + h2·P1 + h3·V0 + h4·V1 at t. It returns P0 exactly
// at t = 0 and P1 exactly at t = 1.
func (h Hermite) Eval(t float64) Point {
	h1, h2, h3, h4 := HermiteBasis(t)
	return Point{
		X: h1*h.P0.X + h2*h.P1.X + h3*h.V0.X + h4*h.V1.X,
		Y: h1*h.P0.Y + h2*h.P1.Y + h3*h.V0.Y + h4*h.V1.Y,
	}
}

// Curve returns steps+1 points of the curve at t = i/steps, i = 0..steps.
func (h Hermite) Curve(steps int) SampleSet {
	return Sweep(h, steps)
}

// Tangents returns the segments used to visualize the tangents, starting
// at each endpoint and extending along its tangent multiplied by scale.
// The scaling only affects presentation; the curve itself always uses the
// unscaled tangents.
func (h Hermite) Tangents(scale float64) [2]Line {
	return [2]Line{
		{P0: h.P0, P1: h.P0.Translate(h.V0.Mul(scale))},
		{P0: h.P1, P1: h.P1.Translate(h.V1.Mul(scale))},
	}
}

// Bezier returns the cubic Bézier curve tracing the same path:
// P0, P0 + V0/3, P1 − V1/3, P1.
func (h Hermite) Bezier() Bezier {
	return Bezier{
		h.P0,
		h.P0.Translate(h.V0.Div(3)),
		h.P1.Translate(h.V1.Div(3).Negate()),
		h.P1,
	}
}
