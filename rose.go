package curveplot

import "math"

// Rose is the polar rose r = cos(nθ) with n = Petals, traced over one full
// turn θ ∈ [0, 2π]. It fits the unit disk and thus the canonical viewport.
type Rose struct {
	Petals int
}

var _ ParametricCurve = Rose{}

// Eval evaluates the rose at θ = 2πt:
//
//	x = cos(nθ)·cos θ
//	y = cos(nθ)·sin θ
func (r Rose) Eval(t float64) Point {
	th := t * 2 * math.Pi
	rad := math.Cos(float64(r.Petals) * th)
	sin, cos := math.Sincos(th)
	return Point{X: rad * cos, Y: rad * sin}
}

// Curve returns steps+1 points of the rose at θ = 2π·i/steps, i = 0..steps.
func (r Rose) Curve(steps int) SampleSet {
	return Sweep(r, steps)
}

// VisiblePetals returns the number of distinct petals the rose shows: 2n
// for even n and n for odd n. The engine never special-cases parity; odd
// roses simply retrace their petals during the second half-turn.
func (r Rose) VisiblePetals() int {
	if r.Petals%2 == 0 {
		return 2 * r.Petals
	}
	return r.Petals
}
