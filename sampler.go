package curveplot

import (
	"context"
	"log/slog"
	"math"
)

// Func is a real function of one variable whose evaluation may fail at
// individual points. [honnef.co/go/curveplot/expr.Func] implements it.
type Func interface {
	Eval(x float64) (float64, error)
}

// FuncOf adapts an infallible Go function to [Func].
type FuncOf func(x float64) float64

func (f FuncOf) Eval(x float64) (float64, error) { return f(x), nil }

// SampleStats counts what happened to the abscissas visited by
// [SampleWithStats].
type SampleStats struct {
	// Kept is the number of points in the returned SampleSet.
	Kept int
	// Failed counts evaluations that returned an error.
	Failed int
	// NonFinite counts evaluations that returned NaN or ±Inf.
	NonFinite int
	// Clipped counts normalized points that fell outside [Canonical].
	Clipped int
}

// Total returns the number of abscissas visited.
func (st SampleStats) Total() int {
	return st.Kept + st.Failed + st.NonFinite + st.Clipped
}

// Sample evaluates f at steps+1 evenly spaced abscissas spanning d,
// normalizes each result with [Domain.Normalize] and returns the points that
// lie within [Canonical], in ascending x order.
//
// Samples whose evaluation fails, whose value is not finite, or whose
// normalized position falls outside the viewport are skipped. Skipping does
// not split the polyline; the neighbors of a skipped sample are joined
// directly. If every sample is skipped the result is empty.
//
// Steps smaller than one are treated as one. The domain is not validated.
func Sample(f Func, d Domain, steps int) SampleSet {
	s, _ := SampleWithStats(f, d, steps)
	return s
}

// SampleWithStats is like [Sample] but also reports why samples were
// skipped.
func SampleWithStats(f Func, d Domain, steps int) (SampleSet, SampleStats) {
	var st SampleStats
	steps = max(steps, 1)
	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	out := make(SampleSet, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := d.At(i, steps)
		y, err := f.Eval(x)
		if err != nil {
			st.Failed++
			if debug {
				log.Debug("curveplot: sample failed", "x", x, "err", err)
			}
			continue
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			st.NonFinite++
			if debug {
				log.Debug("curveplot: sample not finite", "x", x, "y", y)
			}
			continue
		}
		pt := d.Normalize(x, y)
		if !Canonical.ContainsClosed(pt) {
			st.Clipped++
			if debug {
				log.Debug("curveplot: sample clipped", "x", x, "y", y)
			}
			continue
		}
		out = append(out, pt)
	}
	st.Kept = len(out)
	return out, st
}
