// Package curveplot evaluates plane curves and prepares them for plotting.
//
// Four curve families are supported, each selected by a [Mode]:
//
//   - function graphs y = f(x) of an expression in x (see package expr),
//     sampled by [Sample]
//   - Bézier curves of any degree, evaluated by De Casteljau's algorithm
//     (see [Bezier])
//   - cubic Hermite curves given by two endpoints and two tangents (see
//     [Hermite])
//   - rose curves r = cos(nθ) (see [Rose])
//
// # Coordinates
//
// Every curve is produced in the canonical viewport [-1, 1]×[-1, 1] with y
// pointing up (see [Canonical]). Bézier, Hermite and rose curves stay inside
// it when their control data does. Function graphs are scaled uniformly by
// the larger magnitude of the domain bounds (see [Domain.Normalize]); samples
// that end up outside the viewport are dropped rather than clamped, which
// preserves the shape of the graph at the cost of coverage. [Viewport] maps
// canonical coordinates to pixels.
//
// # Parametric curves
//
// [ParametricCurve] describes curves that can be evaluated at t ∈ [0, 1].
// [Sweep] turns any of them into a [SampleSet] of steps+1 points. [Line],
// [Bezier], [Hermite] and [Rose] are parametric curves.
//
// # Requests, scenes and renderers
//
// A [Request] carries the parameters of exactly one mode: [FunctionRequest],
// [BezierRequest], [HermiteRequest] or [FlowerRequest]. [Build] validates a
// request and turns it into a [Scene], an ordered list of styled and colored
// layers that always begins with the axes (see [Axes]). A [Surface] submits
// scenes to a [Renderer], which does the actual drawing.
//
// Invalid requests fail with a [*ValidationError] before anything is
// evaluated. Expressions that do not compile fail with a compile error from
// package expr. Errors evaluating single samples are never reported; the
// sample is skipped. A curve without any points is not an error and simply
// draws nothing.
//
// All evaluation is synchronous and stateless. Every request is computed
// from scratch; nothing is cached between requests.
package curveplot
