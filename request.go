package curveplot

import (
	"fmt"
	"math"

	"honnef.co/go/curveplot/expr"
)

// Mode selects the curve family a [Request] plots.
type Mode uint8

const (
	ModeFunction Mode = iota
	ModeBezier
	ModeHermite
	ModeFlower
)

var modeNames = [...]string{
	ModeFunction: "function",
	ModeBezier:   "bezier",
	ModeHermite:  "hermite",
	ModeFlower:   "flower",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the mode with the given name, as returned by
// [Mode.String].
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, invalid("mode", "unknown mode %q", s)
}

// Request describes one curve to plot. It is implemented by
// [FunctionRequest], [BezierRequest], [HermiteRequest] and [FlowerRequest]
// and by no other type.
type Request interface {
	// Mode returns the curve family of the request.
	Mode() Mode
	// Validate checks the parameters, allowing at most maxSteps steps. It
	// returns a [*ValidationError] describing the first problem found.
	Validate(maxSteps int) error

	layers(o Options) ([]Layer, error)
}

var (
	_ Request = FunctionRequest{}
	_ Request = BezierRequest{}
	_ Request = HermiteRequest{}
	_ Request = FlowerRequest{}
)

func validateSteps(steps, maxSteps int) error {
	if steps < 1 {
		return invalid("steps", "must be at least 1, got %d", steps)
	}
	if steps > maxSteps {
		return invalid("steps", "must be at most %d, got %d", maxSteps, steps)
	}
	return nil
}

func validatePoint(field string, pt Point) error {
	if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) {
		return invalid(field+".x", "must be a finite number")
	}
	if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
		return invalid(field+".y", "must be a finite number")
	}
	return nil
}

// FunctionRequest plots the graph of the expression Expr over Domain.
type FunctionRequest struct {
	// Expr is an expression in x, see package [expr].
	Expr   string
	Domain Domain
	Steps  int
}

func (FunctionRequest) Mode() Mode { return ModeFunction }

func (r FunctionRequest) Validate(maxSteps int) error {
	if err := r.Domain.Validate(); err != nil {
		return err
	}
	return validateSteps(r.Steps, maxSteps)
}

// Curve compiles the expression and samples it, see [Sample]. Compilation
// failures are returned as [*expr.CompileError].
func (r FunctionRequest) Curve() (SampleSet, SampleStats, error) {
	f, err := expr.Compile(r.Expr)
	if err != nil {
		return nil, SampleStats{}, err
	}
	s, st := SampleWithStats(f, r.Domain, r.Steps)
	return s, st, nil
}

func (r FunctionRequest) layers(o Options) ([]Layer, error) {
	s, st, err := r.Curve()
	if err != nil {
		return nil, err
	}
	Logger().Debug("curveplot: sampled function",
		"expr", r.Expr, "kept", st.Kept, "failed", st.Failed,
		"nonfinite", st.NonFinite, "clipped", st.Clipped)
	return []Layer{
		axesLayer(o),
		{Name: LayerCurve, Points: s, Style: LineStrip, Color: o.Palette.Function},
	}, nil
}

// BezierRequest plots the Bézier curve defined by Points.
type BezierRequest struct {
	Points Bezier
	Steps  int
}

func (BezierRequest) Mode() Mode { return ModeBezier }

func (r BezierRequest) Validate(maxSteps int) error {
	if len(r.Points) < 2 {
		return invalid("points", "minimum 2 control points, got %d", len(r.Points))
	}
	for i, pt := range r.Points {
		if err := validatePoint(fmt.Sprintf("points[%d]", i), pt); err != nil {
			return err
		}
	}
	return validateSteps(r.Steps, maxSteps)
}

func (r BezierRequest) layers(o Options) ([]Layer, error) {
	return []Layer{
		axesLayer(o),
		{Name: LayerControlPoints, Points: r.Points.Polygon(), Style: PointCloud, Color: o.Palette.ControlPoints},
		{Name: LayerControlPolygon, Points: r.Points.Polygon(), Style: LineStrip, Color: o.Palette.ControlPolygon},
		{Name: LayerCurve, Points: r.Points.Curve(r.Steps), Style: LineStrip, Color: o.Palette.Curve},
	}, nil
}

// HermiteRequest plots the Hermite curve Spec.
type HermiteRequest struct {
	Spec  Hermite
	Steps int
}

func (HermiteRequest) Mode() Mode { return ModeHermite }

func (r HermiteRequest) Validate(maxSteps int) error {
	for _, f := range []struct {
		name string
		pt   Point
	}{
		{"p0", r.Spec.P0},
		{"v0", Point(r.Spec.V0)},
		{"p1", r.Spec.P1},
		{"v1", Point(r.Spec.V1)},
	} {
		if err := validatePoint(f.name, f.pt); err != nil {
			return err
		}
	}
	return validateSteps(r.Steps, maxSteps)
}

func (r HermiteRequest) layers(o Options) ([]Layer, error) {
	h := r.Spec
	tan := h.Tangents(o.TangentScale)
	return []Layer{
		axesLayer(o),
		{Name: LayerControlPoints, Points: SampleSet{h.P0, h.P1}, Style: PointCloud, Color: o.Palette.ControlPoints},
		{Name: LayerControlPolygon, Points: SegmentSet(Line{P0: h.P0, P1: h.P1}), Style: Segments, Color: o.Palette.ControlPolygon},
		{Name: LayerTangents, Points: SegmentSet(tan[0], tan[1]), Style: Segments, Color: o.Palette.Tangents},
		{Name: LayerCurve, Points: h.Curve(r.Steps), Style: LineStrip, Color: o.Palette.Curve},
	}, nil
}

// FlowerRequest plots the rose curve with the given number of petals, see
// [Rose].
type FlowerRequest struct {
	Petals int
	Steps  int
}

func (FlowerRequest) Mode() Mode { return ModeFlower }

func (r FlowerRequest) Validate(maxSteps int) error {
	if r.Petals < 1 {
		return invalid("petals", "must be a positive integer, got %d", r.Petals)
	}
	return validateSteps(r.Steps, maxSteps)
}

func (r FlowerRequest) layers(o Options) ([]Layer, error) {
	return []Layer{
		axesLayer(o),
		{Name: LayerCurve, Points: Rose{Petals: r.Petals}.Curve(r.Steps), Style: LineStrip, Color: o.Palette.Flower},
	}, nil
}
