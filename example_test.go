package curveplot_test

import (
	"fmt"

	"honnef.co/go/curveplot"
	"honnef.co/go/curveplot/expr"
)

func ExampleBezier_Curve() {
	b := curveplot.Bezier{curveplot.Pt(-0.5, 0), curveplot.Pt(0, 0.5), curveplot.Pt(0.5, 0)}
	for _, pt := range b.Curve(2) {
		fmt.Println(pt)
	}
	// Output:
	// (-0.5, 0)
	// (0, 0.25)
	// (0.5, 0)
}

func ExampleSample() {
	f := expr.MustCompile("x*x/2")
	for _, pt := range curveplot.Sample(f, curveplot.Domain{XMin: -2, XMax: 2}, 4) {
		fmt.Println(pt)
	}
	// Output:
	// (-1, 1)
	// (-0.5, 0.25)
	// (0, 0)
	// (0.5, 0.25)
	// (1, 1)
}

func ExampleBuild() {
	req := curveplot.HermiteRequest{
		Spec: curveplot.Hermite{
			P0: curveplot.Pt(-0.5, 0),
			P1: curveplot.Pt(0.5, 0),
			V0: curveplot.Vec(0, 1),
			V1: curveplot.Vec(0, 1),
		},
		Steps: 100,
	}
	sc, err := curveplot.Build(req, curveplot.DefaultOptions())
	if err != nil {
		panic(err)
	}
	for _, l := range sc.Layers {
		fmt.Println(l.Name, l.Style, len(l.Points))
	}
	// Output:
	// axes segments 4
	// control-points points 2
	// control-polygon segments 2
	// tangents segments 4
	// curve line-strip 101
}

func ExampleSurface_Draw() {
	var rec curveplot.Recorder
	s := curveplot.NewSurface(&rec, curveplot.DefaultOptions())
	err := s.Draw(curveplot.BezierRequest{Points: curveplot.Bezier{curveplot.Pt(0, 0)}, Steps: 10})
	fmt.Println(err)
	fmt.Println(len(rec.Submissions), rec.Flushes)
	// Output:
	// invalid input: points: minimum 2 control points, got 1
	// 0 1
}
