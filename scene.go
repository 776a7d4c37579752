package curveplot

import "fmt"

// Style tells a [Renderer] how to connect the points of a [SampleSet].
type Style uint8

const (
	// LineStrip connects consecutive points into one polyline.
	LineStrip Style = iota
	// PointCloud draws every point on its own.
	PointCloud
	// Segments draws a line between points 2i and 2i+1. A trailing odd
	// point is ignored.
	Segments
)

func (s Style) String() string {
	switch s {
	case LineStrip:
		return "line-strip"
	case PointCloud:
		return "points"
	case Segments:
		return "segments"
	default:
		return fmt.Sprintf("Style(%d)", s)
	}
}

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Palette holds the colors of every layer a [Scene] may contain.
type Palette struct {
	Background     Color
	Axes           Color
	Function       Color
	ControlPoints  Color
	ControlPolygon Color
	Tangents       Color
	Curve          Color
	Flower         Color
}

// DefaultPalette returns the standard colors: gray axes, a blue function
// graph, red control points and polygons, purple tangents, green Bézier and
// Hermite curves and a light red flower, on white.
func DefaultPalette() Palette {
	return Palette{
		Background:     Color{1, 1, 1, 1},
		Axes:           Color{0.5, 0.5, 0.5, 1},
		Function:       Color{0, 0, 1, 1},
		ControlPoints:  Color{1, 0, 0, 1},
		ControlPolygon: Color{1, 0, 0, 1},
		Tangents:       Color{0.5, 0, 0.5, 1},
		Curve:          Color{0, 0.8, 0, 1},
		Flower:         Color{1, 0.2, 0.2, 1},
	}
}

// Layer names.
const (
	LayerAxes           = "axes"
	LayerControlPoints  = "control-points"
	LayerControlPolygon = "control-polygon"
	LayerTangents       = "tangents"
	LayerCurve          = "curve"
)

// Layer is one draw call: a sample set with its style and color.
type Layer struct {
	Name   string
	Points SampleSet
	Style  Style
	Color  Color
}

// Scene is the ordered list of layers produced for one request, back to
// front.
type Scene struct {
	Mode   Mode
	Layers []Layer
}

// Layer returns the first layer with the given name.
func (sc Scene) Layer(name string) (Layer, bool) {
	for _, l := range sc.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Options configures how requests are turned into scenes.
type Options struct {
	Palette Palette
	// TangentScale is the factor Hermite tangents are drawn with.
	TangentScale float64
	// MaxSteps is the largest accepted step count. Zero means
	// DefaultMaxSteps.
	MaxSteps int
}

// DefaultOptions returns the default palette, a tangent scale of
// DefaultTangentScale and a step limit of DefaultMaxSteps.
func DefaultOptions() Options {
	return Options{
		Palette:      DefaultPalette(),
		TangentScale: DefaultTangentScale,
		MaxSteps:     DefaultMaxSteps,
	}
}

func (o Options) maxSteps() int {
	if o.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return o.MaxSteps
}

func axesLayer(o Options) Layer {
	return Layer{Name: LayerAxes, Points: Axes(), Style: Segments, Color: o.Palette.Axes}
}

// Build validates req and evaluates its curve. The resulting scene always
// starts with the axes, followed by the layers of the request's mode:
//
//   - function: the graph
//   - bezier: control points, control polygon, curve
//   - hermite: control points, the chord between them, tangents, curve
//   - flower: the rose
//
// Validation failures are returned as [*ValidationError], expressions that
// do not compile as [*expr.CompileError]. Nothing is evaluated if
// validation fails.
func Build(req Request, o Options) (Scene, error) {
	if err := req.Validate(o.maxSteps()); err != nil {
		return Scene{}, err
	}
	layers, err := req.layers(o)
	if err != nil {
		return Scene{}, err
	}
	return Scene{Mode: req.Mode(), Layers: layers}, nil
}
