// Package config loads plotting settings from TOML or YAML files.
//
// A file only needs to mention the settings it changes; everything else
// keeps the value from [Default]. Unknown keys are an error.
//
//	max_steps = 20000
//
//	[steps]
//	flower = 720
//
//	[palette]
//	curve = [0.0, 0.5, 0.0, 1.0]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/curveplot"
)

// Format is the encoding of a configuration file.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("config: unsupported file extension %q", filepath.Ext(path))
	}
}

// Steps holds the default step count of every mode.
type Steps struct {
	Function int `toml:"function" yaml:"function"`
	Bezier   int `toml:"bezier" yaml:"bezier"`
	Hermite  int `toml:"hermite" yaml:"hermite"`
	Flower   int `toml:"flower" yaml:"flower"`
}

// For returns the step count configured for m.
func (s Steps) For(m curveplot.Mode) int {
	switch m {
	case curveplot.ModeBezier:
		return s.Bezier
	case curveplot.ModeHermite:
		return s.Hermite
	case curveplot.ModeFlower:
		return s.Flower
	default:
		return s.Function
	}
}

// RGBA is a color as red, green, blue and alpha in [0, 1].
type RGBA [4]float64

func (c RGBA) Color() curveplot.Color {
	return curveplot.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func fromColor(c curveplot.Color) RGBA { return RGBA{c.R, c.G, c.B, c.A} }

type Palette struct {
	Background     RGBA `toml:"background" yaml:"background"`
	Axes           RGBA `toml:"axes" yaml:"axes"`
	Function       RGBA `toml:"function" yaml:"function"`
	ControlPoints  RGBA `toml:"control_points" yaml:"control_points"`
	ControlPolygon RGBA `toml:"control_polygon" yaml:"control_polygon"`
	Tangents       RGBA `toml:"tangents" yaml:"tangents"`
	Curve          RGBA `toml:"curve" yaml:"curve"`
	Flower         RGBA `toml:"flower" yaml:"flower"`
}

func (p Palette) colors() []struct {
	name string
	c    RGBA
} {
	return []struct {
		name string
		c    RGBA
	}{
		{"background", p.Background},
		{"axes", p.Axes},
		{"function", p.Function},
		{"control_points", p.ControlPoints},
		{"control_polygon", p.ControlPolygon},
		{"tangents", p.Tangents},
		{"curve", p.Curve},
		{"flower", p.Flower},
	}
}

// Canvas configures the raster renderer.
type Canvas struct {
	Width       int     `toml:"width" yaml:"width"`
	Height      int     `toml:"height" yaml:"height"`
	LineWidth   float64 `toml:"line_width" yaml:"line_width"`
	PointRadius float64 `toml:"point_radius" yaml:"point_radius"`
}

type Config struct {
	Steps        Steps   `toml:"steps" yaml:"steps"`
	MaxSteps     int     `toml:"max_steps" yaml:"max_steps"`
	TangentScale float64 `toml:"tangent_scale" yaml:"tangent_scale"`
	Palette      Palette `toml:"palette" yaml:"palette"`
	Canvas       Canvas  `toml:"canvas" yaml:"canvas"`
}

// Default returns the built-in settings.
func Default() Config {
	p := curveplot.DefaultPalette()
	return Config{
		Steps:        Steps{Function: 500, Bezier: 100, Hermite: 100, Flower: 360},
		MaxSteps:     curveplot.DefaultMaxSteps,
		TangentScale: curveplot.DefaultTangentScale,
		Palette: Palette{
			Background:     fromColor(p.Background),
			Axes:           fromColor(p.Axes),
			Function:       fromColor(p.Function),
			ControlPoints:  fromColor(p.ControlPoints),
			ControlPolygon: fromColor(p.ControlPolygon),
			Tangents:       fromColor(p.Tangents),
			Curve:          fromColor(p.Curve),
			Flower:         fromColor(p.Flower),
		},
		Canvas: Canvas{Width: 800, Height: 800, LineWidth: 2, PointRadius: 4},
	}
}

// Load reads the file at path on top of [Default] and validates the
// result. The format is chosen by the file extension.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads settings in the given format on top of [Default] and
// validates the result. Empty input yields the defaults.
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown format %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is in range. Problems are reported as
// [*curveplot.ValidationError].
func (c Config) Validate() error {
	if c.MaxSteps < 1 {
		return invalid("max_steps", "must be at least 1, got %d", c.MaxSteps)
	}
	for _, s := range []struct {
		name string
		n    int
	}{
		{"steps.function", c.Steps.Function},
		{"steps.bezier", c.Steps.Bezier},
		{"steps.hermite", c.Steps.Hermite},
		{"steps.flower", c.Steps.Flower},
	} {
		if s.n < 1 || s.n > c.MaxSteps {
			return invalid(s.name, "must be between 1 and %d, got %d", c.MaxSteps, s.n)
		}
	}
	if !(c.TangentScale > 0) {
		return invalid("tangent_scale", "must be positive, got %g", c.TangentScale)
	}
	for _, pc := range c.Palette.colors() {
		for _, v := range pc.c {
			if !(v >= 0 && v <= 1) {
				return invalid("palette."+pc.name, "components must be in [0, 1], got %v", pc.c)
			}
		}
	}
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return invalid("canvas", "size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if !(c.Canvas.LineWidth > 0) {
		return invalid("canvas.line_width", "must be positive, got %g", c.Canvas.LineWidth)
	}
	if !(c.Canvas.PointRadius > 0) {
		return invalid("canvas.point_radius", "must be positive, got %g", c.Canvas.PointRadius)
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return &curveplot.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Options returns the settings that control scene building.
func (c Config) Options() curveplot.Options {
	return curveplot.Options{
		Palette: curveplot.Palette{
			Background:     c.Palette.Background.Color(),
			Axes:           c.Palette.Axes.Color(),
			Function:       c.Palette.Function.Color(),
			ControlPoints:  c.Palette.ControlPoints.Color(),
			ControlPolygon: c.Palette.ControlPolygon.Color(),
			Tangents:       c.Palette.Tangents.Color(),
			Curve:          c.Palette.Curve.Color(),
			Flower:         c.Palette.Flower.Color(),
		},
		TangentScale: c.TangentScale,
		MaxSteps:     c.MaxSteps,
	}
}
