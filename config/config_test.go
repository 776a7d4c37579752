package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/curveplot"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Steps{Function: 500, Bezier: 100, Hermite: 100, Flower: 360}, cfg.Steps)
	assert.Equal(t, curveplot.DefaultOptions(), cfg.Options())
	assert.Equal(t, 360, cfg.Steps.For(curveplot.ModeFlower))
	assert.Equal(t, 500, cfg.Steps.For(curveplot.ModeFunction))
}

func TestDecodeTOML(t *testing.T) {
	src := `
max_steps = 2000
tangent_scale = 0.25

[steps]
flower = 720

[palette]
curve = [0.0, 0.5, 0.0, 1.0]

[canvas]
width = 320
`
	cfg, err := Decode(strings.NewReader(src), TOML)
	require.NoError(t, err)

	want := Default()
	want.MaxSteps = 2000
	want.TangentScale = 0.25
	want.Steps.Flower = 720
	want.Palette.Curve = RGBA{0, 0.5, 0, 1}
	want.Canvas.Width = 320
	assert.Equal(t, want, cfg)
	assert.Equal(t, curveplot.Color{R: 0, G: 0.5, B: 0, A: 1}, cfg.Options().Palette.Curve)
}

func TestDecodeYAML(t *testing.T) {
	src := `
steps:
  bezier: 50
palette:
  background: [0, 0, 0, 1]
canvas:
  line_width: 1.5
`
	cfg, err := Decode(strings.NewReader(src), YAML)
	require.NoError(t, err)

	want := Default()
	want.Steps.Bezier = 50
	want.Palette.Background = RGBA{0, 0, 0, 1}
	want.Canvas.LineWidth = 1.5
	assert.Equal(t, want, cfg)
}

func TestDecodeEmpty(t *testing.T) {
	for _, f := range []Format{TOML, YAML} {
		cfg, err := Decode(strings.NewReader(""), f)
		require.NoError(t, err, f)
		assert.Equal(t, Default(), cfg, f)
	}
}

func TestDecodeUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("colour = 1\n"), TOML)
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("steps:\n  spiral: 3\n"), YAML)
	assert.Error(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	for _, tc := range []struct {
		src   string
		field string
	}{
		{"max_steps = 0", "max_steps"},
		{"[steps]\nfunction = 0", "steps.function"},
		{"max_steps = 10\n[steps]\nfunction = 10\nbezier = 10\nhermite = 10\nflower = 11", "steps.flower"},
		{"tangent_scale = -1.0", "tangent_scale"},
		{"[palette]\naxes = [0.5, 0.5, 2.0, 1.0]", "palette.axes"},
		{"[canvas]\nheight = 0", "canvas"},
		{"[canvas]\npoint_radius = 0.0", "canvas.point_radius"},
	} {
		_, err := Decode(strings.NewReader(tc.src), TOML)
		var verr *curveplot.ValidationError
		if assert.True(t, errors.As(err, &verr), "%q: %v", tc.src, err) {
			assert.Equal(t, tc.field, verr.Field, tc.src)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.yml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: 5000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.MaxSteps)
	assert.Equal(t, 5000, cfg.Options().MaxSteps)

	_, err = Load(filepath.Join(dir, "plot.json"))
	assert.ErrorContains(t, err, "unsupported file extension")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("max_steps = -3\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, curveplot.ErrValidation)
	assert.ErrorContains(t, err, bad)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.toml": TOML,
		"a.TOML": TOML,
		"a.yaml": YAML,
		"b.yml":  YAML,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatOf("config")
	assert.Error(t, err)
}
