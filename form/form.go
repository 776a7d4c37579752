// Package form turns loosely typed input, as submitted by an HTML form, a
// JSON body or a widget toolkit, into curveplot requests.
//
// Numbers may arrive as Go numbers or as strings; they are coerced with
// github.com/spf13/cast. Coercion failures are reported as
// [*curveplot.ValidationError] naming the offending key. Range checks are
// left to [curveplot.Build].
package form

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"honnef.co/go/curveplot"
	"honnef.co/go/curveplot/config"
)

// Values maps input names to their raw values.
type Values map[string]any

// Input keys.
const (
	KeyExpr   = "expr"
	KeyXMin   = "xmin"
	KeyXMax   = "xmax"
	KeySteps  = "steps"
	KeyPoints = "points"
	KeyPetals = "petals"
)

// HermiteKeys are the keys of the eight Hermite inputs.
var HermiteKeys = [8]string{"p0x", "p0y", "v0x", "v0y", "p1x", "p1y", "v1x", "v1y"}

// ParseMode maps a tab or mode name to a mode. It ignores case, surrounding
// space and a "-tab" suffix, so "Bezier" and "bezier-tab" both select
// [curveplot.ModeBezier].
func ParseMode(s string) (curveplot.Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	return curveplot.ParseMode(strings.TrimSuffix(s, "-tab"))
}

// Decode builds the request for mode m from v. Steps missing from v are
// taken from steps.
func Decode(m curveplot.Mode, v Values, steps config.Steps) (curveplot.Request, error) {
	n, err := v.intOr(KeySteps, steps.For(m))
	if err != nil {
		return nil, err
	}
	switch m {
	case curveplot.ModeFunction:
		return decodeFunction(v, n)
	case curveplot.ModeBezier:
		return decodeBezier(v, n)
	case curveplot.ModeHermite:
		return decodeHermite(v, n)
	case curveplot.ModeFlower:
		petals, err := v.int(KeyPetals)
		if err != nil {
			return nil, err
		}
		return curveplot.FlowerRequest{Petals: petals, Steps: n}, nil
	default:
		return nil, invalid("mode", "unknown mode %s", m)
	}
}

func decodeFunction(v Values, steps int) (curveplot.Request, error) {
	src, err := v.string(KeyExpr)
	if err != nil {
		return nil, err
	}
	xmin, err := v.float(KeyXMin)
	if err != nil {
		return nil, err
	}
	xmax, err := v.float(KeyXMax)
	if err != nil {
		return nil, err
	}
	return curveplot.FunctionRequest{
		Expr:   src,
		Domain: curveplot.Domain{XMin: xmin, XMax: xmax},
		Steps:  steps,
	}, nil
}

// decodeBezier skips control point rows that do not parse, like a form that
// ignores half filled rows. The remaining points still have to satisfy
// the minimum enforced by validation.
func decodeBezier(v Values, steps int) (curveplot.Request, error) {
	raw, ok := v[KeyPoints]
	if !ok || raw == nil {
		return curveplot.BezierRequest{Steps: steps}, nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalid(KeyPoints, "must be a list, got %T", raw)
	}
	var pts curveplot.Bezier
	for i := range rv.Len() {
		pt, err := parsePoint(rv.Index(i).Interface())
		if err != nil {
			curveplot.Logger().Debug("form: skipped control point", "row", i, "err", err)
			continue
		}
		pts = append(pts, pt)
	}
	return curveplot.BezierRequest{Points: pts, Steps: steps}, nil
}

// parsePoint accepts [x, y] pairs, maps with x and y keys and "x,y"
// strings.
func parsePoint(row any) (curveplot.Point, error) {
	var x, y any
	switch r := row.(type) {
	case string:
		parts := strings.Split(r, ",")
		if len(parts) != 2 {
			return curveplot.Point{}, fmt.Errorf("want \"x,y\", got %q", r)
		}
		x, y = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	case curveplot.Point:
		return r, nil
	default:
		if m, err := cast.ToStringMapE(row); err == nil {
			x, y = m["x"], m["y"]
			break
		}
		rv := reflect.ValueOf(row)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != 2 {
			return curveplot.Point{}, fmt.Errorf("unsupported point %v", row)
		}
		x, y = rv.Index(0).Interface(), rv.Index(1).Interface()
	}
	fx, err := toFloat(x)
	if err != nil {
		return curveplot.Point{}, err
	}
	fy, err := toFloat(y)
	if err != nil {
		return curveplot.Point{}, err
	}
	return curveplot.Pt(fx, fy), nil
}

func decodeHermite(v Values, steps int) (curveplot.Request, error) {
	var f [8]float64
	for i, key := range HermiteKeys {
		var err error
		if f[i], err = v.float(key); err != nil {
			return nil, err
		}
	}
	return curveplot.HermiteRequest{
		Spec: curveplot.Hermite{
			P0: curveplot.Pt(f[0], f[1]),
			V0: curveplot.Vec(f[2], f[3]),
			P1: curveplot.Pt(f[4], f[5]),
			V1: curveplot.Vec(f[6], f[7]),
		},
		Steps: steps,
	}, nil
}

var errMissing = errors.New("missing number")

// toFloat differs from cast.ToFloat64E in that nil and blank strings are
// errors rather than zero.
func toFloat(x any) (float64, error) {
	if x == nil {
		return 0, errMissing
	}
	if s, ok := x.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, errMissing
		}
		x = s
	}
	return cast.ToFloat64E(x)
}

func (v Values) float(key string) (float64, error) {
	f, err := toFloat(v[key])
	if err != nil {
		return 0, invalid(key, "not a number: %v", err)
	}
	return f, nil
}

// int accepts anything float accepts and truncates it toward zero, so
// "08" is 8 and "3.7" is 3.
func (v Values) int(key string) (int, error) {
	f, err := toFloat(v[key])
	if err != nil {
		return 0, invalid(key, "not an integer: %v", err)
	}
	f = math.Trunc(f)
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, invalid(key, "integer out of range: %v", v[key])
	}
	return int(f), nil
}

func (v Values) intOr(key string, def int) (int, error) {
	if x, ok := v[key]; !ok || x == nil || x == "" {
		return def, nil
	}
	return v.int(key)
}

func (v Values) string(key string) (string, error) {
	x, ok := v[key]
	if !ok || x == nil {
		return "", invalid(key, "missing")
	}
	s, err := cast.ToStringE(x)
	if err != nil {
		return "", invalid(key, "not a string: %v", err)
	}
	return s, nil
}

func invalid(field, format string, args ...any) error {
	return &curveplot.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
