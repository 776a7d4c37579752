package expr

import (
	"fmt"
	"math"
	"slices"

	exprlang "github.com/expr-lang/expr"
	"github.com/spf13/cast"
)

// builtin is an allow-listed function callable from expressions.
type builtin struct {
	name  string
	arity int
	fn    func(args []float64) (float64, error)
}

func unary(fn func(float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) { return fn(args[0]), nil }
}

func binary(fn func(a, b float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) { return fn(args[0], args[1]), nil }
}

// guarded wraps fn so that arguments outside its domain, as decided by ok,
// fail with ErrDomain instead of producing NaN.
func guarded(fn func(float64) float64, ok func(float64) bool) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if !ok(args[0]) {
			return 0, ErrDomain
		}
		return fn(args[0]), nil
	}
}

func nonNegative(v float64) bool { return v >= 0 }
func positive(v float64) bool    { return v > 0 }
func unitRange(v float64) bool   { return v >= -1 && v <= 1 }

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		// Preserves NaN and signed zero.
		return v
	}
}

var builtins = map[string]*builtin{}

func init() {
	for _, b := range []*builtin{
		{"sin", 1, unary(math.Sin)},
		{"cos", 1, unary(math.Cos)},
		{"tan", 1, unary(math.Tan)},
		{"asin", 1, guarded(math.Asin, unitRange)},
		{"acos", 1, guarded(math.Acos, unitRange)},
		{"atan", 1, unary(math.Atan)},
		{"atan2", 2, binary(math.Atan2)},
		{"sinh", 1, unary(math.Sinh)},
		{"cosh", 1, unary(math.Cosh)},
		{"tanh", 1, unary(math.Tanh)},
		{"sqrt", 1, guarded(math.Sqrt, nonNegative)},
		{"cbrt", 1, unary(math.Cbrt)},
		{"abs", 1, unary(math.Abs)},
		{"exp", 1, unary(math.Exp)},
		{"log", 1, guarded(math.Log, positive)},
		{"log2", 1, guarded(math.Log2, positive)},
		{"log10", 1, guarded(math.Log10, positive)},
		{"floor", 1, unary(math.Floor)},
		{"ceil", 1, unary(math.Ceil)},
		{"round", 1, unary(math.Round)},
		{"trunc", 1, unary(math.Trunc)},
		{"sign", 1, unary(sign)},
		{"min", 2, binary(math.Min)},
		{"max", 2, binary(math.Max)},
		{"mod", 2, binary(math.Mod)},
		{"pow", 2, binary(math.Pow)},
		{"hypot", 2, binary(math.Hypot)},
	} {
		builtins[b.name] = b
	}
}

// callError is returned from inside the expression VM by a failing
// function. Func.Eval turns it into an EvaluationError.
type callError struct {
	fn  string
	err error
}

func (e *callError) Error() string { return e.fn + ": " + e.err.Error() }
func (e *callError) Unwrap() error { return e.err }

var (
	unarySig  = new(func(float64) float64)
	binarySig = new(func(float64, float64) float64)
)

// option registers b with the expression compiler. The declared signature
// lets the compiler reject wrong argument counts and convert integer
// arguments to float64.
func (b *builtin) option() exprlang.Option {
	sig := any(unarySig)
	if b.arity == 2 {
		sig = binarySig
	}
	call := func(params ...any) (any, error) {
		if len(params) != b.arity {
			return nil, &callError{b.name, fmt.Errorf("expects %d argument(s), got %d", b.arity, len(params))}
		}
		var buf [2]float64
		args := buf[:0]
		for _, p := range params {
			v, err := cast.ToFloat64E(p)
			if err != nil {
				return nil, &callError{b.name, err}
			}
			args = append(args, v)
		}
		v, err := b.fn(args)
		if err != nil {
			return nil, &callError{b.name, err}
		}
		return v, nil
	}
	return exprlang.Function(b.name, call, sig)
}

// env is the only state visible to expressions. Field tags give the
// names expressions use.
type env struct {
	X  float64 `expr:"x"`
	Pi float64 `expr:"pi"`
	PI float64 `expr:"PI"`
	E  float64 `expr:"e"`
	E2 float64 `expr:"E"`
}

func newEnv(x float64) env {
	return env{X: x, Pi: math.Pi, PI: math.Pi, E: math.E, E2: math.E}
}

// constants lists the names besides Variable that expressions may use
// without calling them.
var constants = map[string]float64{
	"pi": math.Pi,
	"PI": math.Pi,
	"e":  math.E,
	"E":  math.E,
}

// Variable is the name of the free variable of every expression.
const Variable = "x"

// Functions returns the names of the functions expressions may call, in
// sorted order.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
