// Package expr compiles arithmetic expressions in the single variable x into
// functions that can be evaluated at arbitrary points.
//
// Expressions are compiled with github.com/expr-lang/expr against a fixed
// environment: the variable x, the constants pi, PI, e and E, and the
// allow-listed functions reported by [Functions]. The language's own
// builtins are disabled. Operators bind, from loosest to tightest, as
//
//	sum      a + b, a - b
//	product  a * b, a / b, a % b   (% on integers only, see mod)
//	unary    +a, -a
//	power    a ^ b, a ** b         (right associative)
//
// Names may carry a "Math." qualifier, so Math.sin(x) is the same as sin(x).
//
// Arithmetic follows IEEE 754, so 1/x evaluates to +Inf at x = 0. Functions
// called outside of their domain, such as sqrt(-1) or log(0), fail with an
// [*EvaluationError] wrapping [ErrDomain].
package expr

import (
	"errors"
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"
)

var (
	// ErrCompile is wrapped by every [CompileError].
	ErrCompile = errors.New("compile error")
	// ErrEval is wrapped by every [EvaluationError].
	ErrEval = errors.New("eval error")
	// ErrDomain signals a function argument outside of the function's
	// domain.
	ErrDomain = errors.New("argument outside of domain")
)

// maxDepth bounds the nesting of parentheses.
const maxDepth = 256

// CompileError reports an expression that could not be compiled.
type CompileError struct {
	Source string
	// Pos is the byte offset of the offending token in Source, or -1 if
	// the error is not tied to a position.
	Pos int
	Msg string
	// Err is the underlying error, if any, such as the failure of the
	// evaluation at x = 0 performed by [Compile].
	Err error
}

func (e *CompileError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrCompile.Error())
	if e.Pos >= 0 {
		fmt.Fprintf(&sb, " at offset %d", e.Pos)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *CompileError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCompile}
	}
	return []error{ErrCompile, e.Err}
}

// EvaluationError reports a failure to evaluate an expression at a single
// point.
type EvaluationError struct {
	X float64
	// Func is the name of the function that failed, if any.
	Func string
	Err  error
}

func (e *EvaluationError) Error() string {
	if e.Func == "" {
		return fmt.Sprintf("%s at x=%g: %s", ErrEval, e.X, e.Err)
	}
	return fmt.Sprintf("%s at x=%g: %s: %s", ErrEval, e.X, e.Func, e.Err)
}

func (e *EvaluationError) Unwrap() []error {
	return []error{ErrEval, e.Err}
}

// Func is a compiled expression. It is immutable and safe for concurrent
// use.
type Func struct {
	src     string
	norm    string
	program *vm.Program
}

// Compile compiles src and resolves every name in it. It then evaluates the
// expression once at x = 0 to surface expressions that cannot be evaluated
// at all; failures of that call other than domain errors are reported as a
// [*CompileError].
func Compile(src string) (*Func, error) {
	return compile(src, builtins)
}

func compile(src string, table map[string]*builtin) (f *Func, err error) {
	if strings.TrimSpace(src) == "" {
		return nil, &CompileError{Source: src, Pos: len(src), Msg: "empty expression"}
	}
	if pos := tooDeep(src); pos >= 0 {
		return nil, &CompileError{Source: src, Pos: pos, Msg: "expression nested too deeply"}
	}
	norm, offs := unqualify(src, table)

	opts := []exprlang.Option{
		exprlang.Env(env{}),
		exprlang.DisableAllBuiltins(),
		exprlang.AsFloat64(),
	}
	for _, b := range table {
		opts = append(opts, b.option())
	}

	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = &CompileError{Source: src, Pos: -1, Msg: fmt.Sprint(r)}
		}
	}()
	program, err := exprlang.Compile(norm, opts...)
	if err != nil {
		return nil, compileError(src, norm, offs, err)
	}
	f = &Func{src: src, norm: norm, program: program}
	if _, err := f.Eval(0); err != nil && !errors.Is(err, ErrDomain) {
		return nil, &CompileError{Source: src, Pos: -1, Msg: "evaluation at x=0 failed", Err: err}
	}
	return f, nil
}

// compileError converts an error from the expression compiler, whose
// positions refer to norm, into a CompileError positioned in src.
func compileError(src, norm string, offs []int, err error) *CompileError {
	cerr := &CompileError{Source: src, Pos: -1, Msg: err.Error()}
	var ferr *file.Error
	if !errors.As(err, &ferr) {
		return cerr
	}
	cerr.Msg = ferr.Message
	if pos := byteOffset(norm, ferr.Line, ferr.Column); pos >= 0 {
		cerr.Pos = offs[pos]
	}
	return cerr
}

// byteOffset returns the byte offset in s of the given 1-based line and
// 0-based rune column, or -1 if s has no such position.
func byteOffset(s string, line, col int) int {
	if line < 1 || col < 0 {
		return -1
	}
	l, c := 1, 0
	for i, r := range s {
		if l == line && c == col {
			return i
		}
		if r == '\n' {
			if l == line {
				return -1
			}
			l++
			c = 0
		} else if l == line {
			c++
		}
	}
	if l == line && c == col {
		return len(s)
	}
	return -1
}

// tooDeep returns the offset of the first parenthesis nested deeper than
// maxDepth, or -1.
func tooDeep(src string) int {
	depth := 0
	for i := range len(src) {
		switch src[i] {
		case '(':
			depth++
			if depth > maxDepth {
				return i
			}
		case ')':
			depth--
		}
	}
	return -1
}

// MustCompile is like [Compile] but panics if the expression cannot be
// compiled.
func MustCompile(src string) *Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// Eval evaluates the expression at x. The result may be NaN or infinite.
func (f *Func) Eval(x float64) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			y = 0
			err = &EvaluationError{X: x, Err: fmt.Errorf("%v", r)}
		}
	}()
	out, err := exprlang.Run(f.program, newEnv(x))
	if err != nil {
		var cerr *callError
		if errors.As(err, &cerr) {
			return 0, &EvaluationError{X: x, Func: cerr.fn, Err: cerr.err}
		}
		return 0, &EvaluationError{X: x, Err: err}
	}
	y, err = cast.ToFloat64E(out)
	if err != nil {
		return 0, &EvaluationError{X: x, Err: err}
	}
	return y, nil
}

// Source returns the expression as it was passed to [Compile].
func (f *Func) Source() string { return f.src }

// String returns the compiled form of the expression, with "Math."
// qualifiers removed.
func (f *Func) String() string { return f.norm }
