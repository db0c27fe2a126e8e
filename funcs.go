package infix

import (
	"math"
	"strconv"
	"strings"
)

// builtin is a fixed numeric operation. Arguments are already evaluated and
// their count matches the arity of the catalog key.
type builtin func(args []float64) float64

func monadic(f func(float64) float64) builtin {
	return func(args []float64) float64 { return f(args[0]) }
}

func dyadic(f func(float64, float64) float64) builtin {
	return func(args []float64) float64 { return f(args[0], args[1]) }
}

// builtins is the catalog of predefined functions. Builtins shadow user
// formulas of the same name and arity and cannot be redefined.
var builtins = map[formulaKey]builtin{
	{"sin", 1}:  monadic(math.Sin),
	{"cos", 1}:  monadic(math.Cos),
	{"tan", 1}:  monadic(math.Tan),
	{"asin", 1}: monadic(math.Asin),
	{"acos", 1}: monadic(math.Acos),
	{"atan", 1}: monadic(math.Atan),

	{"exp", 1}:   monadic(math.Exp),
	{"expm1", 1}: monadic(math.Expm1),
	{"log", 1}:   monadic(math.Log),
	{"log10", 1}: monadic(math.Log10),
	{"log1p", 1}: monadic(math.Log1p),
	{"log", 2}: dyadic(func(x, base float64) float64 {
		return math.Log(x) / math.Log(base)
	}),

	{"sqrt", 1}:  monadic(math.Sqrt),
	{"cbrt", 1}:  monadic(math.Cbrt),
	{"hypot", 2}: dyadic(math.Hypot),

	{"signum", 1}: monadic(signum),
}

// signum returns -1, 0, or 1 by the sign of x. NaN and signed zeros pass
// through unchanged.
func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// call resolves a function call: first against the builtin catalog, then
// against the registered formulas, both keyed by name and argument count. A
// formula call substitutes the arguments into the template and evaluates the
// result one recursion level deeper.
func (ctx *Context) call(name string, params []float64, depth int) (float64, error) {
	key := formulaKey{name, len(params)}
	if fn, ok := builtins[key]; ok {
		return fn(params), nil
	}
	tmpl, ok := ctx.formulas[key]
	if !ok {
		return 0, &UndefinedError{Name: name, Arity: len(params), Func: true}
	}
	return ctx.evaluate(expand(tmpl, params), depth+1)
}

// expand replaces each placeholder |i| in a formula template with the text
// of the i-th argument. The text is the shortest decimal form that parses
// back to exactly the same value, and it is parenthesized so that negative
// arguments keep their sign through the surrounding expression.
func expand(tmpl string, params []float64) string {
	for i, v := range params {
		ph := "|" + strconv.Itoa(i) + "|"
		text := "(" + strconv.FormatFloat(v, 'g', -1, 64) + ")"
		tmpl = strings.ReplaceAll(tmpl, ph, text)
	}
	return tmpl
}
