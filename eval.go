package infix

import "strings"

// DefaultMaxDepth is the evaluation depth limit of contexts created without
// a MaxDepth option. Each function-call argument and each formula expansion
// adds one level of depth.
const DefaultMaxDepth = 1000

// formulaKey identifies a formula or builtin. Name and arity together are
// the key, so one name may carry several definitions of different arities.
type formulaKey struct {
	name  string
	arity int
}

// Context is a calculator session: the variable bindings and formula
// definitions that expressions evaluate against. It is not safe to use a
// Context concurrently.
type Context struct {
	vars     map[string]float64
	formulas map[formulaKey]string
	maxDepth int
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	depthopt int
)

func (varopt) ctxOption()   {}
func (varsopt) ctxOption()  {}
func (depthopt) ctxOption() {}

// SetVar binds a variable in the context. The name is validated as by Bind;
// an invalid name is ignored.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars binds any number of variables in the context. Invalid names are
// ignored.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// MaxDepth sets the evaluation depth limit of the context. Exceeding the
// limit surfaces as a RecursionError.
func MaxDepth(depth int) ContextOption {
	return depthopt(depth)
}

// NewContext creates a new evaluation context with no variables and no
// formulas beyond the builtins.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{maxDepth: DefaultMaxDepth}
	return ctx.Clone(opts...)
}

// Clone creates an independent copy of a context and applies options to it.
// Later changes to either context do not affect the other.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		vars:     make(map[string]float64, len(ctx.vars)),
		formulas: make(map[formulaKey]string, len(ctx.formulas)),
		maxDepth: ctx.maxDepth,
	}
	for name, val := range ctx.vars {
		n.vars[name] = val
	}
	for key, tmpl := range ctx.formulas {
		n.formulas[key] = tmpl
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.Bind(opt.name, opt.val)
		case varsopt:
			for name, val := range opt {
				n.Bind(name, val)
			}
		case depthopt:
			n.maxDepth = int(opt)
		default:
			panic("infix: unknown option type")
		}
	}
	return &n
}

// Evaluate parses and computes an infix expression against the context. On
// malformed input the error is a *SyntaxError; on a reference to an unbound
// variable or an unknown function the error is an *UndefinedError; past the
// context's depth limit it is a *RecursionError. There are no partial
// results: the expression reduces to one value or the error tells why not.
func (ctx *Context) Evaluate(expr string) (float64, error) {
	return ctx.evaluate(expr, 0)
}

// evaluate is Evaluate at a given recursion depth. Nested call arguments and
// formula expansions reenter here one level deeper.
func (ctx *Context) evaluate(expr string, depth int) (float64, error) {
	if depth > ctx.maxDepth {
		return 0, &RecursionError{Depth: depth}
	}
	if strings.TrimSpace(expr) == "" {
		return 0, &SyntaxError{Col: 1, Msg: "empty expression"}
	}
	prog, err := compile(ctx, expr, depth)
	if err != nil {
		return 0, err
	}
	return prog.run(), nil
}

// Bind sets the value of a variable, creating or overwriting it. It reports
// whether the binding took place: false means the name is not a valid
// identifier and the context is unchanged.
func (ctx *Context) Bind(name string, value float64) bool {
	if !validIdent(name) {
		return false
	}
	if ctx.vars == nil {
		ctx.vars = make(map[string]float64)
	}
	ctx.vars[name] = value
	return true
}

// Define registers a formula template under a name and arity, overwriting
// any previous definition with the same name and arity. The template may use
// the placeholders |0| through |arity-1| for the parameters; its body is not
// checked until the formula is first called. Define reports whether the
// definition took place: false means the name is not a valid identifier and
// the context is unchanged.
func (ctx *Context) Define(name string, arity int, template string) bool {
	if !validIdent(name) {
		return false
	}
	if ctx.formulas == nil {
		ctx.formulas = make(map[formulaKey]string)
	}
	ctx.formulas[formulaKey{name, arity}] = template
	return true
}

// Lookup returns the value of a bound variable.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Formula returns the template registered under a name and arity. Builtins
// are not templates and are not reported here.
func (ctx *Context) Formula(name string, arity int) (string, bool) {
	tmpl, ok := ctx.formulas[formulaKey{name, arity}]
	return tmpl, ok
}

// EvalString is a shortcut to evaluate a single expression in a fresh
// context.
func EvalString(expr string, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Evaluate(expr)
}
