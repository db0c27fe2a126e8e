// Package infix implements a floating-point calculator for infix expressions.
//
// Expressions combine numeric literals (with optional scientific notation),
// bound variables, the operators "+ - * / ^", unary minus, nested groups in
// any of "()", "[]", or "{}", and function calls like "hypot(3, 4)".
// "-2^2" is the same as "-(2^2)".
//
// A Context carries the session state: variables bound with Bind and user
// formulas registered with Define. Formulas are templates over positional
// placeholders, so after
//
//	ctx.Define("f", 2, "|0|^2 + |1|^2")
//
// the call "f(3, 4)" evaluates the template with |0| = 3 and |1| = 4.
// Formulas are keyed by name and arity together, so "f" may hold a second,
// unrelated definition with a different number of parameters, and a formula
// body may call other formulas, or itself.
package infix
