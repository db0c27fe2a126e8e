package infix

import "strconv"

// SyntaxError indicates structurally invalid input: unbalanced or mismatched
// brackets, an operator where an operand belongs or vice versa, a malformed
// numeric literal, a character outside the expression grammar, an
// unterminated argument list, or a blank expression. It implements
// InputError.
type SyntaxError struct {
	// Col is the 1-based position of the offending token, or one past the
	// end of the input for errors detected at the end of the scan.
	Col int
	// Msg describes what was wrong.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// UndefinedError indicates a reference to a variable that is not bound or a
// call to a function that is neither built in nor registered.
type UndefinedError struct {
	// Name is the name that was referenced.
	Name string
	// Arity is the number of arguments of the call, if Func is set.
	Arity int
	// Func is whether the reference was a function call rather than a
	// variable.
	Func bool
}

func (err *UndefinedError) Error() string {
	if err.Func {
		return "no function " + err.Name + "#" + strconv.Itoa(err.Arity) + " defined"
	}
	return "undefined variable " + strconv.Quote(err.Name)
}

// RecursionError indicates that evaluation exceeded the context's depth
// limit, generally because a formula expands to a call of itself without a
// terminating branch.
type RecursionError struct {
	// Depth is the nesting depth at which evaluation stopped.
	Depth int
}

func (err *RecursionError) Error() string {
	return "evaluation exceeded " + strconv.Itoa(err.Depth) + " nested expressions"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of bytes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
