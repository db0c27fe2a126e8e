package infix

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ahrtr/gocontainer/stack"
)

// expectation is the compiler's token-sequencing state. Exactly one state
// holds after each token, which makes every illegal token sequence a single
// table check.
type expectation int8

const (
	// expectPrefix admits an operand, an opening bracket, or a unary sign.
	// This is the state at the start of the expression and after an opening
	// bracket.
	expectPrefix expectation = iota
	// expectOperand admits an operand or an opening bracket, but no sign.
	// This is the state after any operator, unary signs included, so "2+-3"
	// and "--2" are rejected.
	expectOperand
	// expectBinary admits a binary operator, or a closing bracket while
	// inside one. This is the state after a complete operand.
	expectBinary
)

// Operator sets flushed from the stack before pushing a new operator. An
// operator pops everything of equal or higher precedence; "^" pops nothing,
// so chains of it stay stacked and reduce right to left at flush time.
const (
	mulFlush  = "^@*/"
	addFlush  = "^@*/+-"
	negFlush  = "^"
	brackets  = "([{"
	cbrackets = ")]}"
)

// compile scans src left to right once and produces its postfix program.
// Function-call arguments are evaluated during the scan by recursing into
// ctx, so the emitted program contains only literal operands and operators.
func compile(ctx *Context, src string, depth int) (*program, error) {
	prog := newProgram()
	ops := stack.New()
	// The sentinel terminates operator flushes in place of bounds checks.
	ops.Push(opcode('('))
	state := expectPrefix
	level := 0
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '(' || c == '[' || c == '{':
			if state == expectBinary {
				return nil, &SyntaxError{Col: i + 1, Msg: "unexpected opening bracket " + strconv.Quote(string(c))}
			}
			ops.Push(opcode(c))
			level++
			state = expectPrefix
			i++
		case c == ')' || c == ']' || c == '}':
			if state != expectBinary || level == 0 {
				return nil, &SyntaxError{Col: i + 1, Msg: "unexpected closing bracket " + strconv.Quote(string(c))}
			}
			open := flushBracket(ops, prog)
			if cbrackets[strings.IndexByte(brackets, byte(open))] != c {
				return nil, &SyntaxError{Col: i + 1, Msg: "mismatched bracket: " + open.String() + "expr" + string(c)}
			}
			level--
			state = expectBinary
			i++
		case isNumChar(c):
			if state == expectBinary {
				return nil, &SyntaxError{Col: i + 1, Msg: "unexpected number"}
			}
			j := scanNumber(src, i)
			v, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, &SyntaxError{Col: i + 1, Msg: "malformed number " + strconv.Quote(src[i:j])}
			}
			prog.operand(v)
			state = expectBinary
			i = j
		case isIdentStart(c):
			if state == expectBinary {
				return nil, &SyntaxError{Col: i + 1, Msg: "unexpected name"}
			}
			j := i + 1
			for j < len(src) && isIdentChar(src[j]) {
				j++
			}
			name := src[i:j]
			if j < len(src) && src[j] == '(' {
				args, end, err := sliceArgs(src, j)
				if err != nil {
					return nil, err
				}
				params := make([]float64, len(args))
				for k, arg := range args {
					v, err := ctx.evaluate(arg, depth+1)
					if err != nil {
						return nil, err
					}
					params[k] = v
				}
				v, err := ctx.call(name, params, depth)
				if err != nil {
					return nil, err
				}
				prog.operand(v)
				j = end
			} else {
				v, ok := ctx.vars[name]
				if !ok {
					return nil, &UndefinedError{Name: name}
				}
				prog.operand(v)
			}
			state = expectBinary
			i = j
		case c == '^':
			if state != expectBinary {
				return nil, &SyntaxError{Col: i + 1, Msg: `unexpected operator "^"`}
			}
			ops.Push(opPow)
			state = expectOperand
			i++
		case c == '*' || c == '/':
			if state != expectBinary {
				return nil, &SyntaxError{Col: i + 1, Msg: "unexpected operator " + strconv.Quote(string(c))}
			}
			flushOps(ops, prog, mulFlush)
			ops.Push(opcode(c))
			state = expectOperand
			i++
		case c == '+' || c == '-':
			switch state {
			case expectBinary:
				flushOps(ops, prog, addFlush)
				ops.Push(opcode(c))
			case expectPrefix:
				// A negative prefix binds looser than exponentiation, so any
				// pending "^" reduces first and "-2^2" is -(2^2).
				if c == '-' {
					flushOps(ops, prog, negFlush)
					ops.Push(opNeg)
				}
				// A positive prefix is a no-op.
			default:
				return nil, &SyntaxError{Col: i + 1, Msg: "unexpected sign " + strconv.Quote(string(c))}
			}
			state = expectOperand
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		default:
			return nil, &SyntaxError{Col: i + 1, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
	}
	if level != 0 {
		return nil, &SyntaxError{Col: len(src) + 1, Msg: "unbalanced brackets"}
	}
	if state != expectBinary {
		return nil, &SyntaxError{Col: len(src) + 1, Msg: "unexpected end of expression"}
	}
	flushBracket(ops, prog) // down to the sentinel
	return prog, nil
}

// scanNumber returns the end of the numeric literal starting at i: a greedy
// run of digits and dots, then optionally an exponent marker with an
// optional sign and a further run. Validity is left to strconv.
func scanNumber(src string, i int) int {
	j := i + 1
	for j < len(src) && isNumChar(src[j]) {
		j++
	}
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		j++
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		for j < len(src) && isNumChar(src[j]) {
			j++
		}
	}
	return j
}

// sliceArgs slices the argument substrings of a call whose opening
// parenthesis is at src[open]. Only parentheses nest within an argument
// list, and commas split arguments at nesting depth one. end is the index
// one past the closing parenthesis.
func sliceArgs(src string, open int) (args []string, end int, err error) {
	level := 1
	start := open + 1
	k := start
	for k < len(src) && level != 0 {
		switch src[k] {
		case '(':
			level++
		case ')':
			level--
		case ',':
			if level == 1 {
				args = append(args, src[start:k])
				start = k + 1
			}
		}
		k++
	}
	if level != 0 {
		return nil, 0, &SyntaxError{Col: open + 1, Msg: "unterminated argument list"}
	}
	args = append(args, src[start:k-1])
	return args, k, nil
}

// flushOps moves operators in set from the stack to the program until the
// stack top is anything else. The bracket sentinel below every operator
// bounds the loop.
func flushOps(ops stack.Interface, prog *program, set string) {
	for {
		op := ops.Peek().(opcode)
		if !strings.ContainsRune(set, rune(op)) {
			return
		}
		ops.Pop()
		prog.emit(op)
	}
}

// flushBracket pops operators to the program until an opening bracket is
// popped, and returns that bracket.
func flushBracket(ops stack.Interface, prog *program) opcode {
	for {
		op := ops.Pop().(opcode)
		if strings.ContainsRune(brackets, rune(op)) {
			return op
		}
		prog.emit(op)
	}
}
