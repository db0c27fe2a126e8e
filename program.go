package infix

import (
	"math"
	"strings"

	"github.com/ahrtr/gocontainer/stack"
	"github.com/edwingeng/deque"
)

// opcode is one instruction of a compiled postfix program. The values mirror
// the source characters, except opOperand, which stands for the next queued
// operand, and opNeg, which is the internal unary negation operator.
type opcode byte

const (
	opOperand opcode = 0
	opNeg     opcode = '@'
	opAdd     opcode = '+'
	opSub     opcode = '-'
	opMul     opcode = '*'
	opDiv     opcode = '/'
	opPow     opcode = '^'
)

func (op opcode) String() string {
	if op == opOperand {
		return "operand"
	}
	return string(byte(op))
}

// program is a compiled expression: a postfix opcode stream and the queue of
// operand values consumed by its opOperand instructions, in emission order.
// A program is produced by compile and run exactly once.
type program struct {
	code     deque.Deque
	operands deque.Deque
}

func newProgram() *program {
	return &program{
		code:     deque.NewDeque(),
		operands: deque.NewDeque(),
	}
}

// emit appends an operator to the opcode stream.
func (p *program) emit(op opcode) {
	p.code.PushBack(op)
}

// operand appends an operand marker to the opcode stream and its value to
// the operand queue.
func (p *program) operand(v float64) {
	p.code.PushBack(opOperand)
	p.operands.PushBack(v)
}

// run reduces the program to a single value with a stack machine. The
// compiler only produces well-formed programs, so run performs no input
// validation; arithmetic follows IEEE-754 semantics, so division by zero
// yields an infinity or NaN rather than an error.
func (p *program) run() float64 {
	vals := stack.New()
	for !p.code.Empty() {
		op := p.code.Front().(opcode)
		p.code.PopFront()
		switch op {
		case opOperand:
			v := p.operands.Front().(float64)
			p.operands.PopFront()
			vals.Push(v)
		case opNeg:
			a := vals.Pop().(float64)
			vals.Push(-a)
		default:
			b := vals.Pop().(float64)
			a := vals.Pop().(float64)
			switch op {
			case opAdd:
				vals.Push(a + b)
			case opSub:
				vals.Push(a - b)
			case opMul:
				vals.Push(a * b)
			case opDiv:
				vals.Push(a / b)
			case opPow:
				vals.Push(math.Pow(a, b))
			default:
				panic("infix: invalid opcode " + op.String())
			}
		}
	}
	return vals.Pop().(float64)
}

// String renders the opcode stream for debugging; operand markers print as
// underscores.
func (p *program) String() string {
	var b strings.Builder
	for i := 0; i < p.code.Len(); i++ {
		op := p.code.Front().(opcode)
		p.code.PopFront()
		p.code.PushBack(op)
		if op == opOperand {
			b.WriteByte('_')
		} else {
			b.WriteByte(byte(op))
		}
	}
	return b.String()
}
