//go:build go1.18
// +build go1.18

package infix_test

import (
	"testing"

	"github.com/colocasian/infix"
)

// FuzzEvaluate checks that no input panics the compiler or the stack
// machine; arbitrary text must either evaluate or return an error.
func FuzzEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-2^2")
	f.Add("hypot(3, 4)")
	f.Add("{[(1.5e-3)]}")
	f.Add("f(f(1), 2)")
	f.Add("1..2e+")
	ctx := infix.NewContext(infix.SetVar("x", 1), infix.MaxDepth(32))
	ctx.Define("f", 2, "|0|*|1|")
	ctx.Define("f", 1, "f(|0|, x)")
	f.Fuzz(func(t *testing.T, s string) {
		ctx.Evaluate(s)
	})
}
