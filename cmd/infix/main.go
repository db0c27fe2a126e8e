// Command infix is an interactive calculator over the infix package.
//
// Each line is an expression to evaluate and print. Two line forms mutate
// the session instead:
//
//	x = 2^10        bind variable x to the value of the right side
//	f#2 = |0|*|1|   define formula f with two parameters
//
// Usage:
//
//	infix [-q] [-e expression]
//
// With -e, the expression is evaluated and printed and the program exits.
// With -q, no prompt is printed.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/colocasian/infix"
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "e:q")
	if err != nil {
		log.Fatalln(err)
	}
	var oneshot string
	quiet := false
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			oneshot = opt.Value
		case 'q':
			quiet = true
		}
	}
	if optind < len(os.Args) {
		log.Fatalln("unexpected argument:", os.Args[optind])
	}

	ctx := infix.NewContext()
	if oneshot != "" {
		v, err := ctx.Evaluate(oneshot)
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		fmt.Println(format(v))
		return
	}

	prompt := color.New(color.FgCyan)
	in := bufio.NewScanner(os.Stdin)
	for {
		if !quiet {
			prompt.Print("infix> ")
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}
		interpret(ctx, line)
	}
	if err := in.Err(); err != nil {
		log.Fatalln(err)
	}
}

// interpret runs one input line against the session: a definition, a
// binding, or a plain expression.
func interpret(ctx *infix.Context, line string) {
	if eq := strings.IndexByte(line, '='); eq >= 0 {
		lhs := strings.TrimSpace(line[:eq])
		rhs := line[eq+1:]
		if name, arity, ok := formulaLHS(lhs); ok {
			if !ctx.Define(name, arity, strings.TrimSpace(rhs)) {
				color.Red("invalid formula name %q", name)
			}
			return
		}
		v, err := ctx.Evaluate(rhs)
		if err != nil {
			color.Red("%v", err)
			return
		}
		if !ctx.Bind(lhs, v) {
			color.Red("invalid variable name %q", lhs)
			return
		}
		fmt.Println(lhs, "=", format(v))
		return
	}
	v, err := ctx.Evaluate(line)
	if err != nil {
		color.Red("%v", err)
		return
	}
	fmt.Println(format(v))
}

// formulaLHS splits a definition target of the form name#arity.
func formulaLHS(lhs string) (name string, arity int, ok bool) {
	name, num, found := strings.Cut(lhs, "#")
	if !found {
		return "", 0, false
	}
	arity, err := strconv.Atoi(num)
	if err != nil || arity < 0 {
		return "", 0, false
	}
	return name, arity, true
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
