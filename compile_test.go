package infix

import "testing"

// TestCompilePostfix pins the operator ordering of compiled programs;
// operand markers print as underscores.
func TestCompilePostfix(t *testing.T) {
	cases := []struct {
		src  string
		post string
	}{
		{"2", "_"},
		{"2+3", "__+"},
		{"2+3*4", "___*+"},
		{"2*3+4", "__*_+"},
		{"(2+3)*4", "__+_*"},
		{"2^3^2", "___^^"},
		{"-2^2", "__^@"},
		{"(-2)^2", "_@_^"},
		{"-2*3", "_@_*"},
		{"4/5/6", "__/_/"},
		{"2-3-4", "__-_-"},
		{"+2", "_"},
		{"hypot(3,4)", "_"},
	}
	ctx := NewContext()
	for _, c := range cases {
		prog, err := compile(ctx, c.src, 0)
		if err != nil {
			t.Errorf("compiling %q: unexpected error %v", c.src, err)
			continue
		}
		if got := prog.String(); got != c.post {
			t.Errorf("compiling %q: want postfix %q, got %q", c.src, c.post, got)
		}
	}
}

func TestSliceArgs(t *testing.T) {
	cases := []struct {
		src  string
		open int
		args []string
		end  int
	}{
		{"f(1)", 1, []string{"1"}, 4},
		{"f(1,2)", 1, []string{"1", "2"}, 6},
		{"f()", 1, []string{""}, 3},
		{"f(g(1,2),3)", 1, []string{"g(1,2)", "3"}, 11},
		{"f(1)+2", 1, []string{"1"}, 4},
		{"f([1,2])", 1, []string{"[1", "2]"}, 8},
	}
	for _, c := range cases {
		args, end, err := sliceArgs(c.src, c.open)
		if err != nil {
			t.Errorf("slicing %q: unexpected error %v", c.src, err)
			continue
		}
		if end != c.end {
			t.Errorf("slicing %q: want end %d, got %d", c.src, c.end, end)
		}
		if len(args) != len(c.args) {
			t.Errorf("slicing %q: want args %q, got %q", c.src, c.args, args)
			continue
		}
		for i := range args {
			if args[i] != c.args[i] {
				t.Errorf("slicing %q: want args %q, got %q", c.src, c.args, args)
				break
			}
		}
	}
	if _, _, err := sliceArgs("f(1,(2)", 1); err == nil {
		t.Error(`slicing "f(1,(2)" should fail`)
	}
}

func TestScanNumber(t *testing.T) {
	cases := []struct {
		src string
		end int
	}{
		{"1", 1},
		{"12.5", 4},
		{"1+2", 1},
		{"1e5", 3},
		{"1e+5", 4},
		{"1e-5", 4},
		{"1E5x", 3},
		{"2.5e-1)", 6},
		{"1e", 2},
		{"3e(", 2},
		{".5*2", 2},
	}
	for _, c := range cases {
		if end := scanNumber(c.src, 0); end != c.end {
			t.Errorf("scanning %q: want end %d, got %d", c.src, c.end, end)
		}
	}
}
