package evaluator_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/evaluator"
	"github.com/lyraproj/mlang/values"
)

func newEvaluator(out *bytes.Buffer) evaluator.Evaluator {
	return evaluator.NewEvaluator(evaluator.Options{
		File:   `test.m`,
		Stdout: out,
		Input:  evaluator.NewLineReader(strings.NewReader(``), out),
		Logger: evaluator.NewArrayLogger(),
	})
}

// run evaluates the source and returns what was printed
func run(t *testing.T, src string) string {
	t.Helper()
	out := bytes.NewBufferString(``)
	if _, err := evaluator.ParseAndEvaluate(newEvaluator(out), `test.m`, src); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	return out.String()
}

func runError(t *testing.T, src string) issue.Reported {
	t.Helper()
	out := bytes.NewBufferString(``)
	_, err := evaluator.ParseAndEvaluate(newEvaluator(out), `test.m`, src)
	if err == nil {
		t.Fatalf("%s: expected an error", src)
	}
	return err
}

func evaluate(src string) {
	e := evaluator.NewEvaluator(evaluator.Options{Stdout: os.Stdout, Logger: evaluator.NewArrayLogger()})
	if _, err := evaluator.ParseAndEvaluate(e, `example.m`, src); err != nil {
		fmt.Println(err.Code())
	}
}

func Example_fibonacci() {
	evaluate(`fn fib(n) { if n < 2 { return n } else { return fib(n-1) + fib(n-2) } } print(fib(10))`)
	// Output: 55
}

func Example_rangeSum() {
	evaluate(`s = 0; for i in range(1, 6) { s = s + i } print(s)`)
	// Output: 15
}

func Example_transformer() {
	evaluate(`transformer square() { return applied * applied } x = 4 x.square() print(x)`)
	// Output: 16
}

func Example_coercion() {
	evaluate(`print("7".to_number() + 1)`)
	// Output: 8
}

func Example_stringIteration() {
	evaluate(`out = "" for c in "abc" { out = out + c + "-" } print(out)`)
	// Output: a-b-c-
}

func Example_json() {
	evaluate(`print([1, "two", true].to_json())`)
	// Output: [1,"two",true]
}

func Example_errorCode() {
	evaluate(`print(1 / 0)`)
	// Output: EVAL_DIVISION_BY_ZERO
}

func ExampleEvaluator_Evaluate() {
	e := evaluator.NewEvaluator(evaluator.Options{Logger: evaluator.NewArrayLogger()})
	v, _ := evaluator.ParseAndEvaluate(e, ``, `x = [1, 2] + [3]; x[2] * 10`)
	fmt.Println(v)
	v, _ = evaluator.ParseAndEvaluate(e, ``, `x`)
	fmt.Println(v)
	// Output:
	// 30
	// [1, 2, 3]
}

func TestEvaluate_operators(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`print("a" + 1)`, "a1\n"},
		{`print(1 + "a")`, "1a\n"},
		{`print(true + "x")`, "truex\n"},
		{`print([1] + [2, 3])`, "[1, 2, 3]\n"},
		{`print("n: " + [1, 2])`, "n: [1, 2]\n"},
		{`print(7 / 2)`, "3.5\n"},
		{`print(-7 % 3)`, "2\n"},
		{`print(7 % -3)`, "1\n"},
		{`print(-7 % -3)`, "2\n"},
		{`print(5.5 % 2)`, "1.5\n"},
		{`print(1 < 2)`, "true\n"},
		{`print(2 <= 2 and 3 >= 4)`, "false\n"},
		{`print(2 > 1 or false)`, "true\n"},
		{`print(not true)`, "false\n"},
		{`print(-(2 * 3))`, "-6\n"},
		{`print(1 == 1)`, "true\n"},
		{`print("1" == 1)`, "false\n"},
		{`print([1] == [1])`, "false\n"},
		{`print([1] != [1])`, "true\n"},
		{`print("a" != "b")`, "true\n"},
		{`print(0.1 + 0.2)`, "0.30000000000000004\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.src, tt.want, got)
		}
	}
}

func TestEvaluate_modulo(t *testing.T) {
	for _, a := range []int{-9, -4, -1, 0, 3, 8, 13} {
		for _, b := range []int{1, 2, 3, 7} {
			got := run(t, fmt.Sprintf(`print(%d %% %d)`, a, b))
			want := fmt.Sprintf("%d\n", ((a%b)+b)%b)
			if got != want {
				t.Errorf("%d %% %d: expected %q, got %q", a, b, want, got)
			}
		}
	}
}

func TestEvaluate_transformers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`print((12).to_string() + "!")`, "12!\n"},
		{`print([1, [2]].to_string())`, "[1, [2]]\n"},
		{`print("2.5".to_number() * 2)`, "5\n"},
		{`print("true".to_number())`, "1\n"},
		{`print("abc".to_number())`, "0\n"},
		{`print(true.to_number())`, "1\n"},
		{`print("true".parse_number())`, "0\n"},
		{`print(true.parse_number())`, "0\n"},
		{`print("0".to_bool())`, "false\n"},
		{`print([].to_bool())`, "false\n"},
		{`print("yes".parse_bool())`, "true\n"},
		{`print("no".parse_bool())`, "false\n"},
		{`print((3).to_array())`, "[3]\n"},
		{`print([3].to_array())`, "[3]\n"},
		{`print([[1], "a"].to_json())`, "[[...],\"a\"]\n"},
		{`print("a".to_json())`, "\"a\"\n"},
		{`transformer add(n) { return applied + n } x = 1 print(x.add(2).add(3)) print(x)`, "6\n3\n"},
		{`transformer add(n) { return applied + n } print((1).add(2))`, "3\n"},
		{`transformer add(n, m) { return [n, m] } x = 1 x.add(2) print(x)`, "[2, nil]\n"},
		{`transformer keep() { return applied } x = "s" print(x.keep().to_json())`, "\"s\"\n"},
		{`x = 5 print(x.to_string()) print(x + 1)`, "5\n6\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.src, tt.want, got)
		}
	}
}

func TestEvaluate_functions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`fn f(a, b) { return [a, b] } print(f(1))`, "[1, nil]\n"},
		{`fn f(a) { return a } print(f(1, print("not evaluated")))`, "1\n"},
		{`fn f() { return z } z = 5 print(f())`, "5\n"},
		{`fn f() { if true { return 1 } return 2 } print(f())`, "2\n"},
		{`fn f() { 1 2 } print(f())`, "2\n"},
		{`fn f() { } print(f())`, "nil\n"},
		{`fn f() { return } print(f())`, "nil\n"},
		{`fn f() { } print(f)`, "<function>\n"},
		{`transformer t() { } print(t)`, "<transformer>\n"},
		{`fn f(n) { if n == 0 { return 0 } else { return n + f(n - 1) } } print(f(100))`, "5050\n"},
		{`print(print(1))`, "1\nnil\n"},
		{`fn f() { if false { return 1 } } print(f())`, "nil\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.src, tt.want, got)
		}
	}
}

func TestEvaluate_rangeAndIndex(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`print(range(0, 3))`, "[0, 1, 2]\n"},
		{`print(range(3, 1))`, "[]\n"},
		{`print(range(2, 2))`, "[]\n"},
		{`print(range(-2, 1))`, "[-2, -1, 0]\n"},
		{`print(range(0.9, 2.9))`, "[0, 1]\n"},
		{`print(range(5, 9)[3])`, "8\n"},
		{`print([1, 2, 3][-1])`, "1\n"},
		{`print([1, 2][1.7])`, "2\n"},
		{`print(([1, 2] + [3])[2])`, "3\n"},
		{`a = [[1, 2], [3]] print(a[0][1])`, "2\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.src, tt.want, got)
		}
	}
}

func TestEvaluate_roundTrip(t *testing.T) {
	for _, n := range []string{`0`, `1`, `-3`, `0.5`, `123.25`, `-0.001`} {
		src := fmt.Sprintf(`n = %s print(n.to_string().to_number() == n)`, n)
		if got := run(t, src); got != "true\n" {
			t.Errorf("%s: round trip failed", n)
		}
	}
}

func TestEvaluate_errors(t *testing.T) {
	tests := []struct {
		src  string
		code issue.Code
		msg  string
	}{
		{`print(x)`, evaluator.EvalUnknownVariable, `Undefined variable: x`},
		{`f()`, evaluator.EvalUnknownFunction, `Undefined function 'f'`},
		{`g = 1 g()`, evaluator.EvalUnknownFunction, `Undefined function 'g'`},
		{`x = 1 x.nope()`, evaluator.EvalUnknownTransformer, `Undefined transformer 'nope'`},
		{`fn f() { } x = 1 x.f()`, evaluator.EvalUnknownTransformer, `Undefined transformer 'f'`},
		{`1 / 0`, evaluator.EvalDivisionByZero, `Division by zero`},
		{`1 % 0`, evaluator.EvalModuloByZero, `Modulo by zero`},
		{`if 1 { }`, evaluator.EvalConditionNotBoolean, `Condition must be a boolean value`},
		{`while "x" { }`, evaluator.EvalConditionNotBoolean, `Condition must be a boolean value`},
		{`for i in 5 { }`, evaluator.EvalNotIterable, `Cannot iterate over non-iterable value: 5`},
		{`[1][1]`, evaluator.EvalIndexOutOfBounds, `Index out of bounds: 1`},
		{`[][0]`, evaluator.EvalIndexOutOfBounds, `Index out of bounds: 0`},
		{`"a"[0]`, evaluator.EvalNotIndexable, `Cannot index non-array type`},
		{`[1]["0"]`, evaluator.EvalNotIndexable, `Cannot index non-array type`},
		{`1 - "a"`, evaluator.EvalOperatorNotApplicable, `Invalid operands for operator: Minus`},
		{`[1] + 1`, evaluator.EvalOperatorNotApplicable, `Invalid operands for operator: Plus`},
		{`"a" < "b"`, evaluator.EvalOperatorNotApplicable, `Invalid operands for operator: LessThan`},
		{`true and 1`, evaluator.EvalOperatorNotApplicable, `Invalid operands for operator: And`},
		{`-"a"`, evaluator.EvalUnaryOperatorNotApplicable, `Invalid operand for unary operator: Minus`},
		{`not 1`, evaluator.EvalUnaryOperatorNotApplicable, `Invalid operand for unary operator: Not`},
		{`print(1, 2)`, evaluator.EvalIllegalArgumentCount, `print() takes exactly 1 argument`},
		{`range(1)`, evaluator.EvalIllegalArgumentCount, `range() takes exactly 2 arguments`},
		{`range("a", 2)`, evaluator.EvalIllegalArgumentType, `First argument to range() must be a number`},
		{`range(1, "b")`, evaluator.EvalIllegalArgumentType, `Second argument to range() must be a number`},
		{`input(1)`, evaluator.EvalIllegalArgumentType, `Argument to input() must be a string`},
		{`fn f() { return y } f()`, evaluator.EvalUnknownVariable, `Undefined variable: y`},
	}
	for _, tt := range tests {
		err := runError(t, tt.src)
		if err.Code() != tt.code {
			t.Errorf("%s: expected code %s, got %s", tt.src, tt.code, err.Code())
		}
		if !strings.HasPrefix(err.Error(), tt.msg) {
			t.Errorf("%s: expected message %q, got %q", tt.src, tt.msg, err.Error())
		}
	}
}

func TestEvaluate_errorStopsExecution(t *testing.T) {
	out := bytes.NewBufferString(``)
	_, err := evaluator.ParseAndEvaluate(newEvaluator(out), `test.m`, `print(1) print(x) print(2)`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if out.String() != "1\n" {
		t.Errorf("expected evaluation to stop at the error, got %q", out.String())
	}
}

func TestEvaluate_errorLocation(t *testing.T) {
	err := runError(t, "x = 1\nprint(x / 0)")
	loc := err.Location()
	if loc.File() != `test.m` || loc.Line() != 2 || loc.Pos() != 9 {
		t.Errorf("expected error at test.m:2:9, got %s:%d:%d", loc.File(), loc.Line(), loc.Pos())
	}
}

func TestEvaluate_hygiene(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{`call`, `x = 1 fn f() { x = 2 y = 3 return x } print(f()) print(x)`, "2\n1\n"},
		{`transformer`, `x = 1 transformer t() { x = 2 y = 3 return applied } z = 0 z.t() print(x)`, "1\n"},
		{`for`, `s = 0 for i in [1, 2] { s = s + i t = i } print(s)`, "3\n"},
		{`while`, `n = 0 while n < 3 { n = n + 1 k = n } print(n)`, "3\n"},
		{`nested definition`, `fn outer() { fn inner() { } return 1 } outer()`, ""},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}

	for _, src := range []string{
		`fn f() { y = 3 } f() y`,
		`transformer t() { y = 3 } x = 1 x.t() y`,
		`for i in [1] { t = i } t`,
		`for i in [1] { } i`,
		`n = 0 while n < 1 { n = n + 1 k = n } k`,
		`fn outer() { fn inner() { } return 1 } outer() inner()`,
	} {
		runError(t, src)
	}
}

func TestEvaluate_input(t *testing.T) {
	out := bytes.NewBufferString(``)
	e := evaluator.NewEvaluator(evaluator.Options{
		Stdout: out,
		Input:  evaluator.NewLineReader(strings.NewReader("Ada \t\r\nsecond"), out),
		Logger: evaluator.NewArrayLogger(),
	})
	_, err := evaluator.ParseAndEvaluate(e, `test.m`, `
name = input("Name? ")
print("Hi " + name)
print(input(""))
print(input("") == "")`)
	if err != nil {
		t.Fatal(err.Error())
	}
	if got, want := out.String(), "Name? Hi Ada\nsecond\ntrue\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEvaluate_scopePersists(t *testing.T) {
	out := bytes.NewBufferString(``)
	e := newEvaluator(out)
	if _, err := evaluator.ParseAndEvaluate(e, `a.m`, `fn twice(n) { return n * 2 } x = 4`); err != nil {
		t.Fatal(err.Error())
	}
	v, err := evaluator.ParseAndEvaluate(e, `b.m`, `twice(x)`)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !values.Equals(v, values.Number(8)) {
		t.Errorf("expected 8, got %s", v)
	}
	if _, ok := e.Scope().Get(`print`); !ok {
		t.Error("expected print to be defined in the global frame")
	}
	if e.Scope().Depth() != 2 {
		t.Errorf("expected two frames, got %d", e.Scope().Depth())
	}
}
