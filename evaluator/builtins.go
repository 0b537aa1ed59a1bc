package evaluator

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

type builtinFunction func(e *evaluator, call *parser.CallExpression) values.Value

var builtins map[string]builtinFunction

func init() {
	builtins = map[string]builtinFunction{
		`print`: printFunction,
		`input`: inputFunction,
		`range`: rangeFunction,
	}
}

func assertArgumentCount(call *parser.CallExpression, count int) {
	if len(call.Arguments) == count {
		return
	}
	expected := `1 argument`
	if count != 1 {
		expected = fmt.Sprintf(`%d arguments`, count)
	}
	panic(evalError(EvalIllegalArgumentCount, call, issue.H{`function`: call.Callee, `expected`: expected}))
}

func illegalArgumentType(call *parser.CallExpression, argument, expected string) issue.Reported {
	return evalError(EvalIllegalArgumentType, call, issue.H{`argument`: argument, `function`: call.Callee, `expected`: expected})
}

// printFunction writes the rendering of its argument followed by a newline
func printFunction(e *evaluator, call *parser.CallExpression) values.Value {
	assertArgumentCount(call, 1)
	fmt.Fprintln(e.out, e.Eval(call.Arguments[0]).String())
	return values.Nil
}

func inputFunction(e *evaluator, call *parser.CallExpression) values.Value {
	assertArgumentCount(call, 1)
	prompt, ok := e.Eval(call.Arguments[0]).(values.String)
	if !ok {
		panic(illegalArgumentType(call, `Argument`, `a string`))
	}
	line, err := e.input.ReadLine(string(prompt))
	if err != nil {
		panic(evalError(EvalInputFailed, call, issue.H{`detail`: err.Error()}))
	}
	return values.String(line)
}

// rangeFunction returns the numbers from start up to, but not including, end
func rangeFunction(e *evaluator, call *parser.CallExpression) values.Value {
	assertArgumentCount(call, 2)
	start, ok := e.Eval(call.Arguments[0]).(values.Number)
	if !ok {
		panic(illegalArgumentType(call, `First argument`, `a number`))
	}
	end, ok := e.Eval(call.Arguments[1]).(values.Number)
	if !ok {
		panic(illegalArgumentType(call, `Second argument`, `a number`))
	}
	s, n := int64(toInt32(float64(start))), int64(toInt32(float64(end)))
	if n <= s {
		return values.Array{}
	}
	result := make(values.Array, 0, n-s)
	for i := s; i < n; i++ {
		result = append(result, values.Number(i))
	}
	return result
}
