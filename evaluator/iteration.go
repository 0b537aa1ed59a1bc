package evaluator

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// evalForExpression evaluates the body once per element of an array or per
// character of a string. Each iteration gets a frame of its own that holds
// the loop variable.
func evalForExpression(e *evaluator, expr *parser.ForExpression) values.Value {
	var elements values.Array
	switch iterable := e.Eval(expr.Iterable).(type) {
	case values.Array:
		elements = iterable
	case values.String:
		elements = make(values.Array, 0, len(iterable))
		for _, c := range string(iterable) {
			elements = append(elements, values.String(c))
		}
	default:
		panic(evalError(EvalNotIterable, expr.Iterable, issue.H{`value`: iterable.String()}))
	}

	var result values.Value = values.Nil
	for _, element := range elements {
		result = e.scope.WithLocalScope(func() values.Value {
			e.scope.Define(expr.Variable, element)
			return e.Eval(expr.Body)
		})
	}
	return result
}

// evalWhileExpression evaluates the body in a frame of its own for as long as
// the condition is true. The result is always nil.
func evalWhileExpression(e *evaluator, expr *parser.WhileExpression) values.Value {
	for condition(e, expr.Condition) {
		e.scope.WithLocalScope(func() values.Value {
			return e.Eval(expr.Body)
		})
	}
	return values.Nil
}
