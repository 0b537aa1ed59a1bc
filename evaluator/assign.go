package evaluator

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// evalAssignExpression updates the nearest binding of the name or, when there
// is none, defines the name in the innermost frame.
func evalAssignExpression(e *evaluator, expr *parser.AssignExpression) values.Value {
	value := e.Eval(expr.Value)
	if !e.scope.Set(expr.Name, value) {
		e.scope.Define(expr.Name, value)
	}
	return value
}

// rebind updates an existing binding and fails when there is none
func rebind(e *evaluator, location issue.Location, name string, value values.Value) {
	if !e.scope.Set(name, value) {
		panic(evalError(EvalUnknownVariableAssignment, location, issue.H{`name`: name}))
	}
}
