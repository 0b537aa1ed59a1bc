package evaluator

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

func (e *evaluator) Evaluate(expr parser.Expression) (result values.Value, err issue.Reported) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				result = nil
				err = ri
				return
			}
			panic(r)
		}
	}()
	return e.Eval(expr), nil
}

func (e *evaluator) Eval(expr parser.Expression) values.Value {
	return BasicEval(e, expr)
}

func evalError(code issue.Code, location issue.Location, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, location)
}

// BasicEval dispatches the evaluation of the expression on its type
func BasicEval(e *evaluator, expr parser.Expression) values.Value {
	switch ex := expr.(type) {
	case *parser.NumberExpression:
		return values.Number(ex.Value)
	case *parser.StringExpression:
		return values.String(ex.Value)
	case *parser.BooleanExpression:
		return values.Boolean(ex.Value)
	case *parser.ArrayExpression:
		return evalArrayExpression(e, ex)
	case *parser.VariableExpression:
		return evalVariableExpression(e, ex)
	case *parser.BinaryExpression:
		return evalBinaryExpression(e, ex)
	case *parser.UnaryExpression:
		return evalUnaryExpression(e, ex)
	case *parser.AssignExpression:
		return evalAssignExpression(e, ex)
	case *parser.CallExpression:
		return evalCallExpression(e, ex)
	case *parser.FunctionExpression:
		return evalFunctionExpression(e, ex)
	case *parser.TransformerExpression:
		return evalTransformerExpression(e, ex)
	case *parser.ReturnExpression:
		return evalReturnExpression(e, ex)
	case *parser.BlockExpression:
		return evalBlockExpression(e, ex)
	case *parser.IfExpression:
		return evalIfExpression(e, ex)
	case *parser.ForExpression:
		return evalForExpression(e, ex)
	case *parser.WhileExpression:
		return evalWhileExpression(e, ex)
	case *parser.IndexExpression:
		return evalIndexExpression(e, ex)
	case *parser.ApplyExpression:
		return evalApplyExpression(e, ex)
	case *parser.UseExpression:
		return evalUseExpression(e, ex)
	default:
		panic(evalError(EvalUnhandledExpression, expr, issue.H{`type`: fmt.Sprintf(`%T`, expr)}))
	}
}

func evalArrayExpression(e *evaluator, expr *parser.ArrayExpression) values.Value {
	elements := make(values.Array, len(expr.Elements))
	for i, el := range expr.Elements {
		elements[i] = e.Eval(el)
	}
	return elements
}

func evalVariableExpression(e *evaluator, expr *parser.VariableExpression) values.Value {
	if value, ok := e.scope.Get(expr.Name); ok {
		return value
	}
	panic(evalError(EvalUnknownVariable, expr, issue.H{`name`: expr.Name}))
}

func evalBlockExpression(e *evaluator, expr *parser.BlockExpression) (result values.Value) {
	result = values.Nil
	for _, statement := range expr.Statements {
		result = e.Eval(statement)
	}
	return result
}

func evalIfExpression(e *evaluator, expr *parser.IfExpression) values.Value {
	if condition(e, expr.Condition) {
		return e.Eval(expr.Then)
	}
	if expr.Else != nil {
		return e.Eval(expr.Else)
	}
	return values.Nil
}

// condition evaluates an if or while condition, which must be a boolean
func condition(e *evaluator, expr parser.Expression) bool {
	if b, ok := e.Eval(expr).(values.Boolean); ok {
		return bool(b)
	}
	panic(evalError(EvalConditionNotBoolean, expr, issue.NO_ARGS))
}

// evalReturnExpression yields the payload. Only a return at the top level of
// a function or transformer body ends the call, see callBody.
func evalReturnExpression(e *evaluator, expr *parser.ReturnExpression) values.Value {
	if expr.Value == nil {
		return values.Nil
	}
	return e.Eval(expr.Value)
}
