package evaluator

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

func evalFunctionExpression(e *evaluator, expr *parser.FunctionExpression) values.Value {
	f := &values.Function{Params: expr.Params, Body: expr.Body}
	e.scope.Define(expr.Name, f)
	return f
}

func evalTransformerExpression(e *evaluator, expr *parser.TransformerExpression) values.Value {
	t := &values.Transformer{Params: expr.Params, Body: expr.Body}
	e.scope.Define(expr.Name, t)
	return t
}

func evalCallExpression(e *evaluator, expr *parser.CallExpression) values.Value {
	if bf, ok := builtins[expr.Callee]; ok {
		return bf(e, expr)
	}

	f, ok := lookup(e, expr.Callee).(*values.Function)
	if !ok {
		panic(evalError(EvalUnknownFunction, expr, issue.H{`name`: expr.Callee}))
	}
	snapshot := e.scope.Fork()
	args := evalArguments(e, f.Params, expr.Arguments)
	return invoke(e, snapshot, f.Params, args, f.Body)
}

func lookup(e *evaluator, name string) values.Value {
	v, _ := e.scope.Get(name)
	return v
}

// evalArguments evaluates one argument expression per parameter in the
// current scope. Missing arguments are nil and surplus argument expressions
// are not evaluated.
func evalArguments(e *evaluator, params []string, args []parser.Expression) []values.Value {
	result := make([]values.Value, len(params))
	for i := range params {
		if i < len(args) {
			result[i] = e.Eval(args[i])
		} else {
			result[i] = values.Nil
		}
	}
	return result
}

// invoke runs a function or transformer body in a new frame on top of the
// given snapshot of the caller's scope. The caller's scope is restored
// afterwards, so nothing the body does is visible to the caller.
func invoke(e *evaluator, snapshot Scope, params []string, args []values.Value, body []parser.Expression) values.Value {
	saved := e.scope
	e.scope = snapshot
	defer func() {
		e.scope = saved
	}()
	return snapshot.WithLocalScope(func() values.Value {
		for i, p := range params {
			snapshot.Define(p, args[i])
		}
		return callBody(e, body)
	})
}

// callBody evaluates the statements of a body until all are done or a
// return statement at the top level of the body has been evaluated.
func callBody(e *evaluator, body []parser.Expression) (result values.Value) {
	result = values.Nil
	for _, statement := range body {
		result = e.Eval(statement)
		if _, ok := statement.(*parser.ReturnExpression); ok {
			break
		}
	}
	return
}
