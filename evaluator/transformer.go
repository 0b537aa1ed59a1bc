package evaluator

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// AppliedVariable is the name that the object of a transformer application
// is bound to within the transformer body
const AppliedVariable = `applied`

type builtinTransformer func(object values.Value) values.Value

var builtinTransformers map[string]builtinTransformer

func init() {
	builtinTransformers = map[string]builtinTransformer{
		`to_string`: func(v values.Value) values.Value {
			return values.String(v.String())
		},
		`to_number`: func(v values.Value) values.Value {
			return values.ToNumber(v)
		},
		`to_bool`: func(v values.Value) values.Value {
			return values.ToBool(v)
		},
		`to_array`: func(v values.Value) values.Value {
			return values.ToArray(v)
		},
		`parse_number`: func(v values.Value) values.Value {
			return values.ParseNumber(v)
		},
		`parse_bool`: func(v values.Value) values.Value {
			return values.ParseBool(v)
		},
		`to_json`: func(v values.Value) values.Value {
			return values.String(values.ToJSON(v))
		},
	}
}

// evalApplyExpression applies a built-in or user defined transformer to an
// object. When a user defined transformer is applied to a variable, the
// variable is bound to the result.
func evalApplyExpression(e *evaluator, expr *parser.ApplyExpression) values.Value {
	object := e.Eval(expr.Object)
	if bt, ok := builtinTransformers[expr.Transformer]; ok {
		return bt(object)
	}

	t, ok := lookup(e, expr.Transformer).(*values.Transformer)
	if !ok {
		panic(evalError(EvalUnknownTransformer, expr, issue.H{`name`: expr.Transformer}))
	}
	snapshot := e.scope.Fork()
	args := evalArguments(e, t.Params, expr.Arguments)

	names := make([]string, 0, len(t.Params)+1)
	names = append(append(names, AppliedVariable), t.Params...)
	bound := make([]values.Value, 0, len(args)+1)
	bound = append(append(bound, object), args...)

	result := invoke(e, snapshot, names, bound, t.Body)
	if v, ok := expr.Object.(*parser.VariableExpression); ok {
		rebind(e, v, v.Name, result)
	}
	return result
}
