package evaluator

import (
	"math"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

func evalIndexExpression(e *evaluator, expr *parser.IndexExpression) values.Value {
	object := e.Eval(expr.Object)
	index := e.Eval(expr.Index)
	a, aok := object.(values.Array)
	n, nok := index.(values.Number)
	if !(aok && nok) {
		panic(evalError(EvalNotIndexable, expr, issue.NO_ARGS))
	}
	idx := toIndex(float64(n))
	if idx >= len(a) {
		panic(evalError(EvalIndexOutOfBounds, expr, issue.H{`index`: idx}))
	}
	return a[idx]
}

// toIndex truncates f toward zero. Negative numbers and NaN become 0 and
// large numbers are capped at math.MaxInt32.
func toIndex(f float64) int {
	if !(f > 0) {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// toInt32 truncates f toward zero, saturating at the int32 bounds. NaN becomes 0.
func toInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
