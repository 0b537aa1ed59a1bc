package evaluator

import (
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// compare applies an ordering operator. Only numbers can be ordered.
func compare(expr *parser.BinaryExpression, a, b values.Value) values.Value {
	av, aok := a.(values.Number)
	bv, bok := b.(values.Number)
	if !(aok && bok) {
		panic(notApplicable(expr))
	}
	switch expr.Operator.Type {
	case parser.LessThan:
		return values.Boolean(av < bv)
	case parser.LessThanEqual:
		return values.Boolean(av <= bv)
	case parser.GreaterThan:
		return values.Boolean(av > bv)
	default:
		return values.Boolean(av >= bv)
	}
}

func logical(expr *parser.BinaryExpression, a, b values.Value) values.Value {
	av, aok := a.(values.Boolean)
	bv, bok := b.(values.Boolean)
	if !(aok && bok) {
		panic(notApplicable(expr))
	}
	if expr.Operator.Type == parser.And {
		return av && bv
	}
	return av || bv
}
