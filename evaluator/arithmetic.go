package evaluator

import (
	"math"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// evalBinaryExpression evaluates both operands, left to right, before the
// operator is applied. The logical operators do not short circuit.
func evalBinaryExpression(e *evaluator, expr *parser.BinaryExpression) values.Value {
	a := e.Eval(expr.Left)
	b := e.Eval(expr.Right)
	switch expr.Operator.Type {
	case parser.Plus:
		return add(expr, a, b)
	case parser.Minus, parser.Multiply, parser.Divide, parser.Modulo:
		return arithmetic(expr, a, b)
	case parser.LessThan, parser.LessThanEqual, parser.GreaterThan, parser.GreaterThanEqual:
		return compare(expr, a, b)
	case parser.EqualEqual:
		return values.Boolean(values.Equals(a, b))
	case parser.BangEqual:
		return values.Boolean(!values.Equals(a, b))
	case parser.And, parser.Or:
		return logical(expr, a, b)
	}
	panic(notApplicable(expr))
}

func notApplicable(expr *parser.BinaryExpression) issue.Reported {
	return evalError(EvalOperatorNotApplicable, expr, issue.H{`operator`: expr.Operator.Type.String()})
}

func add(expr *parser.BinaryExpression, a, b values.Value) values.Value {
	switch av := a.(type) {
	case values.Number:
		if bv, ok := b.(values.Number); ok {
			return av + bv
		}
	case values.String:
		return av + values.String(b.String())
	case values.Array:
		if bv, ok := b.(values.Array); ok {
			return av.Concat(bv)
		}
	}
	if bv, ok := b.(values.String); ok {
		return values.String(a.String()) + bv
	}
	panic(notApplicable(expr))
}

func arithmetic(expr *parser.BinaryExpression, a, b values.Value) values.Value {
	av, aok := a.(values.Number)
	bv, bok := b.(values.Number)
	if !(aok && bok) {
		panic(notApplicable(expr))
	}
	switch expr.Operator.Type {
	case parser.Minus:
		return av - bv
	case parser.Multiply:
		return av * bv
	case parser.Divide:
		if bv == 0 {
			panic(evalError(EvalDivisionByZero, expr, issue.NO_ARGS))
		}
		return av / bv
	default:
		if bv == 0 {
			panic(evalError(EvalModuloByZero, expr, issue.NO_ARGS))
		}
		return values.Number(euclideanRemainder(float64(av), float64(bv)))
	}
}

// euclideanRemainder returns the least non-negative r such that a = n*b + r
// for some integer n.
func euclideanRemainder(a, b float64) float64 {
	r := math.Mod(a, b)
	switch {
	case r < 0:
		r += math.Abs(b)
	case r == 0:
		r = 0
	}
	return r
}

func evalUnaryExpression(e *evaluator, expr *parser.UnaryExpression) values.Value {
	v := e.Eval(expr.Right)
	switch expr.Operator.Type {
	case parser.Minus:
		if n, ok := v.(values.Number); ok {
			return -n
		}
	case parser.Not:
		if b, ok := v.(values.Boolean); ok {
			return !b
		}
	}
	panic(evalError(EvalUnaryOperatorNotApplicable, expr, issue.H{`operator`: expr.Operator.Type.String()}))
}
