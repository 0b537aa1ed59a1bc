package evaluator

import "github.com/lyraproj/issue/issue"

const (
	EvalConditionNotBoolean        = `EVAL_CONDITION_NOT_BOOLEAN`
	EvalDivisionByZero             = `EVAL_DIVISION_BY_ZERO`
	EvalIllegalArgumentCount       = `EVAL_ILLEGAL_ARGUMENT_COUNT`
	EvalIllegalArgumentType        = `EVAL_ILLEGAL_ARGUMENT_TYPE`
	EvalIndexOutOfBounds           = `EVAL_INDEX_OUT_OF_BOUNDS`
	EvalInputFailed                = `EVAL_INPUT_FAILED`
	EvalModuloByZero               = `EVAL_MODULO_BY_ZERO`
	EvalNotIndexable               = `EVAL_NOT_INDEXABLE`
	EvalNotIterable                = `EVAL_NOT_ITERABLE`
	EvalOperatorNotApplicable      = `EVAL_OPERATOR_NOT_APPLICABLE`
	EvalUnaryOperatorNotApplicable = `EVAL_UNARY_OPERATOR_NOT_APPLICABLE`
	EvalUnhandledExpression        = `EVAL_UNHANDLED_EXPRESSION`
	EvalUnknownFunction            = `EVAL_UNKNOWN_FUNCTION`
	EvalUnknownTransformer         = `EVAL_UNKNOWN_TRANSFORMER`
	EvalUnknownVariable            = `EVAL_UNKNOWN_VARIABLE`
	EvalUnknownVariableAssignment  = `EVAL_UNKNOWN_VARIABLE_ASSIGNMENT`
	EvalUseEvaluationFailed        = `EVAL_USE_EVALUATION_FAILED`
	EvalUseParseFailed             = `EVAL_USE_PARSE_FAILED`
	EvalUseReadFailed              = `EVAL_USE_READ_FAILED`
)

func init() {
	issue.Hard(EvalConditionNotBoolean, `Condition must be a boolean value`)

	issue.Hard(EvalDivisionByZero, `Division by zero`)

	issue.Hard(EvalIllegalArgumentCount, `%{function}() takes exactly %{expected}`)

	issue.Hard(EvalIllegalArgumentType, `%{argument} to %{function}() must be %{expected}`)

	issue.Hard(EvalIndexOutOfBounds, `Index out of bounds: %{index}`)

	issue.Hard(EvalInputFailed, `Failed to read input: %{detail}`)

	issue.Hard(EvalModuloByZero, `Modulo by zero`)

	issue.Hard(EvalNotIndexable, `Cannot index non-array type`)

	issue.Hard(EvalNotIterable, `Cannot iterate over non-iterable value: %{value}`)

	issue.Hard(EvalOperatorNotApplicable, `Invalid operands for operator: %{operator}`)

	issue.Hard(EvalUnaryOperatorNotApplicable, `Invalid operand for unary operator: %{operator}`)

	issue.Hard(EvalUnhandledExpression, `Evaluator cannot handle an expression of type %{type}`)

	issue.Hard(EvalUnknownFunction, `Undefined function '%{name}'`)

	issue.Hard(EvalUnknownTransformer, `Undefined transformer '%{name}'`)

	issue.Hard(EvalUnknownVariable, `Undefined variable: %{name}`)

	issue.Hard(EvalUnknownVariableAssignment, `Undefined variable '%{name}'`)

	issue.Hard(EvalUseEvaluationFailed, `Error evaluating file '%{path}': %{detail}`)

	issue.Hard(EvalUseParseFailed, `Failed to parse file '%{path}': %{detail}`)

	issue.Hard(EvalUseReadFailed, `Failed to read file '%{path}': %{detail}`)
}
