package parser

import "github.com/lyraproj/issue/issue"

const (
	ParseExpectedAfter           = `PARSE_EXPECTED_AFTER`
	ParseExpectedBefore          = `PARSE_EXPECTED_BEFORE`
	ParseExpectedExpression      = `PARSE_EXPECTED_EXPRESSION`
	ParseExpectedName            = `PARSE_EXPECTED_NAME`
	ParseInvalidAssignmentTarget = `PARSE_INVALID_ASSIGNMENT_TARGET`
	ParseInvalidNumber           = `PARSE_INVALID_NUMBER`
)

func init() {
	issue.Hard(ParseExpectedAfter, `Expected %{expected} after %{after}`)

	issue.Hard(ParseExpectedBefore, `Expected %{expected} before %{before}`)

	issue.Hard(ParseExpectedExpression, `Expected expression`)

	issue.Hard(ParseExpectedName, `Expected %{kind} name`)

	issue.Hard(ParseInvalidAssignmentTarget, `Invalid assignment target`)

	issue.Hard(ParseInvalidNumber, `Invalid number literal '%{literal}'`)
}
