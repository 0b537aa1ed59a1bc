package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/kr/pretty"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/evaluator"
	"github.com/lyraproj/mlang/values"
)

func TestStdLogger_filtersBySeverity(t *testing.T) {
	out := bytes.NewBufferString(``)
	errOut := bytes.NewBufferString(``)
	logger := evaluator.NewWriterLogger(out, errOut, evaluator.NOTICE)
	evaluator.Debug(logger, `hidden %d`, 1)
	evaluator.Info(logger, `hidden too`)
	evaluator.Notice(logger, `using '%s'`, `lib.m`)
	evaluator.Warning(logger, `careful`)
	logger.Log(evaluator.ERR, values.String(`bad `), values.Number(3))

	if got := out.String(); got != "notice: using 'lib.m'\n" {
		t.Errorf("unexpected stdout %q", got)
	}
	if got := errOut.String(); got != "warning: careful\nerr: bad 3\n" {
		t.Errorf("unexpected stderr %q", got)
	}
}

func TestArrayLogger(t *testing.T) {
	logger := evaluator.NewArrayLogger()
	evaluator.Debug(logger, `one`)
	evaluator.Warning(logger, `two`)
	evaluator.Debug(logger, `three %s`, `x`)
	logger.LogIssue(issue.NewReported(evaluator.EvalDivisionByZero, issue.SEVERITY_ERROR, issue.NO_ARGS, nil))

	if diff := pretty.Diff(logger.Entries(evaluator.DEBUG), []string{`one`, `three x`}); len(diff) > 0 {
		t.Errorf("unexpected debug entries: %v", diff)
	}
	if diff := pretty.Diff(logger.Entries(evaluator.ERR), []string{`Division by zero`}); len(diff) > 0 {
		t.Errorf("unexpected err entries: %v", diff)
	}

	logger.LogIssue(issue.NewReported(evaluator.EvalModuloByZero, issue.SEVERITY_WARNING, issue.NO_ARGS, nil))
	logger.LogIssue(issue.NewReported(evaluator.EvalModuloByZero, issue.SEVERITY_DEPRECATION, issue.NO_ARGS, nil))
	if diff := pretty.Diff(logger.Entries(evaluator.WARNING), []string{`two`, `Modulo by zero`, `Modulo by zero`}); len(diff) > 0 {
		t.Errorf("unexpected warning entries: %v", diff)
	}
}

func TestParseLogLevel(t *testing.T) {
	l, err := evaluator.ParseLogLevel(`Debug`)
	if err != nil || l != evaluator.DEBUG {
		t.Errorf("expected debug, got %s %v", l, err)
	}
	if _, err = evaluator.ParseLogLevel(`chatty`); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
