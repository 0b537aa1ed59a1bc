package evaluator

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// ErrInvalidUTF8 is returned by ReadSource for files that are not valid UTF-8
var ErrInvalidUTF8 = errors.New(`stream did not contain valid UTF-8`)

// ReadSource reads a source file, which must be valid UTF-8. Errors from the
// file system are returned without the path.
func ReadSource(path string) (string, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		if pe, ok := err.(*os.PathError); ok {
			err = pe.Err
		}
		return ``, err
	}
	if !utf8.Valid(content) {
		return ``, ErrInvalidUTF8
	}
	return string(content), nil
}

// resolve joins the path with the base directory unless the base directory is empty
func (e *evaluator) resolve(path string) string {
	if e.baseDir == `` {
		return path
	}
	return filepath.Join(e.baseDir, path)
}

// evalUseExpression evaluates another file once per run and merges the names
// it defines into the innermost frame of the current scope. A path that has
// been used before, by this evaluator or the evaluator that included it, is
// ignored.
func evalUseExpression(e *evaluator, expr *parser.UseExpression) values.Value {
	path := expr.Path
	resolved := e.resolve(path)
	if e.imported[path] {
		if e.graph.Reaches(resolved, e.file) {
			Debug(e.logger, `%s: ignoring cyclic use of '%s'`, e.file, path)
		} else {
			Debug(e.logger, `%s: '%s' is already in use`, e.file, path)
		}
		e.graph.AddImport(e.file, resolved)
		return values.Nil
	}
	e.imported[path] = true
	e.graph.AddImport(e.file, resolved)
	Debug(e.logger, `%s: using '%s'`, e.file, resolved)

	content, err := ReadSource(resolved)
	if err != nil {
		panic(evalError(EvalUseReadFailed, expr, issue.H{`path`: resolved, `detail`: err.Error()}))
	}

	ast, perr := parser.Parse(resolved, content)
	if perr != nil {
		panic(evalError(EvalUseParseFailed, expr, issue.H{`path`: resolved, `detail`: perr.Error()}))
	}

	sub := &evaluator{
		scope:    e.scope.Fork(),
		baseDir:  e.baseDir,
		file:     resolved,
		imported: make(map[string]bool, len(e.imported)),
		graph:    e.graph,
		out:      e.out,
		input:    e.input,
		logger:   e.logger,
	}
	if sub.baseDir == `` {
		sub.baseDir = filepath.Dir(resolved)
	}
	for k := range e.imported {
		sub.imported[k] = true
	}

	if _, rerr := sub.Evaluate(ast); rerr != nil {
		panic(evalError(EvalUseEvaluationFailed, expr, issue.H{`path`: resolved, `detail`: rerr.Error()}))
	}
	for name, value := range sub.scope.Locals() {
		e.scope.Define(name, value)
	}
	return values.Nil
}
