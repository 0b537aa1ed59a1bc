package evaluator

import (
	"io"
	"os"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/parser"
	"github.com/lyraproj/mlang/values"
)

// An Evaluator evaluates the expressions produced by the parser. It owns a
// Scope that survives between calls to Evaluate, so a program can be
// evaluated in parts. An Evaluator must not be used concurrently.
type Evaluator interface {
	// Evaluate evaluates the expression. Evaluation stops at the first error,
	// which is returned as an issue.Reported.
	Evaluate(expr parser.Expression) (values.Value, issue.Reported)

	// Eval should be considered internal. It panics with an issue.Reported on
	// evaluation errors.
	Eval(expr parser.Expression) values.Value

	Scope() Scope

	Logger() Logger

	ImportGraph() *ImportGraph
}

// Options control the creation of an Evaluator. Zero values select defaults.
type Options struct {
	// BaseDir is the directory that paths given to use are resolved against.
	// When empty, paths are used as they are.
	BaseDir string

	// File is the name of the file being evaluated. It identifies the file in
	// the ImportGraph.
	File string

	// Stdout receives the output of print and the prompt of input. Defaults
	// to os.Stdout.
	Stdout io.Writer

	// Input is the source of input. Defaults to a reader of os.Stdin.
	Input LineReader

	// Logger defaults to a standard logger that only logs warnings or worse.
	Logger Logger
}

type evaluator struct {
	scope    Scope
	baseDir  string
	file     string
	imported map[string]bool
	graph    *ImportGraph
	out      io.Writer
	input    LineReader
	logger   Logger
}

// Built-in functions are present in the global frame with empty bodies
var builtinFunctions = []struct {
	name   string
	params []string
}{
	{`print`, []string{`message`}},
	{`input`, []string{`prompt`}},
	{`range`, []string{`start`, `end`}},
}

// NewEvaluator creates an evaluator whose scope consists of a global frame
// with the built-in functions and an empty frame for the program.
func NewEvaluator(opts Options) Evaluator {
	globals := NewScope()
	for _, bf := range builtinFunctions {
		globals.Define(bf.name, &values.Function{Params: bf.params})
	}
	globals.scopes = append(globals.scopes, make(map[string]values.Value, 8))

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = NewLineReader(os.Stdin, opts.Stdout)
	}
	if opts.Logger == nil {
		opts.Logger = NewStdLogger(WARNING)
	}
	e := &evaluator{
		scope:    globals,
		baseDir:  opts.BaseDir,
		file:     opts.File,
		imported: make(map[string]bool, 8),
		graph:    NewImportGraph(),
		out:      opts.Stdout,
		input:    opts.Input,
		logger:   opts.Logger,
	}
	e.graph.AddFile(e.file)
	return e
}

func (e *evaluator) Scope() Scope {
	return e.scope
}

func (e *evaluator) Logger() Logger {
	return e.logger
}

func (e *evaluator) ImportGraph() *ImportGraph {
	return e.graph
}

// ParseAndEvaluate parses the source and evaluates the result with the given evaluator
func ParseAndEvaluate(e Evaluator, file, src string) (values.Value, issue.Reported) {
	expr, err := parser.Parse(file, src)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(expr)
}
