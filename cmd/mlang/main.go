// Command mlang runs a program file.
//
//	mlang [flags] [path]
//
// The path defaults to main.m. Paths given to use are resolved against the
// working directory unless a base directory is configured.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/lyraproj/mlang/config"
	"github.com/lyraproj/mlang/evaluator"
	"github.com/lyraproj/mlang/parser"
)

const defaultFile = `main.m`

var astDumper = spew.ConfigState{Indent: `  `, DisableMethods: true, DisablePointerAddresses: true, DisableCapacities: true}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configFile string
	baseDir    string
	logLevel   string
	noBanner   bool
	dumpAST    bool
	path       string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet(`mlang`, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, `config`, ``, `configuration file (default ./`+config.DefaultFile+` if present)`)
	fs.StringVar(&opts.baseDir, `base-dir`, ``, `directory that use paths are resolved against (default working directory)`)
	fs.StringVar(&opts.logLevel, `log-level`, ``, `minimum log level (default warning)`)
	fs.BoolVar(&opts.noBanner, `no-banner`, false, `do not print the name of the file before running it`)
	fs.BoolVar(&opts.dumpAST, `dump-ast`, false, `print the parsed program instead of running it`)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
		opts.path = defaultFile
	case 1:
		opts.path = fs.Arg(0)
	default:
		return nil, fmt.Errorf(`at most one file can be given, got %d`, fs.NArg())
	}
	return opts, nil
}

// loadConfig loads the configuration and lets the flags override it
func loadConfig(opts *options) (*config.Config, error) {
	var c *config.Config
	var err error
	if opts.configFile != `` {
		c, err = config.Load(opts.configFile)
	} else {
		c, err = config.LoadDefault(`.`)
	}
	if err != nil {
		return nil, err
	}
	if opts.baseDir != `` {
		c.BaseDir = opts.baseDir
	}
	if opts.logLevel != `` {
		c.LogLevel = opts.logLevel
	}
	if opts.noBanner {
		off := false
		c.Banner = &off
	}
	if err = c.Check(); err != nil {
		return nil, err
	}
	if c.BaseDir == `` {
		if c.BaseDir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newInput(stdin io.Reader, stdout io.Writer) (evaluator.LineReader, func()) {
	if stdin == os.Stdin && stdout == os.Stdout && evaluator.IsTerminal() {
		ti := evaluator.NewTerminalInput()
		return ti, func() { ti.Close() }
	}
	return evaluator.NewLineReader(stdin, stdout), func() {}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	c, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 2
	}
	level := c.Level(evaluator.WARNING)
	logger := evaluator.NewWriterLogger(stdout, stderr, level)

	if c.ShowBanner() {
		fmt.Fprintf(stdout, "Running file: %s\n", opts.path)
	}
	content, err := evaluator.ReadSource(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %s\n", err)
		return 0
	}

	expr, perr := parser.Parse(opts.path, content)
	if perr != nil {
		fmt.Fprintf(stderr, "Error: %s\n", perr)
		return 0
	}
	if opts.dumpAST {
		astDumper.Fdump(stdout, expr)
		return 0
	}

	file, err := filepath.Abs(opts.path)
	if err != nil {
		file = opts.path
	}
	input, closeInput := newInput(stdin, stdout)
	defer closeInput()
	e := evaluator.NewEvaluator(evaluator.Options{
		BaseDir: c.BaseDir,
		File:    file,
		Stdout:  stdout,
		Input:   input,
		Logger:  logger,
	})
	if _, rerr := e.Evaluate(expr); rerr != nil {
		fmt.Fprintf(stderr, "Error: %s\n", rerr)
	}
	if level == evaluator.DEBUG {
		if order, oerr := e.ImportGraph().Order(); oerr == nil {
			evaluator.Debug(logger, `include order: %v`, order)
		} else {
			evaluator.Debug(logger, `files use each other: %s`, oerr)
		}
	}
	return 0
}
