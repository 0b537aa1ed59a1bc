package evaluator

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/values"
)

type (
	LogLevel string

	Logger interface {
		Log(level LogLevel, args ...values.Value)

		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(issue issue.Reported)
	}

	stdlog struct {
		out io.Writer
		err io.Writer
		min int
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	ArrayLogger struct {
		entries []*LogEntry
	}
)

const (
	ALERT   = LogLevel(`alert`)
	CRIT    = LogLevel(`crit`)
	DEBUG   = LogLevel(`debug`)
	EMERG   = LogLevel(`emerg`)
	ERR     = LogLevel(`err`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
)

// LogLevels in order of increasing severity
var LogLevels = []LogLevel{DEBUG, INFO, NOTICE, WARNING, ERR, ALERT, CRIT, EMERG}

func (l LogLevel) severity() int {
	for i, ll := range LogLevels {
		if ll == l {
			return i
		}
	}
	return len(LogLevels)
}

// ParseLogLevel returns the LogLevel with the given name. Case is ignored.
func ParseLogLevel(s string) (LogLevel, error) {
	l := LogLevel(strings.ToLower(s))
	if l.severity() == len(LogLevels) {
		return ``, fmt.Errorf(`unknown log level '%s'`, s)
	}
	return l, nil
}

func Debug(logger Logger, format string, args ...interface{}) {
	logger.Logf(DEBUG, format, args...)
}

func Info(logger Logger, format string, args ...interface{}) {
	logger.Logf(INFO, format, args...)
}

func Notice(logger Logger, format string, args ...interface{}) {
	logger.Logf(NOTICE, format, args...)
}

func Warning(logger Logger, format string, args ...interface{}) {
	logger.Logf(WARNING, format, args...)
}

func Err(logger Logger, format string, args ...interface{}) {
	logger.Logf(ERR, format, args...)
}

// NewStdLogger returns a logger that writes entries of the given level or
// higher. Debug, info, and notice entries go to stdout, all others to stderr.
func NewStdLogger(min LogLevel) Logger {
	return NewWriterLogger(os.Stdout, os.Stderr, min)
}

func NewWriterLogger(out, err io.Writer, min LogLevel) Logger {
	return &stdlog{out, err, min.severity()}
}

func (l *stdlog) Log(level LogLevel, args ...values.Value) {
	if level.severity() < l.min {
		return
	}
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	for _, arg := range args {
		io.WriteString(w, arg.String())
	}
	fmt.Fprintln(w)
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	if level.severity() < l.min {
		return
	}
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func (l *stdlog) writerFor(level LogLevel) io.Writer {
	switch level {
	case DEBUG, INFO, NOTICE:
		return l.out
	default:
		return l.err
	}
}

func (l *stdlog) LogIssue(i issue.Reported) {
	level := issueLevel(i)
	if level == `` || level.severity() < l.min {
		return
	}
	fmt.Fprintln(l.err, i.Error())
}

func issueLevel(i issue.Reported) LogLevel {
	switch i.Severity() {
	case issue.SEVERITY_ERROR:
		return ERR
	case issue.SEVERITY_WARNING, issue.SEVERITY_DEPRECATION:
		return WARNING
	default:
		return ``
	}
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{make([]*LogEntry, 0, 16)}
}

// Entries returns the messages logged with the given level
func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return
}

func (l *ArrayLogger) Log(level LogLevel, args ...values.Value) {
	w := bytes.NewBufferString(``)
	for _, arg := range args {
		w.WriteString(arg.String())
	}
	l.entries = append(l.entries, &LogEntry{level, w.String()})
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	if level := issueLevel(i); level != `` {
		l.entries = append(l.entries, &LogEntry{level, i.Error()})
	}
}
