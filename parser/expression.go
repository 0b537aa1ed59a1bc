package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/lyraproj/issue/issue"
)

// Expression is a node in the syntax tree. Every syntactic form of the
// language is an expression. The issue.Location of an expression is the
// position of the token that introduced it.
type Expression interface {
	issue.Location

	// String returns a compact, parenthesized rendering of the expression
	String() string

	toString(b *bytes.Buffer)
}

// Locator carries the file, line, and column of an expression.
type Locator struct {
	file string
	line int
	col  int
}

func locatorAt(file string, t Token) Locator {
	return Locator{file, t.Line, t.Column}
}

func (l Locator) File() string {
	return l.file
}

func (l Locator) Line() int {
	return l.line
}

func (l Locator) Pos() int {
	return l.col
}

type (
	NumberExpression struct {
		Locator
		Value float64
	}

	StringExpression struct {
		Locator
		Value string
	}

	BooleanExpression struct {
		Locator
		Value bool
	}

	ArrayExpression struct {
		Locator
		Elements []Expression
	}

	VariableExpression struct {
		Locator
		Name string
	}

	BinaryExpression struct {
		Locator
		Left     Expression
		Operator Token
		Right    Expression
	}

	UnaryExpression struct {
		Locator
		Operator Token
		Right    Expression
	}

	AssignExpression struct {
		Locator
		Name  string
		Value Expression
	}

	// CallExpression calls a function by name. Only bare identifiers can be called.
	CallExpression struct {
		Locator
		Callee    string
		Arguments []Expression
	}

	FunctionExpression struct {
		Locator
		Name   string
		Params []string
		Body   []Expression
	}

	TransformerExpression struct {
		Locator
		Name   string
		Params []string
		Body   []Expression
	}

	// ReturnExpression has a nil Value when no payload was given
	ReturnExpression struct {
		Locator
		Value Expression
	}

	BlockExpression struct {
		Locator
		Statements []Expression
	}

	// IfExpression has a nil Else when no else branch was given
	IfExpression struct {
		Locator
		Condition Expression
		Then      Expression
		Else      Expression
	}

	ForExpression struct {
		Locator
		Variable string
		Iterable Expression
		Body     Expression
	}

	WhileExpression struct {
		Locator
		Condition Expression
		Body      Expression
	}

	IndexExpression struct {
		Locator
		Object Expression
		Index  Expression
	}

	// ApplyExpression is the dot syntax application of a transformer to an object
	ApplyExpression struct {
		Locator
		Object      Expression
		Transformer string
		Arguments   []Expression
	}

	UseExpression struct {
		Locator
		Path string
	}
)

func render(e Expression) string {
	b := bytes.NewBufferString(``)
	e.toString(b)
	return b.String()
}

func list(b *bytes.Buffer, head string, exprs ...Expression) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, e := range exprs {
		b.WriteByte(' ')
		e.toString(b)
	}
	b.WriteByte(')')
}

func definition(b *bytes.Buffer, kind, name string, params []string, body []Expression) {
	b.WriteByte('(')
	b.WriteString(kind)
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(` [`)
	b.WriteString(strings.Join(params, ` `))
	b.WriteByte(']')
	for _, e := range body {
		b.WriteByte(' ')
		e.toString(b)
	}
	b.WriteByte(')')
}

func (e *NumberExpression) toString(b *bytes.Buffer) {
	b.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
}

func (e *StringExpression) toString(b *bytes.Buffer) {
	b.WriteString(strconv.Quote(e.Value))
}

func (e *BooleanExpression) toString(b *bytes.Buffer) {
	b.WriteString(strconv.FormatBool(e.Value))
}

func (e *ArrayExpression) toString(b *bytes.Buffer) {
	list(b, `array`, e.Elements...)
}

func (e *VariableExpression) toString(b *bytes.Buffer) {
	b.WriteString(e.Name)
}

func (e *BinaryExpression) toString(b *bytes.Buffer) {
	list(b, e.Operator.Literal, e.Left, e.Right)
}

func (e *UnaryExpression) toString(b *bytes.Buffer) {
	list(b, e.Operator.Literal, e.Right)
}

func (e *AssignExpression) toString(b *bytes.Buffer) {
	list(b, `= `+e.Name, e.Value)
}

func (e *CallExpression) toString(b *bytes.Buffer) {
	list(b, `call `+e.Callee, e.Arguments...)
}

func (e *FunctionExpression) toString(b *bytes.Buffer) {
	definition(b, `fn`, e.Name, e.Params, e.Body)
}

func (e *TransformerExpression) toString(b *bytes.Buffer) {
	definition(b, `transformer`, e.Name, e.Params, e.Body)
}

func (e *ReturnExpression) toString(b *bytes.Buffer) {
	if e.Value == nil {
		list(b, `return`)
	} else {
		list(b, `return`, e.Value)
	}
}

func (e *BlockExpression) toString(b *bytes.Buffer) {
	list(b, `block`, e.Statements...)
}

func (e *IfExpression) toString(b *bytes.Buffer) {
	if e.Else == nil {
		list(b, `if`, e.Condition, e.Then)
	} else {
		list(b, `if`, e.Condition, e.Then, e.Else)
	}
}

func (e *ForExpression) toString(b *bytes.Buffer) {
	list(b, `for `+e.Variable, e.Iterable, e.Body)
}

func (e *WhileExpression) toString(b *bytes.Buffer) {
	list(b, `while`, e.Condition, e.Body)
}

func (e *IndexExpression) toString(b *bytes.Buffer) {
	list(b, `index`, e.Object, e.Index)
}

func (e *ApplyExpression) toString(b *bytes.Buffer) {
	b.WriteString(`(apply `)
	e.Object.toString(b)
	b.WriteByte(' ')
	b.WriteString(e.Transformer)
	for _, a := range e.Arguments {
		b.WriteByte(' ')
		a.toString(b)
	}
	b.WriteByte(')')
}

func (e *UseExpression) toString(b *bytes.Buffer) {
	b.WriteString(`(use `)
	b.WriteString(strconv.Quote(e.Path))
	b.WriteByte(')')
}

func (e *NumberExpression) String() string      { return render(e) }
func (e *StringExpression) String() string      { return render(e) }
func (e *BooleanExpression) String() string     { return render(e) }
func (e *ArrayExpression) String() string       { return render(e) }
func (e *VariableExpression) String() string    { return render(e) }
func (e *BinaryExpression) String() string      { return render(e) }
func (e *UnaryExpression) String() string       { return render(e) }
func (e *AssignExpression) String() string      { return render(e) }
func (e *CallExpression) String() string        { return render(e) }
func (e *FunctionExpression) String() string    { return render(e) }
func (e *TransformerExpression) String() string { return render(e) }
func (e *ReturnExpression) String() string      { return render(e) }
func (e *BlockExpression) String() string       { return render(e) }
func (e *IfExpression) String() string          { return render(e) }
func (e *ForExpression) String() string         { return render(e) }
func (e *WhileExpression) String() string       { return render(e) }
func (e *IndexExpression) String() string       { return render(e) }
func (e *ApplyExpression) String() string       { return render(e) }
func (e *UseExpression) String() string         { return render(e) }
