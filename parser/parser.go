package parser

import (
	"strconv"

	"github.com/lyraproj/issue/issue"
)

// Parser is a recursive descent parser that turns a token sequence into an
// Expression. A Parser is not reusable.
type Parser struct {
	file    string
	tokens  []Token
	current int
}

// NewParser creates a parser for the given tokens. The tokens must end with an
// EOF token. The file name is only used in the locations of expressions and
// reported issues.
func NewParser(file string, tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF})
	}
	return &Parser{file: file, tokens: tokens}
}

// Parse lexes and parses the given source.
func Parse(file, src string) (Expression, issue.Reported) {
	return NewParser(file, Tokenize(src)).Parse()
}

// Parse parses all statements up to EOF. A program consisting of exactly one
// statement is returned as that statement, any other program is returned as
// a *BlockExpression. Parsing stops at the first syntax error.
func (p *Parser) Parse() (expr Expression, err issue.Reported) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				err = ri
				expr = nil
				return
			}
			panic(r)
		}
	}()

	start := p.peek()
	statements := p.statementsUntil(EOF)
	if len(statements) == 1 {
		return statements[0], nil
	}
	return &BlockExpression{locatorAt(p.file, start), statements}, nil
}

// statementsUntil parses statements separated by optional semicolons until
// the given token type or EOF is reached. The end token is not consumed.
func (p *Parser) statementsUntil(end TokenType) []Expression {
	statements := make([]Expression, 0, 4)
	p.skipSemicolons()
	for !p.check(end) && !p.isAtEnd() {
		statements = append(statements, p.statement())
		p.skipSemicolons()
	}
	return statements
}

func (p *Parser) skipSemicolons() {
	for p.match(Semicolon) {
	}
}

func (p *Parser) statement() Expression {
	switch {
	case p.match(Fn):
		return p.functionDefinition()
	case p.match(Transformer):
		return p.transformerDefinition()
	case p.match(Use):
		return p.useStatement()
	case p.match(Return):
		return p.returnStatement()
	case p.match(If):
		return p.ifStatement()
	case p.match(For):
		return p.forLoop()
	case p.match(While):
		return p.whileLoop()
	}
	return p.expression()
}

func (p *Parser) expression() Expression {
	return p.logicalOr()
}

func (p *Parser) logicalOr() Expression {
	expr := p.logicalAnd()
	for p.match(Or) {
		op := p.previous()
		expr = &BinaryExpression{locatorAt(p.file, op), expr, op, p.logicalAnd()}
	}
	return expr
}

func (p *Parser) logicalAnd() Expression {
	expr := p.assignment()
	for p.match(And) {
		op := p.previous()
		expr = &BinaryExpression{locatorAt(p.file, op), expr, op, p.assignment()}
	}
	return expr
}

func (p *Parser) assignment() Expression {
	expr := p.equality()
	if p.match(Equal) {
		eq := p.previous()
		value := p.assignment()
		if v, ok := expr.(*VariableExpression); ok {
			return &AssignExpression{v.Locator, v.Name, value}
		}
		panic(p.error(ParseInvalidAssignmentTarget, eq, issue.NO_ARGS))
	}
	return expr
}

// binary parses a left associative chain of the given operators with
// operands produced by next.
func (p *Parser) binary(next func() Expression, ops ...TokenType) Expression {
	expr := next()
	for p.match(ops...) {
		op := p.previous()
		expr = &BinaryExpression{locatorAt(p.file, op), expr, op, next()}
	}
	return expr
}

func (p *Parser) equality() Expression {
	return p.binary(p.comparison, EqualEqual, BangEqual)
}

func (p *Parser) comparison() Expression {
	return p.binary(p.term, LessThan, LessThanEqual, GreaterThan, GreaterThanEqual)
}

func (p *Parser) term() Expression {
	return p.binary(p.factor, Plus, Minus)
}

func (p *Parser) factor() Expression {
	return p.binary(p.unary, Multiply, Divide, Modulo)
}

func (p *Parser) unary() Expression {
	if p.match(Minus, Not) {
		op := p.previous()
		return &UnaryExpression{locatorAt(p.file, op), op, p.unary()}
	}
	return p.call()
}

func (p *Parser) call() Expression {
	expr := p.primary()
	for {
		switch {
		case p.match(LeftParen):
			expr = p.finishCall(expr)
		case p.match(LeftBracket):
			lb := p.previous()
			index := p.expression()
			p.consume(RightBracket, `']'`, `index`)
			expr = &IndexExpression{locatorAt(p.file, lb), expr, index}
		case p.match(Dot):
			dot := p.previous()
			if !p.match(Identifier) {
				panic(p.expectedAfter(`identifier`, `'.'`))
			}
			name := p.previous().Literal
			p.consume(LeftParen, `'('`, `transformer name`)
			args := p.arguments()
			p.consume(RightParen, `')'`, `arguments`)
			expr = &ApplyExpression{locatorAt(p.file, dot), expr, name, args}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expression) Expression {
	lp := p.previous()
	args := p.arguments()
	p.consume(RightParen, `')'`, `arguments`)
	if v, ok := callee.(*VariableExpression); ok {
		return &CallExpression{v.Locator, v.Name, args}
	}
	panic(p.error(ParseExpectedName, lp, issue.H{`kind`: `function`}))
}

func (p *Parser) arguments() []Expression {
	args := make([]Expression, 0, 4)
	if !p.check(RightParen) {
		args = append(args, p.expression())
		for p.match(Comma) {
			args = append(args, p.expression())
		}
	}
	return args
}

func (p *Parser) primary() Expression {
	t := p.peek()
	loc := locatorAt(p.file, t)
	switch {
	case p.match(Number):
		f, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			// Out of range literals become infinite
			if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
				panic(p.error(ParseInvalidNumber, t, issue.H{`literal`: t.Literal}))
			}
		}
		return &NumberExpression{loc, f}
	case p.match(String):
		return &StringExpression{loc, t.Literal}
	case p.match(True):
		return &BooleanExpression{loc, true}
	case p.match(False):
		return &BooleanExpression{loc, false}
	case p.match(Identifier):
		return &VariableExpression{loc, t.Literal}
	case p.match(LeftBracket):
		return p.array()
	case p.match(LeftParen):
		expr := p.expression()
		p.consume(RightParen, `')'`, `expression`)
		return expr
	case p.match(Return):
		return p.returnStatement()
	}
	panic(p.error(ParseExpectedExpression, t, issue.NO_ARGS))
}

func (p *Parser) array() Expression {
	lb := p.previous()
	elements := make([]Expression, 0, 4)
	if !p.check(RightBracket) {
		elements = append(elements, p.expression())
		for p.match(Comma) {
			elements = append(elements, p.expression())
		}
	}
	p.consume(RightBracket, `']'`, `array elements`)
	return &ArrayExpression{locatorAt(p.file, lb), elements}
}

// branch parses a braced statement list. A single statement is returned
// as is, all other lists are wrapped in a block.
func (p *Parser) branch(after string) Expression {
	lb := p.previous()
	statements := p.statementsUntil(RightBrace)
	p.consume(RightBrace, `'}'`, after)
	if len(statements) == 1 {
		return statements[0]
	}
	return &BlockExpression{locatorAt(p.file, lb), statements}
}

// body parses a braced statement list into a block.
func (p *Parser) body(after string) *BlockExpression {
	lb := p.previous()
	statements := p.statementsUntil(RightBrace)
	p.consume(RightBrace, `'}'`, after)
	return &BlockExpression{locatorAt(p.file, lb), statements}
}

func (p *Parser) ifStatement() Expression {
	loc := locatorAt(p.file, p.previous())
	condition := p.expression()
	p.consume(LeftBrace, `'{'`, `if condition`)
	then := p.branch(`then branch`)

	var els Expression
	if p.match(Else) {
		p.consume(LeftBrace, `'{'`, `else`)
		els = p.branch(`else branch`)
	}
	return &IfExpression{loc, condition, then, els}
}

func (p *Parser) forLoop() Expression {
	loc := locatorAt(p.file, p.previous())
	if !p.match(Identifier) {
		panic(p.error(ParseExpectedName, p.peek(), issue.H{`kind`: `variable`}))
	}
	variable := p.previous().Literal
	p.consume(In, `'in'`, `variable`)
	iterable := p.expression()
	p.consume(LeftBrace, `'{'`, `iterable`)
	return &ForExpression{loc, variable, iterable, p.body(`for loop body`)}
}

func (p *Parser) whileLoop() Expression {
	loc := locatorAt(p.file, p.previous())
	condition := p.expression()
	p.consume(LeftBrace, `'{'`, `while condition`)
	return &WhileExpression{loc, condition, p.body(`while loop body`)}
}

// definition parses the name, parameters, and body shared by functions and
// transformers. The kind is used in error messages.
func (p *Parser) definition(kind string) (name string, params []string, body []Expression) {
	if !p.match(Identifier) {
		panic(p.error(ParseExpectedName, p.peek(), issue.H{`kind`: kind}))
	}
	name = p.previous().Literal
	p.consume(LeftParen, `'('`, kind+` name`)

	params = make([]string, 0, 4)
	if !p.check(RightParen) {
		for {
			if !p.match(Identifier) {
				panic(p.error(ParseExpectedName, p.peek(), issue.H{`kind`: `parameter`}))
			}
			params = append(params, p.previous().Literal)
			if !p.match(Comma) {
				break
			}
		}
	}
	p.consume(RightParen, `')'`, `parameters`)

	if !p.check(LeftBrace) {
		panic(p.error(ParseExpectedBefore, p.peek(), issue.H{`expected`: `'{'`, `before`: kind + ` body`}))
	}
	p.advance()
	body = p.statementsUntil(RightBrace)
	p.consume(RightBrace, `'}'`, kind+` body`)
	return
}

func (p *Parser) functionDefinition() Expression {
	loc := locatorAt(p.file, p.previous())
	name, params, body := p.definition(`function`)
	return &FunctionExpression{loc, name, params, body}
}

func (p *Parser) transformerDefinition() Expression {
	loc := locatorAt(p.file, p.previous())
	name, params, body := p.definition(`transformer`)
	return &TransformerExpression{loc, name, params, body}
}

func (p *Parser) returnStatement() Expression {
	loc := locatorAt(p.file, p.previous())
	var value Expression
	if !(p.check(Semicolon) || p.check(RightBrace) || p.isAtEnd()) {
		value = p.statement()
	}
	p.match(Semicolon)
	return &ReturnExpression{loc, value}
}

func (p *Parser) useStatement() Expression {
	loc := locatorAt(p.file, p.previous())
	if !p.match(String) {
		panic(p.expectedAfter(`string path`, `'use'`))
	}
	path := p.previous().Literal
	p.match(Semicolon)
	return &UseExpression{loc, path}
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

// consume advances past a token of the given type or panics with an
// "Expected <expected> after <after>" issue.
func (p *Parser) consume(tt TokenType, expected, after string) Token {
	if p.check(tt) {
		return p.advance()
	}
	panic(p.expectedAfter(expected, after))
}

func (p *Parser) expectedAfter(expected, after string) issue.Reported {
	return p.error(ParseExpectedAfter, p.peek(), issue.H{`expected`: expected, `after`: after})
}

func (p *Parser) error(code issue.Code, t Token, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, locatorAt(p.file, t))
}
