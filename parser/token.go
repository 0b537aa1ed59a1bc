package parser

import "fmt"

type TokenType int

const (
	Number = TokenType(iota)
	String
	Identifier
	True
	False

	Plus
	Minus
	Multiply
	Divide
	Modulo
	Equal

	LessThan
	LessThanEqual
	GreaterThan
	GreaterThanEqual
	EqualEqual
	BangEqual

	And
	Or
	Not

	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Semicolon
	Dot

	Fn
	Return
	If
	Else
	For
	In
	While
	Transformer
	Use

	EOF
)

var tokenNames = [...]string{
	Number:           `Number`,
	String:           `String`,
	Identifier:       `Identifier`,
	True:             `True`,
	False:            `False`,
	Plus:             `Plus`,
	Minus:            `Minus`,
	Multiply:         `Multiply`,
	Divide:           `Divide`,
	Modulo:           `Modulo`,
	Equal:            `Equal`,
	LessThan:         `LessThan`,
	LessThanEqual:    `LessThanEqual`,
	GreaterThan:      `GreaterThan`,
	GreaterThanEqual: `GreaterThanEqual`,
	EqualEqual:       `EqualEqual`,
	BangEqual:        `BangEqual`,
	And:              `And`,
	Or:               `Or`,
	Not:              `Not`,
	LeftParen:        `LeftParen`,
	RightParen:       `RightParen`,
	LeftBracket:      `LeftBracket`,
	RightBracket:     `RightBracket`,
	LeftBrace:        `LeftBrace`,
	RightBrace:       `RightBrace`,
	Comma:            `Comma`,
	Semicolon:        `Semicolon`,
	Dot:              `Dot`,
	Fn:               `Fn`,
	Return:           `Return`,
	If:               `If`,
	Else:             `Else`,
	For:              `For`,
	In:               `In`,
	While:            `While`,
	Transformer:      `Transformer`,
	Use:              `Use`,
	EOF:              `EOF`,
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return `*UNKNOWN TOKEN*`
}

var keywords = map[string]TokenType{
	`fn`:          Fn,
	`return`:      Return,
	`true`:        True,
	`false`:       False,
	`if`:          If,
	`else`:        Else,
	`for`:         For,
	`in`:          In,
	`while`:       While,
	`transformer`: Transformer,
	`and`:         And,
	`or`:          Or,
	`not`:         Not,
	`use`:         Use,
}

// Token is a lexeme together with its kind and the line and column where it starts.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s '%s'", t.Type, t.Literal)
}
