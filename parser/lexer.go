package parser

import (
	"bytes"

	"github.com/lyraproj/mlang/utils"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}

// Scan produces the tokens of src and passes them, one by one, to the given
// function. The last token is always EOF. Scan never fails. Characters that
// cannot start a token are skipped.
func Scan(src string, tf func(t Token)) {
	sr := utils.NewStringReader(src)
	buf := bytes.NewBufferString(``)

	for !sr.AtEnd() {
		line, col := sr.Line(), sr.Column()
		emit := func(tt TokenType, s string) {
			tf(Token{Type: tt, Literal: s, Line: line, Column: col})
		}

		// Two-character operator when the next rune is '=', single otherwise.
		withEqual := func(single, double TokenType, s string) {
			if sr.Peek() == '=' {
				sr.Next()
				emit(double, s+`=`)
			} else {
				emit(single, s)
			}
		}

		r := sr.Next()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			continue

		case isDigit(r):
			buf.Reset()
			buf.WriteRune(r)
			for c := sr.Peek(); isDigit(c) || c == '.'; c = sr.Peek() {
				buf.WriteRune(sr.Next())
			}
			emit(Number, buf.String())

		case r == '"':
			buf.Reset()
			for !sr.AtEnd() {
				c := sr.Next()
				if c == '"' {
					break
				}
				buf.WriteRune(c)
			}
			emit(String, buf.String())

		case isLetter(r):
			buf.Reset()
			buf.WriteRune(r)
			for c := sr.Peek(); isLetter(c) || isDigit(c); c = sr.Peek() {
				buf.WriteRune(sr.Next())
			}
			word := buf.String()
			if kw, ok := keywords[word]; ok {
				emit(kw, word)
			} else {
				emit(Identifier, word)
			}

		case r == '/':
			if sr.Peek() == '/' {
				for !sr.AtEnd() && sr.Next() != '\n' {
				}
				continue
			}
			emit(Divide, `/`)

		case r == '<':
			withEqual(LessThan, LessThanEqual, `<`)
		case r == '>':
			withEqual(GreaterThan, GreaterThanEqual, `>`)
		case r == '=':
			withEqual(Equal, EqualEqual, `=`)
		case r == '!':
			// A lone '!' is dropped
			if sr.Peek() == '=' {
				sr.Next()
				emit(BangEqual, `!=`)
			}

		default:
			if tt, ok := punctuation[r]; ok {
				emit(tt, string(r))
			}
		}
	}
	tf(Token{Type: EOF, Literal: ``, Line: sr.Line(), Column: sr.Column()})
}

var punctuation = map[rune]TokenType{
	'+': Plus,
	'-': Minus,
	'*': Multiply,
	'%': Modulo,
	'(': LeftParen,
	')': RightParen,
	'[': LeftBracket,
	']': RightBracket,
	'{': LeftBrace,
	'}': RightBrace,
	',': Comma,
	';': Semicolon,
	'.': Dot,
}

// Tokenize returns all tokens of src, terminated by an EOF token.
func Tokenize(src string) []Token {
	tokens := make([]Token, 0, len(src)/3+1)
	Scan(src, func(t Token) { tokens = append(tokens, t) })
	return tokens
}
