package utils

import (
	"unicode/utf8"
)

// StringReader reads runes from a string while keeping track of the line and
// column of the next rune to be read. Lines and columns are 1-based.
type StringReader struct {
	p int
	l int
	c int
	s string
}

func NewStringReader(s string) *StringReader {
	return &StringReader{p: 0, l: 1, c: 1, s: s}
}

// Next returns the next rune and advances the reader. It returns 0 once the
// end of the string has been reached. An invalid UTF-8 byte is returned as
// utf8.RuneError and skipped.
func (r *StringReader) Next() rune {
	if r.p >= len(r.s) {
		return 0
	}
	c := rune(r.s[r.p])
	if c < utf8.RuneSelf {
		r.p++
	} else {
		var size int
		c, size = utf8.DecodeRuneInString(r.s[r.p:])
		r.p += size
	}
	if c == '\n' {
		r.l++
		r.c = 1
	} else {
		r.c++
	}
	return c
}

// Peek returns the rune that the next call to Next will return without
// advancing the reader.
func (r *StringReader) Peek() rune {
	if r.p >= len(r.s) {
		return 0
	}
	c := rune(r.s[r.p])
	if c >= utf8.RuneSelf {
		c, _ = utf8.DecodeRuneInString(r.s[r.p:])
	}
	return c
}

// AtEnd returns true when all runes have been read.
func (r *StringReader) AtEnd() bool {
	return r.p >= len(r.s)
}

func (r *StringReader) Column() int {
	return r.c
}

func (r *StringReader) Line() int {
	return r.l
}
