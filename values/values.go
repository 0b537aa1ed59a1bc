// Package values contains the runtime values of the language: numbers,
// strings, booleans, arrays, functions, transformers, and nil.
//
// Values are immutable. Operations that produce a new array always
// allocate a new backing slice, so copying a Value never shares state.
package values

import (
	"github.com/lyraproj/mlang/parser"
)

type (
	Value interface {
		// String returns the canonical textual rendering of the value
		String() string
	}

	Number float64

	String string

	Boolean bool

	Array []Value

	// Function is a user defined function. It carries its body verbatim and
	// does not capture any environment.
	Function struct {
		Params []string
		Body   []parser.Expression
	}

	// Transformer is a function that is applied to an object using dot syntax.
	Transformer struct {
		Params []string
		Body   []parser.Expression
	}

	nilValue struct{}
)

// Nil is the only instance of the nil value
var Nil Value = nilValue{}

func (v Number) String() string {
	return FormatNumber(float64(v))
}

func (v String) String() string {
	return string(v)
}

func (v Boolean) String() string {
	if v {
		return `true`
	}
	return `false`
}

func (v Array) String() string {
	b := make([]byte, 0, 16)
	b = append(b, '[')
	for i, e := range v {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = append(b, e.String()...)
	}
	b = append(b, ']')
	return string(b)
}

// Concat returns a new array with the elements of v followed by those of o
func (v Array) Concat(o Array) Array {
	r := make(Array, 0, len(v)+len(o))
	r = append(r, v...)
	return append(r, o...)
}

func (v *Function) String() string {
	return `<function>`
}

func (v *Transformer) String() string {
	return `<transformer>`
}

func (nilValue) String() string {
	return `nil`
}

// IsNil returns true if v is the nil value
func IsNil(v Value) bool {
	return v == Nil
}
