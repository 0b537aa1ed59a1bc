package evaluator

import (
	"github.com/lyraproj/mlang/values"
)

type (
	// Scope is a chain of frames that map names to values. The innermost
	// frame is searched first.
	Scope interface {
		// Get returns the value bound to the name in the nearest frame that defines it
		Get(name string) (value values.Value, found bool)

		// Set updates the binding of the name in the nearest frame that defines it.
		// It returns false when no frame defines the name.
		Set(name string, value values.Value) bool

		// Define binds the name in the innermost frame
		Define(name string, value values.Value)

		// WithLocalScope pushes a new innermost frame, calls the producer, and
		// pops the frame again, also when the producer panics.
		WithLocalScope(producer func() values.Value) values.Value

		// Fork returns an independent deep copy of this scope
		Fork() Scope

		// Locals returns a copy of the bindings of the innermost frame
		Locals() map[string]values.Value

		// Depth returns the number of frames
		Depth() int
	}

	BasicScope struct {
		scopes []map[string]values.Value
	}
)

// NewScope creates a scope consisting of one empty frame
func NewScope() *BasicScope {
	return &BasicScope{[]map[string]values.Value{make(map[string]values.Value, 8)}}
}

func (e *BasicScope) WithLocalScope(producer func() values.Value) values.Value {
	epCount := len(e.scopes)
	defer func() {
		e.scopes = e.scopes[:epCount]
	}()
	e.scopes = append(e.scopes, make(map[string]values.Value, 8))
	return producer()
}

// Fork copies each frame. The values themselves are immutable and are shared.
func (e *BasicScope) Fork() Scope {
	clone := &BasicScope{}
	clone.copyFrom(e)
	return clone
}

func (e *BasicScope) copyFrom(src *BasicScope) {
	e.scopes = make([]map[string]values.Value, len(src.scopes))
	for i, s := range src.scopes {
		cm := make(map[string]values.Value, len(s))
		for k, v := range s {
			cm[k] = v
		}
		e.scopes[i] = cm
	}
}

func (e *BasicScope) Get(name string) (value values.Value, found bool) {
	for idx := len(e.scopes) - 1; idx >= 0; idx-- {
		if value, found = e.scopes[idx][name]; found {
			return
		}
	}
	return values.Nil, false
}

func (e *BasicScope) Set(name string, value values.Value) bool {
	for idx := len(e.scopes) - 1; idx >= 0; idx-- {
		if _, found := e.scopes[idx][name]; found {
			e.scopes[idx][name] = value
			return true
		}
	}
	return false
}

func (e *BasicScope) Define(name string, value values.Value) {
	e.scopes[len(e.scopes)-1][name] = value
}

func (e *BasicScope) Locals() map[string]values.Value {
	top := e.scopes[len(e.scopes)-1]
	cm := make(map[string]values.Value, len(top))
	for k, v := range top {
		cm[k] = v
	}
	return cm
}

func (e *BasicScope) Depth() int {
	return len(e.scopes)
}
