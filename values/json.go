package values

import (
	"strings"
)

// ToJSON renders v as JSON text one level deep. Strings are quoted without
// escaping and arrays nested within an array are written as [...].
// Nil, functions, and transformers become null.
func ToJSON(v Value) string {
	a, ok := v.(Array)
	if !ok {
		return jsonScalar(v)
	}
	b := strings.Builder{}
	b.WriteByte('[')
	for i, e := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		if _, nested := e.(Array); nested {
			b.WriteString(`[...]`)
		} else {
			b.WriteString(jsonScalar(e))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func jsonScalar(v Value) string {
	switch v := v.(type) {
	case String:
		return `"` + string(v) + `"`
	case Number, Boolean:
		return v.String()
	default:
		return `null`
	}
}
