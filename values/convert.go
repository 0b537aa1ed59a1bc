package values

import (
	"strconv"
	"strings"
)

// parseFloat parses decimal floating point text, including exponents and the
// words inf, infinity, and nan. Hexadecimal forms and digit separators are
// rejected. Values too large to represent become infinite.
func parseFloat(s string) (float64, bool) {
	if s == `` || strings.ContainsAny(s, `xXpP_`) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// ToNumber converts any value to a number. Strings that cannot be parsed
// become 0 except for "true" which becomes 1.
func ToNumber(v Value) Number {
	switch v := v.(type) {
	case Number:
		return v
	case String:
		if f, ok := parseFloat(string(v)); ok {
			return Number(f)
		}
		if v == `true` {
			return 1
		}
		return 0
	case Boolean:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ParseNumber is like ToNumber but only strings and numbers yield non zero values.
func ParseNumber(v Value) Number {
	switch v := v.(type) {
	case Number:
		return v
	case String:
		if f, ok := parseFloat(string(v)); ok {
			return Number(f)
		}
	}
	return 0
}

// ToBool returns the truth of a value. Zero, the empty string, "false", "0",
// the empty array, and nil are false.
func ToBool(v Value) Boolean {
	switch v := v.(type) {
	case Number:
		return v != 0
	case String:
		return !(v == `` || v == `false` || v == `0`)
	case Boolean:
		return v
	case Array:
		return len(v) > 0
	case *Function, *Transformer:
		return true
	default:
		return false
	}
}

// ParseBool returns true for the strings "true", "1", and "yes" and false for
// all other strings. Values that are not strings are converted using ToBool.
func ParseBool(v Value) Boolean {
	if s, ok := v.(String); ok {
		return s == `true` || s == `1` || s == `yes`
	}
	return ToBool(v)
}

// ToArray wraps any value that is not an array in a one element array
func ToArray(v Value) Array {
	if a, ok := v.(Array); ok {
		return a
	}
	return Array{v}
}
