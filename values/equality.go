package values

// Equals implements the == operator. Numbers, strings, booleans, and nil are
// compared by value. Any other combination, including two arrays, is unequal.
func Equals(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a == b
		}
	case String:
		if b, ok := b.(String); ok {
			return a == b
		}
	case Boolean:
		if b, ok := b.(Boolean); ok {
			return a == b
		}
	case nilValue:
		return IsNil(b)
	}
	return false
}
