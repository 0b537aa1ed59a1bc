package values

import (
	"math"
	"strconv"
)

// FormatNumber returns the shortest decimal text that reads back as f.
// Exponent notation is never used, integral values have no fraction.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return `inf`
	case math.IsInf(f, -1):
		return `-inf`
	case math.IsNaN(f):
		return `NaN`
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
