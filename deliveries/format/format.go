// Package format holds the presentation helpers used by the templates.
// Both functions are total: bad input degrades to a zero value.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Multiply returns value×arg, or 0 when either side is not numeric.
func Multiply(value, arg interface{}) float64 {
	a, okA := toFloat(value)
	b, okB := toFloat(arg)
	if !okA || !okB {
		return 0
	}
	return a * b
}

// Currency renders a Brazilian currency string with two fraction digits and
// a comma decimal separator, e.g. 1234.5 -> "R$ 1234,50".
func Currency(value interface{}) string {
	v, ok := toFloat(value)
	if !ok {
		return "R$ 0,00"
	}
	return strings.Replace(fmt.Sprintf("R$ %.2f", v), ".", ",", 1)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case nil:
		return 0, false
	}
	return 0, false
}
