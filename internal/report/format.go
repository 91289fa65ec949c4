package report

import (
	"strconv"
	"strings"
	"unicode"
)

// Label normalizes a snake_case parameter key into a title-case
// display label: "well_name" -> "Well Name"
func Label(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Num renders a float at the precision it already carries: shortest
// decimal form, never exponent notation. Values computed by the
// engine are displayed as-is, without re-rounding.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Num1 renders a locally computed value at one decimal place
func Num1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
