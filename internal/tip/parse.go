package tip

import (
	"math"
	"strconv"
	"strings"
)

// ParseInput converts user-typed text into a number. Empty or non-numeric
// text, NaN and infinities yield 0. Only '.' is accepted as decimal separator.
func ParseInput(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
