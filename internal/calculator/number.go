package calculator

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Magnitudes outside [minPlain, maxPlain) render in exponent form
	minPlain = 1e-6
	maxPlain = 1e21
)

// FormatNumber renders a value the way the display shows it: the shortest
// decimal that round-trips, exponent form for very large or small values.
func FormatNumber(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		// also folds negative zero
		return "0"
	}

	abs := math.Abs(v)
	if abs >= maxPlain || abs < minPlain {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits ("1e-07"); the display does not
		mantissa, exp, ok := strings.Cut(s, "e")
		if !ok {
			return s
		}
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNumber reads a display string as a number. Anything that does not
// parse, or parses to a non-finite value, reads as 0.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// validLiteral reports whether s reads as a finite number
func validLiteral(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// finite replaces non-finite results with 0
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
