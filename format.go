package distplot

import (
	"math"
	"strconv"
	"strings"
)

// formatShortest formats x with the fewest digits that read back as x.
// Whole numbers keep a ".0" and very large or small magnitudes use
// exponent notation, e.g. 1.0, 0.25, 1e+16, 5e-05.
func formatShortest(x float64) string {
	if s, ok := formatSpecial(x); ok {
		return s
	}
	if a := math.Abs(x); a != 0 && (a >= 1e16 || a < 1e-4) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatSignificant formats x with prec significant digits. Exponent
// notation is used once the decimal exponent reaches prec-1 or drops
// below -4; fixed notation keeps at least one fractional digit.
// For prec 2: 0.0, 2.5, 0.25, 1e+01, 1.2e+02, 1e-05.
func formatSignificant(x float64, prec int) string {
	if s, ok := formatSpecial(x); ok {
		return s
	}
	if prec < 1 {
		prec = 1
	}
	e := strconv.FormatFloat(x, 'e', prec-1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	n, _ := strconv.Atoi(exp)

	if n < -4 || n >= prec-1 {
		if strings.Contains(mant, ".") {
			mant = strings.TrimRight(mant, "0")
			mant = strings.TrimSuffix(mant, ".")
		}
		return mant + "e" + exp
	}

	s := strconv.FormatFloat(x, 'f', prec-1-n, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
	}
	if strings.HasSuffix(s, ".") || !strings.Contains(s, ".") {
		s = strings.TrimSuffix(s, ".") + ".0"
	}
	return s
}

func formatSpecial(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "nan", true
	case math.IsInf(x, 1):
		return "inf", true
	case math.IsInf(x, -1):
		return "-inf", true
	case x == 0 && math.Signbit(x):
		return "-0.0", true
	}
	return "", false
}
