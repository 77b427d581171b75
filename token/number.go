package token

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var decimalRE = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts text the way JavaScript's Number() does: decimal
// literals with optional sign and exponent, Infinity, and unsigned 0x, 0o
// and 0b integers.
func ParseNumber(s string) (float64, bool) {
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}
	if !decimalRE.MatchString(s) {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return f, true
		}
		return math.NaN(), false
	}
	return f, true
}

func parseRadix(digits string, base int) (float64, bool) {
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return math.NaN(), false
	}
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN(), false
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f, true
}

