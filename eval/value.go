package eval

import (
	"math"

	"github.com/signadot/jolicitron/ir"
)

// ToFloat converts the numeric results expr produces to float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return math.NaN(), false
	}
}

// FromFloat is the env value bound for a numeric name: safe integers bind as
// int so integer operators such as % apply to them.
func FromFloat(f float64) any {
	if ir.IsSafeInteger(f) {
		return int(f)
	}
	return f
}
