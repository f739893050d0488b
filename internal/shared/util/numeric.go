package util

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned by ToFloat for values that carry no number.
var ErrNotNumeric = errors.New("not a numeric value")

// ToFloat converts a decoded JSON value to float64. ok is false for nil.
func ToFloat(v any) (f float64, ok bool, err error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return n, true, nil
	case float32:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil || !finite(f) {
			return 0, false, ErrNotNumeric
		}
		return f, true, nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(f) {
			return 0, false, ErrNotNumeric
		}
		return f, true, nil
	default:
		return 0, false, ErrNotNumeric
	}
}

// finite rejects the Inf and NaN spellings strconv accepts.
func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
