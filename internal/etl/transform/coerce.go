package transform

import (
	"math"
	"strconv"
	"strings"
)

// toFloat parses any cell permissively. Non-numeric values coerce to nil, not
// an error; callers decide whether nil means 0 or stays null.
func toFloat(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case int64:
		f := float64(val)
		return &f
	case int:
		f := float64(val)
		return &f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func toInt(v any) *int64 {
	f := toFloat(v)
	if f == nil {
		return nil
	}
	i := int64(*f)
	return &i
}

// nutritionValue coerces a nutrition field: unparseable and negative inputs
// both land on 0.
func nutritionValue(v any) float64 {
	f := toFloat(v)
	if f == nil || *f < 0 {
		return 0
	}
	return *f
}

// round2 applies the 2-decimal rounding used for physical measurements.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// measurement parses a physical measurement, scales it (1 for none) and
// rounds to 2 decimals. Unparseable values stay nil.
func measurement(v any, scale float64) *float64 {
	f := toFloat(v)
	if f == nil {
		return nil
	}
	r := round2(*f * scale)
	return &r
}
