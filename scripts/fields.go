package scripts

import (
	"fmt"
	"math"

	"GopherSnippets/internal/behaviour"
)

// Saved fields arrive as float64 after a JSON round trip and as float32/int
// when handed over in memory, so the readers accept any numeric type.

func fieldFloat32(fields map[string]any, key string, fallback float32) (float32, error) {
	v, ok := fields[key]
	if !ok {
		return fallback, nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return fallback, fmt.Errorf("field %q: expected number, got %T", key, v)
	}
	if !finite32(float32(f)) {
		return fallback, fmt.Errorf("field %q: %v is not a finite float32", key, f)
	}
	return float32(f), nil
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func fieldInt(fields map[string]any, key string, fallback int) (int, error) {
	v, ok := fields[key]
	if !ok {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return fallback, fmt.Errorf("field %q: %v is not an integer", key, n)
		}
		// MaxInt converts up to 2^63, which is itself out of range
		if n < math.MinInt || n >= math.MaxInt {
			return fallback, fmt.Errorf("field %q: %v is out of range", key, n)
		}
		return int(n), nil
	default:
		return fallback, fmt.Errorf("field %q: expected integer, got %T", key, v)
	}
}

func errWrongScript(want string, got behaviour.Component) error {
	return fmt.Errorf("load %s: got %T", want, got)
}
