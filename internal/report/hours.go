package report

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CoerceHours converts a stored hours value to float64. Values that do not
// parse count as zero.
func CoerceHours(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
