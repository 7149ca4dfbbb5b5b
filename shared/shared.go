package shared

import (
	"math"
	"strings"
)

// BuildCacheKey joins key parts with the conventional ":" separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
