package analytics

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// roundHalfUp rounds to the nearest integer, halves going up (towards +Inf)
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// round2 rounds to two decimal places with half-up semantics
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// percentage returns part/total*100, or 0 when total is 0
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// wholeDaysBetween counts complete 24h periods from start to end, truncated toward zero
func wholeDaysBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / day)
}
