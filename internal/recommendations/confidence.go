package recommendations

import (
	"math"

	"ai-processor/internal/shared/util"
)

// Confidence scores how much the recommendations can be trusted: more
// material entries raise it, warnings lower it. The result is not clamped
// beyond the two additive caps.
func Confidence(results LCAResults) float64 {
	score := 0.8
	if n := len(results.MaterialBreakdown); n > 0 {
		score += math.Min(0.15, float64(n)*0.02)
	}
	if n := len(results.Warnings); n > 0 {
		score -= math.Min(0.3, float64(n)*0.05)
	}
	return util.Round(score, 2)
}
