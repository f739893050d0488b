package materials

import "math"

const (
	imputedPenalty       = 0.2
	outlierPenalty       = 0.1
	lowConfidencePenalty = 0.1
	// lowConfidenceBelow is stricter than the categorization flag threshold.
	lowConfidenceBelow = 0.8
)

func scoreQuality(records []Record) {
	for _, r := range records {
		r[FieldDataQualityScore] = qualityScore(r)
	}
}

func qualityScore(r Record) float64 {
	score := 1.0
	if r.flag(FieldAIImputed) {
		score -= imputedPenalty
	}
	if r.flag(FieldOutlierFlag) {
		score -= outlierPenalty
	}
	confidence, ok, err := r.number(FieldConfidenceScore)
	if err != nil || !ok {
		confidence = 1.0
	}
	if confidence < lowConfidenceBelow {
		score -= lowConfidencePenalty
	}
	return math.Min(1, math.Max(0, score))
}
