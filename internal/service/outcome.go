package service

import (
	"math"

	"github.com/lr-explorer-server/internal/domain"
)

// DeriveCounts partitions a cohort of total members into correct and
// incorrect outcome classes for a given rate. The correct count is rounded
// half away from zero (math.Round) and the incorrect count is derived by
// subtraction, never rounded independently, so the pair always sums exactly
// to total. A NaN or unavailable rate yields the neutral state (0, total).
func DeriveCounts(rate float64, total int) domain.OutcomePair {
	if total < 0 {
		total = 0
	}
	if math.IsNaN(rate) {
		return domain.OutcomePair{Correct: 0, Incorrect: total, Total: total}
	}
	rate = ClampProbability(rate)
	correct := int(math.Round(rate * float64(total)))
	return domain.OutcomePair{Correct: correct, Incorrect: total - correct, Total: total}
}

// DiseaseCohortGrid renders the diseased cohort: correct members are true
// positives (rate = sensitivity), incorrect are false negatives. A nil record
// yields the neutral grid.
func DiseaseCohortGrid(rec *domain.TestRecord, total int) domain.OutcomePair {
	if rec == nil {
		return DeriveCounts(math.NaN(), total)
	}
	return DeriveCounts(rec.Sensitivity, total)
}

// NonDiseaseCohortGrid renders the non-diseased cohort: correct members are
// true negatives (rate = specificity), incorrect are false positives. A nil
// record yields the neutral grid.
func NonDiseaseCohortGrid(rec *domain.TestRecord, total int) domain.OutcomePair {
	if rec == nil {
		return DeriveCounts(math.NaN(), total)
	}
	return DeriveCounts(rec.Specificity, total)
}

// PostTestGrid renders the post-test probability as a highlighted count out
// of the cohort, with no second outcome class beyond highlighted/unhighlighted.
func PostTestGrid(prob float64, total int) domain.OutcomePair {
	return DeriveCounts(prob, total)
}
