// Package service implements the probability engine, outcome grids, record
// views, and session state machine behind the likelihood-ratio explorer.
package service

import "math"

// The probability engine never rejects numeric input. Out-of-range values are
// clamped and NaN degrades to 0, so a what-if slider can never surface NaN or
// an infinity in a derived field.

// ClampProbability forces p into [0,1]. NaN maps to 0.
func ClampProbability(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ProbabilityToOdds converts a probability into odds, p / (1 - p).
// p is clamped first; p = 1 yields +Inf, which OddsToProbability maps back
// to exactly 1.
func ProbabilityToOdds(p float64) float64 {
	p = ClampProbability(p)
	if p == 1 {
		return math.Inf(1)
	}
	return p / (1 - p)
}

// OddsToProbability converts odds into a probability, o / (1 + o), clamped
// to [0,1]. Infinite odds map to 1; negative or NaN odds map to 0.
func OddsToProbability(o float64) float64 {
	if math.IsNaN(o) || o < 0 {
		return 0
	}
	if math.IsInf(o, 1) {
		return 1
	}
	return ClampProbability(o / (1 + o))
}

// PostTestProbability applies a likelihood ratio to a pre-test probability:
// prior odds times LR, converted back to a probability. The result is always
// finite in [0,1] for any prior and any LR >= 0, including LR = 0 and very
// large LRs. A neutral LR of 1 returns the prior unchanged.
func PostTestProbability(prior, lr float64) float64 {
	prior = ClampProbability(prior)
	if math.IsNaN(lr) || lr < 0 {
		lr = 0
	}

	odds := ProbabilityToOdds(prior)
	if math.IsInf(odds, 1) {
		// Certain prior: a positive LR keeps certainty, an LR of zero
		// (a test that never misses) forces the posterior to zero.
		if lr > 0 {
			return 1
		}
		return 0
	}

	return OddsToProbability(odds * lr)
}
