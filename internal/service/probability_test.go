package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbabilityOddsRoundTrip(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.01 {
		got := OddsToProbability(ProbabilityToOdds(p))
		assert.InDelta(t, p, got, 1e-9, "round trip for p=%f", p)
	}
}

func TestRoundTripAtCertainty(t *testing.T) {
	// p = 1 produces unbounded odds; the round trip must still yield exactly 1.
	assert.Equal(t, 1.0, OddsToProbability(ProbabilityToOdds(1.0)))
}

func TestOddsToProbability(t *testing.T) {
	tests := []struct {
		name string
		odds float64
		want float64
	}{
		{"Zero odds", 0, 0},
		{"Even odds", 1, 0.5},
		{"High odds", 9, 0.9},
		{"Infinite odds", math.Inf(1), 1},
		{"Negative odds clamp", -3, 0},
		{"NaN odds clamp", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OddsToProbability(tt.odds), 1e-12)
		})
	}
}

func TestPostTestProbabilityNeutralLRIsIdentity(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.05 {
		assert.InDelta(t, p, PostTestProbability(p, 1), 1e-12, "prior %f", p)
	}
	assert.Equal(t, 1.0, PostTestProbability(1, 1))
}

func TestPostTestProbabilityStaysInUnitInterval(t *testing.T) {
	priors := []float64{0, 0.001, 0.1, 0.5, 0.9, 0.999, 1}
	ratios := []float64{0, 0.01, 0.5, 1, 10, 144, 1e6, 1e300}

	for _, p := range priors {
		for _, lr := range ratios {
			got := PostTestProbability(p, lr)
			assert.False(t, math.IsNaN(got), "NaN for prior=%v lr=%v", p, lr)
			assert.False(t, math.IsInf(got, 0), "Inf for prior=%v lr=%v", p, lr)
			assert.GreaterOrEqual(t, got, 0.0, "prior=%v lr=%v", p, lr)
			assert.LessOrEqual(t, got, 1.0, "prior=%v lr=%v", p, lr)
		}
	}
}

func TestPostTestProbabilityScenario(t *testing.T) {
	// Prevalence 10%, LR+ 10: odds 0.111 * 10 = 1.11, probability 0.526.
	assert.InDelta(t, 0.526, PostTestProbability(0.10, 10), 0.001)
}

func TestPostTestProbabilityZeroLR(t *testing.T) {
	// An LR of 0 (a test that never misses) drives any uncertain prior to 0.
	assert.Equal(t, 0.0, PostTestProbability(0.5, 0))
	assert.Equal(t, 0.0, PostTestProbability(0.999, 0))
	// A certain prior with LR 0 resolves to 0 rather than NaN.
	assert.Equal(t, 0.0, PostTestProbability(1, 0))
}

func TestPostTestProbabilityClampsInvalidInput(t *testing.T) {
	assert.Equal(t, 0.0, PostTestProbability(math.NaN(), 10))
	assert.Equal(t, 0.0, PostTestProbability(0.5, math.NaN()))
	assert.Equal(t, 0.0, PostTestProbability(-2, 10))
	assert.InDelta(t, PostTestProbability(1, 10), 1.0, 1e-12)
}

func TestClampProbability(t *testing.T) {
	assert.Equal(t, 0.0, ClampProbability(-0.5))
	assert.Equal(t, 1.0, ClampProbability(1.5))
	assert.Equal(t, 0.0, ClampProbability(math.NaN()))
	assert.Equal(t, 0.25, ClampProbability(0.25))
}
