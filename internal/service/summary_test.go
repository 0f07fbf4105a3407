package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	cat := testCatalog(t)

	summary, err := Summarize(cat)
	require.NoError(t, err)

	assert.Equal(t, cat.Len(), summary.RecordCount)
	assert.Equal(t, len(cat.Conditions()), summary.ConditionCount)

	assert.Greater(t, summary.Sensitivity.Mean, 0.0)
	assert.LessOrEqual(t, summary.Sensitivity.Max, 1.0)
	assert.GreaterOrEqual(t, summary.Sensitivity.Min, 0.0)
	assert.LessOrEqual(t, summary.Sensitivity.Min, summary.Sensitivity.Median)
	assert.LessOrEqual(t, summary.Sensitivity.Median, summary.Sensitivity.Max)

	// The catalog contains an LR- of exactly 0 (a test that rules out
	// disease on a negative result), so the minimum must be 0.
	assert.Equal(t, 0.0, summary.LRMinus.Min)
	assert.Greater(t, summary.LRPlus.Max, 1.0)
}
