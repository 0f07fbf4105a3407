package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolarity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Polarity
		wantErr bool
	}{
		{"Lower-case positive", "positive", POSITIVE, false},
		{"Lower-case negative", "negative", NEGATIVE, false},
		{"Canonical positive", "POSITIVE", POSITIVE, false},
		{"Canonical negative", "NEGATIVE", NEGATIVE, false},
		{"Empty string", "", "", true},
		{"Unknown value", "maybe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolarity(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPolarity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range []SortKey{SortByTest, SortByCondition, SortBySensitivity, SortBySpecificity, SortByLRPlus, SortByLRMinus} {
		got, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseSortKey("prevalence")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestSortKeyIsNumeric(t *testing.T) {
	assert.False(t, SortByTest.IsNumeric())
	assert.False(t, SortByCondition.IsNumeric())
	assert.True(t, SortBySensitivity.IsNumeric())
	assert.True(t, SortBySpecificity.IsNumeric())
	assert.True(t, SortByLRPlus.IsNumeric())
	assert.True(t, SortByLRMinus.IsNumeric())
}

func TestSortDirectionToggle(t *testing.T) {
	assert.Equal(t, DESCENDING, ASCENDING.Toggle())
	assert.Equal(t, ASCENDING, DESCENDING.Toggle())
}

func TestTestRecordLR(t *testing.T) {
	rec := TestRecord{Test: "PSA", Condition: "Prostate Cancer", LRPlus: 1.10, LRMinus: 0.50}
	assert.Equal(t, 1.10, rec.LR(POSITIVE))
	assert.Equal(t, 0.50, rec.LR(NEGATIVE))
}
