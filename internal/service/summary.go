package service

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/lr-explorer-server/internal/catalog"
	"github.com/lr-explorer-server/internal/domain"
)

// Summarize computes descriptive statistics over the catalog's numeric
// columns for the catalog overview panel.
func Summarize(cat *catalog.Catalog) (domain.CatalogSummary, error) {
	records := cat.Records()

	sens := make([]float64, len(records))
	spec := make([]float64, len(records))
	lrPlus := make([]float64, len(records))
	lrMinus := make([]float64, len(records))
	for i, rec := range records {
		sens[i] = rec.Sensitivity
		spec[i] = rec.Specificity
		lrPlus[i] = rec.LRPlus
		lrMinus[i] = rec.LRMinus
	}

	summary := domain.CatalogSummary{
		RecordCount:    len(records),
		ConditionCount: len(cat.Conditions()),
	}

	var err error
	if summary.Sensitivity, err = summarizeField(sens); err != nil {
		return domain.CatalogSummary{}, fmt.Errorf("sensitivity summary: %w", err)
	}
	if summary.Specificity, err = summarizeField(spec); err != nil {
		return domain.CatalogSummary{}, fmt.Errorf("specificity summary: %w", err)
	}
	if summary.LRPlus, err = summarizeField(lrPlus); err != nil {
		return domain.CatalogSummary{}, fmt.Errorf("LR+ summary: %w", err)
	}
	if summary.LRMinus, err = summarizeField(lrMinus); err != nil {
		return domain.CatalogSummary{}, fmt.Errorf("LR- summary: %w", err)
	}

	return summary, nil
}

func summarizeField(values []float64) (domain.FieldSummary, error) {
	data := stats.Float64Data(values)

	mean, err := stats.Mean(data)
	if err != nil {
		return domain.FieldSummary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return domain.FieldSummary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return domain.FieldSummary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return domain.FieldSummary{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return domain.FieldSummary{}, err
	}

	return domain.FieldSummary{Mean: mean, Median: median, Min: min, Max: max, StdDev: stdDev}, nil
}
