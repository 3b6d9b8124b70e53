package reports

import (
	"context"
	"time"

	"app/models"
	"app/utils"
)

// growthThreshold is the +/- percentage beyond which a trend is no longer
// considered stable.
const growthThreshold = 5.0

// classifyGrowth compares two half-window revenue totals. A zero first half
// reports growth 0 and stable: a jump from nothing to something is left
// unclassified on purpose rather than flagged as increasing.
func classifyGrowth(firstHalf, secondHalf float64) models.TrendResult {
	if firstHalf == 0 {
		return models.TrendResult{Growth: 0, Classification: models.TrendStable}
	}
	growth := (secondHalf - firstHalf) / firstHalf * 100
	result := models.TrendResult{Growth: utils.Round2(growth)}
	switch {
	case growth > growthThreshold:
		result.Classification = models.TrendIncreasing
	case growth < -growthThreshold:
		result.Classification = models.TrendDecreasing
	default:
		result.Classification = models.TrendStable
	}
	return result
}

// trend splits the window at its midpoint, aggregates revenue over
// [start, mid) and [mid, end] independently and classifies the change.
func (e *Engine) trend(ctx context.Context, report string, w Window, f Filters) (models.TrendResult, error) {
	mid := w.Mid()

	firstFilter := salesFilter(Window{Start: w.Start, End: mid.Add(-time.Nanosecond)}, f)
	first, err := e.salesSummary(ctx, report, firstFilter)
	if err != nil {
		return models.TrendResult{}, err
	}

	secondFilter := salesFilter(Window{Start: mid, End: w.End}, f)
	second, err := e.salesSummary(ctx, report, secondFilter)
	if err != nil {
		return models.TrendResult{}, err
	}

	return classifyGrowth(first.Revenue, second.Revenue), nil
}
