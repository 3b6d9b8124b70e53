package reports

import (
	"sort"

	"app/models"
	"app/utils"
)

// rankBy sorts buckets descending by metric, truncates to the top limit and
// computes each entry's percentage share of the untruncated total, so the
// figures reflect true share rather than a renormalized 100% of the visible
// rows. Ties keep their incoming order. A zero total yields zero percentages.
func rankBy(buckets []models.DimensionBucket, limit int, metric func(models.DimensionBucket) float64) []models.RankedEntry {
	sorted := make([]models.DimensionBucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric(sorted[i]) > metric(sorted[j])
	})

	var total float64
	for _, b := range sorted {
		total += metric(b)
	}

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]models.RankedEntry, 0, len(sorted))
	for _, b := range sorted {
		share := 0.0
		if total > 0 {
			share = metric(b) / total * 100
		}
		entries = append(entries, models.RankedEntry{
			ID:         b.ID,
			Name:       b.Name,
			Quantity:   b.Quantity,
			Revenue:    utils.Round2(b.Revenue),
			Percentage: utils.Round2(share),
		})
	}
	return entries
}

// RankByRevenue returns the top-N buckets by revenue.
func RankByRevenue(buckets []models.DimensionBucket, limit int) []models.RankedEntry {
	return rankBy(buckets, limit, func(b models.DimensionBucket) float64 { return b.Revenue })
}

// RankByQuantity returns the top-N buckets by units sold.
func RankByQuantity(buckets []models.DimensionBucket, limit int) []models.RankedEntry {
	return rankBy(buckets, limit, func(b models.DimensionBucket) float64 { return float64(b.Quantity) })
}
