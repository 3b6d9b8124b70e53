package reports

import (
	"fmt"

	"app/models"
)

// Rule thresholds for advisory generation.
const (
	lowStockShareLimit    = 0.20 // low-stock items as a share of the catalog
	overstockShareLimit   = 0.10 // overstocked items as a share of the catalog
	lowMarginLimit        = 15.0 // average margin % considered thin
	neutralRecommendation = "Inventory and sales levels are balanced; no action needed."
)

// recommendations concatenates rule groups in their fixed priority order.
// When no rule fired at all, a single neutral message is emitted so the list
// is never empty.
func recommendations(groups ...[]string) []string {
	out := []string{}
	for _, g := range groups {
		out = append(out, g...)
	}
	if len(out) == 0 {
		out = append(out, neutralRecommendation)
	}
	return out
}

// stockAdvisories evaluates catalog-wide stock rules: critical items first,
// then share-based strategy rules.
func stockAdvisories(totalProducts, criticalCount, lowCount, overstockedCount int) []string {
	out := []string{}
	if criticalCount > 0 {
		out = append(out, fmt.Sprintf("%d product(s) are out of stock; restock them immediately.", criticalCount))
	}
	if totalProducts > 0 {
		if float64(lowCount) > float64(totalProducts)*lowStockShareLimit {
			out = append(out, "More than 20% of the catalog is low on stock; review the inventory strategy and reorder points.")
		}
		if float64(overstockedCount) > float64(totalProducts)*overstockShareLimit {
			out = append(out, "Over 10% of the catalog is overstocked; consider promotions to move excess inventory.")
		}
	}
	return out
}

// trendAdvisories turns a sales trend into advisory text.
func trendAdvisories(trend models.TrendResult) []string {
	switch trend.Classification {
	case models.TrendDecreasing:
		return []string{"Sales are trending down; review promotions and pricing."}
	case models.TrendIncreasing:
		return []string{"Sales are trending up; make sure fast-moving items stay stocked."}
	default:
		return nil
	}
}

// lowStockAdvisories evaluates the low-stock report's urgency counts.
func lowStockAdvisories(summary models.LowStockSummary) []string {
	out := []string{}
	if summary.CriticalItems > 0 {
		out = append(out, fmt.Sprintf("%d item(s) will stock out within a week; reorder now.", summary.CriticalItems))
	}
	if summary.HighPriorityItems > 0 {
		out = append(out, fmt.Sprintf("%d item(s) are within two weeks of stocking out; schedule a reorder.", summary.HighPriorityItems))
	}
	return out
}

// valuationAdvisories flags thin margins across the catalog.
func valuationAdvisories(summary models.ValuationSummary) []string {
	if summary.TotalProducts > 0 && summary.AverageMargin < lowMarginLimit {
		return []string{fmt.Sprintf("Average margin is %.1f%%; review pricing or supplier costs.", summary.AverageMargin)}
	}
	return nil
}

// movementAdvisories flags a net outflow of stock.
func movementAdvisories(summary models.MovementSummary) []string {
	if summary.NetMovement < 0 {
		return []string{"Stock is flowing out faster than it is replenished; review purchase orders."}
	}
	return nil
}
