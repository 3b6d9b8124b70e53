package reports

import (
	"app/models"
	"app/utils"
)

// Classification thresholds.
const (
	maxThresholdFactor   = 3    // derived max when none is set: 3 x min
	highUtilizationSplit = 70.0 // normal/high split as % of max
	stockoutCriticalDays = 7
	stockoutHighDays     = 14
)

// maxLevel returns the item's maximum threshold, deriving 3 x min when one
// was never supplied.
func maxLevel(it models.StockItem) int {
	if it.MaxThreshold != nil && *it.MaxThreshold > 0 {
		return *it.MaxThreshold
	}
	return it.MinThreshold * maxThresholdFactor
}

// ClassifyStock assigns a status to one stock item from its current
// snapshot. There is no hysteresis: a quantity hovering at a threshold may
// flip category between report runs.
func ClassifyStock(it models.StockItem) models.StockLevel {
	max := maxLevel(it)

	utilization := 0.0
	if max > 0 {
		utilization = float64(it.Quantity) / float64(max) * 100
	}

	var status string
	switch {
	case it.Quantity == 0:
		status = models.StockStatusCritical
	case it.Quantity <= it.MinThreshold:
		status = models.StockStatusLow
	case it.Quantity > max:
		status = models.StockStatusOverstocked
	case utilization > highUtilizationSplit:
		status = models.StockStatusHigh
	default:
		status = models.StockStatusNormal
	}

	return models.StockLevel{
		ProductID:   it.ProductID,
		Name:        it.Name,
		SKU:         it.SKU,
		Category:    it.Category,
		Quantity:    it.Quantity,
		MinLevel:    it.MinThreshold,
		MaxLevel:    max,
		Status:      status,
		Utilization: utils.Round2(utilization),
		StockValue:  utils.Round2(float64(it.Quantity) * it.UnitCost),
	}
}

// ClassifyLowStock derives the low-stock row for an item at or below its
// minimum threshold. dailyUsage is the item's average units sold per day;
// anything below one unit a day is floored to one so the stockout estimate
// stays finite.
func ClassifyLowStock(it models.StockItem, dailyUsage float64) models.LowStockItem {
	usage := dailyUsage
	if usage < 1 {
		usage = 1
	}
	days := int(float64(it.Quantity) / usage)

	var urgency string
	switch {
	case days <= stockoutCriticalDays:
		urgency = models.UrgencyCritical
	case days <= stockoutHighDays:
		urgency = models.UrgencyHigh
	default:
		urgency = models.UrgencyMedium
	}

	reorder := maxLevel(it) - it.Quantity
	if reorder < 0 {
		reorder = 0
	}

	return models.LowStockItem{
		ProductID:         it.ProductID,
		Name:              it.Name,
		SKU:               it.SKU,
		Category:          it.Category,
		Quantity:          it.Quantity,
		MinLevel:          it.MinThreshold,
		DaysUntilStockout: days,
		Urgency:           urgency,
		ReorderQuantity:   reorder,
		StockValue:        utils.Round2(float64(it.Quantity) * it.UnitCost),
	}
}
