package reports

import (
	"context"

	"app/models"
	"app/store"
	"app/utils"
)

// usageWindowDays is the trailing window used to estimate daily usage for
// stockout projections.
const usageWindowDays = 28

// restockEstimateFactor approximates inbound stock as a share of observed
// outbound movement. There is no purchase-order ledger to read real inbound
// movements from, so these rows are labeled estimated rather than observed.
const restockEstimateFactor = 0.8

// Customer segmentation thresholds on period spend.
const (
	vipSpendFloor     = 1000.0
	regularSpendFloor = 200.0
)

// DailySummary computes the daily sales snapshot for the given YYYY-MM-DD
// date, defaulting to today, with comparisons against yesterday and the same
// day last week.
func (e *Engine) DailySummary(ctx context.Context, date string) (*models.DailySummaryReport, error) {
	const report = "dailySummary"

	now := e.now()
	day := now
	if date != "" {
		w, err := resolveWindow(date, date, now)
		if err != nil {
			return nil, &InvalidFilterError{Field: "date", Value: date, Reason: "expected YYYY-MM-DD"}
		}
		day = w.Start
	}

	window := Window{Start: startOfDay(day), End: endOfDay(day)}
	f := salesFilter(window, Filters{})

	summary, err := e.salesSummary(ctx, report, f)
	if err != nil {
		return nil, err
	}

	byHour, err := e.salesByHour(ctx, report, f)
	if err != nil {
		return nil, err
	}

	products, err := e.salesByProduct(ctx, report, f)
	if err != nil {
		return nil, err
	}

	customers, err := e.salesByCustomer(ctx, report, f)
	if err != nil {
		return nil, err
	}

	dayRevenue := func(t Window) (float64, error) {
		s, err := e.salesSummary(ctx, report, salesFilter(t, Filters{}))
		if err != nil {
			return 0, err
		}
		return s.Revenue, nil
	}

	yesterday := day.AddDate(0, 0, -1)
	yesterdayRevenue, err := dayRevenue(Window{Start: startOfDay(yesterday), End: endOfDay(yesterday)})
	if err != nil {
		return nil, err
	}

	lastWeek := day.AddDate(0, 0, -7)
	lastWeekRevenue, err := dayRevenue(Window{Start: startOfDay(lastWeek), End: endOfDay(lastWeek)})
	if err != nil {
		return nil, err
	}

	return &models.DailySummaryReport{
		Date: window.Start.Format(dateLayout),
		Summary: models.DailySummary{
			TotalSales:        utils.Round2(summary.Revenue),
			TotalOrders:       summary.Orders,
			AverageOrderValue: utils.Round2(averageOrderValue(summary)),
			TotalItems:        summary.Items,
		},
		SalesByHour:         byHour,
		TopProducts:         RankByRevenue(products, 5),
		TopCustomers:        RankByRevenue(customers, 5),
		ComparisonYesterday: utils.Round2(utils.PercentChange(yesterdayRevenue, summary.Revenue)),
		ComparisonLastWeek:  utils.Round2(utils.PercentChange(lastWeekRevenue, summary.Revenue)),
	}, nil
}

// SalesByPeriod computes the full period sales report: totals, daily buckets,
// top products and customers, payment breakdown and the half-window trend.
func (e *Engine) SalesByPeriod(ctx context.Context, filters Filters) (*models.SalesReport, error) {
	const report = "salesByPeriod"

	window, err := e.window(filters)
	if err != nil {
		return nil, err
	}
	limit, err := topN(filters.Limit, defaultTopN)
	if err != nil {
		return nil, err
	}
	f := salesFilter(window, filters)

	summary, err := e.salesSummary(ctx, report, f)
	if err != nil {
		return nil, err
	}

	byDay, err := e.salesByDay(ctx, report, f)
	if err != nil {
		return nil, err
	}

	products, err := e.salesByProduct(ctx, report, f)
	if err != nil {
		return nil, err
	}

	customers, err := e.salesByCustomer(ctx, report, f)
	if err != nil {
		return nil, err
	}

	payments, err := e.salesByPayment(ctx, report, f)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		payments[i].Revenue = utils.Round2(payments[i].Revenue)
	}

	trend, err := e.trend(ctx, report, window, filters)
	if err != nil {
		return nil, err
	}

	return &models.SalesReport{
		Period:            window.Label(),
		TotalSales:        utils.Round2(summary.Revenue),
		TotalOrders:       summary.Orders,
		AverageOrderValue: utils.Round2(averageOrderValue(summary)),
		TopProducts:       RankByRevenue(products, limit),
		TopCustomers:      RankByRevenue(customers, limit),
		SalesByDay:        byDay,
		PaymentBreakdown:  payments,
		Trend:             trend,
	}, nil
}

// TopProducts ranks products by revenue over the filter window.
func (e *Engine) TopProducts(ctx context.Context, filters Filters) (*models.TopProductsReport, error) {
	const report = "topProducts"

	window, err := e.window(filters)
	if err != nil {
		return nil, err
	}
	limit, err := topN(filters.Limit, defaultTopN)
	if err != nil {
		return nil, err
	}

	products, err := e.salesByProduct(ctx, report, salesFilter(window, filters))
	if err != nil {
		return nil, err
	}

	var total float64
	for _, p := range products {
		total += p.Revenue
	}

	return &models.TopProductsReport{
		Period:       window.Label(),
		TotalRevenue: utils.Round2(total),
		TopProducts:  RankByRevenue(products, limit),
	}, nil
}

// CustomerSales breaks period sales down by customer with spend segments.
func (e *Engine) CustomerSales(ctx context.Context, filters Filters) (*models.CustomerSalesReport, error) {
	const report = "customerSales"

	window, err := e.window(filters)
	if err != nil {
		return nil, err
	}
	limit, err := topN(filters.Limit, 20)
	if err != nil {
		return nil, err
	}

	customers, err := e.salesByCustomer(ctx, report, salesFilter(window, filters))
	if err != nil {
		return nil, err
	}

	var total float64
	var segments models.CustomerSegments
	for _, c := range customers {
		total += c.Revenue
		switch {
		case c.Revenue >= vipSpendFloor:
			segments.VIP++
		case c.Revenue >= regularSpendFloor:
			segments.Regular++
		default:
			segments.Occasional++
		}
	}

	average := 0.0
	if len(customers) > 0 {
		average = total / float64(len(customers))
	}

	return &models.CustomerSalesReport{
		Period:               window.Label(),
		TotalCustomers:       len(customers),
		TotalRevenue:         utils.Round2(total),
		CustomerSales:        RankByRevenue(customers, limit),
		Segments:             segments,
		AverageCustomerValue: utils.Round2(average),
	}, nil
}

// StockLevels classifies every stock item in the catalog (optionally one
// category) and summarizes catalog health.
func (e *Engine) StockLevels(ctx context.Context, category string) (*models.StockLevelReport, error) {
	const report = "stockLevels"

	items, err := e.stockItems(ctx, report, category)
	if err != nil {
		return nil, err
	}

	levels := make([]models.StockLevel, 0, len(items))
	var summary models.StockLevelSummary
	var utilizationSum float64
	criticalCount := 0
	for _, it := range items {
		level := ClassifyStock(it)
		levels = append(levels, level)

		summary.TotalValue += level.StockValue
		utilizationSum += level.Utilization
		switch level.Status {
		case models.StockStatusCritical:
			criticalCount++
			summary.LowStockCount++
		case models.StockStatusLow:
			summary.LowStockCount++
		case models.StockStatusOverstocked:
			summary.OverstockedCount++
		}
	}
	summary.TotalProducts = len(items)
	summary.TotalValue = utils.Round2(summary.TotalValue)
	if len(items) > 0 {
		summary.AverageUtilization = utils.Round2(utilizationSum / float64(len(items)))
	}

	recs := recommendations(
		stockAdvisories(summary.TotalProducts, criticalCount, summary.LowStockCount, summary.OverstockedCount),
	)

	return &models.StockLevelReport{
		Summary:         summary,
		StockLevels:     levels,
		Recommendations: recs,
	}, nil
}

// LowStock lists items at or below their minimum threshold with urgency
// tiers and reorder suggestions. Daily usage comes from the trailing
// four-week sales window.
func (e *Engine) LowStock(ctx context.Context) (*models.LowStockReport, error) {
	const report = "lowStock"

	items, err := e.stockItems(ctx, report, "")
	if err != nil {
		return nil, err
	}

	now := e.now()
	usageFilter := store.SalesFilter{
		Start: startOfDay(now.AddDate(0, 0, -usageWindowDays)),
		End:   endOfDay(now),
	}
	usage, err := e.store.DailyUnitsSold(ctx, usageFilter)
	if err != nil {
		return nil, queryErr(report, usageFilter, err)
	}

	lowItems := make([]models.LowStockItem, 0)
	var summary models.LowStockSummary
	for _, it := range items {
		if it.Quantity > it.MinThreshold {
			continue
		}
		row := ClassifyLowStock(it, usage[it.ProductID])
		lowItems = append(lowItems, row)

		summary.TotalLowStockItems++
		summary.TotalValue += row.StockValue
		switch row.Urgency {
		case models.UrgencyCritical:
			summary.CriticalItems++
		case models.UrgencyHigh:
			summary.HighPriorityItems++
		}
	}
	summary.TotalValue = utils.Round2(summary.TotalValue)

	return &models.LowStockReport{
		Summary:         summary,
		LowStockItems:   lowItems,
		Recommendations: recommendations(lowStockAdvisories(summary)),
	}, nil
}

// InventoryValuation values the catalog at cost and retail, per category.
func (e *Engine) InventoryValuation(ctx context.Context) (*models.ValuationReport, error) {
	const report = "inventoryValuation"

	items, err := e.stockItems(ctx, report, "")
	if err != nil {
		return nil, err
	}

	var summary models.ValuationSummary
	byCategory := make(map[string]*models.CategoryValuation)
	order := []string{}
	for _, it := range items {
		cost := float64(it.Quantity) * it.UnitCost
		retail := float64(it.Quantity) * it.SellingPrice

		summary.TotalProducts++
		summary.TotalCost += cost
		summary.TotalRetail += retail

		cat, exists := byCategory[it.Category]
		if !exists {
			cat = &models.CategoryValuation{Category: it.Category}
			byCategory[it.Category] = cat
			order = append(order, it.Category)
		}
		cat.Products++
		cat.TotalCost += cost
		cat.TotalRetail += retail
	}

	summary.TotalProfit = summary.TotalRetail - summary.TotalCost
	if summary.TotalRetail > 0 {
		summary.AverageMargin = summary.TotalProfit / summary.TotalRetail * 100
	}

	categories := make([]models.CategoryValuation, 0, len(order))
	for _, name := range order {
		cat := byCategory[name]
		if cat.TotalRetail > 0 {
			cat.Margin = utils.Round2((cat.TotalRetail - cat.TotalCost) / cat.TotalRetail * 100)
		}
		cat.TotalCost = utils.Round2(cat.TotalCost)
		cat.TotalRetail = utils.Round2(cat.TotalRetail)
		categories = append(categories, *cat)
	}

	recs := recommendations(valuationAdvisories(summary))

	summary.TotalCost = utils.Round2(summary.TotalCost)
	summary.TotalRetail = utils.Round2(summary.TotalRetail)
	summary.TotalProfit = utils.Round2(summary.TotalProfit)
	summary.AverageMargin = utils.Round2(summary.AverageMargin)

	return &models.ValuationReport{
		Summary:         summary,
		Categories:      categories,
		Recommendations: recs,
	}, nil
}

// StockMovement aggregates daily stock movements for the filter window.
// Outbound movements are observed from sales; inbound movements are an
// explicit estimate (no purchase-order ledger exists), labeled as such.
func (e *Engine) StockMovement(ctx context.Context, filters Filters) (*models.MovementReport, error) {
	const report = "stockMovement"

	window, err := e.window(filters)
	if err != nil {
		return nil, err
	}

	byDay, err := e.salesByDay(ctx, report, salesFilter(window, filters))
	if err != nil {
		return nil, err
	}

	movements := make([]models.StockMovement, 0, len(byDay)*2)
	var summary models.MovementSummary
	for _, day := range byDay {
		out := day.Items
		in := int(float64(out) * restockEstimateFactor)

		movements = append(movements, models.StockMovement{
			Date:      day.Key,
			Direction: models.MovementOut,
			Kind:      models.MovementObserved,
			Quantity:  out,
		})
		movements = append(movements, models.StockMovement{
			Date:      day.Key,
			Direction: models.MovementIn,
			Kind:      models.MovementEstimated,
			Quantity:  in,
		})

		summary.StockOut += out
		summary.StockIn += in
	}
	summary.TotalMovements = len(movements)
	summary.NetMovement = summary.StockIn - summary.StockOut

	return &models.MovementReport{
		Summary:         summary,
		Movements:       movements,
		Recommendations: recommendations(movementAdvisories(summary)),
	}, nil
}

// BusinessSummary is the period-scoped roll-up across sales, inventory and
// top categories. The period is a named one (daily, weekly, monthly);
// unknown names fall back to monthly.
func (e *Engine) BusinessSummary(ctx context.Context, period string) (*models.BusinessSummary, error) {
	const report = "businessSummary"

	window := resolveNamedWindow(period, e.now())
	f := salesFilter(window, Filters{})

	summary, err := e.salesSummary(ctx, report, f)
	if err != nil {
		return nil, err
	}

	trend, err := e.trend(ctx, report, window, Filters{})
	if err != nil {
		return nil, err
	}

	categories, err := e.salesByCategory(ctx, report, f)
	if err != nil {
		return nil, err
	}

	items, err := e.stockItems(ctx, report, "")
	if err != nil {
		return nil, err
	}

	var stock models.BusinessStockSummary
	stock.TotalProducts = len(items)
	criticalCount := 0
	overstockedCount := 0
	for _, it := range items {
		switch ClassifyStock(it).Status {
		case models.StockStatusCritical:
			criticalCount++
			stock.LowStockCount++
		case models.StockStatusLow:
			stock.LowStockCount++
		case models.StockStatusOverstocked:
			overstockedCount++
		}
		stock.TotalValue += float64(it.Quantity) * it.UnitCost
	}
	stock.TotalValue = utils.Round2(stock.TotalValue)

	recs := recommendations(
		stockAdvisories(stock.TotalProducts, criticalCount, stock.LowStockCount, overstockedCount),
		trendAdvisories(trend),
	)

	return &models.BusinessSummary{
		Period: window.Label(),
		Sales: models.BusinessSalesSummary{
			TotalSales:        utils.Round2(summary.Revenue),
			TotalOrders:       summary.Orders,
			AverageOrderValue: utils.Round2(averageOrderValue(summary)),
			Trend:             trend,
		},
		Inventory:       stock,
		TopCategories:   RankByRevenue(categories, 5),
		Recommendations: recs,
	}, nil
}
